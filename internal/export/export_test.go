package export

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"gtodo/internal/task"
)

var sample = []task.Task{
	{ID: 1, Title: "Buy milk", Status: task.Done},
	{ID: 2, Title: "Walk the dog", Status: task.ToDo},
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]string{"json": FormatJSON, " YAML ": FormatYAML, "yml": FormatYAML, "pdf": FormatPDF} {
		got, err := ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseFormat("csv")
	assert.EqualError(t, err, "unknown export format: csv")
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatJSON, sample))
	assert.JSONEq(t, `[{"id":1,"title":"Buy milk","status":"Done"},{"id":2,"title":"Walk the dog","status":"To Do"}]`, buf.String())

	var back []task.Task
	require.NoError(t, json.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, sample, back)
}

func TestWrite_JSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatJSON, nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestWrite_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatYAML, sample))

	expected := "- id: 1\n  title: Buy milk\n  status: Done\n- id: 2\n  title: Walk the dog\n  status: To Do\n"
	assert.Equal(t, expected, buf.String())

	var back []task.Task
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, sample, back)
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writePDF(&buf, append(sample, task.Task{ID: 3, Title: ""}), time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")), "output should be a PDF")
}

func TestWrite_UnknownFormat(t *testing.T) {
	assert.EqualError(t, Write(&bytes.Buffer{}, "csv", sample), "unknown export format: csv")
}
