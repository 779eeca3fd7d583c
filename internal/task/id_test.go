package task_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gtodo/internal/task"
)

func TestParseID(t *testing.T) {
	t.Parallel()

	valid := map[string]int{"1": 1, "012": 12, "#7": 7}
	for in, want := range valid {
		got, err := task.ParseID(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := task.ParseID("")
	assert.ErrorIs(t, err, task.ErrIDRequired)

	for _, in := range []string{"0", "x", "#", "-3", " 4"} {
		_, err := task.ParseID(in)
		assert.EqualError(t, err, "invalid task id: "+in)
	}
}
