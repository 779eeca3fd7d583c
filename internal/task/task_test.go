package task_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gtodo/internal/task"
)

func TestStatus_JSON(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal([]task.Task{
		{ID: 1, Title: "Buy milk", Status: task.ToDo},
		{ID: 2, Title: "Walk dog", Status: task.Done},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":1,"title":"Buy milk","status":"To Do"},{"id":2,"title":"Walk dog","status":"Done"}]`, string(data))
}

func TestStatus_UnmarshalRejectsUnknown(t *testing.T) {
	t.Parallel()

	var tasks []task.Task
	err := json.Unmarshal([]byte(`[{"id":1,"title":"x","status":"Doing"}]`), &tasks)
	assert.ErrorContains(t, err, `invalid status: "Doing"`)
}

func TestStatus_Toggle(t *testing.T) {
	t.Parallel()

	assert.Equal(t, task.Done, task.ToDo.Toggle())
	assert.Equal(t, task.ToDo, task.Done.Toggle())
	assert.Equal(t, "To Do", task.ToDo.String())
	assert.Equal(t, "Done", task.Done.String())
}
