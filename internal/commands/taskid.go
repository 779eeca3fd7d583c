package commands

import (
	"errors"

	"gtodo/internal/task"
)

// ErrTaskIDRequired indicates no task id was provided.
var ErrTaskIDRequired = task.ErrIDRequired

// ParseTaskID parses the task id from the first argument.
// See task.ParseID for the accepted forms.
func ParseTaskID(args []string) (int, error) {
	if len(args) == 0 {
		return 0, ErrTaskIDRequired
	}
	return task.ParseID(args[0])
}

// taskIDMessage returns the user-facing message for a ParseTaskID error.
func taskIDMessage(err error) string {
	if errors.Is(err, ErrTaskIDRequired) {
		return "error: task id required"
	}
	return "error: " + err.Error()
}
