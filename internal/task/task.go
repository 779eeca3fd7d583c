// Package task holds the to-do collection and the id counter that issues
// task ids.
package task

import "fmt"

// Status is the completion state of a task.
type Status int

const (
	// ToDo is the status of a newly created task.
	ToDo Status = iota

	// Done marks a completed task.
	Done
)

// Persisted text forms of Status.
const (
	toDoText = "To Do"
	doneText = "Done"
)

// String returns the display and persisted form of the status.
func (s Status) String() string {
	switch s {
	case ToDo:
		return toDoText
	case Done:
		return doneText
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Toggle returns the opposite status.
func (s Status) Toggle() Status {
	if s == Done {
		return ToDo
	}
	return Done
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	switch s {
	case ToDo, Done:
		return []byte(s.String()), nil
	default:
		return nil, fmt.Errorf("invalid status: %d", int(s))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
// Only "To Do" and "Done" are accepted.
func (s *Status) UnmarshalText(text []byte) error {
	switch string(text) {
	case toDoText:
		*s = ToDo
	case doneText:
		*s = Done
	default:
		return fmt.Errorf("invalid status: %q", string(text))
	}
	return nil
}

// Task is a single to-do record.
type Task struct {
	ID     int    `json:"id" yaml:"id"`
	Title  string `json:"title" yaml:"title"`
	Status Status `json:"status" yaml:"status"`
}

// Snapshot is the persisted state handed to Store.Init at startup.
type Snapshot struct {
	Tasks   []Task
	Counter int
}
