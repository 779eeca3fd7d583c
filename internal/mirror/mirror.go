// Package mirror pushes the local task collection to a remote task list.
// Backends never see the store; commands never import a remote SDK directly.
package mirror

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"gtodo/internal/task"
)

// MarkerPrefix tags remote tasks owned by the mirror; the local id follows.
const MarkerPrefix = "gtodo-id:"

// RemoteTask is a task as held by the remote service.
type RemoteTask struct {
	ID    string
	Title string
	Notes string
	Done  bool
}

// Mirror is the remote side of a push.
type Mirror interface {
	// EnsureList returns the ID of the list with the given title, creating it
	// if none exists.
	EnsureList(ctx context.Context, title string) (string, error)

	// ListTasks returns every task in the list, completed ones included.
	ListTasks(ctx context.Context, listID string) ([]RemoteTask, error)

	// CreateTask inserts a task. t.ID is ignored.
	CreateTask(ctx context.Context, listID string, t RemoteTask) error

	// UpdateTask overwrites title, notes and completion of task t.ID.
	UpdateTask(ctx context.Context, listID string, t RemoteTask) error

	// DeleteTask removes a task.
	DeleteTask(ctx context.Context, listID, taskID string) error
}

// Result counts what a push changed.
type Result struct {
	Created   int
	Updated   int
	Deleted   int
	Unchanged int
}

func (r Result) String() string {
	return fmt.Sprintf("created %d, updated %d, deleted %d, unchanged %d",
		r.Created, r.Updated, r.Deleted, r.Unchanged)
}

// Marker returns the notes marker for a local task id.
func Marker(id int) string {
	return MarkerPrefix + strconv.Itoa(id)
}

// ParseMarker extracts the local id from remote notes.
func ParseMarker(notes string) (int, bool) {
	for _, line := range strings.Split(notes, "\n") {
		rest, ok := strings.CutPrefix(strings.TrimSpace(line), MarkerPrefix)
		if !ok {
			continue
		}
		id, err := strconv.Atoi(rest)
		if err != nil || id < 1 {
			return 0, false
		}
		return id, true
	}
	return 0, false
}

// Push makes the remote list titled listTitle match tasks.
// Remote tasks without a marker are left alone. Marked remote tasks with no
// local counterpart, and duplicates of one id, are deleted.
func Push(ctx context.Context, m Mirror, listTitle string, tasks []task.Task) (Result, error) {
	var res Result

	listID, err := m.EnsureList(ctx, listTitle)
	if err != nil {
		return res, err
	}

	remote, err := m.ListTasks(ctx, listID)
	if err != nil {
		return res, err
	}

	byLocalID := make(map[int]RemoteTask)
	var stale []RemoteTask
	for _, rt := range remote {
		id, ok := ParseMarker(rt.Notes)
		if !ok {
			continue
		}
		if _, dup := byLocalID[id]; dup {
			stale = append(stale, rt)
			continue
		}
		byLocalID[id] = rt
	}

	for _, t := range tasks {
		want := RemoteTask{
			Title: t.Title,
			Notes: Marker(t.ID),
			Done:  t.Status == task.Done,
		}

		rt, ok := byLocalID[t.ID]
		if !ok {
			if err := m.CreateTask(ctx, listID, want); err != nil {
				return res, fmt.Errorf("create task %d: %w", t.ID, err)
			}
			res.Created++
			continue
		}
		delete(byLocalID, t.ID)

		if rt.Title == want.Title && rt.Done == want.Done {
			res.Unchanged++
			continue
		}
		want.ID = rt.ID
		want.Notes = rt.Notes
		if err := m.UpdateTask(ctx, listID, want); err != nil {
			return res, fmt.Errorf("update task %d: %w", t.ID, err)
		}
		res.Updated++
	}

	for _, rt := range byLocalID {
		stale = append(stale, rt)
	}
	for _, rt := range stale {
		if err := m.DeleteTask(ctx, listID, rt.ID); err != nil {
			return res, fmt.Errorf("delete remote task %s: %w", rt.ID, err)
		}
		res.Deleted++
	}

	return res, nil
}
