package testutil

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"gtodo/internal/mirror"
)

// ErrNotFound is returned when a resource is not found.
var ErrNotFound = errors.New("not found")

// FakeMirror is an in-memory implementation of mirror.Mirror for testing.
type FakeMirror struct {
	mu     sync.RWMutex
	lists  map[string]string // title -> list ID
	tasks  map[string][]mirror.RemoteTask
	nextID int

	// Error injection for testing
	EnsureListErr error
	ListTasksErr  error
	CreateTaskErr error
	UpdateTaskErr error
	DeleteTaskErr error
}

var _ mirror.Mirror = (*FakeMirror)(nil)

// NewFakeMirror creates a FakeMirror with no lists.
func NewFakeMirror() *FakeMirror {
	return &FakeMirror{
		lists: make(map[string]string),
		tasks: make(map[string][]mirror.RemoteTask),
	}
}

// AddList adds a list and returns its ID.
func (f *FakeMirror) AddList(title string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.addList(title)
}

// AddTask seeds a remote task and returns its ID.
func (f *FakeMirror) AddTask(listID string, t mirror.RemoteTask) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	t.ID = fmt.Sprintf("r%d", f.nextID)
	f.tasks[listID] = append(f.tasks[listID], t)
	return t.ID
}

// Tasks returns the tasks of the list with the given title.
func (f *FakeMirror) Tasks(title string) []mirror.RemoteTask {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return slices.Clone(f.tasks[f.lists[title]])
}

func (f *FakeMirror) addList(title string) string {
	id := fmt.Sprintf("list-%d", len(f.lists)+1)
	f.lists[title] = id
	return id
}

// EnsureList implements mirror.Mirror.
func (f *FakeMirror) EnsureList(ctx context.Context, title string) (string, error) {
	if f.EnsureListErr != nil {
		return "", f.EnsureListErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if id, ok := f.lists[title]; ok {
		return id, nil
	}
	return f.addList(title), nil
}

// ListTasks implements mirror.Mirror.
func (f *FakeMirror) ListTasks(ctx context.Context, listID string) ([]mirror.RemoteTask, error) {
	if f.ListTasksErr != nil {
		return nil, f.ListTasksErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	return slices.Clone(f.tasks[listID]), nil
}

// CreateTask implements mirror.Mirror.
func (f *FakeMirror) CreateTask(ctx context.Context, listID string, t mirror.RemoteTask) error {
	if f.CreateTaskErr != nil {
		return f.CreateTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	t.ID = fmt.Sprintf("r%d", f.nextID)
	f.tasks[listID] = append(f.tasks[listID], t)
	return nil
}

// UpdateTask implements mirror.Mirror.
func (f *FakeMirror) UpdateTask(ctx context.Context, listID string, t mirror.RemoteTask) error {
	if f.UpdateTaskErr != nil {
		return f.UpdateTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, existing := range f.tasks[listID] {
		if existing.ID == t.ID {
			f.tasks[listID][i] = t
			return nil
		}
	}
	return ErrNotFound
}

// DeleteTask implements mirror.Mirror.
func (f *FakeMirror) DeleteTask(ctx context.Context, listID, taskID string) error {
	if f.DeleteTaskErr != nil {
		return f.DeleteTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, existing := range f.tasks[listID] {
		if existing.ID == taskID {
			f.tasks[listID] = slices.Delete(f.tasks[listID], i, i+1)
			return nil
		}
	}
	return ErrNotFound
}
