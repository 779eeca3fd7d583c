// Package view derives the named task groups shown to the user. Groups are
// recomputed from the collection on every render and never stored.
package view

import (
	"fmt"
	"strings"

	"gtodo/internal/task"
)

// Group keys, in display order.
const (
	KeyToDo = "todo"
	KeyDone = "done"
	KeyAll  = "all"
)

// Group is a titled subset of the collection.
type Group struct {
	Key   string
	Title string
	Tasks []task.Task
}

// Partition splits tasks into the To Do, Done and All groups, in that order.
// Task order within each group follows the input.
func Partition(tasks []task.Task) []Group {
	todo := []task.Task{}
	done := []task.Task{}
	for _, t := range tasks {
		switch t.Status {
		case task.ToDo:
			todo = append(todo, t)
		case task.Done:
			done = append(done, t)
		}
	}
	all := make([]task.Task, len(tasks))
	copy(all, tasks)

	return []Group{
		{Key: KeyToDo, Title: task.ToDo.String(), Tasks: todo},
		{Key: KeyDone, Title: task.Done.String(), Tasks: done},
		{Key: KeyAll, Title: "All", Tasks: all},
	}
}

// Find returns the group with the given key.
func Find(groups []Group, key string) (Group, bool) {
	for _, g := range groups {
		if g.Key == key {
			return g, true
		}
	}
	return Group{}, false
}

// ParseKey maps user input to a group key. Matching ignores case, spaces and
// dashes, so "To Do", "to-do" and "todo" are the same group.
func ParseKey(s string) (string, error) {
	norm := strings.ToLower(s)
	norm = strings.NewReplacer(" ", "", "-", "", "_", "").Replace(norm)
	switch norm {
	case KeyToDo, KeyDone, KeyAll:
		return norm, nil
	}
	return "", fmt.Errorf("unknown group: %s", s)
}
