// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"gtodo/internal/task"
	"gtodo/internal/view"
)

const (
	// ListSeparator separates the tab bar from the task lines.
	ListSeparator = "------------"
)

// FormatTask formats a task line.
// Format: "{ID:>4}  [{x| }] {TITLE}\n"
func FormatTask(w io.Writer, t task.Task) {
	mark := " "
	if t.Status == task.Done {
		mark = "x"
	}
	fmt.Fprintf(w, "%4d  [%s] %s\n", t.ID, mark, normalizeTitle(t.Title))
}

// FormatTabs formats the group bar with task counts; the selected group is
// bracketed.
// Format: "[To Do (2)]  Done (1)  All (3)\n"
func FormatTabs(w io.Writer, groups []view.Group, selected string) {
	labels := make([]string, 0, len(groups))
	for _, g := range groups {
		label := fmt.Sprintf("%s (%d)", g.Title, len(g.Tasks))
		if g.Key == selected {
			label = "[" + label + "]"
		}
		labels = append(labels, label)
	}
	fmt.Fprintln(w, strings.Join(labels, "  "))
}

// FormatGroup formats the tab bar followed by the tasks of the selected group.
func FormatGroup(w io.Writer, groups []view.Group, selected view.Group) {
	FormatTabs(w, groups, selected.Key)
	fmt.Fprintln(w, ListSeparator)
	for _, t := range selected.Tasks {
		FormatTask(w, t)
	}
}

// normalizeTitle normalizes a task title for display.
// - Empty or whitespace-only titles become "(untitled)"
// - Newlines are replaced with spaces
func normalizeTitle(title string) string {
	// Replace newlines with spaces
	title = strings.ReplaceAll(title, "\r", " ")
	title = strings.ReplaceAll(title, "\n", " ")

	// Trim and check for empty
	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}
