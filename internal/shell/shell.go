// Package shell runs the interactive, line-oriented task session.
//
// A Session keeps the UI-only state that never reaches storage: the selected
// group, remove mode, the task being renamed and the clear-all gate.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"gtodo/internal/confirm"
	"gtodo/internal/output"
	"gtodo/internal/task"
	"gtodo/internal/view"
)

const (
	clearTitle   = "Clear All Tasks"
	clearMessage = "Are you sure you want to delete all tasks?"

	prompt = "> "
)

// Session is one interactive session over a store.
type Session struct {
	store *task.Store
	out   io.Writer

	group      string
	removeMode bool
	editing    int
	gate       *confirm.Gate
}

// New creates a session showing the To Do group.
func New(store *task.Store, out io.Writer) *Session {
	return &Session{
		store: store,
		out:   out,
		group: view.KeyToDo,
		gate:  confirm.New(clearTitle, clearMessage),
	}
}

// RemoveMode reports whether deletion gestures are enabled.
func (s *Session) RemoveMode() bool { return s.removeMode }

// Editing returns the id of the task awaiting a new title.
func (s *Session) Editing() (int, bool) { return s.editing, s.editing != 0 }

// Group returns the selected group key.
func (s *Session) Group() string { return s.group }

// Gate returns the clear-all confirmation gate.
func (s *Session) Gate() *confirm.Gate { return s.gate }

// Run renders the selected group, then handles lines from in until quit or
// EOF.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	s.render()
	s.printPrompt()

	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !s.Handle(ctx, sc.Text()) {
			return nil
		}
		s.printPrompt()
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}

// Handle applies one input line. It returns false once the session ends.
func (s *Session) Handle(ctx context.Context, line string) bool {
	line = strings.TrimRight(line, "\r")

	switch {
	case s.gate.IsOpen():
		s.answerGate(ctx, line)
		return true
	case s.editing != 0:
		s.finishEdit(ctx, line)
		return true
	}

	// The title after "add " is kept verbatim; other arguments are trimmed.
	name, raw, _ := strings.Cut(strings.TrimLeft(line, " \t"), " ")
	rest := strings.TrimSpace(raw)

	switch strings.ToLower(name) {
	case "":
	case "add":
		s.add(ctx, raw)
	case "toggle", "done":
		s.toggle(ctx, rest)
	case "edit", "rename":
		s.startEdit(rest)
	case "remove":
		s.setRemoveMode(rest)
	case "rm":
		s.remove(ctx, rest)
	case "clear":
		s.openClear()
	case "show", "list", "ls":
		s.show(rest)
	case "help", "?":
		fmt.Fprint(s.out, helpText)
	case "quit", "exit", "q":
		return false
	default:
		fmt.Fprintf(s.out, "error: unknown command: %s (try: help)\n", name)
	}
	return true
}

func (s *Session) add(ctx context.Context, title string) {
	if s.removeMode {
		fmt.Fprintln(s.out, "error: remove mode is on (use: remove off)")
		return
	}
	t, ok := s.store.Add(ctx, title)
	if !ok {
		fmt.Fprintln(s.out, "error: title required")
		return
	}
	if s.reportStorage() {
		return
	}
	fmt.Fprintf(s.out, "added %d\n", t.ID)
	s.render()
}

func (s *Session) toggle(ctx context.Context, arg string) {
	if s.removeMode {
		fmt.Fprintln(s.out, "error: remove mode is on (use: remove off)")
		return
	}
	id, ok := s.parseID(arg)
	if !ok {
		return
	}
	if !s.store.ToggleStatus(ctx, id) {
		fmt.Fprintf(s.out, "error: task not found: %d\n", id)
		return
	}
	if s.reportStorage() {
		return
	}
	s.render()
}

func (s *Session) startEdit(arg string) {
	id, ok := s.parseID(arg)
	if !ok {
		return
	}
	t, found := s.store.Get(id)
	if !found {
		fmt.Fprintf(s.out, "error: task not found: %d\n", id)
		return
	}
	s.editing = id
	fmt.Fprintf(s.out, "editing %d (was %q), enter new title:\n", id, t.Title)
}

// finishEdit commits the line verbatim as the new title, empty included.
func (s *Session) finishEdit(ctx context.Context, title string) {
	id := s.editing
	s.editing = 0
	if !s.store.Rename(ctx, id, title) {
		fmt.Fprintf(s.out, "error: task not found: %d\n", id)
		return
	}
	if s.reportStorage() {
		return
	}
	s.render()
}

func (s *Session) setRemoveMode(arg string) {
	switch strings.ToLower(arg) {
	case "on":
		s.removeMode = true
	case "off":
		s.removeMode = false
	case "":
		s.removeMode = !s.removeMode
	default:
		fmt.Fprintln(s.out, "error: usage: remove [on|off]")
		return
	}
	if s.removeMode {
		fmt.Fprintln(s.out, "remove mode on")
	} else {
		fmt.Fprintln(s.out, "remove mode off")
	}
}

func (s *Session) remove(ctx context.Context, arg string) {
	if !s.removeMode {
		fmt.Fprintln(s.out, "error: remove mode is off (use: remove on)")
		return
	}
	id, ok := s.parseID(arg)
	if !ok {
		return
	}
	if !s.store.Remove(ctx, id) {
		fmt.Fprintf(s.out, "error: task not found: %d\n", id)
		return
	}
	if s.reportStorage() {
		return
	}
	s.render()
}

func (s *Session) openClear() {
	if !s.removeMode {
		fmt.Fprintln(s.out, "error: remove mode is off (use: remove on)")
		return
	}
	s.gate.Open()
	s.gate.Prompt(s.out)
	fmt.Fprintln(s.out)
}

func (s *Session) answerGate(ctx context.Context, answer string) {
	if !confirm.IsYes(answer) {
		s.gate.Cancel()
		fmt.Fprintln(s.out, "cancelled")
		return
	}
	s.gate.Confirm(func() {
		s.store.ClearAll(ctx)
		s.removeMode = false
	})
	if s.reportStorage() {
		return
	}
	fmt.Fprintln(s.out, "cleared")
	s.render()
}

func (s *Session) show(arg string) {
	if arg != "" {
		key, err := view.ParseKey(arg)
		if err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
			return
		}
		s.group = key
	}
	s.render()
}

func (s *Session) render() {
	groups := view.Partition(s.store.Tasks())
	selected, _ := view.Find(groups, s.group)
	output.FormatGroup(s.out, groups, selected)
}

func (s *Session) printPrompt() {
	if s.removeMode {
		fmt.Fprint(s.out, "(remove) "+prompt)
		return
	}
	fmt.Fprint(s.out, prompt)
}

func (s *Session) parseID(arg string) (int, bool) {
	id, err := task.ParseID(arg)
	if err != nil {
		fmt.Fprintf(s.out, "error: %v\n", err)
		return 0, false
	}
	return id, true
}

// reportStorage prints the persistence failure of the last mutation.
func (s *Session) reportStorage() bool {
	err := s.store.Err()
	if err == nil {
		return false
	}
	fmt.Fprintf(s.out, "error: storage error: %v\n", err)
	return true
}

const helpText = `Commands:
  add <title>          Add a task
  toggle <id>          Flip To Do / Done
  edit <id>            Rename; the next line is the new title
  remove [on|off]      Enable deletion gestures
  rm <id>              Delete a task (remove mode)
  clear                Delete all tasks (remove mode, asks first)
  show [todo|done|all] Select and show a group
  help                 Show this help
  quit                 Leave the session
`
