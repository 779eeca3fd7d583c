package commands_test

import (
	"testing"

	"gtodo/internal/commands"
)

func TestRegistry_FindByAlias(t *testing.T) {
	tests := map[string]string{
		"add":    "add",
		"create": "add",
		"done":   "toggle",
		"remove": "rm",
		"edit":   "rename",
		"ls":     "list",
		"sync":   "push",
	}
	for name, want := range tests {
		cmd, ok := commands.DefaultRegistry.Find(name)
		if !ok {
			t.Errorf("command %q not registered", name)
			continue
		}
		if cmd.Name() != want {
			t.Errorf("Find(%q) = %q, want %q", name, cmd.Name(), want)
		}
	}
}

func TestRegistry_Duplicate(t *testing.T) {
	r := commands.NewRegistry()
	if err := r.Register(&commands.AddCmd{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.Register(&commands.AddCmd{}); err == nil || err.Error() != "command already registered: add" {
		t.Errorf("expected duplicate error, got %v", err)
	}
}

func TestRegistry_AllSorted(t *testing.T) {
	var names []string
	for _, cmd := range commands.DefaultRegistry.All() {
		names = append(names, cmd.Name())
	}
	want := []string{"add", "clear", "export", "help", "list", "login", "logout", "push", "rename", "rm", "shell", "toggle", "version"}
	if len(names) != len(want) {
		t.Fatalf("expected %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("expected %v, got %v", want, names)
			break
		}
	}
}
