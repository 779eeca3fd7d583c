// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"gtodo/internal/config"
	"gtodo/internal/task"
)

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// NeedsStore returns true if the command reads or mutates tasks.
	// Commands like help, version, login, logout return false.
	NeedsStore() bool

	// RegisterFlags registers command-specific flags.
	RegisterFlags(fs *flag.FlagSet)

	// Run executes the command.
	// cfg is always provided (config dir, paths, logger).
	// store is loaded and non-nil if NeedsStore() returns true.
	// args contains positional arguments after flag parsing.
	// in supplies interactive answers (confirmation, shell input).
	// Returns exit code.
	Run(ctx context.Context, cfg *config.Config, store *task.Store, args []string, in io.Reader, out, errOut io.Writer) int
}

// storageFailed reports a write-through failure recorded by the store.
// The mutation itself already happened in memory.
func storageFailed(store *task.Store, errOut io.Writer) bool {
	if err := store.Err(); err != nil {
		fmt.Fprintf(errOut, "error: storage error: %v\n", err)
		return true
	}
	return false
}
