package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"gtodo/internal/config"
	"gtodo/internal/exitcode"
	"gtodo/internal/task"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct{}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return []string{"create"} }
func (c *AddCmd) Synopsis() string  { return "Create a task" }
func (c *AddCmd) Usage() string     { return "gtodo add <title...>" }
func (c *AddCmd) NeedsStore() bool  { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, store *task.Store, args []string, in io.Reader, out, errOut io.Writer) int {
	// Join args to form title; only an exactly empty title is rejected
	title := strings.Join(args, " ")
	t, ok := store.Add(ctx, title)
	if !ok {
		fmt.Fprintln(errOut, "error: title required")
		return exitcode.UserError
	}

	if storageFailed(store, errOut) {
		return exitcode.BackendError
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "added %d\n", t.ID)
	}
	return exitcode.Success
}
