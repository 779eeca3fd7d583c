package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"gtodo/internal/config"
	"gtodo/internal/confirm"
	"gtodo/internal/exitcode"
	"gtodo/internal/task"
)

const (
	clearTitle   = "Clear all tasks"
	clearMessage = "Delete every task? This cannot be undone."
)

func init() {
	Register(&ClearCmd{})
}

// ClearCmd implements the clear command.
// Without --yes it asks for confirmation on stdin.
type ClearCmd struct {
	yes bool
}

func (c *ClearCmd) Name() string      { return "clear" }
func (c *ClearCmd) Aliases() []string { return nil }
func (c *ClearCmd) Synopsis() string  { return "Delete all tasks" }
func (c *ClearCmd) Usage() string     { return "gtodo clear [--yes]" }
func (c *ClearCmd) NeedsStore() bool  { return true }

func (c *ClearCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.yes, "yes", false, "Skip confirmation")
	fs.BoolVar(&c.yes, "y", false, "Skip confirmation (shorthand)")
}

// SetYes sets the yes flag (for testing).
func (c *ClearCmd) SetYes(yes bool) {
	c.yes = yes
}

func (c *ClearCmd) Run(ctx context.Context, cfg *config.Config, store *task.Store, args []string, in io.Reader, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintln(errOut, "error: clear takes no arguments")
		return exitcode.UserError
	}

	clearAll := func() { store.ClearAll(ctx) }

	if c.yes {
		clearAll()
	} else {
		gate := confirm.New(clearTitle, clearMessage)
		ok, err := confirm.Ask(in, errOut, gate, clearAll)
		if err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.UserError
		}
		if !ok {
			if !cfg.Quiet {
				fmt.Fprintln(out, "cancelled")
			}
			return exitcode.Success
		}
	}

	if storageFailed(store, errOut) {
		return exitcode.BackendError
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
