package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"gtodo/internal/config"
	"gtodo/internal/exitcode"
	"gtodo/internal/shell"
	"gtodo/internal/task"
)

func init() {
	Register(&ShellCmd{})
}

// ShellCmd implements the shell command.
type ShellCmd struct{}

func (c *ShellCmd) Name() string      { return "shell" }
func (c *ShellCmd) Aliases() []string { return []string{"ui"} }
func (c *ShellCmd) Synopsis() string  { return "Start an interactive session" }
func (c *ShellCmd) Usage() string     { return "gtodo shell" }
func (c *ShellCmd) NeedsStore() bool  { return true }

func (c *ShellCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ShellCmd) Run(ctx context.Context, cfg *config.Config, store *task.Store, args []string, in io.Reader, out, errOut io.Writer) int {
	if err := shell.New(store, out).Run(ctx, in); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}
	// Only a failure in the last mutation leaves storage behind memory.
	if store.Err() != nil {
		return exitcode.BackendError
	}
	return exitcode.Success
}
