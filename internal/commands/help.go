package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"gtodo/internal/config"
	"gtodo/internal/exitcode"
	"gtodo/internal/task"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "gtodo help" }
func (c *HelpCmd) NeedsStore() bool  { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, store *task.Store, args []string, in io.Reader, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  gtodo                                           List open tasks
  gtodo list [common flags] [todo|done|all]       List tasks in a group
  gtodo add [common flags] <title...>
  gtodo create [common flags] <title...>
  gtodo toggle [common flags] <id>
  gtodo done [common flags] <id>
  gtodo rename [common flags] <id> <title...>
  gtodo rm [common flags] <id>
  gtodo clear [common flags] [--yes]
  gtodo shell [common flags]                      Interactive session
  gtodo export [common flags] [--format json|yaml|pdf] [--output <file>]
  gtodo push [common flags] [--list <list-name>]  Mirror tasks to Google Tasks
  gtodo login [common flags]
  gtodo logout [common flags]
  gtodo help
  gtodo version

Common flags:
  --config <dir>      Override config directory
  --backend <name>    Storage backend: file, sqlite or redis
  --quiet             Suppress informational output
  --debug             Print debug logs to stderr
`
