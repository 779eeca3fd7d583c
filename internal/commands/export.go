package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"gtodo/internal/config"
	"gtodo/internal/exitcode"
	"gtodo/internal/export"
	"gtodo/internal/task"
)

func init() {
	Register(&ExportCmd{})
}

// ExportCmd implements the export command.
type ExportCmd struct {
	format string
	output string
}

func (c *ExportCmd) Name() string      { return "export" }
func (c *ExportCmd) Aliases() []string { return nil }
func (c *ExportCmd) Synopsis() string  { return "Write all tasks as JSON, YAML or PDF" }
func (c *ExportCmd) Usage() string {
	return "gtodo export [--format json|yaml|pdf] [--output <file>]"
}
func (c *ExportCmd) NeedsStore() bool { return true }

func (c *ExportCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.format, "format", export.FormatJSON, "Output format: json, yaml or pdf")
	fs.StringVar(&c.output, "output", "", "Write to file instead of stdout")
	fs.StringVar(&c.output, "o", "", "Write to file instead of stdout (shorthand)")
}

// SetFormat sets the format flag (for testing).
func (c *ExportCmd) SetFormat(format string) {
	c.format = format
}

// SetOutput sets the output flag (for testing).
func (c *ExportCmd) SetOutput(path string) {
	c.output = path
}

func (c *ExportCmd) Run(ctx context.Context, cfg *config.Config, store *task.Store, args []string, in io.Reader, out, errOut io.Writer) int {
	format, err := export.ParseFormat(c.format)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	if c.output == "" {
		if format == export.FormatPDF {
			fmt.Fprintln(errOut, "error: pdf export requires --output")
			return exitcode.UserError
		}
		if err := export.Write(out, format, store.Tasks()); err != nil {
			fmt.Fprintf(errOut, "error: export failed: %v\n", err)
			return exitcode.BackendError
		}
		return exitcode.Success
	}

	f, err := os.OpenFile(c.output, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		fmt.Fprintf(errOut, "error: failed to create %s: %v\n", c.output, err)
		return exitcode.UserError
	}
	if err := export.Write(f, format, store.Tasks()); err != nil {
		f.Close()
		fmt.Fprintf(errOut, "error: export failed: %v\n", err)
		return exitcode.BackendError
	}
	if err := f.Close(); err != nil {
		fmt.Fprintf(errOut, "error: export failed: %v\n", err)
		return exitcode.BackendError
	}

	cfg.Logger().Debug("exported tasks", "format", format, "path", c.output)
	if !cfg.Quiet {
		fmt.Fprintf(out, "wrote %s\n", c.output)
	}
	return exitcode.Success
}
