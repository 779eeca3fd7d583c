package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"gtodo/internal/backend/googletasks"
	"gtodo/internal/config"
	"gtodo/internal/exitcode"
	"gtodo/internal/mirror"
	"gtodo/internal/task"
)

// MirrorFactory creates the remote side of a push.
type MirrorFactory func(ctx context.Context, cfg *config.Config) (mirror.Mirror, error)

func init() {
	Register(&PushCmd{})
}

// PushCmd implements the push command.
type PushCmd struct {
	list    string
	factory MirrorFactory
}

func (c *PushCmd) Name() string      { return "push" }
func (c *PushCmd) Aliases() []string { return []string{"sync"} }
func (c *PushCmd) Synopsis() string  { return "Mirror tasks to a Google Tasks list" }
func (c *PushCmd) Usage() string     { return "gtodo push [--list <list-name>]" }
func (c *PushCmd) NeedsStore() bool  { return true }

func (c *PushCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.list, "list", "", "Target list name (default from config)")
	fs.StringVar(&c.list, "l", "", "Target list name (shorthand)")
}

// SetList sets the list flag (for testing).
func (c *PushCmd) SetList(list string) {
	c.list = list
}

// SetMirrorFactory replaces the Google Tasks client (for testing).
func (c *PushCmd) SetMirrorFactory(f MirrorFactory) {
	c.factory = f
}

func (c *PushCmd) Run(ctx context.Context, cfg *config.Config, store *task.Store, args []string, in io.Reader, out, errOut io.Writer) int {
	listTitle := c.list
	if listTitle == "" {
		listTitle = cfg.Google.List
	}
	if strings.TrimSpace(listTitle) == "" {
		fmt.Fprintln(errOut, "error: list name required")
		return exitcode.UserError
	}

	factory := c.factory
	if factory == nil {
		if !cfg.HasToken() {
			fmt.Fprintln(errOut, "error: not logged in (run: gtodo login)")
			return exitcode.AuthError
		}
		factory = googleMirror
	}

	m, err := factory(ctx, cfg)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.AuthError
	}

	res, err := mirror.Push(ctx, m, listTitle, store.Tasks())
	if err != nil {
		fmt.Fprintf(errOut, "error: push failed: %v\n", err)
		if isAuthError(err) {
			return exitcode.AuthError
		}
		return exitcode.BackendError
	}

	cfg.Logger().Debug("push complete", "list", listTitle,
		"created", res.Created, "updated", res.Updated, "deleted", res.Deleted)
	if !cfg.Quiet {
		fmt.Fprintln(out, res.String())
	}
	return exitcode.Success
}

func googleMirror(ctx context.Context, cfg *config.Config) (mirror.Mirror, error) {
	return googletasks.New(ctx, cfg, cfg.Logger())
}

// isAuthError checks for the token message produced by the Google client.
func isAuthError(err error) bool {
	return strings.Contains(err.Error(), "token expired or revoked")
}
