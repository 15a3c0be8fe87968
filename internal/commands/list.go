package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"tdo/internal/app"
	"tdo/internal/config"
	"tdo/internal/exitcode"
	"tdo/internal/output"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
// Handles both `tdo` (no args) and `tdo list`.
type ListCmd struct{}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List todos, newest first" }
func (c *ListCmd) Usage() string     { return "tdo list [common flags]" }
func (c *ListCmd) NeedsAuth() bool   { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, a *app.App, args []string, in io.Reader, out, errOut io.Writer) int {
	list, err := a.Todos.List(ctx)
	if err != nil {
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}

	if len(list) == 0 && cfg.Quiet {
		return exitcode.Success
	}
	output.FormatList(out, list)
	return exitcode.Success
}
