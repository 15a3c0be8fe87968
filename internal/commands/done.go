package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"tdo/internal/app"
	"tdo/internal/config"
	"tdo/internal/exitcode"
)

func init() {
	Register(&DoneCmd{})
	Register(&UndoneCmd{})
}

// DoneCmd marks a todo completed.
type DoneCmd struct{}

func (c *DoneCmd) Name() string      { return "done" }
func (c *DoneCmd) Aliases() []string { return []string{"check"} }
func (c *DoneCmd) Synopsis() string  { return "Mark a todo completed" }
func (c *DoneCmd) Usage() string     { return "tdo done [common flags] <n>" }
func (c *DoneCmd) NeedsAuth() bool   { return true }

func (c *DoneCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DoneCmd) Run(ctx context.Context, cfg *config.Config, a *app.App, args []string, in io.Reader, out, errOut io.Writer) int {
	return runToggle(ctx, a, args, errOut, true)
}

// UndoneCmd marks a todo active again.
type UndoneCmd struct{}

func (c *UndoneCmd) Name() string      { return "undone" }
func (c *UndoneCmd) Aliases() []string { return []string{"uncheck"} }
func (c *UndoneCmd) Synopsis() string  { return "Mark a todo active again" }
func (c *UndoneCmd) Usage() string     { return "tdo undone [common flags] <n>" }
func (c *UndoneCmd) NeedsAuth() bool   { return true }

func (c *UndoneCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *UndoneCmd) Run(ctx context.Context, cfg *config.Config, a *app.App, args []string, in io.Reader, out, errOut io.Writer) int {
	return runToggle(ctx, a, args, errOut, false)
}

// runToggle is shared by done and undone. Success is silent.
func runToggle(ctx context.Context, a *app.App, args []string, errOut io.Writer, completed bool) int {
	num, err := parseTodoRef(args)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	todo, err := findTodoByNumber(ctx, a, num)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	if _, err := a.Todos.SetCompleted(ctx, todo.ID, completed); err != nil {
		return exitcode.BackendError
	}
	return exitcode.Success
}
