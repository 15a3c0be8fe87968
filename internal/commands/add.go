package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"tdo/internal/app"
	"tdo/internal/config"
	"tdo/internal/exitcode"
	"tdo/internal/service"
	"tdo/internal/validate"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command: the creation form.
type AddCmd struct {
	description string
}

// SetDescription sets the description flag value (for testing).
func (c *AddCmd) SetDescription(d string) {
	c.description = d
}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return []string{"create"} }
func (c *AddCmd) Synopsis() string  { return "Create a todo" }
func (c *AddCmd) Usage() string     { return "tdo add [common flags] [--desc <text>] <title...>" }
func (c *AddCmd) NeedsAuth() bool   { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.description, "desc", "", "")
	fs.StringVar(&c.description, "d", "", "")
}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, a *app.App, args []string, in io.Reader, out, errOut io.Writer) int {
	title := strings.Join(args, " ")

	// Validation blocks submission; no network call is made on failure.
	input, errs := validate.CheckTodo(validate.TodoInput{Title: title, Description: c.description})
	if errs != nil {
		printFieldErrors(errOut, errs)
		return exitcode.UserError
	}

	if _, err := a.Todos.Create(ctx, input.Title, input.Description); err != nil {
		// The failure notification already carries the message.
		if service.IsAuthRequired(err) {
			fmt.Fprintln(errOut, "error: not logged in (run: tdo login)")
			return exitcode.AuthError
		}
		return exitcode.BackendError
	}
	return exitcode.Success
}
