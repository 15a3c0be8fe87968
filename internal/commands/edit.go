package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"tdo/internal/app"
	"tdo/internal/config"
	"tdo/internal/exitcode"
	"tdo/internal/service"
	"tdo/internal/validate"
)

func init() {
	Register(&EditCmd{})
}

// EditCmd changes a todo's title and/or description. Only the flags
// given are sent; omitted fields keep their stored value.
type EditCmd struct {
	title    string
	desc     string
	titleSet bool
	descSet  bool
}

func (c *EditCmd) Name() string      { return "edit" }
func (c *EditCmd) Aliases() []string { return nil }
func (c *EditCmd) Synopsis() string  { return "Edit a todo's title or description" }
func (c *EditCmd) Usage() string {
	return "tdo edit [common flags] [--title <text>] [--desc <text>] <n>"
}
func (c *EditCmd) NeedsAuth() bool { return true }

func (c *EditCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.Func("title", "", func(v string) error {
		c.title = v
		c.titleSet = true
		return nil
	})
	fs.Func("desc", "", func(v string) error {
		c.desc = v
		c.descSet = true
		return nil
	})
	fs.Func("d", "", func(v string) error {
		c.desc = v
		c.descSet = true
		return nil
	})
}

// SetTitle sets the title flag value (for testing).
func (c *EditCmd) SetTitle(t string) {
	c.title = t
	c.titleSet = true
}

// SetDescription sets the description flag value (for testing).
func (c *EditCmd) SetDescription(d string) {
	c.desc = d
	c.descSet = true
}

func (c *EditCmd) Run(ctx context.Context, cfg *config.Config, a *app.App, args []string, in io.Reader, out, errOut io.Writer) int {
	num, err := parseTodoRef(args)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	if !c.titleSet && !c.descSet {
		fmt.Fprintln(errOut, "error: nothing to change (use --title or --desc)")
		return exitcode.UserError
	}

	todo, err := findTodoByNumber(ctx, a, num)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	// Validate the draft as a whole: an edit that only changes the
	// description still has to leave a non-empty title behind.
	title := todo.Title
	if c.titleSet {
		title = c.title
	}
	desc := ""
	if c.descSet {
		desc = c.desc
	} else if todo.Description != nil {
		desc = *todo.Description
	}
	input, errs := validate.CheckTodo(validate.TodoInput{Title: title, Description: desc})
	if errs != nil {
		printFieldErrors(errOut, errs)
		return exitcode.UserError
	}

	patch := service.TodoPatch{}
	if c.titleSet {
		patch.Title = &input.Title
	}
	if c.descSet {
		d := input.Description
		patch.Description = &d
	}

	if _, err := a.Todos.Update(ctx, todo.ID, patch); err != nil {
		return exitcode.BackendError
	}
	return exitcode.Success
}
