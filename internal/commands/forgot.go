package commands

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"

	"tdo/internal/app"
	"tdo/internal/config"
	"tdo/internal/exitcode"
	"tdo/internal/validate"
)

func init() {
	Register(&ForgotCmd{})
}

// ForgotCmd requests a password reset e-mail.
type ForgotCmd struct{}

func (c *ForgotCmd) Name() string      { return "forgot" }
func (c *ForgotCmd) Aliases() []string { return nil }
func (c *ForgotCmd) Synopsis() string  { return "Send a password reset link" }
func (c *ForgotCmd) Usage() string     { return "tdo forgot [common flags] [email]" }
func (c *ForgotCmd) NeedsAuth() bool   { return false }

func (c *ForgotCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ForgotCmd) Run(ctx context.Context, cfg *config.Config, a *app.App, args []string, in io.Reader, out, errOut io.Writer) int {
	if a == nil {
		fmt.Fprintln(errOut, "error: no service configured (set url and anon_key in config.toml)")
		return exitcode.UserError
	}

	var email string
	if len(args) > 0 {
		email = args[0]
	} else {
		var err error
		email, err = promptLine(bufio.NewReader(in), promptWriter(cfg, out), "email")
		if err != nil {
			fmt.Fprintf(errOut, "error: reading email: %v\n", err)
			return exitcode.UserError
		}
	}

	email, errs := validate.CheckForgotPassword(email)
	if errs != nil {
		printFieldErrors(errOut, errs)
		return exitcode.UserError
	}

	if err := a.Auth.ForgotPassword(ctx, email); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.BackendError
	}

	fmt.Fprintln(out, "Password reset link sent to your email")
	return exitcode.Success
}
