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
	Register(&PasswdCmd{})
}

// PasswdCmd sets a new password for the signed-in user. Combined with a
// session obtained from a reset link this completes account recovery.
type PasswdCmd struct{}

func (c *PasswdCmd) Name() string      { return "passwd" }
func (c *PasswdCmd) Aliases() []string { return []string{"reset-password"} }
func (c *PasswdCmd) Synopsis() string  { return "Change the account password" }
func (c *PasswdCmd) Usage() string     { return "tdo passwd [common flags]" }
func (c *PasswdCmd) NeedsAuth() bool   { return true }

func (c *PasswdCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *PasswdCmd) Run(ctx context.Context, cfg *config.Config, a *app.App, args []string, in io.Reader, out, errOut io.Writer) int {
	r := bufio.NewReader(in)
	promptOut := promptWriter(cfg, out)
	password, err := promptLine(r, promptOut, "new password")
	if err != nil {
		fmt.Fprintf(errOut, "error: reading password: %v\n", err)
		return exitcode.UserError
	}
	confirm, err := promptLine(r, promptOut, "confirm password")
	if err != nil {
		fmt.Fprintf(errOut, "error: reading password: %v\n", err)
		return exitcode.UserError
	}

	input, errs := validate.CheckResetPassword(validate.ResetPasswordInput{
		Password:        password,
		ConfirmPassword: confirm,
	})
	if errs != nil {
		printFieldErrors(errOut, errs)
		return exitcode.UserError
	}

	if err := a.Auth.ResetPassword(ctx, input.Password); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.BackendError
	}

	fmt.Fprintln(out, "Password updated successfully")
	return exitcode.Success
}
