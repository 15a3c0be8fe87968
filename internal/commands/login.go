package commands

import (
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
	Register(&LoginCmd{})
}

// LoginCmd signs in with email and password.
type LoginCmd struct{}

func (c *LoginCmd) Name() string      { return "login" }
func (c *LoginCmd) Aliases() []string { return []string{"signin"} }
func (c *LoginCmd) Synopsis() string  { return "Sign in" }
func (c *LoginCmd) Usage() string     { return "tdo login [common flags] [email]" }
func (c *LoginCmd) NeedsAuth() bool   { return false }

func (c *LoginCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *LoginCmd) Run(ctx context.Context, cfg *config.Config, a *app.App, args []string, in io.Reader, out, errOut io.Writer) int {
	if a == nil {
		fmt.Fprintln(errOut, "error: no service configured (set url and anon_key in config.toml)")
		return exitcode.UserError
	}

	email, password, _, code := readCredentials(args, in, promptWriter(cfg, out), errOut, false)
	if code != exitcode.Success {
		return code
	}

	input, errs := validate.CheckSignIn(validate.SignInInput{Email: email, Password: password})
	if errs != nil {
		printFieldErrors(errOut, errs)
		return exitcode.UserError
	}

	// The session file lands under the config dir; make sure it exists
	// before the provider round trip.
	if err := cfg.EnsureDir(); err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.UserError
	}

	if err := a.Auth.SignIn(ctx, input.Email, input.Password); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.AuthError
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "Signed in successfully")
	}
	return exitcode.Success
}
