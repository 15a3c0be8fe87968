package commands

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"tdo/internal/app"
	"tdo/internal/config"
	"tdo/internal/exitcode"
	"tdo/internal/validate"
)

func init() {
	Register(&SignUpCmd{})
}

// SignUpCmd registers a new account with the hosted service.
type SignUpCmd struct{}

func (c *SignUpCmd) Name() string      { return "signup" }
func (c *SignUpCmd) Aliases() []string { return []string{"register"} }
func (c *SignUpCmd) Synopsis() string  { return "Create an account" }
func (c *SignUpCmd) Usage() string     { return "tdo signup [common flags] [email]" }
func (c *SignUpCmd) NeedsAuth() bool   { return false }

func (c *SignUpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *SignUpCmd) Run(ctx context.Context, cfg *config.Config, a *app.App, args []string, in io.Reader, out, errOut io.Writer) int {
	if a == nil {
		fmt.Fprintln(errOut, "error: no service configured (set url and anon_key in config.toml)")
		return exitcode.UserError
	}

	email, password, confirm, code := readCredentials(args, in, promptWriter(cfg, out), errOut, true)
	if code != exitcode.Success {
		return code
	}

	input, errs := validate.CheckSignUp(validate.SignUpInput{
		Email:           email,
		Password:        password,
		ConfirmPassword: confirm,
	})
	if errs != nil {
		printFieldErrors(errOut, errs)
		return exitcode.UserError
	}

	if err := a.Auth.SignUp(ctx, input.Email, input.Password); err != nil {
		// The provider reports a duplicate account verbatim; reword it
		// into a next step the user can actually take.
		if strings.Contains(err.Error(), "User already registered") {
			fmt.Fprintln(errOut, "error: This email is already registered. Please sign in instead.")
		} else {
			fmt.Fprintf(errOut, "error: %v\n", err)
		}
		return exitcode.BackendError
	}

	fmt.Fprintln(out, "Account created successfully! You can now sign in.")
	return exitcode.Success
}

// readCredentials collects email and password, prompting for whatever
// was not given as a positional argument. Confirmation is only asked
// for when withConfirm is set. One buffered reader serves all prompts.
func readCredentials(args []string, in io.Reader, promptOut, errOut io.Writer, withConfirm bool) (email, password, confirm string, code int) {
	r := bufio.NewReader(in)
	var err error
	if len(args) > 0 {
		email = args[0]
	} else {
		email, err = promptLine(r, promptOut, "email")
		if err != nil {
			fmt.Fprintf(errOut, "error: reading email: %v\n", err)
			return "", "", "", exitcode.UserError
		}
	}

	password, err = promptLine(r, promptOut, "password")
	if err != nil {
		fmt.Fprintf(errOut, "error: reading password: %v\n", err)
		return "", "", "", exitcode.UserError
	}

	if withConfirm {
		confirm, err = promptLine(r, promptOut, "confirm password")
		if err != nil {
			fmt.Fprintf(errOut, "error: reading password: %v\n", err)
			return "", "", "", exitcode.UserError
		}
	}
	return email, password, confirm, exitcode.Success
}
