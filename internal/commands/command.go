// Package commands provides the command interface and implementations.
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
)

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// NeedsAuth returns true if the command requires a signed-in user.
	// Commands like help, version, signup, login, forgot return false.
	NeedsAuth() bool

	// RegisterFlags registers command-specific flags.
	RegisterFlags(fs *flag.FlagSet)

	// Run executes the command.
	// cfg is always provided (config dir, service coordinates).
	// a is nil when the hosted service is not configured.
	// args contains positional arguments after flag parsing.
	// Returns exit code.
	Run(ctx context.Context, cfg *config.Config, a *app.App, args []string, in io.Reader, out, errOut io.Writer) int
}

// promptLine prints label and reads one line. Used for credentials; the
// answer is trimmed of the trailing newline only. Callers must share one
// reader across all prompts of an invocation: a fresh bufio.Reader per
// prompt would swallow the lines it buffered past the first answer.
func promptLine(r *bufio.Reader, out io.Writer, label string) (string, error) {
	fmt.Fprintf(out, "%s: ", label)
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// promptWriter returns where prompt labels go: discarded in quiet mode,
// which keeps stdout clean for scripted use.
func promptWriter(cfg *config.Config, out io.Writer) io.Writer {
	if cfg.Quiet {
		return io.Discard
	}
	return out
}

// printFieldErrors writes field-keyed validation messages one per line.
func printFieldErrors(errOut io.Writer, errs map[string]string) {
	for _, field := range []string{"title", "description", "email", "password", "confirmPassword"} {
		if msg, ok := errs[field]; ok {
			fmt.Fprintf(errOut, "error: %s: %s\n", field, msg)
		}
	}
}
