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
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "tdo help" }
func (c *HelpCmd) NeedsAuth() bool   { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, a *app.App, args []string, in io.Reader, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  tdo                                        List todos, newest first
  tdo list [common flags]
  tdo add [common flags] [--desc <text>] <title...>
  tdo edit [common flags] [--title <text>] [--desc <text>] <n>
  tdo done [common flags] <n>
  tdo undone [common flags] <n>
  tdo rm [common flags] <n>
  tdo ui [common flags]                      Interactive mode
  tdo signup [common flags] [email]
  tdo login [common flags] [email]
  tdo logout [common flags]
  tdo forgot [common flags] [email]
  tdo passwd [common flags]
  tdo help
  tdo version

Common flags:
  --config <dir>   Override config directory
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
`
