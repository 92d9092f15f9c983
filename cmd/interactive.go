package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
)

type menuCmd struct{}

func (*menuCmd) Name() string     { return "menu" }
func (*menuCmd) Synopsis() string { return "run the interactive menu" }
func (*menuCmd) Usage() string {
	return `menu

  Runs the interactive menu: register or log in, then add, edit, remove and
  list investments, estimate zakat and export reports.
  This is what investmate does when run without a command.
`
}

func (c *menuCmd) SetFlags(f *flag.FlagSet) {}

func (c *menuCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		return exitStatus(err)
	}
	RunMenu(cfg)
	return subcommands.ExitSuccess
}
