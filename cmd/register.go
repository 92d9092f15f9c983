package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/investmate"
	"github.com/google/subcommands"
)

type registerCmd struct {
	name string
}

func (*registerCmd) Name() string     { return "register" }
func (*registerCmd) Synopsis() string { return "register a new investor account" }
func (*registerCmd) Usage() string {
	return `investmate -email <email> register -name <full name>

  Registers a new account. The password is read from INVESTMATE_PASSWORD or
  from the terminal. Emails are unique, ignoring case.
`
}

func (c *registerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Full name of the investor")
}

func (c *registerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		return exitStatus(err)
	}
	password, ok := os.LookupEnv(EnvPassword)
	if !ok {
		pw, err := GetPassword(os.Stderr)
		if err != nil {
			return exitStatus(fmt.Errorf("cannot read password: %w", err))
		}
		password = string(pw)
	}
	if err := investmate.NewAccountService(cfg).Register(investmate.NewInvestor(*email, password, c.name)); err != nil {
		return exitStatus(err)
	}
	fmt.Printf("Registered %s\n", *email)
	return subcommands.ExitSuccess
}
