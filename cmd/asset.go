package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/investmate"
	"github.com/google/subcommands"
)

// assetFlags are the fields of an investment.
type assetFlags struct {
	id, name, value, typ string
}

func (a *assetFlags) set(f *flag.FlagSet, verb string) {
	f.StringVar(&a.id, "id", "", "Id of the investment to "+verb)
	f.StringVar(&a.name, "name", "", "Name of the investment")
	f.StringVar(&a.value, "value", "", "Value of the investment, in the configured currency")
	f.StringVar(&a.typ, "type", "", "Type of the investment (e.g. metal, stock, cash)")
}

type addCmd struct{ assetFlags }

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add an investment to the portfolio" }
func (*addCmd) Usage() string {
	return `investmate -email <email> add -id <id> -name <name> -value <value> -type <type>

  Appends an investment. Ids are not required to be unique.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) { c.set(f, "add") }

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := openPortfolio()
	if err != nil {
		return exitStatus(err)
	}
	if err := p.Add(investmate.Asset{ID: c.id, Name: c.name, Value: c.value, Type: c.typ}); err != nil {
		return exitStatus(err)
	}
	fmt.Printf("Added %q to %s\n", c.id, p.Ledger().Path())
	return subcommands.ExitSuccess
}

type editCmd struct{ assetFlags }

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "replace name, value and type of an investment" }
func (*editCmd) Usage() string {
	return `investmate -email <email> edit -id <id> -name <name> -value <value> -type <type>

  Replaces the name, value and type of the first investment with this id.
  The id and the position of the investment do not change.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) { c.set(f, "edit") }

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := openPortfolio()
	if err != nil {
		return exitStatus(err)
	}
	if err := p.Edit(c.id, c.name, c.value, c.typ); err != nil {
		return exitStatus(err)
	}
	fmt.Printf("Updated %q\n", c.id)
	return subcommands.ExitSuccess
}

type removeCmd struct {
	id string
}

func (*removeCmd) Name() string     { return "remove" }
func (*removeCmd) Synopsis() string { return "remove investments from the portfolio" }
func (*removeCmd) Usage() string {
	return `investmate -email <email> remove -id <id>

  Removes every investment with this id.
`
}

func (c *removeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the investments to remove")
}

func (c *removeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := openPortfolio()
	if err != nil {
		return exitStatus(err)
	}
	n, err := p.Remove(c.id)
	if err != nil {
		return exitStatus(err)
	}
	fmt.Printf("Removed %d investment(s) with id %q\n", n, c.id)
	return subcommands.ExitSuccess
}
