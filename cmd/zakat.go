package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/investmate"
	"github.com/google/subcommands"
)

type zakatCmd struct{}

func (*zakatCmd) Name() string     { return "zakat" }
func (*zakatCmd) Synopsis() string { return "estimate the zakat due on the portfolio" }
func (*zakatCmd) Usage() string {
	return `investmate -email <email> zakat

  Sums the values of the investments and applies the zakat rate.
  Values that are not numbers are skipped and listed.
`
}

func (c *zakatCmd) SetFlags(f *flag.FlagSet) {}

func (c *zakatCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := openPortfolio()
	if err != nil {
		return exitStatus(err)
	}
	est, err := p.Zakat()
	if err != nil {
		return exitStatus(err)
	}
	for _, a := range est.Skipped {
		fmt.Printf("Skipped %s (%s): %q is not a number\n", a.Name, a.ID, a.Value)
	}
	fmt.Printf("Wealth: %s\n", investmate.M(est.Wealth, p.Currency()).Plain())
	fmt.Printf("Zakat: %s\n", investmate.M(est.Total, p.Currency()).Plain())
	return subcommands.ExitSuccess
}
