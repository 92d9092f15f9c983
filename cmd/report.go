package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/investmate"
	"github.com/google/subcommands"
)

type reportCmd struct {
	kind   string
	format string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "export a compliance or financial report" }
func (*reportCmd) Usage() string {
	return `investmate -email <email> report -kind compliance|financial [-format pdf|csv]

  Exports a report into the report directory:
  - compliance: every investment and the total zakat, in compliance_<owner>.txt
  - financial: the investment records, in financial_<owner>.txt when the format
    is pdf and financial_<owner>.csv otherwise.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "kind", "compliance", "Kind of report: compliance or financial")
	f.StringVar(&c.format, "format", "csv", "Format of the financial report: pdf or csv")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var export func(*investmate.PortfolioService) (string, error)
	switch c.kind {
	case "compliance":
		export = ExportComplianceReport
	case "financial":
		export = func(p *investmate.PortfolioService) (string, error) { return ExportFinancialReport(p, c.format) }
	default:
		return exitStatus(fmt.Errorf("%w: unknown report kind %q", investmate.ErrInvalidInput, c.kind))
	}

	p, err := openPortfolio()
	if err != nil {
		return exitStatus(err)
	}
	path, err := export(p)
	if err != nil {
		return exitStatus(err)
	}
	fmt.Printf("Report exported to %s\n", path)
	return subcommands.ExitSuccess
}
