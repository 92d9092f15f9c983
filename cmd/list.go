package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/investmate/renderer"
	"github.com/google/subcommands"
)

type listCmd struct {
	html string
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "display a summary of the portfolio" }
func (*listCmd) Usage() string {
	return `investmate -email <email> list [-html <file>]

  Displays every investment, the totals per type and the zakat due.
  With -html, the summary is written to <file> as HTML instead.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.html, "html", "", "Write the summary as HTML to this file")
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := openPortfolio()
	if err != nil {
		return exitStatus(err)
	}
	s, err := p.Summary()
	if err != nil {
		return exitStatus(err)
	}
	if c.html == "" {
		printMarkdown(renderer.SummaryMarkdown(s))
		return subcommands.ExitSuccess
	}

	html, err := renderer.SummaryHTML(s)
	if err != nil {
		return exitStatus(err)
	}
	if err := os.WriteFile(c.html, []byte(html), 0644); err != nil {
		return exitStatus(fmt.Errorf("cannot write %q: %w", c.html, err))
	}
	fmt.Printf("Summary written to %s\n", c.html)
	return subcommands.ExitSuccess
}
