package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/investmate"
	"github.com/google/subcommands"
)

type queryCmd struct{}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "evaluate a JSONPath expression over the portfolio" }
func (*queryCmd) Usage() string {
	return `investmate -email <email> query <jsonpath>

  Evaluates a JSONPath expression over the portfolio document and prints the
  result as JSON. See "investmate topic query" for the document layout.

  Example:
    investmate -email a@x.com query '$.assets[?(@.type == "metal")].name'
`
}

func (c *queryCmd) SetFlags(f *flag.FlagSet) {}

func (c *queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		return exitStatus(fmt.Errorf("%w: a JSONPath expression is required", investmate.ErrInvalidInput))
	}
	expr := strings.Join(f.Args(), " ")

	p, err := openPortfolio()
	if err != nil {
		return exitStatus(err)
	}
	doc, err := p.Document()
	if err != nil {
		return exitStatus(err)
	}
	v, err := investmate.QueryPortfolio(doc, expr)
	if err != nil {
		return exitStatus(err)
	}
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return exitStatus(fmt.Errorf("cannot encode result: %w", err))
	}
	fmt.Println(string(out))
	return subcommands.ExitSuccess
}
