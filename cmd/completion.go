package cmd

import (
	"flag"

	"github.com/etnz/investmate/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// flagPredictors predicts the values of well known flags.
var flagPredictors = map[string]complete.Predictor{
	"users-file":     predict.Files("*.txt"),
	"ledger-pattern": predict.Files("*.txt"),
	"report-dir":     predict.Dirs("*"),
	"html":           predict.Files("*.html"),
	"currency":       predict.Set{"EGP", "USD", "EUR", "SAR", "AED"},
	"match":          predict.Set{"exact", "prefix"},
	"kind":           predict.Set{"compliance", "financial"},
	"format":         predict.Set{"pdf", "csv"},
}

// Completion returns the shell completion of the global flags and of every
// command registered in c.
func Completion(c *subcommands.Commander) *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: predictFlags(flag.CommandLine),
	}
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		f := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
		cmd.SetFlags(f)
		sub := &complete.Command{Flags: predictFlags(f)}
		if cmd.Name() == "topic" {
			if topics, err := docs.GetAllTopics(); err == nil {
				sub.Args = predict.Set(append(topics, "*"))
			}
		}
		root.Sub[cmd.Name()] = sub
	})
	return root
}

func predictFlags(f *flag.FlagSet) map[string]complete.Predictor {
	flags := map[string]complete.Predictor{}
	f.VisitAll(func(fl *flag.Flag) {
		if p, ok := flagPredictors[fl.Name]; ok {
			flags[fl.Name] = p
			return
		}
		if b, ok := fl.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			flags[fl.Name] = predict.Nothing
			return
		}
		flags[fl.Name] = predict.Something
	})
	return flags
}
