// Command investmate tracks personal investments and estimates zakat.
//
// Run without a command it starts the interactive menu.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/investmate/cmd"
	"github.com/google/subcommands"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	// Exits when called by the shell to complete a command line.
	cmd.Completion(commander).Complete("investmate")

	flag.Parse()

	if flag.NArg() == 0 {
		// Global flags are kept, only the command is added.
		flag.CommandLine.Parse([]string{"menu"})
	}

	name := flag.Arg(0)
	known := false
	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		if c.Name() == name {
			known = true
		}
	})
	if !known {
		if ok, code := cmd.RunExtension(name, flag.Args()[1:]); ok {
			os.Exit(code)
		}
	}

	os.Exit(int(commander.Execute(context.Background())))
}
