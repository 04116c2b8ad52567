package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(&blocksCmd{}, "")
	subcommands.Register(&codeCmd{}, "")
	subcommands.Register(&jsonCmd{}, "")
	subcommands.Register(&cleanCmd{}, "")
	subcommands.Register(&checkCmd{}, "")
	flag.Parse()
	os.Exit(int(subcommands.Execute(context.Background())))
}
