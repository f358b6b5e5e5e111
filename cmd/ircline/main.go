package main

import (
	"fmt"
	"os"

	"github.com/boreq/ircline/cmd/ircline/commands"
	"github.com/docopt/docopt-go"
)

func main() {
	opts, err := docopt.ParseArgs(commands.Usage, os.Args[1:], commands.Version)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := commands.Run(opts); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
