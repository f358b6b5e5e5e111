package commands

import (
	"github.com/docopt/docopt-go"
	"github.com/pkg/errors"
)

const Version = "ircline 0.1.0"

const Usage = `ircline parses and encodes IRC protocol lines.

Usage:
  ircline parse [--format=<fmt>] [--no-color] [<line>...]
  ircline encode [--format=<fmt>]
  ircline isupport [<line>...]
  ircline strip [<line>...]
  ircline init [-f]
  ircline -h | --help
  ircline --version

Commands:
  parse     Displays parsed messages.
  encode    Reads structured messages and writes them as protocol lines.
  isupport  Displays the tokens of RPL_ISUPPORT (005) messages.
  strip     Removes text formatting from the parameters of messages.
  init      Creates a config file with default values.

Options:
  -h --help       Show this screen.
  --version       Show version.
  --format=<fmt>  One of text, json, yaml, proto or wire. Parse defaults to
                  the format from the config file, encode defaults to json.
  --no-color      Disable coloured output.
  -f              Overwrite existing config.

Lines are read from the standard input if none are given as arguments.`

type command func(opts docopt.Opts) error

var subcommands = map[string]command{
	"parse":    runParse,
	"encode":   runEncode,
	"isupport": runISupport,
	"strip":    runStrip,
	"init":     runInit,
}

// Run executes the subcommand selected in the parsed arguments.
func Run(opts docopt.Opts) error {
	for name, cmd := range subcommands {
		if selected, _ := opts.Bool(name); selected {
			return cmd(opts)
		}
	}
	return errors.New("no command selected")
}
