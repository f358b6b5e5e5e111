package commands

import (
	"github.com/boreq/ircline/irc/protocol"
	"github.com/boreq/ircline/render"
	"github.com/docopt/docopt-go"
	"github.com/pkg/errors"
)

func runParse(opts docopt.Opts) error {
	conf, err := GetConfig()
	if err != nil {
		return err
	}

	parser, err := GetParser(conf)
	if err != nil {
		return err
	}

	noColor, _ := opts.Bool("--no-color")
	format := stringOption(opts, "--format", conf.Format)
	renderer, err := render.NewRenderer(format, Stdout, conf.Color && !noColor)
	if err != nil {
		return err
	}

	ctx, cancel := interruptContext()
	defer cancel()

	err = forEachMessage(ctx, parser, lineArguments(opts), func(msg *protocol.Message) error {
		return errors.Wrap(renderer.Render(msg), "could not render the message")
	})
	if err != nil {
		return err
	}
	return renderer.Close()
}
