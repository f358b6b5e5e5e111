package commands

import (
	"io"

	"github.com/boreq/ircline/render"
	"github.com/docopt/docopt-go"
	"github.com/pkg/errors"
)

func runEncode(opts docopt.Opts) error {
	conf, err := GetConfig()
	if err != nil {
		return err
	}

	parser, err := GetParser(conf)
	if err != nil {
		return err
	}

	format := stringOption(opts, "--format", render.JSON)
	reader, err := render.NewReader(format, Stdin, parser)
	if err != nil {
		return err
	}

	renderer, err := render.NewRenderer(render.Wire, Stdout, false)
	if err != nil {
		return err
	}

	for {
		msg, err := reader.Read()
		if err == io.EOF {
			return renderer.Close()
		}
		if err != nil {
			return errors.Wrap(err, "could not read a message")
		}
		if err := renderer.Render(msg); err != nil {
			return errors.Wrap(err, "could not encode the message")
		}
	}
}
