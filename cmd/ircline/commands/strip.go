package commands

import (
	"github.com/boreq/ircline/irc/formatting"
	"github.com/boreq/ircline/irc/protocol"
	"github.com/boreq/ircline/render"
	"github.com/docopt/docopt-go"
)

func runStrip(opts docopt.Opts) error {
	conf, err := GetConfig()
	if err != nil {
		return err
	}

	parser, err := GetParser(conf)
	if err != nil {
		return err
	}

	renderer, err := render.NewRenderer(render.Wire, Stdout, false)
	if err != nil {
		return err
	}

	ctx, cancel := interruptContext()
	defer cancel()

	err = forEachMessage(ctx, parser, lineArguments(opts), func(msg *protocol.Message) error {
		stripped := stripMessage(msg)
		if err := stripped.Validate(); err != nil {
			log.Printf("skipping %s: %s", msg, err)
			return nil
		}
		return renderer.Render(stripped)
	})
	if err != nil {
		return err
	}
	return renderer.Close()
}

func stripMessage(msg *protocol.Message) *protocol.Message {
	stripped := *msg
	stripped.Params = make([]string, len(msg.Params))
	for i, param := range msg.Params {
		stripped.Params[i] = formatting.Strip(param)
	}
	return &stripped
}
