package commands

import (
	"fmt"

	"github.com/boreq/ircline/irc/isupport"
	"github.com/boreq/ircline/irc/protocol"
	"github.com/boreq/ircline/render"
	"github.com/docopt/docopt-go"
)

func runISupport(opts docopt.Opts) error {
	conf, err := GetConfig()
	if err != nil {
		return err
	}

	parser, err := GetParser(conf)
	if err != nil {
		return err
	}

	ctx, cancel := interruptContext()
	defer cancel()

	var tokens []isupport.Token
	err = forEachMessage(ctx, parser, lineArguments(opts), func(msg *protocol.Message) error {
		t, err := isupport.FromMessage(msg)
		if err != nil {
			log.Printf("skipping %s: %s", msg, err)
			return nil
		}
		tokens = append(tokens, t...)
		return nil
	})
	if err != nil {
		return err
	}

	for _, name := range isupport.Duplicates(tokens) {
		log.Printf("token %s was advertised more than once", name)
	}

	render.ISupportTable(Stdout, tokens)

	mapping, err := isupport.CaseMapping(tokens)
	if err != nil {
		return err
	}
	fmt.Fprintf(Stdout, "casemapping: %s\n", mapping)
	return nil
}
