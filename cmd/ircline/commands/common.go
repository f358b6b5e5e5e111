package commands

import (
	"io"
	"os"
	"os/signal"

	"github.com/boreq/ircline/config"
	"github.com/boreq/ircline/irc/protocol"
	"github.com/boreq/ircline/utils"
	"github.com/docopt/docopt-go"
	"github.com/pkg/errors"
	"golang.org/x/net/context"
)

var log = utils.Logger("commands")

// Stdin is the source of lines and documents, replaced in tests.
var Stdin io.Reader = os.Stdin

// Stdout receives the output of the commands, replaced in tests.
var Stdout io.Writer = os.Stdout

func GetConfig() (*config.Config, error) {
	path := config.GetConfigPath()
	return config.Get(path)
}

func GetParser(conf *config.Config) (*protocol.Parser, error) {
	opts, err := conf.ParserOptions()
	if err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return protocol.NewParser(opts), nil
}

func stringOption(opts docopt.Opts, name string, def string) string {
	if value, ok := opts[name].(string); ok && value != "" {
		return value
	}
	return def
}

func lineArguments(opts docopt.Opts) []string {
	lines, _ := opts["<line>"].([]string)
	return lines
}

// interruptContext returns a context which is cancelled on SIGINT.
func interruptContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	go func() {
		defer signal.Stop(c)
		select {
		case <-c:
			cancel()
		case <-ctx.Done():
		}
	}()
	return ctx, cancel
}

type decodeResult struct {
	msg *protocol.Message
	err error
}

// forEachMessage calls fn for every message given in lines or, if there are
// none, read from Stdin until the input ends or ctx is cancelled. Malformed
// lines are logged and skipped.
func forEachMessage(ctx context.Context, parser *protocol.Parser, lines []string, fn func(*protocol.Message) error) error {
	if len(lines) > 0 {
		for _, line := range lines {
			msg, err := parser.Unmarshal(line)
			if err != nil {
				log.Printf("skipping %q: %s", line, err)
				continue
			}
			if err := fn(msg); err != nil {
				return err
			}
		}
		return nil
	}

	results := make(chan decodeResult)
	go func() {
		decoder := parser.NewDecoder(Stdin)
		for {
			msg, err := decoder.Decode()
			select {
			case results <- decodeResult{msg, err}:
			case <-ctx.Done():
				return
			}
			if err != nil && !protocol.IsParseError(err) {
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case result := <-results:
			if result.err == io.EOF {
				return nil
			}
			if result.err != nil {
				if protocol.IsParseError(result.err) {
					log.Printf("skipping: %s", result.err)
					continue
				}
				return errors.Wrap(result.err, "could not read the input")
			}
			if err := fn(result.msg); err != nil {
				return err
			}
		}
	}
}
