package protocol

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Message represents a single message exchanged using the IRC protocol.
// Tags and Prefix are nil if the message didn't carry them.
type Message struct {
	Tags    Tags
	Prefix  Prefix
	Command Command
	Params  []string
}

// Marshal encodes a message as specified by the IRC protocol. The returned
// line doesn't contain the CRLF terminator. Use Validate to check if the
// message can be encoded without changing its meaning.
func (msg *Message) Marshal() string {
	b := &strings.Builder{}
	// Tags
	if len(msg.Tags) > 0 {
		b.WriteByte('@')
		for i, tag := range msg.Tags {
			if i > 0 {
				b.WriteByte(';')
			}
			b.WriteString(tag.String())
		}
		b.WriteByte(' ')
	}
	// Prefix
	if msg.Prefix != nil {
		b.WriteByte(':')
		b.WriteString(msg.Prefix.String())
		b.WriteByte(' ')
	}
	// Command
	if msg.Command != nil {
		b.WriteString(msg.Command.String())
	}
	// Params
	for i, param := range msg.Params {
		b.WriteByte(' ')
		if i == len(msg.Params)-1 && needsTrailing(param) {
			b.WriteByte(':')
		}
		b.WriteString(param)
	}
	return b.String()
}

// needsTrailing returns true if the parameter can only be sent as the
// colon-prefixed trailing parameter.
func needsTrailing(param string) bool {
	return param == "" || strings.HasPrefix(param, ":") || strings.Contains(param, " ")
}

// Validate returns ErrInvalidMessage if Marshal can't encode the message
// in a way which parses back into the same message using the default
// options.
func (msg *Message) Validate() error {
	for _, tag := range msg.Tags {
		if !validKey(tag.Key) {
			return errors.Wrapf(ErrInvalidMessage, "invalid tag key %q", tag.Key)
		}
		if !tag.HasValue && tag.Value != "" {
			return errors.Wrapf(ErrInvalidMessage, "tag %q has a value but HasValue is false", tag.Key)
		}
	}

	switch cmd := msg.Command.(type) {
	case nil:
		return errors.Wrap(ErrInvalidMessage, "no command")
	case Verb:
		if !isVerb(string(cmd)) {
			return errors.Wrapf(ErrInvalidMessage, "invalid verb %q", cmd)
		}
	case Numeric:
		if cmd > 999 {
			return errors.Wrapf(ErrInvalidMessage, "numeric %d out of range", cmd)
		}
	}

	if msg.Prefix != nil {
		body := msg.Prefix.String()
		if strings.ContainsAny(body, " \r\n\x00") {
			return errors.Wrapf(ErrInvalidMessage, "invalid prefix %q", body)
		}
		if parsed := defaultParser.prefix(body, msg.Command); parsed != msg.Prefix {
			return errors.Wrapf(ErrInvalidMessage, "prefix %#v would be read as %#v", msg.Prefix, parsed)
		}
	}

	for i, param := range msg.Params {
		if strings.ContainsAny(param, "\r\n\x00") {
			return errors.Wrapf(ErrInvalidMessage, "parameter %d contains a line break or NUL", i)
		}
		if i < len(msg.Params)-1 && needsTrailing(param) {
			return errors.Wrapf(ErrInvalidMessage, "parameter %d can only be the last one", i)
		}
	}
	return nil
}

// StripTags returns a copy of the message without the tags.
func (msg *Message) StripTags() *Message {
	rv := *msg
	rv.Tags = nil
	return &rv
}

func (msg *Message) String() string {
	return fmt.Sprintf("Tags [%s] Prefix [%v] Command [%v] Params%q", msg.Tags, msg.Prefix, msg.Command, msg.Params)
}

// Parser parses messages using the provided options. Parser holds no state
// besides the options and can be used concurrently.
type Parser struct {
	opts Options
}

// NewParser creates a parser which uses the provided options.
func NewParser(opts Options) *Parser {
	return &Parser{opts: opts}
}

// Unmarshal decodes a line which doesn't contain the CRLF terminator. The
// returned error can be compared with ErrMalformedTag, ErrMissingCommand or
// ErrInvalidCommand using errors.Cause.
func (p *Parser) Unmarshal(line string) (*Message, error) {
	tags, rest, err := parseTags(line)
	if err != nil {
		return nil, err
	}

	body, hasPrefix, rest := parsePrefix(rest)

	command, rest, err := parseCommand(rest)
	if err != nil {
		return nil, err
	}

	rv := &Message{
		Tags:    tags,
		Command: command,
		Params:  parseParams(rest, p.opts),
	}
	if hasPrefix {
		rv.Prefix = p.prefix(body, command)
	}
	return rv, nil
}

func (p *Parser) prefix(body string, command Command) Prefix {
	policy := p.opts.BareNames
	if _, ok := command.(Numeric); ok && policy == BareNameByDot {
		policy = BareNameAsServer
	}
	return ParsePrefix(body, policy)
}

var defaultParser = NewParser(Options{})

// UnmarshalMessage decodes a line using the default options.
func UnmarshalMessage(line string) (*Message, error) {
	return defaultParser.Unmarshal(line)
}
