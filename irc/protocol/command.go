package protocol

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Command is either a Verb or a Numeric.
type Command interface {
	String() string
	isCommand()
}

// Verb is a command consisting of letters, for example PRIVMSG.
type Verb string

func (v Verb) String() string {
	return string(v)
}

func (Verb) isCommand() {}

// Numeric is a three digit reply code.
type Numeric uint16

// String returns the numeric as sent on the wire, padded with zeros to three
// digits.
func (n Numeric) String() string {
	return fmt.Sprintf("%03d", uint16(n))
}

// Name returns the symbolic name of the numeric, for example RPL_WELCOME,
// or its wire form if the name is not known.
func (n Numeric) Name() string {
	if name, ok := numericNames[n]; ok {
		return name
	}
	return n.String()
}

func (Numeric) isCommand() {}

// ParseCommand classifies a command token.
func ParseCommand(token string) (Command, error) {
	if token == "" {
		return nil, errors.Wrap(ErrMissingCommand, "empty token")
	}
	if isNumeric(token) {
		n := Numeric(token[0]-'0')*100 + Numeric(token[1]-'0')*10 + Numeric(token[2]-'0')
		return n, nil
	}
	if isVerb(token) {
		return Verb(token), nil
	}
	return nil, errors.Wrapf(ErrInvalidCommand, "token %q", token)
}

// parseCommand consumes the command token and at most one space after it.
func parseCommand(input string) (Command, string, error) {
	if input == "" || input[0] == ' ' {
		return nil, "", errors.Wrapf(ErrMissingCommand, "remainder %q", input)
	}

	token, rest := input, ""
	if i := strings.IndexByte(input, ' '); i >= 0 {
		token, rest = input[:i], input[i+1:]
	}

	cmd, err := ParseCommand(token)
	if err != nil {
		return nil, "", err
	}
	return cmd, rest, nil
}

func isNumeric(token string) bool {
	return len(token) == 3 && isDigit(token[0]) && isDigit(token[1]) && isDigit(token[2])
}

func isVerb(token string) bool {
	if token == "" {
		return false
	}
	for i := 0; i < len(token); i++ {
		c := token[i]
		if !('a' <= c && c <= 'z' || 'A' <= c && c <= 'Z') {
			return false
		}
	}
	return true
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
