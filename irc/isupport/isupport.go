// Package isupport parses the tokens servers send in RPL_ISUPPORT (005)
// replies to advertise the features they support.
package isupport

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/boreq/ircline/irc/casemapping"
	"github.com/boreq/ircline/irc/protocol"
	"github.com/pkg/errors"
)

var (
	ErrEmptyToken   = errors.New("empty token")
	ErrNoName       = errors.New("no name before '='")
	ErrNegatedValue = errors.New("negated token has a value")
	ErrInvalidName  = errors.New("invalid byte in the name")
	ErrInvalidValue = errors.New("invalid byte in the value")
	ErrNotISupport  = errors.New("not an RPL_ISUPPORT message")
)

// Token is a single ISUPPORT token. A negated token (-NAME) withdraws a
// previously advertised feature. HasValue is true if the token contained
// '=', even if the value is empty.
type Token struct {
	Name     string
	Value    string
	HasValue bool
	Negated  bool
}

// ParseToken parses a single token and unescapes its value.
func ParseToken(s string) (Token, error) {
	if s == "" {
		return Token{}, ErrEmptyToken
	}

	var rv Token
	if strings.HasPrefix(s, "-") {
		rv.Negated = true
		s = s[1:]
	}

	rv.Name = s
	if i := strings.IndexByte(s, '='); i >= 0 {
		if rv.Negated {
			return Token{}, errors.Wrapf(ErrNegatedValue, "token %q", s)
		}
		rv.Name, rv.HasValue = s[:i], true
		value, err := unescapeValue(s[i+1:])
		if err != nil {
			return Token{}, err
		}
		rv.Value = value
	}

	if rv.Name == "" {
		return Token{}, errors.Wrapf(ErrNoName, "token %q", s)
	}
	for i := 0; i < len(rv.Name); i++ {
		if c := rv.Name[i]; !('A' <= c && c <= 'Z' || '0' <= c && c <= '9') {
			return Token{}, errors.Wrapf(ErrInvalidName, "byte %q in %q", c, rv.Name)
		}
	}
	return rv, nil
}

// unescapeValue decodes \xHH sequences and validates the remaining bytes.
func unescapeValue(raw string) (string, error) {
	b := &strings.Builder{}
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c == '\\' {
			if i+3 < len(raw) && raw[i+1] == 'x' {
				n, err := strconv.ParseUint(raw[i+2:i+4], 16, 8)
				if err == nil {
					b.WriteByte(byte(n))
					i += 3
					continue
				}
			}
			return "", errors.Wrapf(ErrInvalidValue, "bad escape in %q", raw)
		}
		if c <= ' ' || c == 0x7f {
			return "", errors.Wrapf(ErrInvalidValue, "byte %q in %q", c, raw)
		}
		b.WriteByte(c)
	}
	return b.String(), nil
}

func escapeValue(value string) string {
	b := &strings.Builder{}
	for i := 0; i < len(value); i++ {
		c := value[i]
		if c <= ' ' || c == '\\' || c == '=' || c == 0x7f {
			fmt.Fprintf(b, "\\x%02X", c)
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

func (t Token) String() string {
	switch {
	case t.Negated:
		return "-" + t.Name
	case t.HasValue:
		return t.Name + "=" + escapeValue(t.Value)
	default:
		return t.Name
	}
}

// FromMessage returns the tokens carried by an RPL_ISUPPORT message. The
// first parameter is the client's nick and the last one is a human readable
// text, neither of them is a token.
func FromMessage(msg *protocol.Message) ([]Token, error) {
	if msg.Command != protocol.RPL_ISUPPORT {
		return nil, errors.Wrapf(ErrNotISupport, "command %v", msg.Command)
	}
	if len(msg.Params) < 3 {
		return nil, nil
	}

	var rv []Token
	for _, param := range msg.Params[1 : len(msg.Params)-1] {
		token, err := ParseToken(param)
		if err != nil {
			return nil, err
		}
		rv = append(rv, token)
	}
	return rv, nil
}

// Duplicates returns the names which appear in more than one token.
func Duplicates(tokens []Token) []string {
	seen := make(map[string]int)
	var rv []string
	for _, token := range tokens {
		seen[token.Name]++
		if seen[token.Name] == 2 {
			rv = append(rv, token.Name)
		}
	}
	return rv
}

// CaseMapping returns the case mapping advertised by the last CASEMAPPING
// token. Servers which don't advertise one use RFC1459.
func CaseMapping(tokens []Token) (casemapping.CaseMapping, error) {
	rv := casemapping.RFC1459
	for _, token := range tokens {
		if token.Name != "CASEMAPPING" {
			continue
		}
		if token.Negated {
			rv = casemapping.RFC1459
			continue
		}
		m, err := casemapping.Parse(token.Value)
		if err != nil {
			return rv, err
		}
		rv = m
	}
	return rv, nil
}
