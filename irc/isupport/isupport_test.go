package isupport

import (
	"reflect"
	"testing"

	"github.com/boreq/ircline/irc/casemapping"
	"github.com/boreq/ircline/irc/protocol"
	"github.com/pkg/errors"
)

var parseTokenTests = []struct {
	s     string
	token Token
}{
	{"SAFELIST", Token{Name: "SAFELIST"}},
	{"CHANTYPES=#&", Token{Name: "CHANTYPES", Value: "#&", HasValue: true}},
	{"EXCEPTS=", Token{Name: "EXCEPTS", HasValue: true}},
	{"-KNOCK", Token{Name: "KNOCK", Negated: true}},
	{`NETWORK=Example\x20Net`, Token{Name: "NETWORK", Value: "Example Net", HasValue: true}},
	{"CHANMODES=b,k,l,imnpst", Token{Name: "CHANMODES", Value: "b,k,l,imnpst", HasValue: true}},
	{"TARGMAX=PRIVMSG:4,NOTICE:", Token{Name: "TARGMAX", Value: "PRIVMSG:4,NOTICE:", HasValue: true}},
}

func TestParseToken(t *testing.T) {
	for _, tt := range parseTokenTests {
		token, err := ParseToken(tt.s)
		if err != nil {
			t.Fatalf("ParseToken(%q) returned an error: %s", tt.s, err)
		}
		if token != tt.token {
			t.Fatalf("ParseToken(%q), want %+v, got %+v", tt.s, tt.token, token)
		}
	}
}

var parseTokenErrorTests = []struct {
	s   string
	err error
}{
	{"", ErrEmptyToken},
	{"=value", ErrNoName},
	{"-", ErrNoName},
	{"-KNOCK=1", ErrNegatedValue},
	{"chantypes=#", ErrInvalidName},
	{"CHAN TYPES", ErrInvalidName},
	{`NETWORK=bad\x2`, ErrInvalidValue},
	{`NETWORK=bad\q`, ErrInvalidValue},
	{"NETWORK=a\x01b", ErrInvalidValue},
}

func TestParseTokenErrors(t *testing.T) {
	for _, tt := range parseTokenErrorTests {
		if _, err := ParseToken(tt.s); errors.Cause(err) != tt.err {
			t.Fatalf("ParseToken(%q), want %v, got %v", tt.s, tt.err, err)
		}
	}
}

func TestTokenString(t *testing.T) {
	tokens := []string{"SAFELIST", "EXCEPTS=", "-KNOCK", `NETWORK=Example\x20Net\x5C`}
	for _, s := range tokens {
		token, err := ParseToken(s)
		if err != nil {
			t.Fatal(err)
		}
		if token.String() != s {
			t.Fatalf("String(), want %s, got %s", s, token.String())
		}
	}
}

func TestFromMessage(t *testing.T) {
	msg, err := protocol.UnmarshalMessage(":irc.example.com 005 nick CASEMAPPING=ascii CHANTYPES=# -KNOCK CHANTYPES=#& :are supported by this server")
	if err != nil {
		t.Fatal(err)
	}

	tokens, err := FromMessage(msg)
	if err != nil {
		t.Fatal(err)
	}
	expected := []Token{
		{Name: "CASEMAPPING", Value: "ascii", HasValue: true},
		{Name: "CHANTYPES", Value: "#", HasValue: true},
		{Name: "KNOCK", Negated: true},
		{Name: "CHANTYPES", Value: "#&", HasValue: true},
	}
	if !reflect.DeepEqual(tokens, expected) {
		t.Fatalf("want %+v, got %+v", expected, tokens)
	}

	if dups := Duplicates(tokens); !reflect.DeepEqual(dups, []string{"CHANTYPES"}) {
		t.Fatal(dups)
	}

	m, err := CaseMapping(tokens)
	if err != nil {
		t.Fatal(err)
	}
	if m != casemapping.ASCII {
		t.Fatal(m)
	}
}

func TestFromMessageWrongCommand(t *testing.T) {
	msg, err := protocol.UnmarshalMessage(":irc.example.com 001 nick :Welcome")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := FromMessage(msg); errors.Cause(err) != ErrNotISupport {
		t.Fatalf("wrong error: %v", err)
	}
}

func TestCaseMappingDefault(t *testing.T) {
	m, err := CaseMapping(nil)
	if err != nil {
		t.Fatal(err)
	}
	if m != casemapping.RFC1459 {
		t.Fatal(m)
	}
}
