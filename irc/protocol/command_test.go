package protocol

import (
	"testing"

	"github.com/pkg/errors"
)

var parseCommandTests = []struct {
	input   string
	command Command
	rest    string
}{
	{"PRIVMSG #chan :hi", Verb("PRIVMSG"), "#chan :hi"},
	{"privmsg", Verb("privmsg"), ""},
	{"001 nick :Welcome", RPL_WELCOME, "nick :Welcome"},
	{"000", Numeric(0), ""},
	{"999 ", Numeric(999), ""},
	{"CMD  a", Verb("CMD"), " a"},
}

func TestParseCommand(t *testing.T) {
	for _, tt := range parseCommandTests {
		command, rest, err := parseCommand(tt.input)
		if err != nil {
			t.Fatalf("parseCommand(%q) returned an error: %s", tt.input, err)
		}
		if command != tt.command {
			t.Fatalf("parseCommand(%q), want %#v, got %#v", tt.input, tt.command, command)
		}
		if rest != tt.rest {
			t.Fatalf("parseCommand(%q), want remainder %q, got %q", tt.input, tt.rest, rest)
		}
	}
}

var parseCommandErrorTests = []struct {
	input string
	err   error
}{
	{"", ErrMissingCommand},
	{" CMD", ErrMissingCommand},
	{"12", ErrInvalidCommand},
	{"1234", ErrInvalidCommand},
	{"CMD1", ErrInvalidCommand},
	{"PRIV-MSG a", ErrInvalidCommand},
	{"ŻÓŁW", ErrInvalidCommand},
}

func TestParseCommandErrors(t *testing.T) {
	for _, tt := range parseCommandErrorTests {
		if _, _, err := parseCommand(tt.input); errors.Cause(err) != tt.err {
			t.Fatalf("parseCommand(%q), want %v, got %v", tt.input, tt.err, err)
		}
	}
}

func TestNumeric(t *testing.T) {
	if s := RPL_WELCOME.String(); s != "001" {
		t.Fatal(s)
	}
	if s := RPL_ISUPPORT.Name(); s != "RPL_ISUPPORT" {
		t.Fatal(s)
	}
	if s := ERR_NICKNAMEINUSE.Name(); s != "ERR_NICKNAMEINUSE" {
		t.Fatal(s)
	}
	if s := Numeric(999).Name(); s != "999" {
		t.Fatal(s)
	}
}
