package protocol

import (
	"bytes"
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestDecoder(t *testing.T) {
	input := "PING :irc.example.com\r\n\r\n@a=1 CMD x\nbad-command\r\n:nick QUIT :bye"
	decoder := NewDecoder(strings.NewReader(input))

	msg, err := decoder.Decode()
	if err != nil {
		t.Fatal(err)
	}
	if msg.Command != Verb("PING") || !reflect.DeepEqual(msg.Params, []string{"irc.example.com"}) {
		t.Fatal(msg)
	}

	msg, err = decoder.Decode()
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := msg.Tags.Get("a"); v != "1" {
		t.Fatal(msg)
	}

	_, err = decoder.Decode()
	if errors.Cause(err) != ErrInvalidCommand || !IsParseError(err) {
		t.Fatalf("wrong error: %v", err)
	}

	msg, err = decoder.Decode()
	if err != nil {
		t.Fatal(err)
	}
	if msg.Prefix != (UserPrefix{Nick: "nick"}) || msg.Params[0] != "bye" {
		t.Fatal(msg)
	}

	if _, err = decoder.Decode(); err != io.EOF {
		t.Fatalf("wrong error: %v", err)
	}
}

func TestDecoderKeepsTrailingSpaces(t *testing.T) {
	decoder := NewDecoder(strings.NewReader("PRIVMSG #chan :hi  \r\n"))
	msg, err := decoder.Decode()
	if err != nil {
		t.Fatal(err)
	}
	if msg.Params[1] != "hi  " {
		t.Fatalf("%q", msg.Params[1])
	}
}

func TestDecoderLineTooLong(t *testing.T) {
	line := "PRIVMSG #chan :" + strings.Repeat("a", MaxLineLength.Int()) + "\r\n"
	decoder := NewDecoder(strings.NewReader(line))
	if _, err := decoder.Decode(); errors.Cause(err) != ErrLineTooLong || IsParseError(err) {
		t.Fatalf("wrong error: %v", err)
	}
}

func TestParserDecoder(t *testing.T) {
	p := NewParser(Options{Spaces: SpacesKeepEmpty})
	decoder := p.NewDecoder(strings.NewReader("CMD a  b\r\n"))
	msg, err := decoder.Decode()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(msg.Params, []string{"a", "", "b"}) {
		t.Fatalf("%q", msg.Params)
	}
}

func TestEncoder(t *testing.T) {
	buf := &bytes.Buffer{}
	encoder := NewEncoder(buf)

	msg := &Message{
		Command: Verb("PRIVMSG"),
		Params:  []string{"#chan", "hello world"},
	}
	if err := encoder.Encode(msg); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "PRIVMSG #chan :hello world\r\n" {
		t.Fatalf("%q", buf.String())
	}

	buf.Reset()
	msg = &Message{
		Command: Verb("PRIVMSG"),
		Params:  []string{"#chan", "injected\r\nQUIT"},
	}
	if err := encoder.Encode(msg); errors.Cause(err) != ErrInvalidMessage {
		t.Fatalf("wrong error: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("%q was written", buf.String())
	}
}

func TestEncoderDecoder(t *testing.T) {
	buf := &bytes.Buffer{}
	encoder := NewEncoder(buf)
	for _, msg := range roundTripMessages {
		if err := encoder.Encode(msg); err != nil {
			t.Fatal(err)
		}
	}

	decoder := NewDecoder(buf)
	for _, msg := range roundTripMessages {
		decoded, err := decoder.Decode()
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(decoded, msg) {
			t.Fatalf("want %s, got %s", msg, decoded)
		}
	}
}
