package render

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/boreq/ircline/irc/isupport"
	"github.com/boreq/ircline/irc/protocol"
	"github.com/pkg/errors"
)

var lines = []string{
	"PING",
	"CMD :",
	":irc.example.com 001 nick :Welcome to the network",
	":nick!~user@1.2.3.4 PRIVMSG #chan :hello there",
	":nick QUIT",
	"@a=1;b;c=\\s\\:\\\\ :nick@host TAGMSG #chan",
	"CMD a :b c",
	"CMD a ::b",
	":a.b! CMD",
	":nick!@host CMD",
	": 001 x",
}

func parseLines(t *testing.T) []*protocol.Message {
	var messages []*protocol.Message
	for _, line := range lines {
		msg, err := protocol.UnmarshalMessage(line)
		if err != nil {
			t.Fatalf("UnmarshalMessage(%q) returned an error: %s", line, err)
		}
		messages = append(messages, msg)
	}
	return messages
}

func TestFormats(t *testing.T) {
	for _, format := range []string{JSON, YAML, Proto, Wire} {
		messages := parseLines(t)

		buf := &bytes.Buffer{}
		renderer, err := NewRenderer(format, buf, false)
		if err != nil {
			t.Fatal(err)
		}
		for _, msg := range messages {
			if err := renderer.Render(msg); err != nil {
				t.Fatalf("%s: Render returned an error: %s", format, err)
			}
		}
		if err := renderer.Close(); err != nil {
			t.Fatal(err)
		}

		reader, err := NewReader(format, buf, protocol.NewParser(protocol.Options{}))
		if err != nil {
			t.Fatal(err)
		}
		for _, msg := range messages {
			read, err := reader.Read()
			if err != nil {
				t.Fatalf("%s: Read returned an error: %s", format, err)
			}
			if read.Marshal() != msg.Marshal() {
				t.Fatalf("%s: want %q, got %q", format, msg.Marshal(), read.Marshal())
			}
		}
		if _, err := reader.Read(); err != io.EOF {
			t.Fatalf("%s: expected io.EOF, got %v", format, err)
		}
	}
}

func TestUnknownFormat(t *testing.T) {
	if _, err := NewRenderer("xml", &bytes.Buffer{}, false); errors.Cause(err) != ErrUnknownFormat {
		t.Fatalf("unexpected error %v", err)
	}
	if _, err := NewReader(Text, &bytes.Buffer{}, nil); errors.Cause(err) != ErrUnknownFormat {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestDocument(t *testing.T) {
	msg, err := protocol.UnmarshalMessage("@id=;flag :irc.example.com 433 * nick :Nickname is already in use")
	if err != nil {
		t.Fatal(err)
	}
	doc := NewDocument(msg)
	if doc.Command != "433" || doc.Reply != "ERR_NICKNAMEINUSE" {
		t.Fatalf("unexpected command %q %q", doc.Command, doc.Reply)
	}
	if doc.Prefix == nil || doc.Prefix.Server == nil || *doc.Prefix.Server != "irc.example.com" {
		t.Fatalf("unexpected prefix %#v", doc.Prefix)
	}
	if len(doc.Tags) != 2 || doc.Tags[0].Value == nil || *doc.Tags[0].Value != "" || doc.Tags[1].Value != nil {
		t.Fatalf("unexpected tags %#v", doc.Tags)
	}
}

func TestDocumentInvalid(t *testing.T) {
	server := "irc.example.com"
	var tests = []Document{
		{Command: ""},
		{Command: "12"},
		{Command: "PRIVMSG", Prefix: &PrefixDocument{Server: &server, Nick: "nick"}},
		{Command: "001", Prefix: &PrefixDocument{Nick: "nick"}},
		{Command: "PRIVMSG", Params: []string{"a b", "c"}},
		{Command: "PRIVMSG", Tags: []TagDocument{{Key: "a;b"}}},
	}

	for _, doc := range tests {
		if _, err := doc.Message(); err == nil {
			t.Fatalf("expected an error for %#v", doc)
		}
	}
}

func TestText(t *testing.T) {
	msg, err := protocol.UnmarshalMessage("@time=2020;flag :nick!user@host 001 nick :\x02Welcome\x02 \x0304,01home")
	if err != nil {
		t.Fatal(err)
	}

	buf := &bytes.Buffer{}
	renderer, err := NewRenderer(Text, buf, false)
	if err != nil {
		t.Fatal(err)
	}
	if err := renderer.Render(msg); err != nil {
		t.Fatal(err)
	}
	if err := renderer.Close(); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, expected := range []string{
		"001 (RPL_WELCOME)",
		"nick!user@host",
		`"Welcome home"`,
		"time",
		`"2020"`,
		"(none)",
	} {
		if !strings.Contains(out, expected) {
			t.Fatalf("output doesn't contain %q:\n%s", expected, out)
		}
	}
	if strings.ContainsAny(out, "\x02\x03\x1b") {
		t.Fatalf("output contains control codes:\n%q", out)
	}
}

func TestISupportTable(t *testing.T) {
	tokens := []isupport.Token{
		{Name: "NETWORK", Value: "Example", HasValue: true},
		{Name: "EXCEPTS"},
		{Name: "INVEX", Negated: true},
	}

	buf := &bytes.Buffer{}
	ISupportTable(buf, tokens)

	out := buf.String()
	for _, expected := range []string{"NETWORK", `"Example"`, "EXCEPTS", "INVEX", "false"} {
		if !strings.Contains(out, expected) {
			t.Fatalf("output doesn't contain %q:\n%s", expected, out)
		}
	}
}
