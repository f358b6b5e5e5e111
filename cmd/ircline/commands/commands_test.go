package commands

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/boreq/ircline/config"
	"github.com/docopt/docopt-go"
)

func setup(t *testing.T, input string) *bytes.Buffer {
	t.Setenv(config.ConfigEnvVar, t.TempDir())
	out := &bytes.Buffer{}
	Stdin = strings.NewReader(input)
	Stdout = out
	t.Cleanup(func() {
		Stdin = os.Stdin
		Stdout = os.Stdout
	})
	return out
}

func parseArgs(t *testing.T, argv ...string) docopt.Opts {
	parser := &docopt.Parser{HelpHandler: docopt.NoHelpHandler}
	opts, err := parser.ParseArgs(Usage, argv, Version)
	if err != nil {
		t.Fatalf("could not parse %v: %s", argv, err)
	}
	return opts
}

func TestParseWire(t *testing.T) {
	out := setup(t, "")
	opts := parseArgs(t, "parse", "--format=wire", "CMD  a   :b c", "@bad", ":nick PING x")
	if err := Run(opts); err != nil {
		t.Fatal(err)
	}
	if out.String() != "CMD a :b c\r\n:nick PING x\r\n" {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestParseStdin(t *testing.T) {
	out := setup(t, ":irc.example.com 001 nick :Welcome\r\n\r\n1234 bad\r\nPING x\r\n")
	opts := parseArgs(t, "parse", "--format=json")
	if err := Run(opts); err != nil {
		t.Fatal(err)
	}
	expected := `{"prefix":{"server":"irc.example.com"},"command":"001","reply":"RPL_WELCOME","params":["nick","Welcome"]}` + "\n" +
		`{"command":"PING","params":["x"]}` + "\n"
	if out.String() != expected {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestParseText(t *testing.T) {
	out := setup(t, "")
	opts := parseArgs(t, "parse", "--no-color", ":nick!user@host PRIVMSG #chan :hi")
	if err := Run(opts); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "PRIVMSG") || !strings.Contains(out.String(), `"hi"`) {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestParseUnknownFormat(t *testing.T) {
	setup(t, "")
	opts := parseArgs(t, "parse", "--format=xml", "PING")
	if err := Run(opts); err == nil {
		t.Fatal("expected an error")
	}
}

func TestEncode(t *testing.T) {
	input := `{"command":"PRIVMSG","params":["#chan","hello world"]}
{"tags":[{"key":"a","value":"b c"},{"key":"flag"}],"command":"001","params":["nick"]}
`
	out := setup(t, input)
	opts := parseArgs(t, "encode")
	if err := Run(opts); err != nil {
		t.Fatal(err)
	}
	if out.String() != "PRIVMSG #chan :hello world\r\n@a=b\\sc;flag 001 nick\r\n" {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestEncodeInvalid(t *testing.T) {
	setup(t, `{"command":"PRIVMSG","params":["a b","c"]}`)
	opts := parseArgs(t, "encode", "--format=yaml")
	if err := Run(opts); err == nil {
		t.Fatal("expected an error")
	}
}

func TestStrip(t *testing.T) {
	out := setup(t, "")
	opts := parseArgs(t, "strip", "PRIVMSG #chan :\x02bold\x02 and \x0304red")
	if err := Run(opts); err != nil {
		t.Fatal(err)
	}
	if out.String() != "PRIVMSG #chan :bold and red\r\n" {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestISupport(t *testing.T) {
	out := setup(t, "")
	opts := parseArgs(t, "isupport", ":irc.example.com 005 nick NETWORK=Example CASEMAPPING=ascii -INVEX :are supported by this server")
	if err := Run(opts); err != nil {
		t.Fatal(err)
	}
	for _, expected := range []string{"NETWORK", "Example", "INVEX", "casemapping: ascii"} {
		if !strings.Contains(out.String(), expected) {
			t.Fatalf("output doesn't contain %q:\n%s", expected, out.String())
		}
	}
}

func TestInit(t *testing.T) {
	setup(t, "")
	if err := Run(parseArgs(t, "init")); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(config.GetConfigPath()); err != nil {
		t.Fatal(err)
	}
	if err := Run(parseArgs(t, "init")); err == nil {
		t.Fatal("expected an error when the config exists")
	}
	if err := Run(parseArgs(t, "init", "-f")); err != nil {
		t.Fatal(err)
	}
}
