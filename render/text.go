package render

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/boreq/ircline/irc/formatting"
	"github.com/boreq/ircline/irc/protocol"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

type textRenderer struct {
	writer  io.Writer
	colour  bool
	label   *color.Color
	command *color.Color
	prefix  *color.Color
}

func newTextRenderer(w io.Writer, colour bool) *textRenderer {
	r := &textRenderer{
		writer:  w,
		colour:  colour,
		label:   color.New(color.Bold, color.FgHiBlue),
		command: color.New(color.Bold, color.FgHiYellow),
		prefix:  color.New(color.FgHiCyan),
	}
	if !colour {
		r.label.DisableColor()
		r.command.DisableColor()
		r.prefix.DisableColor()
	}
	return r
}

func (r *textRenderer) Render(msg *protocol.Message) error {
	buf := &bytes.Buffer{}
	r.line(buf, "command", r.command.Sprint(describeCommand(msg.Command)))
	if msg.Prefix != nil {
		r.line(buf, "prefix", r.prefix.Sprint(describePrefix(msg.Prefix)))
	}
	for i, param := range msg.Params {
		r.line(buf, fmt.Sprintf("param %d", i), strconv.Quote(r.text(param)))
	}
	if len(msg.Tags) > 0 {
		table := tablewriter.NewWriter(buf)
		table.SetHeader([]string{"Key", "Value"})
		table.SetAutoWrapText(false)
		for _, tag := range msg.Tags {
			value := "(none)"
			if tag.HasValue {
				value = strconv.Quote(tag.Value)
			}
			table.Append([]string{tag.Key, value})
		}
		table.Render()
	}
	buf.WriteString("\n")
	_, err := buf.WriteTo(r.writer)
	return err
}

func (r *textRenderer) Close() error {
	return nil
}

func (r *textRenderer) line(w io.Writer, label string, value string) {
	fmt.Fprintf(w, "%s %s\n", r.label.Sprintf("%-8s", label), value)
}

func describeCommand(command protocol.Command) string {
	switch cmd := command.(type) {
	case protocol.Verb:
		return string(cmd)
	case protocol.Numeric:
		return fmt.Sprintf("%s (%s)", cmd, cmd.Name())
	default:
		return "(none)"
	}
}

func describePrefix(prefix protocol.Prefix) string {
	switch p := prefix.(type) {
	case protocol.ServerName:
		return fmt.Sprintf("%s (server)", p)
	case protocol.UserPrefix:
		return fmt.Sprintf("%s (nick %q, user %q, host %q)", p, p.Nick, p.User, p.Host)
	default:
		return "(none)"
	}
}

// text renders formatting codes as terminal attributes or strips them if
// colours are disabled.
func (r *textRenderer) text(s string) string {
	if !r.colour {
		return formatting.Strip(s)
	}
	if !formatting.Contains(s) {
		return s
	}

	b := &strings.Builder{}
	st := style{}
	for _, segment := range formatting.Split(s) {
		st.apply(segment)
		if segment.Text != "" {
			b.WriteString(st.color().Sprint(segment.Text))
		}
	}
	return b.String()
}

// ircColours maps the 16 standard colour codes to terminal colours.
var ircColours = [16]color.Attribute{
	color.FgHiWhite,
	color.FgBlack,
	color.FgBlue,
	color.FgGreen,
	color.FgHiRed,
	color.FgRed,
	color.FgMagenta,
	color.FgYellow,
	color.FgHiYellow,
	color.FgHiGreen,
	color.FgCyan,
	color.FgHiCyan,
	color.FgHiBlue,
	color.FgHiMagenta,
	color.FgHiBlack,
	color.FgWhite,
}

// Background attributes are offset by 10 from the foreground ones.
const backgroundOffset = color.BgBlack - color.FgBlack

type style struct {
	bold, italics, underline, strikethrough, reverse bool
	fg, bg                                           string
}

func (st *style) apply(segment formatting.Segment) {
	switch segment.Code {
	case formatting.Bold:
		st.bold = !st.bold
	case formatting.Italics:
		st.italics = !st.italics
	case formatting.Underline:
		st.underline = !st.underline
	case formatting.Strikethrough:
		st.strikethrough = !st.strikethrough
	case formatting.Reverse:
		st.reverse = !st.reverse
	case formatting.Reset:
		*st = style{}
	case formatting.Colour:
		if segment.Foreground == "" {
			st.fg, st.bg = "", ""
			break
		}
		st.fg = segment.Foreground
		if segment.Background != "" {
			st.bg = segment.Background
		}
	}
}

func (st style) color() *color.Color {
	var attrs []color.Attribute
	if st.bold {
		attrs = append(attrs, color.Bold)
	}
	if st.italics {
		attrs = append(attrs, color.Italic)
	}
	if st.underline {
		attrs = append(attrs, color.Underline)
	}
	if st.strikethrough {
		attrs = append(attrs, color.CrossedOut)
	}
	if st.reverse {
		attrs = append(attrs, color.ReverseVideo)
	}
	if a, ok := lookupColour(st.fg); ok {
		attrs = append(attrs, a)
	}
	if a, ok := lookupColour(st.bg); ok {
		attrs = append(attrs, a+backgroundOffset)
	}
	return color.New(attrs...)
}

func lookupColour(code string) (color.Attribute, bool) {
	n, err := strconv.Atoi(code)
	if err != nil || n < 0 || n >= len(ircColours) {
		return 0, false
	}
	return ircColours[n], true
}
