// Package formatting detects and removes the control codes which clients
// use to format message text, such as bold text and colours.
package formatting

import "strings"

// Code is a formatting control byte.
type Code byte

const (
	None          Code = 0
	Bold          Code = 0x02
	Colour        Code = 0x03
	HexColour     Code = 0x04
	Reset         Code = 0x0f
	Monospace     Code = 0x11
	Reverse       Code = 0x16
	Italics       Code = 0x1d
	Strikethrough Code = 0x1e
	Underline     Code = 0x1f
)

func isCode(c byte) bool {
	switch Code(c) {
	case Bold, Colour, HexColour, Reset, Monospace, Reverse, Italics, Strikethrough, Underline:
		return true
	}
	return false
}

// Segment is a piece of text preceded by a formatting code. Foreground and
// Background hold the colour arguments of Colour and HexColour codes.
type Segment struct {
	Code       Code
	Foreground string
	Background string
	Text       string
}

// Contains returns true if the text contains any formatting codes.
func Contains(s string) bool {
	return Count(s) > 0
}

// Count returns the number of formatting codes in the text. Colour
// arguments are not counted.
func Count(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if isCode(s[i]) {
			n++
		}
	}
	return n
}

// Strip removes formatting codes and colour arguments from the text.
func Strip(s string) string {
	if !Contains(s) {
		return s
	}
	b := &strings.Builder{}
	for _, segment := range Split(s) {
		b.WriteString(segment.Text)
	}
	return b.String()
}

// Split splits the text into segments. Text before the first code is
// returned as a segment with the code None.
func Split(s string) []Segment {
	var rv []Segment
	current := Segment{}
	start := 0
	for i := 0; i < len(s); {
		if !isCode(s[i]) {
			i++
			continue
		}
		current.Text = s[start:i]
		if current.Code != None || current.Text != "" {
			rv = append(rv, current)
		}

		current = Segment{Code: Code(s[i])}
		i++
		switch current.Code {
		case Colour:
			current.Foreground, current.Background, i = colourArgs(s, i, 2, isDigit)
		case HexColour:
			current.Foreground, current.Background, i = colourArgs(s, i, 6, isHex)
		}
		start = i
	}
	current.Text = s[start:]
	if current.Code != None || current.Text != "" {
		rv = append(rv, current)
	}
	return rv
}

// colourArgs reads "fg[,bg]" starting at i. Decimal colours take one or two
// digits, hex colours exactly six. The comma is only consumed if a valid
// background follows it.
func colourArgs(s string, i int, width int, valid func(byte) bool) (fg, bg string, end int) {
	fg, end = colourArg(s, i, width, valid)
	if fg == "" {
		return "", "", i
	}
	if end < len(s) && s[end] == ',' {
		if bg, bgEnd := colourArg(s, end+1, width, valid); bg != "" {
			return fg, bg, bgEnd
		}
	}
	return fg, "", end
}

func colourArg(s string, i int, width int, valid func(byte) bool) (string, int) {
	j := i
	for j < len(s) && j-i < width && valid(s[j]) {
		j++
	}
	// Hex colours can't be shortened.
	if width == 6 && j-i != 6 {
		return "", i
	}
	return s[i:j], j
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isHex(c byte) bool {
	return isDigit(c) || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}
