package protocol

import "strings"

// Backslash goes first so that the escapes themselves aren't escaped again.
var tagValueEscaper = strings.NewReplacer(
	"\\", "\\\\",
	";", "\\:",
	" ", "\\s",
	"\r", "\\r",
	"\n", "\\n",
)

// EscapeTagValue escapes a tag value so that it can be placed in the tag
// block of a message.
func EscapeTagValue(value string) string {
	return tagValueEscaper.Replace(value)
}

// UnescapeTagValue decodes an escaped tag value. Unknown escape sequences
// decode to the escaped character and a trailing lone backslash is dropped.
// The input is returned unchanged if it contains no backslashes.
func UnescapeTagValue(raw string) string {
	i := strings.IndexByte(raw, '\\')
	if i < 0 {
		return raw
	}

	b := &strings.Builder{}
	b.Grow(len(raw))
	b.WriteString(raw[:i])
	for ; i < len(raw); i++ {
		c := raw[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		i++
		if i == len(raw) {
			break
		}
		b.WriteByte(unescapeByte(raw[i]))
	}
	return b.String()
}

func unescapeByte(c byte) byte {
	switch c {
	case ':':
		return ';'
	case 's':
		return ' '
	case 'r':
		return '\r'
	case 'n':
		return '\n'
	default:
		return c
	}
}
