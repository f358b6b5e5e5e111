package protocol

import (
	"bufio"
	"io"

	"github.com/boreq/ircline/utils/size"
	"github.com/pkg/errors"
)

const (
	// MaxMessageLength is the maximum length of a line without tags,
	// CRLF included.
	MaxMessageLength = 512 * size.Byte

	// MaxTagsLength is the maximum length of the tag block, including
	// the leading '@' and the trailing space.
	MaxTagsLength = 8191 * size.Byte

	// MaxLineLength is the maximum length of a line accepted by the
	// decoder. A longer line makes the decoder fail permanently.
	MaxLineLength = MaxMessageLength + MaxTagsLength
)

// NewDecoder creates a decoder which parses lines using the default options.
func NewDecoder(reader io.Reader) Decoder {
	return defaultParser.NewDecoder(reader)
}

// NewDecoder creates a decoder which parses lines using this parser.
func (p *Parser) NewDecoder(reader io.Reader) Decoder {
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, MaxMessageLength.Int()), MaxLineLength.Int())
	rv := &decoder{
		scanner: scanner,
		parser:  p,
	}
	return rv
}

type decoder struct {
	scanner *bufio.Scanner
	parser  *Parser
}

func (d *decoder) Decode() (*Message, error) {
	for d.scanner.Scan() {
		// ScanLines already dropped the CRLF.
		line := d.scanner.Text()
		if line == "" {
			continue
		}
		msg, err := d.parser.Unmarshal(line)
		if err != nil {
			return nil, errors.Wrapf(err, "could not parse %q", line)
		}
		return msg, nil
	}

	if err := d.scanner.Err(); err != nil {
		if err == bufio.ErrTooLong {
			return nil, errors.Wrapf(ErrLineTooLong, "limit is %d bytes", MaxLineLength)
		}
		return nil, err
	}
	return nil, io.EOF
}
