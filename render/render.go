package render

import (
	"io"

	"github.com/boreq/ircline/irc/protocol"
	"github.com/pkg/errors"
)

// Supported formats.
const (
	Text  = "text"
	JSON  = "json"
	YAML  = "yaml"
	Proto = "proto"
	Wire  = "wire"
)

// ErrUnknownFormat is returned for formats which are not supported.
var ErrUnknownFormat = errors.New("unknown format")

// Renderer writes messages to the underlying writer. Close must be called
// after the last message, it doesn't close the underlying writer.
type Renderer interface {
	Render(*protocol.Message) error
	Close() error
}

// Reader reads messages from the underlying reader. It returns io.EOF once
// there are no more messages.
type Reader interface {
	Read() (*protocol.Message, error)
}

// NewRenderer creates a renderer for the given format. Colour is used only
// by the text format.
func NewRenderer(format string, w io.Writer, colour bool) (Renderer, error) {
	switch format {
	case Text:
		return newTextRenderer(w, colour), nil
	case JSON:
		return newJSONRenderer(w), nil
	case YAML:
		return newYAMLRenderer(w), nil
	case Proto:
		return newProtoRenderer(w), nil
	case Wire:
		return &wireRenderer{encoder: protocol.NewEncoder(w)}, nil
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "format %q", format)
	}
}

// NewReader creates a reader for the given format. The parser is used only
// by the wire format.
func NewReader(format string, r io.Reader, parser *protocol.Parser) (Reader, error) {
	switch format {
	case JSON:
		return newJSONReader(r), nil
	case YAML:
		return newYAMLReader(r), nil
	case Proto:
		return newProtoReader(r), nil
	case Wire:
		return &wireReader{decoder: parser.NewDecoder(r)}, nil
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "format %q", format)
	}
}

type wireRenderer struct {
	encoder protocol.Encoder
}

func (r *wireRenderer) Render(msg *protocol.Message) error {
	return r.encoder.Encode(msg)
}

func (r *wireRenderer) Close() error {
	return nil
}

type wireReader struct {
	decoder protocol.Decoder
}

func (r *wireReader) Read() (*protocol.Message, error) {
	return r.decoder.Decode()
}
