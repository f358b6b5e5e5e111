package render

import (
	"io"

	"github.com/boreq/ircline/irc/protocol"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

type yamlRenderer struct {
	encoder *yaml.Encoder
}

func newYAMLRenderer(w io.Writer) *yamlRenderer {
	return &yamlRenderer{encoder: yaml.NewEncoder(w)}
}

// Render writes the message as a separate document of a yaml stream.
func (r *yamlRenderer) Render(msg *protocol.Message) error {
	return r.encoder.Encode(NewDocument(msg))
}

func (r *yamlRenderer) Close() error {
	return r.encoder.Close()
}

type yamlReader struct {
	decoder *yaml.Decoder
}

func newYAMLReader(r io.Reader) *yamlReader {
	decoder := yaml.NewDecoder(r)
	decoder.SetStrict(true)
	return &yamlReader{decoder: decoder}
}

func (r *yamlReader) Read() (*protocol.Message, error) {
	var doc Document
	if err := r.decoder.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, err
		}
		return nil, errors.Wrap(err, "could not decode yaml")
	}
	return doc.Message()
}
