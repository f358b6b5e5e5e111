package render

import (
	"encoding/json"
	"io"

	"github.com/boreq/ircline/irc/protocol"
	"github.com/pkg/errors"
)

type jsonRenderer struct {
	encoder *json.Encoder
}

func newJSONRenderer(w io.Writer) *jsonRenderer {
	return &jsonRenderer{encoder: json.NewEncoder(w)}
}

func (r *jsonRenderer) Render(msg *protocol.Message) error {
	return r.encoder.Encode(NewDocument(msg))
}

func (r *jsonRenderer) Close() error {
	return nil
}

type jsonReader struct {
	decoder *json.Decoder
}

func newJSONReader(r io.Reader) *jsonReader {
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	return &jsonReader{decoder: decoder}
}

func (r *jsonReader) Read() (*protocol.Message, error) {
	var doc Document
	if err := r.decoder.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, err
		}
		return nil, errors.Wrap(err, "could not decode json")
	}
	return doc.Message()
}
