package protocol

import (
	"bytes"
	"io"
)

// NewEncoder creates an encoder writing to the provided writer.
func NewEncoder(writer io.Writer) Encoder {
	rv := &encoder{
		writer: writer,
	}
	return rv
}

type encoder struct {
	writer io.Writer
}

func (e *encoder) Encode(msg *Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}
	buf := &bytes.Buffer{}
	buf.WriteString(msg.Marshal())
	buf.WriteString("\r\n")
	_, err := buf.WriteTo(e.writer)
	return err
}
