// Package protocol implements parsing and serialization of single IRC
// protocol messages, including IRCv3 message tags.
package protocol

// Encoder wraps an io.Writer and can be used to write messages to it.
type Encoder interface {
	// Encode validates a message, encodes it and writes it to the
	// underlying writer followed by CRLF.
	Encode(*Message) error
}

// Decoder wraps an io.Reader and can be used to receive messages from it.
type Decoder interface {
	// Decode receives a single line from the underlying reader and
	// decodes it into a message struct. A malformed line is consumed
	// and reported, the following call decodes the next line.
	Decode() (*Message, error)
}
