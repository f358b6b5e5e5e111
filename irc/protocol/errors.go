package protocol

import "github.com/pkg/errors"

// Errors returned while parsing a line. They are always wrapped, use
// errors.Cause to compare.
var (
	// ErrMalformedTag is returned when the tag block contains an entry
	// with an empty or invalid key or when the line ends inside of it.
	ErrMalformedTag = errors.New("malformed tag")

	// ErrMissingCommand is returned when no command follows the tags and
	// the prefix.
	ErrMissingCommand = errors.New("missing command")

	// ErrInvalidCommand is returned when the command is neither a word
	// consisting of letters nor a three digit numeric.
	ErrInvalidCommand = errors.New("invalid command")
)

// ErrInvalidMessage is returned by Validate and by the encoder for messages
// which can't be written to the wire without changing their meaning.
var ErrInvalidMessage = errors.New("invalid message")

// ErrLineTooLong is returned by the decoder when a line exceeds
// MaxLineLength.
var ErrLineTooLong = errors.New("line too long")

// IsParseError returns true if the line which caused the error was malformed.
// The decoder can be used further after such an error.
func IsParseError(err error) bool {
	switch errors.Cause(err) {
	case ErrMalformedTag, ErrMissingCommand, ErrInvalidCommand:
		return true
	default:
		return false
	}
}
