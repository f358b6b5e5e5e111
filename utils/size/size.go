// Package size contains definitions of common units of data.
package size

import "fmt"

// A Size represents a size of a portion of data expressed in bytes.
type Size int64

// Common units of data.
const (
	Byte Size = 1

	Kilobyte = 1000 * Byte
	Megabyte = 1000 * Kilobyte

	Kibibyte = 1024 * Byte
	Mebibyte = 1024 * Kibibyte
)

// Int returns the size as an int, for use with buffers and slices.
func (s Size) Int() int {
	return int(s)
}

// String formats the size using the largest binary unit which divides it.
func (s Size) String() string {
	switch {
	case s != 0 && s%Mebibyte == 0:
		return fmt.Sprintf("%dMiB", s/Mebibyte)
	case s != 0 && s%Kibibyte == 0:
		return fmt.Sprintf("%dKiB", s/Kibibyte)
	default:
		return fmt.Sprintf("%dB", int64(s))
	}
}
