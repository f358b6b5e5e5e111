package protocol

import (
	"strings"

	"github.com/pkg/errors"
)

// Tag is a single IRCv3 message tag. Value is already unescaped, HasValue
// is false for tags sent without '='.
type Tag struct {
	Key      string
	Value    string
	HasValue bool
}

// ClientOnly returns true if the key starts with the client-only prefix '+'.
func (t Tag) ClientOnly() bool {
	return strings.HasPrefix(t.Key, "+")
}

// Vendor returns the vendor namespace of the key or an empty string.
func (t Tag) Vendor() string {
	key := strings.TrimPrefix(t.Key, "+")
	if i := strings.IndexByte(key, '/'); i >= 0 {
		return key[:i]
	}
	return ""
}

// Name returns the key without the client-only prefix and the vendor.
func (t Tag) Name() string {
	key := strings.TrimPrefix(t.Key, "+")
	if i := strings.IndexByte(key, '/'); i >= 0 {
		return key[i+1:]
	}
	return key
}

func (t Tag) String() string {
	if !t.HasValue {
		return t.Key
	}
	return t.Key + "=" + EscapeTagValue(t.Value)
}

// Tags holds the tags of a message in the order in which they were sent.
// Duplicate keys are kept.
type Tags []Tag

// Get returns the value of the first tag with the given key.
func (tags Tags) Get(key string) (value string, ok bool) {
	for _, tag := range tags {
		if tag.Key == key {
			return tag.Value, true
		}
	}
	return "", false
}

// Has returns true if a tag with the given key is present.
func (tags Tags) Has(key string) bool {
	_, ok := tags.Get(key)
	return ok
}

func (tags Tags) String() string {
	parts := make([]string, len(tags))
	for i, tag := range tags {
		parts[i] = tag.String()
	}
	return strings.Join(parts, ";")
}

// validKey reports whether the key can be written to the tag block.
func validKey(key string) bool {
	return key != "" && !strings.ContainsAny(key, "=; \t\r\n\x00")
}

// parseTags consumes the tag block if the input starts with '@'.
func parseTags(input string) (Tags, string, error) {
	if !strings.HasPrefix(input, "@") {
		return nil, input, nil
	}

	end := strings.IndexByte(input, ' ')
	if end < 0 {
		return nil, "", errors.Wrap(ErrMalformedTag, "no command after the tags")
	}
	block, rest := input[1:end], input[end+1:]

	tags := make(Tags, 0, strings.Count(block, ";")+1)
	for _, entry := range strings.Split(block, ";") {
		tag := Tag{Key: entry}
		if i := strings.IndexByte(entry, '='); i >= 0 {
			tag.Key = entry[:i]
			tag.Value = UnescapeTagValue(entry[i+1:])
			tag.HasValue = true
		}
		if !validKey(tag.Key) {
			return nil, "", errors.Wrapf(ErrMalformedTag, "invalid key in %q", entry)
		}
		tags = append(tags, tag)
	}
	return tags, rest, nil
}
