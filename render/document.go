// Package render converts parsed messages to and from the formats produced
// and consumed by the command line tool.
package render

import (
	"github.com/boreq/ircline/irc/protocol"
	"github.com/pkg/errors"
)

// Document is the structured representation of a message used by the json,
// yaml and proto formats.
type Document struct {
	Tags    []TagDocument   `json:"tags,omitempty" yaml:"tags,omitempty"`
	Prefix  *PrefixDocument `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	Command string          `json:"command" yaml:"command"`

	// Reply is the symbolic name of a numeric command. It is ignored
	// when converting a document to a message.
	Reply string `json:"reply,omitempty" yaml:"reply,omitempty"`

	Params []string `json:"params,omitempty" yaml:"params,omitempty"`
}

// TagDocument is a single tag. Value is nil for tags without a value.
type TagDocument struct {
	Key   string  `json:"key" yaml:"key"`
	Value *string `json:"value,omitempty" yaml:"value,omitempty"`
}

// PrefixDocument holds either Server or the user fields. User and Host are
// nil if the prefix didn't contain the '!' or '@' separator.
type PrefixDocument struct {
	Server *string `json:"server,omitempty" yaml:"server,omitempty"`
	Nick   string  `json:"nick,omitempty" yaml:"nick,omitempty"`
	User   *string `json:"user,omitempty" yaml:"user,omitempty"`
	Host   *string `json:"host,omitempty" yaml:"host,omitempty"`
}

// NewDocument converts a message to a document.
func NewDocument(msg *protocol.Message) Document {
	doc := Document{
		Params: msg.Params,
	}

	for _, tag := range msg.Tags {
		tagDoc := TagDocument{Key: tag.Key}
		if tag.HasValue {
			value := tag.Value
			tagDoc.Value = &value
		}
		doc.Tags = append(doc.Tags, tagDoc)
	}

	switch prefix := msg.Prefix.(type) {
	case protocol.ServerName:
		server := string(prefix)
		doc.Prefix = &PrefixDocument{Server: &server}
	case protocol.UserPrefix:
		doc.Prefix = &PrefixDocument{Nick: prefix.Nick}
		if prefix.HasUser {
			user := prefix.User
			doc.Prefix.User = &user
		}
		if prefix.HasHost {
			host := prefix.Host
			doc.Prefix.Host = &host
		}
	}

	switch cmd := msg.Command.(type) {
	case protocol.Verb:
		doc.Command = string(cmd)
	case protocol.Numeric:
		doc.Command = cmd.String()
		if name := cmd.Name(); name != cmd.String() {
			doc.Reply = name
		}
	}
	return doc
}

// Message converts the document to a valid message.
func (doc Document) Message() (*protocol.Message, error) {
	command, err := protocol.ParseCommand(doc.Command)
	if err != nil {
		return nil, errors.Wrap(err, "invalid command")
	}

	msg := &protocol.Message{
		Command: command,
		Params:  doc.Params,
	}

	for _, tagDoc := range doc.Tags {
		tag := protocol.Tag{Key: tagDoc.Key}
		if tagDoc.Value != nil {
			tag.Value = *tagDoc.Value
			tag.HasValue = true
		}
		msg.Tags = append(msg.Tags, tag)
	}

	if p := doc.Prefix; p != nil {
		if p.Server != nil {
			if p.Nick != "" || p.User != nil || p.Host != nil {
				return nil, errors.New("prefix has both a server and a nick")
			}
			msg.Prefix = protocol.ServerName(*p.Server)
		} else {
			prefix := protocol.UserPrefix{Nick: p.Nick}
			if p.User != nil {
				prefix.User, prefix.HasUser = *p.User, true
			}
			if p.Host != nil {
				prefix.Host, prefix.HasHost = *p.Host, true
			}
			msg.Prefix = prefix
		}
	}

	if err := msg.Validate(); err != nil {
		return nil, err
	}
	return msg, nil
}
