package protocol

import "strings"

// Prefix identifies the source of a message. It is either a ServerName or a
// UserPrefix.
type Prefix interface {
	String() string
	isPrefix()
}

// ServerName is a prefix identifying a server.
type ServerName string

func (s ServerName) String() string {
	return string(s)
}

func (ServerName) isPrefix() {}

// UserPrefix is a prefix identifying a user in the nick!user@host form.
// HasUser and HasHost record whether the '!' and '@' separators were
// present, User and Host may be empty even if they were.
type UserPrefix struct {
	Nick    string
	User    string
	Host    string
	HasUser bool
	HasHost bool
}

// NewUserPrefix creates a prefix with the user and host parts present if
// they are not empty.
func NewUserPrefix(nick, user, host string) UserPrefix {
	return UserPrefix{
		Nick:    nick,
		User:    user,
		Host:    host,
		HasUser: user != "",
		HasHost: host != "",
	}
}

func (u UserPrefix) String() string {
	rv := u.Nick
	if u.HasUser {
		rv += "!" + u.User
	}
	if u.HasHost {
		rv += "@" + u.Host
	}
	return rv
}

func (UserPrefix) isPrefix() {}

// parsePrefix consumes the prefix if the input starts with ':' and returns
// its body.
func parsePrefix(input string) (body string, ok bool, rest string) {
	if !strings.HasPrefix(input, ":") {
		return "", false, input
	}

	body = input[1:]
	if i := strings.IndexByte(body, ' '); i >= 0 {
		return body[:i], true, body[i+1:]
	}
	return body, true, ""
}

// ParsePrefix interprets the text of a prefix without the leading colon.
func ParsePrefix(body string, policy BareNamePolicy) Prefix {
	if i := strings.IndexByte(body, '!'); i >= 0 {
		rv := UserPrefix{Nick: body[:i], User: body[i+1:], HasUser: true}
		if j := strings.IndexByte(rv.User, '@'); j >= 0 {
			rv.User, rv.Host, rv.HasHost = rv.User[:j], rv.User[j+1:], true
		}
		return rv
	}

	if i := strings.IndexByte(body, '@'); i >= 0 {
		return UserPrefix{Nick: body[:i], Host: body[i+1:], HasHost: true}
	}

	switch policy {
	case BareNameAsNick:
		return UserPrefix{Nick: body}
	case BareNameAsServer:
		return ServerName(body)
	default:
		if strings.Contains(body, ".") {
			return ServerName(body)
		}
		return UserPrefix{Nick: body}
	}
}
