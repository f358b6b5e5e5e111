// Package casemapping implements the case mappings which servers advertise
// in the CASEMAPPING token of RPL_ISUPPORT. Nicknames and channel names
// which are equal after folding refer to the same entity.
package casemapping

import (
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/secure/precis"
)

// CaseMapping is one of the case mapping methods.
type CaseMapping int

const (
	// ASCII folds only the letters A-Z.
	ASCII CaseMapping = iota

	// RFC1459 additionally treats []\~ as the upper case forms of {}|^.
	RFC1459

	// StrictRFC1459 is RFC1459 without the ~ and ^ pair.
	StrictRFC1459

	// RFC8265 folds names using the PRECIS UsernameCaseMapped profile.
	RFC8265
)

// ErrUnknown is returned by Parse for an unsupported case mapping name.
var ErrUnknown = errors.New("unknown case mapping")

var names = map[CaseMapping]string{
	ASCII:         "ascii",
	RFC1459:       "rfc1459",
	StrictRFC1459: "strict-rfc1459",
	RFC8265:       "rfc8265",
}

// Parse returns the case mapping advertised under the given name.
func Parse(name string) (CaseMapping, error) {
	name = strings.ToLower(name)
	for m, n := range names {
		if n == name {
			return m, nil
		}
	}
	if name == "rfc1459-strict" {
		return StrictRFC1459, nil
	}
	return ASCII, errors.Wrapf(ErrUnknown, "name %q", name)
}

func (m CaseMapping) String() string {
	if name, ok := names[m]; ok {
		return name
	}
	return "unknown"
}

var (
	asciiFolder   = strings.NewReplacer(pairs("ABCDEFGHIJKLMNOPQRSTUVWXYZ", "abcdefghijklmnopqrstuvwxyz")...)
	strictFolder  = strings.NewReplacer(pairs("ABCDEFGHIJKLMNOPQRSTUVWXYZ[]\\", "abcdefghijklmnopqrstuvwxyz{}|")...)
	rfc1459Folder = strings.NewReplacer(pairs("ABCDEFGHIJKLMNOPQRSTUVWXYZ[]\\~", "abcdefghijklmnopqrstuvwxyz{}|^")...)
)

func pairs(upper, lower string) []string {
	var rv []string
	for i := 0; i < len(upper); i++ {
		rv = append(rv, upper[i:i+1], lower[i:i+1])
	}
	return rv
}

// Fold returns the canonical form of a name. Only RFC8265 can fail, for
// names which the PRECIS profile rejects.
func (m CaseMapping) Fold(name string) (string, error) {
	switch m {
	case RFC1459:
		return rfc1459Folder.Replace(name), nil
	case StrictRFC1459:
		return strictFolder.Replace(name), nil
	case RFC8265:
		folded, err := precis.UsernameCaseMapped.CompareKey(name)
		if err != nil {
			return "", errors.Wrapf(err, "could not fold %q", name)
		}
		return folded, nil
	default:
		return asciiFolder.Replace(name), nil
	}
}

// Equal returns true if both names fold to the same form. Names which can't
// be folded are never equal.
func (m CaseMapping) Equal(a, b string) bool {
	fa, err := m.Fold(a)
	if err != nil {
		return false
	}
	fb, err := m.Fold(b)
	if err != nil {
		return false
	}
	return fa == fb
}
