package protocol

// BareNamePolicy decides how a prefix which contains neither '!' nor '@' is
// interpreted.
type BareNamePolicy int

const (
	// BareNameByDot treats the prefix as a server name if it contains a
	// dot or if the command is a numeric reply, which only servers send,
	// and as a nick otherwise.
	BareNameByDot BareNamePolicy = iota

	// BareNameAsNick always treats the prefix as a nick.
	BareNameAsNick

	// BareNameAsServer always treats the prefix as a server name.
	BareNameAsServer
)

// SpacePolicy decides how runs of spaces between parameters are treated.
type SpacePolicy int

const (
	// SpacesCollapse treats a run of spaces as a single separator.
	SpacesCollapse SpacePolicy = iota

	// SpacesKeepEmpty strips exactly one space before each parameter, a
	// run of N spaces produces N-1 empty parameters.
	SpacesKeepEmpty
)

// Options changes the behaviour of a Parser in the places where the grammar
// is ambiguous. The zero value is the default used by UnmarshalMessage.
type Options struct {
	BareNames BareNamePolicy
	Spaces    SpacePolicy

	// MaxParams limits the number of parameters, the last one receives
	// the rest of the line. Zero means no limit.
	MaxParams int
}
