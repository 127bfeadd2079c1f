// Package tagmodel defines the inline-markup tag model shared by every pass
// of the reinsertion engine: tag identity, the three tag kinds, and the
// bidirectional TagMap that pairs opening tags with their closing partners.
package tagmodel

import "fmt"

// Kind distinguishes the three markup roles a Tag can play.
type Kind int

const (
	// Opening marks the start of a span, e.g. <b>.
	Opening Kind = iota
	// Closing marks the end of a span, e.g. </b>.
	Closing
	// Isolated stands alone: a line break, a placeholder, an empty-pair stand-in.
	Isolated
)

// String renders a Kind for logging and test failure messages.
func (k Kind) String() string {
	switch k {
	case Opening:
		return "opening"
	case Closing:
		return "closing"
	case Isolated:
		return "isolated"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Tag marker characters, per the contractual wire encoding in spec §6: a tag
// token is two characters, (kindMarker, CHARBASE+id). The marker characters
// themselves are exported so callers that serialize/deserialize the native
// filter format can reuse them without redefining the encoding.
const (
	OpeningMarker  = 'O'
	ClosingMarker  = 'C'
	IsolatedMarker = 'I'

	// CharBase is added to a tag id to produce the second byte of the wire
	// encoding. Kept small so ids stay printable for debugging.
	CharBase = 0x20
)

// Tag is an inline markup token. Two tags are equal iff Kind and ID match.
type Tag struct {
	Kind Kind
	ID   int
}

// Equal reports whether two tags share the same kind and id.
func (t Tag) Equal(other Tag) bool {
	return t.Kind == other.Kind && t.ID == other.ID
}

// String renders a tag as its native two-character wire form, e.g. "O!" for
// an opening tag with id 1 (CharBase=0x20 -> '!' = 0x21).
func (t Tag) String() string {
	var marker byte

	switch t.Kind {
	case Opening:
		marker = OpeningMarker
	case Closing:
		marker = ClosingMarker
	case Isolated:
		marker = IsolatedMarker
	}

	return fmt.Sprintf("%c%c", marker, byte(CharBase+t.ID))
}
