package tagmodel

import (
	"fmt"

	coreerrors "github.com/dfki-mlt/transins-go/internal/core/errors"
)

// ParseWireToken decodes a single entry of the native filter format (spec
// §6): a two-character (marker, CharBase+id) pair is a tag, anything else is
// a text token verbatim.
func ParseWireToken(s string) (Token, error) {
	if len(s) != 2 {
		return Text(s), nil
	}

	var kind Kind

	switch s[0] {
	case OpeningMarker:
		kind = Opening
	case ClosingMarker:
		kind = Closing
	case IsolatedMarker:
		kind = Isolated
	default:
		return Text(s), nil
	}

	id := int(s[1]) - CharBase
	if id < 0 {
		return Token{}, fmt.Errorf("wire token %q has a negative tag id: %w", s, coreerrors.ErrUnknownTag)
	}

	return FromTag(Tag{Kind: kind, ID: id}), nil
}

// ParseWireTokens decodes a whole sentence from its wire representation.
func ParseWireTokens(wire []string) ([]Token, error) {
	tokens := make([]Token, 0, len(wire))

	for _, w := range wire {
		tok, err := ParseWireToken(w)
		if err != nil {
			return nil, err
		}

		tokens = append(tokens, tok)
	}

	return tokens, nil
}

// WireToken renders a single token back to its wire representation: a tag's
// two-character native encoding, or a text token's literal value.
func WireToken(t Token) string {
	if t.IsTag {
		return t.Tag.String()
	}

	return t.Value
}

// WireTokens renders a whole token sequence to its wire representation.
func WireTokens(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = WireToken(t)
	}

	return out
}
