package tagmodel

import "strings"

// BPEContinuation is the fragment marker a text token carries when it is not
// the last piece of a byte-pair-encoded word.
const BPEContinuation = "@@"

// Token is either text or a Tag. Exactly one of the two is meaningful,
// selected by IsTag.
type Token struct {
	Value string
	Tag   Tag
	IsTag bool
}

// Text constructs a text token.
func Text(value string) Token {
	return Token{Value: value}
}

// FromTag constructs a tag token.
func FromTag(tag Tag) Token {
	return Token{Tag: tag, IsTag: true}
}

// IsBPEFragment reports whether a text token is a non-final piece of a word,
// i.e. it ends with the BPE continuation marker.
func (t Token) IsBPEFragment() bool {
	return !t.IsTag && strings.HasSuffix(t.Value, BPEContinuation)
}

// TrimBPEMarker returns the token's text with any trailing continuation
// marker removed. Safe to call on a token with no marker.
func (t Token) TrimBPEMarker() string {
	return strings.TrimSuffix(t.Value, BPEContinuation)
}

// TextOnly filters a token sequence down to its text tokens, preserving order.
func TextOnly(tokens []Token) []Token {
	out := make([]Token, 0, len(tokens))

	for _, tok := range tokens {
		if !tok.IsTag {
			out = append(out, tok)
		}
	}

	return out
}
