package reinsert

import "github.com/dfki-mlt/transins-go/internal/core/tagmodel"

// maskStart and maskEnd stand in for a neighboring text character when a
// tag sits at the very edge of the token sequence, with nothing to borrow
// context from.
const (
	maskStart = "\x02"
	maskEnd   = "\x03"
)

// Mask rewrites every tag token so its Value carries the preceding and
// following text token's edge character sandwiched around the tag's own
// wire form (spec §4.9): `x T y`. This lets a tag survive a downstream
// tool that treats the sentence as plain text and would otherwise mangle a
// bare two-character control sequence. The Tag field (kind, id) is left
// untouched, so every other pass can keep reading it normally; only
// Value carries the masked context.
func Mask(tokens []tagmodel.Token) []tagmodel.Token {
	out := make([]tagmodel.Token, len(tokens))
	copy(out, tokens)

	for i, tok := range tokens {
		if !tok.IsTag {
			continue
		}

		before := edgeRune(tokens, i, -1, maskStart)
		after := edgeRune(tokens, i, +1, maskEnd)

		out[i].Value = before + tok.Tag.String() + after
	}

	return out
}

// Unmask reverses Mask, discarding the stashed context and restoring the
// canonical zero-Value tag token.
func Unmask(tokens []tagmodel.Token) []tagmodel.Token {
	out := make([]tagmodel.Token, len(tokens))
	copy(out, tokens)

	for i, tok := range tokens {
		if tok.IsTag {
			out[i].Value = ""
		}
	}

	return out
}

func edgeRune(tokens []tagmodel.Token, i, dir int, sentinel string) string {
	j := i + dir
	if j < 0 || j >= len(tokens) || tokens[j].IsTag || tokens[j].Value == "" {
		return sentinel
	}

	r := []rune(tokens[j].Value)
	if dir < 0 {
		return string(r[len(r)-1])
	}

	return string(r[0])
}
