package reinsert

import "github.com/dfki-mlt/transins-go/internal/core/tagmodel"

// EmptyPairPlaceholders maps a placeholder isolated tag's id back to the
// original opening/closing pair it stands in for.
type EmptyPairPlaceholders map[int][]tagmodel.Token

// ReplaceEmptyPairs substitutes every empty tag pair (an opening tag
// immediately followed by its closing partner, no text between) with a
// fresh isolated placeholder (spec §4.8). nextID supplies placeholder ids
// from a range disjoint from every id already used in tokens — the caller
// owns id allocation.
func ReplaceEmptyPairs(tokens []tagmodel.Token, tagMap *tagmodel.TagMap, nextID func() int) ([]tagmodel.Token, EmptyPairPlaceholders) {
	placeholders := make(EmptyPairPlaceholders)
	out := make([]tagmodel.Token, 0, len(tokens))

	i := 0
	for i < len(tokens) {
		tok := tokens[i]

		if tok.IsTag && tok.Tag.Kind == tagmodel.Opening && i+1 < len(tokens) {
			if closeTag, ok := tagMap.ClosingFor(tok.Tag); ok {
				next := tokens[i+1]
				if next.IsTag && next.Tag.Equal(closeTag) {
					id := nextID()
					placeholders[id] = []tagmodel.Token{tok, next}
					out = append(out, tagmodel.FromTag(tagmodel.Tag{Kind: tagmodel.Isolated, ID: id}))
					i += 2

					continue
				}
			}
		}

		out = append(out, tok)
		i++
	}

	return out, placeholders
}

// RestoreEmptyPairs expands every placeholder left by ReplaceEmptyPairs
// back into its original opening/closing pair.
func RestoreEmptyPairs(tokens []tagmodel.Token, placeholders EmptyPairPlaceholders) []tagmodel.Token {
	out := make([]tagmodel.Token, 0, len(tokens))

	for _, tok := range tokens {
		if tok.IsTag && tok.Tag.Kind == tagmodel.Isolated {
			if original, ok := placeholders[tok.Tag.ID]; ok {
				out = append(out, original...)
				continue
			}
		}

		out = append(out, tok)
	}

	return out
}
