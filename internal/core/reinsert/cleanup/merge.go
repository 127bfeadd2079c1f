package cleanup

import "github.com/dfki-mlt/transins-go/internal/core/tagmodel"

// MergeNeighborPairs collapses a closing tag immediately followed by an
// opening tag of the same id, with nothing (not even another tag of a
// different id, once that pair is itself collapsed) between them (spec
// §4.7 step 6): `</X><X>` cancels to nothing, and the multi-level form
// `</X></Y><Y><X>` resolves the same way one level at a time. Runs to a
// fixed point.
func MergeNeighborPairs(tokens []tagmodel.Token) []tagmodel.Token {
	cur := tokens

	for {
		next, changed := mergeOnePass(cur)
		if !changed {
			return next
		}

		cur = next
	}
}

func mergeOnePass(tokens []tagmodel.Token) ([]tagmodel.Token, bool) {
	out := make([]tagmodel.Token, 0, len(tokens))

	changed := false

	for i := 0; i < len(tokens); i++ {
		if i+1 < len(tokens) && adjacentSameIDPair(tokens[i], tokens[i+1]) {
			changed = true
			i++ // skip both

			continue
		}

		out = append(out, tokens[i])
	}

	return out, changed
}

func adjacentSameIDPair(a, b tagmodel.Token) bool {
	return a.IsTag && b.IsTag &&
		a.Tag.Kind == tagmodel.Closing && b.Tag.Kind == tagmodel.Opening &&
		a.Tag.ID == b.Tag.ID
}
