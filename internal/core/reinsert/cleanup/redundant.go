package cleanup

import "github.com/dfki-mlt/transins-go/internal/core/tagmodel"

// RemoveRedundant deduplicates runs of same-id tags with nothing of that id
// between them (spec §4.7 step 4): of several openings of id X with no
// closing X between them, only the first survives; of several closings of
// id X with no opening X between them, only the last survives.
func RemoveRedundant(tokens []tagmodel.Token) []tagmodel.Token {
	return reverseKeepLastClose(forwardKeepFirstOpen(tokens))
}

func forwardKeepFirstOpen(tokens []tagmodel.Token) []tagmodel.Token {
	open := make(map[int]bool)
	out := make([]tagmodel.Token, 0, len(tokens))

	for _, tok := range tokens {
		if !tok.IsTag {
			out = append(out, tok)
			continue
		}

		switch tok.Tag.Kind {
		case tagmodel.Opening:
			if open[tok.Tag.ID] {
				continue
			}

			open[tok.Tag.ID] = true
			out = append(out, tok)
		case tagmodel.Closing:
			open[tok.Tag.ID] = false
			out = append(out, tok)
		default:
			out = append(out, tok)
		}
	}

	return out
}

func reverseKeepLastClose(tokens []tagmodel.Token) []tagmodel.Token {
	closed := make(map[int]bool)
	rev := make([]tagmodel.Token, 0, len(tokens))

	for i := len(tokens) - 1; i >= 0; i-- {
		tok := tokens[i]

		if !tok.IsTag {
			rev = append(rev, tok)
			continue
		}

		switch tok.Tag.Kind {
		case tagmodel.Closing:
			if closed[tok.Tag.ID] {
				continue
			}

			closed[tok.Tag.ID] = true
			rev = append(rev, tok)
		case tagmodel.Opening:
			closed[tok.Tag.ID] = false
			rev = append(rev, tok)
		default:
			rev = append(rev, tok)
		}
	}

	out := make([]tagmodel.Token, len(rev))
	for i, tok := range rev {
		out[len(rev)-1-i] = tok
	}

	return out
}
