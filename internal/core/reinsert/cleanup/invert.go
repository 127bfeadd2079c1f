package cleanup

import "github.com/dfki-mlt/transins-go/internal/core/tagmodel"

// RepairInversions detects closing tags that appear before their matching
// opening tag and rewrites the run so the opening leads and the closing
// trails (spec §4.7 step 3). A closing tag encountered before its opener is
// held back rather than emitted; when the opener is later found it is
// spliced in at the very start of the stream (an inverted closer implies
// its span reaches back to the sentence start, since nothing established an
// earlier boundary for it), and the held closer is appended once the whole
// stream has been scanned. A closing tag whose opener never appears, or an
// opening tag whose closer never appears, is a stray and is dropped.
func RepairInversions(tokens []tagmodel.Token) []tagmodel.Token {
	seenOpen := make(map[int]bool)
	inverted := make(map[int]bool) // ids currently held back, awaiting their opener

	out := make([]tagmodel.Token, 0, len(tokens))

	var trailing []tagmodel.Token

	for _, tok := range tokens {
		if !tok.IsTag {
			out = append(out, tok)
			continue
		}

		switch tok.Tag.Kind {
		case tagmodel.Opening:
			if inverted[tok.Tag.ID] {
				out = insertAt(out, 0, []tagmodel.Token{tok})
				delete(inverted, tok.Tag.ID)
			} else {
				seenOpen[tok.Tag.ID] = true
				out = append(out, tok)
			}
		case tagmodel.Closing:
			if seenOpen[tok.Tag.ID] {
				out = append(out, tok)
				continue
			}

			if inverted[tok.Tag.ID] {
				continue // a second early closer for the same id: stray, drop
			}

			inverted[tok.Tag.ID] = true
			trailing = append(trailing, tok)
		default:
			out = append(out, tok)
		}
	}

	kept := trailing[:0:0]

	for _, t := range trailing {
		if inverted[t.Tag.ID] {
			continue // opener never showed up: stray, drop
		}

		kept = append(kept, t)
	}

	out = append(out, kept...)

	lastClose := make(map[int]int) // id -> position of its last closing tag
	for i, tok := range out {
		if tok.IsTag && tok.Tag.Kind == tagmodel.Closing {
			lastClose[tok.Tag.ID] = i
		}
	}

	final := out[:0:0]
	for i, tok := range out {
		if last, ok := lastClose[tok.Tag.ID]; !tok.IsTag || tok.Tag.Kind != tagmodel.Opening || (ok && last > i) {
			final = append(final, tok) // an opening with no closer after it is a stray and is dropped
		}
	}

	return final
}
