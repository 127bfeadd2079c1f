// Package cleanup implements the fixed post-projection pass sequence that
// turns an initial tagged target sequence into valid, minimal, well-nested
// markup (spec §4.7): BPE-fragment relocation and undo, invert-tag repair,
// redundant-tag removal, nesting balance, neighbor-pair merge, and
// unused-tag collection.
package cleanup

import (
	"strings"

	"github.com/dfki-mlt/transins-go/internal/core/tagmodel"
)

// MoveTagsOutOfBPE relocates tag tokens that fall strictly between two
// fragments of the same BPE word to the word's boundary: opening and
// isolated tags move to immediately before the word's first fragment;
// closing tags move to immediately after the word's last fragment. A tag
// that is not inside a word passes through untouched.
func MoveTagsOutOfBPE(tokens []tagmodel.Token) []tagmodel.Token {
	out := make([]tagmodel.Token, 0, len(tokens))

	var midOpening, midClosing []tagmodel.Token

	inWord := false
	wordStartIdx := -1

	for _, tok := range tokens {
		if tok.IsTag {
			if inWord {
				if tok.Tag.Kind == tagmodel.Closing {
					midClosing = append(midClosing, tok)
				} else {
					midOpening = append(midOpening, tok)
				}

				continue
			}

			out = append(out, tok)

			continue
		}

		if tok.IsBPEFragment() {
			if !inWord {
				wordStartIdx = len(out)
				inWord = true
			}

			out = append(out, tok)

			continue
		}

		if inWord {
			out = flushWord(out, wordStartIdx, midOpening, tok, midClosing)
			midOpening, midClosing = nil, nil
			inWord = false
			wordStartIdx = -1

			continue
		}

		out = append(out, tok)
	}

	if inWord {
		out = flushWord(out, wordStartIdx, midOpening, tagmodel.Token{}, midClosing)
	}

	return out
}

// flushWord inserts midOpening at wordStartIdx (pushing the already-emitted
// fragments forward), appends the word-final token (a zero Token if the
// stream ended mid-word, in which case nothing is appended), then appends
// midClosing.
func flushWord(out []tagmodel.Token, wordStartIdx int, midOpening []tagmodel.Token, final tagmodel.Token, midClosing []tagmodel.Token) []tagmodel.Token {
	if len(midOpening) > 0 {
		out = insertAt(out, wordStartIdx, midOpening)
	}

	if final.IsTag || final.Value != "" {
		out = append(out, final)
	}

	out = append(out, midClosing...)

	return out
}

func insertAt(tokens []tagmodel.Token, idx int, insert []tagmodel.Token) []tagmodel.Token {
	out := make([]tagmodel.Token, 0, len(tokens)+len(insert))
	out = append(out, tokens[:idx]...)
	out = append(out, insert...)
	out = append(out, tokens[idx:]...)

	return out
}

// UndoBPE merges every run of BPE fragments (a word: zero or more tokens
// ending in the continuation marker, followed by one token that does not)
// into a single text token. Tags never appear inside such a run once
// MoveTagsOutOfBPE has run, so this is a pure text transform.
func UndoBPE(tokens []tagmodel.Token) []tagmodel.Token {
	out := make([]tagmodel.Token, 0, len(tokens))

	i := 0
	for i < len(tokens) {
		tok := tokens[i]

		if tok.IsTag || !tok.IsBPEFragment() {
			out = append(out, tok)
			i++

			continue
		}

		var sb strings.Builder

		sb.WriteString(tok.TrimBPEMarker())

		j := i + 1
		for j < len(tokens) && !tokens[j].IsTag && tokens[j].IsBPEFragment() {
			sb.WriteString(tokens[j].TrimBPEMarker())
			j++
		}

		if j < len(tokens) && !tokens[j].IsTag {
			sb.WriteString(tokens[j].Value)
			j++
		}

		out = append(out, tagmodel.Text(sb.String()))
		i = j
	}

	return out
}
