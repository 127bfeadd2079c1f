package reinsert

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/dfki-mlt/transins-go/internal/core/tagmodel"
)

// Detokenize joins a tagged token sequence into a string (spec §4.10).
// Inter-token whitespace is suppressed immediately before a closing tag,
// and immediately after an opening or isolated tag, so a tag binds to its
// adjacent word with no stray space. The result is NFC-normalized, since
// tokens reassembled from separately-produced fragments can carry
// inconsistent Unicode composition.
func Detokenize(tokens []tagmodel.Token) string {
	var sb strings.Builder

	for i, tok := range tokens {
		if i > 0 && !suppressSpaceBefore(tokens, i) {
			sb.WriteByte(' ')
		}

		if tok.IsTag {
			sb.WriteString(tok.Tag.String())
		} else {
			sb.WriteString(tok.Value)
		}
	}

	return norm.NFC.String(sb.String())
}

func suppressSpaceBefore(tokens []tagmodel.Token, i int) bool {
	cur := tokens[i]
	if cur.IsTag && cur.Tag.Kind == tagmodel.Closing {
		return true
	}

	prev := tokens[i-1]

	return prev.IsTag && (prev.Tag.Kind == tagmodel.Opening || prev.Tag.Kind == tagmodel.Isolated)
}
