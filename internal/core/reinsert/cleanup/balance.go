package cleanup

import "github.com/dfki-mlt/transins-go/internal/core/tagmodel"

// Balance walks the token stream with a stack of currently-open tag ids and
// fixes overlaps (spec §4.7 step 5): when a closing tag's id is not the
// stack top but is still found somewhere on the stack, every tag above it
// is closed first (innermost first), the real closer is emitted, and the
// tags that were closed early are reopened immediately after — turning
// `<A><B>...</A>...</B>` into `<A><B>...</B></A><B>...</B>`. A closing tag
// whose id is nowhere on the stack is dropped (it has no opener to balance
// against).
func Balance(tokens []tagmodel.Token) []tagmodel.Token {
	var stack []tagmodel.Tag

	out := make([]tagmodel.Token, 0, len(tokens)*2)

	for _, tok := range tokens {
		if !tok.IsTag {
			out = append(out, tok)
			continue
		}

		switch tok.Tag.Kind {
		case tagmodel.Opening:
			stack = append(stack, tok.Tag)
			out = append(out, tok)
		case tagmodel.Isolated:
			out = append(out, tok)
		case tagmodel.Closing:
			pos := indexOfID(stack, tok.Tag.ID)
			if pos < 0 {
				continue // no opener anywhere on the stack: stray, drop
			}

			if pos == len(stack)-1 {
				stack = stack[:pos]
				out = append(out, tok)

				continue
			}

			above := append([]tagmodel.Tag(nil), stack[pos+1:]...)

			for i := len(stack) - 1; i > pos; i-- {
				out = append(out, tagmodel.FromTag(tagmodel.Tag{Kind: tagmodel.Closing, ID: stack[i].ID}))
			}

			out = append(out, tok)

			for _, t := range above {
				out = append(out, tagmodel.FromTag(t))
			}

			stack = append(append([]tagmodel.Tag(nil), stack[:pos]...), above...)
		}
	}

	return out
}

func indexOfID(stack []tagmodel.Tag, id int) int {
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i].ID == id {
			return i
		}
	}

	return -1
}
