package reinsert

import "github.com/dfki-mlt/transins-go/internal/core/tagmodel"

// IndexMap maps a text-token index (in the source's text-only coordinate
// space) to the tags "owned" by that token (spec §4.4). A sentence's full
// attachment is a pair of IndexMaps: Before holds tags placed immediately
// ahead of the token (openings, and isolated tags with a following text
// token to attach to); After holds tags placed immediately behind it
// (closings, and isolated/opening tags that trail the sentence with no
// following text token — spec's "previous text token if it is end of
// sentence" rule).
type IndexMap map[int][]tagmodel.Tag

// Clone returns a deep copy, since the projection step consumes entries from
// a Neighbor map it is given (spec §4.6 step 3) and must not mutate a shared one.
func (m IndexMap) Clone() IndexMap {
	out := make(IndexMap, len(m))

	for k, v := range m {
		out[k] = append([]tagmodel.Tag(nil), v...)
	}

	return out
}

// Attachment is a sentence's full tag attachment (spec §4.4): the paired
// Before/After IndexMaps that place each source tag relative to its anchor
// text token.
type Attachment struct {
	Before IndexMap
	After  IndexMap
}

// BuildNeighborMap implements the neighbor index map. Each run of tags
// between two text tokens is split by kind: opening and isolated tags
// attach to the following text token (placed before it); closing tags
// attach to the preceding text token (placed after it). A trailing run at
// the very end of the sentence, with no following text token, falls back
// to the preceding token's After slot regardless of kind. Each tag occurs
// exactly once across the returned maps.
func BuildNeighborMap(inner []tagmodel.Token) Attachment {
	before := make(IndexMap)
	after := make(IndexMap)

	var pendingBefore []tagmodel.Tag

	lastTextIdx := -1
	textIdx := 0

	for _, tok := range inner {
		if tok.IsTag {
			if tok.Tag.Kind == tagmodel.Closing {
				if lastTextIdx >= 0 {
					after[lastTextIdx] = append(after[lastTextIdx], tok.Tag)
				} else {
					// a closing tag with nothing preceding it inside inner;
					// SplitTagsSentence guarantees this cannot happen for a
					// balanced source, but fall back to Before-of-next rather
					// than dropping the tag.
					pendingBefore = append(pendingBefore, tok.Tag)
				}

				continue
			}

			pendingBefore = append(pendingBefore, tok.Tag)

			continue
		}

		if len(pendingBefore) > 0 {
			before[textIdx] = append(before[textIdx], pendingBefore...)
			pendingBefore = nil
		}

		lastTextIdx = textIdx
		textIdx++
	}

	if len(pendingBefore) > 0 && lastTextIdx >= 0 {
		after[lastTextIdx] = append(after[lastTextIdx], pendingBefore...)
	}

	return Attachment{Before: before, After: after}
}

// BuildCompleteMap implements the complete index map: every text token
// inside the text range covered by an opening/closing pair gets the
// opening tag attached Before it and the closing tag attached After it, for
// every token in that range — so each aligned token can be individually
// wrapped by every pair enclosing it. Isolated tags are attached exactly as
// in the neighbor map. When several pairs enclose the same token, Before
// lists them outermost-first and After lists them innermost-first, so a
// single token wrapped by nested pairs still nests correctly.
func BuildCompleteMap(inner []tagmodel.Token, tagMap *tagmodel.TagMap) Attachment {
	before := make(IndexMap)
	after := make(IndexMap)

	var active []tagmodel.Tag // opening tags currently enclosing the cursor, outer-first

	var pendingIsolated []tagmodel.Tag

	lastTextIdx := -1
	textIdx := 0

	for _, tok := range inner {
		if tok.IsTag {
			switch tok.Tag.Kind {
			case tagmodel.Opening:
				active = append(active, tok.Tag)
			case tagmodel.Closing:
				if open, ok := tagMap.OpeningFor(tok.Tag); ok {
					active = removeTagID(active, open.ID)
				}
			case tagmodel.Isolated:
				pendingIsolated = append(pendingIsolated, tok.Tag)
			}

			continue
		}

		for _, open := range active {
			before[textIdx] = append(before[textIdx], open)
		}

		for i := len(active) - 1; i >= 0; i-- {
			if close, ok := tagMap.ClosingFor(active[i]); ok {
				after[textIdx] = append(after[textIdx], close)
			}
		}

		if len(pendingIsolated) > 0 {
			before[textIdx] = append(before[textIdx], pendingIsolated...)
			pendingIsolated = nil
		}

		lastTextIdx = textIdx
		textIdx++
	}

	if len(pendingIsolated) > 0 && lastTextIdx >= 0 {
		after[lastTextIdx] = append(after[lastTextIdx], pendingIsolated...)
	}

	return Attachment{Before: before, After: after}
}

func removeTagID(tags []tagmodel.Tag, id int) []tagmodel.Tag {
	out := tags[:0:0]

	for _, t := range tags {
		if t.ID != id {
			out = append(out, t)
		}
	}

	return out
}
