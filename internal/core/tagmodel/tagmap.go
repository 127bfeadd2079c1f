package tagmodel

import (
	"fmt"

	coreerrors "github.com/dfki-mlt/transins-go/internal/core/errors"
)

// TagMap is a bijection between the opening and closing tags that appear in
// a source sentence. It is built once per sentence and is read-only
// thereafter, safe to share by reference across every pass that borrows it.
type TagMap struct {
	closingFor map[int]Tag // opening id -> closing tag
	openingFor map[int]Tag // closing id -> opening tag
	order      []int       // opening ids, in the order pairs were discovered
}

// NewTagMap scans source tokens with a stack-based pass: every opening tag
// id is pushed; a closing tag must match the id on top of the stack,
// resolving it as a pair at that nesting depth. Since every tag pair shares
// one id between its opening and closing instance, this both verifies
// proper nesting and records the pairing in a single scan.
//
// Returns ErrMalformedSourceMarkup if the source is not balanced: a closing
// tag with no open tag to match, a closing tag whose id does not match the
// innermost still-open pair (crossing tags), or an opening tag left unclosed
// at the end.
func NewTagMap(tokens []Token) (*TagMap, error) {
	tm := &TagMap{
		closingFor: make(map[int]Tag),
		openingFor: make(map[int]Tag),
	}

	var stack []Tag

	for _, tok := range tokens {
		if !tok.IsTag {
			continue
		}

		switch tok.Tag.Kind {
		case Opening:
			stack = append(stack, tok.Tag)
		case Closing:
			if len(stack) == 0 {
				return nil, fmt.Errorf("closing tag %s with no open pair: %w", tok.Tag, coreerrors.ErrMalformedSourceMarkup)
			}

			open := stack[len(stack)-1]
			if open.ID != tok.Tag.ID {
				return nil, fmt.Errorf("closing tag %s crosses open pair %s: %w", tok.Tag, open, coreerrors.ErrMalformedSourceMarkup)
			}

			stack = stack[:len(stack)-1]

			tm.closingFor[open.ID] = tok.Tag
			tm.openingFor[tok.Tag.ID] = open
			tm.order = append(tm.order, open.ID)
		case Isolated:
			// isolated tags never participate in pairing
		}
	}

	if len(stack) > 0 {
		return nil, fmt.Errorf("unclosed opening tag %s: %w", stack[len(stack)-1], coreerrors.ErrMalformedSourceMarkup)
	}

	return tm, nil
}

// ClosingFor returns the closing tag paired with an opening tag's id.
func (tm *TagMap) ClosingFor(open Tag) (Tag, bool) {
	c, ok := tm.closingFor[open.ID]
	return c, ok
}

// OpeningFor returns the opening tag paired with a closing tag's id.
func (tm *TagMap) OpeningFor(close Tag) (Tag, bool) {
	o, ok := tm.openingFor[close.ID]
	return o, ok
}

// Contains reports whether the given opening or closing tag is part of a
// known pair.
func (tm *TagMap) Contains(tag Tag) bool {
	switch tag.Kind {
	case Opening:
		_, ok := tm.closingFor[tag.ID]
		return ok
	case Closing:
		_, ok := tm.openingFor[tag.ID]
		return ok
	default:
		return false
	}
}

// Size returns the number of tag pairs known to the map.
func (tm *TagMap) Size() int {
	return len(tm.closingFor)
}

// Pair is an opening/closing tag pair, as yielded by Pairs.
type Pair struct {
	Open  Tag
	Close Tag
}

// Pairs iterates over every known pair, in discovery order.
func (tm *TagMap) Pairs() []Pair {
	pairs := make([]Pair, 0, len(tm.order))

	for _, id := range tm.order {
		pairs = append(pairs, Pair{
			Open:  Tag{Kind: Opening, ID: id},
			Close: tm.closingFor[id],
		})
	}

	return pairs
}
