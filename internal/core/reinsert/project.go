package reinsert

import (
	"fmt"

	"github.com/dfki-mlt/transins-go/internal/core/align"
	coreerrors "github.com/dfki-mlt/transins-go/internal/core/errors"
	"github.com/dfki-mlt/transins-go/internal/core/tagmodel"
)

// Strategy selects how the index map built in BuildNeighborMap /
// BuildCompleteMap is consumed during projection (spec §4.4/§4.6).
type Strategy int

const (
	// Neighbor attaches each tag to exactly one text token and consumes it
	// from the map the first time that token is projected.
	Neighbor Strategy = iota
	// Complete re-emits a pair around every aligned token it encloses,
	// leaving later cleanup passes to merge adjacent duplicates.
	Complete
)

func (s Strategy) String() string {
	switch s {
	case Neighbor:
		return "neighbor"
	case Complete:
		return "complete"
	default:
		return "unknown"
	}
}

// ParseStrategy parses the wire/config value for a strategy name ("neighbor"
// or "complete"). Unknown values return ErrUnknownStrategy.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "neighbor", "":
		return Neighbor, nil
	case "complete":
		return Complete, nil
	default:
		return 0, fmt.Errorf("strategy %q: %w", s, coreerrors.ErrUnknownStrategy)
	}
}

// Project walks the target text tokens in order and, for each one, looks up
// the source text-token index the alignment best-aligns it to, then splices
// in that index's attached tags from attach (spec §4.6 steps 1-2). Under
// Neighbor, an index's tags are removed from attach once emitted so a
// many-to-one alignment (several target tokens pointing at the same source
// token) places them only once; under Complete they are left in place so
// every aligned occurrence is wrapped again.
//
// If the alignment carries a sentence-end pseudo-target pointing at a
// source index that no real target token ever visits, that index's tags
// are appended after the last target token — the only way trailing source
// tags can still reach the output when nothing in the target aligns to the
// sentence's final source word.
func Project(targetText []tagmodel.Token, attach Attachment, alignment align.Alignments, strategy Strategy) []tagmodel.Token {
	before := attach.Before
	after := attach.After

	if strategy == Neighbor {
		before = before.Clone()
		after = after.Clone()
	}

	visited := make(map[int]bool, len(targetText))
	out := make([]tagmodel.Token, 0, len(targetText)*2)

	for j, tok := range targetText {
		i := alignment.BestSource(j)

		if i >= 0 {
			visited[i] = true

			for _, t := range before[i] {
				out = append(out, tagmodel.FromTag(t))
			}
		}

		out = append(out, tok)

		if i >= 0 {
			for _, t := range after[i] {
				out = append(out, tagmodel.FromTag(t))
			}

			if strategy == Neighbor {
				delete(before, i)
				delete(after, i)
			}
		}
	}

	if eos := alignment.EndOfSentenceSource(); eos >= 0 && !visited[eos] {
		for _, t := range before[eos] {
			out = append(out, tagmodel.FromTag(t))
		}

		for _, t := range after[eos] {
			out = append(out, tagmodel.FromTag(t))
		}
	}

	return out
}
