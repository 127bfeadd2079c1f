// Package reinsert implements the markup reinsertion engine: given a
// tokenized source sentence with embedded tags, a tokenized target
// sentence without markup, a word alignment, and the source's tag map, it
// produces the target sentence with markup reinserted, guaranteed
// well-formed.
package reinsert

import (
	"fmt"
	"time"

	"github.com/dfki-mlt/transins-go/internal/core/align"
	coreerrors "github.com/dfki-mlt/transins-go/internal/core/errors"
	"github.com/dfki-mlt/transins-go/internal/core/reinsert/cleanup"
	"github.com/dfki-mlt/transins-go/internal/core/tagmodel"
	"github.com/dfki-mlt/transins-go/internal/platform/observability"
)

// Result is the output of Reinsert: the tagged target token sequence and
// the tags whose source anchor never survived into it.
type Result struct {
	Tokens []tagmodel.Token
	Unused []tagmodel.Tag
}

// Reinsert runs the full pipeline described in spec §4: split off
// sentence-spanning wrapper tags, relocate or drop unpointed tags, build
// the requested strategy's index map, project source tags onto the target
// through the alignment, re-attach the wrapper tags, and run the fixed
// cleanup pass sequence.
func Reinsert(sourceTokens, targetText []tagmodel.Token, tagMap *tagmodel.TagMap, alignment align.Alignments, strategy Strategy) (Result, error) {
	start := time.Now()

	result, err := reinsert(sourceTokens, targetText, tagMap, alignment, strategy)

	status := "ok"
	if err != nil {
		status = "error"
	}

	observability.SentencesProcessed.WithLabelValues(strategy.String(), status).Inc()
	observability.ReinsertionLatency.WithLabelValues(strategy.String()).Observe(time.Since(start).Seconds())

	if err == nil && len(result.Unused) > 0 {
		observability.TagsDroppedUnused.WithLabelValues(strategy.String()).Add(float64(len(result.Unused)))
	}

	return result, err
}

func reinsert(sourceTokens, targetText []tagmodel.Token, tagMap *tagmodel.TagMap, alignment align.Alignments, strategy Strategy) (Result, error) {
	split := SplitTagsSentence(sourceTokens, tagMap)

	srcTextLen := len(tagmodel.TextOnly(split.Inner))
	if alignment.SourceLen() != srcTextLen {
		return Result{}, fmt.Errorf("alignment source length %d, want %d inner text tokens: %w", alignment.SourceLen(), srcTextLen, coreerrors.ErrAlignmentShapeMismatch)
	}

	if alignment.TargetLen() != len(targetText) {
		return Result{}, fmt.Errorf("alignment target length %d, want %d target tokens: %w", alignment.TargetLen(), len(targetText), coreerrors.ErrAlignmentShapeMismatch)
	}

	pointed := pointedFunc(alignment)

	resolvedInner, unpointedUnused := ResolveUnpointed(split.Inner, tagMap, pointed)

	var attach Attachment
	if strategy == Complete {
		attach = BuildCompleteMap(resolvedInner, tagMap)
	} else {
		attach = BuildNeighborMap(resolvedInner)
	}

	projected := Project(targetText, attach, alignment, strategy)

	full := make([]tagmodel.Token, 0, len(split.Prefix)+len(projected)+len(split.Suffix))
	for _, t := range split.Prefix {
		full = append(full, tagmodel.FromTag(t))
	}

	full = append(full, projected...)

	for _, t := range split.Suffix {
		full = append(full, tagmodel.FromTag(t))
	}

	cleaned := cleanup.Run(full, tagMap)

	return Result{
		Tokens: cleaned.Tokens,
		Unused: dedupeTags(append(append([]tagmodel.Tag(nil), unpointedUnused...), cleaned.Unused...)),
	}, nil
}

// pointedFunc reports whether a source text-token index is aligned to at
// least one target token, folding in the sentence-end pseudo-target so
// trailing tags it carries are granted a pointed anchor (spec §4.6).
func pointedFunc(alignment align.Alignments) PointedFunc {
	pointedSet := make(map[int]bool)

	for _, idx := range alignment.PointedSourceTokens() {
		pointedSet[idx] = true
	}

	if eos := alignment.EndOfSentenceSource(); eos >= 0 {
		pointedSet[eos] = true
	}

	return func(idx int) bool { return pointedSet[idx] }
}

func dedupeTags(tags []tagmodel.Tag) []tagmodel.Tag {
	seen := make(map[tagmodel.Tag]bool, len(tags))
	out := tags[:0:0]

	for _, t := range tags {
		if seen[t] {
			continue
		}

		seen[t] = true
		out = append(out, t)
	}

	return out
}
