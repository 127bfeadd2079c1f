// Package align provides a uniform interface over the two word-alignment
// representations an NMT engine can emit: hard 1-to-many index pairs, and a
// soft score matrix. Every query operates in text-only coordinate space —
// markup tokens are never counted.
package align

// Alignments is the interface the reinsertion core queries against,
// regardless of whether the concrete alignment is Hard or Soft.
type Alignments interface {
	// BestSource returns the source text-token index best aligned to target
	// text-token index j, or -1 if none.
	BestSource(j int) int

	// SourcesFor returns every source text-token index aligned to target
	// text-token index j, using the representation's default rule (for Hard,
	// every paired source; for Soft, the argmax column).
	SourcesFor(j int) []int

	// PointedSourceTokens returns the union, over every target row, of the
	// source index returned by BestSource — the source tokens that survive
	// into the target via the alignment.
	PointedSourceTokens() []int

	// TargetLen and SourceLen report the number of text-token rows/columns
	// the alignment was built over, used to validate alignment shape against
	// the supplied token sequences.
	TargetLen() int
	SourceLen() int

	// EndOfSentenceSource returns the source text-token index the engine's
	// sentence-end pseudo-target points to, or -1 if the representation
	// carries no such signal (Hard never does). Used by the projection step
	// (spec §4.6) to grant trailing source tags a pointed anchor even when no
	// real target token aligns to the last source token.
	EndOfSentenceSource() int
}

func dedupeSorted(indices []int) []int {
	seen := make(map[int]struct{}, len(indices))

	out := make([]int, 0, len(indices))

	for _, idx := range indices {
		if _, ok := seen[idx]; ok {
			continue
		}

		seen[idx] = struct{}{}

		out = append(out, idx)
	}

	return out
}
