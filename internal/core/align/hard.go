package align

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	coreerrors "github.com/dfki-mlt/transins-go/internal/core/errors"
)

// Hard is an alignment parsed from a space-separated list of "i-j" pairs,
// the fast_align/GIZA++ convention: i is a source text-token index, j a
// target text-token index.
type Hard struct {
	bySource map[int][]int // source idx -> target idxs aligned to it
	byTarget map[int][]int // target idx -> source idxs aligned to it
	srcLen   int
	tgtLen   int
}

// ParseHard parses the "i-j i-j ..." wire format into a Hard alignment.
// srcLen/tgtLen are the text-token counts of the source and target
// sentences, used to bounds-check every pair.
func ParseHard(s string, srcLen, tgtLen int) (*Hard, error) {
	h := &Hard{
		bySource: make(map[int][]int),
		byTarget: make(map[int][]int),
		srcLen:   srcLen,
		tgtLen:   tgtLen,
	}

	s = strings.TrimSpace(s)
	if s == "" {
		return h, nil
	}

	for _, pair := range strings.Fields(s) {
		i, j, err := splitPair(pair)
		if err != nil {
			return nil, err
		}

		if i < 0 || i >= srcLen || j < 0 || j >= tgtLen {
			return nil, fmt.Errorf("pair %q out of range (src<%d, tgt<%d): %w", pair, srcLen, tgtLen, coreerrors.ErrAlignmentShapeMismatch)
		}

		h.bySource[i] = append(h.bySource[i], j)
		h.byTarget[j] = append(h.byTarget[j], i)
	}

	return h, nil
}

func splitPair(pair string) (int, int, error) {
	idx := strings.IndexByte(pair, '-')
	if idx < 0 {
		return 0, 0, fmt.Errorf("malformed alignment pair %q", pair)
	}

	i, err := strconv.Atoi(pair[:idx])
	if err != nil {
		return 0, 0, fmt.Errorf("malformed source index in %q: %w", pair, err)
	}

	j, err := strconv.Atoi(pair[idx+1:])
	if err != nil {
		return 0, 0, fmt.Errorf("malformed target index in %q: %w", pair, err)
	}

	return i, j, nil
}

// BestSource returns the first source index recorded against target index j
// (pairs are visited in parse order when multiple sources align to one
// target), or -1 if none.
func (h *Hard) BestSource(j int) int {
	srcs, ok := h.byTarget[j]
	if !ok || len(srcs) == 0 {
		return -1
	}

	return srcs[0]
}

// SourcesFor returns every source index aligned to target index j, in parse order.
func (h *Hard) SourcesFor(j int) []int {
	srcs, ok := h.byTarget[j]
	if !ok {
		return nil
	}

	out := make([]int, len(srcs))
	copy(out, srcs)

	return out
}

// PointedSourceTokens returns every source index aligned to at least one target.
func (h *Hard) PointedSourceTokens() []int {
	out := make([]int, 0, len(h.bySource))
	for src := range h.bySource {
		out = append(out, src)
	}

	sort.Ints(out)

	return out
}

// TargetsFor returns every target index aligned to source index i, in parse order.
func (h *Hard) TargetsFor(i int) []int {
	tgts, ok := h.bySource[i]
	if !ok {
		return nil
	}

	out := make([]int, len(tgts))
	copy(out, tgts)

	return out
}

func (h *Hard) TargetLen() int { return h.tgtLen }
func (h *Hard) SourceLen() int { return h.srcLen }

// EndOfSentenceSource always returns -1: the "i-j" wire format has no
// sentence-end pseudo-row, only Soft alignments carry that signal.
func (h *Hard) EndOfSentenceSource() int { return -1 }
