package align

import (
	"fmt"

	coreerrors "github.com/dfki-mlt/transins-go/internal/core/errors"
)

// Soft is an alignment given as a matrix of floats: rows are target tokens
// (text tokens plus one trailing sentence-end row), columns are source
// tokens (text tokens plus one trailing sentence-end column). Scores are
// typically attention weights or posterior probabilities.
type Soft struct {
	matrix [][]float64
	srcLen int // text-only source length (matrix has srcLen+1 columns)
	tgtLen int // text-only target length (matrix has tgtLen+1 rows)

	// defaultThreshold is applied by the BestSource/SourcesFor methods of the
	// common Alignments interface; 0 means "no threshold, pure argmax". The
	// caller supplies it — spec leaves no engine-wide default.
	defaultThreshold float64
}

// NewSoft builds a Soft alignment from a row-major score matrix. matrix must
// have tgtLen+1 rows (the extra row is the sentence-end pseudo-target) and
// each row must have srcLen+1 columns (the extra column is the
// sentence-end pseudo-source).
func NewSoft(matrix [][]float64, srcLen, tgtLen int, defaultThreshold float64) (*Soft, error) {
	if len(matrix) != tgtLen+1 {
		return nil, fmt.Errorf("soft alignment has %d rows, want %d (+1 for sentence end): %w", len(matrix), tgtLen+1, coreerrors.ErrAlignmentShapeMismatch)
	}

	for r, row := range matrix {
		if len(row) != srcLen+1 {
			return nil, fmt.Errorf("soft alignment row %d has %d columns, want %d (+1 for sentence end): %w", r, len(row), srcLen+1, coreerrors.ErrAlignmentShapeMismatch)
		}
	}

	return &Soft{matrix: matrix, srcLen: srcLen, tgtLen: tgtLen, defaultThreshold: defaultThreshold}, nil
}

// argmaxCol returns the column index with the highest score in row j, and
// that score. Ties resolve to the first (lowest-index) column.
func (s *Soft) argmaxCol(j int) (int, float64) {
	row := s.matrix[j]

	best := 0
	bestScore := row[0]

	for c := 1; c < len(row); c++ {
		if row[c] > bestScore {
			best = c
			bestScore = row[c]
		}
	}

	return best, bestScore
}

// BestSource returns the argmax source index for target row j, or -1 if j is
// the sentence-end row's argmax resolves to the source sentence-end column,
// or if the row's best score does not clear s.defaultThreshold.
func (s *Soft) BestSource(j int) int {
	return s.BestSourceThreshold(j, s.defaultThreshold)
}

// BestSourceThreshold is the explicit-threshold form of BestSource: returns
// -1 if the best score is below theta; a non-positive theta disables the
// score check, so the argmax column is returned (argmax-only).
func (s *Soft) BestSourceThreshold(j int, theta float64) int {
	if j < 0 || j >= len(s.matrix) {
		return -1
	}

	col, score := s.argmaxCol(j)
	if col == s.srcLen { // argmax landed on the source sentence-end column
		return -1
	}

	if theta > 0 && score < theta {
		return -1
	}

	return col
}

// SourcesFor returns, per the common interface contract, the single argmax
// column for row j (or nil if BestSource(j) is -1).
func (s *Soft) SourcesFor(j int) []int {
	best := s.BestSource(j)
	if best < 0 {
		return nil
	}

	return []int{best}
}

// SourcesForThreshold returns every source-text column in row j whose score
// is >= theta, excluding the sentence-end column, in ascending index order.
func (s *Soft) SourcesForThreshold(j int, theta float64) []int {
	if j < 0 || j >= len(s.matrix) {
		return nil
	}

	row := s.matrix[j]

	var out []int

	for c := 0; c < s.srcLen; c++ {
		if row[c] >= theta {
			out = append(out, c)
		}
	}

	return out
}

// PointedSourceTokens returns the union, over every target text row
// (0..tgtLen-1, excluding the sentence-end row), of BestSource(j).
func (s *Soft) PointedSourceTokens() []int {
	var out []int

	for j := 0; j < s.tgtLen; j++ {
		if src := s.BestSource(j); src >= 0 {
			out = append(out, src)
		}
	}

	return dedupeSorted(out)
}

func (s *Soft) TargetLen() int { return s.tgtLen }
func (s *Soft) SourceLen() int { return s.srcLen }

// EndOfSentenceRow returns the argmax source column for the trailing
// sentence-end target row, or -1 if none/below threshold. Used by the
// projection step (spec §4.6) to attach trailing source tags to the last
// target text token.
func (s *Soft) EndOfSentenceRow(theta float64) int {
	return s.BestSourceThreshold(s.tgtLen, theta)
}

// EndOfSentenceSource implements Alignments.EndOfSentenceSource using the
// matrix's own default threshold.
func (s *Soft) EndOfSentenceSource() int {
	return s.EndOfSentenceRow(s.defaultThreshold)
}

// ShiftSource returns a new Soft with every column reindexed by delta,
// dropping any column that falls out of [0, srcLen]. The sentence-end
// column is never shifted.
func (s *Soft) ShiftSource(delta int) *Soft {
	newSrcLen := s.srcLen + delta
	if newSrcLen < 0 {
		newSrcLen = 0
	}

	newMatrix := make([][]float64, len(s.matrix))

	for r, row := range s.matrix {
		newRow := make([]float64, newSrcLen+1)

		for c := 0; c < s.srcLen; c++ {
			nc := c + delta
			if nc < 0 || nc >= newSrcLen {
				continue
			}

			newRow[nc] = row[c]
		}

		newRow[newSrcLen] = row[s.srcLen] // carry sentence-end column forward

		newMatrix[r] = newRow
	}

	return &Soft{matrix: newMatrix, srcLen: newSrcLen, tgtLen: s.tgtLen, defaultThreshold: s.defaultThreshold}
}

// ShiftTarget returns a new Soft with every row reindexed by delta, dropping
// any row that falls out of [0, tgtLen]. The sentence-end row is never
// shifted.
func (s *Soft) ShiftTarget(delta int) *Soft {
	newTgtLen := s.tgtLen + delta
	if newTgtLen < 0 {
		newTgtLen = 0
	}

	newMatrix := make([][]float64, newTgtLen+1)
	for i := range newMatrix {
		newMatrix[i] = make([]float64, s.srcLen+1)
	}

	for r := 0; r < s.tgtLen; r++ {
		nr := r + delta
		if nr < 0 || nr >= newTgtLen {
			continue
		}

		copy(newMatrix[nr], s.matrix[r])
	}

	newMatrix[newTgtLen] = append([]float64(nil), s.matrix[s.tgtLen]...) // carry sentence-end row forward

	return &Soft{matrix: newMatrix, srcLen: s.srcLen, tgtLen: newTgtLen, defaultThreshold: s.defaultThreshold}
}

// ToHardThreshold converts the soft matrix to a Hard alignment, taking every
// source column whose score is >= theta as aligned to each target row.
func (s *Soft) ToHardThreshold(theta float64) *Hard {
	h := &Hard{
		bySource: make(map[int][]int),
		byTarget: make(map[int][]int),
		srcLen:   s.srcLen,
		tgtLen:   s.tgtLen,
	}

	for j := 0; j < s.tgtLen; j++ {
		for _, i := range s.SourcesForThreshold(j, theta) {
			h.bySource[i] = append(h.bySource[i], j)
			h.byTarget[j] = append(h.byTarget[j], i)
		}
	}

	return h
}

// ToHardArgmax converts the soft matrix to a Hard alignment using one
// argmax-best source per target row.
func (s *Soft) ToHardArgmax() *Hard {
	h := &Hard{
		bySource: make(map[int][]int),
		byTarget: make(map[int][]int),
		srcLen:   s.srcLen,
		tgtLen:   s.tgtLen,
	}

	for j := 0; j < s.tgtLen; j++ {
		i := s.BestSource(j)
		if i < 0 {
			continue
		}

		h.bySource[i] = append(h.bySource[i], j)
		h.byTarget[j] = append(h.byTarget[j], i)
	}

	return h
}
