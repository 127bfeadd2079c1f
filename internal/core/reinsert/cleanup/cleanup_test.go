package cleanup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dfki-mlt/transins-go/internal/core/tagmodel"
)

func tag(kind tagmodel.Kind, id int) tagmodel.Token { return tagmodel.FromTag(tagmodel.Tag{Kind: kind, ID: id}) }
func text(v string) tagmodel.Token                  { return tagmodel.Text(v) }

func render(tokens []tagmodel.Token) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		if tok.IsTag {
			out[i] = tok.Tag.String()
		} else {
			out[i] = tok.Value
		}
	}

	return out
}

func buildTagMap(t *testing.T, tokens []tagmodel.Token) *tagmodel.TagMap {
	t.Helper()

	tm, err := tagmodel.NewTagMap(tokens)
	require.NoError(t, err)

	return tm
}

// Scenario 4: `a b c@@ O1 x@@ y@@ z` -> `a b O1 cxyz` (tag moved out of the word, BPE undone).
func TestBPECleanup_MovesTagAndUndoesFragments(t *testing.T) {
	tokens := []tagmodel.Token{
		text("a"), text("b"),
		text("c@@"),
		tag(tagmodel.Opening, 1),
		text("x@@"), text("y@@"), text("z"),
	}

	moved := MoveTagsOutOfBPE(tokens)
	undone := UndoBPE(moved)

	assert.Equal(t, []string{"a", "b", "O!", "cxyz"}, render(undone))
}

// Scenario 5: `x C1 y O1 z` -> `O1 x y z C1`.
func TestInvert_RepairsInvertedPair(t *testing.T) {
	tokens := []tagmodel.Token{
		text("x"), tag(tagmodel.Closing, 1), text("y"), tag(tagmodel.Opening, 1), text("z"),
	}

	out := RepairInversions(tokens)

	assert.Equal(t, []string{"O!", "x", "y", "z", "C!"}, render(out))
}

// Scenario 6: `x O1 y O2 z C1 a C2` -> `x O1 y O2 z C2 C1 O2 a C2`.
func TestBalance_SplitsOverlap(t *testing.T) {
	tokens := []tagmodel.Token{
		text("x"), tag(tagmodel.Opening, 1), text("y"), tag(tagmodel.Opening, 2), text("z"),
		tag(tagmodel.Closing, 1), text("a"), tag(tagmodel.Closing, 2),
	}

	out := Balance(tokens)

	assert.Equal(t, []string{"x", "O!", "y", "O\"", "z", "C\"", "C!", "O\"", "a", "C\""}, render(out))
}

func TestMergeNeighborPairs_CollapsesAdjacentReopen(t *testing.T) {
	tokens := []tagmodel.Token{
		text("a"), tag(tagmodel.Closing, 1), tag(tagmodel.Opening, 1), text("b"),
	}

	out := MergeNeighborPairs(tokens)
	assert.Equal(t, []string{"a", "b"}, render(out))
}

func TestMergeNeighborPairs_MultiLevel(t *testing.T) {
	tokens := []tagmodel.Token{
		text("a"),
		tag(tagmodel.Closing, 1), tag(tagmodel.Closing, 2), tag(tagmodel.Opening, 2), tag(tagmodel.Opening, 1),
		text("b"),
	}

	out := MergeNeighborPairs(tokens)
	assert.Equal(t, []string{"a", "b"}, render(out))
}

func TestRemoveRedundant_DedupesRuns(t *testing.T) {
	tokens := []tagmodel.Token{
		tag(tagmodel.Opening, 1), tag(tagmodel.Opening, 1), text("a"),
		tag(tagmodel.Closing, 1), tag(tagmodel.Closing, 1),
	}

	out := RemoveRedundant(tokens)
	assert.Equal(t, []string{"O!", "a", "C!"}, render(out))
}

func TestCollectUnused_ReportsDroppedPair(t *testing.T) {
	source := []tagmodel.Token{
		tag(tagmodel.Opening, 1), text("x"), tag(tagmodel.Closing, 1), text("y"),
	}
	tm := buildTagMap(t, source)

	output := []tagmodel.Token{text("x"), text("y")}

	unused := CollectUnused(output, tm)
	assert.ElementsMatch(t, []tagmodel.Tag{{Kind: tagmodel.Opening, ID: 1}, {Kind: tagmodel.Closing, ID: 1}}, unused)
}

func TestRun_IsIdempotent(t *testing.T) {
	source := []tagmodel.Token{
		text("x"), tag(tagmodel.Opening, 1), text("y"), tag(tagmodel.Opening, 2), text("z"),
		tag(tagmodel.Closing, 1), text("a"), tag(tagmodel.Closing, 2),
	}
	tm := buildTagMap(t, source)

	first := Run(source, tm)
	second := Run(first.Tokens, tm)

	assert.Equal(t, first.Tokens, second.Tokens)
	assert.Empty(t, second.Unused)
}
