package reinsert

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dfki-mlt/transins-go/internal/core/align"
	"github.com/dfki-mlt/transins-go/internal/core/tagmodel"
)

// Feeding a fully-reinserted sentence back through the pipeline as its own
// source, with an identity alignment to itself, must not change it further —
// the tags have already settled into their final, balanced positions.
func TestReinsertPipelineIdempotent(t *testing.T) {
	source := scenario12Source()
	tagMap := mustTagMap(t, source)
	target := []tagmodel.Token{txt("Das"), txt("ist"), txt("ein"), txt("Test"), txt(".")}
	alignment, err := align.ParseHard("0-0 1-1 2-2 3-3 4-4", 5, 5)
	require.NoError(t, err)

	first, err := Reinsert(source, target, tagMap, alignment, Neighbor)
	require.NoError(t, err)

	selfTagMap := mustTagMap(t, first.Tokens)
	selfText := tagmodel.TextOnly(first.Tokens)
	selfTextLen := len(selfText)

	selfAlignment, err := align.ParseHard(identityAlignmentString(selfTextLen), selfTextLen, selfTextLen)
	require.NoError(t, err)

	second, err := Reinsert(first.Tokens, selfText, selfTagMap, selfAlignment, Neighbor)
	require.NoError(t, err)

	assert.Equal(t, first.Tokens, second.Tokens)
	assert.Empty(t, second.Unused)
}

func identityAlignmentString(n int) string {
	pairs := make([]string, n)
	for i := range pairs {
		pairs[i] = fmt.Sprintf("%d-%d", i, i)
	}

	return strings.Join(pairs, " ")
}

func TestMaskUnmaskIdentity(t *testing.T) {
	tokens := []tagmodel.Token{
		tagmodel.FromTag(tagmodel.Tag{Kind: tagmodel.Opening, ID: 1}),
		tagmodel.Text("hello"),
		tagmodel.FromTag(tagmodel.Tag{Kind: tagmodel.Closing, ID: 1}),
		tagmodel.Text("world"),
		tagmodel.FromTag(tagmodel.Tag{Kind: tagmodel.Isolated, ID: 9}),
	}

	masked := Mask(tokens)
	assert.NotEqual(t, tokens, masked)

	unmasked := Unmask(masked)
	assert.Equal(t, tokens, unmasked)
}

func TestMask_EdgeTagsGetSentinels(t *testing.T) {
	tokens := []tagmodel.Token{
		tagmodel.FromTag(tagmodel.Tag{Kind: tagmodel.Opening, ID: 1}),
		tagmodel.Text("x"),
	}

	masked := Mask(tokens)
	assert.Equal(t, maskStart+tagmodel.Tag{Kind: tagmodel.Opening, ID: 1}.String()+"x", masked[0].Value)
}

func TestEmptyPairRoundTrip(t *testing.T) {
	source := []tagmodel.Token{
		tagmodel.Text("a"),
		tagmodel.FromTag(tagmodel.Tag{Kind: tagmodel.Opening, ID: 1}),
		tagmodel.FromTag(tagmodel.Tag{Kind: tagmodel.Closing, ID: 1}),
		tagmodel.Text("b"),
	}
	tagMap, err := tagmodel.NewTagMap(source)
	require.NoError(t, err)

	nextID := 100
	replaced, placeholders := ReplaceEmptyPairs(source, tagMap, func() int {
		id := nextID
		nextID++

		return id
	})

	assert.Len(t, replaced, 3)
	assert.True(t, replaced[1].IsTag)
	assert.Equal(t, tagmodel.Isolated, replaced[1].Tag.Kind)

	restored := RestoreEmptyPairs(replaced, placeholders)
	assert.Equal(t, source, restored)
}

func TestEmptyPairRoundTrip_NonEmptyPairUntouched(t *testing.T) {
	source := []tagmodel.Token{
		tagmodel.FromTag(tagmodel.Tag{Kind: tagmodel.Opening, ID: 1}),
		tagmodel.Text("x"),
		tagmodel.FromTag(tagmodel.Tag{Kind: tagmodel.Closing, ID: 1}),
	}
	tagMap, err := tagmodel.NewTagMap(source)
	require.NoError(t, err)

	replaced, placeholders := ReplaceEmptyPairs(source, tagMap, func() int { return 1000 })

	assert.Equal(t, source, replaced)
	assert.Empty(t, placeholders)
}
