package reinsert

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dfki-mlt/transins-go/internal/core/align"
	"github.com/dfki-mlt/transins-go/internal/core/tagmodel"
)

func open(id int) tagmodel.Token     { return tagmodel.FromTag(tagmodel.Tag{Kind: tagmodel.Opening, ID: id}) }
func closeT(id int) tagmodel.Token   { return tagmodel.FromTag(tagmodel.Tag{Kind: tagmodel.Closing, ID: id}) }
func isolated(id int) tagmodel.Token { return tagmodel.FromTag(tagmodel.Tag{Kind: tagmodel.Isolated, ID: id}) }
func txt(v string) tagmodel.Token    { return tagmodel.Text(v) }

// notation renders tokens using the spec's worked-example shorthand (O1,
// C1, I9, plain text) rather than the two-character wire encoding, so test
// expectations can read like the spec table.
func notation(tokens []tagmodel.Token) []string {
	out := make([]string, len(tokens))

	for i, tok := range tokens {
		if !tok.IsTag {
			out[i] = tok.Value
			continue
		}

		var letter string

		switch tok.Tag.Kind {
		case tagmodel.Opening:
			letter = "O"
		case tagmodel.Closing:
			letter = "C"
		case tagmodel.Isolated:
			letter = "I"
		}

		out[i] = fmt.Sprintf("%s%d", letter, tok.Tag.ID)
	}

	return out
}

func mustTagMap(t *testing.T, tokens []tagmodel.Token) *tagmodel.TagMap {
	t.Helper()

	tm, err := tagmodel.NewTagMap(tokens)
	require.NoError(t, err)

	return tm
}

func scenario12Source() []tagmodel.Token {
	return []tagmodel.Token{
		isolated(9), open(1), txt("This"), closeT(1), txt("is"), txt("a"),
		open(2), txt("test"), txt("."), closeT(2), isolated(10),
	}
}

// Spec §8 scenario 1: identity alignment.
func TestReinsert_Scenario1_Identity(t *testing.T) {
	source := scenario12Source()
	tagMap := mustTagMap(t, source)

	target := []tagmodel.Token{txt("Das"), txt("ist"), txt("ein"), txt("Test"), txt(".")}

	alignment, err := align.ParseHard("0-0 1-1 2-2 3-3 4-4", 5, 5)
	require.NoError(t, err)

	res, err := Reinsert(source, target, tagMap, alignment, Neighbor)
	require.NoError(t, err)
	assert.Empty(t, res.Unused)

	assert.Equal(t,
		[]string{"I9", "O1", "Das", "C1", "ist", "ein", "O2", "Test", ".", "C2", "I10"},
		notation(res.Tokens))
}

// Spec §8 scenario 2: reordering alignment.
func TestReinsert_Scenario2_Reordering(t *testing.T) {
	source := scenario12Source()
	tagMap := mustTagMap(t, source)

	target := []tagmodel.Token{txt("Test"), txt("ein"), txt("ist"), txt("das"), txt(".")}

	alignment, err := align.ParseHard("0-3 1-2 2-1 3-0 4-4", 5, 5)
	require.NoError(t, err)

	res, err := Reinsert(source, target, tagMap, alignment, Neighbor)
	require.NoError(t, err)
	assert.Empty(t, res.Unused)

	assert.Equal(t,
		[]string{"I9", "O2", "Test", "ein", "ist", "O1", "das", "C1", ".", "C2", "I10"},
		notation(res.Tokens))
}

// Spec §8 scenario 3, Complete strategy: a source token inside a tagged
// span (z, at the boundary) aligns to a target token, and a source token
// aligned to two different target tokens (x, aligned to both X1 and X2)
// gets the enclosing pair reproduced around each occurrence individually,
// since the complete index map attaches the full enclosing pair to every
// token it covers. Adjacent reopenings of the same id with nothing of
// substance between them still collapse via the neighbor-merge cleanup
// pass, which is why Z and X2 end up sharing one O1/C1 wrapping instead of
// each getting their own.
func TestReinsert_Scenario3_Complete_MultiplyAligned(t *testing.T) {
	source := []tagmodel.Token{
		open(1), txt("x"), txt("y"), txt("z"), closeT(1), txt("a"), txt("b"), txt("c"),
	}
	tagMap := mustTagMap(t, source)

	target := []tagmodel.Token{txt("X1"), txt("N"), txt("Z"), txt("X2"), txt("N"), txt("N")}

	alignment, err := align.ParseHard("0-0 0-3 2-2", 6, 6)
	require.NoError(t, err)

	res, err := Reinsert(source, target, tagMap, alignment, Complete)
	require.NoError(t, err)
	assert.Empty(t, res.Unused)

	assert.Equal(t,
		[]string{"O1", "X1", "C1", "N", "O1", "Z", "X2", "C1", "N", "N"},
		notation(res.Tokens))
	assertWellNested(t, res.Tokens)
}

// Boundary: an interior tag pair (not spanning the whole sentence, so
// SplitTagsSentence leaves it in the inner region) with no aligned
// endpoint on either side is dropped and reported unused; the surrounding
// text still comes through.
func TestReinsert_InteriorPairUnaligned(t *testing.T) {
	source := []tagmodel.Token{txt("x"), open(1), txt("y"), closeT(1), txt("z")}
	tagMap := mustTagMap(t, source)

	target := []tagmodel.Token{txt("a"), txt("b"), txt("c")}

	alignment, err := align.ParseHard("0-0 2-2", 3, 3)
	require.NoError(t, err)

	res, err := Reinsert(source, target, tagMap, alignment, Neighbor)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c"}, notation(res.Tokens))
	assert.ElementsMatch(t, []tagmodel.Tag{{Kind: tagmodel.Opening, ID: 1}, {Kind: tagmodel.Closing, ID: 1}}, res.Unused)
}

// Boundary: tags only at the edges survive verbatim via prefix/suffix.
func TestReinsert_EdgeTagsOnly(t *testing.T) {
	source := []tagmodel.Token{open(1), txt("x"), txt("y"), closeT(1)}
	tagMap := mustTagMap(t, source)

	target := []tagmodel.Token{txt("p"), txt("q")}

	alignment, err := align.ParseHard("0-0 1-1", 2, 2)
	require.NoError(t, err)

	res, err := Reinsert(source, target, tagMap, alignment, Neighbor)
	require.NoError(t, err)
	assert.Empty(t, res.Unused)
	assert.Equal(t, []string{"O1", "p", "q", "C1"}, notation(res.Tokens))
	assertWellNested(t, res.Tokens)
}

func TestReinsert_ShapeMismatch(t *testing.T) {
	source := []tagmodel.Token{txt("x")}
	tagMap := mustTagMap(t, source)

	target := []tagmodel.Token{txt("a"), txt("b")}

	alignment, err := align.ParseHard("0-0", 1, 1)
	require.NoError(t, err)

	_, err = Reinsert(source, target, tagMap, alignment, Neighbor)
	require.Error(t, err)
}

func assertWellNested(t *testing.T, tokens []tagmodel.Token) {
	t.Helper()

	var stack []int

	for _, tok := range tokens {
		if !tok.IsTag {
			continue
		}

		switch tok.Tag.Kind {
		case tagmodel.Opening:
			stack = append(stack, tok.Tag.ID)
		case tagmodel.Closing:
			require.NotEmpty(t, stack, "closing tag %v with empty stack", tok.Tag)
			top := stack[len(stack)-1]
			require.Equal(t, top, tok.Tag.ID, "closing tag %v does not match innermost open %d", tok.Tag, top)
			stack = stack[:len(stack)-1]
		}
	}

	require.Empty(t, stack, "unclosed tags remain: %v", stack)
}
