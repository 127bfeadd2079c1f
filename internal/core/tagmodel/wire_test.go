package tagmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWireToken_Tag(t *testing.T) {
	tok, err := ParseWireToken("O!")
	require.NoError(t, err)
	assert.True(t, tok.IsTag)
	assert.Equal(t, Tag{Kind: Opening, ID: 1}, tok.Tag)
}

func TestParseWireToken_Text(t *testing.T) {
	tok, err := ParseWireToken("hello")
	require.NoError(t, err)
	assert.False(t, tok.IsTag)
	assert.Equal(t, "hello", tok.Value)
}

func TestParseWireToken_TwoCharTextLooksLikeTag(t *testing.T) {
	// Two-character plain text has a tag's shape, but it still parses as
	// text when its first byte is not a marker: an unrecognized marker byte
	// falls through.
	tok, err := ParseWireToken("Xy")
	require.NoError(t, err)
	assert.False(t, tok.IsTag)
	assert.Equal(t, "Xy", tok.Value)
}

func TestWireTokens_RoundTrip(t *testing.T) {
	tokens := []Token{
		FromTag(Tag{Kind: Opening, ID: 1}),
		Text("This"),
		FromTag(Tag{Kind: Closing, ID: 1}),
		Text("is"),
		FromTag(Tag{Kind: Isolated, ID: 9}),
	}

	wire := WireTokens(tokens)
	back, err := ParseWireTokens(wire)
	require.NoError(t, err)
	assert.Equal(t, tokens, back)
}
