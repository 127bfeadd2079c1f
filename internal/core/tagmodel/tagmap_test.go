package tagmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coreerrors "github.com/dfki-mlt/transins-go/internal/core/errors"
)

func tag(kind Kind, id int) Token {
	return FromTag(Tag{Kind: kind, ID: id})
}

func TestNewTagMap_Balanced(t *testing.T) {
	tests := []struct {
		name   string
		tokens []Token
		pairs  int
	}{
		{
			name: "single pair around text",
			tokens: []Token{
				tag(Opening, 1), Text("x"), tag(Closing, 1),
			},
			pairs: 1,
		},
		{
			name: "nested pairs",
			tokens: []Token{
				tag(Opening, 1), tag(Opening, 2), Text("x"), tag(Closing, 2), tag(Closing, 1),
			},
			pairs: 2,
		},
		{
			name: "isolated tag does not pair",
			tokens: []Token{
				tag(Isolated, 9), tag(Opening, 1), Text("x"), tag(Closing, 1),
			},
			pairs: 1,
		},
		{
			name:   "empty sentence",
			tokens: nil,
			pairs:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm, err := NewTagMap(tt.tokens)
			require.NoError(t, err)
			assert.Equal(t, tt.pairs, tm.Size())
		})
	}
}

func TestNewTagMap_Malformed(t *testing.T) {
	tests := []struct {
		name   string
		tokens []Token
	}{
		{
			name:   "stray closing tag",
			tokens: []Token{Text("x"), tag(Closing, 1)},
		},
		{
			name:   "unclosed opening tag",
			tokens: []Token{tag(Opening, 1), Text("x")},
		},
		{
			name:   "crossing tags",
			tokens: []Token{tag(Opening, 1), tag(Opening, 2), tag(Closing, 1), tag(Closing, 2)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTagMap(tt.tokens)
			require.Error(t, err)
			assert.ErrorIs(t, err, coreerrors.ErrMalformedSourceMarkup)
		})
	}
}

func TestTagMap_Lookups(t *testing.T) {
	tokens := []Token{tag(Opening, 1), Text("x"), tag(Closing, 1)}
	tm, err := NewTagMap(tokens)
	require.NoError(t, err)

	open := Tag{Kind: Opening, ID: 1}
	close := Tag{Kind: Closing, ID: 1}

	got, ok := tm.ClosingFor(open)
	require.True(t, ok)
	assert.Equal(t, close, got)

	gotOpen, ok := tm.OpeningFor(close)
	require.True(t, ok)
	assert.Equal(t, open, gotOpen)

	assert.True(t, tm.Contains(open))
	assert.True(t, tm.Contains(close))
	assert.False(t, tm.Contains(Tag{Kind: Opening, ID: 99}))

	pairs := tm.Pairs()
	require.Len(t, pairs, 1)
	assert.Equal(t, open, pairs[0].Open)
	assert.Equal(t, close, pairs[0].Close)
}
