// Package nmt is the thin transport to the external NMT engine that
// supplies the reinsertion core with a translated target sentence and the
// word alignment between it and the source (spec.md §6: the core itself
// "does not define... wire protocols", so this package gives that
// collaborator a concrete, minimal shape).
package nmt

import "context"

// AlignRequest carries a plain-text (markup-stripped) source sentence to
// the NMT engine for translation and alignment.
type AlignRequest struct {
	// RequestID correlates this call across logs; stamped by the caller or
	// generated by the client if left empty.
	RequestID string `json:"request_id,omitempty"`

	SourceTokens []string `json:"source_tokens"`
	TargetLang   string   `json:"target_lang"`
}

// AlignResponse is the NMT engine's reply: the translated token sequence
// and the word alignment to it, in the "i-j i-j ..." wire format
// (align.ParseHard parses this directly).
type AlignResponse struct {
	TargetTokens []string `json:"target_tokens"`
	Alignment    string   `json:"alignment"`
}

// Client is the interface the reinsertion service shell depends on; the
// core engine never imports it directly (spec §6's collaborator boundary).
type Client interface {
	Align(ctx context.Context, req AlignRequest) (AlignResponse, error)
	Ping(ctx context.Context) error
}
