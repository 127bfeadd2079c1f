// Package api is the thin HTTP adapter over the reinsertion core: it decodes
// a request, calls reinsert.Reinsert, and encodes the result. No
// markup-specific logic lives here (spec.md §6).
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/dfki-mlt/transins-go/internal/core/align"
	coreerrors "github.com/dfki-mlt/transins-go/internal/core/errors"
	"github.com/dfki-mlt/transins-go/internal/core/reinsert"
	"github.com/dfki-mlt/transins-go/internal/core/tagmodel"
)

const maxBodyBytes = 1 << 20

// ReinsertRequest is the POST /v1/reinsert request body: a tokenized source
// sentence in wire form, the translated target sentence's tokens, the word
// alignment between them in fast_align "i-j i-j ..." form, and the
// reinsertion strategy to use.
type ReinsertRequest struct {
	SourceTokens     []string `json:"source_tokens"`
	TargetTextTokens []string `json:"target_text_tokens"`
	Alignment        string   `json:"alignment"`
	Strategy         string   `json:"strategy"`
}

// ReinsertResponse is the POST /v1/reinsert response body.
type ReinsertResponse struct {
	TargetTokens []string `json:"target_tokens"`
	UnusedTags   []string `json:"unused_tags"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Handler serves the reinsertion HTTP endpoint.
type Handler struct {
	logger *zerolog.Logger
}

// NewHandler builds a Handler.
func NewHandler(logger *zerolog.Logger) *Handler {
	return &Handler{logger: logger}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeError(w, http.StatusMethodNotAllowed, "use POST")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req ReinsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "malformed request body: "+err.Error())
		return
	}

	resp, status, err := h.Reinsert(req)
	if err != nil {
		h.logger.Warn().Err(err).Msg("reinsert request failed")
		h.writeError(w, status, err.Error())

		return
	}

	h.writeJSON(w, http.StatusOK, resp)
}

// Reinsert runs a single request through the core engine. Exposed so
// non-HTTP callers (cmd/reinsert's translate mode) can drive the same
// decode/validate/call/encode path without going through net/http.
func (h *Handler) Reinsert(req ReinsertRequest) (ReinsertResponse, int, error) {
	sourceTokens, err := tagmodel.ParseWireTokens(req.SourceTokens)
	if err != nil {
		return ReinsertResponse{}, http.StatusBadRequest, err
	}

	tagMap, err := tagmodel.NewTagMap(sourceTokens)
	if err != nil {
		return ReinsertResponse{}, http.StatusBadRequest, err
	}

	targetTokens := make([]tagmodel.Token, len(req.TargetTextTokens))
	for i, v := range req.TargetTextTokens {
		targetTokens[i] = tagmodel.Text(v)
	}

	strategy, err := reinsert.ParseStrategy(req.Strategy)
	if err != nil {
		return ReinsertResponse{}, http.StatusBadRequest, err
	}

	srcTextLen := len(tagmodel.TextOnly(sourceTokens))

	alignment, err := align.ParseHard(req.Alignment, srcTextLen, len(targetTokens))
	if err != nil {
		return ReinsertResponse{}, http.StatusBadRequest, err
	}

	result, err := reinsert.Reinsert(sourceTokens, targetTokens, tagMap, alignment, strategy)
	if err != nil {
		status := http.StatusBadRequest
		if !errors.Is(err, coreerrors.ErrAlignmentShapeMismatch) && !errors.Is(err, coreerrors.ErrMalformedSourceMarkup) {
			status = http.StatusInternalServerError
		}

		return ReinsertResponse{}, status, err
	}

	unused := make([]string, len(result.Unused))
	for i, tag := range result.Unused {
		unused[i] = tag.String()
	}

	return ReinsertResponse{
		TargetTokens: tagmodel.WireTokens(result.Tokens),
		UnusedTags:   unused,
	}, http.StatusOK, nil
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error().Err(err).Msg("write json response failed")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, errorResponse{Error: msg})
}
