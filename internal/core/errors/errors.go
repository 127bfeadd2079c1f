// Package errors provides centralized error definitions for the reinsertion engine.
// Errors are organized by domain to avoid duplication and provide consistent naming.
//
// Naming conventions:
//   - Exported errors (Err*): Use for errors that callers need to check with errors.Is
//   - Unexported errors (err*): Use for internal package errors
//   - All sentinel errors should be defined as variables, not inline errors.New calls
//   - Use fmt.Errorf with %w to wrap sentinel errors with context
package errors

import "errors"

// Markup structure errors.
var (
	// ErrMalformedSourceMarkup indicates the source sentence's tags are not
	// balanced, or a tag has no recognized partner.
	ErrMalformedSourceMarkup = errors.New("malformed source markup")

	// ErrAlignmentShapeMismatch indicates the alignment refers to a source or
	// target index out of range for the supplied token sequences.
	ErrAlignmentShapeMismatch = errors.New("alignment shape mismatch")

	// ErrUnknownTag indicates a tag token whose id cannot be decoded, such as a
	// wire token whose second byte lies below CharBase (a negative id).
	ErrUnknownTag = errors.New("unknown tag")
)

// Strategy and request validation errors.
var (
	// ErrUnknownStrategy indicates a reinsertion strategy other than Neighbor or Complete was requested.
	ErrUnknownStrategy = errors.New("unknown reinsertion strategy")

	// ErrInvalidInput indicates invalid input was provided.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmptyResponse indicates an empty response was received from the NMT engine.
	ErrEmptyResponse = errors.New("empty response")
)

// NMT transport errors.
var (
	// ErrCircuitBreakerOpen indicates the circuit breaker has tripped and requests are blocked.
	ErrCircuitBreakerOpen = errors.New("circuit breaker is open")

	// ErrClientDisabled indicates the NMT client has no endpoint configured.
	ErrClientDisabled = errors.New("nmt client disabled")

	// ErrUnexpectedStatusCode indicates an unexpected HTTP status code was received.
	ErrUnexpectedStatusCode = errors.New("unexpected status code")
)

// Is is a convenience wrapper around errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As is a convenience wrapper around errors.As.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
