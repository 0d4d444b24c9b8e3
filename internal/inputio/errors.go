package inputio

import "errors"

// Sentinel errors for ReadTerminals, one per failure kind (a
// ConfigurationError or an InputError). ReadTerminals wraps them with
// fmt.Errorf's %w, so callers and tests can distinguish the failure kind
// with errors.Is while the diagnostic text stays human-readable.
var (
	// ErrTooManyTerminals is a ConfigurationError: N exceeds core.MaxTerminals.
	ErrTooManyTerminals = errors.New("inputio: terminal count exceeds the maximum")

	// ErrTruncatedInput is an InputError: the stream ended before every
	// expected token was read.
	ErrTruncatedInput = errors.New("inputio: truncated input")

	// ErrMalformedToken is an InputError: a token was not a valid integer.
	ErrMalformedToken = errors.New("inputio: malformed integer token")
)
