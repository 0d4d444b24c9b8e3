package hanan

import "errors"

// Sentinel errors for HananGrid construction.
var (
	// ErrNoTerminals indicates an empty terminal list was supplied.
	ErrNoTerminals = errors.New("hanan: at least one terminal is required")

	// ErrTooManyTerminals indicates more terminals than core.MaxTerminals.
	ErrTooManyTerminals = errors.New("hanan: terminal count exceeds MaxTerminals")
)
