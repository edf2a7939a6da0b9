package types

import "errors"

// Domain errors for type validation
var (
	// Entity errors
	ErrMissingLocation  = errors.New("entity requires at least one location")
	ErrInvalidKind      = errors.New("invalid entity kind")
	ErrMissingSignature = errors.New("minimal signature is required")
)
