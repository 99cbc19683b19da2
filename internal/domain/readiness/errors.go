package readiness

import "errors"

// Sentinel error kinds for this package.
var (
	// ErrInvalidKind flags a caller contract violation: a kind outside
	// {document, event} fails loudly instead of being absorbed.
	ErrInvalidKind = errors.New("invalid item kind")
)
