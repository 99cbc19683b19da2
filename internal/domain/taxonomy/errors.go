package taxonomy

import "errors"

// Sentinel error kinds for this package. These allow errors.Is from callers.
var (
	ErrNotFound        = errors.New("award category not found")
	ErrInvalidCategory = errors.New("invalid award category")
	ErrLoadTaxonomy    = errors.New("load taxonomy failed")
)
