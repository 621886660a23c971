package placenorm

import "errors"

// Sentinel errors for conditions callers may need to handle differently.
var (
	// ErrNoTable indicates New was called without a substitution table.
	ErrNoTable = errors.New("placenorm: substitution table is required")

	// ErrConfig indicates the substitution table could not be loaded.
	ErrConfig = errors.New("placenorm: loading substitution table")
)
