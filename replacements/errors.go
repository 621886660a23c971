package replacements

import "errors"

// Sentinel errors for table loading. All of them are configuration errors:
// a normalizer cannot be built without a valid table.
var (
	// ErrNotFound indicates the table file does not exist.
	ErrNotFound = errors.New("replacements: table file not found")

	// ErrMissingKey indicates the source has no characterReplacements entry.
	ErrMissingKey = errors.New("replacements: characterReplacements not defined")

	// ErrMalformed indicates an entry or file could not be parsed.
	ErrMalformed = errors.New("replacements: malformed table")

	// ErrDuplicateKey indicates the same source character was mapped twice.
	ErrDuplicateKey = errors.New("replacements: duplicate source character")

	// ErrUnsupportedFormat indicates the file extension has no known loader.
	ErrUnsupportedFormat = errors.New("replacements: unsupported table format")
)
