package passimages

import "errors"

// Sentinel errors for library operations.
var (
	// ErrInvalidRole indicates a role outside the store's vocabulary.
	ErrInvalidRole = errors.New("invalid image role")

	// ErrInvalidDensity indicates a density outside the store's vocabulary.
	ErrInvalidDensity = errors.New("invalid image density")

	// ErrDirectoryRead indicates the scanned directory could not be listed.
	ErrDirectoryRead = errors.New("failed to read asset directory")

	// ErrInvalidVocabulary indicates a role or density table that cannot back a store.
	ErrInvalidVocabulary = errors.New("invalid vocabulary")
)
