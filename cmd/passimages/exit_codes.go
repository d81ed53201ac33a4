package main

import (
	"errors"
	"os"

	"github.com/alnah/go-passimages"
	"github.com/alnah/go-passimages/internal/config"
	"github.com/alnah/go-passimages/internal/fileutil"
	"github.com/alnah/go-passimages/internal/report"
)

// Exit codes for passimages CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful run
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, role, or density
	ExitIO      = 3 // Directory unreadable, output not writable
	ExitAbsent  = 5 // get: image not registered
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, ErrImageAbsent) {
		return ExitAbsent
	}

	// I/O errors (exit 3)
	if errors.Is(err, passimages.ErrDirectoryRead) ||
		errors.Is(err, ErrWriteReport) ||
		errors.Is(err, fileutil.ErrEmptyPath) ||
		errors.Is(err, os.ErrPermission) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, passimages.ErrInvalidRole) ||
		errors.Is(err, passimages.ErrInvalidDensity) ||
		errors.Is(err, passimages.ErrInvalidVocabulary) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrTooManyEntries) ||
		errors.Is(err, report.ErrUnknownFormat) ||
		errors.Is(err, ErrNoDirectory) ||
		errors.Is(err, ErrUsage) {
		return ExitUsage
	}

	return ExitGeneral
}
