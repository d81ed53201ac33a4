// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"errors"
	"io/fs"
	"strings"
	"syscall"
)

// ForDirectoryRead returns hints for a directory that could not be listed.
// err is the underlying filesystem error.
func ForDirectoryRead(err error) string {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return format("pass the images directory as an argument, or set scan.defaultDir or PASSIMAGES_DIR")
	case errors.Is(err, fs.ErrPermission):
		return format("check that the directory is readable by the current user")
	case errors.Is(err, syscall.ENOTDIR):
		return format("expected a directory of images, not a file")
	default:
		return ""
	}
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-passimages/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, "go-passimages") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForInvalidRole lists the roles the store accepts.
func ForInvalidRole(available []string) string {
	return availableHint(available)
}

// ForInvalidDensity lists the densities the store accepts.
func ForInvalidDensity(available []string) string {
	return availableHint(available)
}

// ForUnknownFormat lists the supported report formats.
func ForUnknownFormat(available []string) string {
	return availableHint(available)
}

func availableHint(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
