package passimages

import (
	"fmt"
	"os"
	"path/filepath"
)

// ScanResult describes what a directory scan did.
type ScanResult struct {
	Dir     string   // Absolute path of the scanned directory
	Matched []Entry  // Registered entries, in listing order
	Skipped []string // Names that did not follow the naming convention
}

// DirectoryLoader fills a Store from a directory of images named
// "<role>.png" (base density) or "<role>@<n>x.png".
//
// The recognized suffixes come from the store's Vocabulary, so the naming
// convention and the store's validation always agree.
type DirectoryLoader struct {
	store *Store
}

// NewDirectoryLoader binds a loader to store.
// Panics if store is nil (programmer error).
func NewDirectoryLoader(store *Store) *DirectoryLoader {
	if store == nil {
		panic("passimages: NewDirectoryLoader store must not be nil")
	}
	return &DirectoryLoader{store: store}
}

// LoadFromDirectory registers every recognized image in dir and returns the
// bound store for chaining.
//
// Only immediate entries are considered. Files that do not follow the
// naming convention (README.txt, unsupported roles) are skipped silently;
// subdirectories are never assets. When two entries map to the same pair,
// the later one in listing order wins.
//
// Returns ErrDirectoryRead if dir cannot be listed; the store is then left
// unmodified.
func (l *DirectoryLoader) LoadFromDirectory(dir string) (*Store, error) {
	if _, err := l.Scan(dir); err != nil {
		return nil, err
	}
	return l.store, nil
}

// Scan behaves like LoadFromDirectory and also reports which names matched
// and which were skipped.
func (l *DirectoryLoader) Scan(dir string) (*ScanResult, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDirectoryRead, dir, err)
	}

	// os.ReadDir closes the directory handle before returning.
	entries, err := os.ReadDir(absDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDirectoryRead, err)
	}

	result := &ScanResult{Dir: absDir}
	vocab := l.store.Vocabulary()

	for _, e := range entries {
		name := e.Name()
		if e.IsDir() {
			result.Skipped = append(result.Skipped, name)
			continue
		}
		role, density, ok := vocab.ParseAssetName(name)
		if !ok {
			result.Skipped = append(result.Skipped, name)
			continue
		}

		path := filepath.Join(absDir, name)
		if err := l.store.Set(role, density, path); err != nil {
			// Unreachable: ParseAssetName only yields vocabulary members.
			return nil, err
		}
		result.Matched = append(result.Matched, Entry{Role: role, Density: density, Path: path})
	}

	return result, nil
}
