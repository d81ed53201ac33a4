package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
)

// testEnv captures output and uses a fixed environment.
type testEnv struct {
	*Environment
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

// newTestEnv returns an Environment with the given KEY=value pairs.
func newTestEnv(environ ...string) *testEnv {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	return &testEnv{
		Environment: &Environment{
			Stdout:  stdout,
			Stderr:  stderr,
			Environ: func() []string { return environ },
		},
		stdout: stdout,
		stderr: stderr,
	}
}

// run invokes runMain with "passimages" prepended.
func (e *testEnv) run(args ...string) int {
	return runMain(context.Background(), append([]string{"passimages"}, args...), e.Environment)
}

// setupImages creates a temp directory holding empty files named names.
func setupImages(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("png"), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
	return dir
}

// writeFile writes content to name in dir and returns the path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}
