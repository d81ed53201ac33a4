package main

// Notes:
// - Directories come from t.TempDir, so reported paths are absolute.
// - Environment variables are injected through Environment.Environ rather
//   than t.Setenv, keeping every test parallel.

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestRunScan - Report formats
// ---------------------------------------------------------------------------

func TestRunScan_TextDefault(t *testing.T) {
	t.Parallel()

	dir := setupImages(t, "icon.png", "icon@2x.png", "logo@2x.png", "README.txt", "banner.png")
	env := newTestEnv()

	if code := env.run("scan", dir); code != ExitSuccess {
		t.Fatalf("scan = %d, want %d; stderr: %s", code, ExitSuccess, env.stderr.String())
	}

	out := env.stdout.String()
	for _, want := range []string{"ROLE", filepath.Join(dir, "icon.png"), filepath.Join(dir, "icon@2x.png"), filepath.Join(dir, "logo@2x.png")} {
		if !strings.Contains(out, want) {
			t.Errorf("stdout missing %q:\n%s", want, out)
		}
	}
	for _, unwanted := range []string{"README.txt", "banner.png"} {
		if strings.Contains(out, unwanted) {
			t.Errorf("stdout contains skipped file %q:\n%s", unwanted, out)
		}
	}
}

func TestRunScan_Formats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format string
		want   []string
	}{
		{"yaml", []string{"icon:", "2x: " + "ICON2X"}},
		{"markdown", []string{"## Coverage", "| icon | yes | yes | - |", "- README.txt"}},
		{"md", []string{"## Files"}},
		{"html", []string{"<!DOCTYPE html>", "<table>"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.format, func(t *testing.T) {
			t.Parallel()

			dir := setupImages(t, "icon.png", "icon@2x.png", "README.txt")
			env := newTestEnv()

			if code := env.run("scan", "--format", tt.format, dir); code != ExitSuccess {
				t.Fatalf("scan = %d, want %d; stderr: %s", code, ExitSuccess, env.stderr.String())
			}
			out := env.stdout.String()
			for _, want := range tt.want {
				want = strings.ReplaceAll(want, "ICON2X", filepath.Join(dir, "icon@2x.png"))
				if !strings.Contains(out, want) {
					t.Errorf("stdout missing %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestRunScan_Title(t *testing.T) {
	t.Parallel()

	dir := setupImages(t, "logo.png")

	t.Run("flag wins over env", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv("PASSIMAGES_TITLE=From env")
		if code := env.run("scan", "-f", "markdown", "--title", "From flag", dir); code != ExitSuccess {
			t.Fatalf("scan = %d; stderr: %s", code, env.stderr.String())
		}
		if !strings.Contains(env.stdout.String(), "# From flag") {
			t.Errorf("stdout missing flag title:\n%s", env.stdout.String())
		}
	})

	t.Run("env", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv("PASSIMAGES_TITLE=From env")
		if code := env.run("scan", "-f", "markdown", dir); code != ExitSuccess {
			t.Fatalf("scan = %d; stderr: %s", code, env.stderr.String())
		}
		if !strings.Contains(env.stdout.String(), "# From env") {
			t.Errorf("stdout missing env title:\n%s", env.stdout.String())
		}
	})
}

func TestRunScan_UnknownFormat(t *testing.T) {
	t.Parallel()

	dir := setupImages(t, "logo.png")
	env := newTestEnv()

	if code := env.run("scan", "-f", "pdf", dir); code != ExitUsage {
		t.Errorf("scan -f pdf = %d, want %d", code, ExitUsage)
	}
	if !strings.Contains(env.stderr.String(), "unknown report format") {
		t.Errorf("stderr = %q, want unknown format error", env.stderr.String())
	}
}

func TestRunScan_TooManyArgs(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	if code := env.run("scan", "a", "b"); code != ExitUsage {
		t.Errorf("scan a b = %d, want %d", code, ExitUsage)
	}
}

// ---------------------------------------------------------------------------
// TestRunScan - Output file
// ---------------------------------------------------------------------------

func TestRunScan_OutputFile(t *testing.T) {
	t.Parallel()

	dir := setupImages(t, "strip.png", "strip@3x.png")
	out := filepath.Join(t.TempDir(), "reports", "pass.yaml")
	env := newTestEnv()

	if code := env.run("scan", "-f", "yaml", "-o", out, dir); code != ExitSuccess {
		t.Fatalf("scan -o = %d; stderr: %s", code, env.stderr.String())
	}
	if env.stdout.Len() != 0 {
		t.Errorf("stdout = %q, want empty when writing to file", env.stdout.String())
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("failed to read report: %v", err)
	}
	if !strings.Contains(string(data), "3x: "+filepath.Join(dir, "strip@3x.png")) {
		t.Errorf("report missing strip@3x:\n%s", data)
	}
}

func TestRunScan_OutputUnwritable(t *testing.T) {
	t.Parallel()

	dir := setupImages(t, "logo.png")
	// A regular file cannot be a parent directory.
	blocker := writeFile(t, t.TempDir(), "blocker", "")
	env := newTestEnv()

	if code := env.run("scan", "-o", filepath.Join(blocker, "out.txt"), dir); code != ExitIO {
		t.Errorf("scan -o <unwritable> = %d, want %d; stderr: %s", code, ExitIO, env.stderr.String())
	}
}

// ---------------------------------------------------------------------------
// TestRunScan - Directory resolution
// ---------------------------------------------------------------------------

func TestRunScan_DirFromEnv(t *testing.T) {
	t.Parallel()

	dir := setupImages(t, "thumbnail.png")
	env := newTestEnv("PASSIMAGES_DIR=" + dir)

	if code := env.run("scan"); code != ExitSuccess {
		t.Fatalf("scan = %d; stderr: %s", code, env.stderr.String())
	}
	if !strings.Contains(env.stdout.String(), filepath.Join(dir, "thumbnail.png")) {
		t.Errorf("stdout missing thumbnail:\n%s", env.stdout.String())
	}
}

func TestRunScan_NoDirectory(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	if code := env.run("scan"); code != ExitUsage {
		t.Errorf("scan = %d, want %d", code, ExitUsage)
	}
	if !strings.Contains(env.stderr.String(), "PASSIMAGES_DIR") {
		t.Errorf("stderr = %q, want directory sources", env.stderr.String())
	}
}

func TestRunScan_MissingDirectory(t *testing.T) {
	t.Parallel()

	env := newTestEnv()
	missing := filepath.Join(t.TempDir(), "missing")

	if code := env.run("scan", missing); code != ExitIO {
		t.Errorf("scan <missing> = %d, want %d", code, ExitIO)
	}
	if !strings.Contains(env.stderr.String(), "hint:") {
		t.Errorf("stderr = %q, want hint", env.stderr.String())
	}
}

// ---------------------------------------------------------------------------
// TestRunScan - Config file
// ---------------------------------------------------------------------------

func TestRunScan_ConfigFile(t *testing.T) {
	t.Parallel()

	dir := setupImages(t, "hero.png", "hero@4x.png", "icon.png")
	cfgPath := writeFile(t, t.TempDir(), "pass.yaml", `
vocabulary:
  roles: [hero]
  densities: [1x, 4x]
scan:
  defaultDir: `+dir+`
report:
  format: yaml
`)

	tests := []struct {
		name    string
		args    []string
		environ []string
	}{
		{"flag", []string{"scan", "--config", cfgPath}, nil},
		{"env", []string{"scan"}, []string{"PASSIMAGES_CONFIG=" + cfgPath}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env := newTestEnv(tt.environ...)
			if code := env.run(tt.args...); code != ExitSuccess {
				t.Fatalf("scan = %d; stderr: %s", code, env.stderr.String())
			}
			out := env.stdout.String()
			if !strings.Contains(out, "4x: "+filepath.Join(dir, "hero@4x.png")) {
				t.Errorf("stdout missing hero@4x:\n%s", out)
			}
			if strings.Contains(out, "icon") {
				t.Errorf("stdout contains role outside vocabulary:\n%s", out)
			}
		})
	}
}

func TestRunScan_ConfigErrors(t *testing.T) {
	t.Parallel()

	bad := writeFile(t, t.TempDir(), "bad.yaml", "vocabulary:\n  densities: [2x]\n")

	tests := []struct {
		name string
		cfg  string
	}{
		{"missing file", filepath.Join(t.TempDir(), "missing.yaml")},
		{"invalid vocabulary", bad},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env := newTestEnv()
			if code := env.run("scan", "-c", tt.cfg, t.TempDir()); code != ExitUsage {
				t.Errorf("scan -c = %d, want %d; stderr: %s", code, ExitUsage, env.stderr.String())
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRunScan - Logging
// ---------------------------------------------------------------------------

func TestRunScan_Verbose(t *testing.T) {
	t.Parallel()

	dir := setupImages(t, "icon.png", "notes.txt")
	env := newTestEnv()

	if code := env.run("scan", "-v", dir); code != ExitSuccess {
		t.Fatalf("scan -v = %d; stderr: %s", code, env.stderr.String())
	}
	logs := env.stderr.String()
	for _, want := range []string{"registered", "skipped", "notes.txt", "scan complete"} {
		if !strings.Contains(logs, want) {
			t.Errorf("stderr missing %q:\n%s", want, logs)
		}
	}
}

func TestRunScan_QuietSuppressesWarnings(t *testing.T) {
	t.Parallel()

	dir := setupImages(t, "icon.png")

	env := newTestEnv("PASSIMAGES_FROMAT=yaml")
	if code := env.run("scan", dir); code != ExitSuccess {
		t.Fatalf("scan = %d; stderr: %s", code, env.stderr.String())
	}
	if !strings.Contains(env.stderr.String(), "PASSIMAGES_FROMAT") {
		t.Errorf("stderr = %q, want typo warning", env.stderr.String())
	}

	quiet := newTestEnv("PASSIMAGES_FROMAT=yaml")
	if code := quiet.run("scan", "-q", dir); code != ExitSuccess {
		t.Fatalf("scan -q = %d; stderr: %s", code, quiet.stderr.String())
	}
	if quiet.stderr.Len() != 0 {
		t.Errorf("stderr = %q, want empty with --quiet", quiet.stderr.String())
	}
}
