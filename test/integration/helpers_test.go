//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

var fixedTime = time.Date(2026, 10, 19, 8, 30, 0, 0, time.UTC)

func fixedNow() time.Time { return fixedTime }

// setupAssetTree creates a source root shaped like the installer repository:
// curated and uncurated agents, docs for several categories, and two
// reference projects plus stray files that must be skipped.
// Returns the source root path.
func setupAssetTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	// --- Agents ---
	writeFile(t, filepath.Join(root, "assets/agents/system-architect.md"), "# System Architect\n")
	writeFile(t, filepath.Join(root, "assets/agents/code-reviewer.md"), "# Code Reviewer\n")
	writeFile(t, filepath.Join(root, "assets/agents/data_wrangler.md"), "# Data wrangler\n")
	writeFile(t, filepath.Join(root, "assets/agents/.gitkeep"), "")

	// --- Docs ---
	writeFile(t, filepath.Join(root, "assets/docs/claude-code-hooks.md"), "# Hooks\n")
	writeFile(t, filepath.Join(root, "assets/docs/bun-runtime.md"), "# Bun\n")
	writeFile(t, filepath.Join(root, "assets/docs/react-hooks.md"), "# Hooks\n")
	writeFile(t, filepath.Join(root, "assets/docs/api-design.md"), "# API\n")
	writeFile(t, filepath.Join(root, "assets/docs/release-notes.md"), "# Notes\n")
	writeFile(t, filepath.Join(root, "assets/docs/.DS_Store"), "")

	// --- Reference code ---
	writeFile(t, filepath.Join(root, "assets/reference_code/bun-api/index.ts"), "export {}\n")
	writeFile(t, filepath.Join(root, "assets/reference_code/bun-api/package.json"), "{}\n")
	writeFile(t, filepath.Join(root, "assets/reference_code/bun-api/.env"), "SECRET=1\n")
	writeFile(t, filepath.Join(root, "assets/reference_code/react-app/src/App.tsx"), "export {}\n")
	writeFile(t, filepath.Join(root, "assets/reference_code/NOTES.md"), "not a project\n")

	return root
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}

// waitFor polls cond until it returns true or the timeout expires.
func waitFor(t *testing.T, timeout time.Duration, cond func() bool) bool {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(20 * time.Millisecond)
	}
	return false
}
