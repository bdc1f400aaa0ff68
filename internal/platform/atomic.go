package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// tmpPattern follows the destination name in the os.CreateTemp pattern.
// Temp files also get a leading dot so scans and watchers skip them.
const tmpPattern = ".*.tmp"

// WriteFileAtomic writes data to a temporary file in the destination's
// directory and renames it over path, so readers never observe a partially
// written file. The final file has the given permissions. On failure the
// temporary file is removed and any existing file at path is left untouched.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)

	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+tmpPattern)
	if err != nil {
		return fmt.Errorf("creating temp file in %s: %w", dir, err)
	}
	tmpPath := f.Name()

	if _, err := f.Write(data); err != nil {
		f.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("writing %s: %w", tmpPath, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("closing %s: %w", tmpPath, err)
	}

	// CreateTemp uses 0600.
	if err := Chmod(tmpPath, perm); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("setting permissions on %s: %w", tmpPath, err)
	}

	if runtime.GOOS == "windows" {
		_ = os.Remove(path)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}
