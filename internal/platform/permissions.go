package platform

import (
	"os"
	"runtime"
)

// FilePermPublic is the mode of generated files that are committed and
// served to installers.
const FilePermPublic os.FileMode = 0644

// Chmod sets file permissions. On Windows this is a no-op because Windows
// does not support Unix-style permission bits.
func Chmod(path string, mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return os.Chmod(path, mode)
}
