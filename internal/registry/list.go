package registry

import (
	"io/fs"
	"os"
	"strings"
)

// TryListDir returns the visible entries of dir in the order os.ReadDir
// reports them (sorted by name). Entries whose name starts with "." are
// hidden. Any read error, including a missing directory, yields an empty
// list; this is the only place scan errors are recovered.
func TryListDir(dir string) []fs.DirEntry {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	visible := make([]fs.DirEntry, 0, len(entries))
	for _, e := range entries {
		if IsHidden(e.Name()) {
			continue
		}
		visible = append(visible, e)
	}
	return visible
}

// TryListNames is TryListDir reduced to entry names. The result is never nil.
func TryListNames(dir string) []string {
	entries := TryListDir(dir)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

// IsHidden reports whether a directory entry name is a dotfile.
func IsHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
