package registry

import (
	"io"
	"log"
	"path/filepath"
)

// Source represents one asset category directory to scan.
type Source struct {
	Name     string // e.g., "agents", "docs", "reference"
	BasePath string // path to the category directory
}

// Sources groups the three category directories scanned for a manifest.
type Sources struct {
	Agents    Source
	Docs      Source
	Reference Source
}

// NewSources resolves the category directories relative to root.
// Absolute directories are used as given.
func NewSources(root, agentsDir, docsDir, referenceDir string) Sources {
	return Sources{
		Agents:    Source{Name: "agents", BasePath: resolve(root, agentsDir)},
		Docs:      Source{Name: "docs", BasePath: resolve(root, docsDir)},
		Reference: Source{Name: "reference", BasePath: resolve(root, referenceDir)},
	}
}

// All returns the sources in manifest order.
func (s Sources) All() []Source {
	return []Source{s.Agents, s.Docs, s.Reference}
}

func resolve(root, dir string) string {
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(root, dir)
}

// discard is used when the caller does not want scan diagnostics.
var discard = log.New(io.Discard, "", 0)

func loggerOrDiscard(l *log.Logger) *log.Logger {
	if l == nil {
		return discard
	}
	return l
}
