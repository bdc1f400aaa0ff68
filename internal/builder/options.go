package builder

import (
	"log"
	"path/filepath"
	"time"

	"github.com/agentx-labs/agents-manifest/internal/registry"
)

// Default locations, relative to the source root.
const (
	DefaultAgentsDir    = "assets/agents"
	DefaultDocsDir      = "assets/docs"
	DefaultReferenceDir = "assets/reference_code"
	DefaultOutput       = "manifest.json"
)

// Options configures a manifest build. Zero values fall back to the defaults
// above, with SourceRoot "." and Now time.Now.
type Options struct {
	SourceRoot   string
	AgentsDir    string
	DocsDir      string
	ReferenceDir string
	Output       string

	// Now stamps the generated field. Tests pin it for stable output.
	Now func() time.Time

	// Logger receives diagnostics about skipped entries. Nil discards them.
	Logger *log.Logger
}

// withDefaults returns a copy of o with empty fields filled in.
func (o Options) withDefaults() Options {
	if o.SourceRoot == "" {
		o.SourceRoot = "."
	}
	if o.AgentsDir == "" {
		o.AgentsDir = DefaultAgentsDir
	}
	if o.DocsDir == "" {
		o.DocsDir = DefaultDocsDir
	}
	if o.ReferenceDir == "" {
		o.ReferenceDir = DefaultReferenceDir
	}
	if o.Output == "" {
		o.Output = DefaultOutput
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// Sources returns the category directories the build scans.
func (o Options) Sources() registry.Sources {
	o = o.withDefaults()
	return registry.NewSources(o.SourceRoot, o.AgentsDir, o.DocsDir, o.ReferenceDir)
}

// OutputPath returns where the manifest is written. A relative Output is
// resolved against SourceRoot.
func (o Options) OutputPath() string {
	o = o.withDefaults()
	if filepath.IsAbs(o.Output) {
		return o.Output
	}
	return filepath.Join(o.SourceRoot, o.Output)
}
