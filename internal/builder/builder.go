package builder

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/agentx-labs/agents-manifest/internal/manifest"
	"github.com/agentx-labs/agents-manifest/internal/platform"
	"github.com/agentx-labs/agents-manifest/internal/registry"
)

// ErrStale is returned by Check when the manifest on disk no longer matches
// the asset directories.
var ErrStale = errors.New("manifest is out of date")

// Build scans the source directories and assembles a manifest. It has no side
// effects. Missing or unreadable category directories produce empty
// collections, so Build only fails if the options themselves are unusable.
func Build(opts Options) (*manifest.AssetManifest, error) {
	opts = opts.withDefaults()
	src := opts.Sources()

	m := &manifest.AssetManifest{
		Version:   manifest.SchemaVersion,
		Agents:    registry.ScanAgents(src.Agents, opts.Logger),
		Docs:      registry.ScanDocs(src.Docs, opts.Logger),
		Reference: registry.ScanReference(src.Reference, opts.Logger),
	}
	m.Generated = opts.Now().UTC().Format(manifest.TimeFormat)
	m.Normalize()
	return m, nil
}

// Write serializes m as indented JSON and replaces the file at path.
func Write(path string, m *manifest.AssetManifest) error {
	data, err := manifest.Encode(m)
	if err != nil {
		return err
	}
	if err := platform.WriteFileAtomic(path, data, platform.FilePermPublic); err != nil {
		return fmt.Errorf("writing manifest %s: %w", path, err)
	}
	return nil
}

// Run builds the manifest, writes it to opts.OutputPath(), and prints a
// summary of the counts to out.
func Run(opts Options, out io.Writer) (*manifest.AssetManifest, error) {
	m, err := Build(opts)
	if err != nil {
		return nil, err
	}

	path := opts.OutputPath()
	if err := Write(path, m); err != nil {
		return nil, err
	}

	Summary(out, m, path)
	return m, nil
}

// Summary prints the per-collection counts of m.
func Summary(out io.Writer, m *manifest.AssetManifest, path string) {
	fmt.Fprintf(out, "Generated %s\n", path)
	fmt.Fprintf(out, "  Agents:    %d\n", len(m.Agents))
	fmt.Fprintf(out, "  Docs:      %d\n", len(m.Docs))
	fmt.Fprintf(out, "  Reference: %d\n", len(m.Reference))
}

// UpToDate reports whether the manifest stored at path lists the same agents,
// docs and reference projects as m. A missing file is not up to date.
func UpToDate(path string, m *manifest.AssetManifest) (bool, error) {
	existing, err := manifest.ParseFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return manifest.SameContent(existing, m)
}

// Check rebuilds the manifest in memory and compares it with the file at
// opts.OutputPath(). It returns ErrStale when they differ.
func Check(opts Options) error {
	m, err := Build(opts)
	if err != nil {
		return err
	}
	path := opts.OutputPath()
	ok, err := UpToDate(path, m)
	if err != nil {
		return fmt.Errorf("checking %s: %w", path, err)
	}
	if !ok {
		return fmt.Errorf("%s: %w", path, ErrStale)
	}
	return nil
}
