package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// Encode returns the manifest as 2-space indented JSON with a trailing newline.
// Nil collections are encoded as empty arrays.
func Encode(m *AssetManifest) ([]byte, error) {
	m.Normalize()
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling manifest: %w", err)
	}
	return append(data, '\n'), nil
}

// Decode parses a manifest document. Unknown fields are rejected so that a
// document written by a newer builder is not silently truncated.
func Decode(data []byte) (*AssetManifest, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var m AssetManifest
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	m.Normalize()
	return &m, nil
}

// ParseFile reads and decodes the manifest at path.
func ParseFile(path string) (*AssetManifest, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	m, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// SameContent reports whether a and b list the same agents, docs and
// reference projects in the same order. Version and Generated are ignored,
// and nil collections compare equal to empty ones.
func SameContent(a, b *AssetManifest) (bool, error) {
	a.Normalize()
	b.Normalize()
	for _, pair := range [][2]any{
		{a.Agents, b.Agents},
		{a.Docs, b.Docs},
		{a.Reference, b.Reference},
	} {
		left, err := json.Marshal(pair[0])
		if err != nil {
			return false, fmt.Errorf("marshaling collection: %w", err)
		}
		right, err := json.Marshal(pair[1])
		if err != nil {
			return false, fmt.Errorf("marshaling collection: %w", err)
		}
		if !bytes.Equal(left, right) {
			return false, nil
		}
	}
	return true, nil
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
