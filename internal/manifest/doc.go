// Package manifest defines the asset manifest document consumed by the
// installer: its Go types, JSON encoding, schema version compatibility, and
// JSON Schema validation against the embedded manifest.schema.json.
package manifest
