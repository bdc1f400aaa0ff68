// Package config manages project-level settings for the manifest builder.
// Values come from command-line flags, AGENTS_MANIFEST_* environment
// variables, and an optional .agents-manifest.yaml in the source root, in that
// order of precedence, with the builder defaults underneath.
package config
