// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed, so a fork only edits the YAML to rename the tool.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName      string `yaml:"cli_name"`
	DisplayName  string `yaml:"display_name"`
	Description  string `yaml:"description"`
	EnvPrefix    string `yaml:"env_prefix"`
	ConfigName   string `yaml:"config_name"`
	ManifestFile string `yaml:"manifest_file"`
	GoModule     string `yaml:"go_module"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			CLIName:      "agents-manifest",
			DisplayName:  "Agents Manifest",
			Description:  "Catalog builder for the agents installer asset bundle",
			EnvPrefix:    "AGENTS_MANIFEST",
			ConfigName:   ".agents-manifest",
			ManifestFile: "manifest.json",
			GoModule:     "github.com/agentx-labs/agents-manifest",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "agents-manifest").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// EnvPrefix returns the environment variable prefix (e.g., "AGENTS_MANIFEST").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// ConfigName returns the config file base name without extension.
func ConfigName() string { load(); return defaults.ConfigName }

// ManifestFile returns the default output file name.
func ManifestFile() string { load(); return defaults.ManifestFile }

// GoModule returns the Go module path. Not consumed at runtime.
func GoModule() string { load(); return defaults.GoModule }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("output") → "AGENTS_MANIFEST_OUTPUT".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
