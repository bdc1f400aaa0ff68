package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"github.com/agentx-labs/agents-manifest/internal/branding"
	"github.com/agentx-labs/agents-manifest/internal/builder"
	"github.com/spf13/viper"
)

const fileType = "yaml"

// Setting keys.
const (
	KeySourceRoot   = "source_root"
	KeyAgentsDir    = "agents_dir"
	KeyDocsDir      = "docs_dir"
	KeyReferenceDir = "reference_dir"
	KeyOutput       = "output"
	KeyVerbose      = "verbose"
)

// FileKeys are the keys that may be stored in the project config file.
// source_root is excluded because the file itself lives in the source root.
var FileKeys = []string{KeyAgentsDir, KeyDocsDir, KeyReferenceDir, KeyOutput}

// SetDefaults registers the builder defaults with viper.
func SetDefaults() {
	viper.SetDefault(KeySourceRoot, ".")
	viper.SetDefault(KeyAgentsDir, builder.DefaultAgentsDir)
	viper.SetDefault(KeyDocsDir, builder.DefaultDocsDir)
	viper.SetDefault(KeyReferenceDir, builder.DefaultReferenceDir)
	viper.SetDefault(KeyOutput, branding.ManifestFile())
	viper.SetDefault(KeyVerbose, false)
}

// Load initializes viper from the environment and the project config file.
// A missing config file is not an error; a malformed one is.
func Load() error {
	SetDefaults()
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	if err := viper.ReadInConfig(); err != nil && !isNotFound(err) {
		return fmt.Errorf("reading config file %s: %w", FilePath(), err)
	}
	return nil
}

// SourceRoot returns the configured source root.
func SourceRoot() string {
	if root := viper.GetString(KeySourceRoot); root != "" {
		return root
	}
	return "."
}

// FilePath returns the project config file path (<root>/.agents-manifest.yaml).
func FilePath() string {
	return filepath.Join(SourceRoot(), branding.ConfigName()+"."+fileType)
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Verbose reports whether skipped-entry diagnostics were requested.
func Verbose() bool {
	return viper.GetBool(KeyVerbose)
}

// Options returns builder options populated from the loaded settings.
func Options() builder.Options {
	return builder.Options{
		SourceRoot:   SourceRoot(),
		AgentsDir:    viper.GetString(KeyAgentsDir),
		DocsDir:      viper.GetString(KeyDocsDir),
		ReferenceDir: viper.GetString(KeyReferenceDir),
		Output:       viper.GetString(KeyOutput),
	}
}

// Set writes a key-value pair to the project config file, leaving the other
// keys in the file untouched. Only FileKeys may be set.
func Set(key, value string) error {
	if !slices.Contains(FileKeys, key) {
		return fmt.Errorf("unknown config key %q (valid keys: %s)", key, strings.Join(FileKeys, ", "))
	}

	configFile := FilePath()

	// A separate instance so defaults, env and flags are not persisted.
	v := viper.New()
	v.SetConfigFile(configFile)
	v.SetConfigType(fileType)
	if err := v.ReadInConfig(); err != nil && !isNotFound(err) {
		return fmt.Errorf("reading config file %s: %w", configFile, err)
	}

	v.Set(key, value)
	if err := v.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	viper.Set(key, value)
	return nil
}

func isNotFound(err error) bool {
	var nf viper.ConfigFileNotFoundError
	return errors.As(err, &nf) || errors.Is(err, fs.ErrNotExist)
}
