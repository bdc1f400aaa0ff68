package cli

import (
	"io"
	"log"

	"github.com/agentx-labs/agents-manifest/internal/branding"
	"github.com/agentx-labs/agents-manifest/internal/builder"
	"github.com/agentx-labs/agents-manifest/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` scans assets/agents, assets/docs and assets/reference_code
and writes manifest.json, the index the installer downloads to decide which
agents, docs and reference projects are available.

Run with no arguments from the repository root to regenerate the manifest.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Bound on every run so bindings survive viper.Reset.
		for key, flag := range map[string]string{
			config.KeySourceRoot: "root",
			config.KeyOutput:     "output",
			config.KeyVerbose:    "verbose",
		} {
			if err := viper.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
				return err
			}
		}
		return config.Load()
	},
	RunE: runGenerate,
}

func init() {
	rootCmd.PersistentFlags().String("root", ".", "Source root containing the assets/ directory")
	rootCmd.PersistentFlags().StringP("output", "o", builder.DefaultOutput, "Manifest path, relative to the source root")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Report skipped entries on stderr")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}

// buildOptions returns builder options from the loaded config, with a
// diagnostics logger attached when --verbose is set.
func buildOptions(cmd *cobra.Command) builder.Options {
	opts := config.Options()
	opts.Logger = log.New(io.Discard, "", 0)
	if config.Verbose() {
		opts.Logger = log.New(cmd.ErrOrStderr(), branding.CLIName()+": ", 0)
	}
	return opts
}
