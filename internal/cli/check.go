package cli

import (
	"fmt"

	"github.com/agentx-labs/agents-manifest/internal/branding"
	"github.com/agentx-labs/agents-manifest/internal/builder"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify manifest.json matches the asset directories",
	Long: `Rebuild the manifest in memory and compare its agents, docs and reference
entries with manifest.json on disk. The generated timestamp is ignored.

Exits non-zero when the manifest is missing or out of date, so CI can
reject pull requests that add assets without regenerating it.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := buildOptions(cmd)
		if err := builder.Check(opts); err != nil {
			return fmt.Errorf("%w (run '%s' to regenerate)", err, branding.CLIName())
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s is up to date.\n", opts.OutputPath())
		return nil
	},
}
