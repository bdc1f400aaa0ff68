package cli

import (
	"github.com/agentx-labs/agents-manifest/internal/builder"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Scan the asset directories and write manifest.json",
	Long: `Scan the agent, doc and reference-code directories and write manifest.json.

Missing directories are treated as empty. Hidden entries (names starting
with ".") are never listed. The manifest is replaced atomically.`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	_, err := builder.Run(buildOptions(cmd), cmd.OutOrStdout())
	return err
}
