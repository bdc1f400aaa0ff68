package cli

import (
	"errors"
	"fmt"

	"github.com/agentx-labs/agents-manifest/internal/manifest"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a manifest against the manifest schema",
	Long: `Validate a manifest file against the embedded JSON Schema and check that
its version is one installers can read (` + manifest.SupportedVersions + `).

Defaults to the configured output path.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := buildOptions(cmd).OutputPath()
		if len(args) > 0 {
			path = args[0]
		}

		result, err := manifest.ValidateFile(path)
		if err != nil {
			return fmt.Errorf("validating %s: %w", path, err)
		}

		if !result.Valid {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s is invalid:\n", path)
			for _, issue := range result.Issues {
				loc := issue.Path
				if loc == "" {
					loc = "/"
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "  %s: %s\n", loc, issue.Message)
			}
			return errors.New("manifest validation failed")
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s is valid.\n", path)
		return nil
	},
}
