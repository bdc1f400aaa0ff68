package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/agentx-labs/agents-manifest/internal/branding"
	"github.com/agentx-labs/agents-manifest/internal/builder"
	"github.com/agentx-labs/agents-manifest/internal/watch"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate manifest.json whenever assets change",
	Long: `Generate the manifest, then watch the agent, doc and reference-code
directories and regenerate it after each burst of changes. Stop with Ctrl-C.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return runWatch(ctx, cmd)
	},
}

func runWatch(ctx context.Context, cmd *cobra.Command) error {
	opts := buildOptions(cmd)
	out := cmd.OutOrStdout()

	if _, err := builder.Run(opts, out); err != nil {
		return err
	}

	w, err := watch.New(func() []string { return watch.Targets(opts) }, opts.OutputPath())
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	w.Logger = log.New(cmd.ErrOrStderr(), branding.CLIName()+": ", 0)

	fmt.Fprintln(out, "Watching for changes. Press Ctrl-C to stop.")
	return w.Run(ctx, func() error {
		_, err := builder.Run(opts, out)
		return err
	})
}
