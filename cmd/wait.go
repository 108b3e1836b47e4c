package cmd

import (
	"github.com/spf13/cobra"
)

// waitCmd probes the manager once and reports readiness.
var waitCmd = &cobra.Command{
	Use:   "wait",
	Short: "Check that the manager webapp is ready",
	Long: `Probe the manager webapp once and report readiness.

There is no polling: if the manager is not up, the command fails
immediately and the calling orchestrator decides when to probe again.

Example:
  warctl wait --timeout 300`,
	Args: cobra.NoArgs,
	RunE: runWait,
}

func init() {
	rootCmd.AddCommand(waitCmd)
}

func runWait(cmd *cobra.Command, args []string) error {
	session, cfg, err := newSession()
	if err != nil {
		return err
	}

	report := session.Wait(cmd.Context(), "manager", cfg.Timeout())
	return printReport(cmd, report)
}
