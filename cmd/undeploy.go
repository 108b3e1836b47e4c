package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"warctl/internal/reconcile"
)

// undeployCmd enforces that no webapp is deployed at a context path.
var undeployCmd = &cobra.Command{
	Use:   "undeploy CONTEXT_PATH",
	Short: "Remove the webapp at a context path",
	Long: `Enforce that no webapp is deployed at CONTEXT_PATH.

A context path that is already absent counts as success. A manager that
does not respond to the readiness probe fails the pass immediately.

Example:
  warctl undeploy /jenkins`,
	Args: cobra.ExactArgs(1),
	RunE: runUndeploy,
}

func init() {
	rootCmd.AddCommand(undeployCmd)
}

func runUndeploy(cmd *cobra.Command, args []string) error {
	session, cfg, err := newSession()
	if err != nil {
		return err
	}

	report, err := withSpinner(fmt.Sprintf("Undeploying %s...", args[0]), func() (reconcile.Report, error) {
		return session.Undeploy(cmd.Context(), args[0], cfg.Timeout())
	})
	if err != nil {
		return err
	}
	return printReport(cmd, report)
}
