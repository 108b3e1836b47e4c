package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"warctl/internal/reconcile"
)

// reloadCmd is the change-notification entry point: a dependency of the
// webapp changed, so reload it in place.
var reloadCmd = &cobra.Command{
	Use:   "reload CONTEXT_PATH",
	Short: "Reload the webapp at a context path",
	Long: `Reload the webapp at CONTEXT_PATH in place.

Intended to be triggered by the orchestrator when a declared dependency
of the webapp changes (configuration, datasource, shared library).

Example:
  warctl reload /jenkins`,
	Args: cobra.ExactArgs(1),
	RunE: runReload,
}

func init() {
	rootCmd.AddCommand(reloadCmd)
}

func runReload(cmd *cobra.Command, args []string) error {
	session, cfg, err := newSession()
	if err != nil {
		return err
	}

	report, err := withSpinner(fmt.Sprintf("Reloading %s...", args[0]), func() (reconcile.Report, error) {
		return session.Notify(cmd.Context(), args[0], cfg.Timeout())
	})
	if err != nil {
		return err
	}
	return printReport(cmd, report)
}
