package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"warctl/internal/formatting"
)

// listCmd renders the observed deployment snapshot.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List deployed webapps as reported by the manager",
	Long: `Query the manager webapp once and render the observed deployments:
context path, version, run mode and active sessions.

Examples:
  warctl list
  warctl list -o json`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	session, cfg, err := newSession()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Timeout())
	defer cancel()

	records, err := session.Manager.List(ctx)
	if err != nil {
		return err
	}

	out, err := formatting.FormatDeployments(records, formatting.OutputFormat(rootOutput))
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
