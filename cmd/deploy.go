package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"warctl/internal/reconcile"
)

var (
	deployWAR       string
	deployVersion   string
	deployNoVersion bool
	deployForce     bool
	deployTempDir   string
)

// deployCmd runs one deploy-reconciliation pass for a single context path.
var deployCmd = &cobra.Command{
	Use:   "deploy CONTEXT_PATH",
	Short: "Converge a WAR deployment at a context path",
	Long: `Run one convergence pass: compare the desired WAR against the observed
deployment at CONTEXT_PATH and apply the minimal actions needed.

The desired version is derived from the WAR filename (<name>-<version>.<ext>)
unless --version overrides it or --no-version suppresses versioning.

Examples:
  warctl deploy /jenkins --war /srv/wars/jenkins-1.2.4.war
  warctl deploy /jenkins --war https://repo.internal/jenkins-1.2.4.war --force
  warctl deploy /legacy --war /srv/wars/legacy.war --no-version`,
	Args: cobra.ExactArgs(1),
	RunE: runDeploy,
}

func init() {
	rootCmd.AddCommand(deployCmd)

	deployCmd.Flags().StringVar(&deployWAR, "war", "", "WAR artifact location: local path or http(s) URL (required)")
	deployCmd.Flags().StringVar(&deployVersion, "version", "", "Deploy under this exact version instead of the filename-derived one")
	deployCmd.Flags().BoolVar(&deployNoVersion, "no-version", false, "Deploy without any version tag")
	deployCmd.Flags().BoolVar(&deployForce, "force", false, "Redeploy even when the observed version matches")
	deployCmd.Flags().StringVar(&deployTempDir, "temp-dir", "", "Staging location for the WAR copy (overrides config)")
	deployCmd.MarkFlagRequired("war")
	deployCmd.MarkFlagsMutuallyExclusive("version", "no-version")
}

func runDeploy(cmd *cobra.Command, args []string) error {
	session, cfg, err := newSession()
	if err != nil {
		return err
	}

	version := reconcile.AutoVersion()
	if deployNoVersion {
		version = reconcile.NoVersion()
	} else if deployVersion != "" {
		version = reconcile.ExactVersion(deployVersion)
	}

	tempDir := cfg.TempDir
	if deployTempDir != "" {
		tempDir = deployTempDir
	}

	desired := reconcile.DesiredSpec{
		ContextPath: args[0],
		WAR:         deployWAR,
		Force:       deployForce,
		Version:     version,
		Timeout:     cfg.Timeout(),
		TempDir:     tempDir,
	}

	report, err := withSpinner(fmt.Sprintf("Converging %s...", desired.ContextPath), func() (reconcile.Report, error) {
		return session.Deploy(cmd.Context(), desired)
	})
	if err != nil {
		return err
	}
	return printReport(cmd, report)
}
