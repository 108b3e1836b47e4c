package cmd

import (
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"warctl/internal/config"
	"warctl/internal/formatting"
	"warctl/internal/manager"
	"warctl/internal/reconcile"
)

// NotConvergedError marks a pass that ran but did not converge, so the
// process can exit with ExitCodeNotConverged instead of a general error.
type NotConvergedError struct {
	Comment string
}

func (e *NotConvergedError) Error() string {
	if e.Comment == "" {
		return "pass did not converge"
	}
	return e.Comment
}

// loadEffectiveConfig loads the config file and applies global flag
// overrides on top.
func loadEffectiveConfig() (config.Config, error) {
	configPath := rootConfigPath
	if configPath == "" {
		configPath = config.GetDefaultConfigPathOrPanic()
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return config.Config{}, err
	}

	if rootURL != "" {
		cfg.URL = rootURL
	}
	if rootTimeout > 0 {
		cfg.TimeoutSeconds = rootTimeout
	}
	if rootEnvironment != "" {
		cfg.Environment = rootEnvironment
	}
	return cfg, nil
}

// newSession builds the per-invocation session from config and flags.
func newSession() (*reconcile.Session, config.Config, error) {
	cfg, err := loadEffectiveConfig()
	if err != nil {
		return nil, config.Config{}, err
	}
	client := manager.NewHTTPClient(cfg.URL, cfg.Username, cfg.Password)
	return reconcile.NewSession(client, cfg.Environment, rootDryRun), cfg, nil
}

// withSpinner runs fn behind a progress spinner unless quiet mode or a
// non-table output format is active.
func withSpinner(suffix string, fn func() (reconcile.Report, error)) (reconcile.Report, error) {
	var s *spinner.Spinner
	if !rootQuiet && formatting.OutputFormat(rootOutput) == formatting.OutputFormatTable {
		s = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
		s.Suffix = " " + suffix
		s.Start()
	}

	report, err := fn()

	if s != nil {
		s.Stop()
	}
	return report, err
}

// printReport renders the report and converts a failed result into a
// NotConvergedError so the exit code reflects it.
func printReport(cmd *cobra.Command, report reconcile.Report) error {
	out, err := formatting.FormatReport(report, formatting.OutputFormat(rootOutput))
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)

	if report.Result == reconcile.ResultFailed {
		return &NotConvergedError{Comment: report.Comment}
	}
	return nil
}
