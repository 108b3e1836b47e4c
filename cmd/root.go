package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"warctl/internal/formatting"
	"warctl/pkg/logging"
)

// Exit codes for CLI commands. These follow common conventions so the
// calling orchestrator can branch on the outcome of a pass.
const (
	// ExitCodeSuccess indicates successful execution.
	ExitCodeSuccess = 0
	// ExitCodeError indicates a general error (bad arguments, transport failure).
	ExitCodeError = 1
	// ExitCodeNotConverged indicates the pass ran but did not converge
	// (the manager rejected an action or the readiness probe failed).
	ExitCodeNotConverged = 2
)

var (
	rootConfigPath  string
	rootURL         string
	rootTimeout     int
	rootEnvironment string
	rootDryRun      bool
	rootOutput      string
	rootQuiet       bool
	rootLogLevel    string
)

// rootCmd represents the base command for the warctl application.
// It is the entry point when the application is called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "warctl",
	Short: "Converge WAR deployments against an application-server manager",
	Long: `warctl reconciles the desired deployment state of a web application
archive against the state reported by the server's manager webapp, and
applies the minimal corrective actions (undeploy, deploy, start, reload)
needed to converge. One invocation is one convergence pass; scheduling
and retries across passes belong to the calling orchestrator.`,
	// SilenceUsage prevents Cobra from printing the usage message on errors that are handled by the application.
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := formatting.ValidateOutputFormat(rootOutput); err != nil {
			return err
		}
		logging.InitForCLI(logging.ParseLevel(rootLogLevel), os.Stderr)
		return nil
	},
}

// SetVersion sets the version for the root command.
// This function is typically called from the main package to inject the application version at build time.
func SetVersion(v string) {
	rootCmd.Version = v
}

// GetVersion returns the current version of the application.
func GetVersion() string {
	return rootCmd.Version
}

// Execute is the main entry point for the CLI application.
// This function is called by main.main().
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "warctl version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(getExitCode(err))
	}
}

// getExitCode determines the appropriate exit code based on the error type.
// This provides semantic exit codes for scripting and automation.
func getExitCode(err error) int {
	var notConverged *NotConvergedError
	if errors.As(err, &notConverged) {
		return ExitCodeNotConverged
	}
	return ExitCodeError
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&rootConfigPath, "config-path", "", "Configuration directory (default is $HOME/.config/warctl)")
	pf.StringVar(&rootURL, "url", "", "Manager webapp base URL (overrides config)")
	pf.IntVar(&rootTimeout, "timeout", 0, "Manager request timeout in seconds (overrides config)")
	pf.StringVar(&rootEnvironment, "environment", "", "Artifact source environment (overrides config)")
	pf.BoolVar(&rootDryRun, "dry-run", false, "Plan against real state but execute nothing")
	pf.StringVarP(&rootOutput, "output", "o", "table", "Output format (table, json, yaml)")
	pf.BoolVarP(&rootQuiet, "quiet", "q", false, "Suppress non-essential output")
	pf.StringVar(&rootLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
}
