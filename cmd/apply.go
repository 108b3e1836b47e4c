package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"warctl/internal/config"
	"warctl/internal/reconcile"
	"warctl/pkg/logging"
)

var applyFile string

// applySpecFile is the on-disk schema of an apply file.
type applySpecFile struct {
	Deployments []applySpec `yaml:"deployments"`
}

// applySpec is one desired deployment in an apply file.
type applySpec struct {
	ContextPath    string                `yaml:"contextPath"`
	WAR            string                `yaml:"war"`
	Force          bool                  `yaml:"force"`
	Version        reconcile.VersionSpec `yaml:"version"`
	TimeoutSeconds int                   `yaml:"timeout"`
	TempDir        string                `yaml:"tempDir"`
}

// applyCmd runs one convergence pass per spec in a YAML file, strictly
// in file order.
var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Converge every deployment listed in a spec file",
	Long: `Run one convergence pass for every deployment in a YAML spec file,
strictly in file order. Each pass is independent; a failed pass does not
stop the remaining ones, but any failure makes the command exit non-zero.

Spec file format:

  deployments:
    - contextPath: /jenkins
      war: https://repo.internal/wars/jenkins-1.2.4.war
    - contextPath: /legacy
      war: /srv/wars/legacy.war
      version: false
      force: true

Example:
  warctl apply -f deployments.yaml`,
	Args: cobra.NoArgs,
	RunE: runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)

	applyCmd.Flags().StringVarP(&applyFile, "filename", "f", "", "YAML file with desired deployments (required)")
	applyCmd.MarkFlagRequired("filename")
}

func runApply(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(applyFile)
	if err != nil {
		return fmt.Errorf("failed to read spec file %s: %w", applyFile, err)
	}
	specs, err := parseApplyFile(data)
	if err != nil {
		return fmt.Errorf("invalid spec file %s: %w", applyFile, err)
	}

	session, cfg, err := newSession()
	if err != nil {
		return err
	}

	failed := 0
	for _, spec := range specs {
		desired := spec.toDesired(cfg)
		report, err := withSpinner(fmt.Sprintf("Converging %s...", desired.ContextPath), func() (reconcile.Report, error) {
			return session.Deploy(cmd.Context(), desired)
		})
		if err != nil {
			// Transport failure: report it, keep going; the remaining
			// specs are independent passes.
			logging.Error("Apply", err, "pass for %s failed", desired.ContextPath)
			failed++
			continue
		}
		if printErr := printReport(cmd, report); printErr != nil {
			failed++
		}
	}

	if failed > 0 {
		return &NotConvergedError{Comment: fmt.Sprintf("%d of %d deployment(s) did not converge", failed, len(specs))}
	}
	return nil
}

func parseApplyFile(data []byte) ([]applySpec, error) {
	var file applySpecFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	if len(file.Deployments) == 0 {
		return nil, fmt.Errorf("no deployments listed")
	}
	for i, spec := range file.Deployments {
		if spec.ContextPath == "" {
			return nil, fmt.Errorf("deployments[%d]: contextPath is required", i)
		}
		if spec.WAR == "" {
			return nil, fmt.Errorf("deployments[%d]: war is required", i)
		}
	}
	return file.Deployments, nil
}

func (a applySpec) toDesired(cfg config.Config) reconcile.DesiredSpec {
	timeout := cfg.Timeout()
	if a.TimeoutSeconds > 0 {
		timeout = time.Duration(a.TimeoutSeconds) * time.Second
	}
	tempDir := cfg.TempDir
	if a.TempDir != "" {
		tempDir = a.TempDir
	}
	return reconcile.DesiredSpec{
		ContextPath: a.ContextPath,
		WAR:         a.WAR,
		Force:       a.Force,
		Version:     a.Version,
		Timeout:     timeout,
		TempDir:     tempDir,
	}
}
