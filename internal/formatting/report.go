package formatting

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"

	"warctl/internal/manager"
	"warctl/internal/reconcile"
)

// OutputFormat represents the supported output formats for CLI commands.
type OutputFormat string

const (
	// OutputFormatTable formats output as a plain table.
	OutputFormatTable OutputFormat = "table"
	// OutputFormatJSON formats output as JSON.
	OutputFormatJSON OutputFormat = "json"
	// OutputFormatYAML formats output as YAML.
	OutputFormatYAML OutputFormat = "yaml"
)

// ValidateOutputFormat validates that the given format string is a
// supported output format.
func ValidateOutputFormat(format string) error {
	switch OutputFormat(format) {
	case OutputFormatTable, OutputFormatJSON, OutputFormatYAML:
		return nil
	default:
		return fmt.Errorf("unsupported output format: %q (valid: table, json, yaml)", format)
	}
}

// FormatReport renders one outcome report.
func FormatReport(report reconcile.Report, format OutputFormat) (string, error) {
	switch format {
	case OutputFormatJSON:
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return "", err
		}
		return string(data), nil

	case OutputFormatYAML:
		data, err := yaml.Marshal(report)
		if err != nil {
			return "", err
		}
		return strings.TrimRight(string(data), "\n"), nil

	case OutputFormatTable, "":
		return renderReportTable(report), nil

	default:
		return "", fmt.Errorf("unsupported output format: %q", format)
	}
}

func renderReportTable(report reconcile.Report) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendRow(table.Row{"Name", report.Name})
	t.AppendRow(table.Row{"Result", colorResult(report.Result)})
	for _, change := range report.Changes {
		t.AppendRow(table.Row{"Change [" + change.Label + "]", change.Detail})
	}
	if report.Comment != "" {
		t.AppendRow(table.Row{"Comment", report.Comment})
	}
	return t.Render()
}

func colorResult(result reconcile.Result) string {
	switch result {
	case reconcile.ResultSucceeded:
		return text.FgGreen.Sprint("succeeded")
	case reconcile.ResultFailed:
		return text.FgRed.Sprint("failed")
	default:
		return text.FgYellow.Sprint("skipped (dry run)")
	}
}

// deploymentRow is the stable json/yaml shape of one listing entry.
type deploymentRow struct {
	ContextPath string `json:"contextPath" yaml:"contextPath"`
	Version     string `json:"version" yaml:"version"`
	Mode        string `json:"mode" yaml:"mode"`
	Sessions    int    `json:"sessions" yaml:"sessions"`
}

// FormatDeployments renders the observed deployment map, sorted by
// context path.
func FormatDeployments(records map[string]manager.DeploymentRecord, format OutputFormat) (string, error) {
	rows := make([]deploymentRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, deploymentRow{
			ContextPath: rec.ContextPath,
			Version:     rec.Version,
			Mode:        string(rec.Mode),
			Sessions:    rec.Sessions,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].ContextPath < rows[j].ContextPath })

	switch format {
	case OutputFormatJSON:
		data, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return "", err
		}
		return string(data), nil

	case OutputFormatYAML:
		data, err := yaml.Marshal(rows)
		if err != nil {
			return "", err
		}
		return strings.TrimRight(string(data), "\n"), nil

	case OutputFormatTable, "":
		t := table.NewWriter()
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"Context Path", "Version", "Mode", "Sessions"})
		for _, row := range rows {
			version := row.Version
			if version == "" {
				version = "-"
			}
			t.AppendRow(table.Row{row.ContextPath, version, row.Mode, row.Sessions})
		}
		return t.Render(), nil

	default:
		return "", fmt.Errorf("unsupported output format: %q", format)
	}
}
