package cli

import (
	"strconv"

	"github.com/ksyq12/phpdbg/internal/output"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show debugging extension status",
	Long: `Report every known debugging extension: whether the PHP runtime has
it loaded, whether php.ini carries its load directive, and whether that
directive is enabled.

Examples:
  phpdbg status
  phpdbg status --json`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

// ExtensionStatus is one row of the status report
type ExtensionStatus struct {
	Name         string `json:"name"`
	Installed    bool   `json:"installed"`
	HasDirective bool   `json:"has_directive"`
	Enabled      bool   `json:"enabled"`
}

// StatusReport is the full status output
type StatusReport struct {
	PhpIni     string            `json:"php_ini,omitempty"`
	Extensions []ExtensionStatus `json:"extensions"`
}

func runStatus(cmd *cobra.Command, args []string) error {
	_, engine, err := loadEngine()
	if err != nil {
		return err
	}

	report := StatusReport{}
	if path, ok := engine.Env.FindPhpIni(); ok {
		report.PhpIni = path
	}
	for _, drv := range engine.Manager.Debuggers() {
		report.Extensions = append(report.Extensions, ExtensionStatus{
			Name:         drv.Name(),
			Installed:    drv.IsInstalled(),
			HasDirective: drv.HasIniDirective(),
			Enabled:      drv.IsEnabled(),
		})
	}

	if jsonOutput {
		return output.JSON(report)
	}

	if report.PhpIni != "" {
		output.Info("php.ini: %s", report.PhpIni)
	} else {
		output.Warn("php.ini could not be located")
	}

	rows := make([][]string, 0, len(report.Extensions))
	for _, ext := range report.Extensions {
		rows = append(rows, []string{
			ext.Name,
			strconv.FormatBool(ext.Installed),
			strconv.FormatBool(ext.HasDirective),
			strconv.FormatBool(ext.Enabled),
		})
	}
	output.Table([]string{"EXTENSION", "LOADED", "DIRECTIVE", "ENABLED"}, rows)
	return nil
}
