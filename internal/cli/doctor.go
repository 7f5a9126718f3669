package cli

import (
	"github.com/ksyq12/phpdbg/internal/driver"
	"github.com/ksyq12/phpdbg/internal/output"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the environment and diagnose extension configuration",
	Long: `Run diagnostic checks on the PHP environment and every present
debugging extension.

Checks:
  - OS, Docker and official-PHP-image detection
  - php.ini discovery and supplementary conf.d ini files
  - Per-extension verification of the written configuration
  - Directives duplicated in conf.d-style ini files

Examples:
  phpdbg doctor
  phpdbg doctor --json`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

// EnvironmentReport describes the detected host environment
type EnvironmentReport struct {
	OS             string   `json:"os"`
	Docker         bool     `json:"docker"`
	OfficialImage  bool     `json:"official_php_image"`
	PHPVersion     string   `json:"php_version,omitempty"`
	PhpIni         string   `json:"php_ini,omitempty"`
	AdditionalInis []string `json:"additional_ini_files,omitempty"`
	DebuggerClient string   `json:"debugger_client_host"`
}

// ExtensionReport is the diagnostic result for one extension
type ExtensionReport struct {
	Name      string             `json:"name"`
	Installed bool               `json:"installed"`
	Enabled   bool               `json:"enabled"`
	ConfdFile string             `json:"confd_file,omitempty"`
	Health    driver.HealthCheck `json:"health"`
}

// DoctorReport contains all diagnostic results
type DoctorReport struct {
	Environment EnvironmentReport `json:"environment"`
	Extensions  []ExtensionReport `json:"extensions"`
}

func runDoctor(cmd *cobra.Command, args []string) error {
	_, engine, err := loadEngine()
	if err != nil {
		return err
	}

	env := engine.Env
	report := DoctorReport{
		Environment: EnvironmentReport{
			OS:             string(env.OS()),
			Docker:         env.IsDocker(),
			OfficialImage:  env.IsOfficialPHPImage(),
			PHPVersion:     env.PHPVersion(),
			AdditionalInis: env.AdditionalIniFiles(),
			DebuggerClient: env.ClientHost(),
		},
	}
	if path, ok := env.FindPhpIni(); ok {
		report.Environment.PhpIni = path
	}

	for _, drv := range engine.Manager.Debuggers() {
		ext := ExtensionReport{
			Name:      drv.Name(),
			Installed: drv.IsInstalled(),
			Enabled:   drv.IsEnabled(),
			Health:    drv.Verify(),
		}
		// A directive duplicated in a conf.d file shadows the main
		// php.ini edit and is worth flagging.
		if xd, ok := drv.(interface{ DirectivePattern() string }); ok {
			if file, found := env.FindPatternInAdditionalIni(xd.DirectivePattern()); found {
				ext.ConfdFile = file
			}
		}
		report.Extensions = append(report.Extensions, ext)
	}

	if jsonOutput {
		return output.JSON(report)
	}

	displayDoctorResults(report)
	return nil
}

func displayDoctorResults(report DoctorReport) {
	env := report.Environment

	output.Print("Environment:")
	output.Info("OS: %s", env.OS)
	if env.Docker {
		official := "unofficial image"
		if env.OfficialImage {
			official = "official PHP image"
		}
		output.Info("Docker: yes (%s)", official)
	} else {
		output.Info("Docker: no")
	}
	if env.PHPVersion != "" {
		output.Info("PHP version: %s", env.PHPVersion)
	} else {
		output.Warn("PHP could not be queried")
	}
	if env.PhpIni != "" {
		output.Info("php.ini: %s", env.PhpIni)
	} else {
		output.Error("php.ini could not be located")
	}
	if len(env.AdditionalInis) > 0 {
		output.Info("additional ini files: %d", len(env.AdditionalInis))
	}
	output.Info("debugger client host: %s", env.DebuggerClient)

	for _, ext := range report.Extensions {
		output.Print("")
		if !ext.Installed {
			output.Warn("%s is not installed", ext.Name)
			continue
		}
		renderHealth(ext.Name, ext.Health)
		if ext.ConfdFile != "" {
			output.Warn("%s directive also present in %s", ext.Name, ext.ConfdFile)
		}
	}
}
