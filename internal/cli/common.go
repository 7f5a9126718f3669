package cli

import (
	"fmt"

	"github.com/ksyq12/phpdbg/internal/config"
	"github.com/ksyq12/phpdbg/internal/driver"
	"github.com/ksyq12/phpdbg/internal/input"
	"github.com/ksyq12/phpdbg/internal/output"
)

// loadEngine loads the tool config and builds the wired engine
func loadEngine() (*config.Config, *Engine, error) {
	cfg, err := deps.ConfigLoader.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, deps.Engine.Build(), nil
}

// resolveDebugger resolves a driver by name, falling back to the
// configured default extension when name is empty
func resolveDebugger(engine *Engine, cfg *config.Config, name string) (driver.Driver, error) {
	if name == "" {
		name = cfg.Extension
	}
	return engine.Manager.Debugger(name)
}

// settingsFromConfig builds driver settings from the persisted defaults
func settingsFromConfig(cfg *config.Config) driver.Settings {
	s := driver.Settings{
		PhpIniPath: cfg.PhpIni,
		ClientHost: cfg.ClientHost,
		ClientPort: cfg.ClientPort,
		IdeKey:     cfg.IdeKey,
		Mode:       cfg.Mode,
	}
	if s.ClientHost == "" {
		s.ClientHost = driver.DefaultClientHost
	}
	if s.ClientPort == 0 {
		s.ClientPort = driver.DefaultClientPort
	}
	if s.IdeKey == "" {
		s.IdeKey = driver.DefaultIdeKey
	}
	if s.Mode == "" {
		s.Mode = driver.DefaultMode
	}
	return s
}

// consoleUI adapts stdin/stdout to the installation service's UI.
type consoleUI struct {
	reader StdinReader
}

// Confirm prompts on stdout and reads one line from stdin. Read errors
// and empty input fall back to the default answer.
func (u *consoleUI) Confirm(prompt string, defaultYes bool) bool {
	suffix := " [Y/n]: "
	if !defaultYes {
		suffix = " [y/N]: "
	}
	fmt.Print(prompt + suffix)
	answer, err := u.reader.ReadString('\n')
	if err != nil {
		return defaultYes
	}
	return input.ParseYesNo(answer, defaultYes)
}

// Output forwards one progress line to stdout.
func (u *consoleUI) Output(line string) {
	output.Line(line)
}

// newConsoleUI creates a UI bound to the injected stdin reader.
func newConsoleUI() *consoleUI {
	return &consoleUI{reader: deps.StdinReader}
}

// outputResult handles JSON or human-readable output
func outputResult(data interface{}, successMsg string, args ...interface{}) error {
	if jsonOutput {
		return output.JSON(data)
	}
	output.Success(successMsg, args...)
	return nil
}

// renderHealth prints a health check report
func renderHealth(name string, hc driver.HealthCheck) {
	output.Print("%s configuration:", name)
	for _, check := range hc.Checks {
		output.Check(string(check.Status), check.Message)
	}
	if hc.Healthy {
		output.Success("%s looks healthy", name)
	} else {
		output.Error("%s configuration has problems", name)
	}
}

// restartNote reminds the user that PHP has to pick up the change
func restartNote() {
	output.Info("Restart PHP (or PHP-FPM) for the change to take effect")
}

// CommandResult represents a common result structure for CLI commands
type CommandResult struct {
	Success         bool   `json:"success"`
	Extension       string `json:"extension"`
	Action          string `json:"action,omitempty"`
	Message         string `json:"message,omitempty"`
	RequiresRestart bool   `json:"requires_restart,omitempty"`
}

// newSuccessResult creates a success result
func newSuccessResult(extension, action string) CommandResult {
	return CommandResult{
		Success:   true,
		Extension: extension,
		Action:    action,
	}
}
