package installer

import (
	"fmt"
	"strings"

	"github.com/ksyq12/phpdbg/internal/driver"
)

// UI receives prompts and progress lines from the installation service,
// keeping the state machine independent of the terminal.
type UI interface {
	// Confirm asks a yes/no question and returns the answer, falling
	// back to defaultYes on empty input.
	Confirm(prompt string, defaultYes bool) bool

	// Output emits one line of progress or instructions.
	Output(line string)
}

// Outcome is the result of one readiness run. Produced once per Ensure
// invocation, never retained.
type Outcome struct {
	Success         bool   `json:"success"`
	RequiresRestart bool   `json:"requires_restart"`
	Message         string `json:"message"`
}

// Service drives an extension from whatever state it is in to ready:
// not-installed → install → disabled → enable → ready. It never returns
// a Go error; every branch yields an Outcome.
type Service struct {
	advisor   *Advisor
	installer Runner
}

// NewService creates an installation service.
func NewService(advisor *Advisor, installer Runner) *Service {
	return &Service{advisor: advisor, installer: installer}
}

// Ensure makes the driver's extension ready, prompting through ui where
// a decision or installation is needed. The branches are checked in
// priority order and each is terminal for one invocation.
func (s *Service) Ensure(drv driver.Driver, ui UI) Outcome {
	name := drv.Name()

	// Already loaded by the runtime: nothing to do.
	if drv.IsInstalled() {
		return Outcome{
			Success: true,
			Message: fmt.Sprintf("%s is installed and loaded", name),
		}
	}

	// Present in php.ini but not loaded: offer to enable.
	if drv.HasIniDirective() {
		if !ui.Confirm(fmt.Sprintf("%s is installed but disabled. Enable it now?", name), true) {
			return Outcome{Message: fmt.Sprintf("cannot proceed without enabling %s", name)}
		}
		if err := drv.SetEnabled(true); err != nil {
			return Outcome{Message: err.Error()}
		}
		return Outcome{
			Success:         true,
			RequiresRestart: true,
			Message:         fmt.Sprintf("%s enabled in php.ini", name),
		}
	}

	// Absent and unattended install is not safe here: print guidance.
	if !s.advisor.CanAutoInstall(name) {
		ui.Output(fmt.Sprintf("%s is not installed.", name))
		if command := s.advisor.InstallCommand(name); command != "" {
			ui.Output("Install it with:")
			ui.Output("  " + command)
		}
		for _, line := range s.advisor.Instructions(name) {
			ui.Output(line)
		}
		return Outcome{Message: fmt.Sprintf("cannot proceed without installing %s", name)}
	}

	// Absent but installable: offer to run the installer.
	if !ui.Confirm(fmt.Sprintf("%s is not installed. Install it now?", name), true) {
		return Outcome{Message: fmt.Sprintf("cannot proceed without installing %s", name)}
	}
	result, err := s.installer.Install(name, ui.Output)
	if err != nil {
		return Outcome{Message: err.Error()}
	}
	if !result.Success {
		detail := strings.TrimSpace(result.ErrorOutput)
		if detail == "" {
			detail = strings.TrimSpace(result.Output)
		}
		return Outcome{Message: fmt.Sprintf("install command exited with code %d: %s", result.ExitCode, detail)}
	}
	return Outcome{
		Success:         true,
		RequiresRestart: true,
		Message:         fmt.Sprintf("%s installed", name),
	}
}
