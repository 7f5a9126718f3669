package installer

import (
	"github.com/ksyq12/phpdbg/internal/errors"
	"github.com/ksyq12/phpdbg/internal/executor"
)

// Result is the outcome of one install subprocess execution.
type Result struct {
	Success     bool   `json:"success"`
	Output      string `json:"output"`
	ErrorOutput string `json:"error_output"`
	ExitCode    int    `json:"exit_code"`
}

// Runner executes an extension install. Implemented by Installer; the
// Service accepts the interface so tests can stub the subprocess.
type Runner interface {
	Install(extension string, onLine func(line string)) (*Result, error)
}

// Installer runs the advisor's install command as a shell subprocess,
// streaming stdout to onLine. The call blocks until the child exits;
// there is no timeout or cancellation.
type Installer struct {
	advisor *Advisor
	exec    executor.CommandExecutor
}

// NewInstaller creates an installer using the given advisor and executor.
func NewInstaller(advisor *Advisor, exec executor.CommandExecutor) *Installer {
	return &Installer{advisor: advisor, exec: exec}
}

// Install runs the install command for extension. Callers must check
// Advisor.CanAutoInstall first; Install fails when no command exists.
func (i *Installer) Install(extension string, onLine func(line string)) (*Result, error) {
	command := i.advisor.InstallCommand(extension)
	if command == "" {
		return nil, errors.WrapExtension(errors.ErrCodeInstall, extension,
			"no unattended install command available on this platform", nil)
	}

	sr, err := i.exec.Stream(onLine, "sh", "-c", command)
	if err != nil {
		return nil, errors.WrapExtension(errors.ErrCodeInstall, extension,
			"failed to run install command", err)
	}

	return &Result{
		Success:     sr.ExitCode == 0,
		Output:      sr.Stdout,
		ErrorOutput: sr.Stderr,
		ExitCode:    sr.ExitCode,
	}, nil
}
