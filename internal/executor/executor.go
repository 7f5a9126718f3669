package executor

import (
	"bufio"
	"bytes"
	"os/exec"
)

// CommandExecutor is an interface for executing system commands
type CommandExecutor interface {
	// Execute runs a command with the given name and arguments
	Execute(name string, args ...string) ([]byte, error)

	// Stream runs a command, feeding each stdout line to onLine as it is
	// produced, and returns the captured output once the command exits.
	// The call blocks until the child process terminates.
	Stream(onLine func(line string), name string, args ...string) (*StreamResult, error)

	// LookPath searches for an executable in the directories named by the PATH
	LookPath(file string) (string, error)
}

// StreamResult is the captured outcome of a streamed command execution.
type StreamResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// SystemExecutor implements CommandExecutor using os/exec
type SystemExecutor struct{}

// NewSystemExecutor creates a new SystemExecutor
func NewSystemExecutor() *SystemExecutor {
	return &SystemExecutor{}
}

// Execute runs a command and returns combined output
func (e *SystemExecutor) Execute(name string, args ...string) ([]byte, error) {
	cmd := exec.Command(name, args...)
	return cmd.CombinedOutput()
}

// Stream runs a command, forwarding stdout line-by-line. Stderr is
// captured in full. A non-zero exit status is reported through
// StreamResult.ExitCode, not as an error; the error return is reserved
// for failures to start the process at all. There is no timeout: a hung
// command blocks the caller.
func (e *SystemExecutor) Stream(onLine func(line string), name string, args ...string) (*StreamResult, error) {
	cmd := exec.Command(name, args...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		return nil, err
	}

	var out bytes.Buffer
	scanner := bufio.NewScanner(stdout)
	for scanner.Scan() {
		line := scanner.Text()
		out.WriteString(line)
		out.WriteByte('\n')
		if onLine != nil {
			onLine(line)
		}
	}

	result := &StreamResult{
		Stdout: out.String(),
	}
	if err := cmd.Wait(); err != nil {
		exitErr, ok := err.(*exec.ExitError)
		if !ok {
			return nil, err
		}
		result.ExitCode = exitErr.ExitCode()
	}
	result.Stderr = stderr.String()
	return result, nil
}

// LookPath searches for an executable
func (e *SystemExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// MockExecutor is a mock implementation for testing
type MockExecutor struct {
	ExecuteFunc  func(name string, args ...string) ([]byte, error)
	StreamFunc   func(onLine func(line string), name string, args ...string) (*StreamResult, error)
	LookPathFunc func(file string) (string, error)
	Calls        []CommandCall
}

// CommandCall records a command execution for verification
type CommandCall struct {
	Name string
	Args []string
}

// Execute calls the mock function
func (m *MockExecutor) Execute(name string, args ...string) ([]byte, error) {
	m.Calls = append(m.Calls, CommandCall{Name: name, Args: args})
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(name, args...)
	}
	return []byte(""), nil
}

// Stream calls the mock function
func (m *MockExecutor) Stream(onLine func(line string), name string, args ...string) (*StreamResult, error) {
	m.Calls = append(m.Calls, CommandCall{Name: name, Args: args})
	if m.StreamFunc != nil {
		return m.StreamFunc(onLine, name, args...)
	}
	return &StreamResult{}, nil
}

// LookPath calls the mock function
func (m *MockExecutor) LookPath(file string) (string, error) {
	if m.LookPathFunc != nil {
		return m.LookPathFunc(file)
	}
	return "/usr/bin/" + file, nil
}
