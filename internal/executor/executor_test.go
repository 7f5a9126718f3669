package executor

import (
	"errors"
	"testing"
)

func TestSystemExecutorExecute(t *testing.T) {
	e := NewSystemExecutor()

	out, err := e.Execute("sh", "-c", "echo hello")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if string(out) != "hello\n" {
		t.Errorf("Execute output = %q, want %q", out, "hello\n")
	}
}

func TestSystemExecutorStream(t *testing.T) {
	e := NewSystemExecutor()

	t.Run("forwards lines in order", func(t *testing.T) {
		var lines []string
		result, err := e.Stream(func(line string) {
			lines = append(lines, line)
		}, "sh", "-c", "echo one; echo two")
		if err != nil {
			t.Fatalf("Stream failed: %v", err)
		}
		if len(lines) != 2 || lines[0] != "one" || lines[1] != "two" {
			t.Errorf("streamed lines = %v, want [one two]", lines)
		}
		if result.Stdout != "one\ntwo\n" {
			t.Errorf("Stdout = %q, want %q", result.Stdout, "one\ntwo\n")
		}
		if result.ExitCode != 0 {
			t.Errorf("ExitCode = %d, want 0", result.ExitCode)
		}
	})

	t.Run("captures stderr and exit code", func(t *testing.T) {
		result, err := e.Stream(nil, "sh", "-c", "echo oops >&2; exit 3")
		if err != nil {
			t.Fatalf("Stream failed: %v", err)
		}
		if result.ExitCode != 3 {
			t.Errorf("ExitCode = %d, want 3", result.ExitCode)
		}
		if result.Stderr != "oops\n" {
			t.Errorf("Stderr = %q, want %q", result.Stderr, "oops\n")
		}
	})

	t.Run("errors when the binary does not exist", func(t *testing.T) {
		if _, err := e.Stream(nil, "definitely-not-a-binary-xyz"); err == nil {
			t.Error("expected an error for a missing binary")
		}
	})
}

func TestSystemExecutorLookPath(t *testing.T) {
	e := NewSystemExecutor()

	if _, err := e.LookPath("sh"); err != nil {
		t.Errorf("LookPath(sh) failed: %v", err)
	}
	if _, err := e.LookPath("definitely-not-a-binary-xyz"); err == nil {
		t.Error("expected LookPath to fail for a missing binary")
	}
}

func TestMockExecutor(t *testing.T) {
	t.Run("records calls", func(t *testing.T) {
		m := &MockExecutor{}
		m.Execute("php", "-m")
		m.Stream(nil, "sh", "-c", "true")

		if len(m.Calls) != 2 {
			t.Fatalf("expected 2 recorded calls, got %d", len(m.Calls))
		}
		if m.Calls[0].Name != "php" || m.Calls[0].Args[0] != "-m" {
			t.Errorf("unexpected first call: %+v", m.Calls[0])
		}
		if m.Calls[1].Name != "sh" {
			t.Errorf("unexpected second call: %+v", m.Calls[1])
		}
	})

	t.Run("delegates to custom functions", func(t *testing.T) {
		wantErr := errors.New("boom")
		m := &MockExecutor{
			ExecuteFunc: func(name string, args ...string) ([]byte, error) {
				return nil, wantErr
			},
			StreamFunc: func(onLine func(string), name string, args ...string) (*StreamResult, error) {
				onLine("streamed")
				return &StreamResult{Stdout: "streamed\n", ExitCode: 1}, nil
			},
		}

		if _, err := m.Execute("php"); !errors.Is(err, wantErr) {
			t.Errorf("Execute error = %v, want %v", err, wantErr)
		}

		var got string
		result, err := m.Stream(func(line string) { got = line }, "sh")
		if err != nil {
			t.Fatalf("Stream failed: %v", err)
		}
		if got != "streamed" || result.ExitCode != 1 {
			t.Errorf("Stream result = %q / %d, want streamed / 1", got, result.ExitCode)
		}
	})

	t.Run("defaults when no functions are set", func(t *testing.T) {
		m := &MockExecutor{}
		path, err := m.LookPath("php")
		if err != nil || path != "/usr/bin/php" {
			t.Errorf("LookPath = %q, %v; want /usr/bin/php", path, err)
		}
	})
}
