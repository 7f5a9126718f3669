package driver

import (
	"os"
	"strings"
	"testing"

	"github.com/ksyq12/phpdbg/internal/errors"
	"github.com/ksyq12/phpdbg/internal/executor"
	"github.com/ksyq12/phpdbg/internal/ini"
	"github.com/ksyq12/phpdbg/internal/platform"
)

func TestXdebugStatusQueries(t *testing.T) {
	t.Run("loaded runtime extension", func(t *testing.T) {
		env, _ := newTestEnv(t, "", "Core", "xdebug")
		d := NewXdebug(env)
		if !d.IsInstalled() {
			t.Error("expected IsInstalled to be true")
		}
	})

	t.Run("directive present but commented", func(t *testing.T) {
		env, _ := newTestEnv(t, ";zend_extension=xdebug.so\n", "Core")
		d := NewXdebug(env)
		if d.IsInstalled() {
			t.Error("expected IsInstalled to be false")
		}
		if !d.HasIniDirective() {
			t.Error("expected HasIniDirective to be true")
		}
		if d.IsEnabled() {
			t.Error("commented directive should not count as enabled")
		}
	})

	t.Run("directive enabled with full path", func(t *testing.T) {
		env, _ := newTestEnv(t, `zend_extension = "/usr/lib/php/xdebug.so"`+"\n", "Core")
		d := NewXdebug(env)
		if !d.HasIniDirective() || !d.IsEnabled() {
			t.Error("expected a quoted full-path directive to match")
		}
	})

	t.Run("queries degrade to false without php.ini", func(t *testing.T) {
		exec := &executor.MockExecutor{ExecuteFunc: func(name string, args ...string) ([]byte, error) {
			return []byte(""), nil
		}}
		env := platform.NewDetectorWithPlatform(exec, "linux", t.TempDir())
		d := NewXdebug(env)
		if d.HasIniDirective() || d.IsEnabled() {
			t.Error("status queries must degrade to false when php.ini is missing")
		}
	})
}

func TestXdebugSetEnabled(t *testing.T) {
	t.Run("uncomments an existing directive", func(t *testing.T) {
		env, iniPath := newTestEnv(t, "memory_limit = 128M\n;zend_extension=xdebug.so\n", "Core")
		d := NewXdebug(env)

		if err := d.SetEnabled(true); err != nil {
			t.Fatalf("SetEnabled failed: %v", err)
		}
		content := readIniFile(t, iniPath)
		if content != "memory_limit = 128M\nzend_extension=xdebug.so\n" {
			t.Errorf("unexpected content: %q", content)
		}
	})

	t.Run("appends a directive when none exists", func(t *testing.T) {
		env, iniPath := newTestEnv(t, "memory_limit = 128M\n", "Core")
		d := NewXdebug(env)

		if err := d.SetEnabled(true); err != nil {
			t.Fatalf("SetEnabled failed: %v", err)
		}
		content := readIniFile(t, iniPath)
		if !strings.Contains(content, "zend_extension=xdebug\n") {
			t.Errorf("expected appended directive, got: %q", content)
		}
	})

	t.Run("comments out on disable", func(t *testing.T) {
		env, iniPath := newTestEnv(t, "zend_extension=xdebug.so\n", "Core")
		d := NewXdebug(env)

		if err := d.SetEnabled(false); err != nil {
			t.Fatalf("SetEnabled failed: %v", err)
		}
		if got := readIniFile(t, iniPath); got != ";zend_extension=xdebug.so\n" {
			t.Errorf("unexpected content: %q", got)
		}
	})

	t.Run("disable with no directive is a no-op", func(t *testing.T) {
		env, iniPath := newTestEnv(t, "memory_limit = 128M\n", "Core")
		d := NewXdebug(env)

		if err := d.SetEnabled(false); err != nil {
			t.Fatalf("SetEnabled failed: %v", err)
		}
		if got := readIniFile(t, iniPath); got != "memory_limit = 128M\n" {
			t.Errorf("unexpected content: %q", got)
		}
	})

	t.Run("fails when php.ini cannot be found", func(t *testing.T) {
		exec := &executor.MockExecutor{ExecuteFunc: func(name string, args ...string) ([]byte, error) {
			return []byte(""), nil
		}}
		env := platform.NewDetectorWithPlatform(exec, "linux", t.TempDir())
		d := NewXdebug(env)

		err := d.SetEnabled(true)
		if !errors.Is(err, errors.ErrIniNotFound) {
			t.Errorf("expected ErrIniNotFound, got %v", err)
		}
	})
}

func TestXdebugConfigure(t *testing.T) {
	t.Run("appends a complete settings block", func(t *testing.T) {
		env, iniPath := newTestEnv(t, "memory_limit = 128M\n", "Core", "xdebug")
		d := NewXdebug(env)

		settings := Settings{ClientHost: "127.0.0.1", ClientPort: 9000, IdeKey: "VSCODE", Mode: "debug,develop"}
		if err := d.Configure(settings); err != nil {
			t.Fatalf("Configure failed: %v", err)
		}

		content := readIniFile(t, iniPath)
		for _, want := range []string{
			"memory_limit = 128M\n",
			xdebugStartMark + "\n",
			"zend_extension=xdebug\n",
			"xdebug.mode = debug,develop\n",
			"xdebug.client_host = 127.0.0.1\n",
			"xdebug.client_port = 9000\n",
			"xdebug.start_with_request = yes\n",
			"xdebug.idekey = VSCODE\n",
			xdebugEndMark + "\n",
		} {
			if !strings.Contains(content, want) {
				t.Errorf("missing %q in:\n%s", want, content)
			}
		}
	})

	t.Run("is idempotent", func(t *testing.T) {
		env, iniPath := newTestEnv(t, "memory_limit = 128M\n", "Core", "xdebug")
		d := NewXdebug(env)

		settings := Settings{ClientHost: "127.0.0.1"}
		if err := d.Configure(settings); err != nil {
			t.Fatalf("first Configure failed: %v", err)
		}
		first := readIniFile(t, iniPath)

		if err := d.Configure(settings); err != nil {
			t.Fatalf("second Configure failed: %v", err)
		}
		second := readIniFile(t, iniPath)

		if first != second {
			t.Errorf("Configure is not idempotent:\nfirst:\n%s\nsecond:\n%s", first, second)
		}
		if strings.Count(second, xdebugStartMark) != 1 {
			t.Errorf("expected exactly one block, got %d", strings.Count(second, xdebugStartMark))
		}
	})

	t.Run("resolves auto client host outside docker", func(t *testing.T) {
		env, iniPath := newTestEnv(t, "", "Core", "xdebug")
		d := NewXdebug(env)

		if err := d.Configure(DefaultSettings()); err != nil {
			t.Fatalf("Configure failed: %v", err)
		}
		content := readIniFile(t, iniPath)
		if !strings.Contains(content, "xdebug.client_host = localhost\n") {
			t.Errorf("expected auto host to resolve to localhost, got:\n%s", content)
		}
	})

	t.Run("honors an explicit ini path", func(t *testing.T) {
		env, detected := newTestEnv(t, "default target\n", "Core", "xdebug")
		_, override := newTestEnv(t, "override target\n", "Core")
		d := NewXdebug(env)

		if err := d.Configure(Settings{PhpIniPath: override, ClientHost: "h"}); err != nil {
			t.Fatalf("Configure failed: %v", err)
		}
		if strings.Contains(readIniFile(t, detected), xdebugStartMark) {
			t.Error("detected php.ini should be untouched when a path override is given")
		}
		if !strings.Contains(readIniFile(t, override), xdebugStartMark) {
			t.Error("override php.ini was not written")
		}
	})

	t.Run("fails on an unwritable target", func(t *testing.T) {
		if os.Geteuid() == 0 {
			t.Skip("file permissions are not enforced for root")
		}
		env, iniPath := newTestEnv(t, "memory_limit = 128M\n", "Core", "xdebug")
		if err := chmodReadonly(iniPath); err != nil {
			t.Skipf("cannot make file read-only: %v", err)
		}
		d := NewXdebug(env)

		err := d.Configure(DefaultSettings())
		if !errors.Is(err, errors.ErrIniNotWritable) {
			t.Errorf("expected ErrIniNotWritable, got %v", err)
		}
	})
}

func TestXdebugVerify(t *testing.T) {
	t.Run("not installed fails immediately", func(t *testing.T) {
		env, _ := newTestEnv(t, "", "Core")
		hc := NewXdebug(env).Verify()
		if hc.Healthy {
			t.Error("expected unhealthy result")
		}
		if len(hc.Checks) != 1 || hc.Checks[0].Status != CheckFail {
			t.Errorf("unexpected checks: %+v", hc.Checks)
		}
	})

	t.Run("configured block passes", func(t *testing.T) {
		env, _ := newTestEnv(t, "", "Core", "xdebug")
		d := NewXdebug(env)
		if err := d.Configure(Settings{ClientHost: "127.0.0.1"}); err != nil {
			t.Fatalf("Configure failed: %v", err)
		}

		hc := d.Verify()
		if !hc.Healthy {
			t.Errorf("expected healthy result, got %+v", hc)
		}
		for _, c := range hc.Checks {
			if c.Status != CheckPass {
				t.Errorf("unexpected non-pass check: %+v", c)
			}
		}
	})

	t.Run("mode off fails", func(t *testing.T) {
		env, _ := newTestEnv(t, "xdebug.mode = off\n", "Core", "xdebug")
		hc := NewXdebug(env).Verify()
		if hc.Healthy {
			t.Error("expected unhealthy result for mode off")
		}
	})

	t.Run("missing optional directives warn without failing", func(t *testing.T) {
		env, _ := newTestEnv(t, "xdebug.mode = debug\n", "Core", "xdebug")
		hc := NewXdebug(env).Verify()
		if !hc.Healthy {
			t.Errorf("optional directives must not fail the check: %+v", hc)
		}
		warns := 0
		for _, c := range hc.Checks {
			if c.Status == CheckWarn {
				warns++
			}
		}
		if warns != 3 {
			t.Errorf("expected 3 warnings, got %d: %+v", warns, hc.Checks)
		}
	})
}

func TestXdebugDirectivePattern(t *testing.T) {
	// The pcov pattern must not match inside a zend_extension directive.
	content := "zend_extension=xdebug.so\n"
	if ini.HasLine(content, pcovPattern) {
		t.Error("pcov pattern matched a zend_extension line")
	}
	if !ini.HasLine(content, xdebugPattern) {
		t.Error("xdebug pattern failed to match its own line")
	}
}
