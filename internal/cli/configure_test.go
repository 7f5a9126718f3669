package cli

import (
	"errors"
	"strings"
	"testing"

	"github.com/ksyq12/phpdbg/internal/config"
	"github.com/ksyq12/phpdbg/internal/driver"
)

var errTestConfigure = errors.New("configure failed")

func resetConfigureFlags(t *testing.T) {
	t.Helper()
	configureFlags.iniPath = ""
	configureFlags.clientHost = ""
	configureFlags.clientPort = 0
	configureFlags.ideKey = ""
	configureFlags.mode = ""
	configureFlags.skipReady = false
	t.Cleanup(func() {
		configureFlags.iniPath = ""
		configureFlags.clientHost = ""
		configureFlags.clientPort = 0
		configureFlags.ideKey = ""
		configureFlags.mode = ""
		configureFlags.skipReady = false
	})
}

func TestRunConfigure(t *testing.T) {
	t.Run("configures an installed extension with config defaults", func(t *testing.T) {
		resetConfigureFlags(t)

		drv := driver.NewMockDriver("xdebug")
		drv.IsInstalledFunc = func() bool { return true }
		engine := newTestEngine(t, nil, drv)

		cfg := config.New()
		deps := NewMockDeps().WithConfig(cfg).WithEngine(engine).Build()
		withDeps(t, deps)

		if err := runConfigure(configureCmd, []string{"xdebug"}); err != nil {
			t.Fatalf("runConfigure failed: %v", err)
		}

		if len(drv.ConfigureCalls) != 1 {
			t.Fatalf("expected 1 Configure call, got %d", len(drv.ConfigureCalls))
		}
		got := drv.ConfigureCalls[0]
		if got.ClientHost != "auto" || got.ClientPort != 9003 || got.IdeKey != "PHPSTORM" || got.Mode != "debug" {
			t.Errorf("unexpected settings: %+v", got)
		}
		if drv.VerifyCalls != 1 {
			t.Errorf("expected 1 Verify call, got %d", drv.VerifyCalls)
		}

		loader := deps.ConfigLoader.(*MockConfigLoader)
		if loader.SaveCalls != 1 {
			t.Errorf("expected the effective settings to be saved, got %d saves", loader.SaveCalls)
		}
	})

	t.Run("flags override the configured defaults", func(t *testing.T) {
		resetConfigureFlags(t)
		configureFlags.clientHost = "10.0.0.5"
		configureFlags.clientPort = 9000
		configureFlags.mode = "debug,develop"
		configureFlags.iniPath = "/custom/php.ini"

		drv := driver.NewMockDriver("xdebug")
		drv.IsInstalledFunc = func() bool { return true }
		engine := newTestEngine(t, nil, drv)

		cfg := config.New()
		deps := NewMockDeps().WithConfig(cfg).WithEngine(engine).Build()
		withDeps(t, deps)

		if err := runConfigure(configureCmd, nil); err != nil {
			t.Fatalf("runConfigure failed: %v", err)
		}

		got := drv.ConfigureCalls[0]
		if got.ClientHost != "10.0.0.5" || got.ClientPort != 9000 || got.Mode != "debug,develop" {
			t.Errorf("flags not applied: %+v", got)
		}
		if got.PhpIniPath != "/custom/php.ini" {
			t.Errorf("PhpIniPath = %q, want /custom/php.ini", got.PhpIniPath)
		}

		saved := deps.ConfigLoader.(*MockConfigLoader).Cfg
		if saved.ClientHost != "10.0.0.5" || saved.ClientPort != 9000 || saved.Mode != "debug,develop" {
			t.Errorf("effective settings not persisted: %+v", saved)
		}
	})

	t.Run("declined readiness aborts before configuring", func(t *testing.T) {
		resetConfigureFlags(t)

		drv := driver.NewMockDriver("xdebug")
		drv.HasIniDirectiveFunc = func() bool { return true }
		engine := newTestEngine(t, nil, drv)

		withDeps(t, NewMockDeps().
			WithConfig(config.New()).
			WithEngine(engine).
			WithInput("n\n").
			Build())

		err := runConfigure(configureCmd, []string{"xdebug"})
		if err == nil {
			t.Fatal("expected an error when readiness is declined")
		}
		if !strings.Contains(err.Error(), "cannot proceed") {
			t.Errorf("unexpected error: %v", err)
		}
		if len(drv.ConfigureCalls) != 0 {
			t.Error("Configure must not run after a declined readiness check")
		}
	})

	t.Run("skip-install bypasses the readiness check", func(t *testing.T) {
		resetConfigureFlags(t)
		configureFlags.skipReady = true

		drv := driver.NewMockDriver("xdebug") // not installed, no directive
		engine := newTestEngine(t, nil, drv)

		withDeps(t, NewMockDeps().WithConfig(config.New()).WithEngine(engine).Build())

		if err := runConfigure(configureCmd, []string{"xdebug"}); err != nil {
			t.Fatalf("runConfigure failed: %v", err)
		}
		if drv.IsInstalledCalls != 0 {
			t.Error("readiness check should be skipped")
		}
		if len(drv.ConfigureCalls) != 1 {
			t.Errorf("expected 1 Configure call, got %d", len(drv.ConfigureCalls))
		}
	})

	t.Run("configure error propagates", func(t *testing.T) {
		resetConfigureFlags(t)
		configureFlags.skipReady = true

		drv := driver.NewMockDriver("xdebug")
		drv.ConfigureFunc = func(driver.Settings) error {
			return errTestConfigure
		}
		engine := newTestEngine(t, nil, drv)
		withDeps(t, NewMockDeps().WithConfig(config.New()).WithEngine(engine).Build())

		if err := runConfigure(configureCmd, []string{"xdebug"}); err != errTestConfigure {
			t.Errorf("expected the configure error, got %v", err)
		}
	})
}
