// Package driver provides abstractions for configuring PHP debugging
// extensions (Xdebug, Pcov) through a live php.ini file.
//
// Each driver owns one extension's identity: its name, the regular
// expression matching its load directive, the comment markers delimiting
// its settings block, and the directive prefix it is loaded with
// (extension= vs zend_extension=). Drivers are constructed once with a
// platform.Detector dependency and are stateless afterwards; all state
// lives in the php.ini file they mutate.
//
// # Basic Usage
//
// Create a driver and configure its settings block:
//
//	env := platform.NewDetector(executor.NewSystemExecutor())
//	drv := driver.NewXdebug(env)
//
//	settings := driver.DefaultSettings()
//	settings.IdeKey = "VSCODE"
//	if err := drv.Configure(settings); err != nil {
//	    // handle typed errors.ConfigError
//	}
//
// Configure rewrites the driver's block wholesale: any prior block is
// stripped by its markers before the fresh one is appended, so repeated
// configuration never accumulates duplicates.
//
// # Registry
//
// Manager is an insertion-ordered registry mapping extension and IDE
// names to Driver and Integrator instances:
//
//	m := driver.NewManager()
//	m.RegisterDebugger(driver.NewXdebug(env))
//	m.RegisterDebugger(driver.NewPcov(env))
//	drv, err := m.Debugger("xdebug")
//
// # Testing
//
// MockDriver records calls and delegates to settable functions, the same
// pattern the executor package uses:
//
//	mock := driver.NewMockDriver("xdebug")
//	mock.IsInstalledFunc = func() bool { return true }
//
// # Error Handling
//
// Status queries (IsInstalled, HasIniDirective, IsEnabled) never fail;
// they degrade to false when php.ini cannot be located or read, since
// "unknown" is a valid status. Mutators (SetEnabled, Configure) return
// typed errors from the errors package and abort on the first I/O
// problem.
package driver
