package driver

// Settings is the configuration input accepted by Configure. A zero
// value is usable after applying defaults; DefaultSettings returns one
// with the defaults filled in.
type Settings struct {
	// PhpIniPath overrides php.ini auto-detection when non-empty.
	PhpIniPath string

	// ClientHost is the debugger client host. The value "auto" defers to
	// the detector's Docker-aware resolution; any other literal is used
	// verbatim.
	ClientHost string

	// ClientPort is the debugger client port.
	ClientPort int

	// IdeKey is the IDE session key (xdebug.idekey).
	IdeKey string

	// Mode is the xdebug.mode value.
	Mode string
}

// Defaults for Settings fields.
const (
	DefaultClientHost = "auto"
	DefaultClientPort = 9003
	DefaultIdeKey     = "PHPSTORM"
	DefaultMode       = "debug"
)

// DefaultSettings returns a Settings value with all defaults applied.
func DefaultSettings() Settings {
	return Settings{
		ClientHost: DefaultClientHost,
		ClientPort: DefaultClientPort,
		IdeKey:     DefaultIdeKey,
		Mode:       DefaultMode,
	}
}

// withDefaults fills empty fields with the package defaults.
func (s Settings) withDefaults() Settings {
	if s.ClientHost == "" {
		s.ClientHost = DefaultClientHost
	}
	if s.ClientPort == 0 {
		s.ClientPort = DefaultClientPort
	}
	if s.IdeKey == "" {
		s.IdeKey = DefaultIdeKey
	}
	if s.Mode == "" {
		s.Mode = DefaultMode
	}
	return s
}

// CheckStatus is the outcome of a single verification check.
type CheckStatus string

// Check statuses.
const (
	CheckPass CheckStatus = "pass"
	CheckWarn CheckStatus = "warn"
	CheckFail CheckStatus = "fail"
)

// Check is one verified setting with a human-readable message.
type Check struct {
	Status  CheckStatus `json:"status"`
	Message string      `json:"message"`
}

// HealthCheck is the result of verifying a driver's written configuration.
type HealthCheck struct {
	Healthy bool    `json:"healthy"`
	Checks  []Check `json:"checks"`
}

// Driver is the interface every debugging-extension driver implements.
type Driver interface {
	// Name returns the stable extension identifier (xdebug, pcov).
	Name() string

	// IsInstalled reports whether the PHP runtime has the extension loaded.
	IsInstalled() bool

	// HasIniDirective reports whether a load directive for the extension
	// exists in the detected php.ini, commented or not.
	HasIniDirective() bool

	// IsEnabled reports whether the load directive exists and is
	// uncommented. Returns false when php.ini cannot be located or read.
	IsEnabled() bool

	// SetEnabled uncomments or appends the load directive (enable) or
	// comments it out (disable).
	SetEnabled(enabled bool) error

	// Configure rewrites the driver's settings block in php.ini.
	Configure(settings Settings) error

	// Verify inspects the written configuration and reports one check per
	// setting plus an overall pass/fail.
	Verify() HealthCheck
}

// Integrator generates IDE-specific debugger configuration for a project.
type Integrator interface {
	// Name returns the stable IDE identifier (vscode, phpstorm, sublime).
	Name() string

	// Detect reports whether the IDE appears to be used in the project.
	Detect(projectPath string) bool

	// Generate writes the IDE's debug configuration for the given driver.
	Generate(drv Driver, projectPath string, settings Settings) error
}
