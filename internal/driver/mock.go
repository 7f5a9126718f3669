package driver

// MockDriver is a test double for the Driver interface
type MockDriver struct {
	name string

	// Function mocks - set these to customize behavior
	IsInstalledFunc     func() bool
	HasIniDirectiveFunc func() bool
	IsEnabledFunc       func() bool
	SetEnabledFunc      func(enabled bool) error
	ConfigureFunc       func(settings Settings) error
	VerifyFunc          func() HealthCheck

	// Call tracking - check these to verify interactions
	IsInstalledCalls     int
	HasIniDirectiveCalls int
	IsEnabledCalls       int
	SetEnabledCalls      []bool
	ConfigureCalls       []Settings
	VerifyCalls          int
}

// NewMockDriver creates a new MockDriver with default no-op implementations
func NewMockDriver(name string) *MockDriver {
	return &MockDriver{
		name:            name,
		SetEnabledCalls: make([]bool, 0),
		ConfigureCalls:  make([]Settings, 0),
	}
}

// Name returns the driver name
func (m *MockDriver) Name() string {
	return m.name
}

// IsInstalled records the call and invokes the mock function if set
func (m *MockDriver) IsInstalled() bool {
	m.IsInstalledCalls++
	if m.IsInstalledFunc != nil {
		return m.IsInstalledFunc()
	}
	return false
}

// HasIniDirective records the call and invokes the mock function if set
func (m *MockDriver) HasIniDirective() bool {
	m.HasIniDirectiveCalls++
	if m.HasIniDirectiveFunc != nil {
		return m.HasIniDirectiveFunc()
	}
	return false
}

// IsEnabled records the call and invokes the mock function if set
func (m *MockDriver) IsEnabled() bool {
	m.IsEnabledCalls++
	if m.IsEnabledFunc != nil {
		return m.IsEnabledFunc()
	}
	return false
}

// SetEnabled records the call and invokes the mock function if set
func (m *MockDriver) SetEnabled(enabled bool) error {
	m.SetEnabledCalls = append(m.SetEnabledCalls, enabled)
	if m.SetEnabledFunc != nil {
		return m.SetEnabledFunc(enabled)
	}
	return nil
}

// Configure records the call and invokes the mock function if set
func (m *MockDriver) Configure(settings Settings) error {
	m.ConfigureCalls = append(m.ConfigureCalls, settings)
	if m.ConfigureFunc != nil {
		return m.ConfigureFunc(settings)
	}
	return nil
}

// Verify records the call and invokes the mock function if set
func (m *MockDriver) Verify() HealthCheck {
	m.VerifyCalls++
	if m.VerifyFunc != nil {
		return m.VerifyFunc()
	}
	return HealthCheck{Healthy: true}
}

// Reset clears all call tracking
func (m *MockDriver) Reset() {
	m.IsInstalledCalls = 0
	m.HasIniDirectiveCalls = 0
	m.IsEnabledCalls = 0
	m.SetEnabledCalls = make([]bool, 0)
	m.ConfigureCalls = make([]Settings, 0)
	m.VerifyCalls = 0
}

// MockIntegrator is a test double for the Integrator interface
type MockIntegrator struct {
	name string

	DetectFunc   func(projectPath string) bool
	GenerateFunc func(drv Driver, projectPath string, settings Settings) error

	DetectCalls   []string
	GenerateCalls int
}

// NewMockIntegrator creates a new MockIntegrator
func NewMockIntegrator(name string) *MockIntegrator {
	return &MockIntegrator{name: name}
}

// Name returns the integrator name
func (m *MockIntegrator) Name() string {
	return m.name
}

// Detect records the call and invokes the mock function if set
func (m *MockIntegrator) Detect(projectPath string) bool {
	m.DetectCalls = append(m.DetectCalls, projectPath)
	if m.DetectFunc != nil {
		return m.DetectFunc(projectPath)
	}
	return false
}

// Generate records the call and invokes the mock function if set
func (m *MockIntegrator) Generate(drv Driver, projectPath string, settings Settings) error {
	m.GenerateCalls++
	if m.GenerateFunc != nil {
		return m.GenerateFunc(drv, projectPath, settings)
	}
	return nil
}
