package driver

import (
	"github.com/ksyq12/phpdbg/internal/errors"
)

// Manager is a registry mapping extension names to drivers and IDE names
// to integrators. Registration order is preserved for listing and for
// IDE detection, which returns the first match.
type Manager struct {
	debuggerNames   []string
	debuggers       map[string]Driver
	integratorNames []string
	integrators     map[string]Integrator
}

// NewManager creates an empty registry.
func NewManager() *Manager {
	return &Manager{
		debuggers:   make(map[string]Driver),
		integrators: make(map[string]Integrator),
	}
}

// RegisterDebugger adds a driver to the registry. Re-registering a name
// replaces the driver but keeps its original position.
func (m *Manager) RegisterDebugger(d Driver) {
	if _, ok := m.debuggers[d.Name()]; !ok {
		m.debuggerNames = append(m.debuggerNames, d.Name())
	}
	m.debuggers[d.Name()] = d
}

// RegisterIntegrator adds an IDE integrator to the registry.
func (m *Manager) RegisterIntegrator(i Integrator) {
	if _, ok := m.integrators[i.Name()]; !ok {
		m.integratorNames = append(m.integratorNames, i.Name())
	}
	m.integrators[i.Name()] = i
}

// Debugger resolves a driver by name.
func (m *Manager) Debugger(name string) (Driver, error) {
	d, ok := m.debuggers[name]
	if !ok {
		return nil, errors.UnknownName(name, m.DebuggerNames())
	}
	return d, nil
}

// Integrator resolves an IDE integrator by name.
func (m *Manager) Integrator(name string) (Integrator, error) {
	i, ok := m.integrators[name]
	if !ok {
		return nil, errors.UnknownName(name, m.IntegratorNames())
	}
	return i, nil
}

// DebuggerNames lists registered driver names in registration order.
func (m *Manager) DebuggerNames() []string {
	return append([]string(nil), m.debuggerNames...)
}

// IntegratorNames lists registered integrator names in registration order.
func (m *Manager) IntegratorNames() []string {
	return append([]string(nil), m.integratorNames...)
}

// Debuggers lists registered drivers in registration order.
func (m *Manager) Debuggers() []Driver {
	drivers := make([]Driver, 0, len(m.debuggerNames))
	for _, name := range m.debuggerNames {
		drivers = append(drivers, m.debuggers[name])
	}
	return drivers
}

// InstalledDebuggers filters to drivers that are usable or at least
// present: either the runtime has them loaded or php.ini carries their
// directive.
func (m *Manager) InstalledDebuggers() []Driver {
	var installed []Driver
	for _, name := range m.debuggerNames {
		d := m.debuggers[name]
		if d.IsInstalled() || d.HasIniDirective() {
			installed = append(installed, d)
		}
	}
	return installed
}

// DetectIDE returns the first registered integrator whose detection
// predicate matches the project, or nil when none does.
func (m *Manager) DetectIDE(projectPath string) Integrator {
	for _, name := range m.integratorNames {
		if i := m.integrators[name]; i.Detect(projectPath) {
			return i
		}
	}
	return nil
}
