package cli

import (
	"errors"
	"strings"

	"github.com/ksyq12/phpdbg/internal/config"
)

// MockConfigLoader is a test double for ConfigLoader
type MockConfigLoader struct {
	Cfg       *config.Config
	LoadErr   error
	SaveErr   error
	SaveCalls int
}

func (m *MockConfigLoader) Load() (*config.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.Cfg == nil {
		m.Cfg = config.New()
	}
	return m.Cfg, nil
}

func (m *MockConfigLoader) Save(cfg *config.Config) error {
	m.SaveCalls++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Cfg = cfg
	return nil
}

// MockEngineBuilder is a test double for EngineBuilder
type MockEngineBuilder struct {
	Engine *Engine
}

func (m *MockEngineBuilder) Build() *Engine {
	return m.Engine
}

// MockDepsBuilder assembles Dependencies for tests
type MockDepsBuilder struct {
	deps *Dependencies
}

// NewMockDeps creates a builder with all dependencies mocked
func NewMockDeps() *MockDepsBuilder {
	return &MockDepsBuilder{deps: &Dependencies{
		ConfigLoader: &MockConfigLoader{},
		Engine:       &MockEngineBuilder{},
		StdinReader:  &MockStdinReader{},
	}}
}

// WithConfig seeds the mock config loader
func (b *MockDepsBuilder) WithConfig(cfg *config.Config) *MockDepsBuilder {
	b.deps.ConfigLoader = &MockConfigLoader{Cfg: cfg}
	return b
}

// WithEngine sets the engine the mock builder returns
func (b *MockDepsBuilder) WithEngine(engine *Engine) *MockDepsBuilder {
	b.deps.Engine = &MockEngineBuilder{Engine: engine}
	return b
}

// WithInput pre-loads stdin content
func (b *MockDepsBuilder) WithInput(in string) *MockDepsBuilder {
	b.deps.StdinReader = &MockStdinReader{Input: in}
	return b
}

// Build returns the assembled dependencies
func (b *MockDepsBuilder) Build() *Dependencies {
	return b.deps
}

// MockStdinReader is a test double for StdinReader
type MockStdinReader struct {
	Input string
	pos   int
}

func (m *MockStdinReader) ReadString(delim byte) (string, error) {
	if m.pos >= len(m.Input) {
		return "", errors.New("EOF")
	}
	idx := strings.IndexByte(m.Input[m.pos:], delim)
	if idx == -1 {
		result := m.Input[m.pos:]
		m.pos = len(m.Input)
		return result, nil
	}
	result := m.Input[m.pos : m.pos+idx+1]
	m.pos += idx + 1
	return result, nil
}
