package cli

import (
	"bufio"
	"os"

	"github.com/ksyq12/phpdbg/internal/config"
	"github.com/ksyq12/phpdbg/internal/driver"
	"github.com/ksyq12/phpdbg/internal/executor"
	"github.com/ksyq12/phpdbg/internal/ide"
	"github.com/ksyq12/phpdbg/internal/installer"
	"github.com/ksyq12/phpdbg/internal/platform"
)

// Dependencies aggregates all CLI external dependencies for testability
type Dependencies struct {
	ConfigLoader ConfigLoader
	Engine       EngineBuilder
	StdinReader  StdinReader
}

// ConfigLoader handles configuration loading and saving
type ConfigLoader interface {
	Load() (*config.Config, error)
	Save(cfg *config.Config) error
}

// EngineBuilder assembles the wired core components
type EngineBuilder interface {
	Build() *Engine
}

// StdinReader reads from stdin
type StdinReader interface {
	ReadString(delim byte) (string, error)
}

// Engine bundles the detector, driver registry, advisor and installation
// service that the commands operate on.
type Engine struct {
	Env     *platform.Detector
	Manager *driver.Manager
	Advisor *installer.Advisor
	Service *installer.Service
}

// Package-level dependencies (can be overridden for testing)
var deps = &Dependencies{
	ConfigLoader: &realConfigLoader{},
	Engine:       &realEngineBuilder{},
	StdinReader:  &realStdinReader{},
}

// SetDeps replaces the package dependencies (for testing)
func SetDeps(d *Dependencies) {
	deps = d
}

// GetDeps returns the current dependencies (for testing)
func GetDeps() *Dependencies {
	return deps
}

// Real implementations that delegate to existing packages

type realConfigLoader struct{}

func (r *realConfigLoader) Load() (*config.Config, error) {
	return config.Load()
}

func (r *realConfigLoader) Save(cfg *config.Config) error {
	return cfg.Save()
}

type realEngineBuilder struct{}

func (r *realEngineBuilder) Build() *Engine {
	exec := executor.NewSystemExecutor()
	env := platform.NewDetector(exec)

	m := driver.NewManager()
	m.RegisterDebugger(driver.NewXdebug(env))
	m.RegisterDebugger(driver.NewPcov(env))
	m.RegisterIntegrator(&ide.VSCode{})
	m.RegisterIntegrator(&ide.PhpStorm{})
	m.RegisterIntegrator(&ide.Sublime{})

	advisor := installer.NewAdvisor(env)
	service := installer.NewService(advisor, installer.NewInstaller(advisor, exec))

	return &Engine{Env: env, Manager: m, Advisor: advisor, Service: service}
}

type realStdinReader struct {
	reader *bufio.Reader
}

func (r *realStdinReader) ReadString(delim byte) (string, error) {
	if r.reader == nil {
		r.reader = bufio.NewReader(os.Stdin)
	}
	return r.reader.ReadString(delim)
}
