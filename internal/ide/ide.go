// Package ide provides IDE integrators: detection of the IDE a project
// uses and generation of its debug configuration files.
package ide

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ksyq12/phpdbg/internal/driver"
	"github.com/ksyq12/phpdbg/internal/template"
)

// templateData builds the render data for a driver and settings pair.
// An unresolved "auto" host means the IDE listens on the local machine.
func templateData(drv driver.Driver, projectPath string, s driver.Settings) template.Data {
	host := s.ClientHost
	if host == "" || host == driver.DefaultClientHost {
		host = "localhost"
	}
	port := s.ClientPort
	if port == 0 {
		port = driver.DefaultClientPort
	}
	ideKey := s.IdeKey
	if ideKey == "" {
		ideKey = driver.DefaultIdeKey
	}
	return template.Data{
		Extension: drv.Name(),
		Host:      host,
		Port:      port,
		IdeKey:    ideKey,
		Project:   projectPath,
	}
}

// writeConfig renders an IDE template and writes it below the project.
func writeConfig(ide string, data template.Data, relPath string) error {
	content, err := template.Render(ide, data)
	if err != nil {
		return err
	}
	target := filepath.Join(data.Project, relPath)
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return fmt.Errorf("failed to create %s directory: %w", filepath.Dir(relPath), err)
	}
	if err := os.WriteFile(target, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", relPath, err)
	}
	return nil
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// VSCode generates .vscode/launch.json debug configurations.
type VSCode struct{}

// Name returns the integrator name.
func (v *VSCode) Name() string { return "vscode" }

// Detect reports whether the project carries a .vscode directory.
func (v *VSCode) Detect(projectPath string) bool {
	return dirExists(filepath.Join(projectPath, ".vscode"))
}

// Generate writes the VS Code launch configuration.
func (v *VSCode) Generate(drv driver.Driver, projectPath string, settings driver.Settings) error {
	return writeConfig("vscode", templateData(drv, projectPath, settings), filepath.Join(".vscode", "launch.json"))
}

// PhpStorm generates .idea/php-debug.xml debug settings.
type PhpStorm struct{}

// Name returns the integrator name.
func (p *PhpStorm) Name() string { return "phpstorm" }

// Detect reports whether the project carries an .idea directory.
func (p *PhpStorm) Detect(projectPath string) bool {
	return dirExists(filepath.Join(projectPath, ".idea"))
}

// Generate writes the PhpStorm debug settings file.
func (p *PhpStorm) Generate(drv driver.Driver, projectPath string, settings driver.Settings) error {
	return writeConfig("phpstorm", templateData(drv, projectPath, settings), filepath.Join(".idea", "php-debug.xml"))
}

// Sublime generates a <project>.sublime-project with xdebug settings.
type Sublime struct{}

// Name returns the integrator name.
func (s *Sublime) Name() string { return "sublime" }

// Detect reports whether the project carries a sublime-project file.
func (s *Sublime) Detect(projectPath string) bool {
	matches, err := filepath.Glob(filepath.Join(projectPath, "*.sublime-project"))
	return err == nil && len(matches) > 0
}

// Generate writes the Sublime project file, named after the project
// directory.
func (s *Sublime) Generate(drv driver.Driver, projectPath string, settings driver.Settings) error {
	abs, err := filepath.Abs(projectPath)
	if err != nil {
		return err
	}
	name := filepath.Base(abs) + ".sublime-project"
	return writeConfig("sublime", templateData(drv, projectPath, settings), name)
}
