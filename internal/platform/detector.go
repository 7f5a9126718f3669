// Package platform provides read-only inspection of the host environment:
// operating system classification, Docker detection, PHP installation
// queries, and php.ini discovery.
package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/ksyq12/phpdbg/internal/executor"
	"github.com/ksyq12/phpdbg/internal/ini"
)

// OS classifies the host operating system.
type OS string

// Supported OS classifications. Unrecognized platforms fall back to Linux.
const (
	OSMacOS   OS = "macos"
	OSLinux   OS = "linux"
	OSWindows OS = "windows"
)

// dockerGatewayFallback is used when the default gateway cannot be read
// from the routing table inside a Linux container.
const dockerGatewayFallback = "172.17.0.1"

// Detector inspects the host environment. All methods are read-only.
type Detector struct {
	exec executor.CommandExecutor
	goos string
	root string // filesystem prefix for absolute-path probes, "" for the real root
}

// NewDetector creates a detector for the current platform.
func NewDetector(exec executor.CommandExecutor) *Detector {
	return &Detector{exec: exec, goos: runtime.GOOS}
}

// NewDetectorWithPlatform creates a detector with an explicit GOOS value
// and filesystem root prefix (for testing).
func NewDetectorWithPlatform(exec executor.CommandExecutor, goos, root string) *Detector {
	return &Detector{exec: exec, goos: goos, root: root}
}

// path maps an absolute probe path onto the detector's filesystem root.
func (d *Detector) path(p string) string {
	if d.root == "" {
		return p
	}
	return filepath.Join(d.root, p)
}

// OS returns the host OS classification. Anything that is not macOS or
// Windows is treated as Linux.
func (d *Detector) OS() OS {
	switch d.goos {
	case "darwin":
		return OSMacOS
	case "windows":
		return OSWindows
	default:
		return OSLinux
	}
}

// IsDocker reports whether the process appears to run inside a container.
// It checks for the Docker marker file first and falls back to the init
// process's cgroup membership on Linux.
func (d *Detector) IsDocker() bool {
	if fileExists(d.path("/.dockerenv")) {
		return true
	}
	if d.OS() != OSLinux {
		return false
	}
	data, err := os.ReadFile(d.path("/proc/1/cgroup"))
	if err != nil {
		return false
	}
	cgroup := string(data)
	return strings.Contains(cgroup, "docker") ||
		strings.Contains(cgroup, "kubepods") ||
		strings.Contains(cgroup, "containerd")
}

// IsOfficialPHPImage reports whether the container looks like an official
// PHP Docker image, i.e. one where the extension-enable helper or PECL is
// available. Auto-install in containers is only safe in that case.
func (d *Detector) IsOfficialPHPImage() bool {
	if !d.IsDocker() {
		return false
	}
	return d.HasBinary("docker-php-ext-enable") || d.HasBinary("pecl")
}

// HasBinary reports whether an executable is available on PATH.
func (d *Detector) HasBinary(name string) bool {
	_, err := d.exec.LookPath(name)
	return err == nil
}

// PHPVersion returns the runtime's major.minor version, or "" when PHP
// cannot be queried.
func (d *Detector) PHPVersion() string {
	out, err := d.exec.Execute("php", "-r", `echo PHP_MAJOR_VERSION.".".PHP_MINOR_VERSION;`)
	if err != nil {
		return ""
	}
	version := strings.TrimSpace(string(out))
	if !strings.Contains(version, ".") {
		return ""
	}
	return version
}

// ExtensionLoaded reports whether the PHP runtime lists the extension as
// loaded.
func (d *Detector) ExtensionLoaded(name string) bool {
	out, err := d.exec.Execute("php", "-m")
	if err != nil {
		return false
	}
	for _, line := range strings.Split(string(out), "\n") {
		if strings.EqualFold(strings.TrimSpace(line), name) {
			return true
		}
	}
	return false
}

// FindPhpIni locates the loaded php.ini. It prefers the path the PHP
// runtime reports and falls back to an ordered list of well-known
// locations for the host OS. The boolean is false when no candidate is a
// regular file.
func (d *Detector) FindPhpIni() (string, bool) {
	out, err := d.exec.Execute("php", "-r", "echo php_ini_loaded_file();")
	if err == nil {
		if loaded := strings.TrimSpace(string(out)); loaded != "" && fileExists(loaded) {
			return loaded, true
		}
	}

	for _, candidate := range d.wellKnownIniPaths() {
		if fileExists(candidate) {
			return candidate, true
		}
	}
	return "", false
}

// wellKnownIniPaths returns OS-specific fallback locations, most specific
// first. Version-templated paths are skipped when PHP is not queryable.
func (d *Detector) wellKnownIniPaths() []string {
	version := d.PHPVersion()

	var paths []string
	switch d.OS() {
	case OSMacOS:
		if version != "" {
			paths = append(paths,
				fmt.Sprintf("/opt/homebrew/etc/php/%s/php.ini", version),
				fmt.Sprintf("/usr/local/etc/php/%s/php.ini", version),
			)
		}
		paths = append(paths, "/usr/local/etc/php/php.ini")
	case OSWindows:
		paths = append(paths,
			`C:\php\php.ini`,
			`C:\xampp\php\php.ini`,
			`C:\wamp64\bin\php\php.ini`,
		)
	default:
		if version != "" {
			paths = append(paths,
				fmt.Sprintf("/etc/php/%s/cli/php.ini", version),
				fmt.Sprintf("/etc/php/%s/php.ini", version),
			)
		}
		paths = append(paths,
			"/usr/local/etc/php/php.ini", // official Docker images
			"/etc/php.ini",
		)
	}

	mapped := make([]string, len(paths))
	for i, p := range paths {
		mapped[i] = d.path(p)
	}
	return mapped
}

// ClientHost resolves the host a debugger client should be reached on.
// Outside Docker that is localhost. Inside a Linux container the debugger
// runs on the container's gateway; elsewhere Docker provides the
// host.docker.internal alias.
func (d *Detector) ClientHost() string {
	if !d.IsDocker() {
		return "localhost"
	}
	if d.OS() == OSLinux {
		if gw, ok := d.dockerGateway(); ok {
			return gw
		}
		return dockerGatewayFallback
	}
	return "host.docker.internal"
}

// dockerGateway parses the default route's gateway out of the kernel
// routing table. The gateway field is little-endian hex.
func (d *Detector) dockerGateway() (string, bool) {
	data, err := os.ReadFile(d.path("/proc/net/route"))
	if err != nil {
		return "", false
	}
	for _, line := range strings.Split(string(data), "\n") {
		fields := strings.Fields(line)
		if len(fields) < 3 || fields[1] != "00000000" {
			continue
		}
		gw, err := strconv.ParseUint(fields[2], 16, 32)
		if err != nil || gw == 0 {
			continue
		}
		return fmt.Sprintf("%d.%d.%d.%d",
			byte(gw), byte(gw>>8), byte(gw>>16), byte(gw>>24)), true
	}
	return "", false
}

// AdditionalIniFiles returns the supplementary conf.d-style ini files the
// PHP runtime scanned, in the order PHP reports them.
func (d *Detector) AdditionalIniFiles() []string {
	out, err := d.exec.Execute("php", "-r", "echo php_ini_scanned_files();")
	if err != nil {
		return nil
	}
	var files []string
	for _, part := range strings.Split(string(out), ",") {
		if p := strings.TrimSpace(part); p != "" {
			files = append(files, p)
		}
	}
	return files
}

// FindPatternInAdditionalIni scans the supplementary ini files for a
// directive line matching pattern, commented or not, and returns the
// first file containing one.
func (d *Detector) FindPatternInAdditionalIni(pattern string) (string, bool) {
	return d.scanAdditionalIni(pattern, ini.HasLine)
}

// FindEnabledPatternInAdditionalIni scans the supplementary ini files for
// an uncommented directive line matching pattern and returns the first
// file containing one.
func (d *Detector) FindEnabledPatternInAdditionalIni(pattern string) (string, bool) {
	return d.scanAdditionalIni(pattern, ini.IsLineEnabled)
}

func (d *Detector) scanAdditionalIni(pattern string, match func(content, pattern string) bool) (string, bool) {
	for _, file := range d.AdditionalIniFiles() {
		data, err := os.ReadFile(file)
		if err != nil {
			continue
		}
		if match(string(data), pattern) {
			return file, true
		}
	}
	return "", false
}

// Platform returns a string describing the current platform.
func Platform() string {
	return fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)
}

// fileExists checks if a path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
