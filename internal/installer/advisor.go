package installer

import (
	"fmt"

	"github.com/ksyq12/phpdbg/internal/platform"
)

// Advisor produces install commands and instructions for an extension.
// All methods are deterministic given the detector's view of the host;
// nothing is executed.
type Advisor struct {
	env *platform.Detector
}

// NewAdvisor creates an advisor bound to the given environment.
func NewAdvisor(env *platform.Detector) *Advisor {
	return &Advisor{env: env}
}

// InstallCommand returns the shell command that installs the extension
// on this host, or "" when no unattended one-liner exists (Windows).
func (a *Advisor) InstallCommand(extension string) string {
	if a.env.IsDocker() {
		return fmt.Sprintf("pecl install %s && docker-php-ext-enable %s", extension, extension)
	}

	switch a.env.OS() {
	case platform.OSMacOS:
		return fmt.Sprintf("pecl install %s", extension)
	case platform.OSWindows:
		return ""
	default:
		if a.env.HasBinary("apt-get") {
			if version := a.env.PHPVersion(); version != "" {
				return fmt.Sprintf("sudo apt-get install -y php%s-%s", version, extension)
			}
			return fmt.Sprintf("sudo apt-get install -y php-%s", extension)
		}
		return fmt.Sprintf("sudo pecl install %s", extension)
	}
}

// Instructions returns human-readable install guidance for the host.
func (a *Advisor) Instructions(extension string) []string {
	switch {
	case a.env.IsDocker():
		return []string{
			"Add this to your Dockerfile and rebuild the image:",
			"  " + a.DockerfileCommand(extension),
		}
	case a.env.OS() == platform.OSWindows:
		return []string{
			fmt.Sprintf("Download the %s DLL matching your PHP version from https://pecl.php.net/package/%s,", extension, extension),
			"place it in your PHP ext directory, then add the load directive to php.ini.",
		}
	case a.env.OS() == platform.OSMacOS:
		return []string{
			fmt.Sprintf("Install %s through PECL (shipped with Homebrew PHP):", extension),
			fmt.Sprintf("  pecl install %s", extension),
		}
	default:
		return []string{
			fmt.Sprintf("Install %s with your package manager, e.g.:", extension),
			"  " + a.InstallCommand(extension),
		}
	}
}

// DockerfileCommand returns the RUN line that bakes the extension into a
// PHP Docker image.
func (a *Advisor) DockerfileCommand(extension string) string {
	return fmt.Sprintf("RUN pecl install %s && docker-php-ext-enable %s", extension, extension)
}

// CanAutoInstall reports whether running the install command unattended
// is safe on this host. Disabled on Windows (no one-liner) and inside
// Docker unless the container is an official PHP image with the PECL
// tooling present.
func (a *Advisor) CanAutoInstall(extension string) bool {
	if a.env.OS() == platform.OSWindows {
		return false
	}
	if a.env.IsDocker() && !a.env.IsOfficialPHPImage() {
		return false
	}
	return a.InstallCommand(extension) != ""
}
