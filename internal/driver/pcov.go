package driver

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ksyq12/phpdbg/internal/logger"
	"github.com/ksyq12/phpdbg/internal/platform"
)

// Pcov identity.
const (
	pcovName      = "pcov"
	pcovPattern   = `extension\s*=\s*"?[^";\s]*pcov`
	pcovStartMark = "; phpdbg:pcov:begin"
	pcovEndMark   = "; phpdbg:pcov:end"
)

// xdebugModeLine matches an xdebug.mode directive line, commented or
// not, capturing everything up to the value separately from the value.
var xdebugModeLine = regexp.MustCompile(`(?m)^([ \t]*;?[ \t]*xdebug\.mode[ \t]*=[ \t]*)(.*)$`)

// PcovDriver configures the Pcov code-coverage extension.
type PcovDriver struct {
	extension
}

// NewPcov creates a Pcov driver bound to the given environment.
func NewPcov(env *platform.Detector) *PcovDriver {
	return &PcovDriver{extension{
		env:       env,
		name:      pcovName,
		pattern:   pcovPattern,
		prefix:    "extension=",
		startMark: pcovStartMark,
		endMark:   pcovEndMark,
	}}
}

// Configure rewrites the Pcov settings block in php.ini. Before the
// block is appended, any xdebug.mode line has its coverage token removed
// so that Xdebug's coverage collection does not shadow Pcov. Inherited
// behavior: the rewrite happens silently apart from a warning log line.
func (d *PcovDriver) Configure(settings Settings) error {
	return configureViaBlock(&d.extension, settings, d.neutralizeXdebugCoverage, d.buildBlock)
}

// neutralizeXdebugCoverage removes the coverage token from every
// xdebug.mode line. The mode value is a comma-separated list; the
// remaining tokens keep their order. When removal empties the list the
// mode is set to off.
func (d *PcovDriver) neutralizeXdebugCoverage(content string) string {
	rewritten := xdebugModeLine.ReplaceAllStringFunc(content, func(line string) string {
		m := xdebugModeLine.FindStringSubmatch(line)
		prefix, value := m[1], m[2]

		var kept []string
		for _, token := range strings.Split(value, ",") {
			t := strings.TrimSpace(token)
			if t == "" || strings.EqualFold(t, "coverage") {
				continue
			}
			kept = append(kept, t)
		}
		if len(kept) == 0 {
			return prefix + "off"
		}
		return prefix + strings.Join(kept, ",")
	})
	if rewritten != content {
		logger.Warn("removed coverage from xdebug.mode while configuring pcov")
	}
	return rewritten
}

func (d *PcovDriver) buildBlock(s Settings) string {
	var b strings.Builder
	b.WriteString(d.startMark + "\n")
	b.WriteString(d.prefix + d.name + "\n")
	b.WriteString("pcov.enabled = 1\n")
	b.WriteString("pcov.directory = .\n")
	b.WriteString(d.endMark + "\n")
	return b.String()
}

// Verify checks the written pcov.enabled flag and that Xdebug's mode no
// longer claims coverage collection.
func (d *PcovDriver) Verify() HealthCheck {
	if !d.IsInstalled() {
		return HealthCheck{Checks: []Check{
			{Status: CheckFail, Message: "pcov extension is not loaded by the PHP runtime"},
		}}
	}

	content, ok := d.readIni()
	if !ok {
		return HealthCheck{Checks: []Check{
			{Status: CheckFail, Message: "php.ini could not be located or read"},
		}}
	}

	hc := HealthCheck{Healthy: true}

	enabled, enabledSet := directiveValue(content, "pcov.enabled")
	if enabledSet && (enabled == "1" || strings.EqualFold(enabled, "on")) {
		hc.Checks = append(hc.Checks, Check{CheckPass, fmt.Sprintf("pcov.enabled = %s", enabled)})
	} else {
		hc.Healthy = false
		hc.Checks = append(hc.Checks, Check{CheckFail, "pcov.enabled is not 1"})
	}

	if mode, ok := directiveValue(content, "xdebug.mode"); ok && containsToken(mode, "coverage") {
		hc.Healthy = false
		hc.Checks = append(hc.Checks, Check{CheckFail, fmt.Sprintf("xdebug.mode still includes coverage (%s)", mode)})
	} else {
		hc.Checks = append(hc.Checks, Check{CheckPass, "xdebug.mode does not include coverage"})
	}
	return hc
}

// containsToken reports whether a comma-separated list contains token.
func containsToken(list, token string) bool {
	for _, t := range strings.Split(list, ",") {
		if strings.EqualFold(strings.TrimSpace(t), token) {
			return true
		}
	}
	return false
}
