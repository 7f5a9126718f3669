package driver

import (
	"fmt"
	"strings"

	"github.com/ksyq12/phpdbg/internal/platform"
)

// Xdebug identity. The directive pattern matches the zend_extension line
// whether it names the bare extension or a full .so/.dll path.
const (
	xdebugName      = "xdebug"
	xdebugPattern   = `zend_extension\s*=\s*"?[^";\s]*xdebug`
	xdebugStartMark = "; phpdbg:xdebug:begin"
	xdebugEndMark   = "; phpdbg:xdebug:end"
)

// XdebugDriver configures the Xdebug step debugger.
type XdebugDriver struct {
	extension
}

// NewXdebug creates an Xdebug driver bound to the given environment.
func NewXdebug(env *platform.Detector) *XdebugDriver {
	return &XdebugDriver{extension{
		env:       env,
		name:      xdebugName,
		pattern:   xdebugPattern,
		prefix:    "zend_extension=",
		startMark: xdebugStartMark,
		endMark:   xdebugEndMark,
	}}
}

// Configure rewrites the Xdebug settings block in php.ini. An "auto"
// client host is resolved through the detector's Docker-aware lookup.
func (d *XdebugDriver) Configure(settings Settings) error {
	return configureViaBlock(&d.extension, settings, nil, d.buildBlock)
}

func (d *XdebugDriver) buildBlock(s Settings) string {
	s = s.withDefaults()
	host := s.ClientHost
	if host == DefaultClientHost {
		host = d.env.ClientHost()
	}

	var b strings.Builder
	b.WriteString(d.startMark + "\n")
	b.WriteString(d.prefix + d.name + "\n")
	fmt.Fprintf(&b, "xdebug.mode = %s\n", s.Mode)
	fmt.Fprintf(&b, "xdebug.client_host = %s\n", host)
	fmt.Fprintf(&b, "xdebug.client_port = %d\n", s.ClientPort)
	b.WriteString("xdebug.start_with_request = yes\n")
	fmt.Fprintf(&b, "xdebug.idekey = %s\n", s.IdeKey)
	b.WriteString(d.endMark + "\n")
	return b.String()
}

// Verify inspects the directives actually written to php.ini, not just
// what the running PHP process loaded, so configuration written but not
// yet picked up by a restart is still verifiable.
func (d *XdebugDriver) Verify() HealthCheck {
	if !d.IsInstalled() {
		return HealthCheck{Checks: []Check{
			{Status: CheckFail, Message: "xdebug extension is not loaded by the PHP runtime"},
		}}
	}

	content, ok := d.readIni()
	if !ok {
		return HealthCheck{Checks: []Check{
			{Status: CheckFail, Message: "php.ini could not be located or read"},
		}}
	}

	hc := HealthCheck{Healthy: true}

	mode, modeSet := directiveValue(content, "xdebug.mode")
	switch {
	case !modeSet:
		hc.Healthy = false
		hc.Checks = append(hc.Checks, Check{CheckFail, "xdebug.mode is not set"})
	case mode == "off":
		hc.Healthy = false
		hc.Checks = append(hc.Checks, Check{CheckFail, "xdebug.mode is off"})
	default:
		hc.Checks = append(hc.Checks, Check{CheckPass, fmt.Sprintf("xdebug.mode = %s", mode)})
	}

	hc.Checks = append(hc.Checks,
		optionalCheck(content, "xdebug.client_host"),
		optionalCheck(content, "xdebug.client_port"),
		optionalCheck(content, "xdebug.start_with_request"),
	)
	return hc
}

// optionalCheck reports a directive's written value, warning when it is
// absent. Absence does not fail the overall health check.
func optionalCheck(content, key string) Check {
	value, ok := directiveValue(content, key)
	if !ok {
		return Check{CheckWarn, fmt.Sprintf("%s is not set", key)}
	}
	return Check{CheckPass, fmt.Sprintf("%s = %s", key, value)}
}
