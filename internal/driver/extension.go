package driver

import (
	"os"
	"regexp"
	"strings"

	"github.com/ksyq12/phpdbg/internal/errors"
	"github.com/ksyq12/phpdbg/internal/ini"
	"github.com/ksyq12/phpdbg/internal/platform"
)

// extension holds the identity every concrete driver shares: the name,
// the directive pattern, the load-directive prefix, and the block
// markers. Concrete drivers embed it and add their Configure/Verify
// behavior on top. These are data fields set once at construction, not
// per-driver constants, so tests can build variants without subclassing.
type extension struct {
	env       *platform.Detector
	name      string
	pattern   string
	prefix    string
	startMark string
	endMark   string
}

// Name returns the stable extension identifier.
func (e *extension) Name() string {
	return e.name
}

// Env exposes the environment detector the driver was built with.
func (e *extension) Env() *platform.Detector {
	return e.env
}

// DirectivePattern returns the regular expression matching the
// extension's load directive.
func (e *extension) DirectivePattern() string {
	return e.pattern
}

// IsInstalled reports whether the runtime has the extension loaded.
func (e *extension) IsInstalled() bool {
	return e.env.ExtensionLoaded(e.name)
}

// HasIniDirective reports whether a load directive exists in php.ini,
// commented or not. Degrades to false when php.ini is unavailable.
func (e *extension) HasIniDirective() bool {
	content, ok := e.readIni()
	return ok && ini.HasLine(content, e.pattern)
}

// IsEnabled reports whether the load directive exists uncommented.
// Degrades to false when php.ini is unavailable.
func (e *extension) IsEnabled() bool {
	content, ok := e.readIni()
	return ok && ini.IsLineEnabled(content, e.pattern)
}

// readIni reads the detected php.ini for a status query. The boolean is
// false when the file cannot be located or read; status queries treat
// that as "not present" rather than failing.
func (e *extension) readIni() (string, bool) {
	path, ok := e.env.FindPhpIni()
	if !ok {
		return "", false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	return string(data), true
}

// SetEnabled enables or disables the extension's load directive. On
// enable an existing (possibly commented) directive is uncommented,
// otherwise a fresh one is appended with the driver's prefix. On
// disable the directive is commented out if present.
func (e *extension) SetEnabled(enabled bool) error {
	path, ok := e.env.FindPhpIni()
	if !ok {
		return errors.IniNotFound(e.name)
	}
	if err := checkWritable(path); err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return errors.WrapExtension(errors.ErrCodeIniRead, e.name, "failed to read php.ini", err)
	}
	content := string(data)

	if enabled {
		if ini.HasLine(content, e.pattern) {
			content = ini.UncommentLine(content, e.pattern)
		} else {
			content = ini.AppendLine(content, e.prefix+e.name)
		}
	} else if ini.HasLine(content, e.pattern) {
		content = ini.CommentLine(content, e.pattern)
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return errors.WrapExtension(errors.ErrCodeIniWrite, e.name, "failed to write php.ini", err)
	}
	return nil
}

// checkWritable fails fast when the ini file cannot be opened for
// writing, so no transform work is done against a read-only target.
func checkWritable(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return errors.IniNotWritable(path, err)
	}
	return f.Close()
}

// directiveValue returns the value of the last uncommented occurrence of
// key in content. Last wins because a driver's own block is appended at
// the end of the file and must take precedence over earlier definitions.
func directiveValue(content, key string) (string, bool) {
	re := regexp.MustCompile(`(?m)^[ \t]*` + regexp.QuoteMeta(key) + `[ \t]*=[ \t]*(.*)$`)
	matches := re.FindAllStringSubmatch(content, -1)
	if len(matches) == 0 {
		return "", false
	}
	value := strings.TrimSpace(matches[len(matches)-1][1])
	value = strings.Trim(value, `"'`)
	return value, true
}
