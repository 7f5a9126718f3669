package driver

import (
	"os"
	"strings"

	"github.com/ksyq12/phpdbg/internal/errors"
)

// configureViaBlock is the shared file-I/O path of every Configure
// implementation: resolve the target php.ini, verify writability, read,
// strip the driver's prior block, run the optional preprocess hook, and
// append the freshly built block in a single write. Drivers supply the
// two strategies (preprocess, build) instead of overriding a base class.
func configureViaBlock(e *extension, settings Settings, preprocess func(content string) string, build func(s Settings) string) error {
	path := settings.PhpIniPath
	if path == "" {
		detected, ok := e.env.FindPhpIni()
		if !ok {
			return errors.IniNotFound(e.name)
		}
		path = detected
	}
	if err := checkWritable(path); err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return errors.WrapExtension(errors.ErrCodeIniRead, e.name, "failed to read php.ini", err)
	}

	content := stripBlock(string(data), e.startMark, e.endMark)
	if preprocess != nil {
		content = preprocess(content)
	}
	if content != "" && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	content += build(settings)

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return errors.WrapExtension(errors.ErrCodeIniWrite, e.name, "failed to write php.ini", err)
	}
	return nil
}

// stripBlock removes every region delimited by the start and end marker
// lines, markers included, plus one trailing newline per region. Content
// without the markers is returned unchanged, and regions owned by other
// extensions (different markers) are never touched. A dangling start
// marker without its end marker is left in place.
func stripBlock(content, startMark, endMark string) string {
	for {
		start := strings.Index(content, startMark)
		if start == -1 {
			return content
		}
		rest := content[start:]
		end := strings.Index(rest, endMark)
		if end == -1 {
			return content
		}
		end += len(endMark)
		if end < len(rest) && rest[end] == '\n' {
			end++
		}
		content = content[:start] + rest[end:]
	}
}
