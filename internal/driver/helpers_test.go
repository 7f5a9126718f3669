package driver

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ksyq12/phpdbg/internal/executor"
	"github.com/ksyq12/phpdbg/internal/platform"
)

// newTestEnv builds a detector whose PHP runtime reports the given
// loaded extensions and whose php.ini is a real temp file seeded with
// iniContent.
func newTestEnv(t *testing.T, iniContent string, loadedExtensions ...string) (*platform.Detector, string) {
	t.Helper()

	iniPath := filepath.Join(t.TempDir(), "php.ini")
	if err := os.WriteFile(iniPath, []byte(iniContent), 0644); err != nil {
		t.Fatalf("failed to seed php.ini: %v", err)
	}

	exec := &executor.MockExecutor{
		ExecuteFunc: func(name string, args ...string) ([]byte, error) {
			if name != "php" {
				return nil, fmt.Errorf("unexpected command: %s", name)
			}
			if len(args) > 0 && args[0] == "-m" {
				return []byte(strings.Join(loadedExtensions, "\n")), nil
			}
			if len(args) > 1 {
				switch {
				case strings.Contains(args[1], "php_ini_loaded_file"):
					return []byte(iniPath), nil
				case strings.Contains(args[1], "PHP_MAJOR_VERSION"):
					return []byte("8.3"), nil
				case strings.Contains(args[1], "php_ini_scanned_files"):
					return []byte(""), nil
				}
			}
			return nil, fmt.Errorf("unexpected args: %v", args)
		},
	}
	return platform.NewDetectorWithPlatform(exec, "linux", t.TempDir()), iniPath
}

func chmodReadonly(path string) error {
	return os.Chmod(path, 0444)
}

func readIniFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read php.ini: %v", err)
	}
	return string(data)
}
