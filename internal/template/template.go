package template

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed templates/*.tmpl
var ideTemplates embed.FS

// Data contains the values available to IDE templates.
type Data struct {
	Extension string
	Host      string
	Port      int
	IdeKey    string
	Project   string
}

// Render renders the named IDE's template with the given data.
func Render(ide string, data Data) (string, error) {
	content, err := ideTemplates.ReadFile(fmt.Sprintf("templates/%s.tmpl", ide))
	if err != nil {
		return "", fmt.Errorf("template not found: %s", ide)
	}

	tmpl, err := template.New(ide).Parse(string(content))
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render template: %w", err)
	}
	return buf.String(), nil
}

// Available returns the IDE names with an embedded template.
func Available() []string {
	entries, err := fs.Glob(ideTemplates, "templates/*.tmpl")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := strings.TrimSuffix(strings.TrimPrefix(entry, "templates/"), ".tmpl")
		names = append(names, name)
	}
	return names
}
