// Package templates provides the embedded source templates the gen command
// writes into a target project.
package templates

import (
	"embed"
	"fmt"
	"strings"
	"text/template"
)

//go:embed gen/*
var FS embed.FS

// Data contains the values substituted into the scaffold templates.
type Data struct {
	ModulePath string // e.g. "github.com/user/myapp"
	AppName    string // e.g. "myapp"
}

// ReadFile returns the raw contents of an embedded template.
func ReadFile(path string) ([]byte, error) {
	return FS.ReadFile(path)
}

// Render processes the embedded template at path with the given data.
func Render(path string, data Data) (string, error) {
	content, err := FS.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read template %s: %w", path, err)
	}
	tmpl, err := template.New(path).Parse(string(content))
	if err != nil {
		return "", fmt.Errorf("failed to parse template %s: %w", path, err)
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("failed to render template %s: %w", path, err)
	}
	return b.String(), nil
}
