// Package config resolves the target project's settings for scaffolding.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"
)

// Config represents the optional glint.yaml configuration.
type Config struct {
	App AppConfig `yaml:"app"`
}

// AppConfig contains application metadata.
type AppConfig struct {
	Name string `yaml:"name,omitempty"`
}

// Resolved contains resolved configuration values for a project directory.
type Resolved struct {
	Root       string
	ModulePath string
	AppName    string
}

// LoadOptional reads glint.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	data, err := os.ReadFile(filepath.Join(dir, "glint.yaml"))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read glint.yaml: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse glint.yaml: %w", err)
	}
	return &cfg, nil
}

// Resolve loads glint.yaml (if present) and resolves defaults from go.mod.
func Resolve(dir string) (*Resolved, error) {
	path, err := modulePath(dir)
	if err != nil {
		return nil, err
	}

	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	appName := strings.TrimSpace(cfg.App.Name)
	if appName == "" {
		appName = defaultAppName(path, dir)
	}
	if err := validateAppName(appName); err != nil {
		return nil, err
	}

	return &Resolved{
		Root:       dir,
		ModulePath: path,
		AppName:    appName,
	}, nil
}

func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}

func defaultAppName(modulePath, dir string) string {
	base := filepath.Base(dir)
	modName, _, ok := module.SplitPathVersion(modulePath)
	if ok {
		parts := strings.Split(modName, "/")
		if len(parts) > 0 && parts[len(parts)-1] != "" {
			base = parts[len(parts)-1]
		}
	}
	if base == "" || base == "." {
		return "glint_app"
	}
	return base
}

func validateAppName(name string) error {
	if name == "" {
		return fmt.Errorf("app name cannot be empty")
	}
	for _, r := range name {
		valid := r == '_' || r == '-' ||
			(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
		if !valid {
			return fmt.Errorf("invalid app name %q: use letters, digits, '-' or '_'", name)
		}
	}
	return nil
}
