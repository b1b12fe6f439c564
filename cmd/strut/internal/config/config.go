// Package config resolves project-level CLI settings from an optional
// strut.yaml plus the enclosing Go module, if any.
package config

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"

	struterrors "github.com/go-strut/strut/pkg/errors"
)

// Default viewport used when neither strut.yaml nor flags provide one.
const (
	DefaultWidth  = 800.0
	DefaultHeight = 600.0
)

// Config represents the optional strut.yaml configuration.
type Config struct {
	App      AppConfig      `yaml:"app"`
	Viewport ViewportConfig `yaml:"viewport"`
}

// AppConfig contains project metadata.
type AppConfig struct {
	Name string `yaml:"name,omitempty"`
}

// ViewportConfig sets the default layout viewport.
type ViewportConfig struct {
	Width  float64 `yaml:"width,omitempty"`
	Height float64 `yaml:"height,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root           string
	ModulePath     string
	AppName        string
	ViewportWidth  float64
	ViewportHeight float64
}

// LoadOptional reads strut.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, "strut.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, struterrors.Wrap("config.LoadOptional", struterrors.KindConfig, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, struterrors.New("config.LoadOptional", struterrors.KindConfig,
			"failed to parse strut.yaml: %v", err)
	}

	return &cfg, nil
}

// Resolve loads strut.yaml (if present) and fills in defaults. A missing
// go.mod is not an error; ModulePath stays empty outside a module.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	if cfg.Viewport.Width < 0 || cfg.Viewport.Height < 0 {
		return nil, struterrors.New("config.Resolve", struterrors.KindConfig,
			"viewport must be non-negative (got %gx%g)", cfg.Viewport.Width, cfg.Viewport.Height)
	}

	width := cfg.Viewport.Width
	if width == 0 {
		width = DefaultWidth
	}
	height := cfg.Viewport.Height
	if height == 0 {
		height = DefaultHeight
	}

	modulePath := modulePath(dir)

	appName := strings.TrimSpace(cfg.App.Name)
	if appName == "" {
		appName = defaultAppName(modulePath, dir)
	}

	return &Resolved{
		Root:           dir,
		ModulePath:     modulePath,
		AppName:        appName,
		ViewportWidth:  width,
		ViewportHeight: height,
	}, nil
}

// FindProjectRoot walks up from the current directory to a directory
// holding strut.yaml or go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		for _, marker := range []string{"strut.yaml", "go.mod"} {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a strut project (no strut.yaml or go.mod found)")
		}
		dir = parent
	}
}

func modulePath(dir string) string {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return ""
	}
	return modfile.ModulePath(data)
}

func defaultAppName(modulePath, dir string) string {
	base := filepath.Base(dir)
	modName, _, ok := module.SplitPathVersion(modulePath)
	if ok && modName != "" {
		parts := strings.Split(modName, "/")
		if len(parts) > 0 {
			base = parts[len(parts)-1]
		}
	}
	if base == "" || base == "." {
		return "strut_app"
	}
	return base
}
