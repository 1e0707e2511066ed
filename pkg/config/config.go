// Package config resolves droid.yaml, go.mod defaults and DROID_* environment
// overrides into the settings used to launch an app.
package config

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/droid/pkg/errors"
	"github.com/go-drift/droid/pkg/extras"
	"github.com/go-drift/droid/pkg/logging"
)

// FileName is the optional per-project configuration file.
const FileName = "droid.yaml"

// Backend names accepted in droid.yaml and DROID_BACKEND.
const (
	BackendConsole  = "console"
	BackendTerminal = "terminal"
	BackendSnapshot = "snapshot"
)

// Config represents the optional droid.yaml configuration.
type Config struct {
	App     AppConfig   `yaml:"app"`
	Log     LogConfig   `yaml:"log"`
	Start   StartConfig `yaml:"start"`
	Backend string      `yaml:"backend,omitempty"`
}

// AppConfig contains application metadata.
type AppConfig struct {
	Name    string `yaml:"name,omitempty"`
	Package string `yaml:"package,omitempty"`
}

// LogConfig contains logger settings.
type LogConfig struct {
	Level       string `yaml:"level,omitempty"`
	Development bool   `yaml:"development,omitempty"`
}

// StartConfig names the first activity and the extras it receives.
type StartConfig struct {
	Activity string         `yaml:"activity,omitempty"`
	Extras   map[string]any `yaml:"extras,omitempty"`
}

// Env holds DROID_* overrides. Unset variables leave the file value alone.
type Env struct {
	LogLevel string `envconfig:"LOG_LEVEL"`
	LogDev   *bool  `envconfig:"LOG_DEV"`
	Backend  string `envconfig:"BACKEND"`
	Start    string `envconfig:"START"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root          string
	ModulePath    string
	AppName       string
	PackageID     string
	LogLevel      string
	LogDev        bool
	Backend       string
	StartActivity string
	StartExtras   *extras.Extras
}

// Logging returns the logger configuration for r.
func (r *Resolved) Logging() logging.Config {
	cfg := logging.DefaultConfig()
	if r.LogDev {
		cfg = logging.DevelopmentConfig()
	}
	if r.LogLevel != "" {
		cfg.Level = r.LogLevel
	}
	return cfg
}

// LoadOptional reads droid.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, errors.Wrap("config.Load", errors.KindConfig, fmt.Errorf("failed to read %s: %w", FileName, err))
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap("config.Load", errors.KindConfig, fmt.Errorf("failed to parse %s: %w", FileName, err))
	}
	return &cfg, nil
}

// LoadEnv reads DROID_* variables.
func LoadEnv() (*Env, error) {
	var env Env
	if err := envconfig.Process("droid", &env); err != nil {
		return nil, errors.Wrap("config.LoadEnv", errors.KindConfig, err)
	}
	return &env, nil
}

// Resolve loads droid.yaml and the environment, and fills defaults. A
// missing go.mod is tolerated; names then derive from the directory.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}
	env, err := LoadEnv()
	if err != nil {
		return nil, err
	}
	return resolve(dir, cfg, env)
}

func resolve(dir string, cfg *Config, env *Env) (*Resolved, error) {
	const op = "config.Resolve"

	modPath, err := modulePath(dir)
	if err != nil && !stderrors.Is(err, os.ErrNotExist) {
		return nil, errors.Wrap(op, errors.KindConfig, err)
	}

	appName := strings.TrimSpace(cfg.App.Name)
	if appName == "" {
		appName = defaultAppName(modPath, dir)
	}

	packageID := strings.TrimSpace(cfg.App.Package)
	if packageID == "" {
		packageID = defaultPackageID(modPath, appName)
	}
	if err := validatePackageID(packageID); err != nil {
		return nil, errors.Wrap(op, errors.KindConfig, err)
	}

	r := &Resolved{
		Root:          dir,
		ModulePath:    modPath,
		AppName:       appName,
		PackageID:     packageID,
		LogLevel:      strings.TrimSpace(cfg.Log.Level),
		LogDev:        cfg.Log.Development,
		Backend:       strings.TrimSpace(cfg.Backend),
		StartActivity: strings.TrimSpace(cfg.Start.Activity),
	}

	if env.LogLevel != "" {
		r.LogLevel = env.LogLevel
	}
	if env.LogDev != nil {
		r.LogDev = *env.LogDev
	}
	if env.Backend != "" {
		r.Backend = env.Backend
	}
	if env.Start != "" {
		r.StartActivity = env.Start
	}

	if r.LogLevel == "" {
		r.LogLevel = "info"
	}
	if _, err := logging.ParseLevel(r.LogLevel); err != nil {
		return nil, errors.Wrap(op, errors.KindConfig, err)
	}
	if r.Backend == "" {
		r.Backend = BackendConsole
	}
	switch r.Backend {
	case BackendConsole, BackendTerminal, BackendSnapshot:
	default:
		return nil, errors.Wrap(op, errors.KindConfig, fmt.Errorf("unknown backend %q (want %s, %s or %s)",
			r.Backend, BackendConsole, BackendTerminal, BackendSnapshot))
	}
	if r.StartActivity == "" {
		r.StartActivity = "main"
	}

	r.StartExtras, err = extras.FromMap(cfg.Start.Extras)
	if err != nil {
		return nil, errors.Wrap(op, errors.KindConfig, fmt.Errorf("start.extras: %w", err))
	}
	return r, nil
}

// FindProjectRoot walks up from the current directory to find go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a Go module (no go.mod found)")
		}
		dir = parent
	}
}

func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return "", err
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}

func defaultAppName(modulePath, dir string) string {
	base := filepath.Base(dir)
	if modName, _, ok := module.SplitPathVersion(modulePath); ok && modName != "" {
		parts := strings.Split(modName, "/")
		base = parts[len(parts)-1]
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "droid_app"
	}
	return base
}

func defaultPackageID(modulePath, appName string) string {
	parts := strings.Split(modulePath, "/")
	if len(parts) < 2 || !strings.Contains(parts[0], ".") {
		return "com.example." + sanitizeSegment(appName)
	}

	host := strings.Split(parts[0], ".")
	for i, j := 0, len(host)-1; i < j; i, j = i+1, j-1 {
		host[i], host[j] = host[j], host[i]
	}

	segments := host
	for _, p := range parts[1:] {
		if p != "" {
			segments = append(segments, p)
		}
	}
	for i, segment := range segments {
		segments[i] = sanitizeSegment(segment)
	}
	return strings.Join(segments, ".")
}

// sanitizeSegment lowercases segment and keeps [a-z0-9_]. Hyphens become
// underscores, and a leading digit is prefixed with 'a'.
func sanitizeSegment(segment string) string {
	segment = strings.TrimSpace(segment)

	var out []rune
	for _, r := range segment {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			out = append(out, r)
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
		case r == '-':
			out = append(out, '_')
		}
	}
	for len(out) > 0 && out[0] == '_' {
		out = out[1:]
	}

	if len(out) == 0 {
		return "app"
	}
	if out[0] >= '0' && out[0] <= '9' {
		out = append([]rune{'a'}, out...)
	}
	return string(out)
}

func validatePackageID(id string) error {
	if !strings.Contains(id, ".") {
		return fmt.Errorf("app.package must contain at least one '.' (got %q)", id)
	}
	for _, segment := range strings.Split(id, ".") {
		if segment == "" {
			return fmt.Errorf("app.package contains an empty segment (%q)", id)
		}
		if segment[0] >= '0' && segment[0] <= '9' {
			return fmt.Errorf("app.package segments cannot start with a digit (%q)", id)
		}
		if segment[0] == '_' {
			return fmt.Errorf("app.package segments cannot start with '_' (%q)", id)
		}
		for _, r := range segment {
			if !(r == '_' || r >= 'a' && r <= 'z' || r >= '0' && r <= '9') {
				return fmt.Errorf("app.package contains invalid character %q in %q", r, id)
			}
		}
	}
	return nil
}
