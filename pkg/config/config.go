// Package config loads ember.yaml, the optional project configuration that
// names the app, its mount point, and the metadata of each route.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up in the project root.
const FileName = "ember.yaml"

// Defaults applied by Resolve.
const (
	DefaultTitle  = "An Ember App"
	DefaultMount  = "app"
	DefaultOutput = "public"
)

// Config represents the optional ember.yaml configuration.
type Config struct {
	App    AppConfig              `yaml:"app"`
	Output string                 `yaml:"output,omitempty"`
	Routes map[string]RouteConfig `yaml:"routes,omitempty"`
}

// AppConfig contains application metadata.
type AppConfig struct {
	Name  string `yaml:"name,omitempty"`
	Mount string `yaml:"mount,omitempty"`
	Title string `yaml:"title,omitempty"`
}

// RouteConfig is the page metadata of one route.
type RouteConfig struct {
	Title string   `yaml:"title,omitempty"`
	Icon  string   `yaml:"icon,omitempty"`
	Head  []string `yaml:"head,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root       string
	ModulePath string
	AppName    string
	Mount      string
	Title      string
	// Output is the pages output directory, absolute or relative to the
	// working directory.
	Output string
	// Routes are sorted by path.
	Routes []Route
}

// Route is a resolved route entry.
type Route struct {
	Path  string
	Title string
	Icon  string
	Head  []string
}

// Lookup returns the resolved route for path.
func (r *Resolved) Lookup(path string) (Route, bool) {
	i, ok := slices.BinarySearchFunc(r.Routes, path, func(rt Route, p string) int {
		return strings.Compare(rt.Path, p)
	})
	if !ok {
		return Route{}, false
	}
	return r.Routes[i], true
}

// Parse decodes ember.yaml content.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}
	return &cfg, nil
}

// LoadOptional reads ember.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}
	return Parse(data)
}

// Resolve loads ember.yaml (if present) and resolves defaults.
func Resolve(dir string) (*Resolved, error) {
	modulePath, err := modulePath(dir)
	if err != nil {
		return nil, err
	}

	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}
	return cfg.Resolve(dir, modulePath)
}

// Resolve fills defaults and validates cfg for the project at dir.
func (cfg *Config) Resolve(dir, modulePath string) (*Resolved, error) {
	appName := strings.TrimSpace(cfg.App.Name)
	if appName == "" {
		appName = defaultAppName(modulePath, dir)
	}

	mount := strings.TrimSpace(cfg.App.Mount)
	if mount == "" {
		mount = DefaultMount
	}
	if strings.ContainsAny(mount, " \t\n\"'#") {
		return nil, fmt.Errorf("app.mount must be a plain element id (got %q)", mount)
	}

	title := strings.TrimSpace(cfg.App.Title)
	if title == "" {
		title = DefaultTitle
	}

	output := strings.TrimSpace(cfg.Output)
	if output == "" {
		output = DefaultOutput
	}
	if !filepath.IsAbs(output) {
		output = filepath.Join(dir, output)
	}

	routes := make([]Route, 0, len(cfg.Routes))
	seen := make(map[string]string, len(cfg.Routes))
	for key, rc := range cfg.Routes {
		path := trimRoutePath(key)
		if err := validateRoutePath(path); err != nil {
			return nil, err
		}
		if prev, ok := seen[path]; ok {
			a, b := min(prev, key), max(prev, key)
			return nil, fmt.Errorf("routes %q and %q both name %q", a, b, path)
		}
		seen[path] = key
		rt := Route{
			Path:  path,
			Title: strings.TrimSpace(rc.Title),
			Icon:  strings.TrimSpace(rc.Icon),
			Head:  rc.Head,
		}
		if rt.Title == "" {
			rt.Title = title
		}
		routes = append(routes, rt)
	}
	slices.SortFunc(routes, func(a, b Route) int { return strings.Compare(a.Path, b.Path) })

	return &Resolved{
		Root:       dir,
		ModulePath: modulePath,
		AppName:    appName,
		Mount:      mount,
		Title:      title,
		Output:     output,
		Routes:     routes,
	}, nil
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
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "ember_app"
	}
	return base
}

// trimRoutePath drops trailing slashes so "/about/" names the same route as
// "/about". The root stays "/".
func trimRoutePath(path string) string {
	path = strings.TrimSpace(path)
	for len(path) > 1 && strings.HasSuffix(path, "/") {
		path = path[:len(path)-1]
	}
	return path
}

func validateRoutePath(path string) error {
	if !strings.HasPrefix(path, "/") {
		return fmt.Errorf("route %q must start with '/'", path)
	}
	if strings.ContainsAny(path, "?# \t") {
		return fmt.Errorf("route %q must be a plain path", path)
	}
	if strings.Contains(path, "//") || strings.Contains(path, "/../") || strings.HasSuffix(path, "/..") {
		return fmt.Errorf("route %q is not a clean path", path)
	}
	return nil
}
