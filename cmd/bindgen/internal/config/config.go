package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"gopkg.in/yaml.v3"
)

// DefaultObserveImport is the import path of the observe package the
// generated registrations call into.
const DefaultObserveImport = "github.com/chinese-developer/Hodgepodge/pkg/observe"

// Config represents the optional bindgen.yaml configuration.
type Config struct {
	// Output is the generated filename per package (default properties_gen.go).
	Output string `yaml:"output,omitempty"`
	// Prefix is prepended to generated variable names (default Property).
	Prefix string `yaml:"prefix,omitempty"`
	// ObserveImport overrides the observe package import path.
	ObserveImport string `yaml:"observeImport,omitempty"`
	// Packages lists directories to scan when the command line names none.
	Packages []string `yaml:"packages,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root          string
	ModulePath    string
	Output        string
	Prefix        string
	ObserveImport string
	Packages      []string
}

// LoadOptional reads bindgen.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, "bindgen.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read bindgen.yaml: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse bindgen.yaml: %w", err)
	}

	return &cfg, nil
}

// Resolve loads bindgen.yaml (if present) and resolves defaults.
func Resolve(dir string) (*Resolved, error) {
	modulePath, err := modulePath(dir)
	if err != nil {
		return nil, err
	}

	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	output := strings.TrimSpace(cfg.Output)
	if output == "" {
		output = "properties_gen.go"
	}
	if !strings.HasSuffix(output, ".go") {
		return nil, fmt.Errorf("output %q must be a .go filename", output)
	}

	prefix := strings.TrimSpace(cfg.Prefix)
	if prefix == "" {
		prefix = "Property"
	}

	observeImport := strings.TrimSpace(cfg.ObserveImport)
	if observeImport == "" {
		observeImport = DefaultObserveImport
	}

	return &Resolved{
		Root:          dir,
		ModulePath:    modulePath,
		Output:        output,
		Prefix:        prefix,
		ObserveImport: observeImport,
		Packages:      cfg.Packages,
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

// ImportPath computes the import path of a directory inside the module.
func (r *Resolved) ImportPath(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	rootAbs, err := filepath.Abs(r.Root)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(rootAbs, abs)
	if err != nil {
		return "", fmt.Errorf("%s is outside the module root %s", dir, r.Root)
	}
	if rel == "." {
		return r.ModulePath, nil
	}
	if strings.HasPrefix(rel, "..") {
		return "", fmt.Errorf("%s is outside the module root %s", dir, r.Root)
	}
	return r.ModulePath + "/" + filepath.ToSlash(rel), nil
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
