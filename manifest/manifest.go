// Package manifest handles jsreflect.toml project configuration.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/chazu/jsreflect/mirror"
	"github.com/chazu/jsreflect/report"
)

// FileName is the manifest file looked up by Load and FindAndLoad.
const FileName = "jsreflect.toml"

// Manifest represents a jsreflect.toml configuration.
type Manifest struct {
	Load    LoadConfig    `toml:"load"`
	Inspect InspectConfig `toml:"inspect"`
	Log     LogConfig     `toml:"log"`

	// Dir is the directory containing the jsreflect.toml file (set at load time).
	Dir string `toml:"-"`

	scope  mirror.Scope
	format report.Format
}

// LoadConfig lists the scripts evaluated before inspection, relative to
// the manifest directory.
type LoadConfig struct {
	Scripts []string `toml:"scripts"`
}

// InspectConfig selects what to inspect and how to print it.
type InspectConfig struct {
	Targets []string `toml:"targets"`
	Scope   string   `toml:"scope"`
	Format  string   `toml:"format"`
}

// LogConfig configures logging.
type LogConfig struct {
	Verbosity int `toml:"verbosity"`
}

// Load parses a jsreflect.toml file from the given directory.
func Load(dir string) (*Manifest, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}

	m.Dir, err = filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", dir, err)
	}

	// Defaults
	if m.Inspect.Scope == "" {
		m.Inspect.Scope = mirror.ScopeChain.String()
	}
	if m.Inspect.Format == "" {
		m.Inspect.Format = report.FormatText.String()
	}

	switch m.Inspect.Scope {
	case mirror.ScopeChain.String():
		m.scope = mirror.ScopeChain
	case mirror.ScopeOwn.String():
		m.scope = mirror.ScopeOwn
	default:
		return nil, fmt.Errorf("invalid scope %q in %s (expected chain or own)", m.Inspect.Scope, path)
	}
	if m.format, err = report.ParseFormat(m.Inspect.Format); err != nil {
		return nil, fmt.Errorf("invalid format in %s: %w", path, err)
	}

	return &m, nil
}

// FindAndLoad walks up from startDir to find a jsreflect.toml file,
// then loads and returns the manifest. Returns nil if no manifest is found.
func FindAndLoad(startDir string) (*Manifest, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}

	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			return Load(dir)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root
			return nil, nil
		}
		dir = parent
	}
}

// ScriptPaths returns absolute paths for the configured scripts.
func (m *Manifest) ScriptPaths() []string {
	var paths []string
	for _, s := range m.Load.Scripts {
		if filepath.IsAbs(s) {
			paths = append(paths, s)
			continue
		}
		paths = append(paths, filepath.Join(m.Dir, s))
	}
	return paths
}

// Scope returns the configured attribute scope.
func (m *Manifest) Scope() mirror.Scope {
	return m.scope
}

// Format returns the configured output format.
func (m *Manifest) Format() report.Format {
	return m.format
}
