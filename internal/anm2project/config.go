package anm2project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// configFileName is the optional per-directory project settings file.
const configFileName = ".anm2edit.yml"

// Config holds read-only ambient project settings. It is never part of
// the document model or the undo/redo log; a missing config file is not
// an error, it just means every field keeps its zero value.
type Config struct {
	// PSDSearchRoot is the PSD path the init command gives a new
	// document when --psd is not passed; it is used verbatim.
	PSDSearchRoot string `yaml:"psd_search_root,omitempty"`

	// Editor is the preferred external text editor command for
	// scripts this tool doesn't handle directly.
	Editor string `yaml:"editor,omitempty"`

	// Locale selects which translation the host applies through the
	// document's Localizer; empty means the host's default.
	Locale string `yaml:"locale,omitempty"`

	// ExclusiveSupportDefault, if non-nil, overrides the built-in
	// default (true) baked into documents created by this project.
	ExclusiveSupportDefault *bool `yaml:"exclusive_support_default,omitempty"`
}

// LoadConfig reads dir/.anm2edit.yml, if present. A missing file returns a
// zero Config and a nil error.
func LoadConfig(io IO, dir string) (Config, error) {
	data, err := io.ReadFile(filepath.Join(dir, configFileName))
	if err != nil {
		if isNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("reading %s: %w", configFileName, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing %s: %w", configFileName, err)
	}
	return cfg, nil
}

func isNotExist(err error) bool {
	return errors.Is(err, os.ErrNotExist)
}
