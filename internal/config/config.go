// ABOUTME: termprobe settings loading with global + project config deep merge
// ABOUTME: YAML-based configuration via gopkg.in/yaml.v3

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Settings holds the merged termprobe configuration.
type Settings struct {
	// TimeoutMS bounds each request/reply exchange, in milliseconds.
	TimeoutMS int `yaml:"timeout_ms,omitempty"`
	// LegacySaveRestore forces the DEC ESC 7/ESC 8 save/restore forms.
	LegacySaveRestore bool `yaml:"legacy_save_restore,omitempty"`
	// Verbose enables debug logging.
	Verbose bool `yaml:"verbose,omitempty"`
}

// GlobalConfigFile returns the path of the per-user config file.
func GlobalConfigFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "termprobe", "config.yaml")
}

// ProjectConfigFile returns the path of the per-directory config file.
func ProjectConfigFile(root string) string {
	return filepath.Join(root, ".termprobe.yaml")
}

// Load reads and merges global and project settings. Project settings
// override global settings; missing files are not an error.
func Load(projectRoot string) (*Settings, error) {
	global, err := loadFile(GlobalConfigFile())
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading global config: %w", err)
	}

	project, err := loadFile(ProjectConfigFile(projectRoot))
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	return merge(global, project), nil
}

// loadFile reads Settings from a YAML file. Returns zero Settings if the
// file does not exist.
func loadFile(path string) (*Settings, error) {
	if path == "" {
		return &Settings{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return &Settings{}, err
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &s, nil
}

// merge overlays non-zero project values onto global values.
func merge(global, project *Settings) *Settings {
	if global == nil {
		global = &Settings{}
	}
	if project == nil {
		return global
	}

	result := *global

	if project.TimeoutMS != 0 {
		result.TimeoutMS = project.TimeoutMS
	}
	if project.LegacySaveRestore {
		result.LegacySaveRestore = true
	}
	if project.Verbose {
		result.Verbose = true
	}
	return &result
}
