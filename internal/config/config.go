// ABOUTME: Settings loading with global + project config deep merge
// ABOUTME: JSON-based configuration using encoding/json; no external libs

package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Settings holds the merged configuration.
type Settings struct {
	Algorithm string `json:"algorithm,omitempty"` // "kmp" or "bm"
	DataDir   string `json:"data_dir,omitempty"`  // knowledge-base location
	SeedFile  string `json:"seed_file,omitempty"` // YAML corpus for first run
	Verbose   bool   `json:"verbose,omitempty"`
}

// Load reads and merges global and project-local settings.
// Project settings override global settings.
func Load(projectRoot string) (*Settings, error) {
	global, err := loadFile(GlobalConfigFile())
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading global config: %w", err)
	}

	project, err := loadFile(ProjectConfigFile(projectRoot))
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	merged := merge(global, project)
	merged.applyDefaults()
	return merged, nil
}

// loadFile reads a Settings from a JSON file. Returns zero Settings if file
// does not exist.
func loadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Settings{}, err
	}
	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &s, nil
}

// merge deep-merges project settings onto global settings.
// Non-zero project values override global values.
func merge(global, project *Settings) *Settings {
	if global == nil {
		global = &Settings{}
	}
	if project == nil {
		return global
	}

	result := *global

	if project.Algorithm != "" {
		result.Algorithm = project.Algorithm
	}
	if project.DataDir != "" {
		result.DataDir = project.DataDir
	}
	if project.SeedFile != "" {
		result.SeedFile = project.SeedFile
	}
	if project.Verbose {
		result.Verbose = true
	}

	return &result
}

func (s *Settings) applyDefaults() {
	if s.Algorithm == "" {
		s.Algorithm = "kmp"
	}
	if s.DataDir == "" {
		s.DataDir = DataDir()
	}
}
