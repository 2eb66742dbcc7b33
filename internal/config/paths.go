// ABOUTME: Standard filesystem paths for tanya configuration and data
// ABOUTME: Resolves ~/.tanya/ for global and .tanya/ for project-local paths

package config

import (
	"os"
	"path/filepath"
)

const (
	globalDirName  = ".tanya"
	projectDirName = ".tanya"
)

// GlobalDir returns the user-global config directory (~/.tanya/).
func GlobalDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", globalDirName)
	}
	return filepath.Join(home, globalDirName)
}

// ProjectDir returns the project-local config directory (.tanya/ in cwd).
func ProjectDir(projectRoot string) string {
	return filepath.Join(projectRoot, projectDirName)
}

// DataDir returns the default knowledge-base storage directory.
func DataDir() string {
	return filepath.Join(GlobalDir(), "data")
}

// GlobalConfigFile returns the path to the global config file.
func GlobalConfigFile() string {
	return filepath.Join(GlobalDir(), "config.json")
}

// ProjectConfigFile returns the path to the project-local config file.
func ProjectConfigFile(projectRoot string) string {
	return filepath.Join(ProjectDir(projectRoot), "config.json")
}

// LogFile returns the path the interactive mode logs to.
func LogFile() string {
	return filepath.Join(GlobalDir(), "tanya.log")
}
