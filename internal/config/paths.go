// ABOUTME: Standard filesystem paths for termdraw configuration
// ABOUTME: Resolves ~/.termdraw/ for global and .termdraw/ for project-local settings

package config

import (
	"os"
	"path/filepath"
)

const (
	globalDirName  = ".termdraw"
	projectDirName = ".termdraw"
	configFileName = "config.yaml"
)

// GlobalDir returns the user-global config directory (~/.termdraw/).
// TERMDRAW_HOME overrides it.
func GlobalDir() string {
	if dir := os.Getenv("TERMDRAW_HOME"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", globalDirName)
	}
	return filepath.Join(home, globalDirName)
}

// ProjectDir returns the project-local config directory (.termdraw/ in root).
func ProjectDir(projectRoot string) string {
	return filepath.Join(projectRoot, projectDirName)
}

// GlobalConfigFile returns the path to the global config file.
func GlobalConfigFile() string {
	return filepath.Join(GlobalDir(), configFileName)
}

// ProjectConfigFile returns the path to the project-local config file.
func ProjectConfigFile(projectRoot string) string {
	return filepath.Join(ProjectDir(projectRoot), configFileName)
}
