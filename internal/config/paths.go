// ABOUTME: Standard filesystem paths for gridtable style files
// ABOUTME: Resolves ~/.gridtable/ for global and .gridtable/ for project-local paths

package config

import (
	"os"
	"path/filepath"
)

const (
	globalDirName  = ".gridtable"
	projectDirName = ".gridtable"
	styleFileName  = "style.yaml"
)

// GlobalDir returns the user-global config directory (~/.gridtable/).
func GlobalDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", globalDirName)
	}
	return filepath.Join(home, globalDirName)
}

// ProjectDir returns the project-local config directory (.gridtable/ in
// projectRoot).
func ProjectDir(projectRoot string) string {
	return filepath.Join(projectRoot, projectDirName)
}

// GlobalStyleFile returns the path to the global style file.
func GlobalStyleFile() string {
	return filepath.Join(GlobalDir(), styleFileName)
}

// ProjectStyleFile returns the path to the project-local style file.
func ProjectStyleFile(projectRoot string) string {
	return filepath.Join(ProjectDir(projectRoot), styleFileName)
}

// StyleFiles lists every style file Load may read, in merge order. Used
// to watch for changes.
func StyleFiles(projectRoot, explicit string) []string {
	files := []string{GlobalStyleFile(), ProjectStyleFile(projectRoot)}
	if explicit != "" {
		files = append(files, explicit)
	}
	return files
}
