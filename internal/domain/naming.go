package domain

import (
	"path/filepath"
	"strings"
)

// File and directory names under the state directory.
const (
	ConfigFileName = "config.toml"
	AppDirName     = "focus"
	LogsDirName    = "logs"
	LogFileName    = "focus.log"
)

// LogPath returns the path to the log file.
func LogPath(stateDir string) string {
	return filepath.Join(stateDir, LogsDirName, LogFileName)
}

// SnapshotPath resolves the configured tree file against the state directory.
// Absolute paths are returned unchanged.
func SnapshotPath(stateDir, file string) string {
	if file == "" {
		file = DefaultTreeFile
	}
	if filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(stateDir, file)
}

// ShortID returns the first 8 characters of an ID for display.
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// FormatPath joins node names from root to leaf for display.
func FormatPath(path []*Node) string {
	names := make([]string, 0, len(path))
	for _, n := range path {
		names = append(names, n.Name)
	}
	return strings.Join(names, " > ")
}
