package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/runoshun/focustree/internal/domain"
)

// ConfigInfo describes a config file on disk.
type ConfigInfo struct {
	Path    string
	Content string
	Exists  bool
}

// Manager manages configuration files.
type Manager struct {
	stateDir      string // Directory holding the local config.toml
	globalConfDir string // Path to global config directory (e.g., ~/.config/focus)
}

// NewManager creates a new Manager.
func NewManager(stateDir string) *Manager {
	return &Manager{
		stateDir:      stateDir,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewManagerWithGlobalDir creates a new Manager with a custom global config directory.
// This is useful for testing.
func NewManagerWithGlobalDir(stateDir, globalConfDir string) *Manager {
	return &Manager{
		stateDir:      stateDir,
		globalConfDir: globalConfDir,
	}
}

// GetLocalConfigInfo returns information about the local config file.
func (m *Manager) GetLocalConfigInfo() ConfigInfo {
	return m.getConfigInfo(filepath.Join(m.stateDir, domain.ConfigFileName))
}

// GetGlobalConfigInfo returns information about the global config file.
func (m *Manager) GetGlobalConfigInfo() ConfigInfo {
	if m.globalConfDir == "" {
		return ConfigInfo{}
	}
	return m.getConfigInfo(filepath.Join(m.globalConfDir, domain.ConfigFileName))
}

func (m *Manager) getConfigInfo(path string) ConfigInfo {
	content, err := os.ReadFile(path)
	if err != nil {
		return ConfigInfo{Path: path}
	}
	return ConfigInfo{
		Path:    path,
		Content: string(content),
		Exists:  true,
	}
}

// InitLocalConfig writes the config template into the state directory.
func (m *Manager) InitLocalConfig() (string, error) {
	path := filepath.Join(m.stateDir, domain.ConfigFileName)
	return path, m.initConfig(m.stateDir, path)
}

// InitGlobalConfig writes the config template into the global config directory.
func (m *Manager) InitGlobalConfig() (string, error) {
	if m.globalConfDir == "" {
		return "", errors.New("global config directory not available")
	}
	path := filepath.Join(m.globalConfDir, domain.ConfigFileName)
	return path, m.initConfig(m.globalConfDir, path)
}

// initConfig creates a config file with the default template.
func (m *Manager) initConfig(dir, path string) error {
	if _, err := os.Stat(path); err == nil {
		return domain.ErrConfigExists
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}
	content := domain.RenderConfigTemplate(domain.NewDefaultConfig())
	return os.WriteFile(path, []byte(content), 0o600)
}
