// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/focustree/internal/domain"
)

// Loader loads configuration from TOML files.
type Loader struct {
	stateDir      string // Directory holding the local config.toml
	globalConfDir string // Path to global config directory (e.g., ~/.config/focus)
}

// NewLoader creates a new Loader.
func NewLoader(stateDir string) *Loader {
	return &Loader{
		stateDir:      stateDir,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config directory.
// This is useful for testing.
func NewLoaderWithGlobalDir(stateDir, globalConfDir string) *Loader {
	return &Loader{
		stateDir:      stateDir,
		globalConfDir: globalConfDir,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, domain.AppDirName)
}

// Load returns the merged configuration (local + global).
// Local config takes precedence over global config.
// A file that cannot be read or parsed is skipped with a warning naming it.
func (l *Loader) Load() (*domain.Config, error) {
	var warnings []string

	global, err := l.LoadGlobal()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		warnings = append(warnings, fmt.Sprintf("ignoring global config: %v", err))
	}

	local, err := l.LoadLocal()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		warnings = append(warnings, fmt.Sprintf("ignoring local config: %v", err))
	}

	// Merge: default <- global <- local (later takes precedence)
	base := domain.NewDefaultConfig()
	if global != nil {
		base = mergeConfigs(base, global)
	}
	if local != nil {
		base = mergeConfigs(base, local)
	}
	base.Warnings = append(warnings, base.Warnings...)
	return base, nil
}

// LoadGlobal returns only the global configuration.
func (l *Loader) LoadGlobal() (*domain.Config, error) {
	if l.globalConfDir == "" {
		return nil, os.ErrNotExist
	}
	return l.loadFile(filepath.Join(l.globalConfDir, domain.ConfigFileName))
}

// LoadLocal returns only the state directory configuration.
func (l *Loader) LoadLocal() (*domain.Config, error) {
	return l.loadFile(filepath.Join(l.stateDir, domain.ConfigFileName))
}

// loadFile loads a configuration from a file.
func (l *Loader) loadFile(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return convertRawToDomainConfig(raw), nil
}

// convertRawToDomainConfig converts the raw map to domain config and collects warnings.
func convertRawToDomainConfig(raw map[string]any) *domain.Config {
	res := &domain.Config{}
	var warnings []string

	for section, value := range raw {
		switch section {
		case "log_level":
			if s, ok := value.(string); ok {
				res.LogLevel = s
			}
		case "tree":
			if m, ok := value.(map[string]any); ok {
				for k, v := range m {
					switch k {
					case "file":
						if s, ok := v.(string); ok {
							res.Tree.File = s
						}
					case "default_task_name":
						if s, ok := v.(string); ok {
							res.Tree.DefaultTaskName = s
						}
					default:
						warnings = append(warnings, fmt.Sprintf("unknown key in [tree]: %s", k))
					}
				}
			}
		case "recovery":
			if m, ok := value.(map[string]any); ok {
				for k, v := range m {
					switch k {
					case "policy":
						s, _ := v.(string)
						if err := domain.ValidateRecoveryPolicy(s); err != nil {
							warnings = append(warnings, fmt.Sprintf("ignoring [recovery].policy: %v", err))
							continue
						}
						res.Recovery.Policy = s
					default:
						warnings = append(warnings, fmt.Sprintf("unknown key in [recovery]: %s", k))
					}
				}
			}
		default:
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
		}
	}

	sort.Strings(warnings)
	res.Warnings = warnings
	return res
}

// mergeConfigs merges two configs, with override taking precedence.
func mergeConfigs(base, override *domain.Config) *domain.Config {
	result := &domain.Config{
		LogLevel: base.LogLevel,
		Tree:     base.Tree,
		Recovery: base.Recovery,
		Warnings: append(append([]string(nil), base.Warnings...), override.Warnings...),
	}

	if override.LogLevel != "" {
		result.LogLevel = override.LogLevel
	}
	if override.Tree.File != "" {
		result.Tree.File = override.Tree.File
	}
	if override.Tree.DefaultTaskName != "" {
		result.Tree.DefaultTaskName = override.Tree.DefaultTaskName
	}
	if override.Recovery.Policy != "" {
		result.Recovery.Policy = override.Recovery.Policy
	}

	return result
}
