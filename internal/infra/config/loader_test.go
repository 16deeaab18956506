package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/runoshun/focustree/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	err := os.WriteFile(filepath.Join(dir, domain.ConfigFileName), []byte(content), 0o644)
	require.NoError(t, err)
}

func TestLoader_Load_Defaults(t *testing.T) {
	loader := NewLoaderWithGlobalDir(t.TempDir(), t.TempDir())

	cfg, err := loader.Load()

	require.NoError(t, err)
	assert.Equal(t, domain.NewDefaultConfig(), cfg)
}

func TestLoader_Load_LocalConfigOnly(t *testing.T) {
	stateDir := t.TempDir()
	writeConfig(t, stateDir, `
log_level = "debug"

[tree]
file = "work.json"
default_task_name = "Untitled"

[recovery]
policy = "inspect"
`)

	cfg, err := NewLoaderWithGlobalDir(stateDir, t.TempDir()).Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "work.json", cfg.Tree.File)
	assert.Equal(t, "Untitled", cfg.Tree.DefaultTaskName)
	assert.Equal(t, domain.RecoveryPolicyInspect, cfg.Recovery.Policy)
	assert.Empty(t, cfg.Warnings)
}

func TestLoader_Load_LocalOverridesGlobal(t *testing.T) {
	stateDir := t.TempDir()
	globalDir := t.TempDir()
	writeConfig(t, globalDir, `
log_level = "warn"

[tree]
default_task_name = "Global name"

[recovery]
policy = "recreate"
`)
	writeConfig(t, stateDir, `
[tree]
default_task_name = "Local name"
`)

	cfg, err := NewLoaderWithGlobalDir(stateDir, globalDir).Load()
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "Local name", cfg.Tree.DefaultTaskName)
	assert.Equal(t, domain.DefaultTreeFile, cfg.Tree.File)
	assert.Equal(t, domain.RecoveryPolicyRecreate, cfg.Recovery.Policy)
}

func TestLoader_Load_Warnings(t *testing.T) {
	stateDir := t.TempDir()
	writeConfig(t, stateDir, `
[tree]
colour = "blue"

[recovery]
policy = "panic"

[hotkeys]
add = "ctrl+shift+alt+l"
`)

	cfg, err := NewLoaderWithGlobalDir(stateDir, t.TempDir()).Load()
	require.NoError(t, err)

	require.Len(t, cfg.Warnings, 3)
	assert.Contains(t, cfg.Warnings[0], "ignoring [recovery].policy")
	assert.Equal(t, "unknown key in [tree]: colour", cfg.Warnings[1])
	assert.Equal(t, "unknown section: hotkeys", cfg.Warnings[2])
	assert.Equal(t, domain.DefaultRecoveryPolicy, cfg.Recovery.Policy)
}

func TestLoader_Load_InvalidTOML(t *testing.T) {
	stateDir := t.TempDir()
	writeConfig(t, stateDir, `[tree`)

	cfg, err := NewLoaderWithGlobalDir(stateDir, t.TempDir()).Load()

	require.NoError(t, err)
	require.Len(t, cfg.Warnings, 1)
	assert.Contains(t, cfg.Warnings[0], "ignoring local config")
	assert.Contains(t, cfg.Warnings[0], filepath.Join(stateDir, domain.ConfigFileName))
	assert.Equal(t, domain.DefaultTreeFile, cfg.Tree.File)
}

func TestLoader_Load_InvalidGlobalKeepsLocal(t *testing.T) {
	stateDir := t.TempDir()
	globalDir := t.TempDir()
	writeConfig(t, globalDir, `log_level = `)
	writeConfig(t, stateDir, "[tree]\ndefault_task_name = \"Untitled\"\n")

	cfg, err := NewLoaderWithGlobalDir(stateDir, globalDir).Load()

	require.NoError(t, err)
	require.Len(t, cfg.Warnings, 1)
	assert.Contains(t, cfg.Warnings[0], "ignoring global config")
	assert.Equal(t, "Untitled", cfg.Tree.DefaultTaskName)
}

func TestLoader_LoadLocal_InvalidTOML(t *testing.T) {
	stateDir := t.TempDir()
	writeConfig(t, stateDir, `[tree`)

	_, err := NewLoaderWithGlobalDir(stateDir, "").LoadLocal()

	assert.Error(t, err)
}

func TestLoader_LoadGlobal_NoDir(t *testing.T) {
	_, err := NewLoaderWithGlobalDir(t.TempDir(), "").LoadGlobal()

	assert.ErrorIs(t, err, os.ErrNotExist)
}
