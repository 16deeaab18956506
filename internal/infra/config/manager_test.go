package config

import (
	"path/filepath"
	"testing"

	"github.com/runoshun/focustree/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_InitLocalConfig(t *testing.T) {
	stateDir := filepath.Join(t.TempDir(), "state")
	manager := NewManagerWithGlobalDir(stateDir, t.TempDir())

	path, err := manager.InitLocalConfig()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(stateDir, domain.ConfigFileName), path)

	info := manager.GetLocalConfigInfo()
	assert.True(t, info.Exists)
	assert.Contains(t, info.Content, `policy = "prompt"`)

	// The rendered template loads back to the defaults
	cfg, err := NewLoaderWithGlobalDir(stateDir, t.TempDir()).Load()
	require.NoError(t, err)
	assert.Equal(t, domain.NewDefaultConfig(), cfg)

	_, err = manager.InitLocalConfig()
	assert.ErrorIs(t, err, domain.ErrConfigExists)
}

func TestManager_InitGlobalConfig(t *testing.T) {
	globalDir := filepath.Join(t.TempDir(), "focus")
	manager := NewManagerWithGlobalDir(t.TempDir(), globalDir)

	assert.False(t, manager.GetGlobalConfigInfo().Exists)

	_, err := manager.InitGlobalConfig()
	require.NoError(t, err)
	assert.True(t, manager.GetGlobalConfigInfo().Exists)
}

func TestManager_InitGlobalConfig_NoDir(t *testing.T) {
	manager := NewManagerWithGlobalDir(t.TempDir(), "")

	_, err := manager.InitGlobalConfig()

	assert.Error(t, err)
	assert.False(t, manager.GetGlobalConfigInfo().Exists)
}
