package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/runoshun/focustree/internal/app"
	"github.com/runoshun/focustree/internal/domain"
	"github.com/runoshun/focustree/internal/infra/config"
	"github.com/runoshun/focustree/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newConfigTestContainer creates an app.Container backed by real config files
// in temporary state and global directories.
func newConfigTestContainer(t *testing.T) (*app.Container, string, string) {
	t.Helper()

	stateDir := t.TempDir()
	globalDir := t.TempDir()
	c, err := app.NewWithLoader(
		stateDir,
		config.NewLoaderWithGlobalDir(stateDir, globalDir),
		config.NewManagerWithGlobalDir(stateDir, globalDir),
		nil,
		os.Stderr,
	)
	require.NoError(t, err)
	return c, stateDir, globalDir
}

func TestConfigCommand_Show(t *testing.T) {
	c, stateDir, _ := newConfigTestContainer(t)

	out, _, err := execute(t, c, "config")

	require.NoError(t, err)
	assert.Contains(t, out, "[Loaded from]")
	assert.Contains(t, out, "(not found)")
	assert.Contains(t, out, filepath.Join(stateDir, domain.DefaultTreeFile))
	assert.Contains(t, out, "[Effective config]")
	assert.Contains(t, out, "log_level")
	assert.Contains(t, out, "[tree]")
	assert.Contains(t, out, "[recovery]")
}

func TestConfigCommand_InitLocal(t *testing.T) {
	c, stateDir, _ := newConfigTestContainer(t)

	out, _, err := execute(t, c, "config", "--init")

	require.NoError(t, err)
	path := filepath.Join(stateDir, domain.ConfigFileName)
	assert.Equal(t, "Created "+path+"\n", out)
	assert.FileExists(t, path)

	// A second init does not overwrite the file.
	_, _, err = execute(t, c, "config", "--init")
	assert.ErrorIs(t, err, domain.ErrConfigExists)
}

func TestConfigCommand_InitGlobal(t *testing.T) {
	c, _, globalDir := newConfigTestContainer(t)

	_, _, err := execute(t, c, "config", "--init", "--global")

	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(globalDir, domain.ConfigFileName))
}

func TestConfigCommand_Warnings(t *testing.T) {
	stateDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(stateDir, domain.ConfigFileName), []byte("[recovery]\npolicy = \"sometimes\"\n"), 0o600))
	c, err := app.NewWithLoader(
		stateDir,
		config.NewLoaderWithGlobalDir(stateDir, ""),
		config.NewManagerWithGlobalDir(stateDir, ""),
		nil,
		os.Stderr,
	)
	require.NoError(t, err)

	_, errOut, err := execute(t, c, "config")

	require.NoError(t, err)
	assert.Contains(t, errOut, "Warning:")
}

func TestConfigCommand_NoManager(t *testing.T) {
	_, _, err := execute(t, newTestContainer(testutil.NewMockSnapshotRepository()), "config")

	assert.Error(t, err)
}

func TestConfigCommand_MalformedConfigStillRuns(t *testing.T) {
	stateDir := t.TempDir()
	globalDir := t.TempDir()
	localPath := filepath.Join(stateDir, domain.ConfigFileName)
	require.NoError(t, os.WriteFile(localPath, []byte("[tree"), 0o600))
	c, err := app.NewWithLoader(
		stateDir,
		config.NewLoaderWithGlobalDir(stateDir, globalDir),
		config.NewManagerWithGlobalDir(stateDir, globalDir),
		nil,
		os.Stderr,
	)
	require.NoError(t, err)

	out, errOut, err := execute(t, c, "config", "--init", "--global")

	require.NoError(t, err)
	assert.Contains(t, out, "Created")
	assert.Contains(t, errOut, "Warning: ignoring local config")
	assert.Contains(t, errOut, localPath)
	assert.Equal(t, domain.DefaultTreeFile, c.AppConfig.Tree.File)
}
