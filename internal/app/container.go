// Package app provides the dependency injection container for the application.
package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/runoshun/focustree/internal/domain"
	"github.com/runoshun/focustree/internal/infra/config"
	"github.com/runoshun/focustree/internal/infra/jsonstore"
	"github.com/runoshun/focustree/internal/infra/logging"
	"github.com/runoshun/focustree/internal/infra/recovery"
	"github.com/runoshun/focustree/internal/usecase"
)

// EnvHome overrides the state directory.
const EnvHome = "FOCUS_HOME"

// Config holds the application paths.
type Config struct {
	StateDir     string // Directory holding the snapshot, config, and logs
	SnapshotPath string // Path to the task tree snapshot
	LogPath      string // Path to the log file
}

// ResolveStateDir picks the state directory: explicit dir, then $FOCUS_HOME,
// then $XDG_DATA_HOME/focus, then ~/.local/share/focus.
func ResolveStateDir(dir string) (string, error) {
	if dir != "" {
		return dir, nil
	}
	if home := os.Getenv(EnvHome); home != "" {
		return home, nil
	}
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, domain.AppDirName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share", domain.AppDirName), nil
}

// Container provides dependency injection for the application.
type Container struct {
	Snapshots     domain.SnapshotRepository
	Recovery      domain.RecoveryPolicy
	IDs           domain.IDGenerator
	ConfigLoader  *config.Loader
	ConfigManager *config.Manager
	AppConfig     *domain.Config
	Logger        *logging.Logger

	// Configuration
	Config Config
}

// New creates a Container rooted at stateDir. Recovery prompts read from
// stdin and draw to stderr.
func New(stateDir string) (*Container, error) {
	return NewWithLoader(stateDir, config.NewLoader(stateDir), config.NewManager(stateDir), os.Stdin, os.Stderr)
}

// NewWithLoader creates a Container with explicit config sources and prompt streams.
func NewWithLoader(stateDir string, loader *config.Loader, manager *config.Manager, in *os.File, out io.Writer) (*Container, error) {
	appConfig, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	cfg := Config{
		StateDir:     stateDir,
		SnapshotPath: domain.SnapshotPath(stateDir, appConfig.Tree.File),
		LogPath:      domain.LogPath(stateDir),
	}

	return &Container{
		Snapshots:     jsonstore.New(cfg.SnapshotPath),
		Recovery:      recovery.FromConfig(appConfig.Recovery.Policy, in, out),
		IDs:           domain.UUIDGenerator{},
		ConfigLoader:  loader,
		ConfigManager: manager,
		AppConfig:     appConfig,
		Logger:        logging.New(stateDir, logging.ParseLevel(appConfig.LogLevel)),
		Config:        cfg,
	}, nil
}

// NewWithDeps creates a Container with custom dependencies for testing.
func NewWithDeps(cfg Config, appConfig *domain.Config, snapshots domain.SnapshotRepository, policy domain.RecoveryPolicy, ids domain.IDGenerator) *Container {
	return &Container{
		Snapshots: snapshots,
		Recovery:  policy,
		IDs:       ids,
		AppConfig: appConfig,
		Logger:    logging.New("", logging.ParseLevel(appConfig.LogLevel)),
		Config:    cfg,
	}
}

// OpenTree loads the task tree, running recovery if the snapshot is invalid.
func (c *Container) OpenTree() (*usecase.TaskTree, error) {
	return usecase.NewTaskTree(c.Snapshots, c.Recovery, c.IDs, c.Logger)
}

// Close releases resources held by the container.
func (c *Container) Close() error {
	if c.Logger == nil {
		return nil
	}
	return c.Logger.Close()
}
