package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/focustree/internal/domain"
	"github.com/runoshun/focustree/internal/infra/config"
	"github.com/spf13/cobra"
)

// newConfigCommand creates the config command.
func newConfigCommand(d *deps) *cobra.Command {
	var initConfig, global bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or initialize configuration",
		Long: `Show the effective configuration and where it was loaded from.

Use --init to write a commented config file into the state directory,
or --init --global for the global one ($XDG_CONFIG_HOME/focus/config.toml).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := d.container()
			if err != nil {
				return err
			}
			if c.ConfigManager == nil {
				return errors.New("config files are not available")
			}
			w := cmd.OutOrStdout()

			if initConfig {
				var path string
				if global {
					path, err = c.ConfigManager.InitGlobalConfig()
				} else {
					path, err = c.ConfigManager.InitLocalConfig()
				}
				if err != nil {
					return fmt.Errorf("init config: %w", err)
				}
				_, _ = fmt.Fprintf(w, "Created %s\n", path)
				return nil
			}

			_, _ = fmt.Fprintln(w, "[Loaded from]")
			writeConfigSource(w, "global", c.ConfigManager.GetGlobalConfigInfo())
			writeConfigSource(w, "local", c.ConfigManager.GetLocalConfigInfo())
			_, _ = fmt.Fprintf(w, "\n[Paths]\n  state  %s\n  tree   %s\n  log    %s\n\n",
				c.Config.StateDir, c.Config.SnapshotPath, c.Config.LogPath)

			_, _ = fmt.Fprintln(w, "[Effective config]")
			content, err := toml.Marshal(effectiveConfig(c.AppConfig))
			if err != nil {
				return fmt.Errorf("marshal config: %w", err)
			}
			_, _ = w.Write(content)
			return nil
		},
	}

	cmd.Flags().BoolVar(&initConfig, "init", false, "Write a config file template")
	cmd.Flags().BoolVar(&global, "global", false, "With --init, write the global config file")

	return cmd
}

func writeConfigSource(w io.Writer, label string, info config.ConfigInfo) {
	status := "not found"
	if info.Exists {
		status = "loaded"
	}
	_, _ = fmt.Fprintf(w, "  %-6s %s (%s)\n", label, info.Path, status)
}

// effectiveConfig drops fields that are not part of the file format.
func effectiveConfig(cfg *domain.Config) domain.Config {
	out := *cfg
	out.Warnings = nil
	return out
}
