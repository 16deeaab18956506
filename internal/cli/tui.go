package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/runoshun/focustree/internal/tui"
)

// newBarCommand creates the bar command for the interactive focus bar.
func newBarCommand(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "bar",
		Short: "Show the focus bar",
		Long: `Show a small interactive bar with the focused task.

Keys:
  a        add a sub-task and focus it
  r        rename the focused task
  c, d     complete the focused task
  n        focus the root
  ?        toggle help
  q        quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tree, err := openTree(cmd, d)
			if err != nil {
				return err
			}
			c, _ := d.container()

			m := tui.New(tree, c.AppConfig.Tree.DefaultTaskName)
			p := tea.NewProgram(m,
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			_, err = p.Run()
			return err
		},
	}
}
