package cli

import (
	"fmt"
	"strings"

	"github.com/runoshun/focustree/internal/domain"
	"github.com/spf13/cobra"
)

// newAddCommand creates the add command.
func newAddCommand(d *deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [name...]",
		Short: "Add a sub-task of the focused task and focus it",
		Long: `Add a sub-task under the focused task and move focus into it.

Without a name the configured default name is used ([tree].default_task_name).

Examples:
  # Start planning, then break it down
  focus add Plan trip
  focus add "Book flight"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := d.container()
			if err != nil {
				return err
			}
			name := strings.Join(args, " ")
			if name == "" {
				name = c.AppConfig.Tree.DefaultTaskName
			}

			tree, err := openTree(cmd, d)
			if err != nil {
				return err
			}
			if _, err := tree.AddTask(name); err != nil {
				return handleRefusal(cmd, err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Focus: %s\n", domain.FormatPath(tree.FocusPath()))
			return nil
		},
	}
	return cmd
}

// newRenameCommand creates the rename command.
func newRenameCommand(d *deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename <name...>",
		Short: "Rename the focused task",
		Long: `Rename the focused task. The root task cannot be renamed.

Example:
  focus rename "Plan trip (v2)"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := openTree(cmd, d)
			if err != nil {
				return err
			}
			name := strings.TrimSpace(strings.Join(args, " "))
			if err := tree.RenameTask(name); err != nil {
				return handleRefusal(cmd, err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Renamed to %q\n", tree.Focus().Name)
			return nil
		},
	}
	return cmd
}

// newDoneCommand creates the done command.
func newDoneCommand(d *deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "done",
		Aliases: []string{"complete"},
		Short:   "Complete the focused task and focus its parent",
		Long: `Complete the focused task: focus moves back to its parent.

The completed task and its sub-tasks stay in the tree. The root task
cannot be completed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tree, err := openTree(cmd, d)
			if err != nil {
				return err
			}
			completed := tree.Focus().Name
			if _, err := tree.CompleteTask(); err != nil {
				return handleRefusal(cmd, err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Completed %q\nFocus: %s\n", completed, domain.FormatPath(tree.FocusPath()))
			return nil
		},
	}
	return cmd
}

// newResetCommand creates the reset command.
func newResetCommand(d *deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Move focus back to the root task",
		Long: `Move focus back to the root task to start a new line of work.
No task is removed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tree, err := openTree(cmd, d)
			if err != nil {
				return err
			}
			if err := tree.ResetToRoot(); err != nil {
				return handleRefusal(cmd, err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Focus: %s\n", tree.Focus().Name)
			return nil
		},
	}
	return cmd
}

type statusOptions struct {
	IDOnly   bool
	NameOnly bool
}

// newStatusCommand creates the status command.
func newStatusCommand(d *deps) *cobra.Command {
	var opts statusOptions

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the focused task",
		Long: `Show the focused task, its id, and the path from the root.

Use --name for status bars and scripts.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStatus(cmd, d, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.IDOnly, "id", false, "Print only the focused task id")
	cmd.Flags().BoolVar(&opts.NameOnly, "name", false, "Print only the focused task name")
	cmd.MarkFlagsMutuallyExclusive("id", "name")

	return cmd
}

func runStatus(cmd *cobra.Command, d *deps, opts statusOptions) error {
	tree, err := openTree(cmd, d)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	focus := tree.Focus()
	switch {
	case opts.IDOnly:
		_, _ = fmt.Fprintln(w, focus.ID)
	case opts.NameOnly:
		_, _ = fmt.Fprintln(w, focus.Name)
	default:
		_, _ = fmt.Fprintf(w, "Focus: %s\n", focus.Name)
		_, _ = fmt.Fprintf(w, "ID:    %s\n", focus.ID)
		_, _ = fmt.Fprintf(w, "Path:  %s\n", domain.FormatPath(tree.FocusPath()))
		_, _ = fmt.Fprintf(w, "Tasks: %d\n", domain.Count(tree.Root()))
	}
	return nil
}
