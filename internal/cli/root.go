// Package cli provides the command-line interface for focus.
package cli

import (
	"errors"
	"fmt"

	"github.com/runoshun/focustree/internal/app"
	"github.com/runoshun/focustree/internal/domain"
	"github.com/runoshun/focustree/internal/usecase"
	"github.com/spf13/cobra"
)

// Command group IDs.
const (
	groupTask  = "task"
	groupView  = "view"
	groupSetup = "setup"
)

// deps holds the container, built once flags are parsed unless one was injected.
type deps struct {
	c *app.Container
}

// container returns the container or an error if it was never built.
func (d *deps) container() (*app.Container, error) {
	if d.c == nil {
		return nil, errors.New("not initialized")
	}
	return d.c, nil
}

// NewRootCommand creates the root command for focus.
// A non-nil container is used as is (tests); otherwise one is built for the
// state directory chosen by --dir.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	d := &deps{c: c}
	var stateDir string

	root := &cobra.Command{
		Use:   "focus",
		Short: "Keep one task in focus within a task tree",
		Long: `focus keeps a hierarchical task list with exactly one focused task.

Adding a task creates a sub-task of the focused one and moves focus into it.
Completing moves focus back to the parent; nothing is deleted. The whole tree
is written to a JSON file after every change.

Run without a subcommand to show the focused task.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if d.c == nil {
				dir, err := app.ResolveStateDir(stateDir)
				if err != nil {
					return err
				}
				built, err := app.New(dir)
				if err != nil {
					return fmt.Errorf("failed to initialize: %w", err)
				}
				d.c = built
			}

			for _, w := range d.c.AppConfig.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if d.c == nil {
				return nil
			}
			return d.c.Close()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStatus(cmd, d, statusOptions{})
		},
	}

	root.PersistentFlags().StringVar(&stateDir, "dir", "", "State directory (default: $FOCUS_HOME or $XDG_DATA_HOME/focus)")

	root.AddGroup(
		&cobra.Group{ID: groupTask, Title: "Task Commands:"},
		&cobra.Group{ID: groupView, Title: "View Commands:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	addCmd := newAddCommand(d)
	addCmd.GroupID = groupTask

	renameCmd := newRenameCommand(d)
	renameCmd.GroupID = groupTask

	doneCmd := newDoneCommand(d)
	doneCmd.GroupID = groupTask

	resetCmd := newResetCommand(d)
	resetCmd.GroupID = groupTask

	statusCmd := newStatusCommand(d)
	statusCmd.GroupID = groupView

	treeCmd := newTreeCommand(d)
	treeCmd.GroupID = groupView

	barCmd := newBarCommand(d)
	barCmd.GroupID = groupView

	watchCmd := newWatchCommand(d)
	watchCmd.GroupID = groupView

	configCmd := newConfigCommand(d)
	configCmd.GroupID = groupSetup

	root.AddCommand(
		addCmd,
		renameCmd,
		doneCmd,
		resetCmd,
		statusCmd,
		treeCmd,
		barCmd,
		watchCmd,
		configCmd,
	)

	return root
}

// openTree loads the task tree and reports the load outcome on stderr.
// A snapshot left for inspection is returned as an error.
func openTree(cmd *cobra.Command, d *deps) (*usecase.TaskTree, error) {
	c, err := d.container()
	if err != nil {
		return nil, err
	}
	tree, err := c.OpenTree()
	if err != nil {
		return nil, err
	}

	w := cmd.ErrOrStderr()
	res := tree.LoadResult()
	switch res.Status {
	case usecase.LoadCreated:
		_, _ = fmt.Fprintf(w, "Created %s\n", tree.Path())
	case usecase.LoadRecreated:
		_, _ = fmt.Fprintf(w, "Task file %s was not in the expected format (%v); recreated it.\n", tree.Path(), res.Cause)
	case usecase.LoadNotLoaded:
		return nil, fmt.Errorf("task file %s left untouched for inspection: %w", tree.Path(), res.Cause)
	case usecase.LoadLoaded:
	}
	if res.FocusMissing {
		_, _ = fmt.Fprintln(w, "Focused task not found in the task file; focus moved to the root.")
	}
	return tree, nil
}

// handleRefusal turns a refusal into an informational message.
// Other errors are returned unchanged.
func handleRefusal(cmd *cobra.Command, err error) error {
	if err == nil || !domain.IsRefusal(err) || errors.Is(err, domain.ErrNotLoaded) {
		return err
	}
	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Nothing changed: %v\n", err)
	return nil
}
