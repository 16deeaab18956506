package cli

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/runoshun/focustree/internal/domain"
	"github.com/runoshun/focustree/internal/infra/jsonstore"
	"github.com/runoshun/focustree/internal/infra/watcher"
)

// newWatchCommand creates the watch command.
func newWatchCommand(d *deps) *cobra.Command {
	var showPath bool

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Print the focused task whenever it changes",
		Long: `Print the focused task, then print it again each time the task file
is rewritten. Useful for status bars. Stops on Ctrl-C.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tree, err := openTree(cmd, d)
			if err != nil {
				return err
			}
			c, _ := d.container()

			w, err := watcher.New(tree.Path())
			if err != nil {
				return err
			}
			defer func() { _ = w.Close() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			p := &focusPrinter{
				store:    jsonstore.New(tree.Path()),
				out:      cmd.OutOrStdout(),
				logger:   c.Logger,
				showPath: showPath,
			}
			p.print(focusLine(tree.FocusPath(), showPath))
			return w.Run(ctx, p.refresh)
		},
	}

	cmd.Flags().BoolVarP(&showPath, "path", "p", false, "Print the full path instead of the task name")
	return cmd
}

// focusPrinter prints the focus line each time it changes.
type focusPrinter struct {
	store    *jsonstore.Store
	out      io.Writer
	logger   domain.Logger
	last     string
	showPath bool
}

// refresh rereads the snapshot and prints the focus line if it changed.
// Partial or foreign writes are skipped until the next valid rewrite.
func (p *focusPrinter) refresh() {
	line, err := readFocusLine(p.store, p.showPath)
	if err != nil {
		p.logger.Debug("", "watch", err.Error())
		return
	}
	if line == p.last {
		return
	}
	p.print(line)
}

func (p *focusPrinter) print(line string) {
	p.last = line
	_, _ = fmt.Fprintln(p.out, line)
}

// readFocusLine reads the snapshot without locking it for writing or
// recovering it.
func readFocusLine(store *jsonstore.Store, showPath bool) (string, error) {
	snap, err := store.Load()
	if err != nil {
		return "", err
	}
	root, err := snap.Build()
	if err != nil {
		return "", err
	}
	path := domain.PathTo(root, snap.CurrentTaskID)
	if path == nil {
		path = []*domain.Node{root}
	}
	return focusLine(path, showPath), nil
}

func focusLine(path []*domain.Node, showPath bool) string {
	if showPath {
		return domain.FormatPath(path)
	}
	return path[len(path)-1].Name
}
