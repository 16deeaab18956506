package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/runoshun/focustree/internal/domain"
	"github.com/runoshun/focustree/internal/infra/jsonstore"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Tree output formats.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// newTreeCommand creates the tree command.
func newTreeCommand(d *deps) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Print the whole task tree",
		Long: `Print the whole task tree, marking the focused task with '*'.

Formats:
  text  indented outline (default)
  json  the snapshot as stored
  yaml  the snapshot as YAML`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tree, err := openTree(cmd, d)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			switch format {
			case formatText:
				writeTreeText(w, tree.Root(), tree.Focus().ID)
				return nil
			case formatJSON:
				content, err := jsonstore.Encode(tree.Snapshot())
				if err != nil {
					return err
				}
				_, err = w.Write(content)
				return err
			case formatYAML:
				enc := yaml.NewEncoder(w)
				enc.SetIndent(2)
				if err := enc.Encode(tree.Snapshot()); err != nil {
					return fmt.Errorf("encode yaml: %w", err)
				}
				return enc.Close()
			default:
				return fmt.Errorf("unknown format %q (want text, json, or yaml)", format)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatText, "Output format: text, json, yaml")

	return cmd
}

// writeTreeText writes one line per node, indented four spaces per level.
func writeTreeText(w io.Writer, root *domain.Node, focusID string) {
	domain.Walk(root, func(n *domain.Node, depth int) bool {
		marker := "-"
		if n.ID == focusID {
			marker = "*"
		}
		_, _ = fmt.Fprintf(w, "%s%s %s (%s)\n", strings.Repeat("    ", depth), marker, n.Name, domain.ShortID(n.ID))
		return true
	})
}
