package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/asciidag/pkg/dag"
	"github.com/matzehuels/asciidag/pkg/errors"
)

// checkCommand creates the check command, which validates a graph file
// without rendering it.
func (c *CLI) checkCommand() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Check a graph file for cycles and undeclared nodes",
		Long: `Check loads a graph and reports problems that would prevent a layered layout.
It exits non-zero when the graph has a cycle, or when --strict is given and
an edge references a node that was never declared.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := c.load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return c.check(g, args[0], strict)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "treat undeclared (placeholder) nodes as errors")
	return cmd
}

func (c *CLI) check(g *dag.DAG, name string, strict bool) error {
	placeholders := placeholderIDs(g)
	if len(placeholders) > 0 {
		printWarning("%d node(s) referenced by edges but never declared: %s",
			len(placeholders), joinIDs(g, placeholders))
	}

	if path, ok := g.FindCyclePath(); ok {
		printError("Cycle: %s", formatCycle(g, path))
		return errors.New(errors.ErrCodeCycleDetected, "%s contains a cycle", name)
	}
	if strict && len(placeholders) > 0 {
		return errors.New(errors.ErrCodeInvalidInput, "%s has undeclared nodes", name)
	}

	printSuccess("%s is acyclic", name)
	printStats(g.NodeCount(), g.EdgeCount(), false)
	return nil
}

// placeholderIDs lists nodes created implicitly by edges, in index order.
func placeholderIDs(g *dag.DAG) []uint {
	var ids []uint
	for _, n := range g.Nodes() {
		if g.IsAutoCreated(n.ID) {
			ids = append(ids, n.ID)
		}
	}
	return ids
}

// formatCycle closes the path back on its first node: [A] → [B] → [A].
func formatCycle(g *dag.DAG, path []uint) string {
	if len(path) == 0 {
		return ""
	}
	parts := make([]string, 0, len(path)+1)
	for _, id := range path {
		parts = append(parts, g.FormatNode(id))
	}
	parts = append(parts, g.FormatNode(path[0]))
	return strings.Join(parts, " → ")
}

func joinIDs(g *dag.DAG, ids []uint) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		if s := g.FormatNode(id); s != "" {
			parts[i] = s
		} else {
			parts[i] = fmt.Sprint(id)
		}
	}
	return strings.Join(parts, ", ")
}
