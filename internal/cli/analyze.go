package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/asciidag/pkg/analysis"
	"github.com/matzehuels/asciidag/pkg/dag"
	"github.com/matzehuels/asciidag/pkg/errors"
	"github.com/matzehuels/asciidag/pkg/pipeline"
)

// graphReport is the --json output of the stats command.
type graphReport struct {
	analysis.Metrics
	Layout       pipeline.LayoutStats `json:"layout"`
	Mode         string               `json:"mode"`
	Placeholders int                  `json:"placeholders"`
}

// statsCommand creates the stats command.
func (c *CLI) statsCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "stats [file]",
		Short: "Print graph and layout metrics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := c.load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			report := buildReport(g)
			if asJSON {
				enc := json.NewEncoder(c.out)
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}
			c.printReport(report)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print metrics as JSON")
	return cmd
}

func buildReport(g *dag.DAG) graphReport {
	ids, deps := analysis.FromDAG(g)
	return graphReport{
		Metrics:      analysis.ComputeMetrics(ids, deps),
		Layout:       pipeline.DescribeLayout(g),
		Mode:         g.ResolveMode().String(),
		Placeholders: len(placeholderIDs(g)),
	}
}

func (c *CLI) printReport(r graphReport) {
	fmt.Fprintln(c.out, StyleTitle.Render("Graph"))
	printKeyValue(c.out, "Nodes", strconv.Itoa(r.NodeCount))
	printKeyValue(c.out, "Edges", strconv.Itoa(r.EdgeCount))
	printKeyValue(c.out, "Roots", strconv.Itoa(r.RootCount))
	printKeyValue(c.out, "Leaves", strconv.Itoa(r.LeafCount))
	printKeyValue(c.out, "Placeholders", strconv.Itoa(r.Placeholders))
	printKeyValue(c.out, "Max depth", strconv.Itoa(r.MaxDepth))
	printKeyValue(c.out, "Density", strconv.FormatFloat(r.Density(), 'f', 3, 64))

	fmt.Fprintln(c.out, StyleTitle.Render("Layout"))
	printKeyValue(c.out, "Mode", r.Mode)
	printKeyValue(c.out, "Components", strconv.Itoa(r.Layout.Components))
	if r.Layout.Cyclic {
		printKeyValue(c.out, "Cyclic", "yes")
		return
	}
	printKeyValue(c.out, "Levels", strconv.Itoa(r.Layout.Levels))
	printKeyValue(c.out, "Width", strconv.Itoa(r.Layout.Width))
	printKeyValue(c.out, "Crossings", strconv.Itoa(r.Layout.Crossings))
}

// topoCommand creates the topo command.
func (c *CLI) topoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "topo [file]",
		Short: "Print nodes in dependency order (parents before children)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := c.load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			order, err := topoOrder(g)
			if err != nil {
				return err
			}
			for _, id := range order {
				fmt.Fprintln(c.out, g.FormatNode(id))
			}
			return nil
		},
	}
}

func topoOrder(g *dag.DAG) ([]uint, error) {
	ids, deps := analysis.FromDAG(g)
	order, err := analysis.TopologicalSort(ids, deps)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeCycleDetected, err, "no topological order")
	}
	return order, nil
}

// impactCommand creates the impact command.
func (c *CLI) impactCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "impact [file] [node-id]",
		Short: "Print what a node depends on and what depends on it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return errors.New(errors.ErrCodeInvalidInput, "node id must be a non-negative integer: %q", args[1])
			}
			g, err := c.load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return c.printImpact(g, uint(id))
		},
	}
}

func (c *CLI) printImpact(g *dag.DAG, id uint) error {
	if _, ok := g.Index(id); !ok {
		return errors.New(errors.ErrCodeNotFound, "node %d not found", id)
	}
	ids, deps := analysis.FromDAG(g)
	upstream, downstream := analysis.BlastRadius(ids, id, deps)

	fmt.Fprintln(c.out, StyleTitle.Render(g.FormatNode(id)))
	c.printIDList("Depends on", g, upstream)
	c.printIDList("Affects", g, downstream)
	return nil
}

func (c *CLI) printIDList(title string, g *dag.DAG, ids []uint) {
	fmt.Fprintf(c.out, "%s %s\n", title, StyleNumber.Render(fmt.Sprintf("(%d)", len(ids))))
	for _, id := range ids {
		fmt.Fprintf(c.out, "  %s\n", g.FormatNode(id))
	}
}
