package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/asciidag/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string // output file (single format) or base path (multiple)
	mode     string // auto, vertical or horizontal
	formats  string // comma-separated: text, dot, svg, json
	detailed bool   // IDs and levels in DOT/SVG labels
	noCache  bool   // bypass the artifact cache
	watch    bool   // re-render whenever the input changes
}

// fileExt maps formats to output file extensions.
var fileExt = map[string]string{
	pipeline.FormatText: ".txt",
	pipeline.FormatDOT:  ".dot",
	pipeline.FormatSVG:  ".svg",
	pipeline.FormatJSON: ".json",
}

// renderCommand creates the render command.
//
// A single text, dot or json format without --output prints to stdout.
// SVG output and multiple formats are written to files next to the input
// (or under the --output base path).
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a graph file as text, DOT, SVG or JSON",
		Long: `Render reads a graph definition (.json or .toml, or - for JSON on stdin)
and draws it. Simple chains print on one line; everything else is laid out
in levels with box-drawing connectors.`,
		Example: `  asciidag render deps.toml
  asciidag render deps.json -m vertical
  asciidag render deps.json -f text,svg -o out/deps
  asciidag render deps.toml --watch`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			popts := c.renderOptions(cmd, opts.mode, opts.formats, opts.detailed, opts.noCache)
			if err := popts.ValidateAndSetDefaults(); err != nil {
				return err
			}
			if opts.watch {
				return c.watchRender(cmd.Context(), args[0], &opts, popts)
			}
			return c.runRender(cmd.Context(), args[0], &opts, popts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&opts.mode, "mode", "m", "", "render mode: auto, vertical, horizontal (default: from graph file)")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): text (default), dot, svg, json (comma-separated)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show IDs and levels in DOT/SVG labels")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "re-render when the input file changes")
	_ = cmd.RegisterFlagCompletionFunc("mode", completeModes)
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions([]string{"text", "dot", "svg", "json"}, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

// runRender loads the input, renders every requested format and writes the
// artifacts.
func (c *CLI) runRender(ctx context.Context, input string, opts *renderOpts, popts pipeline.Options) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	g, err := c.load(ctx, input)
	if err != nil {
		return err
	}
	logger.Debugf("Loaded graph: %d nodes, %d edges", g.NodeCount(), g.EdgeCount())

	runner, err := c.newRunner(ctx, popts.NoCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	spin := startSpinner(ctx, fmt.Sprintf("Rendering %d nodes...", g.NodeCount()))
	result, err := runner.Execute(ctx, g, popts)
	spin.Stop()
	if err != nil {
		return err
	}

	if err := c.writeArtifacts(result, popts.Formats, opts.output, input); err != nil {
		return err
	}
	prog.done("rendered", "input", input, "formats", popts.Formats, "cached", result.CacheInfo.RenderHit)
	return nil
}

// writeArtifacts sends each artifact to stdout or a file.
func (c *CLI) writeArtifacts(result *pipeline.Result, formats []string, output, input string) error {
	if len(formats) == 1 {
		format := formats[0]
		data := result.Artifacts[format]
		if output == "" && format != pipeline.FormatSVG {
			_, err := c.out.Write(data)
			return err
		}
		path := output
		if path == "" {
			path = basePath("", input) + fileExt[format]
		}
		if err := writeFile(path, data); err != nil {
			return err
		}
		printSuccess("Wrote %s", format)
		printFile(path)
		printStats(result.Stats.NodeCount, result.Stats.EdgeCount, result.CacheInfo.RenderHit)
		return nil
	}

	base := basePath(output, input)
	printSuccess("Wrote %s", strings.Join(formats, ", "))
	for _, format := range formats {
		path := base + fileExt[format]
		if err := writeFile(path, result.Artifacts[format]); err != nil {
			return err
		}
		printFile(path)
	}
	printStats(result.Stats.NodeCount, result.Stats.EdgeCount, result.CacheInfo.RenderHit)
	return nil
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.svg, .txt, etc.), it strips that extension.
func basePath(output, input string) string {
	if output == "" {
		if input == "-" {
			return "graph"
		}
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	for _, known := range fileExt {
		if ext == known {
			return strings.TrimSuffix(output, ext)
		}
	}
	return output
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
