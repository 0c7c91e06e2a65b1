package pipeline

import (
	"bytes"
	"context"
	"strings"

	"github.com/matzehuels/asciidag/pkg/dag"
	"github.com/matzehuels/asciidag/pkg/errors"
	"github.com/matzehuels/asciidag/pkg/io"
	"github.com/matzehuels/asciidag/pkg/render/ascii"
	"github.com/matzehuels/asciidag/pkg/render/nodelink"
)

// RenderFormat produces a single artifact. g must not be modified while
// RenderFormat runs; several formats of the same graph may render at once.
func RenderFormat(ctx context.Context, g *dag.DAG, format string, opts Options) ([]byte, error) {
	switch format {
	case FormatText:
		var sb strings.Builder
		ascii.RenderTo(g, &sb)
		return []byte(sb.String()), nil
	case FormatDOT:
		return []byte(toDOT(g, opts)), nil
	case FormatSVG:
		svg, err := nodelink.RenderSVG(ctx, toDOT(g, opts))
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "render svg")
		}
		return svg, nil
	case FormatJSON:
		var buf bytes.Buffer
		if err := io.WriteJSON(g, &buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, ValidateFormat(format)
	}
}

func toDOT(g *dag.DAG, opts Options) string {
	return nodelink.ToDOT(g, nodelink.Options{Detailed: opts.Detailed, Ranked: true})
}

// RenderText renders the text diagram of g with mode applied, without the
// cache. It is the fast path used by the viewer and watch loops.
func RenderText(g *dag.DAG, mode dag.RenderMode) string {
	g.SetRenderMode(mode)
	return ascii.Render(g)
}
