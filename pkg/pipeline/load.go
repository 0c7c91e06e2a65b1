package pipeline

import (
	"bytes"
	"context"
	"net/url"
	"path"
	"time"

	"github.com/matzehuels/asciidag/pkg/dag"
	"github.com/matzehuels/asciidag/pkg/errors"
	"github.com/matzehuels/asciidag/pkg/httputil"
	"github.com/matzehuels/asciidag/pkg/io"
	"github.com/matzehuels/asciidag/pkg/observability"
)

// Load reads the graph at path without a download cache. See [LoadWith].
func Load(ctx context.Context, path string) (*dag.DAG, error) {
	return LoadWith(ctx, path, nil)
}

// LoadWith reads a graph from a file, from stdin ("-"), or from an http(s)
// URL fetched with f. A nil f fetches without caching. See [io.Import] for
// the supported file formats; URLs without a .toml suffix are read as JSON.
func LoadWith(ctx context.Context, source string, f *httputil.Fetcher) (*dag.DAG, error) {
	hooks := observability.Pipeline()
	hooks.OnLoadStart(ctx, source)
	start := time.Now()

	var g *dag.DAG
	var err error
	if httputil.IsURL(source) {
		g, err = loadURL(ctx, source, f)
	} else {
		g, err = io.Import(source)
	}

	nodes := 0
	if g != nil {
		nodes = g.NodeCount()
	}
	hooks.OnLoadComplete(ctx, source, nodes, time.Since(start), err)
	return g, err
}

func loadURL(ctx context.Context, source string, f *httputil.Fetcher) (*dag.DAG, error) {
	u, err := url.Parse(source)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "parse %s", source)
	}
	format := io.FormatJSON
	if path.Ext(u.Path) == ".toml" {
		format = io.FormatTOML
	}

	if f == nil {
		f = httputil.NewFetcher(nil)
	}
	data, err := f.Get(ctx, source)
	if err != nil {
		return nil, err
	}
	g, err := io.Read(bytes.NewReader(data), format)
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "read %s", source)
	}
	return g, nil
}
