package pipeline

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/asciidag/pkg/cache"
	"github.com/matzehuels/asciidag/pkg/dag"
	"github.com/matzehuels/asciidag/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different graphs.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute renders g in every requested format.
//
// The Mode option, when set, is applied to g before rendering. Formats are
// looked up in the cache first; the misses render concurrently and are
// written back. A failing format cancels the others and its error is
// returned.
func (r *Runner) Execute(ctx context.Context, g *dag.DAG, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	mode := opts.RenderMode(g)
	g.SetRenderMode(mode)

	result := &Result{
		GraphHash: cache.GraphHash(g),
		Mode:      mode,
		Artifacts: make(map[string][]byte, len(opts.Formats)),
		Stats: Stats{
			NodeCount: g.NodeCount(),
			EdgeCount: g.EdgeCount(),
		},
	}

	start := time.Now()
	var mu sync.Mutex
	eg, egCtx := errgroup.WithContext(ctx)
	for _, format := range opts.Formats {
		eg.Go(func() error {
			data, hit, err := r.renderCached(egCtx, g, result.GraphHash, format, opts)
			if err != nil {
				return fmt.Errorf("render %s: %w", format, err)
			}
			mu.Lock()
			defer mu.Unlock()
			result.Artifacts[format] = data
			if hit {
				result.CacheInfo.Hits = append(result.CacheInfo.Hits, format)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	result.Stats.RenderTime = time.Since(start)
	slices.Sort(result.CacheInfo.Hits)
	result.CacheInfo.RenderHit = len(result.CacheInfo.Hits) == len(opts.Formats)

	r.Logger.Info("rendered graph",
		"nodes", result.Stats.NodeCount,
		"edges", result.Stats.EdgeCount,
		"mode", mode,
		"formats", opts.Formats,
		"cached", result.CacheInfo.Hits,
		"duration", result.Stats.RenderTime)
	if r.Logger.GetLevel() <= log.DebugLevel {
		stats := DescribeLayout(g)
		r.Logger.Debug("layout",
			"components", stats.Components,
			"levels", stats.Levels,
			"width", stats.Width,
			"crossings", stats.Crossings,
			"cyclic", stats.Cyclic)
	}

	return result, nil
}

// renderCached returns the artifact for one format, from the cache when
// possible. Cache failures are logged and treated as misses.
func (r *Runner) renderCached(ctx context.Context, g *dag.DAG, graphHash, format string, opts Options) ([]byte, bool, error) {
	hooks := observability.Cache()
	key := r.Keyer.ArtifactKey(graphHash, opts.ArtifactKeyOpts(g.Mode(), format))

	if !opts.NoCache {
		data, hit, err := r.Cache.Get(ctx, key)
		if err != nil {
			r.Logger.Warn("cache read failed", "format", format, "error", err)
		}
		if err == nil && hit {
			hooks.OnCacheHit(ctx, format)
			return data, true, nil
		}
		hooks.OnCacheMiss(ctx, format)
	}

	data, err := r.render(ctx, g, format, opts)
	if err != nil {
		return nil, false, err
	}

	if !opts.NoCache {
		if err := r.Cache.Set(ctx, key, data, opts.CacheTTL); err != nil {
			r.Logger.Warn("cache write failed", "format", format, "error", err)
		} else {
			hooks.OnCacheSet(ctx, format, len(data))
		}
	}
	return data, false, nil
}

func (r *Runner) render(ctx context.Context, g *dag.DAG, format string, opts Options) ([]byte, error) {
	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, format, g.NodeCount())
	start := time.Now()

	data, err := RenderFormat(ctx, g, format, opts)

	hooks.OnRenderComplete(ctx, format, time.Since(start), err)
	r.Logger.Debug("rendered format", "format", format, "bytes", len(data), "duration", time.Since(start))
	return data, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
