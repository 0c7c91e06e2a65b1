package cli

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/matzehuels/asciidag/internal/server"
	"github.com/matzehuels/asciidag/pkg/cache"
	"github.com/matzehuels/asciidag/pkg/errors"
	"github.com/matzehuels/asciidag/pkg/observability"
)

// serveCommand creates the serve command, which runs the HTTP render service.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr     string
		redisURL string
		noCache  bool
		maxNodes int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP render service",
		Long: `Serve renders graphs posted to /render and reports structure on /check.
Prometheus metrics are exported on /metrics.

Artifacts are cached in Redis when --redis-url (or ASCIIDAG_REDIS_URL) is
set, and in the local cache directory otherwise.`,
		Example: `  asciidag serve --addr :8080
  asciidag serve --redis-url redis://localhost:6379/0`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			if url := c.redisURL(redisURL); url != "" {
				if err := errors.ValidateRedisURL(url); err != nil {
					return err
				}
			}
			if !cmd.Flags().Changed("addr") && c.config.Addr != "" {
				addr = c.config.Addr
			}

			store, err := c.serverCache(cmd, redisURL, noCache)
			if err != nil {
				return err
			}
			runner := c.newRunnerWith(store)
			defer runner.Close()

			reg := prometheus.NewRegistry()
			reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
			hooks := observability.NewPrometheusHooks(reg)
			observability.SetPipelineHooks(hooks)
			observability.SetCacheHooks(hooks)
			observability.SetHTTPHooks(hooks)
			defer observability.Reset()

			limits := errors.DefaultLimits
			if maxNodes > 0 {
				limits.MaxNodes = maxNodes
			}

			srv := server.New(server.Config{
				Addr:     addr,
				Runner:   runner,
				Limits:   limits,
				Gatherer: reg,
				Logger:   logger,
			})
			return srv.ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", server.DefaultAddr, "listen address")
	cmd.Flags().StringVar(&redisURL, "redis-url", "", "Redis URL for the artifact cache (env "+envRedisURL+")")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().IntVar(&maxNodes, "max-nodes", 0, "reject graphs with more nodes (default 5000)")

	return cmd
}

// serverCache builds the cache for serve, honoring the --redis-url flag.
func (c *CLI) serverCache(cmd *cobra.Command, flag string, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if url := c.redisURL(flag); url != "" {
		return cache.NewRedisCache(cmd.Context(), url, appName+":")
	}
	return c.newCache(cmd.Context(), false)
}
