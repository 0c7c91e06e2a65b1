// Package cli implements the asciidag command-line interface.
//
// # Commands
//
//   - render: Draw a graph file as text, DOT, SVG or JSON (optionally on every save)
//   - check: Report whether a graph is acyclic and which IDs are placeholders
//   - stats: Print graph and layout metrics
//   - topo: Print a dependency-first ordering
//   - impact: Print what a node depends on and what depends on it
//   - view: Browse a rendered graph interactively
//   - serve: Run the HTTP render service
//   - cache: Manage the artifact cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
//
// # Configuration
//
// Defaults are read from $XDG_CONFIG_HOME/asciidag/config.toml (or the file
// given with --config); command-line flags override the file.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/asciidag/pkg/buildinfo"
	"github.com/matzehuels/asciidag/pkg/cache"
	"github.com/matzehuels/asciidag/pkg/dag"
	"github.com/matzehuels/asciidag/pkg/httputil"
	"github.com/matzehuels/asciidag/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "asciidag"

	// envRedisURL selects the Redis cache when --redis-url is not given.
	envRedisURL = "ASCIIDAG_REDIS_URL"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	config     pipeline.Config
	out        io.Writer // command output (diagrams, reports)
}

// New creates a new CLI instance with a default logger writing to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		out:    os.Stdout,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "asciidag draws directed acyclic graphs as text",
		Long:          `asciidag lays out directed graphs in levels and draws them with Unicode box characters, so they can be pasted into terminals, code comments and commit messages.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			path := c.configPath
			explicit := cmd.Flags().Changed("config")
			if !explicit {
				path = pipeline.DefaultConfigPath()
			}
			cfg, err := pipeline.LoadConfig(path, explicit)
			if err != nil {
				return err
			}
			c.config = cfg
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/asciidag/config.toml)")

	// Register all subcommands
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.checkCommand())
	root.AddCommand(c.statsCommand())
	root.AddCommand(c.topoCommand())
	root.AddCommand(c.impactCommand())
	root.AddCommand(c.viewCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	store, err := c.newCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	return c.newRunnerWith(store), nil
}

// newRunnerWith creates a runner over store with version-scoped keys.
func (c *CLI) newRunnerWith(store cache.Cache) *pipeline.Runner {
	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), buildinfo.CacheScope())
	return pipeline.NewRunner(store, keyer, c.Logger)
}

// newCache picks the Redis cache when a URL is configured, the file cache
// otherwise.
func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if url := c.redisURL(""); url != "" {
		return cache.NewRedisCache(ctx, url, appName+":")
	}
	dir, err := c.cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// load reads a graph file, stdin or URL. Downloads go through the artifact
// cache.
func (c *CLI) load(ctx context.Context, source string) (*dag.DAG, error) {
	if !httputil.IsURL(source) {
		return pipeline.Load(ctx, source)
	}
	store, err := c.newCache(ctx, false)
	if err != nil {
		c.Logger.Warn("download cache unavailable", "err", err)
		store = cache.NewNullCache()
	}
	defer store.Close()
	f := httputil.NewFetcher(store)
	f.Logger = c.Logger
	return pipeline.LoadWith(ctx, source, f)
}

// redisURL resolves the Redis URL: flag, then environment, then config file.
func (c *CLI) redisURL(flag string) string {
	if flag != "" {
		return flag
	}
	if env := os.Getenv(envRedisURL); env != "" {
		return env
	}
	return c.config.RedisURL
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory: the config file's cache_dir, or the
// XDG standard (~/.cache/asciidag/).
func (c *CLI) cacheDir() (string, error) {
	if c.config.CacheDir != "" {
		return c.config.CacheDir, nil
	}
	return cacheDir()
}

func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// renderOptions merges config file values with flags that were set
// explicitly on cmd.
func (c *CLI) renderOptions(cmd *cobra.Command, mode, formats string, detailed, noCache bool) pipeline.Options {
	opts := c.config.Options
	opts.Formats = append([]string(nil), opts.Formats...)
	flags := cmd.Flags()
	if flags.Changed("mode") {
		opts.Mode = mode
	}
	if flags.Changed("format") {
		opts.Formats = pipeline.ParseFormats(formats)
	}
	if flags.Changed("detailed") {
		opts.Detailed = detailed
	}
	if flags.Changed("no-cache") {
		opts.NoCache = noCache
	}
	opts.Logger = c.Logger
	return opts
}
