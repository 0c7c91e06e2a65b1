// Package pipeline turns graph definitions into rendered artifacts.
//
// It is the single code path shared by the CLI and the HTTP service:
//
//  1. Load: read a graph file into a [dag.DAG] ([Load])
//  2. Render: produce one artifact per requested format ([Runner.Execute])
//
// Supported formats are plain text (the layered ASCII/Unicode diagram),
// Graphviz DOT, SVG rendered from that DOT, and the JSON graph document.
// Artifacts are cached by graph content and options, and the requested
// formats render concurrently.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	g, err := pipeline.Load(ctx, "deps.toml")
//	if err != nil {
//	    return err
//	}
//	result, err := runner.Execute(ctx, g, pipeline.Options{Formats: []string{"text", "svg"}})
//	if err != nil {
//	    return err
//	}
//	fmt.Print(string(result.Artifacts["text"]))
package pipeline

import (
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/asciidag/pkg/cache"
	"github.com/matzehuels/asciidag/pkg/dag"
	"github.com/matzehuels/asciidag/pkg/errors"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

// DefaultCacheTTL is how long rendered artifacts stay cached.
const DefaultCacheTTL = 24 * time.Hour

// Format constants for output formats.
const (
	FormatText = "text"
	FormatDOT  = "dot"
	FormatSVG  = "svg"
	FormatJSON = "json"
)

// DefaultFormat is rendered when no format is requested.
const DefaultFormat = FormatText

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatText: true,
	FormatDOT:  true,
	FormatSVG:  true,
	FormatJSON: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for a render run. It is decoded from
// API requests (JSON) and from the config file (TOML).
type Options struct {
	// Mode overrides the graph's own render mode when set: auto, vertical
	// or horizontal. Empty keeps the mode the graph was built with.
	Mode string `json:"mode,omitempty" toml:"mode"`

	// Formats lists the artifacts to produce.
	Formats []string `json:"formats,omitempty" toml:"formats"`

	// Detailed adds IDs and levels to DOT and SVG node labels.
	Detailed bool `json:"detailed,omitempty" toml:"detailed"`

	// NoCache bypasses the artifact cache for reads and writes.
	NoCache bool `json:"no_cache,omitempty" toml:"no_cache"`

	// CacheTTL is the lifetime of cached artifacts.
	CacheTTL time.Duration `json:"-" toml:"cache_ttl"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-" toml:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// GraphHash is the content hash of the rendered graph.
	GraphHash string

	// Mode is the render mode the graph was rendered with.
	Mode dag.RenderMode

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which formats came from the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount  int
	EdgeCount  int
	RenderTime time.Duration
}

// CacheInfo tracks cache hits per format.
type CacheInfo struct {
	Hits      []string // Formats served from the cache
	RenderHit bool     // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: text, dot, svg, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateMode checks that a mode name is valid. The empty string is valid.
func ValidateMode(mode string) error {
	if _, err := dag.ParseRenderMode(mode); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidMode, err,
			"invalid mode: %q (must be one of: auto, vertical, horizontal)", mode)
	}
	return nil
}

// ParseFormats splits a comma-separated format list, trimming blanks and
// dropping duplicates.
func ParseFormats(s string) []string {
	var formats []string
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f != "" && !slices.Contains(formats, f) {
			formats = append(formats, f)
		}
	}
	return formats
}

// =============================================================================
// Options Methods
// =============================================================================

// SetDefaults fills unset fields.
func (o *Options) SetDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}
	if o.CacheTTL == 0 {
		o.CacheTTL = DefaultCacheTTL
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Validate checks the mode and every format.
func (o *Options) Validate() error {
	if err := ValidateMode(o.Mode); err != nil {
		return err
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.CacheTTL < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "cache_ttl must not be negative")
	}
	return nil
}

// ValidateAndSetDefaults applies defaults, then validates.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	o.SetDefaults()
	if err := o.Validate(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// RenderMode resolves the Mode override against g's own mode.
func (o *Options) RenderMode(g *dag.DAG) dag.RenderMode {
	if o.Mode == "" {
		return g.Mode()
	}
	mode, err := dag.ParseRenderMode(o.Mode)
	if err != nil {
		return g.Mode()
	}
	return mode
}

// ArtifactKeyOpts returns cache key options for one format.
func (o *Options) ArtifactKeyOpts(mode dag.RenderMode, format string) cache.RenderKeyOpts {
	return cache.RenderKeyOpts{
		Mode:     mode.String(),
		Format:   format,
		Detailed: o.Detailed,
	}
}
