package httputil

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/asciidag/pkg/buildinfo"
	"github.com/matzehuels/asciidag/pkg/cache"
	"github.com/matzehuels/asciidag/pkg/errors"
)

const (
	// DefaultTTL is how long fetched documents stay cached.
	DefaultTTL = 10 * time.Minute

	// DefaultMaxBytes caps the size of a fetched document.
	DefaultMaxBytes = 8 << 20

	defaultTimeout = 30 * time.Second
)

// Fetcher downloads documents with caching and retries.
type Fetcher struct {
	Client   *http.Client
	Cache    cache.Cache
	TTL      time.Duration
	MaxBytes int64

	// Logger receives cache failures. Nothing is logged when nil.
	Logger *log.Logger
}

// NewFetcher creates a Fetcher backed by c. A nil cache disables caching.
func NewFetcher(c cache.Cache) *Fetcher {
	if c == nil {
		c = cache.NewNullCache()
	}
	return &Fetcher{
		Client:   &http.Client{Timeout: defaultTimeout},
		Cache:    c,
		TTL:      DefaultTTL,
		MaxBytes: DefaultMaxBytes,
	}
}

// IsURL reports whether s names an http or https resource.
func IsURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// Get returns the body at url, from the cache when possible.
func (f *Fetcher) Get(ctx context.Context, url string) ([]byte, error) {
	key := "fetch:" + cache.Hash([]byte(url))
	data, ok, err := f.Cache.Get(ctx, key)
	if err != nil {
		f.warn("cache read failed", "url", url, "error", err)
	} else if ok {
		return data, nil
	}

	var body []byte
	err = cache.RetryWithBackoff(ctx, func() error {
		var err error
		body, err = f.fetch(ctx, url)
		return err
	})
	if err != nil {
		return nil, err
	}

	if err := f.Cache.Set(ctx, key, body, f.TTL); err != nil {
		f.warn("cache write failed", "url", url, "error", err)
	}
	return body, nil
}

func (f *Fetcher) warn(msg string, keyvals ...any) {
	if f.Logger != nil {
		f.Logger.Warn(msg, keyvals...)
	}
}

func (f *Fetcher) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "bad URL %s", url)
	}
	req.Header.Set("User-Agent", "asciidag/"+buildinfo.Version)
	req.Header.Set("Accept", "application/json, application/toml, text/plain;q=0.5")

	resp, err := f.Client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, cache.Retryable(fmt.Errorf("get %s: %w", url, err))
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, errors.New(errors.ErrCodeNotFound, "%s: not found", url)
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return nil, cache.Retryable(fmt.Errorf("get %s: %s", url, resp.Status))
	case resp.StatusCode != http.StatusOK:
		return nil, errors.New(errors.ErrCodeInvalidInput, "get %s: %s", url, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, f.MaxBytes+1))
	if err != nil {
		return nil, cache.Retryable(fmt.Errorf("read %s: %w", url, err))
	}
	if int64(len(data)) > f.MaxBytes {
		return nil, errors.New(errors.ErrCodeTooLarge, "%s exceeds %d bytes", url, f.MaxBytes)
	}
	return data, nil
}
