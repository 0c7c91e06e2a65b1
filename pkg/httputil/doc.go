// Package httputil downloads graph documents over HTTP.
//
// A [Fetcher] wraps an http.Client with the artifact cache and the retry
// policy from the cache package:
//
//	f := httputil.NewFetcher(store)
//	data, err := f.Get(ctx, "https://example.com/deps.json")
//
// Network errors, 429 and 5xx responses are retried with exponential
// backoff. Successful bodies are cached under a key derived from the URL
// for [DefaultTTL], so repeated renders of the same remote graph do not hit
// the network. Bodies larger than [DefaultMaxBytes] are rejected with
// TOO_LARGE.
package httputil
