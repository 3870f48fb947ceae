// Package fetch implements the Fetcher interface.
// It performs HTTP GET requests with bounded retries and exponential
// backoff, so transient network failures never leak past this package.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/gaurav-prasanna/pagescrape/core"
)

const (
	defaultTimeout = 10 * time.Second
	// Some origins reject unknown clients, so we present a browser identity.
	defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
)

// Config carries everything one logical page retrieval needs.
// It is a value type: immutable once handed to New, so no retry can
// observe a half-updated configuration.
type Config struct {
	URL string
	// Timeout bounds each individual attempt, not the whole retry loop.
	Timeout time.Duration
	// MaxRetries is the total number of attempts allowed, including the
	// first. Must be positive.
	MaxRetries int
	// Headers are sent verbatim with every attempt.
	Headers map[string]string
}

// DefaultHeaders returns the fixed header set sent when a Config carries none.
func DefaultHeaders() map[string]string {
	return map[string]string{
		"User-Agent": defaultUserAgent,
		"Accept":     "text/html,application/xhtml+xml",
	}
}

// Fetcher fetches a single web page with retry and backoff.
type Fetcher struct {
	cfg    Config
	client *http.Client
	sleep  func(time.Duration)
}

// New validates cfg and creates a Fetcher. A non-positive retry bound is a
// configuration error and is rejected here, before any network I/O.
func New(cfg Config) (*Fetcher, error) {
	if cfg.MaxRetries <= 0 {
		return nil, fmt.Errorf("max retries must be positive, got %d", cfg.MaxRetries)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.Headers == nil {
		cfg.Headers = DefaultHeaders()
	}
	return &Fetcher{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		sleep:  time.Sleep,
	}, nil
}

// Fetch retrieves the configured URL. Each failed attempt is followed by a
// wait of 2^attempt seconds before the next one; once all attempts are
// spent, the last error is returned wrapped in a *core.FetchError.
func (f *Fetcher) Fetch(ctx context.Context) (*core.FetchResult, error) {
	var lastErr error
	for attempt := 0; attempt < f.cfg.MaxRetries; attempt++ {
		log.Debug().
			Str("url", f.cfg.URL).
			Int("attempt", attempt+1).
			Int("max_retries", f.cfg.MaxRetries).
			Msg("fetching page")

		result, err := f.tryOnce(ctx)
		if err == nil {
			log.Debug().Str("url", f.cfg.URL).Int("status", result.StatusCode).Msg("page fetched")
			return result, nil
		}
		lastErr = err

		if attempt < f.cfg.MaxRetries-1 {
			wait := time.Duration(1<<attempt) * time.Second
			log.Debug().Err(err).Dur("wait", wait).Msg("attempt failed, backing off")
			f.sleep(wait)
		}
	}
	return nil, &core.FetchError{Attempts: f.cfg.MaxRetries, Err: lastErr}
}

// tryOnce issues a single GET. Every attempt builds a fresh request and
// shares nothing with prior attempts.
func (f *Fetcher) tryOnce(ctx context.Context) (*core.FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.cfg.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	for name, value := range f.cfg.Headers {
		req.Header.Set(name, value)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", f.cfg.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d for %s", resp.StatusCode, f.cfg.URL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	return &core.FetchResult{
		URL:        f.cfg.URL,
		StatusCode: resp.StatusCode,
		HTML:       string(body),
	}, nil
}
