// Package http provides the HTTP transport for legislativa: a Fetcher that
// downloads source pages and PDFs, and a gin-based Server that exposes the
// catalog and question endpoints.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/Maikl76/legislativa"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 30 * time.Second

// DefaultMaxBytes caps the size of a downloaded body.
const DefaultMaxBytes = 64 << 20

// Ensure Fetcher implements legislativa.Fetcher at compile time.
var _ legislativa.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves page and PDF bodies using plain HTTP GET requests.
// Each call is a single attempt; there is no retry.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
	maxBytes  int64
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (30s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithMaxBytes sets the largest accepted response body. Larger bodies are
// an EFETCH error rather than being cut short.
func WithMaxBytes(n int64) Option {
	return func(f *Fetcher) {
		f.maxBytes = n
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:  DefaultFetchTimeout,
		maxBytes: DefaultMaxBytes,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the body of the given URL.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, legislativa.Errorf(legislativa.EFETCH, "invalid URL %q: %v", url, err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, legislativa.Errorf(legislativa.EFETCH, "GET %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, legislativa.Errorf(legislativa.EFETCH, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	if err != nil {
		return nil, legislativa.Errorf(legislativa.EFETCH, "read %s: %v", url, err)
	}
	if int64(len(body)) > f.maxBytes {
		return nil, legislativa.Errorf(legislativa.EFETCH, "body of %s exceeds %d bytes", url, f.maxBytes)
	}

	return body, nil
}
