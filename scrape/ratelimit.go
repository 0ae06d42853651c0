package scrape

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/Maikl76/legislativa"
	"golang.org/x/time/rate"
)

var (
	_ legislativa.RateLimiter = (*HostLimiter)(nil)
	_ legislativa.Fetcher     = (*ThrottledFetcher)(nil)
)

// HostLimiter spaces out requests to each server. A source page and the
// PDFs it links to usually live on the same host and share one bucket;
// PDFs served from elsewhere are limited separately. Hosts are compared
// case-insensitively and without port.
type HostLimiter struct {
	mu      sync.Mutex
	buckets map[string]*rate.Limiter
	limit   rate.Limit
}

// NewHostLimiter allows rps requests per second to each host with no
// bursting. A non-positive rps disables limiting.
func NewHostLimiter(rps float64) *HostLimiter {
	limit := rate.Limit(rps)
	if rps <= 0 {
		limit = rate.Inf
	}
	return &HostLimiter{
		buckets: make(map[string]*rate.Limiter),
		limit:   limit,
	}
}

// Wait blocks until a request to rawURL may be sent.
func (h *HostLimiter) Wait(ctx context.Context, rawURL string) error {
	host, err := hostKey(rawURL)
	if err != nil {
		return err
	}
	return h.bucket(host).Wait(ctx)
}

func (h *HostLimiter) bucket(host string) *rate.Limiter {
	h.mu.Lock()
	defer h.mu.Unlock()

	b, ok := h.buckets[host]
	if !ok {
		b = rate.NewLimiter(h.limit, 1)
		h.buckets[host] = b
	}
	return b
}

func hostKey(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", legislativa.Errorf(legislativa.EINVALID, "invalid URL %q: %v", rawURL, err)
	}
	if u.Hostname() == "" {
		return "", legislativa.Errorf(legislativa.EINVALID, "URL %q has no host", rawURL)
	}
	return strings.ToLower(u.Hostname()), nil
}

// ThrottledFetcher waits on a RateLimiter before every fetch. Wrapping the
// fetcher shared by the scraper and the PDF extractor limits source pages
// and PDF downloads alike.
type ThrottledFetcher struct {
	Fetcher legislativa.Fetcher
	Limiter legislativa.RateLimiter
}

// Throttle wraps f so each request first waits on limiter.
func Throttle(f legislativa.Fetcher, limiter legislativa.RateLimiter) *ThrottledFetcher {
	return &ThrottledFetcher{Fetcher: f, Limiter: limiter}
}

// Fetch waits for the host of rawURL to allow a request, then fetches it.
func (f *ThrottledFetcher) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	if err := f.Limiter.Wait(ctx, rawURL); err != nil {
		return nil, fmt.Errorf("rate limit %s: %w", rawURL, err)
	}
	return f.Fetcher.Fetch(ctx, rawURL)
}
