package fetch

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

const (
	DefaultTimeout  = 25 * time.Second
	DefaultAttempts = 2

	// Some of the institutional boards serve an empty shell to clients
	// that do not look like a desktop browser.
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"
)

type Config struct {
	Timeout  time.Duration
	Attempts int
	// SkipTLSVerify disables certificate checks. A couple of the smaller
	// boards run with incomplete chains; keep this off unless a source
	// actually needs it.
	SkipTLSVerify bool
}

// Client is a retrying HTTP GET client shared by the feed and markup
// extractors. It spoofs a browser user agent and rate-limits per host.
type Client struct {
	hc       *http.Client
	attempts int
	limiter  *HostLimiter
}

func New(cfg Config, limiter *HostLimiter) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	attempts := cfg.Attempts
	if attempts <= 0 {
		attempts = DefaultAttempts
	}

	hc := &http.Client{Timeout: timeout}
	if cfg.SkipTLSVerify {
		hc.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}

	return &Client{hc: hc, attempts: attempts, limiter: limiter}
}

// Get fetches rawURL, retrying transport errors and HTTP >= 400 with a
// linear backoff (1.5s, then 3s, ...). The last error is returned once
// attempts are exhausted.
func (c *Client) Get(ctx context.Context, rawURL string) ([]byte, error) {
	var lastErr error
	for attempt := 1; attempt <= c.attempts; attempt++ {
		body, err := c.once(ctx, rawURL)
		if err == nil {
			return body, nil
		}
		lastErr = err
		log.Printf("⚠️ GET %s attempt %d/%d failed: %v", rawURL, attempt, c.attempts, err)

		if attempt == c.attempts {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(time.Duration(attempt) * 1500 * time.Millisecond):
		}
	}
	return nil, fmt.Errorf("get %s: %w", rawURL, lastErr)
}

func (c *Client) once(ctx context.Context, rawURL string) ([]byte, error) {
	if c.limiter != nil {
		if err := c.limiter.WaitURL(ctx, rawURL); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	res, err := c.hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("status %d", res.StatusCode)
	}
	return io.ReadAll(res.Body)
}
