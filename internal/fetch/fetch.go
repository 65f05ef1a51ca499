// Package fetch is the single outbound HTTP path. Every request carries
// the identifying User-Agent header the SEC asks automated clients to
// send; the Frankfurt API gets the same treatment.
package fetch

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"

	"ownership-watch/internal/config"
)

// Client wraps a shared resty client with the outbound identity headers.
type Client struct {
	rc *resty.Client
}

// New builds a client from the HTTP section of the config. The retry
// policy applies uniformly; callers decide whether an exhausted request
// is fatal (primary feed) or degrading (secondary document).
func New(cfg config.HTTPConfig, userAgent string) *Client {
	rc := resty.New().
		SetTimeout(cfg.Timeout.Std()).
		SetRetryCount(cfg.Retries).
		SetRetryWaitTime(cfg.RetryWait.Std()).
		SetHeader("User-Agent", userAgent)
	return &Client{rc: rc}
}

// Get fetches url and returns the body. Non-2xx statuses are errors;
// the body is still consumed so the connection can be reused.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	resp, err := c.rc.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", url, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("get %s: http %d", url, resp.StatusCode())
	}
	return resp.Body(), nil
}
