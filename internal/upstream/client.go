package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"hd2api/internal/shared/config"
	"hd2api/internal/shared/errors"
)

const maxErrorBody = 512

// Client issues throttled GET requests against one upstream base URL.
type Client struct {
	baseURL    string
	clientName string
	language   string
	http       *http.Client
	limiter    *rate.Limiter
	now        func() time.Time
}

// NewClient builds a client for baseURL from the upstream and rate limit
// settings.
func NewClient(baseURL string, cfg config.UpstreamConfig, limits config.RateLimitConfig) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		clientName: cfg.ClientName,
		language:   cfg.Language,
		http:       &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(rate.Limit(limits.UpstreamRequestsPerSecond), limits.UpstreamBurstSize),
		now:        time.Now,
	}
}

// getJSON fetches path and decodes the body into dst.
func (c *Client) getJSON(ctx context.Context, path string, params url.Values, dst any) error {
	logger := slog.With("component", "upstream_client", "operation", "get", "path", path)

	if err := c.limiter.Wait(ctx); err != nil {
		return errors.WrapExternal("upstream throttle wait cancelled", err)
	}

	target := c.baseURL + path
	if len(params) > 0 {
		target += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return errors.WrapInternal("failed to build upstream request", err)
	}
	req.Header.Set("X-Super-Client", c.clientName)
	req.Header.Set("Accept-Language", c.language)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		logger.Warn("Upstream request failed", "error", err)
		return errors.WrapExternal("upstream request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		logger.Warn("Upstream returned error status",
			"status", resp.StatusCode,
			"body", string(body))
		return errors.External(fmt.Sprintf("upstream %s returned %d", path, resp.StatusCode))
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		logger.Warn("Failed to decode upstream response", "error", err)
		return errors.WrapExternal("failed to decode upstream response", err)
	}

	logger.Debug("Upstream request completed", "duration", time.Since(start))
	return nil
}
