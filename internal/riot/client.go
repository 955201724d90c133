package riot

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/sethvargo/go-retry"
	"github.com/valyala/fasthttp"
	"golang.org/x/time/rate"

	"riot-stats-hub/internal/config"
	"riot-stats-hub/internal/constants"
)

// Doer abstracts the fasthttp transport so tests can swap it out.
// *fasthttp.Client satisfies it.
type Doer interface {
	DoDeadline(req *fasthttp.Request, resp *fasthttp.Response, deadline time.Time) error
}

// Client forwards GET requests to the Riot API with the credential
// header attached. Every host gets its own token bucket, and 429
// responses are retried honoring the server's Retry-After.
type Client struct {
	apiKey     string
	doer       Doer
	maxRetries uint64
	logger     zerolog.Logger

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

func NewClient(cfg *config.Config, logger zerolog.Logger) *Client {
	return &Client{
		apiKey: cfg.RiotAPIKey,
		doer: &fasthttp.Client{
			ReadTimeout:         constants.ExternalAPITimeout,
			WriteTimeout:        constants.ExternalAPITimeout,
			MaxIdleConnDuration: time.Minute,
		},
		maxRetries: constants.MaxRetries,
		logger:     logger,
		limiters:   make(map[string]*rate.Limiter),
		limit:      rate.Limit(cfg.HostRateLimit),
		burst:      cfg.HostRateBurst,
	}
}

// NewClientWithDoer is used by tests to inject a fake transport.
func NewClientWithDoer(apiKey string, doer Doer, logger zerolog.Logger) *Client {
	c := NewClient(&config.Config{
		RiotAPIKey:    apiKey,
		HostRateLimit: 1000,
		HostRateBurst: 1000,
	}, logger)
	c.doer = doer
	return c
}

func (c *Client) limiter(host string) *rate.Limiter {
	c.mu.Lock()
	defer c.mu.Unlock()
	l, ok := c.limiters[host]
	if !ok {
		l = rate.NewLimiter(c.limit, c.burst)
		c.limiters[host] = l
	}
	return l
}

// Forward performs an authenticated GET against https://<host><path> and
// returns the raw response body. 429 responses are retried up to
// maxRetries times, waiting the server-supplied Retry-After between
// attempts. Any other non-2xx status fails immediately with an
// *APIError carrying the upstream message.
func (c *Client) Forward(ctx context.Context, host, path string) ([]byte, error) {
	url := "https://" + host + path

	var body []byte
	delay := constants.DefaultRetryAfter

	backoff := retry.WithMaxRetries(c.maxRetries, retry.BackoffFunc(func() (time.Duration, bool) {
		return delay, false
	}))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := c.limiter(host).Wait(ctx); err != nil {
			return err
		}

		status, retryAfter, payload, err := c.do(ctx, url)
		if err != nil {
			return fmt.Errorf("upstream request failed: %w", err)
		}

		switch {
		case status == fasthttp.StatusTooManyRequests:
			delay = retryAfter
			c.logger.Warn().
				Str("host", host).
				Str("path", path).
				Dur("retry_after", delay).
				Msg("Rate limited by upstream, backing off")
			return retry.RetryableError(newAPIError(status, payload))
		case status < 200 || status >= 300:
			return newAPIError(status, payload)
		}

		body = payload
		return nil
	})
	if err != nil {
		return nil, err
	}
	return body, nil
}

func (c *Client) do(ctx context.Context, url string) (int, time.Duration, []byte, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("X-Riot-Token", c.apiKey)
	req.Header.Set("Accept", "application/json")

	deadline := time.Now().Add(constants.ExternalAPITimeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	if err := c.doer.DoDeadline(req, resp, deadline); err != nil {
		return 0, 0, nil, err
	}

	retryAfter := parseRetryAfter(resp.Header.Peek("Retry-After"))
	body := append([]byte(nil), resp.Body()...)
	return resp.StatusCode(), retryAfter, body, nil
}

// parseRetryAfter reads the header as whole seconds, falling back to
// the default when the header is missing or malformed.
func parseRetryAfter(value []byte) time.Duration {
	if len(value) == 0 {
		return constants.DefaultRetryAfter
	}
	seconds, err := strconv.Atoi(string(value))
	if err != nil || seconds < 0 {
		return constants.DefaultRetryAfter
	}
	return time.Duration(seconds) * time.Second
}
