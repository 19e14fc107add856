// Package upstream is the HTTP client for the Budgeteer price backend, which
// serves both the item catalog and the LLM endpoints.
//
// Failures are classified so callers can report them by category:
//   - ErrUnreachable: the request never got a response (DNS, refused, timeout)
//   - ErrStatus:      the backend answered with a non-2xx status
//   - ErrDecode:      the body was not the expected JSON
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/time/rate"

	"github.com/ghuser/budgeteer/pkg/logger"
)

var (
	ErrUnreachable = errors.New("upstream unreachable")
	ErrStatus      = errors.New("upstream returned error status")
	ErrDecode      = errors.New("upstream response malformed")
)

const (
	maxAttempts  = 3
	maxBodyBytes = 32 << 20
	userAgent    = "budgeteer/1.0"
)

// Options configures a Client. Zero values fall back to defaults.
type Options struct {
	Timeout   time.Duration
	RateLimit float64 // requests per second
	Burst     int
}

// Client wraps http.Client with rate limiting, retries on idempotent
// requests, and OTel propagation.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	rateLimiter *rate.Limiter
	log         logger.Logger
	backoff     func(attempt int) time.Duration
}

// NewClient returns a Client rooted at baseURL.
func NewClient(baseURL string, opts Options, log logger.Logger) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.RateLimit <= 0 {
		opts.RateLimit = 5
	}
	if opts.Burst <= 0 {
		opts.Burst = 10
	}
	return &Client{
		httpClient: &http.Client{
			Timeout:   opts.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		baseURL:     strings.TrimRight(baseURL, "/"),
		rateLimiter: rate.NewLimiter(rate.Limit(opts.RateLimit), opts.Burst),
		log:         log,
		backoff:     exponentialBackoff,
	}
}

// BaseURL returns the root URL requests are resolved against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

type singleAttemptKey struct{}

// WithoutRetry marks ctx so GetJSON makes exactly one attempt.
func WithoutRetry(ctx context.Context) context.Context {
	return context.WithValue(ctx, singleAttemptKey{}, true)
}

func attemptsFor(ctx context.Context) int {
	if single, _ := ctx.Value(singleAttemptKey{}).(bool); single {
		return 1
	}
	return maxAttempts
}

// GetJSON issues GET path and decodes the response into out. Transient
// failures (transport errors and 5xx) are retried with exponential backoff
// unless ctx came from WithoutRetry.
func (c *Client) GetJSON(ctx context.Context, path string, out any) error {
	attempts := attemptsFor(ctx)
	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		body, err := c.do(ctx, http.MethodGet, path, nil)
		if err == nil {
			return decode(body, out)
		}
		lastErr = err
		if !retryable(err) || attempt == attempts {
			break
		}
		c.log.WarnContext(ctx, "upstream request failed, retrying",
			"path", path, "attempt", attempt, "error", err)
		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %w", ErrUnreachable, ctx.Err())
		case <-time.After(c.backoff(attempt)):
		}
	}
	return lastErr
}

// PostJSON sends in as a JSON body to path and decodes the response into out.
// POSTs are never retried.
func (c *Client) PostJSON(ctx context.Context, path string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	body, err := c.do(ctx, http.MethodPost, path, payload)
	if err != nil {
		return err
	}
	return decode(body, out)
}

func (c *Client) do(ctx context.Context, method, path string, payload []byte) ([]byte, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: rate limiter: %w", ErrUnreachable, err)
	}

	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %w", ErrUnreachable, method, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", ErrUnreachable, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Method: method, Path: path, Code: resp.StatusCode}
	}
	return body, nil
}

// StatusError carries the status code of a non-2xx response. It matches
// ErrStatus under errors.Is.
type StatusError struct {
	Method string
	Path   string
	Code   int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: HTTP error %d", e.Method, e.Path, e.Code)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrStatus
}

func retryable(err error) bool {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code >= 500
	}
	return errors.Is(err, ErrUnreachable)
}

func decode(body []byte, out any) error {
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return nil
}

func exponentialBackoff(attempt int) time.Duration {
	return time.Duration(250<<(attempt-1)) * time.Millisecond
}
