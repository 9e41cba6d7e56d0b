// Package client talks to the landing page API over HTTP.
//
// Reads are cached per API path and shared between concurrent callers.
// A successful write drops the cached entries of its resource. Outcomes are
// reported to a Notifier as toasts.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

// API paths.
const (
	PathUser     = "/api/user"
	PathLogin    = "/api/login"
	PathLogout   = "/api/logout"
	PathSettings = "/api/settings"
	PathGames    = "/api/games"
	PathButtons  = "/api/buttons"
	PathUpload   = "/api/upload"
)

const (
	// DefaultRetries is how often a read is repeated after a transient failure.
	DefaultRetries = 3
	// DefaultRetryDelay is the first backoff step, doubled per attempt.
	DefaultRetryDelay = time.Second

	maxRetryDelay = 30 * time.Second
)

// ErrEmptyBaseURL is returned by New without a server address.
var ErrEmptyBaseURL = errors.New("base url is empty")

// Client is safe for concurrent use.
type Client struct {
	baseURL    string
	http       *http.Client
	notifier   Notifier
	retries    int
	retryDelay time.Duration

	cache   *cache
	group   singleflight.Group
	loading atomic.Int32
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http client. A client without a cookie
// jar gets one, the session cookie has to survive between calls.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithNotifier sets where toasts go.
func WithNotifier(n Notifier) Option {
	return func(c *Client) {
		c.notifier = n
	}
}

// WithRetries sets the retry count for reads. Negative values disable retries.
func WithRetries(n int) Option {
	return func(c *Client) {
		c.retries = max(n, 0)
	}
}

// WithRetryDelay sets the first backoff step.
func WithRetryDelay(d time.Duration) Option {
	return func(c *Client) {
		c.retryDelay = d
	}
}

// New returns a client for the server at baseURL, e.g. http://localhost:8080.
func New(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		return nil, ErrEmptyBaseURL
	}

	c := &Client{
		baseURL:    baseURL,
		notifier:   NopNotifier{},
		retries:    DefaultRetries,
		retryDelay: DefaultRetryDelay,
		cache:      newCache(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.http == nil {
		c.http = &http.Client{Timeout: 30 * time.Second}
	}

	if c.http.Jar == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create cookie jar")
		}

		c.http.Jar = jar
	}

	if c.notifier == nil {
		c.notifier = NopNotifier{}
	}

	return c, nil
}

// IsLoading reports whether a read is in flight.
func (c *Client) IsLoading() bool {
	return c.loading.Load() > 0
}

// query returns the cached value at path or fetches it, retrying transient
// failures up to retries times.
func query[T any](ctx context.Context, c *Client, path string, retries int) (T, error) {
	var out T

	if raw, ok := c.cache.get(path); ok {
		return out, decode(raw, &out)
	}

	c.loading.Add(1)
	defer c.loading.Add(-1)

	// readers share a fetch only within one cache version
	version := c.cache.version()
	key := path + "#" + strconv.FormatUint(version, 10)

	v, err, _ := c.group.Do(key, func() (any, error) {
		return c.fetch(ctx, path, retries)
	})
	if err != nil {
		return out, err
	}

	raw, _ := v.([]byte)
	c.cache.set(path, raw, version)

	return out, decode(raw, &out)
}

func (c *Client) fetch(ctx context.Context, path string, retries int) ([]byte, error) {
	for attempt := 0; ; attempt++ {
		raw, err := c.send(ctx, http.MethodGet, path, nil, "")
		if err == nil {
			return raw, nil
		}

		if attempt >= retries || !transient(err) {
			return nil, err
		}

		delay := c.backoff(attempt)
		log.Debug().Err(err).Str("path", path).Int("attempt", attempt+1).Dur("delay", delay).Msg("retrying request")

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}
}

func (c *Client) backoff(attempt int) time.Duration {
	d := c.retryDelay << attempt
	if d <= 0 || d > maxRetryDelay {
		return maxRetryDelay
	}

	return d
}

// sendJSON marshals in as the request body and decodes the answer into out.
func (c *Client) sendJSON(ctx context.Context, method, path string, in, out any) error {
	var body []byte

	if in != nil {
		var err error

		if body, err = json.Marshal(in); err != nil {
			return errors.Wrap(err, "failed to encode request")
		}
	}

	raw, err := c.send(ctx, method, path, body, "application/json")
	if err != nil {
		return err
	}

	if out == nil {
		return nil
	}

	return decode(raw, out)
}

// send performs one request and returns the body of a 2xx answer. Other
// answers become an *APIError.
func (c *Client) send(ctx context.Context, method, path string, body []byte, contentType string) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build %s %s", method, path)
	}

	if body != nil && contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s %s", method, path)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, newAPIError(resp.StatusCode, raw)
	}

	return raw, nil
}

func decode(raw []byte, out any) error {
	if len(raw) == 0 {
		return nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return errors.Wrap(err, "failed to decode response")
	}

	return nil
}
