// Package api implements service.Service over the /todos REST protocol.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi"

	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/service"
)

const (
	todosPath = "todos"

	// RequestIDHeader correlates operator log lines with backend logs.
	RequestIDHeader = "X-Request-ID"
)

var _ service.Service = (*Client)(nil)

// Client talks to a /todos backend.
type Client struct {
	base    *url.URL
	http    *http.Client
	tokens  oauth2.TokenSource
	timeout time.Duration
	log     *log.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client (tests use httptest's).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTokenSource adds an Authorization: Bearer header to every request.
func WithTokenSource(ts oauth2.TokenSource) Option {
	return func(c *Client) { c.tokens = ts }
}

// WithTimeout bounds each request. Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithLogger sets the logger used for per-request debug lines.
func WithLogger(l *log.Logger) Option {
	return func(c *Client) { c.log = l }
}

// New creates a client for the backend rooted at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid base url %q: scheme must be http or https", baseURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("invalid base url %q: missing host", baseURL)
	}

	c := &Client{
		base: u,
		http: &http.Client{},
		log:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.tokens != nil {
		base := c.http.Transport
		if base == nil {
			base = http.DefaultTransport
		}
		hc := *c.http
		hc.Transport = &oauth2.Transport{Source: c.tokens, Base: base}
		c.http = &hc
	}
	return c, nil
}

// ListTodos implements service.Service.
func (c *Client) ListTodos(ctx context.Context, filter model.Filter) ([]model.Task, error) {
	q := url.Values{}
	if s := filter.Status(); s != "" {
		q.Set("status", s)
	}
	body, err := c.do(ctx, http.MethodGet, q, nil, todosPath)
	if err != nil {
		return nil, err
	}
	return decodeTasks(body)
}

// CreateTodo implements service.Service.
func (c *Client) CreateTodo(ctx context.Context, d model.Draft) error {
	_, err := c.do(ctx, http.MethodPost, nil, d, todosPath)
	return err
}

// UpdateTodo implements service.Service.
func (c *Client) UpdateTodo(ctx context.Context, id int, d model.Draft) error {
	_, err := c.do(ctx, http.MethodPut, nil, d, todosPath, strconv.Itoa(id))
	return err
}

// DeleteTodo implements service.Service.
func (c *Client) DeleteTodo(ctx context.Context, id int) error {
	_, err := c.do(ctx, http.MethodDelete, nil, nil, todosPath, strconv.Itoa(id))
	return err
}

// do sends one request and returns the response body of a 2xx reply.
func (c *Client) do(ctx context.Context, method string, q url.Values, in any, elem ...string) ([]byte, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	u := c.base.JoinPath(elem...)
	u.RawQuery = q.Encode()

	var rdr io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("encode body: %w", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), rdr)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	reqID := uuid.NewString()
	req.Header.Set(RequestIDHeader, reqID)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug("request failed", "method", method, "path", u.Path, "request_id", reqID, "err", err)
		return nil, wrapError(err)
	}
	defer resp.Body.Close()

	c.log.Debug("request",
		"method", method,
		"path", u.Path,
		"status", resp.StatusCode,
		"duration", time.Since(start).Round(time.Millisecond),
		"request_id", reqID,
	)

	if err := googleapi.CheckResponse(resp); err != nil {
		return nil, wrapError(err)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, wrapError(fmt.Errorf("read body: %w", err))
	}
	return body, nil
}
