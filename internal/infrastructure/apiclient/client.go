// Package apiclient maps portal operations onto the remote resource hub
// REST API. Every call carries the session's bearer token when there is one.
// Failures come back as *domain.NetworkError or *domain.ServerError and are
// never retried.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/resourcehub/portal/internal/core/domain"
)

const (
	defaultTimeout     = 10 * time.Second
	defaultLongTimeout = 30 * time.Second
	maxErrorBody       = 64 << 10
)

// TokenSource yields the bearer token to attach, or "" for none.
type TokenSource interface {
	Token() string
}

// TokenFunc adapts a function to TokenSource.
type TokenFunc func() string

func (f TokenFunc) Token() string { return f() }

// CallObserver is notified once per remote call. status is 0 when no
// response was received.
type CallObserver interface {
	ObserveCall(op string, status int, err error, elapsed time.Duration)
}

// Config captures the settings of the remote API.
type Config struct {
	BaseURL     string
	Timeout     time.Duration
	LongTimeout time.Duration
	HTTPClient  *http.Client
	Observer    CallObserver
}

// Client is the API facade.
type Client struct {
	baseURL     string
	timeout     time.Duration
	longTimeout time.Duration
	hc          *http.Client
	tokens      TokenSource
	observer    CallObserver
	log         zerolog.Logger
}

// New builds a Client. tokens may be nil for anonymous use.
func New(cfg Config, tokens TokenSource, log zerolog.Logger) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, errors.New("apiclient: base url is required")
	}
	if _, err := url.ParseRequestURI(base); err != nil {
		return nil, fmt.Errorf("apiclient: invalid base url: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	long := cfg.LongTimeout
	if long <= 0 {
		long = defaultLongTimeout
	}
	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{}
	}
	if tokens == nil {
		tokens = TokenFunc(func() string { return "" })
	}

	return &Client{
		baseURL:     base,
		timeout:     timeout,
		longTimeout: long,
		hc:          hc,
		tokens:      tokens,
		observer:    cfg.Observer,
		log:         log,
	}, nil
}

type request struct {
	op     string
	method string
	path   string
	query  url.Values
	body   any
	long   bool

	// raw bodies bypass JSON encoding (multipart uploads).
	raw         io.Reader
	contentType string
}

// do performs req and decodes a 2xx JSON answer into out (when non-nil).
func (c *Client) do(ctx context.Context, req request, out any) error {
	resp, cancel, err := c.send(ctx, req)
	if err != nil {
		return err
	}
	defer cancel()
	defer resp.Body.Close()

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return &domain.NetworkError{Op: req.op, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

// send returns the raw 2xx response. The caller closes the body and calls
// cancel once done with it.
func (c *Client) send(ctx context.Context, req request) (*http.Response, context.CancelFunc, error) {
	timeout := c.timeout
	if req.long {
		timeout = c.longTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)

	httpReq, err := c.newRequest(ctx, req)
	if err != nil {
		cancel()
		return nil, nil, err
	}

	start := time.Now()
	resp, err := c.hc.Do(httpReq)
	if err != nil {
		cancel()
		nerr := &domain.NetworkError{Op: req.op, Err: err}
		c.observe(req.op, 0, nerr, start)
		c.log.Debug().Err(err).Str("op", req.op).Msg("api call failed")
		return nil, nil, nerr
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer cancel()
		defer resp.Body.Close()
		serr := serverError(req.op, resp)
		c.observe(req.op, resp.StatusCode, serr, start)
		c.log.Debug().Int("status", resp.StatusCode).Str("op", req.op).Msg("api call rejected")
		return nil, nil, serr
	}

	c.observe(req.op, resp.StatusCode, nil, start)
	return resp, cancel, nil
}

func (c *Client) newRequest(ctx context.Context, req request) (*http.Request, error) {
	u := c.baseURL + req.path
	if len(req.query) > 0 {
		u += "?" + req.query.Encode()
	}

	var (
		body        io.Reader
		contentType string
	)
	switch {
	case req.raw != nil:
		body, contentType = req.raw, req.contentType
	case req.body != nil:
		buf, err := json.Marshal(req.body)
		if err != nil {
			return nil, fmt.Errorf("%s: encode request: %w", req.op, err)
		}
		body, contentType = bytes.NewReader(buf), "application/json"
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, u, body)
	if err != nil {
		return nil, fmt.Errorf("%s: create request: %w", req.op, err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	if token := c.tokens.Token(); token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}
	return httpReq, nil
}

func (c *Client) observe(op string, status int, err error, start time.Time) {
	if c.observer != nil {
		c.observer.ObserveCall(op, status, err, time.Since(start))
	}
}

// errorEnvelope covers the {"error": ...} and {"message": ...} shapes the
// server uses for failures.
type errorEnvelope struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func serverError(op string, resp *http.Response) *domain.ServerError {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var env errorEnvelope
	msg := ""
	if json.Unmarshal(body, &env) == nil {
		msg = env.Error
		if env.Message != "" {
			msg = env.Message
		}
	}
	return &domain.ServerError{Op: op, Status: resp.StatusCode, Message: msg, Body: body}
}

func idPath(format string, id uint) string {
	return fmt.Sprintf(format, id)
}

// Ping reports whether the remote API answers at all. Any HTTP response,
// error statuses included, counts as reachable.
func (c *Client) Ping(ctx context.Context) error {
	resp, cancel, err := c.send(ctx, request{op: "ping", method: http.MethodGet, path: "/"})
	if err != nil {
		var se *domain.ServerError
		if errors.As(err, &se) {
			return nil
		}
		return err
	}
	defer cancel()
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.Body.Close()
}
