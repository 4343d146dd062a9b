package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// maxErrorBody caps how much of an error response is read for its message.
const maxErrorBody = 4096

// TokenSource supplies the current bearer token. It is consulted immediately
// before every send so the client always reflects the latest login/logout.
// An empty string means no Authorization header is attached.
type TokenSource interface {
	Token() string
}

// Options configures the client.
type Options struct {
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     *log.Logger // diagnostic only; nil disables logging
}

// Client talks to the job-board API at a fixed base URL.
type Client struct {
	baseURL string
	httpc   *http.Client
	tokens  TokenSource
	logger  *log.Logger
}

// New creates a client for the API at baseURL. tokens may be nil for a
// client that only performs unauthenticated calls.
func New(baseURL string, tokens TokenSource, opts *Options) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q", baseURL)
	}

	if opts == nil {
		opts = &Options{}
	}
	httpc := opts.HTTPClient
	if httpc == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpc = &http.Client{Timeout: timeout}
	}

	return &Client{
		baseURL: baseURL,
		httpc:   httpc,
		tokens:  tokens,
		logger:  opts.Logger,
	}, nil
}

// BaseURL returns the configured API origin.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// do performs one JSON request/response round-trip. body and out may be nil.
func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return &RequestFailure{Op: op, Cause: err}
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.requestURL(path, query), reader)
	if err != nil {
		return &RequestFailure{Op: op, Cause: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, op, out)
}

// send attaches the cross-cutting headers, executes the request and decodes
// the response. It is shared by do and the multipart upload path.
func (c *Client) send(req *http.Request, op string, out any) error {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		if c.logger != nil {
			c.logger.Printf("[api] %s %s %s: %v", op, req.Method, req.URL.Path, err)
		}
		return &RequestFailure{Op: op, Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		msg := serverMessage(raw)
		if c.logger != nil {
			c.logger.Printf("[api] %s %s %s: status=%d message=%q", op, req.Method, req.URL.Path, resp.StatusCode, msg)
		}
		return &RequestFailure{Op: op, StatusCode: resp.StatusCode, Message: msg}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &RequestFailure{Op: op, StatusCode: resp.StatusCode, Message: "malformed response body", Cause: err}
	}
	return nil
}

func (c *Client) requestURL(path string, query url.Values) string {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// serverMessage extracts the human-readable message from an error body.
// The server uses both {"message": ...} and {"error": ...}; anything else
// falls back to a trimmed body snippet.
func serverMessage(raw []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	return strings.TrimSpace(string(raw))
}
