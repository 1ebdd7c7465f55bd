package miniflux

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Client represents a Miniflux API client
type Client struct {
	endpoint    string
	credentials Credentials
	httpClient  *http.Client
	userAgent   string
	logger      zerolog.Logger
}

// NewClient creates a new Miniflux client for the given endpoint.
// No request is made until the first API call.
func NewClient(endpoint string, opts ...Option) *Client {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	httpClient := options.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: options.timeout}
	}

	return &Client{
		endpoint:    strings.TrimRight(endpoint, "/"),
		credentials: options.credentials,
		httpClient:  httpClient,
		userAgent:   options.userAgent,
		logger:      options.logger,
	}
}

// NewClientFromConfig creates a client from a ClientConfig. Options are
// applied after the config, so they can override its credentials.
func NewClientFromConfig(cfg ClientConfig, opts ...Option) *Client {
	opts = append([]Option{WithCredentials(cfg.Credentials())}, opts...)
	return NewClient(cfg.Endpoint, opts...)
}

// Endpoint returns the base URL requests are sent to
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Response is a fully drained HTTP response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Body is the payload of an outgoing request: NoBody, JSONBody or RawBody.
type Body interface {
	reader() (io.Reader, string, error)
}

type noBody struct{}

func (noBody) reader() (io.Reader, string, error) { return nil, "", nil }

type jsonBody struct{ value any }

func (b jsonBody) reader() (io.Reader, string, error) {
	data, err := json.Marshal(b.value)
	if err != nil {
		return nil, "", fmt.Errorf("failed to encode request body: %w", err)
	}
	return bytes.NewReader(data), "application/json", nil
}

type rawBody struct{ r io.Reader }

func (b rawBody) reader() (io.Reader, string, error) { return b.r, "", nil }

// NoBody sends the request without a payload.
func NoBody() Body { return noBody{} }

// JSONBody encodes v as JSON.
func JSONBody(v any) Body { return jsonBody{value: v} }

// RawBody forwards r unchanged.
func RawBody(r io.Reader) Body { return rawBody{r: r} }

// Do sends a request to endpoint+path and returns the drained response.
// It never fails because of the status code.
func (c *Client) Do(ctx context.Context, method, path string, body Body) (*Response, error) {
	if body == nil {
		body = NoBody()
	}

	payload, contentType, err := body.reader()
	if err != nil {
		return nil, err
	}

	url := c.endpoint + path
	req, err := http.NewRequestWithContext(ctx, method, url, payload)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	c.credentials.apply(req.Header)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Method: method, URL: url, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Method: method, URL: url, Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("Miniflux API request")

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       data,
	}, nil
}

func (c *Client) get(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, http.MethodGet, path, NoBody())
}

// getJSON fetches path, requires 200 and decodes the body into v
func (c *Client) getJSON(ctx context.Context, path string, v any) error {
	resp, err := c.get(ctx, path)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return statusError(http.MethodGet, path, http.StatusOK, resp)
	}
	return decode(path, resp.Body, v)
}

// sendJSON encodes payload, accepts any 2xx status and decodes the body into v
func (c *Client) sendJSON(ctx context.Context, method, path string, payload, v any) error {
	resp, err := c.Do(ctx, method, path, JSONBody(payload))
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(method, path, 0, resp)
	}
	return decode(path, resp.Body, v)
}

func (c *Client) postJSON(ctx context.Context, path string, payload, v any) error {
	return c.sendJSON(ctx, http.MethodPost, path, payload, v)
}

func (c *Client) putJSON(ctx context.Context, path string, payload, v any) error {
	return c.sendJSON(ctx, http.MethodPut, path, payload, v)
}

// expectStatus reports whether the response carried the given status.
// Only transport failures are errors.
func (c *Client) expectStatus(ctx context.Context, method, path string, body Body, code int) (bool, error) {
	resp, err := c.Do(ctx, method, path, body)
	if err != nil {
		return false, err
	}
	return resp.StatusCode == code, nil
}

// getText fetches path, requires 200 and returns the body verbatim
func (c *Client) getText(ctx context.Context, path string) (string, error) {
	resp, err := c.get(ctx, path)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", statusError(http.MethodGet, path, http.StatusOK, resp)
	}
	return string(resp.Body), nil
}

func statusError(method, path string, expected int, resp *Response) error {
	return &UnexpectedStatusError{
		Method:   method,
		Path:     path,
		Expected: expected,
		Actual:   resp.StatusCode,
		Body:     string(resp.Body),
	}
}

func decode(path string, data []byte, v any) error {
	if v == nil {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return &MalformedResponseError{Path: path, Err: err}
	}
	return nil
}
