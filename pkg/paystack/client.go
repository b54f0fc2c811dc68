// Package paystack binds application code to the Paystack HTTP API.
//
// A Client holds only immutable credentials and its transport. Every
// operation issues exactly one request and returns the decoded gateway
// response, so a single Client may be shared between goroutines. Operations
// that accept a Payload fall back to the client's PayloadSource when the
// payload is nil; the fields read for each operation are listed in
// payload.go.
package paystack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const defaultTimeout = 30 * time.Second

// Config carries the credentials a Client is built from.
type Config struct {
	SecretKey string
	BaseURL   string
}

type Client struct {
	secretKey  string
	baseURL    string
	headers    http.Header
	httpClient *http.Client
	timeout    time.Duration
	logger     *zap.Logger
	source     PayloadSource
	validate   *validator.Validate
}

type Option func(*Client)

// WithHTTPClient replaces the default logging HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithTimeout sets the timeout of the default HTTP client. It has no effect
// together with WithHTTPClient.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithDefaultSource binds the PayloadSource used when an operation is called
// with a nil payload.
func WithDefaultSource(src PayloadSource) Option {
	return func(c *Client) { c.source = src }
}

// NewClient returns a client for the gateway at cfg.BaseURL. An empty base URL
// selects DefaultBaseURL.
func NewClient(cfg Config, opts ...Option) (*Client, error) {
	if strings.TrimSpace(cfg.SecretKey) == "" {
		return nil, &ConfigError{Err: ErrMissingSecretKey}
	}
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	c := &Client{
		secretKey: cfg.SecretKey,
		baseURL:   baseURL,
		timeout:   defaultTimeout,
		validate:  validator.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = zap.NewNop()
	}
	if c.httpClient == nil {
		c.httpClient = newHTTPClient(c.timeout, c.logger)
	}

	c.headers = http.Header{}
	c.headers.Set("Authorization", "Bearer "+c.secretKey)
	c.headers.Set("Content-Type", "application/json")
	c.headers.Set("Accept", "application/json")

	return c, nil
}

// WithSource returns a copy of the client that reads default payload fields
// from src. The copy shares the transport with c.
func (c *Client) WithSource(src PayloadSource) *Client {
	cp := *c
	cp.source = src
	return &cp
}

func (c *Client) BaseURL() string { return c.baseURL }

// Dispatch issues one request for the relative path with the given HTTP
// method. A non-nil payload is sent as the JSON body. Non-2xx answers are
// returned as *APIError.
func (c *Client) Dispatch(ctx context.Context, method, path string, payload Payload) (*Result, error) {
	if strings.TrimSpace(method) == "" {
		return nil, &ConfigError{Err: ErrEmptyMethod}
	}

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("paystack: marshal payload: %w", err)
		}
		body = bytes.NewReader(b)
	}

	target := c.baseURL + "/" + strings.TrimLeft(path, "/")
	req, err := http.NewRequestWithContext(ctx, strings.ToUpper(method), target, body)
	if err != nil {
		return nil, fmt.Errorf("paystack: create request: %w", err)
	}
	for k, v := range c.headers {
		req.Header[k] = append([]string(nil), v...)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("paystack: %s %s: %w", req.Method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("paystack: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Body: raw}
		var envelope struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(raw, &envelope) == nil {
			apiErr.Message = envelope.Message
		}
		c.logger.Warn("gateway returned error status",
			zap.String("method", req.Method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("message", apiErr.Message),
		)
		return nil, apiErr
	}

	return &Result{StatusCode: resp.StatusCode, Header: resp.Header, body: raw}, nil
}

// do dispatches and decodes the whole response.
func (c *Client) do(ctx context.Context, method, path string, payload Payload) (Response, error) {
	res, err := c.Dispatch(ctx, method, path, payload)
	if err != nil {
		return nil, err
	}
	return res.Response()
}

// doData dispatches and returns the data subtree of the response.
func (c *Client) doData(ctx context.Context, method, path string) (any, error) {
	res, err := c.Dispatch(ctx, method, path, nil)
	if err != nil {
		return nil, err
	}
	return res.Data()
}

// orDefault returns p unchanged, or a payload built from the bound source.
func (c *Client) orDefault(p Payload, list []field) Payload {
	if p != nil {
		return p
	}
	return defaultPayload(c.source, list)
}
