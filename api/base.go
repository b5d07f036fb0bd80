package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/log"
)

const defaultUserAgent = "ethaccount"

// Transport handles HTTP/JSON calls against a single base URL.
// It is the factory handing out endpoint bindings for that URL.
type Transport struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
}

// Option configures a Transport
type Option func(*Transport)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(t *Transport) {
		t.httpClient = client
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(t *Transport) {
		client := *t.httpClient
		client.Timeout = timeout
		t.httpClient = &client
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(userAgent string) Option {
	return func(t *Transport) {
		t.userAgent = userAgent
	}
}

// NewTransport creates a transport bound to baseURL
func NewTransport(baseURL string, opts ...Option) *Transport {
	t := &Transport{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL:   strings.TrimSuffix(baseURL, "/") + "/",
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// BaseURL returns the URL every request path is resolved against.
func (t *Transport) BaseURL() string {
	return t.baseURL
}

// NewEndpoints returns an Endpoints implementation issuing its calls through t.
func (t *Transport) NewEndpoints() Endpoints {
	return &httpEndpoints{transport: t}
}

// StatusError is returned when the backend answers with a non-2xx status.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("request failed with status %d: %s", e.Code, e.Body)
}

// GetJSON sends a GET request and decodes the response body into result.
func (t *Transport) GetJSON(ctx context.Context, path string, query url.Values, result any) error {
	return t.doJSON(ctx, http.MethodGet, path, query, nil, result)
}

// PostJSON sends payload as a JSON body and decodes the response body into result.
func (t *Transport) PostJSON(ctx context.Context, path string, payload, result any) error {
	return t.doJSON(ctx, http.MethodPost, path, nil, payload, result)
}

func (t *Transport) doJSON(ctx context.Context, method, path string, query url.Values, payload, result any) error {
	var body io.Reader
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal payload: %w", err)
		}
		body = bytes.NewReader(jsonData)
	}

	target := t.baseURL + strings.TrimPrefix(path, "/")
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if t.userAgent != "" {
		req.Header.Set("User-Agent", t.userAgent)
	}

	start := time.Now()
	log.Debug("Sending backend request", "method", method, "url", target)

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	log.Debug("Received backend response", "method", method, "url", target, "status", resp.StatusCode, "elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{Code: resp.StatusCode, Body: string(respBody)}
	}

	if result == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, result); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}
