// Package jsonrpc provides a small JSON-RPC client over HTTP, suitable for
// talking to bitcoind-compatible nodes. Remote errors are surfaced as *Error
// values so callers can branch on the numeric code without parsing strings.
package jsonrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// ErrProviderReturnedError indicates that the remote JSON-RPC server returned an error response.
var ErrProviderReturnedError = errors.New("provider error")

// protocolVersion is the JSON-RPC version sent in every request. bitcoind
// accepts "1.0" across all releases.
const protocolVersion = "1.0"

// Error is a JSON-RPC error object returned by the provider.
//
// It matches ErrProviderReturnedError under errors.Is.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: [%d] - %s", ErrProviderReturnedError, e.Code, e.Message)
}

// Is reports whether target is ErrProviderReturnedError.
func (e *Error) Is(target error) bool {
	return target == ErrProviderReturnedError
}

// response represents a JSON-RPC response envelope.
type response struct {
	Error  *Error          `json:"error"`
	Result json.RawMessage `json:"result"`
}

// Err returns the embedded error object, if any.
func (r response) Err() error {
	if r.Error == nil {
		return nil
	}

	return r.Error
}

// Client defines the interface for a generic JSON-RPC client.
// It can be used to abstract the underlying implementation and facilitate mocking or testing.
type Client interface {
	// Fetch sends a JSON-RPC request with the given method name and parameters.
	// It returns the raw JSON result or an error if the request or response fails.
	Fetch(ctx context.Context, method string, params ...any) (json.RawMessage, error)
}

type client struct {
	providerEndpoint string
	httpClient       *http.Client

	username string
	password string
}

var _ Client = (*client)(nil)

// Fetch implements Client. The request id is a random UUID.
//
// A decoded error object takes precedence over the HTTP status: bitcoind
// reports RPC failures with a 500 status and a regular JSON body.
func (c *client) Fetch(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	if params == nil {
		params = []any{}
	}

	body, err := json.Marshal(map[string]any{
		"jsonrpc": protocolVersion,
		"id":      uuid.NewString(),
		"method":  method,
		"params":  params,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.providerEndpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	if c.username != "" || c.password != "" {
		req.SetBasicAuth(c.username, c.password)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	var data response
	if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
		if res.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("unexpected status %d: %w", res.StatusCode, err)
		}
		return nil, err
	}

	if err := data.Err(); err != nil {
		return nil, err
	}

	return data.Result, nil
}

type config struct {
	username string
	password string
}

// Option customizes the client.
type Option func(*config)

// WithBasicAuth sets the credentials sent with every request.
func WithBasicAuth(username, password string) Option {
	return func(c *config) {
		c.username = username
		c.password = password
	}
}

// NewClient constructs a Client that posts requests to providerEndpoint
// using httpClient. Timeouts and retries are the responsibility of httpClient.
func NewClient(httpClient *http.Client, providerEndpoint string, opts ...Option) *client {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return &client{
		providerEndpoint: providerEndpoint,
		httpClient:       httpClient,
		username:         cfg.username,
		password:         cfg.password,
	}
}
