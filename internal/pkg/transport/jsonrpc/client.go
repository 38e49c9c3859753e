// Package jsonrpc is a minimal JSON-RPC 2.0 client over HTTP, used to talk to
// blockchain nodes.
package jsonrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
)

var (
	// ErrProviderReturnedError indicates that the node answered with a
	// JSON-RPC error object.
	ErrProviderReturnedError = errors.New("provider error")

	// ErrUnexpectedStatus indicates a non-2xx answer carrying no JSON-RPC
	// error object.
	ErrUnexpectedStatus = errors.New("unexpected http status")
)

// maxBodySize bounds how much of a response body is read. Full Ethereum
// blocks with transactions stay well below it.
const maxBodySize = 32 << 20

type request struct {
	JSONRPC string `json:"jsonrpc"`
	ID      string `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type response struct {
	JSONRPC string `json:"jsonrpc"`
	Error   *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Result json.RawMessage `json:"result"`
}

// Err returns the JSON-RPC error carried by the response, if any.
func (r response) Err() error {
	if r.Error == nil {
		return nil
	}

	return fmt.Errorf("%w: [%d] - %s", ErrProviderReturnedError, r.Error.Code, r.Error.Message)
}

// Client sends JSON-RPC calls.
type Client interface {
	// Fetch calls method with params and returns the raw result. A JSON null
	// result is returned as is; callers decide what it means.
	Fetch(ctx context.Context, method string, params ...any) (json.RawMessage, error)
}

type client struct {
	providerEndpoint string
	httpClient       *http.Client
}

var _ Client = (*client)(nil)

// Fetch implements Client. Every call carries a fresh UUID as its id.
func (c *client) Fetch(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	if params == nil {
		params = []any{}
	}

	body, err := json.Marshal(request{
		JSONRPC: "2.0",
		ID:      uuid.NewString(),
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.providerEndpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	var data response
	decodeErr := json.NewDecoder(io.LimitReader(res.Body, maxBodySize)).Decode(&data)

	if err := data.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s answered %d", ErrUnexpectedStatus, method, res.StatusCode)
	}

	if decodeErr != nil {
		return nil, fmt.Errorf("decoding %s response: %w", method, decodeErr)
	}

	return data.Result, nil
}

// NewClient returns a Client posting to providerEndpoint with httpClient.
func NewClient(httpClient *http.Client, providerEndpoint string) *client {
	return &client{
		providerEndpoint: providerEndpoint,
		httpClient:       httpClient,
	}
}
