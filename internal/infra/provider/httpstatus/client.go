// Package httpstatus queries swap providers for the execution status of an
// order over a small JSON/HTTP contract.
//
// A status endpoint is called with GET and the query parameters "id" (the
// provider transaction id) and, when known, "address" (the destination
// address). It answers with {"status": "..."} or, on failure, with
// {"error": "..."}. Provider specific APIs are adapted to this contract by a
// gateway in front of them.
package httpstatus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/gabapcia/walletsync/internal/swap"
	"github.com/gabapcia/walletsync/internal/swapstatus"
)

var (
	// ErrProviderReturnedError indicates that the provider answered with an
	// error payload.
	ErrProviderReturnedError = errors.New("provider error")

	// ErrUnexpectedResponse indicates a non-2xx answer or one without status.
	ErrUnexpectedResponse = errors.New("unexpected provider response")
)

// maxBodySize bounds how much of a response body is read.
const maxBodySize = 1 << 20

type response struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

// client reports statuses of a single provider.
type client struct {
	provider   swap.Provider
	endpoint   string
	httpClient *http.Client
}

// Compile-time assertion that client implements swapstatus.StatusRepository.
var _ swapstatus.StatusRepository = (*client)(nil)

// NewClient creates a status repository for provider answering at endpoint.
func NewClient(httpClient *http.Client, provider swap.Provider, endpoint string) *client {
	return &client{
		provider:   provider,
		endpoint:   endpoint,
		httpClient: httpClient,
	}
}

// GetTransactionStatus implements swapstatus.StatusRepository.
func (c *client) GetTransactionStatus(ctx context.Context, transactionID, destinationAddress string) (swap.Status, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return "", err
	}

	q := u.Query()
	q.Set("id", transactionID)
	if destinationAddress != "" {
		q.Set("address", destinationAddress)
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", err
	}

	req.Header.Set("Accept", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	var data response
	decodeErr := json.NewDecoder(io.LimitReader(res.Body, maxBodySize)).Decode(&data)

	if data.Error != "" {
		return "", fmt.Errorf("%w: %s: %s", ErrProviderReturnedError, c.provider, data.Error)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return "", fmt.Errorf("%w: %s answered %d", ErrUnexpectedResponse, c.provider, res.StatusCode)
	}

	if decodeErr != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrUnexpectedResponse, c.provider, decodeErr)
	}

	if data.Status == "" {
		return "", fmt.Errorf("%w: %s sent no status", ErrUnexpectedResponse, c.provider)
	}

	return swap.NormalizeStatus(data.Status), nil
}

// NewRepositories builds one status repository per configured provider
// endpoint. Unknown provider tags are rejected.
func NewRepositories(httpClient *http.Client, endpoints map[string]string) (swapstatus.StatusRepositories, error) {
	repos := make(swapstatus.StatusRepositories, len(endpoints))
	for tag, endpoint := range endpoints {
		provider, err := swap.ParseProvider(tag)
		if err != nil {
			return nil, err
		}

		repos[provider] = NewClient(httpClient, provider, endpoint)
	}

	return repos, nil
}
