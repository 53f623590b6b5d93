// Package sbbclient sends GraphQL operations to the SBB backend.
//
// Every call is a single POST with no retries, no cookies and no caching.
package sbbclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/travigo/sbb-mcp/pkg/catalog"
)

// Client is an HTTP client for the SBB GraphQL endpoint.
type Client struct {
	Endpoint       string
	AcceptLanguage string
	HTTPClient     *http.Client
}

// New creates a client. The underlying http.Client has no cookie jar and
// uses the transport's default timeouts.
func New(endpoint string, acceptLanguage string) *Client {
	return &Client{
		Endpoint:       endpoint,
		AcceptLanguage: acceptLanguage,
		HTTPClient:     &http.Client{},
	}
}

type requestBody struct {
	OperationName string `json:"operationName"`
	Query         string `json:"query"`
	Variables     any    `json:"variables"`
}

// Execute posts the document and returns the decoded JSON body.
// The request is not cancelled when ctx is; once sent it runs to completion.
func (c *Client) Execute(ctx context.Context, doc catalog.Document, operationName string, variables any) (json.RawMessage, error) {
	logger := zerolog.Ctx(ctx).With().Str("operation", operationName).Logger()

	body, err := json.Marshal(requestBody{
		OperationName: operationName,
		Query:         doc.Query,
		Variables:     variables,
	})
	if err != nil {
		return nil, errors.Wrap(err, "encode request")
	}

	req, err := http.NewRequestWithContext(context.WithoutCancel(ctx), http.MethodPost, c.Endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, &BackendError{Operation: operationName, Err: errors.Wrap(err, "build request")}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Language", c.AcceptLanguage)

	startTime := time.Now()
	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, &BackendError{Operation: operationName, Err: errors.Wrap(err, "send request")}
	}
	defer func() { _ = resp.Body.Close() }()

	logger.Debug().
		Int("status", resp.StatusCode).
		Str("latency", time.Since(startTime).String()).
		Msg("Backend response")

	byteValue, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &BackendError{Operation: operationName, StatusCode: resp.StatusCode, Err: errors.Wrap(err, "read response")}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &BackendError{
			Operation:  operationName,
			StatusCode: resp.StatusCode,
			Err:        errors.Errorf("HTTP %d from %s", resp.StatusCode, c.Endpoint),
		}
	}

	var decoded json.RawMessage
	if err := json.Unmarshal(byteValue, &decoded); err != nil {
		return nil, &BackendError{Operation: operationName, StatusCode: resp.StatusCode, Err: errors.Wrap(err, "decode response")}
	}

	return decoded, nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient == nil {
		return http.DefaultClient
	}

	return c.HTTPClient
}
