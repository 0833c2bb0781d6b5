// Package signupapi sends signup records to the external signup endpoint.
package signupapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"social-workflow-web/internal/domain"
)

// maxBodyBytes bounds how much of a response is read.
const maxBodyBytes = 1 << 20

// excerptBytes bounds the body excerpt kept on a StatusError.
const excerptBytes = 512

// NetworkError means the request did not complete: dial, TLS, timeout or
// cancellation.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("signup request did not complete: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// StatusError means the endpoint answered with a non-success status.
type StatusError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("signup endpoint returned %s", e.Status)
}

// MalformedResponseError means a success status came with a body that is not JSON.
type MalformedResponseError struct {
	StatusCode int
	Err        error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("signup endpoint returned a malformed response (status %d): %v", e.StatusCode, e.Err)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

type Client struct {
	Endpoint string
	HTTP     *http.Client
}

var _ domain.SignupGateway = (*Client)(nil)

// New returns a client for endpoint; timeout bounds each request.
func New(endpoint string, timeout time.Duration) *Client {
	return &Client{
		Endpoint: endpoint,
		HTTP:     &http.Client{Timeout: timeout},
	}
}

// Submit issues exactly one POST with req as the JSON body. There is no retry.
func (c *Client) Submit(ctx context.Context, req domain.SignupRequest) (*domain.SignupAck, error) {
	b, err := json.Marshal(req.Normalize())
	if err != nil {
		return nil, fmt.Errorf("encode signup request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("build signup request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(httpReq)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, &NetworkError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		excerpt := body
		if len(excerpt) > excerptBytes {
			excerpt = excerpt[:excerptBytes]
		}
		return nil, &StatusError{StatusCode: resp.StatusCode, Status: resp.Status, Body: string(excerpt)}
	}

	ack := &domain.SignupAck{StatusCode: resp.StatusCode}
	if len(bytes.TrimSpace(body)) == 0 {
		return ack, nil
	}
	if !json.Valid(body) {
		return nil, &MalformedResponseError{StatusCode: resp.StatusCode, Err: errors.New("body is not valid JSON")}
	}
	ack.Body = json.RawMessage(body)
	return ack, nil
}
