package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"rentacar-crm/internal/domain"
	"rentacar-crm/internal/logger"
)

// Client talks to the external booking API. All monetary values travel as
// decimal strings and dates as ISO-8601 strings; compatibility is JSON-shape
// compatibility only. Retry and timeout policy live here, not in the store.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a booking-API client against the given base URL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// errorBody is the shape the API uses for failure responses.
type errorBody struct {
	Message string `json:"message"`
}

// do issues one JSON request/response round-trip. Transport failures map to
// an APIError with status 0; non-2xx responses map to an APIError carrying
// the server's message when the body had one.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	logger.APICall(method, path)
	resp, err := c.http.Do(req)
	if err != nil {
		apiErr := &domain.APIError{Message: "booking API unreachable", Err: err}
		logger.APIResult(method, path, 0, apiErr)
		return apiErr
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &domain.APIError{
			StatusCode: resp.StatusCode,
			Message:    extractMessage(resp.Body),
		}
		logger.APIResult(method, path, resp.StatusCode, apiErr)
		return apiErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			apiErr := &domain.APIError{
				StatusCode: resp.StatusCode,
				Message:    "malformed response from booking API",
				Err:        err,
			}
			logger.APIResult(method, path, resp.StatusCode, apiErr)
			return apiErr
		}
	}
	logger.APIResult(method, path, resp.StatusCode, nil)
	return nil
}

// extractMessage pulls the human-readable message out of an error response
// body, falling back to a generic one.
func extractMessage(r io.Reader) string {
	var eb errorBody
	if err := json.NewDecoder(r).Decode(&eb); err == nil && eb.Message != "" {
		return eb.Message
	}
	return "the booking service returned an error"
}
