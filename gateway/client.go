package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/RichelleAnne09/agots-express-dashboard/utils"
)

// Client talks to the upstream restaurant API. Every call is a single
// request/response; there are no retries and no partial results.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a client for the given base URL, e.g. "http://localhost:5000".
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// errorBody is the optional payload of a non-2xx response.
type errorBody struct {
	Message string `json:"message"`
}

// do performs one API request. If payload is non-nil it is sent as JSON;
// if out is non-nil the response body is decoded into it.
func (c *Client) do(ctx context.Context, method, path string, payload, out interface{}) error {
	op := fmt.Sprintf("%s %s", method, path)

	var body io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return &TransportError{Op: op, Err: err}
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		utils.ErrorLogger.Printf("API error (%s): %v", op, err)
		return &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		utils.ErrorLogger.Printf("API error (%s): status %d", op, resp.StatusCode)
		return errorFromStatus(op, resp.StatusCode, respBody)
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return &TransportError{Op: op, Err: err}
		}
	}
	return nil
}

// errorFromStatus maps a non-2xx response to the error taxonomy. The message
// comes from the optional {message} body, falling back to a generic string.
func errorFromStatus(op string, status int, body []byte) error {
	msg := genericErrorMessage
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil && eb.Message != "" {
		msg = eb.Message
	}

	switch {
	case status == http.StatusNotFound:
		return &NotFoundError{Message: msg}
	case status >= 400 && status < 500:
		return &RejectedError{Message: msg}
	default:
		return &TransportError{Op: op, Message: msg}
	}
}
