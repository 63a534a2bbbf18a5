package pms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// request issues an authenticated call against the PMS and returns the
// raw, not-yet-validated JSON body. Policy: a 401/403 triggers one
// re-login and one retry; a 5xx triggers one retry after a fixed
// backoff; retries never compound. Everything else becomes an APIError.
func (c *Client) request(ctx context.Context, method, path string, body interface{}) (json.RawMessage, error) {
	var payload []byte
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		payload = b
	}

	for attempt := 0; ; attempt++ {
		var reader io.Reader
		if payload != nil {
			reader = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+c.bearer())

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("ezee request failed: %w", err)
		}
		respBody, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read response body: %w", err)
		}

		switch {
		case resp.StatusCode >= 200 && resp.StatusCode < 300:
			return json.RawMessage(respBody), nil

		case (resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden) && attempt == 0:
			if err := c.login(ctx); err != nil {
				return nil, err
			}

		case resp.StatusCode >= 500 && attempt == 0:
			select {
			case <-time.After(retryBackoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}

		default:
			return nil, newAPIError(resp.StatusCode, respBody)
		}
	}
}

// newAPIError builds a typed error from a failed response. The body is
// decoded best-effort; a non-JSON body leaves Payload nil.
func newAPIError(status int, body []byte) *APIError {
	code := "unknown"
	var payload interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		payload = nil
	} else if m, ok := payload.(map[string]interface{}); ok {
		if c, ok := m["code"].(string); ok && c != "" {
			code = c
		}
	}
	return &APIError{Status: status, Code: code, Payload: payload}
}
