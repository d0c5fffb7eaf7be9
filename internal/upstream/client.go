// Package upstream is the HTTP client for the application backend that owns
// submitted applications and program metadata. The backend is treated as an
// opaque collaborator; this service only speaks its wire contract.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go-internship-gateway/internal/domain"
)

// APIError is a well-formed rejection from the backend, as opposed to a
// transport failure. Its message is safe to show to the applicant.
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// Client calls the upstream application backend.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// New creates a client with a configurable timeout.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTP: &http.Client{
			Timeout: timeout,
		},
	}
}

// SubmitApplication forwards a validated record to POST /add/submit and
// returns the backend's verdict. A response with success=false is returned
// as data, not as an error; only transport and decode problems error out.
func (c *Client) SubmitApplication(ctx context.Context, record *domain.ApplicationRecord) (*domain.SubmitResponse, error) {
	body, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("encode application: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/add/submit", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("backend request failed: %w", err)
	}
	defer resp.Body.Close()

	var out domain.SubmitResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		// The backend reports rejections in the body even on non-2xx
		// statuses; a body that does not decode is a transport-level fault.
		return nil, fmt.Errorf("backend error %s: malformed response", resp.Status)
	}

	return &out, nil
}

// FetchProgramInfo retrieves program metadata from GET /submitflow. The
// backend wraps the payload in {success, data: [...]}; the first element is
// the one the confirmation page renders. A success=false answer becomes an
// APIError carrying the backend's message.
func (c *Client) FetchProgramInfo(ctx context.Context) (*domain.ProgramInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/submitflow", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("backend request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("backend error %s: %s", resp.Status, string(bodyBytes))
	}

	var out struct {
		Success bool                 `json:"success"`
		Data    []domain.ProgramInfo `json:"data"`
		Message string               `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("backend error %s: malformed response", resp.Status)
	}

	if !out.Success {
		return nil, &APIError{Message: out.Message}
	}
	if len(out.Data) == 0 {
		// The page renders with absent fields rather than failing outright.
		return &domain.ProgramInfo{}, nil
	}
	return &out.Data[0], nil
}
