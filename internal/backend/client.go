// Package backend implements the HTTP client for the metered search API.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/leadscout-hq/leadscout/internal/domain"
)

const (
	jobsPath   = "/v1/search/jobs"
	peoplePath = "/v1/search/people"

	defaultTimeout = 30 * time.Second
)

// Client talks to the metered search API. Both search endpoints accept the
// same envelope shape: the serialized canonical request with limit and
// strategy.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// New creates a Client for the given backend.
func New(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

// errorResponse is the backend's non-2xx envelope.
type errorResponse struct {
	Error string `json:"error"`
}

// SearchJobs performs a metered job search.
func (c *Client) SearchJobs(ctx context.Context, req domain.JobSearchRequest) (*domain.ResultSet[domain.JobPosting], *domain.SearchError) {
	return post[domain.JobPosting](ctx, c, jobsPath, req)
}

// SearchPeople performs a metered people search.
func (c *Client) SearchPeople(ctx context.Context, req domain.PeopleSearchRequest) (*domain.ResultSet[domain.Contact], *domain.SearchError) {
	return post[domain.Contact](ctx, c, peoplePath, req)
}

// post sends one canonical payload and normalizes every failure mode into the
// search error taxonomy: network failure → transport, non-2xx → rejected with
// the server's message, undecodable 2xx body → protocol. An empty or invalid
// body is never coerced to an empty result set.
func post[T any](ctx context.Context, c *Client, path string, body any) (*domain.ResultSet[T], *domain.SearchError) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, domain.NewProtocolError("failed to marshal request body", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, domain.NewTransportError(err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domain.NewTransportError(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.NewTransportError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp errorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != "" {
			return nil, domain.NewRejectedError(resp.StatusCode, errResp.Error)
		}
		return nil, domain.NewRejectedError(resp.StatusCode, fmt.Sprintf("backend returned status %d", resp.StatusCode))
	}

	if len(respBody) == 0 {
		return nil, domain.NewProtocolError("empty response body where a result set was expected", nil)
	}

	var rs domain.ResultSet[T]
	if err := json.Unmarshal(respBody, &rs); err != nil {
		return nil, domain.NewProtocolError(fmt.Sprintf("failed to decode search response: %v", err), err)
	}

	return &rs, nil
}
