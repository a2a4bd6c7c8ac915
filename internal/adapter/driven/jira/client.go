// Package jira implements the IssueClient port against Jira's REST API v2.
package jira

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/ericfisherdev/jiracheck/internal/domain/model"
	"github.com/ericfisherdev/jiracheck/internal/domain/port/driven"
)

// validateTimeout bounds the credential-validation probe. Issue fetches are
// deliberately unbounded; the run is sequential and interactive, and the
// whole process can be interrupted.
const validateTimeout = 10 * time.Second

// Compile-time interface satisfaction check.
var _ driven.IssueClient = (*Client)(nil)

// Client implements the driven.IssueClient port over Jira's REST API v2.
// When username and token are empty, requests are sent unauthenticated.
type Client struct {
	baseURL    string
	username   string
	token      string
	httpClient *http.Client
}

// NewClient creates a Jira client for the given base URL. username and token
// form a basic-auth pair; pass empty strings for unauthenticated access.
func NewClient(baseURL, username, token string) *Client {
	return &Client{
		baseURL:    baseURL,
		username:   username,
		token:      token,
		httpClient: &http.Client{},
	}
}

// NewClientWithHTTPClient creates a Client with a custom http.Client.
// This constructor is intended for testing, allowing injection of an
// httptest server transport.
func NewClientWithHTTPClient(httpClient *http.Client, baseURL, username, token string) *Client {
	return &Client{
		baseURL:    baseURL,
		username:   username,
		token:      token,
		httpClient: httpClient,
	}
}

// IssueStatus fetches the issue-detail endpoint for key and returns the
// composed status text. HTTP 401 maps to driven.ErrUnauthorized; any other
// non-200 status maps to *driven.StatusError.
func (c *Client) IssueStatus(ctx context.Context, key string) (string, error) {
	endpoint := fmt.Sprintf("%s/rest/api/2/issue/%s", c.baseURL, url.PathEscape(key))

	resp, err := c.get(ctx, endpoint)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		var issue model.Issue
		if err := json.NewDecoder(resp.Body).Decode(&issue); err != nil {
			return "", fmt.Errorf("decode issue %s: %w", key, err)
		}
		return issue.StatusText(), nil
	case resp.StatusCode == http.StatusUnauthorized:
		return "", fmt.Errorf("%s: %w", c.baseURL, driven.ErrUnauthorized)
	default:
		return "", &driven.StatusError{Code: resp.StatusCode}
	}
}

// Validate probes /rest/api/2/myself with the client's basic-auth pair.
// The probe is bounded by validateTimeout; any non-200 response or transport
// failure is an error.
func (c *Client) Validate(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, validateTimeout)
	defer cancel()

	resp, err := c.get(ctx, c.baseURL+"/rest/api/2/myself")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &driven.StatusError{Code: resp.StatusCode}
	}
	return nil
}

func (c *Client) get(ctx context.Context, endpoint string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if c.username != "" || c.token != "" {
		req.SetBasicAuth(c.username, c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", endpoint, err)
	}
	return resp, nil
}
