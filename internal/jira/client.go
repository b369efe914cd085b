// Package jira resolves issues and the caller's account identity against
// the Jira REST API.
package jira

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/nhaef/narutils/internal/config"
	"github.com/nhaef/narutils/internal/httperr"
)

// Issue is a remote issue record, fetched fresh per operation and never cached.
type Issue struct {
	ID     string      `json:"id"`
	Fields IssueFields `json:"fields"`
}

// IssueFields holds the subset of Jira fields this tool cares about.
type IssueFields struct {
	Summary string `json:"summary"`
}

// myselfResponse is the /myself payload.
type myselfResponse struct {
	AccountID string `json:"accountId"`
}

// Client is a basic-auth Jira API client.
type Client struct {
	host       string
	username   string
	password   string
	httpClient *http.Client
}

// NewClient creates a Jira client from the loaded configuration.
func NewClient(cfg config.Config) *Client {
	return &Client{
		host:       strings.TrimRight(cfg.JiraHost, "/"),
		username:   cfg.JiraUsername,
		password:   cfg.JiraPassword,
		httpClient: &http.Client{},
	}
}

// IssueURL composes the browse URL for an issue key. Pure string
// composition; the host was validated at config load.
func (c *Client) IssueURL(key string) string {
	return c.host + "/browse/" + key
}

// Issue fetches the remote record for an issue key.
func (c *Client) Issue(ctx context.Context, key string) (Issue, error) {
	var issue Issue
	if err := c.get(ctx, "/issue/"+url.PathEscape(key), &issue); err != nil {
		return Issue{}, err
	}
	return issue, nil
}

// Myself resolves the authenticated caller's account ID. The time-tracking
// API addresses worklogs by account identity rather than by credentials.
func (c *Client) Myself(ctx context.Context) (string, error) {
	var myself myselfResponse
	if err := c.get(ctx, "/myself", &myself); err != nil {
		return "", err
	}
	return myself.AccountID, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	endpoint := c.host + "/rest/api/latest" + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.SetBasicAuth(c.username, c.password)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("jira API request failed: %w", err)
	}
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("jira %s: %w", path, httperr.FromResponse(resp, body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decoding jira response: %w", err)
	}
	return nil
}
