// Package tempo talks to the Tempo worklog REST API.
package tempo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"github.com/nhaef/narutils/internal/config"
	"github.com/nhaef/narutils/internal/httperr"
	"github.com/nhaef/narutils/internal/timecalc"
)

// Worklog is one remote time-tracking record.
type Worklog struct {
	BillableSeconds int    `json:"billableSeconds"`
	StartDate       string `json:"startDate"`
	StartTime       string `json:"startTime"`
	TempoWorklogID  int    `json:"tempoWorklogId"`
}

// Window returns the start and end of the entry's tracked interval,
// end = start + billable seconds. Crossing midnight wraps silently.
func (w Worklog) Window() (start, end timecalc.TimeOfDay, err error) {
	start, err = timecalc.ParseTimeOfDay(w.StartTime)
	if err != nil {
		return 0, 0, err
	}
	return start, start.Add(w.BillableSeconds), nil
}

// TotalBillableHours sums the billable seconds of all entries and converts
// to hours. An empty slice yields 0.
func TotalBillableHours(entries []Worklog) float64 {
	total := 0
	for _, w := range entries {
		total += w.BillableSeconds
	}
	return float64(total) / 3600
}

// CreateWorklogRequest is the POST /worklogs payload.
type CreateWorklogRequest struct {
	AuthorAccountID  string `json:"authorAccountId"`
	IssueID          int    `json:"issueId"`
	StartDate        string `json:"startDate"`
	StartTime        string `json:"startTime"`
	TimeSpentSeconds int    `json:"timeSpentSeconds"`
}

// userWorklogsResponse is the GET /worklogs/user/{accountId} payload.
// See https://apidocs.tempo.io/#tag/Worklogs/operation/getWorklogsByUser
type userWorklogsResponse struct {
	Results []Worklog `json:"results"`
}

// Client is a bearer-token Tempo API client.
type Client struct {
	apiURL     string
	httpClient *http.Client
}

// NewClient creates a Tempo client. The static API token is attached to
// every request through the oauth2 transport.
func NewClient(ctx context.Context, cfg config.TempoConfig) *Client {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token})
	return &Client{
		apiURL:     strings.TrimRight(cfg.APIURL, "/"),
		httpClient: oauth2.NewClient(ctx, ts),
	}
}

// UserWorklogs fetches the account's worklogs for the given day, in the
// order the service returns them (ascending by start time). No local
// re-sorting is performed.
func (c *Client) UserWorklogs(ctx context.Context, accountID string, day time.Time) ([]Worklog, error) {
	date := day.Format("2006-01-02")
	endpoint := fmt.Sprintf("%s/worklogs/user/%s?from=%s&to=%s",
		c.apiURL, url.PathEscape(accountID), date, date)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tempo API request failed: %w", err)
	}
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tempo worklogs: %w", httperr.FromResponse(resp, body))
	}

	var page userWorklogsResponse
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("decoding tempo response: %w", err)
	}
	return page.Results, nil
}

// CreateWorklog submits a new worklog entry. Exactly one attempt is made:
// a retry after a transient failure could create a duplicate entry, so
// recovery is left to the operator.
func (c *Client) CreateWorklog(ctx context.Context, wr CreateWorklogRequest) error {
	if wr.TimeSpentSeconds <= 0 {
		return fmt.Errorf("%w: time spent must be positive, got %d", httperr.ErrValidation, wr.TimeSpentSeconds)
	}

	payload, err := json.Marshal(wr)
	if err != nil {
		return fmt.Errorf("marshalling worklog request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+"/worklogs", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("tempo API request failed: %w", err)
	}
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("tempo create worklog: %w", httperr.FromResponse(resp, body))
	}
	return nil
}
