package app_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/nhaef/narutils/internal/app"
	"github.com/nhaef/narutils/internal/config"
	"github.com/nhaef/narutils/internal/state"
	"github.com/nhaef/narutils/internal/tempo"
)

// fixture wires an App against fake Jira and Tempo servers and a temp
// state directory.
type fixture struct {
	app      *app.App
	out      *bytes.Buffer
	worklogs []tempo.Worklog
	// submitted collects every POSTed worklog request.
	submitted []tempo.CreateWorklogRequest
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{out: &bytes.Buffer{}}

	jiraSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/rest/api/latest/myself":
			fmt.Fprint(w, `{"accountId": "acc-123"}`)
		case "/rest/api/latest/issue/TTM-42":
			fmt.Fprint(w, `{"id": "10042", "fields": {"summary": "Fix login bug"}}`)
		case "/rest/api/latest/issue/TTM-99":
			fmt.Fprint(w, `{"id": "10099", "fields": {"summary": "Retry logic"}}`)
		default:
			http.Error(w, `{"errorMessages":["Issue does not exist"]}`, http.StatusNotFound)
		}
	}))
	t.Cleanup(jiraSrv.Close)

	tempoSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet:
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]any{"results": f.worklogs})
		case r.Method == http.MethodPost:
			var req tempo.CreateWorklogRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Errorf("decoding submitted worklog: %v", err)
			}
			f.submitted = append(f.submitted, req)
			w.WriteHeader(http.StatusOK)
		}
	}))
	t.Cleanup(tempoSrv.Close)

	cfg := config.Config{
		JiraHost:     jiraSrv.URL,
		JiraUsername: "me@example.com",
		JiraPassword: "secret",
		Tempo: &config.TempoConfig{
			Token:  "tempo-token",
			APIURL: tempoSrv.URL,
		},
	}
	f.app = app.New(cfg, state.NewStore(t.TempDir()), f.out)
	return f
}

func TestShowActiveIssueNoneSelected(t *testing.T) {
	f := newFixture(t)

	if err := f.app.ShowActiveIssue(context.Background()); err != nil {
		t.Fatalf("ShowActiveIssue: %v", err)
	}
	if got := f.out.String(); got != "No active issue selected.\n" {
		t.Errorf("output = %q", got)
	}
}

func TestActivateThenShow(t *testing.T) {
	f := newFixture(t)

	if err := f.app.ActivateIssue("feature/TTM-99-retry-logic"); err != nil {
		t.Fatalf("ActivateIssue: %v", err)
	}

	key, err := f.app.State.Load()
	if err != nil {
		t.Fatalf("Load after activate: %v", err)
	}
	if key != "TTM-99" {
		t.Errorf("persisted key = %q, want %q", key, "TTM-99")
	}

	f.out.Reset()
	if err := f.app.ShowActiveIssue(context.Background()); err != nil {
		t.Fatalf("ShowActiveIssue: %v", err)
	}
	want := fmt.Sprintf("issue_key: TTM-99\nsummary: Retry logic\nurl: %s\n",
		f.app.Jira.IssueURL("TTM-99"))
	if got := f.out.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestActivateIssueParseFailureSavesNothing(t *testing.T) {
	f := newFixture(t)

	if err := f.app.ActivateIssue("no key here"); err == nil {
		t.Fatal("expected parse error, got nil")
	}
	if _, err := f.app.State.Load(); !errors.Is(err, state.ErrNoActiveIssue) {
		t.Error("no state must be saved on parse failure")
	}
}

func TestFormatCommitActiveIssue(t *testing.T) {
	f := newFixture(t)
	if err := f.app.State.Save("TTM-42"); err != nil {
		t.Fatal(err)
	}

	if err := f.app.FormatCommit(context.Background(), ""); err != nil {
		t.Fatalf("FormatCommit: %v", err)
	}
	if got := f.out.String(); got != "fix: Fix login bug\n" {
		t.Errorf("output = %q, want %q", got, "fix: Fix login bug\n")
	}
}

func TestFormatCommitExplicitArgument(t *testing.T) {
	f := newFixture(t)

	if err := f.app.FormatCommit(context.Background(), "feature/TTM-99-retry-logic"); err != nil {
		t.Fatalf("FormatCommit: %v", err)
	}
	if got := f.out.String(); got != "fix: Retry logic\n" {
		t.Errorf("output = %q, want %q", got, "fix: Retry logic\n")
	}
}

func TestFormatCommitNoActiveIssue(t *testing.T) {
	f := newFixture(t)

	err := f.app.FormatCommit(context.Background(), "")
	if !errors.Is(err, state.ErrNoActiveIssue) {
		t.Fatalf("error = %v, want ErrNoActiveIssue", err)
	}
}

func TestPrintWorklog(t *testing.T) {
	f := newFixture(t)
	f.worklogs = []tempo.Worklog{
		{BillableSeconds: 3600, StartTime: "09:00:00"},
		{BillableSeconds: 1800, StartTime: "10:00:00"},
	}

	if err := f.app.PrintWorklog(context.Background()); err != nil {
		t.Fatalf("PrintWorklog: %v", err)
	}
	want := "Today worked hours: 1.5\nStarted work at: 09:00:00\nLast entry: 10:00:00 - 10:30:00\n"
	if got := f.out.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestPrintWorklogEmptyDay(t *testing.T) {
	f := newFixture(t)

	if err := f.app.PrintWorklog(context.Background()); err != nil {
		t.Fatalf("PrintWorklog: %v", err)
	}
	if got := f.out.String(); got != "Today worked hours: 0\n" {
		t.Errorf("output = %q", got)
	}
}

func TestPrintWorklogTempoNotConfigured(t *testing.T) {
	f := newFixture(t)
	f.app.Config.Tempo = nil

	err := f.app.PrintWorklog(context.Background())
	if !errors.Is(err, config.ErrTempoNotConfigured) {
		t.Fatalf("error = %v, want ErrTempoNotConfigured", err)
	}
}

func TestTrackTime(t *testing.T) {
	f := newFixture(t)
	if err := f.app.State.Save("TTM-42"); err != nil {
		t.Fatal(err)
	}
	f.worklogs = []tempo.Worklog{
		{BillableSeconds: 1800, StartTime: "10:00:00", TempoWorklogID: 1},
	}
	f.app.PickMinutes = func(title string, options []int) (int, error) {
		return 30, nil
	}

	if err := f.app.TrackTime(context.Background()); err != nil {
		t.Fatalf("TrackTime: %v", err)
	}

	if len(f.submitted) != 1 {
		t.Fatalf("submitted = %d requests, want 1", len(f.submitted))
	}
	got := f.submitted[0]
	want := tempo.CreateWorklogRequest{
		AuthorAccountID:  "acc-123",
		IssueID:          10042,
		StartDate:        time.Now().Format("2006-01-02"),
		StartTime:        "10:30:00",
		TimeSpentSeconds: 1800,
	}
	if got != want {
		t.Errorf("submitted = %+v, want %+v", got, want)
	}
}

func TestTrackTimeNoEntriesToday(t *testing.T) {
	f := newFixture(t)
	if err := f.app.State.Save("TTM-42"); err != nil {
		t.Fatal(err)
	}
	f.app.PickMinutes = func(title string, options []int) (int, error) {
		return 15, nil
	}

	err := f.app.TrackTime(context.Background())
	if !errors.Is(err, app.ErrNoEntriesToday) {
		t.Fatalf("error = %v, want ErrNoEntriesToday", err)
	}
	if len(f.submitted) != 0 {
		t.Error("nothing must be submitted without a baseline entry")
	}
}

func TestTrackTimeNoActiveIssue(t *testing.T) {
	f := newFixture(t)

	err := f.app.TrackTime(context.Background())
	if !errors.Is(err, state.ErrNoActiveIssue) {
		t.Fatalf("error = %v, want ErrNoActiveIssue", err)
	}
}

func TestTrackTimeWrapsPastMidnight(t *testing.T) {
	f := newFixture(t)
	if err := f.app.State.Save("TTM-42"); err != nil {
		t.Fatal(err)
	}
	f.worklogs = []tempo.Worklog{
		{BillableSeconds: 3600, StartTime: "23:30:00", TempoWorklogID: 1},
	}
	f.app.PickMinutes = func(title string, options []int) (int, error) {
		return 15, nil
	}

	if err := f.app.TrackTime(context.Background()); err != nil {
		t.Fatalf("TrackTime: %v", err)
	}
	if len(f.submitted) != 1 {
		t.Fatalf("submitted = %d requests, want 1", len(f.submitted))
	}
	if got := f.submitted[0].StartTime; got != "00:30:00" {
		t.Errorf("StartTime = %q, want %q (silent wrap)", got, "00:30:00")
	}
}
