// Package app composes the state store, Jira client and Tempo client into
// the user-facing workflows.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/nhaef/narutils/internal/config"
	"github.com/nhaef/narutils/internal/issuekey"
	"github.com/nhaef/narutils/internal/jira"
	"github.com/nhaef/narutils/internal/picker"
	"github.com/nhaef/narutils/internal/state"
	"github.com/nhaef/narutils/internal/tempo"
	"github.com/nhaef/narutils/internal/timecalc"
)

// ErrNoEntriesToday reports that track-time was invoked on a day with no
// worklog entries yet. A baseline entry is required to anchor a contiguous
// start time.
var ErrNoEntriesToday = errors.New("no worklog entries tracked today yet, create the first entry manually")

// App wires the workflows together. Config is loaded explicitly per
// invocation and passed in at construction; nothing here is global.
type App struct {
	Config config.Config
	State  *state.Store
	Jira   *jira.Client
	Out    io.Writer

	// PickMinutes is the interactive selection mechanism for track-time,
	// replaceable in tests.
	PickMinutes func(title string, options []int) (int, error)
}

// New builds an App from a loaded configuration.
func New(cfg config.Config, st *state.Store, out io.Writer) *App {
	return &App{
		Config:      cfg,
		State:       st,
		Jira:        jira.NewClient(cfg),
		Out:         out,
		PickMinutes: picker.PickMinutes,
	}
}

// tempoClient constructs the Tempo client, failing when the optional tempo
// config block is absent.
func (a *App) tempoClient(ctx context.Context) (*tempo.Client, error) {
	tc, err := a.Config.RequireTempo()
	if err != nil {
		return nil, err
	}
	return tempo.NewClient(ctx, tc), nil
}

// ShowActiveIssue reports the active issue's key, summary and browse URL.
// An unset active issue is a valid state and prints informationally.
func (a *App) ShowActiveIssue(ctx context.Context) error {
	key, err := a.State.Load()
	if errors.Is(err, state.ErrNoActiveIssue) {
		fmt.Fprintln(a.Out, "No active issue selected.")
		return nil
	}
	if err != nil {
		return err
	}

	issue, err := a.Jira.Issue(ctx, key)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.Out, "issue_key: %s\nsummary: %s\nurl: %s\n",
		key, issue.Fields.Summary, a.Jira.IssueURL(key))
	return nil
}

// ActivateIssue extracts an issue key from raw input (a key or a branch
// name) and persists it as the active issue. No partial state is saved on
// parse failure.
func (a *App) ActivateIssue(raw string) error {
	key, err := issuekey.Extract(raw)
	if err != nil {
		return err
	}
	if err := a.State.Save(key); err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "Active issue set to %s.\n", key)
	return nil
}

// FormatCommit prints a commit message prefix for the issue named by raw,
// or for the active issue when raw is empty. Here a missing active issue is
// a hard failure since there is nothing to format.
func (a *App) FormatCommit(ctx context.Context, raw string) error {
	var key string
	var err error
	if raw != "" {
		key, err = issuekey.Extract(raw)
	} else {
		key, err = a.State.Load()
	}
	if err != nil {
		return err
	}

	issue, err := a.Jira.Issue(ctx, key)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.Out, "fix: %s\n", issue.Fields.Summary)
	return nil
}

// PrintWorklog reports today's total billable hours, the first entry's
// start time and the last entry's tracked window.
func (a *App) PrintWorklog(ctx context.Context) error {
	tc, err := a.tempoClient(ctx)
	if err != nil {
		return err
	}
	accountID, err := a.Jira.Myself(ctx)
	if err != nil {
		return err
	}
	entries, err := tc.UserWorklogs(ctx, accountID, time.Now())
	if err != nil {
		return err
	}
	return a.printSummary(entries)
}

func (a *App) printSummary(entries []tempo.Worklog) error {
	fmt.Fprintf(a.Out, "Today worked hours: %g\n", tempo.TotalBillableHours(entries))
	if len(entries) == 0 {
		return nil
	}

	fmt.Fprintf(a.Out, "Started work at: %s\n", entries[0].StartTime)

	start, end, err := entries[len(entries)-1].Window()
	if err != nil {
		return fmt.Errorf("last worklog entry: %w", err)
	}
	fmt.Fprintf(a.Out, "Last entry: %s - %s\n", start, end)
	return nil
}

// TrackTime prompts for a duration and submits a worklog entry starting
// exactly where today's last entry ended, keeping the tracked timeline
// contiguous. Requires an active issue and at least one entry today.
func (a *App) TrackTime(ctx context.Context) error {
	key, err := a.State.Load()
	if err != nil {
		return err
	}

	tc, err := a.tempoClient(ctx)
	if err != nil {
		return err
	}
	accountID, err := a.Jira.Myself(ctx)
	if err != nil {
		return err
	}

	today := time.Now()
	entries, err := tc.UserWorklogs(ctx, accountID, today)
	if err != nil {
		return err
	}
	if err := a.printSummary(entries); err != nil {
		return err
	}

	minutes, err := a.PickMinutes("How many minutes do you want to track?", picker.Minutes)
	if err != nil {
		return err
	}

	// Fetch again after the prompt so an entry created meanwhile is
	// still used as the anchor.
	entries, err = tc.UserWorklogs(ctx, accountID, today)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return ErrNoEntriesToday
	}

	_, nextStart, err := entries[len(entries)-1].Window()
	if err != nil {
		return fmt.Errorf("last worklog entry: %w", err)
	}

	issue, err := a.Jira.Issue(ctx, key)
	if err != nil {
		return err
	}
	issueID, err := strconv.Atoi(issue.ID)
	if err != nil {
		return fmt.Errorf("issue id %q is not numeric: %w", issue.ID, err)
	}

	seconds := minutes * 60
	err = tc.CreateWorklog(ctx, tempo.CreateWorklogRequest{
		AuthorAccountID:  accountID,
		IssueID:          issueID,
		StartDate:        today.Format("2006-01-02"),
		StartTime:        nextStart.String(),
		TimeSpentSeconds: seconds,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.Out, "Tracked %s on %s starting at %s.\n",
		timecalc.FormatDuration(seconds), key, nextStart)
	return nil
}
