package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var getActiveIssueCmd = &cobra.Command{
	Use:   "get-active-issue",
	Short: "Show the active issue's key, summary and URL",
	Args:  cobra.NoArgs,
	RunE:  runGetActiveIssue,
}

func runGetActiveIssue(cmd *cobra.Command, args []string) error {
	a := newApp()
	if err := a.ShowActiveIssue(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return nil
}
