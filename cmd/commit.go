package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var formatCommitCmd = &cobra.Command{
	Use:   "format-commit [issue]",
	Short: "Print a commit message prefix for an issue",
	Long: `Prints "fix: <summary>" for the given issue key or branch name.
Without an argument the active issue is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFormatCommit,
}

func runFormatCommit(cmd *cobra.Command, args []string) error {
	raw := ""
	if len(args) == 1 {
		raw = args[0]
	}

	a := newApp()
	if err := a.FormatCommit(context.Background(), raw); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return nil
}
