package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nhaef/narutils/internal/app"
	"github.com/nhaef/narutils/internal/config"
	"github.com/nhaef/narutils/internal/state"
)

var activateIssueCmd = &cobra.Command{
	Use:   "activate-issue <issue>",
	Short: "Set the active issue from an issue key or branch name",
	Args:  cobra.ExactArgs(1),
	RunE:  runActivateIssue,
}

func runActivateIssue(cmd *cobra.Command, args []string) error {
	// Activating an issue is purely local, so no config file is needed.
	a := &app.App{State: state.NewStore(config.Dir), Out: os.Stdout}
	if err := a.ActivateIssue(args[0]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return nil
}
