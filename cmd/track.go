package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var trackTimeCmd = &cobra.Command{
	Use:   "track-time",
	Short: "Track time on the active issue, starting where the last entry ended",
	Args:  cobra.NoArgs,
	RunE:  runTrackTime,
}

func runTrackTime(cmd *cobra.Command, args []string) error {
	a := newApp()
	if err := a.TrackTime(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return nil
}
