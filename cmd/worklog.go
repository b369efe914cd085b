package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var printTempoWorklogCmd = &cobra.Command{
	Use:   "print-tempo-worklog",
	Short: "Print today's tracked hours and last entry window",
	Args:  cobra.NoArgs,
	RunE:  runPrintTempoWorklog,
}

func runPrintTempoWorklog(cmd *cobra.Command, args []string) error {
	a := newApp()
	if err := a.PrintWorklog(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return nil
}
