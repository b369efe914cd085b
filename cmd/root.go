package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nhaef/narutils/internal/app"
	"github.com/nhaef/narutils/internal/config"
	"github.com/nhaef/narutils/internal/state"
)

// configHint is printed whenever a command needs the config file and it
// does not exist yet.
const configHint = "To configure the application, please create a file .narutils/config.json and fill it with values."

var rootCmd = &cobra.Command{
	Use:   "narutils",
	Short: "Jira and Tempo workflow helpers",
	Long: `narutils keeps track of the Jira issue you are currently working on and
uses it to format commit messages and submit Tempo worklogs.
Configuration and state live in .narutils/ in the working directory.`,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(activateIssueCmd)
	rootCmd.AddCommand(getActiveIssueCmd)
	rootCmd.AddCommand(formatCommitCmd)
	rootCmd.AddCommand(printTempoWorklogCmd)
	rootCmd.AddCommand(trackTimeCmd)
	rootCmd.AddCommand(configCmd)
}

// newApp loads the configuration and wires the workflows. A missing config
// file is rendered as the actionable hint, everything else as the error.
func newApp() *app.App {
	cfg, err := config.Load()
	if err != nil {
		if errors.Is(err, config.ErrMissing) {
			fmt.Fprintln(os.Stderr, configHint)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
	return app.New(cfg, state.NewStore(config.Dir), os.Stdout)
}
