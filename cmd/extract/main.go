package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	inputFile  string
	schedule   bool
	calendarID string
	configDir  string
)

// rootCmd extracts dated tasks from a text file or stdin.
var rootCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract dated tasks from free-form text",
	Long: `Extract dated, prioritized and categorized tasks from free-form text.

Input is read from --file or, when omitted, from stdin. The tasks are printed
to stdout as JSON. With --schedule each task also becomes a Google Calendar
event on the configured (or --calendar-id) calendar.`,
	Example: `  extract --file notes.txt
  echo "Submit the report by Friday" | extract
  extract --file notes.txt --schedule --calendar-id team@example.com`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runExtract,
}

// authCmd runs the OAuth consent flow for installed-app credentials.
var authCmd = &cobra.Command{
	Use:   "auth [credentials.json]",
	Short: "Authorize Google Calendar access and write token.json",
	Long: `Run this once to authorize Google Calendar access with OAuth Desktop App
credentials. It prints a consent URL, reads the authorization code from stdin
and saves the resulting token to token.json in the working directory.

Service-account credentials do not need this step.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAuth,
}

func init() {
	rootCmd.Flags().StringVarP(&inputFile, "file", "f", "", "path to a .txt file (default: stdin)")
	rootCmd.Flags().BoolVar(&schedule, "schedule", false, "create a calendar event for every extracted task")
	rootCmd.Flags().StringVar(&calendarID, "calendar-id", "", "target calendar (default: google_calendar.calendar_id)")
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "directory containing config.yaml")

	rootCmd.AddCommand(authCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
