package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
)

const tokenPath = "token.json"

func runAuth(cmd *cobra.Command, args []string) error {
	credsPath := "google-credentials.json"
	if len(args) > 0 {
		credsPath = args[0]
	}

	data, err := os.ReadFile(credsPath)
	if err != nil {
		return fmt.Errorf("read credentials file %q: %w", credsPath, err)
	}

	oauthCfg, err := google.ConfigFromJSON(data, calendar.CalendarScope)
	if err != nil {
		return fmt.Errorf("parse credentials (expected an OAuth Desktop App file): %w", err)
	}

	out := cmd.OutOrStdout()
	authURL := oauthCfg.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Fprintln(out, "1. Open this URL in a browser and sign in:")
	fmt.Fprintln(out)
	fmt.Fprintln(out, authURL)
	fmt.Fprintln(out)
	fmt.Fprint(out, "2. Paste the authorization code here and press Enter: ")

	var code string
	if _, err := fmt.Fscan(cmd.InOrStdin(), &code); err != nil {
		return fmt.Errorf("read authorization code: %w", err)
	}

	tok, err := oauthCfg.Exchange(cmd.Context(), code)
	if err != nil {
		return fmt.Errorf("exchange authorization code: %w", err)
	}

	f, err := os.OpenFile(tokenPath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("create %s: %w", tokenPath, err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(tok); err != nil {
		return fmt.Errorf("write %s: %w", tokenPath, err)
	}

	fmt.Fprintf(out, "\nSaved %s. Point google_calendar.credentials_path at %s and restart the API.\n", tokenPath, credsPath)
	return nil
}
