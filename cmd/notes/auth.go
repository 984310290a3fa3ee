package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/notes/internal/config"
	"github.com/idilsaglam/notes/internal/ui"
)

func newAuthCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage the bearer token sent to the backend",
	}

	var expiresIn time.Duration
	login := &cobra.Command{
		Use:   "login <token>",
		Short: "Store a token (the NOTES_TOKEN env var overrides it)",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var exp *time.Time
			if expiresIn > 0 {
				t := time.Now().Add(expiresIn)
				exp = &t
			}
			if err := config.SetToken(s.configPath, args[0], exp); err != nil {
				return usagef("login: %v", err)
			}
			ui.OK(s.out, "token saved")
			return nil
		},
	}
	login.Flags().DurationVar(&expiresIn, "expires-in", 0, "forget the token after this long, e.g. 24h")

	logout := &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored token",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.DeleteToken(s.configPath); err != nil {
				return err
			}
			ui.OK(s.out, "logged out")
			return nil
		},
	}

	status := &cobra.Command{
		Use:   "status",
		Short: "Show where the token comes from",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			ti, err := config.GetToken(s.configPath)
			if err != nil {
				return err
			}
			if ti == nil {
				fmt.Fprintln(s.out, "not logged in")
				return nil
			}
			lines := []string{
				"source: " + ti.Source,
				"token:  " + mask(ti.Token),
			}
			if ti.ExpiresAt != nil {
				state := "valid"
				if ti.Expired(time.Now()) {
					state = "expired"
				}
				lines = append(lines, fmt.Sprintf("expires: %s (%s)", ti.ExpiresAt.Format(time.RFC3339), state))
			}
			ui.Panel(s.out, lines)
			return nil
		},
	}

	cmd.AddCommand(login, logout, status)
	return cmd
}

// mask keeps only the ends of a token visible.
func mask(tok string) string {
	if len(tok) <= 8 {
		return strings.Repeat("*", len(tok))
	}
	return tok[:4] + strings.Repeat("*", len(tok)-8) + tok[len(tok)-4:]
}
