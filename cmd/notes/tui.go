package main

import (
	"github.com/spf13/cobra"

	"github.com/idilsaglam/notes/internal/app"
	"github.com/idilsaglam/notes/internal/tui"
)

func newTUICmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Interactive view (the default)",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, s)
		},
	}
}

func runTUI(cmd *cobra.Command, s *session) error {
	_, err := tui.Run(s.ctrl, app.State{})
	return err
}
