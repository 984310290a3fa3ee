package main

import (
	"github.com/spf13/cobra"

	"github.com/idilsaglam/notes/internal/ui"
)

func newHealthCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the backend answers",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := s.client.Health(cmd.Context()); err != nil {
				return err
			}
			ui.OK(s.out, "backend reachable at "+s.client.BaseURL())
			return nil
		},
	}
}
