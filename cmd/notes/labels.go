package main

import (
	"github.com/spf13/cobra"

	"github.com/idilsaglam/notes/internal/app"
	"github.com/idilsaglam/notes/internal/model"
	"github.com/idilsaglam/notes/internal/ui"
)

func newLabelsCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "labels",
		Short: "List labels; see subcommands to add or remove them",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			labels, err := s.client.ListLabels(cmd.Context())
			if err != nil {
				return err
			}
			ui.Panel(s.out, ui.LabelLines(labels))
			return nil
		},
	}

	var color string
	add := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a label (an existing name is returned as is)",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := s.ctrl.Start(cmd.Context(), app.State{})
			if err != nil {
				return err
			}
			st, err = s.ctrl.CreateLabel(cmd.Context(), st, args[0], color)
			if err != nil {
				return err
			}
			ui.OK(s.out, st.Flash)
			ui.Panel(s.out, ui.LabelLines(st.Labels))
			return nil
		},
	}
	add.Flags().StringVar(&color, "color", "", "display color, e.g. #3498db")

	rm := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a label and strip it from every note",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := s.ctrl.Start(cmd.Context(), app.State{})
			if err != nil {
				return err
			}
			st, err = s.ctrl.DeleteLabel(cmd.Context(), st, model.ID(args[0]))
			if err != nil {
				return err
			}
			ui.OK(s.out, st.Flash)
			ui.Panel(s.out, ui.LabelLines(st.Labels))
			return nil
		},
	}

	cmd.AddCommand(add, rm)
	return cmd
}
