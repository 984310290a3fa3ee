package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/notes/internal/api"
	"github.com/idilsaglam/notes/internal/app"
	"github.com/idilsaglam/notes/internal/model"
	"github.com/idilsaglam/notes/internal/ui"
)

// printState draws the listing a mutation leaves behind.
func printState(s *session, st app.State) {
	lines := ui.Header(st.Notes)
	lines = append(lines, "")
	lines = append(lines, ui.NoteLines(st.Visible(), st.EmptyMessage())...)
	ui.Panel(s.out, lines)
}

func newListCmd(s *session) *cobra.Command {
	var status, label string
	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List notes, optionally filtered by status or label",
		Args:    exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := api.NoteFilter{Label: strings.TrimSpace(label)}
			if status != "" {
				st, err := model.ParseStatus(status)
				if err != nil {
					return usageError{err}
				}
				f.Status = st
			}
			notes, err := s.client.ListNotes(cmd.Context(), f)
			if err != nil {
				return err
			}
			empty := "no notes yet"
			if f.Status != "" || f.Label != "" {
				empty = "no notes match this filter"
			}
			lines := ui.Header(notes)
			lines = append(lines, "")
			lines = append(lines, ui.NoteLines(notes, empty)...)
			lines = append(lines, "", ui.C(ui.Current().Muted, `Tip: add with `+"`notes add \"Buy milk\"`"))
			ui.Panel(s.out, lines)
			return nil
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "only notes in this status (active, completed, archived)")
	cmd.Flags().StringVar(&label, "label", "", "only notes carrying this label")
	return cmd
}

func newShowCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one note",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := s.client.GetNote(cmd.Context(), model.ID(args[0]))
			if err != nil {
				if api.IsNotFound(err) {
					return app.ErrNoteNotFound
				}
				return err
			}
			ui.Panel(s.out, ui.NoteDetail(n))
			return nil
		},
	}
}

func newAddCmd(s *session) *cobra.Command {
	var content, labels string
	cmd := &cobra.Command{
		Use:   "add <title...>",
		Short: "Create a note; unknown labels are created on the way",
		Args:  minArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d := app.Draft{Title: strings.Join(args, " "), Content: content, Labels: labels}
			if err := d.Validate(); err != nil {
				return err
			}
			st, err := s.ctrl.Start(cmd.Context(), app.State{})
			if err != nil {
				return err
			}
			st, err = s.ctrl.SaveNote(cmd.Context(), st, d)
			if err != nil {
				return err
			}
			ui.OK(s.out, st.Flash)
			printState(s, st)
			return nil
		},
	}
	cmd.Flags().StringVarP(&content, "content", "c", "", "note text")
	cmd.Flags().StringVarP(&labels, "labels", "l", "", `comma-separated labels, e.g. "work, urgent"`)
	return cmd
}

func newEditCmd(s *session) *cobra.Command {
	var title, content, labels string
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change a note's title, text or labels",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := s.ctrl.Start(cmd.Context(), app.State{})
			if err != nil {
				return err
			}
			n, ok := st.Note(model.ID(args[0]))
			if !ok {
				return app.ErrNoteNotFound
			}
			d := app.DraftFrom(n)
			fl := cmd.Flags()
			if fl.Changed("title") {
				d.Title = title
			}
			if fl.Changed("content") {
				d.Content = content
			}
			if fl.Changed("labels") {
				d.Labels = labels
			}
			st, err = s.ctrl.SaveNote(cmd.Context(), st, d)
			if err != nil {
				return err
			}
			ui.OK(s.out, st.Flash)
			printState(s, st)
			return nil
		},
	}
	cmd.Flags().StringVarP(&title, "title", "t", "", "new title")
	cmd.Flags().StringVarP(&content, "content", "c", "", "new text")
	cmd.Flags().StringVarP(&labels, "labels", "l", "", "replace labels (comma-separated, empty clears)")
	return cmd
}

func newAdvanceCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "advance <id>",
		Short: "Move a note along active -> completed -> archived -> active",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := s.ctrl.Start(cmd.Context(), app.State{})
			if err != nil {
				return err
			}
			st, err = s.ctrl.AdvanceStatus(cmd.Context(), st, model.ID(args[0]))
			if err != nil {
				return err
			}
			ui.OK(s.out, st.Flash)
			printState(s, st)
			return nil
		},
	}
}

func newRemoveCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a note",
		Args:    exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := s.ctrl.Start(cmd.Context(), app.State{})
			if err != nil {
				return err
			}
			st, err = s.ctrl.DeleteNote(cmd.Context(), st, model.ID(args[0]))
			if err != nil {
				if api.IsNotFound(err) {
					return app.ErrNoteNotFound
				}
				return err
			}
			ui.OK(s.out, st.Flash)
			printState(s, st)
			return nil
		},
	}
}
