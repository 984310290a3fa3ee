package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/notes/internal/config"
	"github.com/idilsaglam/notes/internal/ui"
)

// configFile is the settings file this invocation reads and writes.
func (s *session) configFile() (string, error) {
	if s.configPath != "" {
		return s.configPath, nil
	}
	return config.Path()
}

func newConfigCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective settings; see set to change them",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := s.configFile()
			if err != nil {
				return err
			}
			c := s.cfg
			ui.Panel(s.out, []string{
				ui.C(ui.Current().Muted, "file: "+path),
				"api_url:   " + c.APIURL,
				"timeout:   " + c.Timeout.String(),
				"theme:     " + c.Theme,
				"log_level: " + c.LogLevel,
				"log_file:  " + c.LogFile,
			})
			return nil
		},
	}

	set := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Write one setting to the config file (an empty value resets it)",
		Args:  exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]
			if key == "theme" && value != "" && !ui.KnownTheme(value) {
				return usagef("unknown theme %q", value)
			}
			path, err := s.configFile()
			if err != nil {
				return err
			}
			file, err := config.ReadFile(path)
			if err != nil {
				return err
			}
			if err := file.Set(key, value); err != nil {
				return usageError{err}
			}
			if err := config.Save(path, file); err != nil {
				return fmt.Errorf("save config: %w", err)
			}
			ui.OK(s.out, fmt.Sprintf("%s saved to %s", key, path))
			return nil
		},
	}

	cmd.AddCommand(set)
	return cmd
}
