package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/notes/internal/api"
	"github.com/idilsaglam/notes/internal/app"
	"github.com/idilsaglam/notes/internal/config"
	"github.com/idilsaglam/notes/internal/logging"
	"github.com/idilsaglam/notes/internal/ui"
)

// usageError marks bad invocations; they exit with status 2.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func usagef(format string, args ...any) error {
	return usageError{fmt.Errorf(format, args...)}
}

// exactArgs is cobra.ExactArgs with a usage-classified error.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return usageError{fmt.Errorf("usage: %s", cmd.UseLine())}
		}
		return nil
	}
}

func minArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.MinimumNArgs(n)(cmd, args); err != nil {
			return usageError{fmt.Errorf("usage: %s", cmd.UseLine())}
		}
		return nil
	}
}

// session is what every subcommand works with, built once flags are parsed.
type session struct {
	cfg        config.Config
	configPath string
	log        *logging.Logger
	client     *api.Client
	ctrl       *app.Controller
	out        io.Writer
	errOut     io.Writer
}

type rootFlags struct {
	apiURL     string
	configPath string
	theme      string
	noColor    bool
	verbose    bool
}

func newRootCmd(out, errOut io.Writer) (*cobra.Command, *session) {
	var flags rootFlags
	s := &session{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "notes",
		Short: "A terminal client for the notes server",
		Long: `notes lists, edits and cycles notes kept by a notes REST server.
Run without a subcommand for the interactive view.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.open(cmd, flags)
		},
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return usagef("unknown command %q for notes", args[0])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, s)
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError{err}
	})

	pf := root.PersistentFlags()
	pf.StringVar(&flags.apiURL, "api", "", "backend base URL (default from config, then "+config.DefaultAPIURL+")")
	pf.StringVar(&flags.configPath, "config", "", "config file (default $NOTES_CONFIG or ~/.notes/config.yaml)")
	pf.StringVar(&flags.theme, "theme", "", "output theme: "+strings.Join(ui.Themes, ", "))
	pf.BoolVar(&flags.noColor, "no-color", false, "disable colored output")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newHealthCmd(s),
		newListCmd(s),
		newShowCmd(s),
		newAddCmd(s),
		newEditCmd(s),
		newAdvanceCmd(s),
		newRemoveCmd(s),
		newLabelsCmd(s),
		newAuthCmd(s),
		newConfigCmd(s),
		newTUICmd(s),
	)
	return root, s
}

func (s *session) close() {
	if s.log != nil {
		_ = s.log.Close()
	}
}

// open resolves settings and wires logger, client and controller.
func (s *session) open(cmd *cobra.Command, f rootFlags) error {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return usageError{err}
	}
	if f.apiURL != "" {
		cfg.APIURL = f.apiURL
	}
	if f.theme != "" {
		cfg.Theme = f.theme
	}
	if !ui.KnownTheme(cfg.Theme) {
		return usagef("unknown theme %q (want %s)", cfg.Theme, strings.Join(ui.Themes, ", "))
	}
	ui.SetTheme(cfg.Theme)
	if f.noColor {
		ui.SetColorForcing(false, true)
	}

	b := logging.New().Level(cfg.LogLevel).Debug(f.verbose)
	switch {
	case cfg.LogFile != "":
		b = b.FromPath(cfg.LogFile)
	case cmd.Name() != "tui" && cmd != cmd.Root():
		// the interactive view owns the terminal, so it only logs to a file
		b = b.FromWriter(zerolog.ConsoleWriter{Out: s.errOut, NoColor: f.noColor})
	}
	logger, err := b.Make()
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}

	s.cfg = cfg
	s.configPath = f.configPath
	s.log = logger
	s.client = api.New(cfg.APIURL, cfg.Timeout, logger.Logger)
	switch ti, err := config.GetToken(f.configPath); {
	case err != nil:
		logger.Warn().Err(err).Msg("ignoring credentials")
	case ti != nil && ti.Expired(time.Now()):
		logger.Warn().Msg("stored token expired; run `notes auth login` again")
	case ti != nil:
		s.client.SetToken(ti.Token)
	}
	s.ctrl = app.NewController(s.client, cfg.APIURL, logger.Logger)
	return nil
}
