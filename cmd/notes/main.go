package main

import (
	"errors"
	"io"
	"os"

	"github.com/idilsaglam/notes/internal/api"
	"github.com/idilsaglam/notes/internal/app"
	"github.com/idilsaglam/notes/internal/ui"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and maps the outcome to an exit code:
// 0 ok, 1 request failure, 2 usage or validation.
func run(args []string, out, errOut io.Writer) int {
	root, s := newRootCmd(out, errOut)
	defer s.close()
	root.SetArgs(args)
	err := root.Execute()
	if err == nil {
		return 0
	}
	if errors.Is(err, api.ErrUnreachable) && s.cfg.APIURL != "" {
		ui.Notice(errOut, "backend unavailable at "+s.cfg.APIURL+"; start the notes server and retry")
		return 1
	}
	ui.Fail(errOut, message(err))
	return exitCode(err)
}

func exitCode(err error) int {
	var ue usageError
	switch {
	case errors.As(err, &ue), errors.Is(err, app.ErrEmptyTitle), errors.Is(err, app.ErrEmptyLabelName):
		return 2
	}
	return 1
}

func message(err error) string {
	var ue usageError
	if errors.As(err, &ue) {
		return ue.Error()
	}
	return app.UserMessage(err)
}
