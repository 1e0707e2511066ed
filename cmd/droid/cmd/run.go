package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-drift/droid/pkg/app"
	"github.com/go-drift/droid/pkg/backend/console"
	"github.com/go-drift/droid/pkg/backend/snapshot"
	"github.com/go-drift/droid/pkg/backend/terminal"
	"github.com/go-drift/droid/pkg/config"
)

func init() {
	RegisterCommand(&Command{
		Name:  "run",
		Short: "Run the sample app",
		Long: `Start the sample app and hand it to a backend.

Backends:
  console    Print the active screen once (default)
  terminal   Interactive: tab moves focus, enter clicks, ctrl+c quits
  snapshot   Save the active screen as PNG (see --out)

Flags:
  --backend NAME   Backend to use (default: droid.yaml, DROID_BACKEND, console)
  --start NAME     Activity to start (default: droid.yaml, DROID_START, main)
  --dir DIR        Project directory holding droid.yaml (default: module root)
  -o, --out FILE   PNG path for the snapshot backend (default: <activity>.png)

In terminal mode logs go to a file in the temp directory.`,
		Usage: "droid run [--backend NAME] [--start NAME] [--dir DIR] [-o FILE]",
		Run:   runRun,
	})
}

func runRun(args []string) error {
	opts, err := parseOptions(args)
	if err != nil {
		return err
	}
	opts.interactive = true

	s, err := openSession(opts)
	if err != nil {
		return err
	}

	backend, err := selectBackend(s, opts)
	if err != nil {
		_ = s.close()
		return err
	}
	runErr := s.app.Run(backend)
	if err := s.close(); err != nil && runErr == nil {
		runErr = err
	}
	return runErr
}

func selectBackend(s *session, opts options) (app.Backend, error) {
	switch s.cfg.Backend {
	case config.BackendConsole:
		return console.Backend{Out: stdout}, nil
	case config.BackendTerminal:
		return terminal.Backend{Options: []tea.ProgramOption{tea.WithAltScreen()}}, nil
	case config.BackendSnapshot:
		out := opts.out
		if out == "" {
			out = s.app.ActiveName() + ".png"
		}
		return app.BackendFunc(func(a *app.App) error {
			if err := (snapshot.Backend{Path: out, Width: opts.width, Height: opts.height}).Run(a); err != nil {
				return err
			}
			fmt.Fprintf(stdout, "Saved %s\n", out)
			return nil
		}), nil
	default:
		return nil, fmt.Errorf("unknown backend %q (want %s, %s or %s)",
			s.cfg.Backend, config.BackendConsole, config.BackendTerminal, config.BackendSnapshot)
	}
}
