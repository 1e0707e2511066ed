package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/go-drift/droid/cmd/droid/internal/demo"
	"github.com/go-drift/droid/pkg/app"
	"github.com/go-drift/droid/pkg/config"
	"github.com/go-drift/droid/pkg/errors"
	"github.com/go-drift/droid/pkg/logging"
	"github.com/go-drift/droid/pkg/network"
	"github.com/go-drift/droid/pkg/storage"
)

// options are the flags shared by the app-running commands.
type options struct {
	dir     string
	start   string
	backend string
	out     string
	width   int
	height  int
	json    bool

	// interactive sends logs to a file when the terminal backend is selected.
	interactive bool
}

func parseOptions(args []string) (options, error) {
	var opts options
	value := func(i *int, name string) (string, error) {
		if *i+1 >= len(args) {
			return "", fmt.Errorf("%s requires a value", name)
		}
		*i++
		return args[*i], nil
	}
	for i := 0; i < len(args); i++ {
		arg := args[i]
		name, inline, hasInline := strings.Cut(arg, "=")
		get := func() (string, error) {
			if hasInline {
				return inline, nil
			}
			return value(&i, name)
		}
		var err error
		switch name {
		case "--dir":
			opts.dir, err = get()
		case "--start":
			opts.start, err = get()
		case "--backend":
			opts.backend, err = get()
		case "-o", "--out":
			opts.out, err = get()
		case "--width", "--height":
			var s string
			if s, err = get(); err == nil {
				var n int
				if n, err = strconv.Atoi(s); err == nil && n <= 0 {
					err = fmt.Errorf("%s must be positive", name)
				}
				if name == "--width" {
					opts.width = n
				} else {
					opts.height = n
				}
			}
		case "--json":
			opts.json = true
		default:
			return opts, fmt.Errorf("unknown flag %q", arg)
		}
		if err != nil {
			return opts, err
		}
	}
	return opts, nil
}

// session is a configured demo app with its start activity running.
type session struct {
	cfg    *config.Resolved
	logger *zap.Logger
	app    *app.App
}

func openSession(opts options) (*session, error) {
	dir := opts.dir
	if dir == "" {
		root, err := config.FindProjectRoot()
		if err != nil {
			if root, err = os.Getwd(); err != nil {
				return nil, err
			}
		}
		dir = root
	}

	cfg, err := config.Resolve(dir)
	if err != nil {
		return nil, err
	}
	if opts.backend != "" {
		cfg.Backend = opts.backend
	}
	if opts.start != "" {
		cfg.StartActivity = opts.start
	}

	logCfg := cfg.Logging()
	if opts.interactive && cfg.Backend == config.BackendTerminal {
		logCfg.OutputPaths = []string{filepath.Join(os.TempDir(), "droid.log")}
	}
	logger, err := logging.New(logCfg)
	if err != nil {
		return nil, errors.Wrap("cmd.openSession", errors.KindConfig, err)
	}
	handler := errors.NewLogHandler(logger)
	handler.Verbose = cfg.LogDev
	errors.SetHandler(handler)

	files, err := storage.NewFileManager(cfg.AppName, storage.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	a := demo.NewApp(cfg.AppName, cfg.PackageID, demo.Deps{
		Logger: logger,
		Files:  files,
		Net:    network.NewManager(cfg.AppName, network.WithLogger(logger)),
	})
	if err := a.StartActivity(cfg.StartActivity, cfg.StartExtras); err != nil {
		return nil, err
	}
	return &session{cfg: cfg, logger: logger, app: a}, nil
}

// close finishes the active activity so its state is saved.
func (s *session) close() error {
	err := s.app.Finish()
	_ = s.logger.Sync()
	return err
}
