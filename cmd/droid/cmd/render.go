package cmd

import (
	"fmt"

	"github.com/bytedance/sonic"

	"github.com/go-drift/droid/pkg/activity"
	"github.com/go-drift/droid/pkg/backend/console"
)

func init() {
	RegisterCommand(&Command{
		Name:  "render",
		Short: "Print the view tree of an activity",
		Long: `Start an activity and print its view tree.

Flags:
  --start NAME   Activity to render (default: main)
  --json         Print the view snapshot as JSON instead of styled text
  --dir DIR      Project directory holding droid.yaml`,
		Usage: "droid render [--start NAME] [--json] [--dir DIR]",
		Run:   runRender,
	})
}

func runRender(args []string) error {
	opts, err := parseOptions(args)
	if err != nil {
		return err
	}
	s, err := openSession(opts)
	if err != nil {
		return err
	}
	defer s.close()

	if !opts.json {
		fmt.Fprintln(stdout, console.Render(s.app))
		return nil
	}
	nodes := activity.BaseOf(s.app.Active()).Snapshot()
	data, err := sonic.MarshalIndent(nodes, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, string(data))
	return nil
}
