package cmd

func init() {
	RegisterCommand(&Command{
		Name:  "snapshot",
		Short: "Save an activity as PNG",
		Long: `Start an activity and save it as a PNG image.

Flags:
  -o, --out FILE   Output path (default: <activity>.png)
  --width N        Image width in pixels (default: 360)
  --height N       Image height in pixels (default: 640)
  --start NAME     Activity to render (default: main)
  --dir DIR        Project directory holding droid.yaml`,
		Usage: "droid snapshot [-o FILE] [--width N] [--height N] [--start NAME]",
		Run:   runSnapshot,
	})
}

func runSnapshot(args []string) error {
	return runRun(append([]string{"--backend", "snapshot"}, args...))
}
