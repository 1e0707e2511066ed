package cmd

import (
	"fmt"
	"runtime"
)

func init() {
	RegisterCommand(&Command{
		Name:  "version",
		Short: "Show version information",
		Long:  `Print the droid CLI version and build details.`,
		Usage: "droid version",
		Run: func(args []string) error {
			fmt.Fprintf(stdout, "droid version %s (built %s, %s %s/%s)\n",
				Version, BuildTime, runtime.Version(), runtime.GOOS, runtime.GOARCH)
			return nil
		},
	})
}
