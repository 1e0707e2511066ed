package cmd

import (
	"fmt"

	"github.com/go-drift/droid/cmd/droid/internal/demo"
	"github.com/go-drift/droid/pkg/app"
)

func init() {
	RegisterCommand(&Command{
		Name:  "activities",
		Short: "List the activities of the sample app",
		Long:  `List the registered activity names of the sample app.`,
		Usage: "droid activities",
		Run:   runActivities,
	})
}

func runActivities(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("activities takes no arguments")
	}
	a := demo.NewApp("droid", "com.example.droid", demo.Deps{})
	printActivities(a)
	return nil
}

func printActivities(a *app.App) {
	for _, name := range a.Activities() {
		fmt.Fprintln(stdout, name)
	}
}
