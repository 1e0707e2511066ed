// Package demo is the sample application shipped with the droid CLI: a
// counter screen and a settings screen.
package demo

import (
	"go.uber.org/zap"

	"github.com/go-drift/droid/pkg/activity"
	"github.com/go-drift/droid/pkg/app"
	"github.com/go-drift/droid/pkg/network"
	"github.com/go-drift/droid/pkg/storage"
)

// Activity names.
const (
	Main     = "main"
	Settings = "settings"
)

// Deps are the optional services used by the demo screens. A nil Files
// disables persistence; a nil Net hides the connectivity check.
type Deps struct {
	Logger *zap.Logger
	Files  *storage.FileManager
	Net    *network.Manager
}

// NewApp returns an App with the demo activities registered.
func NewApp(name, packageID string, deps Deps) *app.App {
	a := app.New(name, packageID, app.WithLogger(deps.Logger))
	a.RegisterActivity(Main, func() activity.Activity {
		return &CounterActivity{app: a, files: deps.Files}
	})
	a.RegisterActivity(Settings, func() activity.Activity {
		return &SettingsActivity{app: a, files: deps.Files, net: deps.Net}
	})
	return a
}
