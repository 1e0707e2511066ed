package demo

import (
	"context"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/go-drift/droid/pkg/activity"
	"github.com/go-drift/droid/pkg/app"
	"github.com/go-drift/droid/pkg/extras"
	"github.com/go-drift/droid/pkg/network"
	"github.com/go-drift/droid/pkg/storage"
	"github.com/go-drift/droid/pkg/view"
)

const settingsFile = "settings.json"

type settingsState struct {
	Username string `json:"username"`
	Dark     bool   `json:"dark"`
}

// SettingsActivity edits the user name and theme, and can probe
// connectivity. It receives the counter value as the "count" extra.
type SettingsActivity struct {
	activity.Base

	app   *app.App
	files *storage.FileManager
	net   *network.Manager
	state settingsState

	username *view.EditText
	theme    *view.Button
	status   *view.TextView
}

func (s *SettingsActivity) OnStart() {
	s.load()

	layout := view.NewLinearLayout("settings_layout", view.Vertical)
	layout.SetPadding(20, 20, 20, 20)

	title := view.NewTextView("settings_title", "Settings", view.WithSize(300, 50))
	title.SetTextSize(20)
	count := view.NewTextView("count_text", "Counter value: "+strconv.FormatInt(s.Extras().Int("count", 0), 10))

	s.username = view.NewEditText("username_input", "User name", view.WithSize(300, 50))
	s.username.SetText(s.state.Username)

	s.theme = view.NewButton("theme_btn", "", view.ClickFunc(func(view.View) { s.toggleTheme() }))
	s.status = view.NewTextView("status_text", "")

	layout.AddView(title)
	layout.AddView(count)
	layout.AddView(s.username)
	layout.AddView(s.theme)
	if s.net != nil {
		layout.AddView(view.NewButton("connect_btn", "Check connection", view.ClickFunc(func(view.View) { s.checkConnection() })))
	}
	layout.AddView(s.status)
	layout.AddView(view.NewButton("back_btn", "Back", view.ClickFunc(func(view.View) { s.back() })))

	s.AddView("settings_layout", layout)
	s.refreshTheme()
}

func (s *SettingsActivity) OnPause() {
	s.state.Username = s.username.Text()
}

func (s *SettingsActivity) OnStop() {
	if s.files == nil {
		return
	}
	if err := s.files.SaveJSON(settingsFile, s.state, stateDir); err != nil {
		s.Logger().Error("save settings failed", zap.Error(err))
	}
}

// Dark reports whether the dark theme is selected.
func (s *SettingsActivity) Dark() bool { return s.state.Dark }

func (s *SettingsActivity) toggleTheme() {
	s.state.Dark = !s.state.Dark
	s.refreshTheme()
}

func (s *SettingsActivity) refreshTheme() {
	if s.state.Dark {
		s.theme.SetText("Dark mode: on")
		_ = s.theme.SetBackgroundColor("#212121")
	} else {
		s.theme.SetText("Dark mode: off")
		_ = s.theme.SetBackgroundColor("#2196F3")
	}
}

func (s *SettingsActivity) checkConnection() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if s.net.IsConnected(ctx) {
		s.status.SetText("Connection: online")
		_ = s.status.SetTextColor("#4CAF50")
	} else {
		s.status.SetText("Connection: offline")
		_ = s.status.SetTextColor("#F44336")
	}
}

func (s *SettingsActivity) back() {
	x := extras.New()
	x.PutInt("count", s.Extras().Int("count", 0))
	if err := s.app.StartActivity(Main, x); err != nil {
		s.Logger().Error("return to counter failed", zap.Error(err))
	}
}

func (s *SettingsActivity) load() {
	if s.files == nil || !s.files.Exists(settingsFile, stateDir) {
		return
	}
	if err := s.files.LoadJSON(settingsFile, &s.state, stateDir); err != nil {
		s.Logger().Warn("discarding saved settings", zap.Error(err))
		s.state = settingsState{}
	}
}
