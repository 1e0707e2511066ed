package demo

import (
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/go-drift/droid/pkg/activity"
	"github.com/go-drift/droid/pkg/app"
	"github.com/go-drift/droid/pkg/extras"
	"github.com/go-drift/droid/pkg/storage"
	"github.com/go-drift/droid/pkg/view"
)

const (
	stateDir    = "state"
	counterFile = "counter.json"
)

type counterState struct {
	Count int64 `json:"count"`
}

// CounterActivity shows a counter with increment, decrement, reset and
// custom-step buttons. The count survives restarts when storage is set.
type CounterActivity struct {
	activity.Base

	app   *app.App
	files *storage.FileManager
	count int64

	counterText *view.TextView
	input       *view.EditText
}

// Count returns the current counter value.
func (c *CounterActivity) Count() int64 { return c.count }

func (c *CounterActivity) OnStart() {
	c.count = c.Extras().Int("count", c.load())

	layout := view.NewLinearLayout("main_layout", view.Vertical)
	layout.SetPadding(20, 20, 20, 20)

	title := view.NewTextView("title_text", "Droid Counter", view.WithSize(300, 50))
	_ = title.SetTextColor("#2196F3")
	title.SetTextSize(20)

	c.counterText = view.NewTextView("counter_text", "", view.WithSize(300, 40))
	c.counterText.SetTextSize(16)

	inc := c.button("increment_btn", "Increment (+)", "#4CAF50", func() { c.add(1) })
	dec := c.button("decrement_btn", "Decrement (-)", "#F44336", func() { c.add(-1) })
	reset := c.button("reset_btn", "Reset", "#FF9800", func() { c.set(0) })

	c.input = view.NewEditText("custom_input", "Enter custom increment value", view.WithSize(300, 50))
	custom := c.button("custom_btn", "Custom Increment", "#9C27B0", c.customIncrement)
	settings := c.button("settings_btn", "Settings", "#607D8B", c.openSettings)

	for _, v := range []view.View{title, c.counterText, inc, dec, reset, c.input, custom, settings} {
		layout.AddView(v)
	}
	c.AddView("main_layout", layout)
	c.refresh()
	c.Logger().Info("counter ready", zap.Int64("count", c.count))
}

func (c *CounterActivity) OnStop() {
	c.save()
}

func (c *CounterActivity) button(id, text, bg string, fn func()) *view.Button {
	b := view.NewButton(id, text, view.ClickFunc(func(view.View) { fn() }), view.WithSize(200, 50))
	_ = b.SetBackgroundColor(bg)
	return b
}

func (c *CounterActivity) add(n int64) { c.set(c.count + n) }

func (c *CounterActivity) set(n int64) {
	c.count = n
	c.refresh()
	c.Logger().Debug("counter changed", zap.Int64("count", n))
}

func (c *CounterActivity) customIncrement() {
	step, err := strconv.ParseInt(strings.TrimSpace(c.input.Text()), 10, 64)
	if err != nil {
		c.Logger().Warn("invalid custom increment", zap.String("input", c.input.Text()))
		c.input.SetText("")
		c.input.SetHint("Enter a whole number")
		return
	}
	c.input.SetText("")
	c.add(step)
}

func (c *CounterActivity) openSettings() {
	x := extras.New()
	x.PutInt("count", c.count)
	if err := c.app.StartActivity(Settings, x); err != nil {
		c.Logger().Error("open settings failed", zap.Error(err))
	}
}

func (c *CounterActivity) refresh() {
	c.counterText.SetText("Counter: " + strconv.FormatInt(c.count, 10))
	switch {
	case c.count > 0:
		_ = c.counterText.SetTextColor("#4CAF50")
	case c.count < 0:
		_ = c.counterText.SetTextColor("#F44336")
	default:
		_ = c.counterText.SetTextColor("#000000")
	}
}

func (c *CounterActivity) load() int64 {
	if c.files == nil || !c.files.Exists(counterFile, stateDir) {
		return 0
	}
	var st counterState
	if err := c.files.LoadJSON(counterFile, &st, stateDir); err != nil {
		c.Logger().Warn("discarding saved counter", zap.Error(err))
		return 0
	}
	return st.Count
}

func (c *CounterActivity) save() {
	if c.files == nil {
		return
	}
	if err := c.files.SaveJSON(counterFile, counterState{Count: c.count}, stateDir); err != nil {
		c.Logger().Error("save counter failed", zap.Error(err))
	}
}
