package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/droid/pkg/activity"
	"github.com/go-drift/droid/pkg/app"
	"github.com/go-drift/droid/pkg/errors"
	"github.com/go-drift/droid/pkg/view"
)

type counterScreen struct {
	activity.Base
}

func (s *counterScreen) OnStart() {
	root := view.NewLinearLayout("root", view.Vertical)
	root.SetPadding(16, 8, 16, 8)
	root.AddView(view.NewTextView("title", "Count: 0"))
	row := view.NewLinearLayout("row", view.Horizontal)
	row.AddView(view.NewButton("dec", "-", nil))
	row.AddView(view.NewButton("inc", "+", nil))
	root.AddView(row)
	root.AddView(view.NewEditText("name", "Your name"))
	hidden := view.NewTextView("secret", "hidden text")
	hidden.SetVisibility(false)
	root.AddView(hidden)
	s.AddView("root", root)
}

func startedApp(t *testing.T) *app.App {
	t.Helper()
	a := app.New("Counter", "com.example.counter")
	a.RegisterActivity("main", func() activity.Activity { return &counterScreen{} })
	require.NoError(t, a.StartActivity("main", nil))
	return a
}

func TestRenderShowsVisibleViews(t *testing.T) {
	out := Render(startedApp(t))

	assert.Contains(t, out, "Counter · main [resumed]")
	assert.Contains(t, out, "Count: 0")
	assert.Contains(t, out, "-")
	assert.Contains(t, out, "+")
	assert.Contains(t, out, "Your name")
	assert.NotContains(t, out, "hidden text")
}

func TestRenderOrdersChildren(t *testing.T) {
	out := Render(startedApp(t))
	assert.Less(t, strings.Index(out, "Count: 0"), strings.Index(out, "Your name"))
}

func TestRenderFocusMarker(t *testing.T) {
	out := Renderer{Focus: 1, Cursor: true}.Render(startedApp(t))
	assert.Contains(t, out, "> ")
	assert.Contains(t, out, "▏")

	out = Renderer{Cursor: true}.Render(startedApp(t))
	assert.NotContains(t, out, "> ")
	assert.NotContains(t, out, "▏")
}

func TestRenderFocusByPositionWithDuplicateIDs(t *testing.T) {
	first := view.NewEditText("dup", "")
	first.SetText("first")
	second := view.NewEditText("dup", "")
	second.SetText("second")

	out := Renderer{Focus: 2, Cursor: true}.RenderNodes("t", []view.Node{
		view.Snapshot(first),
		view.Snapshot(second),
	})
	assert.Contains(t, out, "  [first]")
	assert.Contains(t, out, "> [second▏]")
}

func TestRenderWithoutActivity(t *testing.T) {
	a := app.New("Empty", "com.example.empty")
	assert.Contains(t, Render(a), "no active activity")
}

func TestBackendWritesOnce(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, startedApp(t).Run(Backend{Out: &buf}))
	assert.Contains(t, buf.String(), "Count: 0")
	assert.True(t, strings.HasSuffix(buf.String(), "\n"))

	err := app.New("Empty", "com.example.empty").Run(Backend{Out: &buf})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.KindRender))
}

func TestCells(t *testing.T) {
	assert.Equal(t, 0, cells(0))
	assert.Equal(t, 1, cells(1))
	assert.Equal(t, 1, cells(8))
	assert.Equal(t, 2, cells(9))
}
