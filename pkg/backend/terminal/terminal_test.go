package terminal

import (
	stderrors "errors"
	"strconv"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/droid/pkg/activity"
	"github.com/go-drift/droid/pkg/app"
	"github.com/go-drift/droid/pkg/errors"
	"github.com/go-drift/droid/pkg/view"
)

type counterScreen struct {
	activity.Base
	count int
}

func (s *counterScreen) OnStart() {
	title := view.NewTextView("title", "Count: 0")
	root := view.NewLinearLayout("root", view.Vertical)
	root.AddView(title)
	root.AddView(view.NewButton("inc", "+", view.ClickFunc(func(view.View) {
		s.count++
		title.SetText("Count: " + strconv.Itoa(s.count))
	})))
	off := view.NewButton("off", "disabled", view.ClickFunc(func(view.View) {}))
	off.SetEnabled(false)
	root.AddView(off)
	root.AddView(view.NewButton("boom", "panic", view.ClickFunc(func(view.View) {
		panic("handler exploded")
	})))
	root.AddView(view.NewEditText("name", "Your name"))
	s.AddView("root", root)
}

func newModel(t *testing.T, paste func() (string, error)) (Model, *app.App) {
	t.Helper()
	a := app.New("Counter", "com.example.counter")
	a.RegisterActivity("main", func() activity.Activity { return &counterScreen{} })
	require.NoError(t, a.StartActivity("main", nil))
	return NewModel(a, paste), a
}

func send(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func key(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func TestFocusSkipsDisabledAndStaticViews(t *testing.T) {
	m, _ := newModel(t, nil)
	assert.Equal(t, "inc", m.Focused())

	m = send(m, key(tea.KeyTab))
	assert.Equal(t, "boom", m.Focused())
	m = send(m, key(tea.KeyTab))
	assert.Equal(t, "name", m.Focused())
	m = send(m, key(tea.KeyTab))
	assert.Equal(t, "inc", m.Focused(), "focus wraps")
	m = send(m, key(tea.KeyShiftTab))
	assert.Equal(t, "name", m.Focused())
}

type twinScreen struct {
	activity.Base
	clicks []string
	first  *view.EditText
	second *view.EditText
}

func (s *twinScreen) OnStart() {
	root := view.NewLinearLayout("root", view.Vertical)
	root.AddView(view.NewButton("twin", "one", view.ClickFunc(func(view.View) {
		s.clicks = append(s.clicks, "one")
	})))
	root.AddView(view.NewButton("twin", "two", view.ClickFunc(func(view.View) {
		s.clicks = append(s.clicks, "two")
	})))
	s.first = view.NewEditText("field", "first")
	s.second = view.NewEditText("field", "second")
	root.AddView(s.first)
	root.AddView(s.second)
	s.AddView("root", root)
}

func TestFocusTracksPositionNotID(t *testing.T) {
	screen := &twinScreen{}
	a := app.New("Twins", "com.example.twins")
	a.RegisterActivity("main", func() activity.Activity { return screen })
	require.NoError(t, a.StartActivity("main", nil))
	m := NewModel(a, nil)

	m = send(m, key(tea.KeyTab), key(tea.KeyEnter))
	assert.Equal(t, []string{"two"}, screen.clicks)

	m = send(m, key(tea.KeyTab), key(tea.KeyTab), runes("x"))
	assert.Empty(t, screen.first.Text())
	assert.Equal(t, "x", screen.second.Text())
	assert.Equal(t, "field", m.Focused())
}

func TestEnterClicksFocusedButton(t *testing.T) {
	m, a := newModel(t, nil)
	m = send(m, key(tea.KeyEnter), key(tea.KeyEnter))

	title := activity.BaseOf(a.Active()).FindViewByID("title").(*view.TextView)
	assert.Equal(t, "Count: 2", title.Text())
	assert.Contains(t, m.View(), "Count: 2")
}

func TestPanickingHandlerIsRecovered(t *testing.T) {
	var reported *errors.PanicError
	errors.SetHandler(panicHandler(func(p *errors.PanicError) { reported = p }))
	defer errors.SetHandler(nil)

	m, _ := newModel(t, nil)
	m = send(m, key(tea.KeyTab), key(tea.KeyEnter))

	require.NotNil(t, reported)
	assert.Equal(t, "terminal.click", reported.Op)
	assert.Contains(t, m.Status(), "handler exploded")
}

func TestTypingEditsFocusedInput(t *testing.T) {
	m, a := newModel(t, nil)
	m = send(m, key(tea.KeyTab), key(tea.KeyTab))
	require.Equal(t, "name", m.Focused())

	m = send(m, runes("adq"), key(tea.KeyBackspace), runes("a"), key(tea.KeySpace), runes("l"))
	input := activity.BaseOf(a.Active()).FindViewByID("name").(*view.EditText)
	assert.Equal(t, "ada l", input.Text())

	_, cmd := m.Update(runes("q"))
	assert.Nil(t, cmd, "q types while editing")
}

func TestPasteAppendsClipboardText(t *testing.T) {
	m, a := newModel(t, func() (string, error) { return "line one\nline two\n", nil })
	m = send(m, key(tea.KeyTab), key(tea.KeyTab), key(tea.KeyCtrlV))

	input := activity.BaseOf(a.Active()).FindViewByID("name").(*view.EditText)
	assert.Equal(t, "line one line two", input.Text())
}

func TestPasteFailureSetsStatus(t *testing.T) {
	errors.SetHandler(panicHandler(nil))
	defer errors.SetHandler(nil)

	m, _ := newModel(t, func() (string, error) { return "", stderrors.New("no clipboard") })
	m = send(m, key(tea.KeyTab), key(tea.KeyTab), key(tea.KeyCtrlV))
	assert.Contains(t, m.Status(), "no clipboard")
}

func TestQuitKeys(t *testing.T) {
	m, _ := newModel(t, nil)
	for _, msg := range []tea.KeyMsg{key(tea.KeyCtrlC), key(tea.KeyEsc), runes("q")} {
		_, cmd := m.Update(msg)
		require.NotNil(t, cmd, "key %q", msg.String())
		assert.Equal(t, tea.Quit(), cmd())
	}
}

type panicHandler func(*errors.PanicError)

func (h panicHandler) HandleError(*errors.DroidError) {}

func (h panicHandler) HandlePanic(p *errors.PanicError) {
	if h != nil {
		h(p)
	}
}
