// Package terminal runs an App interactively in a terminal.
//
// Keys:
//
//	tab, down, right     focus next clickable or editable view
//	shift+tab, up, left  focus previous
//	enter                click the focused view
//	any rune, backspace  edit the focused EditText
//	ctrl+v               paste the clipboard into the focused EditText
//	ctrl+c, esc, q       quit (q types a letter while an EditText is focused)
//
// All core access happens inside the bubbletea Update loop, so handlers run
// on one goroutine.
package terminal

import (
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/droid/pkg/activity"
	"github.com/go-drift/droid/pkg/app"
	"github.com/go-drift/droid/pkg/backend/console"
	"github.com/go-drift/droid/pkg/errors"
	"github.com/go-drift/droid/pkg/view"
)

// Backend runs a bubbletea program over an App.
type Backend struct {
	// Options are passed to tea.NewProgram, e.g. tea.WithAltScreen().
	Options []tea.ProgramOption
	// Paste reads clipboard text. Nil uses the system clipboard.
	Paste func() (string, error)
}

// Run blocks until the user quits.
func (b Backend) Run(a *app.App) error {
	p := tea.NewProgram(NewModel(a, b.Paste), b.Options...)
	if _, err := p.Run(); err != nil {
		return errors.Wrap("terminal.Run", errors.KindRender, err)
	}
	return nil
}

// Model is the bubbletea model driving an App.
type Model struct {
	app    *app.App
	paste  func() (string, error)
	focus  int
	status string
	width  int
}

// NewModel returns a model focused on the first focusable view.
func NewModel(a *app.App, paste func() (string, error)) Model {
	if paste == nil {
		paste = clipboard.ReadAll
	}
	return Model{app: a, paste: paste}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Focused returns the id of the focused view, or "".
func (m Model) Focused() string {
	if v := m.focusedView(); v != nil {
		return v.ID()
	}
	return ""
}

// Status returns the last status line.
func (m Model) Status() string { return m.status }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		editing := m.focusedEditable() != nil
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "q":
			if !editing {
				return m, tea.Quit
			}
		case "tab", "down", "right":
			m.move(1)
			return m, nil
		case "shift+tab", "up", "left":
			m.move(-1)
			return m, nil
		case "enter":
			m.click()
			return m, nil
		case "ctrl+v":
			m.pasteClipboard()
			return m, nil
		}

		if editing {
			m.edit(msg)
		}
		return m, nil
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	r := console.Renderer{Cursor: m.focusedEditable() != nil}
	if n := len(m.focusables()); n > 0 {
		r.Focus = m.focus%n + 1
	}
	body := r.Render(m.app)
	help := "tab: focus · enter: click · ctrl+v: paste · ctrl+c: quit"
	lines := []string{body, ""}
	if m.status != "" {
		lines = append(lines, statusStyle.Render(m.status))
	}
	lines = append(lines, helpStyle.Render(help))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF9800"))
	helpStyle   = lipgloss.NewStyle().Faint(true)
)

func (m *Model) move(delta int) {
	n := len(m.focusables())
	if n == 0 {
		m.focus = 0
		return
	}
	m.focus = ((m.focus+delta)%n + n) % n
}

func (m *Model) click() {
	v := m.focusedView()
	if v == nil {
		return
	}
	before := m.app.Active()
	clicked := func() (ok bool) {
		defer errors.RecoverWithCallback("terminal.click", func(r any) {
			m.status = "click handler panicked: " + panicText(r)
		})
		return view.Click(v)
	}()
	if !clicked {
		return
	}
	if m.app.Active() != before {
		m.focus = 0
	}
	if n := len(m.focusables()); n > 0 {
		m.focus %= n
	}
}

func (m *Model) edit(msg tea.KeyMsg) {
	ed := m.focusedEditable()
	switch msg.Type {
	case tea.KeyBackspace:
		r := []rune(ed.Text())
		if len(r) > 0 {
			ed.SetText(string(r[:len(r)-1]))
		}
	case tea.KeySpace:
		ed.SetText(ed.Text() + " ")
	case tea.KeyRunes:
		ed.SetText(ed.Text() + string(msg.Runes))
	}
}

func (m *Model) pasteClipboard() {
	ed := m.focusedEditable()
	if ed == nil {
		return
	}
	text, err := m.paste()
	if err != nil {
		errors.Report(&errors.DroidError{Op: "terminal.paste", Kind: errors.KindRender, Err: err})
		m.status = "paste failed: " + err.Error()
		return
	}
	text = strings.TrimRight(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	ed.SetText(ed.Text() + strings.ReplaceAll(text, "\n", " "))
}

// focusedView resolves focus by position, so views sharing an id stay
// distinct.
func (m Model) focusedView() view.View {
	views := m.focusables()
	if len(views) == 0 {
		return nil
	}
	return views[m.focus%len(views)]
}

func (m Model) focusedEditable() view.Editable {
	ed, _ := m.focusedView().(view.Editable)
	return ed
}

// focusables lists the focusable views of the active activity in render
// order, skipping hidden subtrees. The console renderer counts nodes the
// same way.
func (m Model) focusables() []view.View {
	act := m.app.Active()
	if act == nil {
		return nil
	}
	var out []view.View
	var visit func(v view.View)
	visit = func(v view.View) {
		if v == nil || !v.(view.Styleable).Visible() {
			return
		}
		if view.Focusable(v) {
			out = append(out, v)
		}
		if l, ok := v.(*view.Layout); ok {
			for _, c := range l.Children() {
				visit(c)
			}
		}
	}
	for _, root := range activity.BaseOf(act).Views() {
		visit(root)
	}
	return out
}

func panicText(r any) string {
	if err, ok := r.(error); ok {
		return err.Error()
	}
	if s, ok := r.(string); ok {
		return s
	}
	return "unknown panic"
}
