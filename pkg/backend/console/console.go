// Package console renders the active activity of an App as styled text.
//
// Each top-level view is drawn in insertion order. Layouts stack their
// children vertically or horizontally according to their orientation;
// relative layouts stack vertically, since a text grid has no room for
// free placement. Invisible views and their subtrees are skipped.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/droid/pkg/activity"
	"github.com/go-drift/droid/pkg/app"
	"github.com/go-drift/droid/pkg/errors"
	"github.com/go-drift/droid/pkg/view"
)

// PixelsPerCell converts view padding into terminal cells.
const PixelsPerCell = 8

// Renderer draws view snapshots. The zero value is ready to use.
type Renderer struct {
	// Focus is the 1-based position, in render order, of the focused node
	// among focusable ones. Zero draws no focus marker.
	Focus int
	// Cursor draws a caret after the text of a focused EditText.
	Cursor bool
}

// Render draws the active activity of a with a header line.
func Render(a *app.App) string {
	return Renderer{}.Render(a)
}

// Render draws the active activity of a with a header line.
func (r Renderer) Render(a *app.App) string {
	act := a.Active()
	if act == nil {
		return headerStyle.Render(a.Name()) + "\n" + faintStyle.Render("(no active activity)")
	}
	title := fmt.Sprintf("%s · %s [%s]", a.Name(), act.Name(), act.State())
	return r.RenderNodes(title, activity.BaseOf(act).Snapshot())
}

// RenderNodes draws nodes below title.
func (r Renderer) RenderNodes(title string, nodes []view.Node) string {
	blocks := []string{headerStyle.Render(title)}
	p := &pass{Renderer: r}
	for _, n := range nodes {
		if s, ok := p.node(n); ok {
			blocks = append(blocks, s)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2196F3"))
	faintStyle  = lipgloss.NewStyle().Faint(true)
	focusStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
)

// pass renders one tree, counting focusable nodes as it goes.
type pass struct {
	Renderer
	seen int
}

func (r *pass) node(n view.Node) (string, bool) {
	if !n.Visible {
		return "", false
	}
	focused := false
	if n.Focusable() {
		r.seen++
		focused = r.Focus == r.seen
	}
	var s string
	switch n.Kind {
	case view.KindText:
		s = lipgloss.NewStyle().Foreground(color(n.TextColor)).Render(n.Text)
	case view.KindButton:
		st := lipgloss.NewStyle().
			Foreground(color(n.TextColor)).
			Background(color(n.Background)).
			Padding(0, 1)
		if !n.Enabled {
			st = st.Faint(true)
		}
		s = st.Render(n.Text)
	case view.KindInput:
		s = r.input(n, focused)
	case view.KindLayout:
		s = r.layout(n)
	}
	if focused {
		return "> " + focusStyle.Render(s), true
	}
	if n.IsLayout() {
		return s, true
	}
	return "  " + s, true
}

func (r *pass) input(n view.Node, focused bool) string {
	text := n.Text
	st := lipgloss.NewStyle().Foreground(color(n.TextColor))
	if text == "" {
		text = n.Hint
		st = lipgloss.NewStyle().Foreground(color(n.HintColor)).Italic(true)
	}
	caret := ""
	if r.Cursor && focused {
		caret = "▏"
	}
	return "[" + st.Render(text) + caret + "]"
}

func (r *pass) layout(n view.Node) string {
	var parts []string
	for _, child := range n.Children {
		if s, ok := r.node(child); ok {
			parts = append(parts, s)
		}
	}
	var body string
	if n.Arrangement == view.ArrangeLinear && n.Orientation == view.Horizontal {
		body = lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, parts...)
	}
	p := n.Padding
	return lipgloss.NewStyle().
		Padding(cells(p.Top), cells(p.Right), cells(p.Bottom), cells(p.Left)).
		Render(body)
}

func cells(px int) int {
	if px <= 0 {
		return 0
	}
	return (px + PixelsPerCell - 1) / PixelsPerCell
}

func color(c view.Color) lipgloss.Color {
	return lipgloss.Color(c.Hex())
}

// Backend prints the active activity once and returns.
type Backend struct {
	Out io.Writer
}

// Run writes Render(a) followed by a newline to b.Out.
func (b Backend) Run(a *app.App) error {
	if a.Active() == nil {
		return errors.Wrap("console.Run", errors.KindRender, fmt.Errorf("app %q has no active activity", a.Name()))
	}
	out := Render(a)
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	if _, err := io.WriteString(b.Out, out); err != nil {
		return errors.Wrap("console.Run", errors.KindRender, err)
	}
	return nil
}
