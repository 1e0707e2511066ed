// Package snapshot renders the active activity of an App to a PNG image.
//
// Views are placed by a simple flow: linear layouts stack children along
// their orientation, relative layouts place children at their own (x, y)
// offsets, and any view with an explicit size keeps it. Text is drawn in Go
// Mono regardless of the requested font family.
package snapshot

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/go-drift/droid/pkg/activity"
	"github.com/go-drift/droid/pkg/app"
	"github.com/go-drift/droid/pkg/errors"
	"github.com/go-drift/droid/pkg/view"
)

// Default canvas size.
const (
	DefaultWidth  = 360
	DefaultHeight = 640
)

const (
	spacing       = 8.0
	buttonPadX    = 12.0
	buttonPadY    = 6.0
	inputMinWidth = 160.0
)

var monoFont *truetype.Font

func init() {
	f, err := truetype.Parse(gomono.TTF)
	if err != nil {
		panic(fmt.Sprintf("snapshot: parse gomono: %v", err))
	}
	monoFont = f
}

// Render draws the active activity of a onto a width×height canvas.
func Render(a *app.App, width, height int) (image.Image, error) {
	act := a.Active()
	if act == nil {
		return nil, errors.Wrap("snapshot.Render", errors.KindRender, fmt.Errorf("app %q has no active activity", a.Name()))
	}
	return RenderNodes(activity.BaseOf(act).Snapshot(), width, height)
}

// RenderNodes draws nodes top to bottom onto a width×height canvas.
func RenderNodes(nodes []view.Node, width, height int) (image.Image, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrap("snapshot.Render", errors.KindRender, fmt.Errorf("invalid canvas size %dx%d", width, height))
	}
	r := newRenderer(width, height)
	y := spacing
	for _, n := range nodes {
		_, h := r.draw(n, spacing, y)
		if h > 0 {
			y += h + spacing
		}
	}
	return r.dc.Image(), nil
}

type renderer struct {
	dc    *gg.Context
	faces map[int]font.Face
}

func newRenderer(width, height int) *renderer {
	dc := gg.NewContext(width, height)
	dc.SetColor(color.White)
	dc.Clear()
	return &renderer{dc: dc, faces: make(map[int]font.Face)}
}

func (r *renderer) face(size int) font.Face {
	if size <= 0 {
		size = 14
	}
	if f, ok := r.faces[size]; ok {
		return f
	}
	f := truetype.NewFace(monoFont, &truetype.Options{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	r.faces[size] = f
	return f
}

// draw paints n with its top-left corner at (x, y) and returns the space it
// occupies. Invisible nodes occupy nothing.
func (r *renderer) draw(n view.Node, x, y float64) (w, h float64) {
	if !n.Visible {
		return 0, 0
	}
	w, h = r.measure(n)
	switch n.Kind {
	case view.KindText:
		r.fill(n.Background, x, y, w, h)
		r.text(n.Text, n.TextColor, n.TextSize, x, y, h)
	case view.KindButton:
		r.dc.SetColor(rgba(n.Background, n.Enabled))
		r.dc.DrawRoundedRectangle(x, y, w, h, 4)
		r.dc.Fill()
		r.text(n.Text, n.TextColor, n.TextSize, x+buttonPadX, y, h)
	case view.KindInput:
		r.fill(view.ColorWhite, x, y, w, h)
		r.dc.SetColor(rgba(view.ColorGray, true))
		r.dc.SetLineWidth(1)
		r.dc.DrawRectangle(x+0.5, y+0.5, w-1, h-1)
		r.dc.Stroke()
		if n.Text != "" {
			r.text(n.Text, n.TextColor, n.TextSize, x+buttonPadX/2, y, h)
		} else {
			r.text(n.Hint, n.HintColor, n.TextSize, x+buttonPadX/2, y, h)
		}
	case view.KindLayout:
		r.fill(n.Background, x, y, w, h)
		r.layout(n, x, y)
	}
	return w, h
}

func (r *renderer) layout(n view.Node, x, y float64) {
	p := n.Padding
	cx, cy := x+float64(p.Left), y+float64(p.Top)
	for _, c := range n.Children {
		if n.Arrangement == view.ArrangeRelative {
			r.draw(c, cx+float64(c.X), cy+float64(c.Y))
			continue
		}
		cw, ch := r.draw(c, cx, cy)
		if cw == 0 && ch == 0 {
			continue
		}
		if n.Orientation == view.Horizontal {
			cx += cw + spacing
		} else {
			cy += ch + spacing
		}
	}
}

// measure returns the box of n: its explicit size when set, otherwise the
// size of its content.
func (r *renderer) measure(n view.Node) (w, h float64) {
	if n.Width > 0 && n.Height > 0 {
		return float64(n.Width), float64(n.Height)
	}
	switch n.Kind {
	case view.KindText:
		w, h = r.textSize(n.Text, n.TextSize)
	case view.KindButton:
		w, h = r.textSize(n.Text, n.TextSize)
		w, h = w+2*buttonPadX, h+2*buttonPadY
	case view.KindInput:
		text := n.Text
		if text == "" {
			text = n.Hint
		}
		w, h = r.textSize(text, n.TextSize)
		w, h = max(w+buttonPadX, inputMinWidth), h+2*buttonPadY
	case view.KindLayout:
		w, h = r.measureLayout(n)
	}
	if n.Width > 0 {
		w = float64(n.Width)
	}
	if n.Height > 0 {
		h = float64(n.Height)
	}
	return w, h
}

func (r *renderer) measureLayout(n view.Node) (w, h float64) {
	visible := 0
	for _, c := range n.Children {
		if !c.Visible {
			continue
		}
		cw, ch := r.measure(c)
		switch {
		case n.Arrangement == view.ArrangeRelative:
			w = max(w, float64(c.X)+cw)
			h = max(h, float64(c.Y)+ch)
		case n.Orientation == view.Horizontal:
			w += cw
			h = max(h, ch)
		default:
			w = max(w, cw)
			h += ch
		}
		visible++
	}
	if n.Arrangement == view.ArrangeLinear && visible > 1 {
		gap := spacing * float64(visible-1)
		if n.Orientation == view.Horizontal {
			w += gap
		} else {
			h += gap
		}
	}
	p := n.Padding
	return w + float64(p.Left+p.Right), h + float64(p.Top+p.Bottom)
}

func (r *renderer) textSize(s string, size int) (w, h float64) {
	r.dc.SetFontFace(r.face(size))
	w, h = r.dc.MeasureString(s)
	if h == 0 {
		h = r.dc.FontHeight()
	}
	return w, h
}

// text draws s vertically centred in a box of height boxH starting at y.
func (r *renderer) text(s string, c view.Color, size int, x, y, boxH float64) {
	if s == "" {
		return
	}
	r.dc.SetFontFace(r.face(size))
	r.dc.SetColor(rgba(c, true))
	r.dc.DrawStringAnchored(s, x, y+boxH/2, 0, 0.35)
}

func (r *renderer) fill(c view.Color, x, y, w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	r.dc.SetColor(rgba(c, true))
	r.dc.DrawRectangle(x, y, w, h)
	r.dc.Fill()
}

func rgba(c view.Color, enabled bool) color.Color {
	a := uint8(0xFF)
	if !enabled {
		a = 0x80
	}
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: a}
}

// Backend writes a PNG of the active activity and returns.
type Backend struct {
	Path   string
	Width  int
	Height int
}

// Run renders a and saves the image to b.Path.
func (b Backend) Run(a *app.App) error {
	w, h := b.Width, b.Height
	if w == 0 {
		w = DefaultWidth
	}
	if h == 0 {
		h = DefaultHeight
	}
	img, err := Render(a, w, h)
	if err != nil {
		return err
	}
	if err := gg.SavePNG(b.Path, img); err != nil {
		return errors.Wrap("snapshot.Run", errors.KindRender, err)
	}
	return nil
}
