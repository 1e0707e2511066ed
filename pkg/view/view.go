package view

// Kind is the closed set of view variants.
type Kind int

const (
	KindText Kind = iota
	KindButton
	KindInput
	KindLayout
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindButton:
		return "button"
	case KindInput:
		return "input"
	case KindLayout:
		return "layout"
	default:
		return "unknown"
	}
}

// View is implemented by *TextView, *Button, *EditText and *Layout only.
type View interface {
	// ID returns the view identifier. It is unique only within the
	// top-level scope that owns the view.
	ID() string
	// Kind returns the variant tag.
	Kind() Kind

	base() *Base
}

// Styleable views expose geometry and style setters.
type Styleable interface {
	View
	Position() (x, y int)
	SetPosition(x, y int)
	Size() (width, height int)
	SetSize(width, height int)
	Visible() bool
	SetVisibility(visible bool)
	Enabled() bool
	SetEnabled(enabled bool)
	BackgroundColor() Color
	SetBackgroundColor(hex string) error
}

// Clickable views hold at most one click handler.
type Clickable interface {
	View
	SetOnClickListener(h ClickHandler)
	OnClickListener() ClickHandler
}

// TextHolder views display styled text.
type TextHolder interface {
	View
	Text() string
	SetText(text string)
	TextColor() Color
	SetTextColor(hex string) error
}

// Editable views accept user-entered text.
type Editable interface {
	TextHolder
	Hint() string
	SetHint(hint string)
}

// Base holds the attributes shared by every view. It is embedded by each
// variant and is not used on its own.
type Base struct {
	id         string
	x, y       int
	width      int
	height     int
	visible    bool
	enabled    bool
	background Color
	onClick    ClickHandler
}

func newBase(id string, background Color) Base {
	return Base{id: id, visible: true, enabled: true, background: background}
}

func (b *Base) base() *Base { return b }

// ID returns the view identifier.
func (b *Base) ID() string { return b.id }

// Position returns the x and y coordinates.
func (b *Base) Position() (x, y int) { return b.x, b.y }

// SetPosition sets the x and y coordinates.
func (b *Base) SetPosition(x, y int) { b.x, b.y = x, y }

// Size returns the width and height.
func (b *Base) Size() (width, height int) { return b.width, b.height }

// SetSize sets the width and height.
func (b *Base) SetSize(width, height int) { b.width, b.height = width, height }

// Visible reports whether the view should be drawn.
func (b *Base) Visible() bool { return b.visible }

// SetVisibility shows or hides the view.
func (b *Base) SetVisibility(visible bool) { b.visible = visible }

// Enabled reports whether the view accepts clicks.
func (b *Base) Enabled() bool { return b.enabled }

// SetEnabled enables or disables the view.
func (b *Base) SetEnabled(enabled bool) { b.enabled = enabled }

// BackgroundColor returns the background color.
func (b *Base) BackgroundColor() Color { return b.background }

// SetBackgroundColor parses hex as #RRGGBB and sets the background.
// Malformed input leaves the color unchanged.
func (b *Base) SetBackgroundColor(hex string) error {
	c, err := ParseColor(hex)
	if err != nil {
		return err
	}
	b.background = c
	return nil
}

// Option configures a view at construction.
type Option func(*Base)

// WithSize sets the initial width and height.
func WithSize(width, height int) Option {
	return func(b *Base) { b.width, b.height = width, height }
}

// WithPosition sets the initial coordinates.
func WithPosition(x, y int) Option {
	return func(b *Base) { b.x, b.y = x, y }
}

// WithEnabled sets the initial enabled flag.
func WithEnabled(enabled bool) Option {
	return func(b *Base) { b.enabled = enabled }
}

func (b *Base) apply(opts []Option) {
	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}
}
