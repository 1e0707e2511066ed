package view

const (
	defaultTextSize   = 14
	defaultFontFamily = "Arial"
	defaultButtonText = "Button"
)

// TextView displays a run of styled text.
type TextView struct {
	Base
	text       string
	textColor  Color
	textSize   int
	fontFamily string
}

// NewTextView creates a TextView with black 14pt Arial text on white.
func NewTextView(id, text string, opts ...Option) *TextView {
	tv := &TextView{
		Base:       newBase(id, ColorWhite),
		text:       text,
		textColor:  ColorBlack,
		textSize:   defaultTextSize,
		fontFamily: defaultFontFamily,
	}
	tv.apply(opts)
	return tv
}

// Kind returns KindText.
func (tv *TextView) Kind() Kind { return KindText }

// Text returns the displayed text.
func (tv *TextView) Text() string { return tv.text }

// SetText replaces the displayed text.
func (tv *TextView) SetText(text string) { tv.text = text }

// TextColor returns the text color.
func (tv *TextView) TextColor() Color { return tv.textColor }

// SetTextColor parses hex as #RRGGBB and sets the text color.
func (tv *TextView) SetTextColor(hex string) error {
	c, err := ParseColor(hex)
	if err != nil {
		return err
	}
	tv.textColor = c
	return nil
}

// TextSize returns the font size in pixels.
func (tv *TextView) TextSize() int { return tv.textSize }

// SetTextSize sets the font size in pixels.
func (tv *TextView) SetTextSize(size int) { tv.textSize = size }

// FontFamily returns the font family name.
func (tv *TextView) FontFamily() string { return tv.fontFamily }

// SetFontFamily sets the font family name.
func (tv *TextView) SetFontFamily(family string) { tv.fontFamily = family }

// Button is a TextView styled for interaction.
type Button struct {
	TextView
}

// NewButton creates a button with white text on the primary color and
// binds onClick if it is non-nil. An empty label becomes "Button".
func NewButton(id, text string, onClick ClickHandler, opts ...Option) *Button {
	if text == "" {
		text = defaultButtonText
	}
	b := &Button{TextView: *NewTextView(id, text)}
	b.background = ColorPrimary
	b.textColor = ColorOnPrimary
	b.onClick = onClick
	b.apply(opts)
	return b
}

// Kind returns KindButton.
func (b *Button) Kind() Kind { return KindButton }

// EditText is a single-line text input.
type EditText struct {
	Base
	text      string
	hint      string
	textColor Color
	hintColor Color
}

// NewEditText creates an empty input showing hint as a placeholder.
func NewEditText(id, hint string, opts ...Option) *EditText {
	et := &EditText{
		Base:      newBase(id, ColorWhite),
		hint:      hint,
		textColor: ColorBlack,
		hintColor: ColorGray,
	}
	et.apply(opts)
	return et
}

// Kind returns KindInput.
func (et *EditText) Kind() Kind { return KindInput }

// Text returns the current input.
func (et *EditText) Text() string { return et.text }

// SetText replaces the current input.
func (et *EditText) SetText(text string) { et.text = text }

// Hint returns the placeholder text.
func (et *EditText) Hint() string { return et.hint }

// SetHint replaces the placeholder text.
func (et *EditText) SetHint(hint string) { et.hint = hint }

// TextColor returns the input text color.
func (et *EditText) TextColor() Color { return et.textColor }

// SetTextColor parses hex as #RRGGBB and sets the input text color.
func (et *EditText) SetTextColor(hex string) error {
	c, err := ParseColor(hex)
	if err != nil {
		return err
	}
	et.textColor = c
	return nil
}

// HintColor returns the placeholder color.
func (et *EditText) HintColor() Color { return et.hintColor }

// SetHintColor parses hex as #RRGGBB and sets the placeholder color.
func (et *EditText) SetHintColor(hex string) error {
	c, err := ParseColor(hex)
	if err != nil {
		return err
	}
	et.hintColor = c
	return nil
}
