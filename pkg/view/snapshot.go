package view

// Node is a read-only copy of a view's attributes, produced for rendering
// backends. Fields that do not apply to the node's kind are zero.
type Node struct {
	Type       string `json:"type"`
	Kind       Kind   `json:"-"`
	ID         string `json:"id"`
	X          int    `json:"x"`
	Y          int    `json:"y"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Visible    bool   `json:"visible"`
	Enabled    bool   `json:"enabled"`
	Clickable  bool   `json:"clickable"`
	Background Color  `json:"background_color"`

	Text       string `json:"text,omitempty"`
	TextColor  Color  `json:"text_color,omitempty"`
	TextSize   int    `json:"text_size,omitempty"`
	FontFamily string `json:"font_family,omitempty"`
	Hint       string `json:"hint,omitempty"`
	HintColor  Color  `json:"hint_color,omitempty"`

	Padding     Padding     `json:"padding"`
	Orientation Orientation `json:"-"`
	Arrangement Arrangement `json:"-"`
	Children    []Node      `json:"children,omitempty"`
}

// IsLayout reports whether the node has container capability.
func (n Node) IsLayout() bool { return n.Kind == KindLayout }

// Snapshot copies v and, for layouts, its whole subtree.
func Snapshot(v View) Node {
	b := v.base()
	n := Node{
		Kind:       v.Kind(),
		ID:         b.id,
		X:          b.x,
		Y:          b.y,
		Width:      b.width,
		Height:     b.height,
		Visible:    b.visible,
		Enabled:    b.enabled,
		Clickable:  IsClickable(v),
		Background: b.background,
	}
	switch t := v.(type) {
	case *Button:
		n.Type = "Button"
		fillText(&n, &t.TextView)
	case *TextView:
		n.Type = "TextView"
		fillText(&n, t)
	case *EditText:
		n.Type = "EditText"
		n.Text = t.text
		n.TextColor = t.textColor
		n.Hint = t.hint
		n.HintColor = t.hintColor
	case *Layout:
		n.Type = "LinearLayout"
		if t.arrangement == ArrangeRelative {
			n.Type = "RelativeLayout"
		}
		n.Padding = t.padding
		n.Orientation = t.orientation
		n.Arrangement = t.arrangement
		n.Children = make([]Node, 0, len(t.children))
		for _, child := range t.children {
			n.Children = append(n.Children, Snapshot(child))
		}
	}
	return n
}

func fillText(n *Node, tv *TextView) {
	n.Text = tv.text
	n.TextColor = tv.textColor
	n.TextSize = tv.textSize
	n.FontFamily = tv.fontFamily
}
