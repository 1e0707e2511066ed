package view

// ClickHandler receives a click on the view it is bound to.
type ClickHandler interface {
	Invoke(v View)
}

// ClickFunc adapts an ordinary function to ClickHandler.
type ClickFunc func(v View)

// Invoke calls f(v).
func (f ClickFunc) Invoke(v View) { f(v) }

// SetOnClickListener binds h, replacing any previous handler. Handlers are
// never chained; nil clears the binding.
func (b *Base) SetOnClickListener(h ClickHandler) { b.onClick = h }

// SetOnClick binds fn as the click handler. A nil fn clears the binding.
func (b *Base) SetOnClick(fn func(v View)) {
	if fn == nil {
		b.onClick = nil
		return
	}
	b.onClick = ClickFunc(fn)
}

// OnClickListener returns the bound handler, or nil.
func (b *Base) OnClickListener() ClickHandler { return b.onClick }

// Click delivers a click to v on the calling goroutine and returns after the
// handler does. It reports false without calling anything when v has no
// handler or is disabled.
//
// The handler may mutate the tree v belongs to; Click holds no iterator over
// it.
func Click(v View) bool {
	if v == nil {
		return false
	}
	b := v.base()
	if b.onClick == nil || !b.enabled {
		return false
	}
	b.onClick.Invoke(v)
	return true
}

// ClickByID finds the first view with id under root and clicks it.
func ClickByID(root View, id string) bool {
	return Click(FindViewByID(root, id))
}

// IsClickable reports whether Click(v) would invoke a handler.
func IsClickable(v View) bool {
	if v == nil {
		return false
	}
	b := v.base()
	return b.onClick != nil && b.enabled
}

// Focusable reports whether v can take keyboard focus: it is visible and
// enabled, and either clickable or an EditText. Ancestor visibility is the
// caller's concern.
func Focusable(v View) bool {
	if v == nil || !v.base().Visible() || !v.base().Enabled() {
		return false
	}
	return IsClickable(v) || v.Kind() == KindInput
}

// Focusable is the snapshot form of [Focusable].
func (n Node) Focusable() bool {
	return n.Visible && n.Enabled && (n.Clickable || n.Kind == KindInput)
}
