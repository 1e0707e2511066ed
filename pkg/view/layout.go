package view

// Orientation is a rendering hint for linear layouts. It does not constrain
// the child sequence.
type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Arrangement selects how a backend places children: stacked in sequence or
// at their own coordinates. The core treats both identically.
type Arrangement int

const (
	ArrangeLinear Arrangement = iota
	ArrangeRelative
)

func (a Arrangement) String() string {
	if a == ArrangeRelative {
		return "relative"
	}
	return "linear"
}

// Padding is the inset between a layout's edge and its children.
type Padding struct {
	Left   int `json:"left"`
	Top    int `json:"top"`
	Right  int `json:"right"`
	Bottom int `json:"bottom"`
}

// Layout is a view holding an ordered sequence of children.
//
// A view should belong to at most one layout at a time. Adding the same view
// to two layouts, or a layout to itself, is not rejected; rendering and
// traversal of such trees is undefined.
type Layout struct {
	Base
	children    []View
	padding     Padding
	orientation Orientation
	arrangement Arrangement
}

// NewLinearLayout creates a layout whose children a backend stacks in order.
func NewLinearLayout(id string, orientation Orientation, opts ...Option) *Layout {
	l := &Layout{
		Base:        newBase(id, ColorWhite),
		orientation: orientation,
		arrangement: ArrangeLinear,
	}
	l.apply(opts)
	return l
}

// NewRelativeLayout creates a layout whose children keep their own positions.
func NewRelativeLayout(id string, opts ...Option) *Layout {
	l := &Layout{
		Base:        newBase(id, ColorWhite),
		arrangement: ArrangeRelative,
	}
	l.apply(opts)
	return l
}

// Kind returns KindLayout.
func (l *Layout) Kind() Kind { return KindLayout }

// Orientation returns the stacking hint.
func (l *Layout) Orientation() Orientation { return l.orientation }

// SetOrientation replaces the stacking hint.
func (l *Layout) SetOrientation(o Orientation) { l.orientation = o }

// Arrangement returns the placement policy.
func (l *Layout) Arrangement() Arrangement { return l.arrangement }

// Padding returns the current padding.
func (l *Layout) Padding() Padding { return l.padding }

// SetPadding sets the padding on all four sides.
func (l *Layout) SetPadding(left, top, right, bottom int) {
	l.padding = Padding{Left: left, Top: top, Right: right, Bottom: bottom}
}

// AddView appends child to the end of the child sequence. Ids are not
// checked for duplicates; nil is ignored.
func (l *Layout) AddView(child View) {
	if child == nil {
		return
	}
	l.children = append(l.children, child)
}

// RemoveView removes the first direct child that is child itself and
// reports whether one was removed. Nested layouts are not searched.
func (l *Layout) RemoveView(child View) bool {
	for i, c := range l.children {
		if c == child {
			l.removeAt(i)
			return true
		}
	}
	return false
}

// RemoveViewByID removes the first direct child with the given id and
// reports whether one was removed. Nested layouts are not searched.
func (l *Layout) RemoveViewByID(id string) bool {
	for i, c := range l.children {
		if c.ID() == id {
			l.removeAt(i)
			return true
		}
	}
	return false
}

func (l *Layout) removeAt(i int) {
	copy(l.children[i:], l.children[i+1:])
	l.children[len(l.children)-1] = nil
	l.children = l.children[:len(l.children)-1]
}

// ChildCount returns the number of direct children.
func (l *Layout) ChildCount() int { return len(l.children) }

// ChildAt returns the direct child at index i, or nil if out of range.
func (l *Layout) ChildAt(i int) View {
	if i < 0 || i >= len(l.children) {
		return nil
	}
	return l.children[i]
}

// Children returns a copy of the child sequence.
func (l *Layout) Children() []View {
	out := make([]View, len(l.children))
	copy(out, l.children)
	return out
}

// FindViewByID searches l and its descendants. See FindViewByID.
func (l *Layout) FindViewByID(id string) View {
	return FindViewByID(l, id)
}

// FindViewByID performs a depth-first pre-order search of the tree rooted at
// root, including root itself, and returns the first view with the given id.
// A shallower duplicate therefore shadows a deeper one. It returns nil when
// no view matches.
func FindViewByID(root View, id string) View {
	var found View
	Walk(root, func(v View, _ int) bool {
		if v.ID() == id {
			found = v
			return false
		}
		return true
	})
	return found
}

// Walk visits root and its descendants in depth-first pre-order, passing
// each view's depth below root. Returning false from fn stops the walk;
// Walk reports whether it ran to completion.
func Walk(root View, fn func(v View, depth int) bool) bool {
	return walk(root, 0, fn)
}

func walk(v View, depth int, fn func(View, int) bool) bool {
	if v == nil {
		return true
	}
	if !fn(v, depth) {
		return false
	}
	l, ok := v.(*Layout)
	if !ok {
		return true
	}
	for _, child := range l.children {
		if !walk(child, depth+1, fn) {
			return false
		}
	}
	return true
}
