// Package view provides the view tree: leaf widgets, layouts, colors and
// synchronous click dispatch.
//
// Views are built by composition rather than inheritance. Every variant
// embeds [Base] for identity, geometry and style, and carries a [Kind] tag
// from a closed set: [TextView], [Button], [EditText] and [Layout].
// Capabilities are expressed as small interfaces ([Styleable], [Clickable],
// [TextHolder], [Editable]) that callers can assert for without switching on
// the concrete type.
//
// # Tree operations
//
// A [Layout] owns an ordered child sequence. [Layout.AddView] appends,
// [Layout.RemoveView] and [Layout.RemoveViewByID] remove a direct child, and
// [FindViewByID] searches a whole subtree depth-first:
//
//	root := view.NewLinearLayout("root", view.Vertical)
//	row := view.NewLinearLayout("row", view.Horizontal)
//	row.AddView(view.NewTextView("t1", "hello"))
//	root.AddView(row)
//	t1 := root.FindViewByID("t1").(*view.TextView)
//
// # Clicks
//
// Each view holds at most one [ClickHandler]. [Click] invokes it on the
// calling goroutine and returns when it does; there is no event queue.
//
//	btn := view.NewButton("ok", "OK", view.ClickFunc(func(v view.View) {
//	    t1.SetText("clicked")
//	}))
//	view.Click(btn)
//
// # Rendering
//
// The package draws nothing. Backends read a [Node] tree produced by
// [Snapshot] and route user input back through [Click].
package view
