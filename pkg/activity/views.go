package activity

import "github.com/go-drift/droid/pkg/view"

// AddView binds v to id at the top level. An existing binding for id is
// replaced and keeps its original position in Views.
func (b *Base) AddView(id string, v view.View) {
	if b.views == nil {
		b.views = make(map[string]view.View)
	}
	if _, exists := b.views[id]; !exists {
		b.order = append(b.order, id)
	} else {
		b.Logger().Debug("replacing view binding")
	}
	b.views[id] = v
}

// View returns the top-level view bound to id, or nil.
func (b *Base) View(id string) view.View {
	return b.views[id]
}

// RemoveView unbinds id and reports whether it was bound.
func (b *Base) RemoveView(id string) bool {
	if _, ok := b.views[id]; !ok {
		return false
	}
	delete(b.views, id)
	for i, k := range b.order {
		if k == id {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	return true
}

// ViewIDs returns the bound ids in first-insertion order.
func (b *Base) ViewIDs() []string {
	out := make([]string, len(b.order))
	copy(out, b.order)
	return out
}

// Views returns the top-level views in first-insertion order.
func (b *Base) Views() []view.View {
	out := make([]view.View, 0, len(b.order))
	for _, id := range b.order {
		out = append(out, b.views[id])
	}
	return out
}

// FindViewByID searches every top-level tree in order and returns the first
// view with the given id.
func (b *Base) FindViewByID(id string) view.View {
	for _, root := range b.Views() {
		if v := view.FindViewByID(root, id); v != nil {
			return v
		}
	}
	return nil
}

// Snapshot returns render nodes for every top-level view in order.
func (b *Base) Snapshot() []view.Node {
	roots := b.Views()
	nodes := make([]view.Node, 0, len(roots))
	for _, root := range roots {
		if root != nil {
			nodes = append(nodes, view.Snapshot(root))
		}
	}
	return nodes
}
