package view

import (
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotCopiesTree(t *testing.T) {
	root, row, t1 := nestedTree()
	root.SetPadding(20, 20, 20, 20)
	row.AddView(NewButton("b", "Go", ClickFunc(func(View) {})))
	row.AddView(NewEditText("in", "type"))

	n := Snapshot(root)
	assert.Equal(t, "LinearLayout", n.Type)
	assert.True(t, n.IsLayout())
	assert.Equal(t, 20, n.Padding.Left)
	require.Len(t, n.Children, 1)

	rowNode := n.Children[0]
	assert.Equal(t, Horizontal, rowNode.Orientation)
	require.Len(t, rowNode.Children, 3)
	assert.Equal(t, "TextView", rowNode.Children[0].Type)
	assert.Equal(t, "deep", rowNode.Children[0].Text)
	assert.Equal(t, "Button", rowNode.Children[1].Type)
	assert.True(t, rowNode.Children[1].Clickable)
	assert.Equal(t, "EditText", rowNode.Children[2].Type)
	assert.Equal(t, "type", rowNode.Children[2].Hint)

	t1.SetText("changed")
	assert.Equal(t, "deep", rowNode.Children[0].Text, "snapshot must not alias live views")
}

func TestSnapshotRelativeLayoutJSON(t *testing.T) {
	l := NewRelativeLayout("rel")
	tv := NewTextView("t", "hi", WithPosition(5, 6))
	l.AddView(tv)

	data, err := sonic.Marshal(Snapshot(l))
	require.NoError(t, err)
	s := string(data)
	assert.Contains(t, s, `"type":"RelativeLayout"`)
	assert.Contains(t, s, `"background_color":"#FFFFFF"`)
	assert.Contains(t, s, `"x":5`)
}
