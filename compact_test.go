package widgetdiff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompactDropsOpsInsideRemovedSubtree(t *testing.T) {
	// Frame 1 updates a node deep in a panel; frame 2 removes the panel.
	res := &Result{}
	res.Push(UpdateOp{Path: Path{0, 1}, NewPropsHash: 5})
	res.Push(UpdateOp{Path: Path{2}, NewPropsHash: 7})
	res.Push(RemoveOp{Path: Path{0}})

	out := Compact(res)
	require.Equal(t, 2, out.Len())
	assert.Equal(t, UpdateOp{Path: Path{2}, NewPropsHash: 7}, out.Ops[0])
	assert.Equal(t, RemoveOp{Path: Path{0}}, out.Ops[1])
}

func TestCompactDropsOpsShadowedByReplace(t *testing.T) {
	res := &Result{}
	res.Push(UpdateOp{Path: Path{1}, NewPropsHash: 3})
	res.Push(InsertOp{Path: Path{1}, Index: 0, Type: "label", PropsHash: 4})
	res.Push(ReplaceOp{Path: Path{1}, NewType: "chart", NewPropsHash: 9})

	out := Compact(res)
	require.Equal(t, 1, out.Len())
	assert.Equal(t, ReplaceOp{Path: Path{1}, NewType: "chart", NewPropsHash: 9}, out.Ops[0])
}

func TestCompactKeepsLastUpdatePerPath(t *testing.T) {
	res := &Result{}
	res.Push(UpdateOp{Path: Path{0}, NewPropsHash: 1})
	res.Push(UpdateOp{Path: Path{1}, NewPropsHash: 2})
	res.Push(UpdateOp{Path: Path{0}, NewPropsHash: 3})

	out := Compact(res)
	require.Equal(t, 2, out.Len())
	assert.Equal(t, UpdateOp{Path: Path{1}, NewPropsHash: 2}, out.Ops[0])
	assert.Equal(t, UpdateOp{Path: Path{0}, NewPropsHash: 3}, out.Ops[1])
}

func TestCompactNoOpOnFreshDiff(t *testing.T) {
	// A single pass never emits shadowed ops: the differ does not walk
	// into removed or replaced subtrees.
	old := NewNode("panel", 0).
		WithChild(NewNode("button", 1).WithKey("a")).
		WithChild(NewNode("label", 2)).
		WithChild(NewNode("chart", 3))
	new := NewNode("panel", 4).
		WithChild(NewNode("button", 5).WithKey("a")).
		WithChild(NewNode("table", 6))

	res := DiffTrees(old, new)
	out := Compact(res)
	assert.Equal(t, res.Ops, out.Ops)
}

func TestCompactPreservesMoves(t *testing.T) {
	res := &Result{}
	res.Push(MoveOp{FromPath: Path{1}, ToPath: Path{0}})
	res.Push(RemoveOp{Path: Path{2}})

	out := Compact(res)
	assert.Equal(t, res.Ops, out.Ops)
}
