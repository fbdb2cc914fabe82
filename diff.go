package widgetdiff

// TreeDiffer compares two widget trees and accumulates the operations
// needed to transform the rendered output of the old tree into the new
// one, without rebuilding unchanged subtrees.
//
// A differ holds the current traversal path as mutable state, so a single
// instance must not run two diffs concurrently. Reusing one instance
// across sequential Diff calls is supported; state is reset on each call.
type TreeDiffer struct {
	// currentPath tracks the position in the new tree during traversal.
	currentPath Path
}

// NewTreeDiffer creates a differ ready for use.
func NewTreeDiffer() *TreeDiffer {
	return &TreeDiffer{}
}

// DiffTrees compares two trees with a throwaway differ.
func DiffTrees(old, new *Node) *Result {
	return NewTreeDiffer().Diff(old, new)
}

// Diff computes the operations that turn old into new. The result is
// ordered for destructive application: within one level, keyed moves come
// first, removals run highest-index-first so earlier indices stay valid,
// and insertions run in ascending index order.
func (d *TreeDiffer) Diff(old, new *Node) *Result {
	result := &Result{}
	d.currentPath = d.currentPath[:0]
	d.diffNode(old, new, result)
	return result
}

// diffNode compares two nodes assumed to occupy the same structural slot.
func (d *TreeDiffer) diffNode(old, new *Node, result *Result) {
	// A type change invalidates the whole subtree: the renderer tears the
	// old instance down and builds the new subtree fresh, so children are
	// not diffed further.
	if old.Type != new.Type {
		result.Push(ReplaceOp{
			Path:         d.currentPath.clone(),
			NewType:      new.Type,
			NewPropsHash: new.PropsHash,
		})
		return
	}

	if old.PropsHash != new.PropsHash {
		result.Push(UpdateOp{
			Path:         d.currentPath.clone(),
			NewPropsHash: new.PropsHash,
		})
	}

	d.diffChildren(old.Children, new.Children, result)
}

// diffChildren reconciles two ordered child lists in four phases:
// keyed matching, first-fit unkeyed matching by type, removal of leftover
// old children (reverse index order), insertion of leftover new children.
func (d *TreeDiffer) diffChildren(oldChildren, newChildren []*Node, result *Result) {
	oldKeyed := make(map[string]int)
	for i, c := range oldChildren {
		if c.Key != "" {
			oldKeyed[c.Key] = i
		}
	}

	oldMatched := make([]bool, len(oldChildren))
	newMatched := make([]bool, len(newChildren))

	// Phase 1: match by key. An explicit key is a stronger identity
	// signal than type: a keyed pair with mismatched tags still matches
	// here and surfaces as a Replace inside the recursive diff.
	for newIdx, newChild := range newChildren {
		if newChild.Key == "" {
			continue
		}
		oldIdx, ok := oldKeyed[newChild.Key]
		if !ok {
			// No old counterpart; falls through to phase 4.
			continue
		}
		oldMatched[oldIdx] = true
		newMatched[newIdx] = true

		if oldIdx != newIdx {
			result.Push(MoveOp{
				FromPath: d.currentPath.clone(oldIdx),
				ToPath:   d.currentPath.clone(newIdx),
			})
		}

		// Nested paths reflect the final position, not the original one.
		d.currentPath = append(d.currentPath, newIdx)
		d.diffNode(oldChildren[oldIdx], newChild, result)
		d.currentPath = d.currentPath[:len(d.currentPath)-1]
	}

	// Phase 2: match unkeyed children by type, first fit in order. No
	// attempt at a globally optimal assignment: reordering same-typed
	// unkeyed siblings produces no moves, only in-place diffs.
	var oldUnkeyed []int
	for i, c := range oldChildren {
		if c.Key == "" && !oldMatched[i] {
			oldUnkeyed = append(oldUnkeyed, i)
		}
	}

	for newIdx, newChild := range newChildren {
		if newChild.Key != "" || newMatched[newIdx] {
			continue
		}

		found := false
		for pos, oldIdx := range oldUnkeyed {
			if oldIdx < 0 {
				continue
			}
			if oldChildren[oldIdx].Type == newChild.Type {
				oldUnkeyed[pos] = -1
				oldMatched[oldIdx] = true
				newMatched[newIdx] = true
				found = true

				d.currentPath = append(d.currentPath, newIdx)
				d.diffNode(oldChildren[oldIdx], newChild, result)
				d.currentPath = d.currentPath[:len(d.currentPath)-1]
				break
			}
		}

		if !found {
			// No old child of this type remains. The whole subtree is
			// new; its descendants are never matched against anything.
			newMatched[newIdx] = true
			result.Push(InsertOp{
				Path:      d.currentPath.clone(),
				Index:     newIdx,
				Type:      newChild.Type,
				PropsHash: newChild.PropsHash,
			})

			d.currentPath = append(d.currentPath, newIdx)
			d.insertSubtree(newChild, result)
			d.currentPath = d.currentPath[:len(d.currentPath)-1]
		}
	}

	// Phase 3: remove unmatched old children. Reverse index order keeps
	// earlier indices valid for a renderer deleting destructively.
	for i := len(oldChildren) - 1; i >= 0; i-- {
		if !oldMatched[i] {
			result.Push(RemoveOp{Path: d.currentPath.clone(i)})
		}
	}

	// Phase 4: insert remaining new children, ascending. This is where
	// keyed children without an old counterpart land.
	for i, matched := range newMatched {
		if matched {
			continue
		}
		newChild := newChildren[i]
		result.Push(InsertOp{
			Path:      d.currentPath.clone(),
			Index:     i,
			Type:      newChild.Type,
			PropsHash: newChild.PropsHash,
		})

		d.currentPath = append(d.currentPath, i)
		d.insertSubtree(newChild, result)
		d.currentPath = d.currentPath[:len(d.currentPath)-1]
	}
}

// insertSubtree emits one Insert per descendant of an already-inserted
// node, in pre-order, so a renderer can create the subtree top-down.
func (d *TreeDiffer) insertSubtree(node *Node, result *Result) {
	for i, child := range node.Children {
		result.Push(InsertOp{
			Path:      d.currentPath.clone(),
			Index:     i,
			Type:      child.Type,
			PropsHash: child.PropsHash,
		})

		d.currentPath = append(d.currentPath, i)
		d.insertSubtree(child, result)
		d.currentPath = d.currentPath[:len(d.currentPath)-1]
	}
}
