package widgetdiff

import (
	"errors"
	"fmt"
)

// Instance is a minimal stand-in for a live widget instance tree, the
// thing a real renderer mutates when it applies a diff. It exists so the
// emission-order guarantees of the differ can be exercised end to end:
// diff two Node trees, apply the result to the old tree's instances, and
// compare against the new tree.
type Instance struct {
	Type      TypeTag
	PropsHash uint64
	Children  []*Instance
}

// InstanceOf materializes an instance tree from a diffable node tree.
func InstanceOf(n *Node) *Instance {
	inst := &Instance{Type: n.Type, PropsHash: n.PropsHash}
	for _, c := range n.Children {
		inst.Children = append(inst.Children, InstanceOf(c))
	}
	return inst
}

// Apply mutates root by applying the operations in emission order.
//
// This is a reference applier: it resolves paths against the tree as
// already mutated by the preceding operations, which is exactly right for
// the reverse-ordered removals and ascending insertions the differ emits.
// Move sources are the exception: the differ addresses them by position
// in the child list as it stood before any move, so the applier snapshots
// each parent's pre-move order on the first move it sees and resolves
// every later FromPath for that parent against the snapshot. A ReplaceOp
// truncates the target's children, since the differ does not enumerate a
// replaced subtree; the renderer rebuilds it from its own declarative
// source.
func Apply(root *Instance, res *Result) error {
	premove := make(map[*Instance][]*Instance)
	for i, op := range res.Ops {
		if err := applyOp(root, op, premove); err != nil {
			return fmt.Errorf("failed to apply op %d (%T): %w", i, op, err)
		}
	}
	return nil
}

func applyOp(root *Instance, op Op, premove map[*Instance][]*Instance) error {
	switch op := op.(type) {
	case UpdateOp:
		node, err := instanceAt(root, op.Path)
		if err != nil {
			return err
		}
		node.PropsHash = op.NewPropsHash

	case ReplaceOp:
		node, err := instanceAt(root, op.Path)
		if err != nil {
			return err
		}
		node.Type = op.NewType
		node.PropsHash = op.NewPropsHash
		node.Children = nil

	case InsertOp:
		// Path is the parent; Index is the position in the new order.
		parent, err := instanceAt(root, op.Path)
		if err != nil {
			return err
		}
		insertChildAt(parent, &Instance{Type: op.Type, PropsHash: op.PropsHash}, op.Index)

	case RemoveOp:
		parent, index, err := parentOf(root, op.Path)
		if err != nil {
			return err
		}
		parent.Children = append(parent.Children[:index], parent.Children[index+1:]...)
		if len(parent.Children) == 0 {
			parent.Children = nil
		}

	case MoveOp:
		parent, from, err := parentOf(root, op.FromPath)
		if err != nil {
			return err
		}
		if len(op.ToPath) == 0 {
			return errors.New("move target path is empty")
		}
		to := op.ToPath[len(op.ToPath)-1]

		// FromPath indices are positions in the pre-move child list; a
		// second move under the same parent must not be resolved against
		// the order the first move produced.
		before, ok := premove[parent]
		if !ok {
			before = append([]*Instance(nil), parent.Children...)
			premove[parent] = before
		}
		child := before[from]
		for i, c := range parent.Children {
			if c == child {
				parent.Children = append(parent.Children[:i], parent.Children[i+1:]...)
				break
			}
		}
		insertChildAt(parent, child, to)

	default:
		return fmt.Errorf("unknown operation type: %T", op)
	}

	return nil
}

// instanceAt resolves a path against the live tree.
func instanceAt(root *Instance, path Path) (*Instance, error) {
	current := root
	for step, index := range path {
		if index < 0 || index >= len(current.Children) {
			return nil, fmt.Errorf("node not found at path %v (failed at index %d, step %d)", path, index, step)
		}
		current = current.Children[index]
	}
	return current, nil
}

// parentOf resolves the parent of the node a path addresses, returning
// the parent and the node's index within it.
func parentOf(root *Instance, path Path) (*Instance, int, error) {
	if len(path) == 0 {
		return nil, 0, errors.New("cannot address the parent of the root node")
	}
	parent, err := instanceAt(root, path[:len(path)-1])
	if err != nil {
		return nil, 0, err
	}
	index := path[len(path)-1]
	if index < 0 || index >= len(parent.Children) {
		return nil, 0, fmt.Errorf("index %d out of range at path %v", index, path)
	}
	return parent, index, nil
}

func insertChildAt(parent *Instance, child *Instance, index int) {
	if index < 0 || index >= len(parent.Children) {
		parent.Children = append(parent.Children, child)
		return
	}
	parent.Children = append(parent.Children[:index], append([]*Instance{child}, parent.Children[index:]...)...)
}
