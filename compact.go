package widgetdiff

import "fmt"

// Compact removes operations that can never affect the rendered output:
// ops targeting a node inside a subtree that a later RemoveOp or
// ReplaceOp tears down anyway, and all but the last UpdateOp per path.
// Relative order of the surviving operations is preserved.
//
// A single diff pass never emits shadowed ops (the differ does not
// recurse into removed or replaced subtrees), so Compact is a no-op on a
// fresh Result. It earns its keep when a caller concatenates the results
// of several passes into one batch before handing it to the renderer.
func Compact(res *Result) *Result {
	type shadow struct {
		path Path
		pos  int
	}
	var shadows []shadow
	for i, op := range res.Ops {
		switch op := op.(type) {
		case RemoveOp:
			shadows = append(shadows, shadow{path: op.Path, pos: i})
		case ReplaceOp:
			shadows = append(shadows, shadow{path: op.Path, pos: i})
		}
	}

	lastUpdate := make(map[string]int)
	for i, op := range res.Ops {
		if u, ok := op.(UpdateOp); ok {
			lastUpdate[pathKey(u.Path)] = i
		}
	}

	out := &Result{}
	for i, op := range res.Ops {
		if u, ok := op.(UpdateOp); ok && lastUpdate[pathKey(u.Path)] != i {
			continue
		}
		target := targetPath(op)
		_, isUpdate := op.(UpdateOp)
		shadowed := false
		for _, s := range shadows {
			if s.pos <= i {
				continue
			}
			// Equal-path shadowing is only sound for updates: an update
			// and a later remove or replace of the same slot address the
			// same surviving node, while an insert's target index lives
			// in the new tree's coordinate space.
			if isDescendant(s.path, target) || (isUpdate && s.path.Equal(target)) {
				shadowed = true
				break
			}
		}
		if shadowed {
			continue
		}
		out.Push(op)
	}
	return out
}

// targetPath returns the path of the node an operation ultimately acts
// on. For inserts that is the new child's slot; for moves, the final
// position.
func targetPath(op Op) Path {
	switch op := op.(type) {
	case InsertOp:
		return op.Path.clone(op.Index)
	case RemoveOp:
		return op.Path
	case UpdateOp:
		return op.Path
	case MoveOp:
		return op.ToPath
	case ReplaceOp:
		return op.Path
	}
	return nil
}

// isDescendant reports whether child lies strictly inside the subtree
// rooted at ancestor.
func isDescendant(ancestor, child Path) bool {
	if len(child) <= len(ancestor) {
		return false
	}
	for i := range ancestor {
		if child[i] != ancestor[i] {
			return false
		}
	}
	return true
}

func pathKey(p Path) string {
	return fmt.Sprint([]int(p))
}
