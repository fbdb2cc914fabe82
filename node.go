package widgetdiff

import (
	"errors"
	"fmt"
)

// Node is one widget instance prepared for comparison. It is not the
// widget itself: callers derive a fresh Node tree from the declarative
// widget tree each reconciliation pass, and the differ never mutates it.
//
// Key is optional. When set, the caller asserts stable identity for the
// node across renders; sibling keys must be unique (the differ does not
// validate this, and duplicate keys make matching precedence undefined).
type Node struct {
	// Type is the widget kind. Nodes with different tags are never
	// treated as the same instance.
	Type TypeTag
	// Key is the explicit identity, or "" for positional matching.
	Key string
	// PropsHash fingerprints all non-child state of the widget.
	PropsHash uint64
	// Children in rendering order.
	Children []*Node
	// Index is the node's position in its parent's child list at
	// construction time. Informational; the differ derives positions
	// from list order.
	Index int
}

// NewNode creates a node with no key and no children.
func NewNode(tag TypeTag, propsHash uint64) *Node {
	return &Node{Type: tag, PropsHash: propsHash}
}

// WithKey sets the explicit identity key.
func (n *Node) WithKey(key string) *Node {
	n.Key = key
	return n
}

// WithIndex sets the construction-time position.
func (n *Node) WithIndex(index int) *Node {
	n.Index = index
	return n
}

// WithChild appends a child and returns the node for chaining.
func (n *Node) WithChild(child *Node) *Node {
	n.AddChild(child)
	return n
}

// AddChild appends a child, recording its position.
func (n *Node) AddChild(child *Node) {
	child.Index = len(n.Children)
	n.Children = append(n.Children, child)
}

// NodeAt traverses the tree along path and returns the node it addresses.
func NodeAt(root *Node, path Path) (*Node, error) {
	current := root
	for step, index := range path {
		if index < 0 || index >= len(current.Children) {
			return nil, fmt.Errorf("node not found at path %v (failed at index %d, step %d)", path, index, step)
		}
		current = current.Children[index]
	}
	return current, nil
}

// PathTo finds the path from root to target, located by pointer identity.
func PathTo(root, target *Node) (Path, error) {
	if root == target {
		return Path{}, nil
	}
	for i, child := range root.Children {
		sub, err := PathTo(child, target)
		if err == nil {
			return append(Path{i}, sub...), nil
		}
	}
	return nil, errors.New("target node is not a descendant of root")
}
