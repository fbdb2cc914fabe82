package widgetdiff

// Path represents the traversal steps from the root to a target node.
// Example: [0, 1, 3] means root -> child[0] -> child[1] -> child[3].
// Paths are owned values: every operation carries its own copy and never
// aliases the differ's traversal state.
type Path []int

// clone returns an owned copy of the path with optional extra indices
// appended. The differ calls this at every emission point so operations
// stay valid after the traversal stack moves on.
func (p Path) clone(extra ...int) Path {
	out := make(Path, 0, len(p)+len(extra))
	out = append(out, p...)
	return append(out, extra...)
}

// Equal reports whether two paths address the same node.
func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// TypeTag identifies a widget kind (e.g. "button" vs "text_input").
// The differ only compares tags for equality; their content is opaque.
type TypeTag string

// NodeKey is an identity value for matching widgets across renders:
// either an explicit caller-supplied string or an implicit position index.
// The differ reads explicit keys directly off nodes; NodeKey exists for
// callers who want a strongly typed identity when building trees.
type NodeKey struct {
	str      string
	idx      uint
	explicit bool
}

// KeyOf creates an explicit string key.
func KeyOf(s string) NodeKey {
	return NodeKey{str: s, explicit: true}
}

// IndexKey creates an implicit positional key.
func IndexKey(i uint) NodeKey {
	return NodeKey{idx: i}
}

// Explicit returns the string key and whether the key is explicit.
func (k NodeKey) Explicit() (string, bool) {
	return k.str, k.explicit
}

// Index returns the positional index and whether the key is implicit.
func (k NodeKey) Index() (uint, bool) {
	return k.idx, !k.explicit
}

// Op is one mutation instruction produced by the differ. The set of
// implementations is closed: InsertOp, RemoveOp, UpdateOp, MoveOp and
// ReplaceOp. An applier's switch over Op must handle all five.
type Op interface {
	op()
}

// InsertOp creates a new node at Index under the parent located at Path.
// Path is in the old tree's surviving-node coordinate space; Index is the
// target position in the new child order.
type InsertOp struct {
	Path      Path
	Index     int
	Type      TypeTag
	PropsHash uint64
}

// RemoveOp destroys the node at Path.
type RemoveOp struct {
	Path Path
}

// UpdateOp keeps the node at Path but applies new properties.
type UpdateOp struct {
	Path         Path
	NewPropsHash uint64
}

// MoveOp relocates the node at FromPath to ToPath. No property change is
// implied; a separate UpdateOp may follow for the same node.
type MoveOp struct {
	FromPath Path
	ToPath   Path
}

// ReplaceOp destroys the node at Path and creates one of a different type
// in its place. The replaced node's subtree is not diffed further; the
// renderer rebuilds it from its own declarative source.
type ReplaceOp struct {
	Path         Path
	NewType      TypeTag
	NewPropsHash uint64
}

func (InsertOp) op()  {}
func (RemoveOp) op()  {}
func (UpdateOp) op()  {}
func (MoveOp) op()    {}
func (ReplaceOp) op() {}

// Result is the ordered list of operations from one diff pass. Order is
// significant: the renderer applies operations exactly as emitted.
type Result struct {
	Ops []Op
}

// Push appends an operation.
func (r *Result) Push(op Op) {
	r.Ops = append(r.Ops, op)
}

// IsEmpty reports whether the diff found no changes.
func (r *Result) IsEmpty() bool {
	return len(r.Ops) == 0
}

// Len returns the number of operations.
func (r *Result) Len() int {
	return len(r.Ops)
}
