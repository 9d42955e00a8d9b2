package layout

import "fmt"

// TreeError is returned by every Tree mutation method that can fail.
// Values are comparable with errors.Is against the sentinels below.
type TreeError struct {
	Kind         TreeErrorKind
	Node         NodeID
	Parent       NodeID
	ChildIndex   int
	ChildCount   int
}

// TreeErrorKind classifies a TreeError without pinning down which node was involved.
type TreeErrorKind uint8

const (
	ErrInvalidInputNode TreeErrorKind = iota
	ErrInvalidParentNode
	ErrInvalidChildNode
	ErrChildIndexOutOfBounds
)

func (e *TreeError) Error() string {
	switch e.Kind {
	case ErrInvalidInputNode:
		return fmt.Sprintf("layout: node %d is not present in this tree", e.Node)
	case ErrInvalidParentNode:
		return fmt.Sprintf("layout: parent node %d is not present in this tree", e.Parent)
	case ErrInvalidChildNode:
		return fmt.Sprintf("layout: child node %d is not present in this tree", e.Node)
	case ErrChildIndexOutOfBounds:
		return fmt.Sprintf("layout: child index %d out of bounds (parent %d has %d children)", e.ChildIndex, e.Parent, e.ChildCount)
	default:
		return "layout: tree error"
	}
}

// Is lets errors.Is(err, ErrInvalidInputNode) match regardless of which node/index
// is attached, by comparing Kind only when the target is a bare *TreeError sentinel.
func (e *TreeError) Is(target error) bool {
	t, ok := target.(*TreeError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

func invalidInputNode(node NodeID) error    { return &TreeError{Kind: ErrInvalidInputNode, Node: node} }
func invalidParentNode(node NodeID) error   { return &TreeError{Kind: ErrInvalidParentNode, Parent: node} }
func invalidChildNode(node NodeID) error    { return &TreeError{Kind: ErrInvalidChildNode, Node: node} }
func childIndexOutOfBounds(parent NodeID, index, count int) error {
	return &TreeError{Kind: ErrChildIndexOutOfBounds, Parent: parent, ChildIndex: index, ChildCount: count}
}

// Sentinels usable directly with errors.Is, e.g. errors.Is(err, layout.ErrInvalidInputNodeSentinel).
var (
	ErrInvalidInputNodeSentinel  = &TreeError{Kind: ErrInvalidInputNode}
	ErrInvalidParentNodeSentinel = &TreeError{Kind: ErrInvalidParentNode}
	ErrInvalidChildNodeSentinel  = &TreeError{Kind: ErrInvalidChildNode}
	ErrChildIndexOutOfBoundsSentinel = &TreeError{Kind: ErrChildIndexOutOfBounds}
)
