package layout

import (
	"github.com/hashicorp/go-multierror"
)

// slotIndex/slotGeneration split a NodeID the way a slot map does: the low
// 32 bits address a slot in the arena, the high 32 bits are a generation
// counter that increments every time the slot is freed and reused, so a
// NodeID captured before a Remove can never silently alias a different,
// later node.
func makeNodeID(index, generation uint32) NodeID {
	return NodeID(uint64(generation)<<32 | uint64(index))
}

func (n NodeID) slotIndex() uint32      { return uint32(n) }
func (n NodeID) slotGeneration() uint32 { return uint32(n >> 32) }

const noParent NodeID = 0

// nodeSlot is one arena entry. A slot with generation 0 has never been used;
// free slots keep their last generation so the next occupant's handle never
// repeats one a caller might still be holding.
type nodeSlot struct {
	alive      bool
	generation uint32
	style      Style
	children   []NodeID
	parent     NodeID
	measure    MeasureFunc
	cache      Cache
	unrounded  Layout
	final      Layout
}

// Config is the Tree's configuration surface, a single rounding toggle: no
// persisted state beyond what a consumer sets once per tree.
type Config struct {
	// UseRounding runs the rounding pass after every ComputeLayout.
	UseRounding bool
}

// DefaultConfig matches Taffy's own default: rounding on.
func DefaultConfig() Config {
	return Config{UseRounding: true}
}

// Tree is the arena-backed tree owner:
// everything layout needs to know about a node — its style, its children,
// its cache, its layout results — lives in one slot addressed by a
// generational NodeID. It implements both PartialLayoutTree and LayoutTree,
// so it is the thing every algorithm in this package ultimately runs against.
type Tree struct {
	slots    []nodeSlot
	freeList []uint32
	config   Config
	tracer   Tracer
}

// NewTree creates an empty tree with Taffy's own default starting capacity.
func NewTree() *Tree {
	return NewTreeWithCapacity(16)
}

// NewTreeWithCapacity pre-sizes the slot arena to avoid reallocation for
// trees of roughly the given size.
func NewTreeWithCapacity(capacity int) *Tree {
	return &Tree{
		slots:  make([]nodeSlot, 0, capacity),
		config: DefaultConfig(),
	}
}

// SetConfig replaces the tree's configuration.
func (t *Tree) SetConfig(c Config) { t.config = c }

// SetTracer attaches (or, with nil, detaches) a Tracer that ComputeChildLayout
// will drive on every dispatch. internal/tracelog builds the zerolog-backed
// implementation and wires it in via this method; the core itself never
// imports that package.
func (t *Tree) SetTracer(tr Tracer) { t.tracer = tr }

// EnableRounding / DisableRounding mirror Taffy's own toggle methods.
func (t *Tree) EnableRounding()  { t.config.UseRounding = true }
func (t *Tree) DisableRounding() { t.config.UseRounding = false }

func (t *Tree) slot(node NodeID) (*nodeSlot, error) {
	idx := node.slotIndex()
	if int(idx) >= len(t.slots) || !t.slots[idx].alive || t.slots[idx].generation != node.slotGeneration() {
		return nil, invalidInputNode(node)
	}
	return &t.slots[idx], nil
}

func (t *Tree) alloc() (NodeID, *nodeSlot) {
	if n := len(t.freeList); n > 0 {
		idx := t.freeList[n-1]
		t.freeList = t.freeList[:n-1]
		slot := &t.slots[idx]
		*slot = nodeSlot{alive: true, generation: slot.generation + 1, parent: noParent}
		return makeNodeID(idx, slot.generation), slot
	}
	idx := uint32(len(t.slots))
	t.slots = append(t.slots, nodeSlot{alive: true, generation: 1, parent: noParent})
	return makeNodeID(idx, 1), &t.slots[idx]
}

// NewLeaf creates an unattached leaf node with the given style.
func (t *Tree) NewLeaf(style Style) NodeID {
	id, slot := t.alloc()
	slot.style = style
	return id
}

// NewLeafWithMeasure creates an unattached leaf with a measure function;
// MeasureFuncOf will return it during layout.
func (t *Tree) NewLeafWithMeasure(style Style, measure MeasureFunc) NodeID {
	id, slot := t.alloc()
	slot.style = style
	slot.measure = measure
	return id
}

// NewWithChildren creates a node owning the given children. Any child
// already attached elsewhere is re-parented.
func (t *Tree) NewWithChildren(style Style, children []NodeID) (NodeID, error) {
	for _, c := range children {
		if _, err := t.slot(c); err != nil {
			return 0, err
		}
	}
	id, slot := t.alloc()
	slot.style = style
	slot.children = append([]NodeID(nil), children...)
	for _, c := range children {
		cs, _ := t.slot(c)
		if cs.parent != noParent {
			if ps, perr := t.slot(cs.parent); perr == nil {
				ps.children = removeNodeID(ps.children, c)
				_ = t.MarkDirty(cs.parent)
			}
		}
		cs.parent = id
	}
	return id, nil
}

// Remove detaches node from its parent (if any) and drops it along with
// the parent-link of its own children, freeing the slot for reuse.
func (t *Tree) Remove(node NodeID) error {
	slot, err := t.slot(node)
	if err != nil {
		return err
	}
	if slot.parent != noParent {
		if ps, perr := t.slot(slot.parent); perr == nil {
			ps.children = removeNodeID(ps.children, node)
		}
	}
	for _, c := range slot.children {
		if cs, cerr := t.slot(c); cerr == nil {
			cs.parent = noParent
		}
	}
	idx := node.slotIndex()
	t.slots[idx] = nodeSlot{generation: slot.generation}
	t.freeList = append(t.freeList, idx)
	return nil
}

func removeNodeID(s []NodeID, n NodeID) []NodeID {
	for i, v := range s {
		if v == n {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}

// SetStyle replaces node's style and marks it (and its ancestors) dirty.
func (t *Tree) SetStyle(node NodeID, style Style) error {
	slot, err := t.slot(node)
	if err != nil {
		return err
	}
	slot.style = style
	return t.MarkDirty(node)
}

// SetMeasure attaches or clears node's measure function and marks it dirty.
func (t *Tree) SetMeasure(node NodeID, measure MeasureFunc) error {
	slot, err := t.slot(node)
	if err != nil {
		return err
	}
	slot.measure = measure
	return t.MarkDirty(node)
}

// AddChild appends child under parent.
func (t *Tree) AddChild(parent, child NodeID) error {
	pslot, err := t.slot(parent)
	if err != nil {
		return invalidParentNode(parent)
	}
	cslot, err := t.slot(child)
	if err != nil {
		return invalidChildNode(child)
	}
	pslot.children = append(pslot.children, child)
	cslot.parent = parent
	return t.MarkDirty(parent)
}

// InsertChildAtIndex inserts child at the given position under parent,
// shifting later children right.
func (t *Tree) InsertChildAtIndex(parent NodeID, index int, child NodeID) error {
	pslot, err := t.slot(parent)
	if err != nil {
		return invalidParentNode(parent)
	}
	if index > len(pslot.children) {
		return childIndexOutOfBounds(parent, index, len(pslot.children))
	}
	cslot, err := t.slot(child)
	if err != nil {
		return invalidChildNode(child)
	}
	pslot.children = append(pslot.children, noParent)
	copy(pslot.children[index+1:], pslot.children[index:])
	pslot.children[index] = child
	cslot.parent = parent
	return t.MarkDirty(parent)
}

// SetChildren replaces the full child list of parent in one shot. Every
// supplied child is validated before anything is mutated; if more than one
// is invalid, the caller gets every problem at once via a multierror
// instead of stopping at the first, since this is the one operation that
// can fail at several indices simultaneously.
func (t *Tree) SetChildren(parent NodeID, children []NodeID) error {
	pslot, err := t.slot(parent)
	if err != nil {
		return invalidParentNode(parent)
	}

	var result *multierror.Error
	for _, c := range children {
		if _, cerr := t.slot(c); cerr != nil {
			result = multierror.Append(result, invalidChildNode(c))
		}
	}
	if err := result.ErrorOrNil(); err != nil {
		return err
	}

	for _, old := range pslot.children {
		if os, oerr := t.slot(old); oerr == nil {
			os.parent = noParent
		}
	}
	pslot.children = append([]NodeID(nil), children...)
	for _, c := range children {
		cs, _ := t.slot(c)
		if cs.parent != noParent && cs.parent != parent {
			if ops, oerr := t.slot(cs.parent); oerr == nil {
				ops.children = removeNodeID(ops.children, c)
				_ = t.MarkDirty(cs.parent)
			}
		}
		cs.parent = parent
	}
	return t.MarkDirty(parent)
}

// RemoveChild detaches the named child from parent without deleting it
// from the tree (it becomes unattached, same as a fresh leaf).
func (t *Tree) RemoveChild(parent, child NodeID) error {
	pslot, err := t.slot(parent)
	if err != nil {
		return invalidParentNode(parent)
	}
	idx := -1
	for i, c := range pslot.children {
		if c == child {
			idx = i
			break
		}
	}
	if idx < 0 {
		return invalidChildNode(child)
	}
	_, err = t.RemoveChildAtIndex(parent, idx)
	return err
}

// RemoveChildAtIndex detaches the child at index from parent.
func (t *Tree) RemoveChildAtIndex(parent NodeID, index int) (NodeID, error) {
	pslot, err := t.slot(parent)
	if err != nil {
		return 0, invalidParentNode(parent)
	}
	if index < 0 || index >= len(pslot.children) {
		return 0, childIndexOutOfBounds(parent, index, len(pslot.children))
	}
	child := pslot.children[index]
	pslot.children = append(pslot.children[:index], pslot.children[index+1:]...)
	if cs, cerr := t.slot(child); cerr == nil {
		cs.parent = noParent
	}
	return child, t.MarkDirty(parent)
}

// ReplaceChildAtIndex swaps in newChild at index, returning the old one
// (now detached, still alive in the arena).
func (t *Tree) ReplaceChildAtIndex(parent NodeID, index int, newChild NodeID) (NodeID, error) {
	pslot, err := t.slot(parent)
	if err != nil {
		return 0, invalidParentNode(parent)
	}
	if index < 0 || index >= len(pslot.children) {
		return 0, childIndexOutOfBounds(parent, index, len(pslot.children))
	}
	ncs, err := t.slot(newChild)
	if err != nil {
		return 0, invalidChildNode(newChild)
	}
	old := pslot.children[index]
	pslot.children[index] = newChild
	ncs.parent = parent
	if os, oerr := t.slot(old); oerr == nil {
		os.parent = noParent
	}
	return old, t.MarkDirty(parent)
}

// MarkDirty clears the cache of node and every ancestor up to the root, so
// the next ComputeLayout recomputes the whole dirtied path.
func (t *Tree) MarkDirty(node NodeID) error {
	slot, err := t.slot(node)
	if err != nil {
		return err
	}
	slot.cache.Clear()
	if slot.parent != noParent {
		return t.MarkDirty(slot.parent)
	}
	return nil
}

// Dirty reports whether node's cache is currently empty.
func (t *Tree) Dirty(node NodeID) (bool, error) {
	slot, err := t.slot(node)
	if err != nil {
		return false, err
	}
	return slot.cache.IsEmpty(), nil
}

// Style returns node's current style.
func (t *Tree) Style(node NodeID) *Style {
	slot, err := t.slot(node)
	if err != nil {
		return &Style{}
	}
	return &slot.style
}

// MeasureFuncOf returns node's measure function, or nil.
func (t *Tree) MeasureFuncOf(node NodeID) MeasureFunc {
	slot, err := t.slot(node)
	if err != nil {
		return nil
	}
	return slot.measure
}

// resolveChildren flattens Display:Contents descendants into node's
// effective child list, so block/flex/grid never have to know about
// Contents themselves.
func (t *Tree) resolveChildren(node NodeID) []NodeID {
	slot, err := t.slot(node)
	if err != nil {
		return nil
	}
	needsSplice := false
	for _, c := range slot.children {
		if cs, cerr := t.slot(c); cerr == nil && cs.style.Display == DisplayContents {
			needsSplice = true
			break
		}
	}
	if !needsSplice {
		return slot.children
	}
	out := make([]NodeID, 0, len(slot.children))
	t.appendResolvedChildren(node, &out)
	return out
}

func (t *Tree) appendResolvedChildren(node NodeID, out *[]NodeID) {
	slot, err := t.slot(node)
	if err != nil {
		return
	}
	for _, c := range slot.children {
		cs, cerr := t.slot(c)
		if cerr != nil {
			continue
		}
		if cs.style.Display == DisplayContents {
			t.appendResolvedChildren(c, out)
		} else {
			*out = append(*out, c)
		}
	}
}

// ChildIDs returns node's effective children (Display:Contents spliced in).
func (t *Tree) ChildIDs(node NodeID) []NodeID { return t.resolveChildren(node) }

// ChildCount returns len(ChildIDs(node)).
func (t *Tree) ChildCount(node NodeID) int { return len(t.resolveChildren(node)) }

// ChildAt returns the index'th effective child of node.
func (t *Tree) ChildAt(node NodeID, index int) NodeID { return t.resolveChildren(node)[index] }

// Children returns a copy of node's raw (pre-splice) child list, for
// consumers walking the tree they built rather than the layout view of it.
func (t *Tree) Children(node NodeID) ([]NodeID, error) {
	slot, err := t.slot(node)
	if err != nil {
		return nil, err
	}
	return append([]NodeID(nil), slot.children...), nil
}

// Parent returns node's parent, or (0, false) if node is a root.
func (t *Tree) Parent(node NodeID) (NodeID, bool) {
	slot, err := t.slot(node)
	if err != nil || slot.parent == noParent {
		return 0, false
	}
	return slot.parent, true
}

// CacheMut returns node's memoization table.
func (t *Tree) CacheMut(node NodeID) *Cache {
	slot, err := t.slot(node)
	if err != nil {
		panic(err)
	}
	return &slot.cache
}

// UnroundedLayoutMut returns a pointer to node's pre-rounding layout.
func (t *Tree) UnroundedLayoutMut(node NodeID) *Layout {
	slot, err := t.slot(node)
	if err != nil {
		panic(err)
	}
	return &slot.unrounded
}

// FinalLayout returns node's post-rounding layout.
func (t *Tree) FinalLayout(node NodeID) *Layout {
	slot, err := t.slot(node)
	if err != nil {
		panic(err)
	}
	return &slot.final
}

// FinalLayoutMut returns a writable pointer to node's post-rounding layout
// (only the rounding pass should write through it).
func (t *Tree) FinalLayoutMut(node NodeID) *Layout {
	return t.FinalLayout(node)
}

// ComputeChildLayout is the PartialLayoutTree recursion entrypoint: every
// algorithm in this package calls back into it for each child it lays out.
// It is also what a consumer calls directly on the root via ComputeLayout.
func (t *Tree) ComputeChildLayout(node NodeID, input LayoutInput) LayoutOutput {
	return dispatchTraced(t.tracer, t, node, input)
}

// ComputeLayout runs layout for node against the given available space and,
// unless disabled via Config, rounds the result. This is the single
// external entrypoint a consumer calls after building/mutating the tree.
func (t *Tree) ComputeLayout(node NodeID, availableSpace SizeAvailableSpace) error {
	if _, err := t.slot(node); err != nil {
		return err
	}
	t.ComputeChildLayout(node, LayoutInput{
		AvailableSpace: availableSpace,
		RunMode:        PerformLayout,
		SizingMode:     InherentSize,
	})
	if t.config.UseRounding {
		RoundLayout(t, node, 0, 0)
	}
	return nil
}

// Layout returns node's final (rounded, if enabled) layout.
func (t *Tree) Layout(node NodeID) (*Layout, error) {
	slot, err := t.slot(node)
	if err != nil {
		return nil, err
	}
	return &slot.final, nil
}

// NodeSpec is a declarative description used by Build to construct a
// subtree in one call — cmd/layout-dump builds its fixed demo tree from one.
type NodeSpec struct {
	Style    Style
	Measure  MeasureFunc
	Children []NodeSpec
}

// Build constructs the subtree described by spec bottom-up and returns its
// root NodeID. Since every node here is freshly allocated, the only way
// this can fail is if a nested Build call ever does (it currently can't),
// but the signature returns an aggregated error so future NodeSpec fields
// that reference existing NodeIDs (e.g. a "reuse" slot) can report every
// bad reference in the tree at once rather than the first.
func (t *Tree) Build(spec NodeSpec) (NodeID, error) {
	var result *multierror.Error
	children := make([]NodeID, 0, len(spec.Children))
	for _, childSpec := range spec.Children {
		child, err := t.Build(childSpec)
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}
		children = append(children, child)
	}
	if err := result.ErrorOrNil(); err != nil {
		return 0, err
	}

	if spec.Measure != nil {
		return t.NewLeafWithMeasure(spec.Style, spec.Measure), nil
	}
	if len(children) == 0 {
		return t.NewLeaf(spec.Style), nil
	}
	return t.NewWithChildren(spec.Style, children)
}

// TotalNodeCount returns how many live nodes the tree currently holds.
func (t *Tree) TotalNodeCount() int {
	n := 0
	for _, s := range t.slots {
		if s.alive {
			n++
		}
	}
	return n
}
