package layout

// cacheSlotCount bounds how many distinct (known_dimensions, run_mode,
// sizing_mode) shapes a single node's cache remembers at once: a small
// bounded set of entries (nine, matching Taffy's own cache width). A node
// only ever needs one slot per constraint-kind it's actually queried under
// during one layout pass, so this is a ring buffer rather than a hash map:
// eviction of the oldest entry is the cheap, correct answer when the bound
// is hit.
const cacheSlotCount = 9

// cacheEntry is one memoized (inputs) -> output pair.
type cacheEntry struct {
	occupied       bool
	knownDimensions SizeOpt
	parentSize      SizeOpt
	availableSpace  SizeAvailableSpace
	runMode         RunMode
	sizingMode      SizingMode
	output          LayoutOutput
}

// Cache is the per-node memoization table. It belongs to the node (not a
// global map) so that clearing it scopes invalidation to exactly the dirty
// subtree.
type Cache struct {
	entries [cacheSlotCount]cacheEntry
	next    int // ring-buffer write cursor
}

// Clear empties the cache, e.g. on a style mutation to this node.
func (c *Cache) Clear() {
	*c = Cache{}
}

// IsEmpty reports whether the cache currently holds no entries, the
// definition of "dirty" a tree owner exposes to callers.
func (c *Cache) IsEmpty() bool {
	for i := range c.entries {
		if c.entries[i].occupied {
			return false
		}
	}
	return true
}

// Get returns a cached output for the given query key, if one matches.
// Per : "An entry with definite known dimensions matches any query with
// the same definite values regardless of available space" — so an axis
// that was already pinned by known_dimensions when the entry was stored is
// compared against the query's known_dimensions only; an axis that was
// still unresolved is compared via available_space instead.
func (c *Cache) Get(knownDimensions SizeOpt, availableSpace SizeAvailableSpace, runMode RunMode) (LayoutOutput, bool) {
	for i := range c.entries {
		e := &c.entries[i]
		if !e.occupied || e.runMode != runMode {
			continue
		}
		if cacheAxisMatches(e.knownDimensions.Width, knownDimensions.Width, e.availableSpace.Width, availableSpace.Width) &&
			cacheAxisMatches(e.knownDimensions.Height, knownDimensions.Height, e.availableSpace.Height, availableSpace.Height) {
			return e.output, true
		}
	}
	return LayoutOutput{}, false
}

func cacheAxisMatches(storedKnown, queryKnown Opt, storedSpace, querySpace AvailableSpace) bool {
	sv, sok := storedKnown.Get()
	qv, qok := queryKnown.Get()
	if sok || qok {
		// Either side pinned this axis via known_dimensions: both must be
		// known and equal (within tolerance) for the entry to apply.
		if !sok || !qok {
			return false
		}
		d := sv - qv
		if d < 0 {
			d = -d
		}
		return d < epsilon
	}
	// Neither side has a known dimension for this axis: fall back to
	// comparing the available-space constraint that was used to compute it.
	return storedSpace.IsRoughlyEqual(querySpace)
}

// Store records an output under the given query key, evicting the oldest
// entry (by insertion order) if the table is full.
func (c *Cache) Store(knownDimensions SizeOpt, parentSize SizeOpt, availableSpace SizeAvailableSpace, runMode RunMode, sizingMode SizingMode, output LayoutOutput) {
	for i := range c.entries {
		if !c.entries[i].occupied {
			c.set(i, knownDimensions, parentSize, availableSpace, runMode, sizingMode, output)
			return
		}
	}
	c.set(c.next, knownDimensions, parentSize, availableSpace, runMode, sizingMode, output)
	c.next = (c.next + 1) % cacheSlotCount
}

func (c *Cache) set(i int, knownDimensions SizeOpt, parentSize SizeOpt, availableSpace SizeAvailableSpace, runMode RunMode, sizingMode SizingMode, output LayoutOutput) {
	c.entries[i] = cacheEntry{
		occupied:        true,
		knownDimensions: knownDimensions,
		parentSize:      parentSize,
		availableSpace:  availableSpace,
		runMode:         runMode,
		sizingMode:      sizingMode,
		output:          output,
	}
}
