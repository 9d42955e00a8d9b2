// Package tracelog wraps zerolog to give a developer an indented, per-node
// trace of which algorithm ran for which node during layout — the same
// capability Taffy's own debug/profile cargo features provide via
// NODE_LOGGER.push_node/.log/.pop_node, but as a structured, real logging
// dependency instead of println-style output.
package tracelog

import (
	"io"

	"github.com/rs/zerolog"

	"layout"
)

// Tracer drives layout.Tracer from an indentation-aware zerolog.Logger. It
// is attached to a tree with Enable; disabled by default since dispatch only
// calls through an interface value that is nil until then.
type Tracer struct {
	logger zerolog.Logger
	depth  int
}

// New builds a Tracer writing structured debug events to w.
func New(w io.Writer) *Tracer {
	logger := zerolog.New(w).With().Timestamp().Logger().Level(zerolog.DebugLevel)
	return &Tracer{logger: logger}
}

// Enable builds a Tracer and attaches it to tree, returning it so the
// caller can still use it directly (e.g. to change level or add fields).
func Enable(tree *layout.Tree, w io.Writer) *Tracer {
	t := New(w)
	tree.SetTracer(t)
	return t
}

// Enter records descending into node, indented to the current recursion depth.
func (t *Tracer) Enter(node layout.NodeID) {
	t.logger.Debug().
		Str("indent", indent(t.depth)).
		Uint64("node", uint64(node)).
		Msg("enter")
	t.depth++
}

// Algorithm records which LayoutAlgorithm dispatch picked for the node
// currently being entered.
func (t *Tracer) Algorithm(name string) {
	t.logger.Debug().
		Str("indent", indent(t.depth)).
		Str("algorithm", name).
		Msg("algorithm")
}

// Result records the size an algorithm produced for the node it just finished.
func (t *Tracer) Result(size layout.SizeF) {
	t.logger.Debug().
		Str("indent", indent(t.depth)).
		Float64("width", size.Width).
		Float64("height", size.Height).
		Msg("result")
}

// Exit records returning from the node entered by the matching Enter.
func (t *Tracer) Exit() {
	t.depth--
	t.logger.Debug().Str("indent", indent(t.depth)).Msg("exit")
}

func indent(depth int) string {
	b := make([]byte, depth*2)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
