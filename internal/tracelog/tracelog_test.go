package tracelog

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"layout"
)

func TestEnableAttachesTracerAndEmitsEvents(t *testing.T) {
	var buf bytes.Buffer
	tree := layout.NewTree()
	leaf := tree.NewLeaf(layout.DefaultStyle())

	Enable(tree, &buf)

	require.NoError(t, tree.ComputeLayout(leaf, layout.SizeAvailableSpace{
		Width:  layout.Definite(10),
		Height: layout.Definite(10),
	}))

	out := buf.String()
	assert.Contains(t, out, "\"message\":\"enter\"")
	assert.Contains(t, out, "\"message\":\"algorithm\"")
	assert.Contains(t, out, "\"algorithm\":\"LEAF\"")
	assert.Contains(t, out, "\"message\":\"exit\"")
}

func TestTracerIndentTracksDepth(t *testing.T) {
	var buf bytes.Buffer
	tree := layout.NewTree()
	child := tree.NewLeaf(layout.DefaultStyle())
	root, err := tree.NewWithChildren(layout.DefaultStyle(), []layout.NodeID{child})
	require.NoError(t, err)

	Enable(tree, &buf)
	require.NoError(t, tree.ComputeLayout(root, layout.SizeAvailableSpace{
		Width:  layout.Definite(50),
		Height: layout.Definite(50),
	}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.NotEmpty(t, lines)
	// The child's "enter" line must show a deeper indent than the root's.
	var rootIndent, childIndent string
	enters := 0
	for _, line := range lines {
		if strings.Contains(line, "\"message\":\"enter\"") {
			switch enters {
			case 0:
				rootIndent = extractIndent(line)
			case 1:
				childIndent = extractIndent(line)
			}
			enters++
		}
	}
	assert.Greater(t, len(childIndent), len(rootIndent))
}

func extractIndent(line string) string {
	const key = `"indent":"`
	idx := strings.Index(line, key)
	if idx < 0 {
		return ""
	}
	rest := line[idx+len(key):]
	end := strings.Index(rest, `"`)
	if end < 0 {
		return ""
	}
	return rest[:end]
}
