package layout

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTreeErrorIsMatchesByKindOnly(t *testing.T) {
	err := invalidChildNode(NodeID(7))
	assert.True(t, errors.Is(err, ErrInvalidChildNodeSentinel))
	assert.False(t, errors.Is(err, ErrInvalidParentNodeSentinel))
}

func TestTreeErrorMessagesNameTheOffendingValues(t *testing.T) {
	err := childIndexOutOfBounds(NodeID(3), 5, 2)
	assert.ErrorContains(t, err, "5")
	assert.ErrorContains(t, err, "2")
}
