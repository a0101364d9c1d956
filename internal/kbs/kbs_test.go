package kbs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStaticKnowledgeBase_KnownLevels(t *testing.T) {
	kb := NewStaticKnowledgeBase()

	w, ok := kb.PriorityWeight("High")
	assert.True(t, ok)
	assert.Equal(t, 10, w)

	w, ok = kb.PriorityWeight("Medium")
	assert.True(t, ok)
	assert.Equal(t, 5, w)

	w, ok = kb.PriorityWeight("Low")
	assert.True(t, ok)
	assert.Equal(t, 1, w)
}

func TestStaticKnowledgeBase_UnknownLevel(t *testing.T) {
	kb := NewStaticKnowledgeBase()

	_, ok := kb.PriorityWeight("Urgent")
	assert.False(t, ok)
}
