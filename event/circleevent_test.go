package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCircleEvent_Less(t *testing.T) {
	a := CircleEvent{LowerX: 1, CenterY: 5, Index: 1}
	b := CircleEvent{LowerX: 2, CenterY: 0, Index: 2}
	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
}

func TestCircleEvent_Less_TieOnLowerX(t *testing.T) {
	a := CircleEvent{LowerX: 1, CenterY: 1, Index: 1}
	b := CircleEvent{LowerX: 1, CenterY: 2, Index: 2}
	assert.True(t, a.Less(b))
}

func TestCircleEvent_Less_TieOnLowerXAndY_YoungestWins(t *testing.T) {
	a := CircleEvent{LowerX: 1, CenterY: 1, Index: 5}
	b := CircleEvent{LowerX: 1, CenterY: 1, Index: 2}
	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
}
