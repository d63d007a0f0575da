package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMove_DoesNotModifyInput(t *testing.T) {
	in := []string{"a", "b", "c", "d"}

	out, changed := move(in, 0, 3)

	assert.True(t, changed)
	assert.Equal(t, []string{"b", "c", "d", "a"}, out)
	assert.Equal(t, []string{"a", "b", "c", "d"}, in)
}

func TestMove_NoChange(t *testing.T) {
	in := []int{1, 2, 3}

	_, changed := move(in, 2, 7)
	assert.False(t, changed)

	_, changed = move([]int{}, 0, 1)
	assert.False(t, changed)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, clamp(-1, 3))
	assert.Equal(t, 2, clamp(5, 3))
	assert.Equal(t, 1, clamp(1, 3))
}
