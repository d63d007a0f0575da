package layers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateCenteredLayer(t *testing.T) {
	assert.Nil(t, CreateCenteredLayer("", 80, 24))

	layer := CreateCenteredLayer("abcd\nefgh", 80, 24)
	if assert.NotNil(t, layer) {
		assert.Equal(t, 38, layer.GetX())
		assert.Equal(t, 11, layer.GetY())
	}
}

func TestCreateCenteredLayer_LargerThanScreen(t *testing.T) {
	layer := CreateCenteredLayer("a very long line indeed", 5, 1)
	if assert.NotNil(t, layer) {
		assert.Equal(t, 0, layer.GetX())
		assert.Equal(t, 0, layer.GetY())
	}
}

func TestCreateFloatingLayer_ClampsToScreen(t *testing.T) {
	tests := []struct {
		name         string
		x, y         int
		wantX, wantY int
	}{
		{"inside", 10, 5, 10, 5},
		{"right edge", 78, 5, 76, 5},
		{"bottom edge", 10, 23, 10, 22},
		{"negative", -4, -1, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layer := CreateFloatingLayer("abcd\nefgh", tt.x, tt.y, 80, 24)
			if assert.NotNil(t, layer) {
				assert.Equal(t, tt.wantX, layer.GetX())
				assert.Equal(t, tt.wantY, layer.GetY())
			}
		})
	}
}
