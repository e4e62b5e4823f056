package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/blade-toss/core"
)

func TestIntegrateOrder(t *testing.T) {
	k := core.Kinetic{X: 100, Y: 500, VX: 2, VY: -20}
	Integrate(&k, 0.6)

	// Position uses pre-gravity velocity
	assert.Equal(t, 102.0, k.X)
	assert.Equal(t, 480.0, k.Y)
	assert.InDelta(t, -19.4, k.VY, 1e-9)
	assert.Equal(t, 2.0, k.VX)
}

func TestIntegrateArcReturns(t *testing.T) {
	k := core.Kinetic{X: 0, Y: 500, VX: 0, VY: -20}
	apex := k.Y
	frames := 0
	for k.Y <= 500 && frames < 1000 {
		Integrate(&k, 0.6)
		if k.Y < apex {
			apex = k.Y
		}
		frames++
	}
	assert.Less(t, frames, 1000, "Expected parabola to come back down")
	assert.Less(t, apex, 200.0, "Expected the arc to rise well above launch height")
}

func TestBoundsExited(t *testing.T) {
	b := Bounds{Width: 640, Height: 480, BottomMargin: 50, SideMargin: 200}

	tests := []struct {
		name string
		k    core.Kinetic
		want bool
	}{
		{"centre of screen", core.Kinetic{X: 320, Y: 240}, false},
		{"just inside bottom margin", core.Kinetic{X: 320, Y: 480 + 50 + 30}, false},
		{"past bottom margin", core.Kinetic{X: 320, Y: 480 + 50 + 30.5}, true},
		{"far left", core.Kinetic{X: -200.5, Y: 240}, true},
		{"left margin edge", core.Kinetic{X: -200, Y: 240}, false},
		{"far right", core.Kinetic{X: 840.5, Y: 240}, true},
		{"above top is fine", core.Kinetic{X: 320, Y: -400}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.Exited(tt.k, 30))
		})
	}
}

func TestBoundsVisible(t *testing.T) {
	b := Bounds{Width: 640, Height: 480}
	assert.True(t, b.Visible(core.Kinetic{X: 0, Y: 480}))
	assert.False(t, b.Visible(core.Kinetic{X: 10, Y: 481}))
	assert.False(t, b.Visible(core.Kinetic{X: -1, Y: 10}))
}
