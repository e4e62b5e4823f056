package trail

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/blade-toss/core"
)

func TestBufferBounded(t *testing.T) {
	b := NewBuffer(20)
	for i := 0; i < 500; i++ {
		b.Push(core.Point{X: float64(i), Y: 0}, i%3 != 0)
		if b.Len() > 20 {
			t.Fatalf("Length %d exceeds maximum after %d pushes", b.Len(), i+1)
		}
	}
	assert.Equal(t, 20, b.Len())

	// Most recent last, oldest trimmed
	s := b.Samples()
	assert.Equal(t, 499.0, s[len(s)-1].Point.X)
	assert.Equal(t, 480.0, s[0].Point.X)
}

func TestBufferSpeedTriangle(t *testing.T) {
	b := NewBuffer(20)
	b.Push(core.Point{X: 10, Y: 10}, true)
	b.Push(core.Point{X: 13, Y: 14}, true)
	assert.InDelta(t, 5.0, b.Speed(), 1e-9)
}

func TestBufferSpeedNeedsTwoPresent(t *testing.T) {
	b := NewBuffer(20)
	assert.Equal(t, 0.0, b.Speed(), "Empty buffer")

	b.Push(core.Point{X: 10, Y: 10}, true)
	assert.Equal(t, 0.0, b.Speed(), "Single sample")

	b.Push(core.Point{}, false)
	assert.Equal(t, 0.0, b.Speed(), "Newest absent")

	b.Push(core.Point{X: 40, Y: 10}, true)
	assert.Equal(t, 0.0, b.Speed(), "Previous absent, no bridging across gaps")

	b.Push(core.Point{X: 52, Y: 10}, true)
	assert.InDelta(t, 12.0, b.Speed(), 1e-9)
}

func TestBufferReset(t *testing.T) {
	b := NewBuffer(4)
	b.Push(core.Point{X: 1}, true)
	b.Push(core.Point{X: 2}, true)
	b.Reset()
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, 0.0, b.Speed())
	assert.Equal(t, 4, b.Cap())
}

func TestBufferMinimumCapacity(t *testing.T) {
	b := NewBuffer(0)
	b.Push(core.Point{X: 1}, true)
	b.Push(core.Point{X: 2}, true)
	require.Equal(t, 1, b.Len())
	assert.Equal(t, 0.0, b.Speed())
}

func TestThicknessTapers(t *testing.T) {
	n := 20
	prev := Thickness(1, n)
	for i := 2; i < n; i++ {
		cur := Thickness(i, n)
		assert.LessOrEqual(t, cur, prev, "Thickness should not grow toward newer points")
		prev = cur
	}
	assert.Equal(t, 6, Thickness(1, 20))
	assert.Equal(t, 2, Thickness(19, 20))
}
