// Package trail keeps the sliding window of tracked points and derives slice speed
package trail

import (
	"math"

	"github.com/lixenwraith/blade-toss/core"
)

// Sample is one frame's tracked point; OK is false when tracking failed that frame
type Sample struct {
	Point core.Point
	OK    bool
}

// Buffer is a bounded, oldest-first history of per-frame samples
type Buffer struct {
	samples []Sample
	max     int
}

// NewBuffer creates a buffer holding at most max samples
func NewBuffer(max int) *Buffer {
	if max < 1 {
		max = 1
	}
	return &Buffer{
		samples: make([]Sample, 0, max+1),
		max:     max,
	}
}

// Push appends this frame's sample and trims the oldest beyond capacity
func (b *Buffer) Push(p core.Point, ok bool) {
	b.samples = append(b.samples, Sample{Point: p, OK: ok})
	if over := len(b.samples) - b.max; over > 0 {
		// Shift in place so the backing array never grows past max+1
		n := copy(b.samples, b.samples[over:])
		b.samples = b.samples[:n]
	}
}

// Speed returns the distance between the two newest samples in pixels per frame
// Zero unless both of the two newest samples are present. Not normalised by
// wall-clock time, so speed scales with the source's frame cadence
func (b *Buffer) Speed() float64 {
	n := len(b.samples)
	if n < 2 {
		return 0
	}
	last, prev := b.samples[n-1], b.samples[n-2]
	if !last.OK || !prev.OK {
		return 0
	}
	return prev.Point.Dist(last.Point)
}

// Samples returns the window oldest first; the slice is owned by the buffer
// and valid until the next Push or Reset
func (b *Buffer) Samples() []Sample {
	return b.samples
}

// Len returns the number of samples held
func (b *Buffer) Len() int {
	return len(b.samples)
}

// Cap returns the configured maximum
func (b *Buffer) Cap() int {
	return b.max
}

// Reset empties the window
func (b *Buffer) Reset() {
	b.samples = b.samples[:0]
}

// Thickness returns the stroke width for the segment ending at index i of an
// n-sample window; segments near the start of the window are drawn thicker
func Thickness(i, n int) int {
	return int(math.Sqrt(float64(n)/float64(i+1)) * 2.0)
}
