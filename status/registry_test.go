package status

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricMapCachesPointer(t *testing.T) {
	r := NewRegistry()
	a := r.Ints.Get(KeyFrames)
	b := r.Ints.Get(KeyFrames)
	assert.Same(t, a, b)

	a.Add(3)
	assert.Equal(t, int64(3), r.Ints.Get(KeyFrames).Load())
}

func TestMetricMapConcurrentGet(t *testing.T) {
	m := NewMetricMap[AtomicFloat]()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.Get(KeyFPS).Set(1)
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, m.Count())
}

func TestAtomicFloatSmooth(t *testing.T) {
	var f AtomicFloat
	assert.Equal(t, 30.0, f.Smooth(30, 0.1), "First sample seeds the average")
	assert.InDelta(t, 29.0, f.Smooth(20, 0.1), 1e-9)
	f.Set(5)
	assert.Equal(t, 5.0, f.Get())
}

func TestRegistryLines(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get(KeyScore).Store(4)
	r.Ints.Get(KeyBombs).Store(1)
	r.Floats.Get(KeySpeed).Set(12.34)

	assert.Equal(t, []string{"entity.bombs=1", "game.score=4", "slice.speed=12.3"}, r.Lines())
	assert.Equal(t, 3, r.TotalCount())
}
