// Package track adapts an external object detector into the per-frame tracked point
package track

import "github.com/lixenwraith/blade-toss/core"

// Detection is the detector's minimum enclosing circle for the tracked object
type Detection struct {
	Center core.Point
	Radius float64
}

// Detector finds the tracked object in a frame, reporting false when none is visible
type Detector interface {
	Detect(f core.Frame) (Detection, bool)
}

// DetectorFunc adapts a function to Detector
type DetectorFunc func(f core.Frame) (Detection, bool)

func (fn DetectorFunc) Detect(f core.Frame) (Detection, bool) { return fn(f) }

// Tracker gates detections by size and optionally mirrors them horizontally
type Tracker struct {
	detector  Detector
	minRadius float64
	mirror    bool
}

// NewTracker wraps detector; detections with radius <= minRadius are treated as absent
func NewTracker(detector Detector, minRadius float64, mirror bool) *Tracker {
	return &Tracker{detector: detector, minRadius: minRadius, mirror: mirror}
}

// Track returns this frame's tracked object, or false when absent
func (t *Tracker) Track(f core.Frame) (Detection, bool) {
	if t.detector == nil {
		return Detection{}, false
	}
	d, ok := t.detector.Detect(f)
	if !ok || d.Radius <= t.minRadius {
		return Detection{}, false
	}
	if t.mirror && f.Width > 0 {
		d.Center.X = float64(f.Width-1) - d.Center.X
	}
	return d, true
}
