package parameter

import "time"

// Frame Loop
const (
	// FrameRate is the nominal capture cadence for sources that pace themselves
	FrameRate = 30

	// FPSSmoothing is the EMA weight of the newest frame interval
	FPSSmoothing = 0.1
)

// FrameRateOr returns rate, or FrameRate when rate is not positive
func FrameRateOr(rate int) int {
	if rate <= 0 {
		return FrameRate
	}
	return rate
}

// FrameInterval derives the per-frame period from a rate, falling back to FrameRate
func FrameInterval(rate int) time.Duration {
	return time.Second / time.Duration(FrameRateOr(rate))
}

// Tracking
const (
	// TrackMinRadius rejects detections whose enclosing circle is this small or smaller
	TrackMinRadius = 8.0

	// TrackMirror flips detections horizontally; pointer frontends report true positions,
	// a selfie-view camera source needs it on
	TrackMirror = false
)

// Logging
const (
	LogDir      = "logs"
	LogFileName = "blade-toss.log"
	LogLevel    = "info"
	// LogMaxSize triggers rotation of an existing log file on startup
	LogMaxSize = 10 * 1024 * 1024
)

// Event queue initial capacity per frame
const EventQueueCapacity = 16

// Audio
const (
	AudioSampleRate = 48000
	// AudioBuffer is the speaker buffer length
	AudioBuffer = 100 * time.Millisecond
	// AudioVolume is the default master volume in [0, 1]
	AudioVolume = 0.5

	HitSoundDuration = 90 * time.Millisecond
	HitSoundAttack   = 5 * time.Millisecond
	HitSoundRelease  = 60 * time.Millisecond

	ExplosionSoundDuration = 450 * time.Millisecond
	ExplosionSoundAttack   = 2 * time.Millisecond
	ExplosionSoundRelease  = 380 * time.Millisecond
)
