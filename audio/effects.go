package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/blade-toss/parameter"
	"github.com/lixenwraith/blade-toss/vmath"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves, optionally sweeping frequency linearly
type oscillator struct {
	freq     float64
	sweep    float64 // Hz added per sample
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	noise    *vmath.FastRand
}

// NewOscillator creates a fixed-frequency oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from one frequency to another over duration
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	samples := rate.N(duration)
	o := &oscillator{
		freq:     from,
		duration: samples,
		wave:     wave,
		rate:     rate,
	}
	if samples > 0 {
		o.sweep = (to - from) / float64(samples)
	}
	if wave == WaveNoise {
		o.noise = vmath.NewFastRand(uint64(time.Now().UnixNano()))
	}
	return o
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.noise.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.freq += o.sweep
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with a linear attack, flat sustain and linear release
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales linearly; zero or negative volume is silent since log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateHitSound is a short rising blip for a sliced target
func CreateHitSound(rate beep.SampleRate, volume float64) beep.Streamer {
	d := parameter.HitSoundDuration
	blip := NewSweep(660, 1320, d, WaveSquare, rate)
	shaped := NewEnvelope(blip, d, parameter.HitSoundAttack, parameter.HitSoundRelease, rate)

	swish := NewOscillator(0, d, WaveNoise, rate)
	swishShaped := NewEnvelope(swish, d, 0, d, rate)

	return newVolume(beep.Mix(
		newVolume(shaped, 0.6),
		newVolume(swishShaped, 0.25),
	), volume)
}

// CreateExplosionSound is a falling rumble under a noise burst for a sliced bomb
func CreateExplosionSound(rate beep.SampleRate, volume float64) beep.Streamer {
	d := parameter.ExplosionSoundDuration
	burst := NewOscillator(0, d, WaveNoise, rate)
	burstShaped := NewEnvelope(burst, d, parameter.ExplosionSoundAttack, parameter.ExplosionSoundRelease, rate)

	rumble := NewSweep(110, 40, d, WaveSaw, rate)
	rumbleShaped := NewEnvelope(rumble, d, parameter.ExplosionSoundAttack, d/2, rate)

	return newVolume(beep.Mix(
		newVolume(burstShaped, 0.7),
		newVolume(rumbleShaped, 0.5),
	), volume)
}
