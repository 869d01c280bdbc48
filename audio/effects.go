package audio

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/otterpet/components"
	"github.com/lixenwraith/otterpet/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
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
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with an attack ramp and a release fade over duration
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

// newVolume wraps s with a linear gain
// math.Log2(0) is -Inf, so zero volume is expressed as silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateHappySound generates a rising two-note chirp
func CreateHappySound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// E6 then A6
	n1 := NewOscillator(1318.51, constants.HappyNote1Duration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, constants.HappyNote1Duration, constants.HappyAttack, constants.HappyRelease, rate)

	n2 := NewOscillator(1760.0, constants.HappyNote2Duration, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, constants.HappyNote2Duration, constants.HappyAttack, constants.HappyRelease, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), 0.5*cfg.volumeFor(components.MoodHappy))
}

// CreateHungrySound generates a low grumble: a saw tone with a breath of noise
func CreateHungrySound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	tone := NewOscillator(98.0, constants.HungrySoundDuration, WaveSaw, rate)
	toneShaped := NewEnvelope(tone, constants.HungrySoundDuration, constants.HungryAttack, constants.HungryRelease, rate)

	noise := NewOscillator(0, constants.HungrySoundDuration, WaveNoise, rate)
	noiseShaped := NewEnvelope(noise, constants.HungrySoundDuration, constants.HungryAttack, constants.HungryRelease, rate)

	mixed := beep.Mix(
		newVolume(toneShaped, 0.8),
		newVolume(noiseShaped, 0.15),
	)
	return newVolume(mixed, cfg.volumeFor(components.MoodHungry))
}

// CreateSleepySound generates a falling two-note yawn
func CreateSleepySound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// A4 then E4
	n1 := NewOscillator(440.0, constants.SleepyNoteDuration, WaveSine, rate)
	n1Shaped := NewEnvelope(n1, constants.SleepyNoteDuration, constants.SleepyAttack, constants.SleepyRelease, rate)

	n2 := NewOscillator(329.63, constants.SleepyNoteDuration, WaveSine, rate)
	n2Shaped := NewEnvelope(n2, constants.SleepyNoteDuration, constants.SleepyAttack, constants.SleepyRelease, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), cfg.volumeFor(components.MoodSleepy))
}

// MoodSound returns the cue streamer for mood
func MoodSound(mood components.Mood, cfg *AudioConfig) (beep.Streamer, error) {
	switch mood {
	case components.MoodHappy:
		return CreateHappySound(cfg), nil
	case components.MoodHungry:
		return CreateHungrySound(cfg), nil
	case components.MoodSleepy:
		return CreateSleepySound(cfg), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownMood, mood)
	}
}
