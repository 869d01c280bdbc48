package constants

import "time"

// Audio device
const (
	DefaultSampleRate   = 48000
	SpeakerBufferLength = 100 * time.Millisecond
)

// Happy chirp: two rising square notes
const (
	HappyNote1Duration = 90 * time.Millisecond
	HappyNote2Duration = 140 * time.Millisecond
	HappyAttack        = 5 * time.Millisecond
	HappyRelease       = 60 * time.Millisecond
)

// Hungry grumble: low saw with a slow release
const (
	HungrySoundDuration = 350 * time.Millisecond
	HungryAttack        = 20 * time.Millisecond
	HungryRelease       = 200 * time.Millisecond
)

// Sleepy yawn: two falling sine notes
const (
	SleepyNoteDuration = 300 * time.Millisecond
	SleepyAttack       = 80 * time.Millisecond
	SleepyRelease      = 200 * time.Millisecond
)
