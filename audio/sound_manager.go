package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/otterpet/components"
	"github.com/lixenwraith/otterpet/constants"
)

// outputFunc opens the audio device and starts playing the given streamer
type outputFunc func(rate beep.SampleRate, s beep.Streamer) error

// speakerOutput plays through the system speaker
func speakerOutput(rate beep.SampleRate, s beep.Streamer) error {
	if err := speaker.Init(rate, rate.N(constants.SpeakerBufferLength)); err != nil {
		return err
	}
	speaker.Play(s)
	return nil
}

// SoundManager plays mood cues through a single mixer
// All methods are safe for concurrent use and safe to call before Initialize
type SoundManager struct {
	mu          sync.Mutex
	config      *AudioConfig
	mixer       *beep.Mixer
	output      outputFunc
	initialized bool
}

// NewSoundManager creates a sound manager, nil config selects the defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		config: cfg,
		mixer:  &beep.Mixer{},
		output: speakerOutput,
	}
}

// Initialize opens the audio device
// Disabled audio initializes nothing and leaves PlayMood returning ErrNotInitialized
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.config.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.config.SampleRate)
	if err := sm.output(rate, sm.mixer); err != nil {
		return fmt.Errorf("audio: speaker init at %d Hz: %w", sm.config.SampleRate, err)
	}

	sm.initialized = true
	return nil
}

// Initialized reports whether the device is open
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	// beep has no speaker Close; clearing the mixer silences all cues
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// PlayMood queues the cue for mood
func (sm *SoundManager) PlayMood(mood components.Mood) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return ErrNotInitialized
	}

	streamer, err := MoodSound(mood, sm.config)
	if err != nil {
		return err
	}

	// The mixer runs on the speaker goroutine
	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
	return nil
}

// Pending returns the number of cues still playing
func (sm *SoundManager) Pending() int {
	speaker.Lock()
	defer speaker.Unlock()
	return sm.mixer.Len()
}
