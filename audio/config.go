package audio

import (
	"github.com/lixenwraith/otterpet/components"
	"github.com/lixenwraith/otterpet/constants"
)

// AudioConfig holds playback settings for mood cues
type AudioConfig struct {
	Enabled      bool
	MasterVolume float64 // 0.0 - 1.0
	SampleRate   int
	MoodVolumes  map[components.Mood]float64
}

// DefaultAudioConfig returns the built-in audio settings
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   constants.DefaultSampleRate,
		MoodVolumes: map[components.Mood]float64{
			components.MoodHappy:  0.8,
			components.MoodHungry: 1.0,
			components.MoodSleepy: 0.6,
		},
	}
}

// volumeFor returns the effective gain for a mood cue
func (c *AudioConfig) volumeFor(mood components.Mood) float64 {
	vol, ok := c.MoodVolumes[mood]
	if !ok {
		vol = 1.0
	}
	return vol * c.MasterVolume
}
