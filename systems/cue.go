package systems

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/otterpet/components"
	"github.com/lixenwraith/otterpet/constants"
	"github.com/lixenwraith/otterpet/engine"
)

// CuePlayer plays the sound for a mood
// Implemented by audio.SoundManager; errors are never fatal to the simulation
type CuePlayer interface {
	PlayMood(mood components.Mood) error
}

// CueSystem requests the current mood sound on a fixed frame period
// and optionally whenever the mood changes
type CueSystem struct {
	player       CuePlayer
	onMoodChange bool
	log          *zap.Logger

	elapsed  int
	lastMood components.Mood
	seeded   bool
}

// NewCueSystem creates the mood cue system; player may be nil if audio is disabled
func NewCueSystem(player CuePlayer, onMoodChange bool, log *zap.Logger) *CueSystem {
	if log == nil {
		log = zap.NewNop()
	}
	return &CueSystem{
		player:       player,
		onMoodChange: onMoodChange,
		log:          log,
	}
}

// Priority returns the system's priority (last, sees the frame's final mood)
func (s *CueSystem) Priority() int {
	return constants.PriorityCue
}

// Update counts frames and fires cues
func (s *CueSystem) Update(world *engine.World) {
	changed := s.seeded && world.Mood != s.lastMood
	s.lastMood = world.Mood
	s.seeded = true

	s.elapsed++
	if s.elapsed >= constants.MoodCueIntervalFrames {
		s.elapsed = 0
		s.play(world)
		return
	}
	if changed && s.onMoodChange {
		s.play(world)
	}
}

// play requests the mood sound; failures are logged and swallowed
func (s *CueSystem) play(world *engine.World) {
	if s.player == nil {
		return
	}
	if err := s.player.PlayMood(world.Mood); err != nil {
		s.log.Debug("mood cue dropped",
			zap.Stringer("mood", world.Mood),
			zap.Int64("frame", world.FrameNumber()),
			zap.Error(err),
		)
	}
}
