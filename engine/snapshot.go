package engine

import (
	"strconv"

	"github.com/lixenwraith/otterpet/components"
	"github.com/lixenwraith/otterpet/constants"
)

// ParticleView is the render-facing part of a particle
type ParticleView struct {
	Pos     components.Vec2
	Scale   float64
	Variant int
}

// Snapshot is an immutable per-frame view consumed by the presentation layer
type Snapshot struct {
	Frame    int64
	Position components.Vec2
	Sprite   string
	Mood     components.Mood
	Stats    components.Stats
	State    InteractionState

	Apple *components.Vec2
	Ball  *components.Vec2

	Particles []ParticleView
	Menu      components.ContextMenu

	Speech       string
	SpeechAnchor components.Vec2
}

// NewSnapshot copies the presentation state out of the world
func NewSnapshot(w *World) Snapshot {
	s := Snapshot{
		Frame:    w.FrameNumber(),
		Position: w.Position,
		Sprite:   SpriteKey(w.Mood, w.Giggle),
		Mood:     w.Mood,
		Stats:    w.Stats,
		State:    w.InteractionState(),
		Menu:     w.Menu,
		Speech:   w.Mood.Speech(),
		SpeechAnchor: w.Position.Add(components.Vec2{
			X: constants.SpeechOffsetX,
			Y: constants.SpeechOffsetY,
		}),
		Particles: make([]ParticleView, len(w.Particles)),
	}
	if w.Apple != nil {
		p := *w.Apple
		s.Apple = &p
	}
	if w.Ball != nil {
		p := *w.Ball
		s.Ball = &p
	}
	for i, p := range w.Particles {
		s.Particles[i] = ParticleView{Pos: p.Pos, Scale: p.Scale, Variant: p.Variant}
	}
	return s
}

// AnimationFrame maps an elapsed frame count to an animation cell index
func AnimationFrame(frame, cells int) int {
	if cells <= 0 {
		return 0
	}
	return (frame / constants.GiggleFramesPerCell) % cells
}

// SpriteKey selects the otter sprite: a giggle cell while giggling, else the mood
func SpriteKey(mood components.Mood, giggle components.GiggleComponent) string {
	if giggle.Active {
		return "giggle_" + strconv.Itoa(AnimationFrame(giggle.Frame, constants.GiggleAnimationCells)+1)
	}
	return mood.String()
}
