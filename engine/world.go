// @focus: #core { world, state }
package engine

import (
	"github.com/lixenwraith/otterpet/components"
	"github.com/lixenwraith/otterpet/constants"
)

// InteractionState is the pointer interaction state derived from menu and drag flags
type InteractionState uint8

const (
	StateIdle InteractionState = iota
	StateMenuOpen
	StateDragging
)

// String returns the state name
func (s InteractionState) String() string {
	switch s {
	case StateMenuOpen:
		return "menu"
	case StateDragging:
		return "dragging"
	default:
		return "idle"
	}
}

// World holds the complete simulation state of the otter and its surroundings
// Single writer: the frame loop goroutine owns it, systems receive it by pointer
type World struct {
	// Stat model
	Stats  components.Stats
	Mood   components.Mood
	Forced components.ForcedMood

	// Motion
	Position     components.Vec2
	WanderTarget components.Vec2
	WanderTimer  int

	// Pending items, apple outranks ball
	Apple *components.Vec2
	Ball  *components.Vec2

	// Interaction
	Menu     components.ContextMenu
	Dragging bool
	Giggle   components.GiggleComponent

	// Effects
	Particles []components.Particle

	// Rand drives wander re-rolls and particle looks
	Rand Rand

	frame   int64
	systems []System
}

// NewWorld creates a world in the fixed initial state
func NewWorld(rng Rand) *World {
	start := components.Vec2{X: constants.OtterStartX, Y: constants.OtterStartY}
	return &World{
		Stats: components.Stats{
			Hunger: components.StatOf(constants.InitialHunger),
			Energy: components.StatOf(constants.InitialEnergy),
		},
		Mood:         components.MoodHappy,
		Position:     start,
		WanderTarget: start,
		Menu:         components.ContextMenu{Entries: components.DefaultMenuEntries},
		Particles:    make([]components.Particle, 0, 64),
		Rand:         rng,
		systems:      make([]System, 0),
	}
}

// AddSystem adds a system to the world and sorts by priority
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)

	// Stable bubble sort keeps registration order for equal priorities
	for i := 0; i < len(w.systems)-1; i++ {
		for j := 0; j < len(w.systems)-i-1; j++ {
			if w.systems[j].Priority() > w.systems[j+1].Priority() {
				w.systems[j], w.systems[j+1] = w.systems[j+1], w.systems[j]
			}
		}
	}
}

// Systems returns the registered systems in priority order
func (w *World) Systems() []System {
	return w.systems
}

// Update runs all systems once and advances the frame counter
func (w *World) Update() {
	w.frame++
	for _, system := range w.systems {
		system.Update(w)
	}
}

// FrameNumber returns the number of frames advanced so far
func (w *World) FrameNumber() int64 {
	return w.frame
}

// ForceMood sets the mood immediately and marks it as a one-frame override
func (w *World) ForceMood(m components.Mood) {
	w.Mood = m
	w.Forced = components.ForcedMood{Active: true, Mood: m}
}

// InteractionState derives the pointer state; an open menu takes precedence
func (w *World) InteractionState() InteractionState {
	switch {
	case w.Menu.Visible:
		return StateMenuOpen
	case w.Dragging:
		return StateDragging
	default:
		return StateIdle
	}
}

// OtterBounds returns the otter's sprite footprint, origin at its position
func (w *World) OtterBounds() components.Rect {
	return components.Rect{
		X: w.Position.X,
		Y: w.Position.Y,
		W: constants.OtterSize,
		H: constants.OtterSize,
	}
}
