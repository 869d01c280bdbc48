package engine

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/otterpet/input"
)

// Game drives one World through the frame phases:
// Advance (systems), draw (host), Handle (input events), Settle (end of frame)
type Game struct {
	World *World

	handlers []EventHandler
	settlers []Settler
	log      *zap.Logger
}

// NewGame wraps a world; a nil logger is replaced by a no-op logger
func NewGame(world *World, log *zap.Logger) *Game {
	if log == nil {
		log = zap.NewNop()
	}
	return &Game{
		World: world,
		log:   log,
	}
}

// AddSystem registers a system and its optional event and settle hooks
func (g *Game) AddSystem(system System) {
	g.World.AddSystem(system)
	g.rebuildHooks()
}

// rebuildHooks re-derives hook lists from the priority-sorted system list
func (g *Game) rebuildHooks() {
	g.handlers = g.handlers[:0]
	g.settlers = g.settlers[:0]
	for _, s := range g.World.Systems() {
		if h, ok := s.(EventHandler); ok {
			g.handlers = append(g.handlers, h)
		}
		if st, ok := s.(Settler); ok {
			g.settlers = append(g.settlers, st)
		}
	}
}

// Advance runs the per-frame systems: mood, motion, timers, particles, cues
func (g *Game) Advance() {
	g.World.Update()
}

// Handle delivers one input event, returns false when the host should exit
func (g *Game) Handle(ev input.Event) bool {
	if ev.Type == input.EventQuit {
		g.log.Debug("quit requested", zap.Int64("frame", g.World.FrameNumber()))
		return false
	}
	for _, h := range g.handlers {
		h.HandleEvent(g.World, ev)
	}
	return true
}

// Settle applies end-of-frame work after all events were handled
func (g *Game) Settle() {
	for _, s := range g.settlers {
		s.Settle(g.World)
	}
}

// Step runs one complete frame without drawing, returns false on quit
// Events after a quit are not delivered and the frame is not settled
func (g *Game) Step(events ...input.Event) bool {
	g.Advance()
	for _, ev := range events {
		if !g.Handle(ev) {
			return false
		}
	}
	g.Settle()
	return true
}

// Snapshot captures the presentation view of the current state
func (g *Game) Snapshot() Snapshot {
	return NewSnapshot(g.World)
}
