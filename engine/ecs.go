package engine

import "github.com/lixenwraith/otterpet/input"

// System is an interface that all per-frame systems must implement
type System interface {
	Update(world *World)
	Priority() int // Lower values run first
}

// Settler is optionally implemented by systems with end-of-frame work
// Settle runs after the frame's input events, in system priority order
type Settler interface {
	Settle(world *World)
}

// EventHandler is optionally implemented by systems that react to input
type EventHandler interface {
	HandleEvent(world *World, ev input.Event)
}
