package systems

import (
	"github.com/lixenwraith/otterpet/constants"
	"github.com/lixenwraith/otterpet/engine"
)

// GiggleSystem counts down the giggle reaction and advances its animation counter
type GiggleSystem struct{}

// NewGiggleSystem creates the giggle system
func NewGiggleSystem() *GiggleSystem {
	return &GiggleSystem{}
}

// Priority returns the system's priority
func (s *GiggleSystem) Priority() int {
	return constants.PriorityGiggle
}

// Update ticks an active giggle, deactivating it when the timer runs out
func (s *GiggleSystem) Update(world *engine.World) {
	g := &world.Giggle
	if !g.Active {
		return
	}
	g.Timer--
	g.Frame++
	if g.Timer <= 0 {
		g.Active = false
	}
}
