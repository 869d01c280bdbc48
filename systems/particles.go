// @focus: #vfx { foam } #lifecycle { age }
package systems

import (
	"github.com/lixenwraith/otterpet/components"
	"github.com/lixenwraith/otterpet/constants"
	"github.com/lixenwraith/otterpet/engine"
)

// ParticleSystem spawns foam bubbles and retires them after their lifetime
type ParticleSystem struct{}

// NewParticleSystem creates the particle system
func NewParticleSystem() *ParticleSystem {
	return &ParticleSystem{}
}

// Priority returns the system's priority
func (s *ParticleSystem) Priority() int {
	return constants.PriorityParticle
}

// Update ages every particle once per frame
func (s *ParticleSystem) Update(world *engine.World) {
	world.Particles = AdvanceParticles(world.Particles)
}

// Spawn creates a particle at pos, appends it to the world and returns it
// Draw order from the rand source: scale, then variant
func (s *ParticleSystem) Spawn(world *engine.World, pos components.Vec2) components.Particle {
	p := NewParticle(world.Rand, pos)
	world.Particles = append(world.Particles, p)
	return p
}

// NewParticle builds a fresh particle with a random scale and look
func NewParticle(rng engine.Rand, pos components.Vec2) components.Particle {
	scale := constants.ParticleScaleMin + rng.Float64()*(constants.ParticleScaleMax-constants.ParticleScaleMin)
	return components.Particle{
		Pos:      pos,
		Lifetime: constants.ParticleLifetime,
		Scale:    scale,
		Variant:  rng.Intn(constants.ParticleVariants),
	}
}

// AdvanceParticles ages all particles by one frame and drops expired ones in place
// Survivors keep their relative order
func AdvanceParticles(particles []components.Particle) []components.Particle {
	alive := particles[:0]
	for _, p := range particles {
		p.Age++
		if p.Alive() {
			alive = append(alive, p)
		}
	}
	// Release stale tail entries
	for i := len(alive); i < len(particles); i++ {
		particles[i] = components.Particle{}
	}
	return alive
}
