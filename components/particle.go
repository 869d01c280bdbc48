// @focus: #vfx { foam }
package components

// Particle is a short-lived foam bubble
type Particle struct {
	Pos      Vec2
	Age      int
	Lifetime int
	Scale    float64 // Render scale in [ParticleScaleMin, ParticleScaleMax]
	Variant  int     // Bubble look index
}

// Alive reports whether the particle has not reached its lifetime
func (p Particle) Alive() bool {
	return p.Age < p.Lifetime
}
