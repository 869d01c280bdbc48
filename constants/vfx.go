package constants

// Foam particles spawned while bathing
const (
	ParticleLifetime = 20
	ParticleScaleMin = 0.8
	ParticleScaleMax = 1.2

	// ParticleVariants is the number of bubble looks a particle can pick from
	ParticleVariants = 3

	// ParticleBaseSize is the unscaled bubble edge in world units
	ParticleBaseSize = 20
)

// Giggle reaction after a bath touch
const (
	GiggleDurationFrames = 20

	// GiggleFramesPerCell is how many frames each giggle animation cell is held
	GiggleFramesPerCell = 5

	// GiggleAnimationCells is the number of distinct giggle sprites
	GiggleAnimationCells = 3
)
