// @focus: #constants { gameplay }
package constants

// Stat bounds and initial values
const (
	StatMin = 0.0
	StatMax = 100.0

	InitialHunger = 50.0
	InitialEnergy = 50.0
)

// Passive drift applied once per frame, never clamped
const (
	HungerDriftPerFrame = 0.02
	EnergyDriftPerFrame = 0.01
)

// Mood thresholds
const (
	// SleepyEnergyBelow puts the otter to sleep when energy drops under it (checked first)
	SleepyEnergyBelow = 30.0

	// HungryAbove marks the otter hungry when hunger strictly exceeds it
	HungryAbove = 70.0
)

// Event adjustments, clamped to [StatMin, StatMax]
const (
	AppleHungerRelief = 30.0
	BallEnergyCost    = 15.0
	SleepEnergyGain   = 40.0
)

// Mood cue
const (
	// MoodCueIntervalFrames is how often the current mood sound is requested
	MoodCueIntervalFrames = 300
)
