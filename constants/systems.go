package constants

// System Priorities (lower runs first within a frame)
const (
	PriorityMood     = 10
	PriorityMotion   = 20
	PriorityGiggle   = 30
	PriorityParticle = 40
	PriorityCue      = 50

	// PriorityInteraction orders the input handler; it has no per-frame work
	PriorityInteraction = 60
)
