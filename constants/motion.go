package constants

// Creature placement and movement, in world units
const (
	OtterStartX = 300.0
	OtterStartY = 250.0

	// OtterSpeed is the distance covered per frame while seeking a target
	OtterSpeed = 2.0

	// ArrivalEpsilon is the distance at or under which the otter stops moving
	ArrivalEpsilon = 1.0

	// ItemReachDistance is the proximity at which an apple or ball is taken
	ItemReachDistance = 20.0
)

// Wander behavior
const (
	// WanderIntervalFrames is how long a wander target is kept before re-rolling
	WanderIntervalFrames = 120

	// WanderMargin is the inset from the arena's top/left edge
	WanderMargin = 50

	// WanderFarMargin is the inset from the arena's right/bottom edge (sprite room)
	WanderFarMargin = 100

	WanderMinX = WanderMargin
	WanderMaxX = ArenaWidth - WanderFarMargin
	WanderMinY = WanderMargin
	WanderMaxY = ArenaHeight - WanderFarMargin
)
