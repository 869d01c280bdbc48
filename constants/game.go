package constants

import "time"

// Game Loop Timing Constants
const (
	// FrameInterval is the simulation and render interval (~60 FPS)
	FrameInterval = 16 * time.Millisecond

	// FramesPerSecond is the nominal frame cadence the per-frame rates are tuned for
	FramesPerSecond = 60

	// EventQueueSize is the buffer between the terminal poller and the frame loop
	EventQueueSize = 256
)

// Arena is the simulated play field in world units
const (
	ArenaWidth  = 800
	ArenaHeight = 600
)
