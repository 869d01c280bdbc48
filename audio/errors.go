package audio

import "errors"

// Sentinel errors
var (
	ErrNotInitialized = errors.New("audio not initialized")
	ErrUnknownMood    = errors.New("no sound for mood")
)
