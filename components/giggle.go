package components

// GiggleComponent is the transient reaction to being touched during a bath
type GiggleComponent struct {
	Active bool
	Frame  int // Frames since (re)activation, drives the animation cell
	Timer  int // Frames remaining
}
