package engine

// TestSeed is the fixed seed used by NewTestWorld
const TestSeed = 42

// NewTestWorld creates a world in the initial state with a deterministic rand source
// and no systems registered
func NewTestWorld() *World {
	return NewWorld(NewRand(TestSeed))
}
