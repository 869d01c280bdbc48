package systems

import (
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/lixenwraith/otterpet/components"
	"github.com/lixenwraith/otterpet/engine"
	"github.com/lixenwraith/otterpet/input"
)

// Helper functions for system tests

// testRig bundles a game wired the same way the binary wires it
type testRig struct {
	game        *engine.Game
	world       *engine.World
	particles   *ParticleSystem
	interaction *InteractionSystem
}

// newTestRig creates a game with every simulation system and no audio player
func newTestRig(t *testing.T) *testRig {
	t.Helper()
	log := zaptest.NewLogger(t)
	world := engine.NewTestWorld()
	game := engine.NewGame(world, log)

	particles := NewParticleSystem()
	interaction := NewInteractionSystem(particles, log)

	game.AddSystem(NewMoodSystem())
	game.AddSystem(NewMotionSystem())
	game.AddSystem(NewGiggleSystem())
	game.AddSystem(particles)
	game.AddSystem(NewCueSystem(nil, false, log))
	game.AddSystem(interaction)

	return &testRig{
		game:        game,
		world:       world,
		particles:   particles,
		interaction: interaction,
	}
}

// countingRand wraps a seeded source and counts Intn draws
type countingRand struct {
	engine.Rand
	intn int
}

func (r *countingRand) Intn(n int) int {
	r.intn++
	return r.Rand.Intn(n)
}

func vec(x, y float64) components.Vec2 {
	return components.Vec2{X: x, Y: y}
}

func rightClick(x, y float64) input.Event {
	return input.NewButtonDown(input.ButtonSecondary, vec(x, y))
}

func leftClick(x, y float64) input.Event {
	return input.NewButtonDown(input.ButtonPrimary, vec(x, y))
}

func leftRelease() input.Event {
	return input.NewButtonUp(input.ButtonPrimary)
}

func moveTo(x, y float64) input.Event {
	return input.NewMove(vec(x, y))
}
