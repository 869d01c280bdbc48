// @focus: #game { motion, wander }
package systems

import (
	"github.com/lixenwraith/otterpet/components"
	"github.com/lixenwraith/otterpet/constants"
	"github.com/lixenwraith/otterpet/engine"
)

// targetKind tags what the otter is currently seeking
type targetKind uint8

const (
	targetNone targetKind = iota
	targetApple
	targetBall
	targetWander
)

// MotionSystem moves the otter toward its current target
// Priority: pending apple, pending ball, wander target while happy, else hold
type MotionSystem struct{}

// NewMotionSystem creates the motion controller
func NewMotionSystem() *MotionSystem {
	return &MotionSystem{}
}

// Priority returns the system's priority (after mood)
func (s *MotionSystem) Priority() int {
	return constants.PriorityMotion
}

// Update selects a target, steps toward it and resolves item arrival
func (s *MotionSystem) Update(world *engine.World) {
	kind, target := selectTarget(world)
	if kind == targetNone {
		return
	}

	world.Position = Step(world.Position, target, constants.OtterSpeed)

	if kind == targetWander {
		return
	}
	if target.Sub(world.Position).Len() >= constants.ItemReachDistance {
		return
	}

	switch kind {
	case targetApple:
		world.Apple = nil
		ConsumeApple(&world.Stats)
	case targetBall:
		world.Ball = nil
		PlayBall(&world.Stats)
	}
}

// Settle primes an expired wander timer while happy so the next frame re-rolls
func (s *MotionSystem) Settle(world *engine.World) {
	if world.Mood == components.MoodHappy && world.WanderTimer <= 0 {
		world.WanderTimer = 1
	}
}

// selectTarget applies the target priority; the wander timer only runs while wandering
func selectTarget(world *engine.World) (targetKind, components.Vec2) {
	switch {
	case world.Apple != nil:
		return targetApple, *world.Apple
	case world.Ball != nil:
		return targetBall, *world.Ball
	case world.Mood == components.MoodHappy:
		world.WanderTimer--
		if world.WanderTimer <= 0 {
			world.WanderTimer = constants.WanderIntervalFrames
			world.WanderTarget = RollWanderTarget(world.Rand)
		}
		return targetWander, world.WanderTarget
	default:
		return targetNone, components.Vec2{}
	}
}

// RollWanderTarget picks a uniform integer point in the wander rectangle, bounds inclusive
func RollWanderTarget(rng engine.Rand) components.Vec2 {
	x := constants.WanderMinX + rng.Intn(constants.WanderMaxX-constants.WanderMinX+1)
	y := constants.WanderMinY + rng.Intn(constants.WanderMaxY-constants.WanderMinY+1)
	return components.Vec2{X: float64(x), Y: float64(y)}
}

// Step moves pos by speed along the direction to target
// Within ArrivalEpsilon the position is held
func Step(pos, target components.Vec2, speed float64) components.Vec2 {
	d := target.Sub(pos)
	dist := d.Len()
	if dist <= constants.ArrivalEpsilon {
		return pos
	}
	return pos.Add(d.Scale(speed / dist))
}
