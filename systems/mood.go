// @focus: #game { mood, stats }
package systems

import (
	"github.com/lixenwraith/otterpet/components"
	"github.com/lixenwraith/otterpet/constants"
	"github.com/lixenwraith/otterpet/engine"
)

var (
	statMin = components.StatOf(constants.StatMin)
	statMax = components.StatOf(constants.StatMax)

	sleepyBelow = components.StatOf(constants.SleepyEnergyBelow)
	hungryAbove = components.StatOf(constants.HungryAbove)

	hungerDrift = components.StatOf(constants.HungerDriftPerFrame)
	energyDrift = components.StatOf(constants.EnergyDriftPerFrame)
)

// MoodSystem owns the stat model: mood recompute at frame start, drift at frame end
type MoodSystem struct{}

// NewMoodSystem creates the stat model system
func NewMoodSystem() *MoodSystem {
	return &MoodSystem{}
}

// Priority returns the system's priority (first, motion depends on mood)
func (s *MoodSystem) Priority() int {
	return constants.PriorityMood
}

// Update recomputes the mood from the stats
func (s *MoodSystem) Update(world *engine.World) {
	UpdateMood(world)
}

// Settle applies one frame of passive drift
func (s *MoodSystem) Settle(world *engine.World) {
	ApplyDrift(&world.Stats, 1)
}

// DeriveMood maps stats to a mood; low energy wins over hunger
func DeriveMood(stats components.Stats) components.Mood {
	switch {
	case stats.Energy < sleepyBelow:
		return components.MoodSleepy
	case stats.Hunger > hungryAbove:
		return components.MoodHungry
	default:
		return components.MoodHappy
	}
}

// UpdateMood consumes any forced mood and derives the mood from the thresholds
// A forced mood therefore lasts until the next recompute only
func UpdateMood(world *engine.World) {
	world.Forced = components.ForcedMood{}
	world.Mood = DeriveMood(world.Stats)
}

// ApplyDrift adds passive hunger and drains energy for the given frames, unclamped
func ApplyDrift(stats *components.Stats, frames int) {
	n := components.Stat(frames)
	stats.Hunger += hungerDrift * n
	stats.Energy -= energyDrift * n
}

// ConsumeApple relieves hunger, floored at the stat minimum
func ConsumeApple(stats *components.Stats) {
	stats.Hunger = max(statMin, stats.Hunger-components.StatOf(constants.AppleHungerRelief))
}

// PlayBall spends energy, floored at the stat minimum
func PlayBall(stats *components.Stats) {
	stats.Energy = max(statMin, stats.Energy-components.StatOf(constants.BallEnergyCost))
}

// Sleep restores energy, capped at the stat maximum, and forces the sleepy mood
func Sleep(world *engine.World) {
	world.Stats.Energy = min(statMax, world.Stats.Energy+components.StatOf(constants.SleepEnergyGain))
	world.ForceMood(components.MoodSleepy)
}
