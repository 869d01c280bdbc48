// @focus: #game { mood, stats }
package components

import (
	"math"

	"github.com/lixenwraith/otterpet/constants"
)

// Mood is the otter's derived emotional state
type Mood uint8

const (
	MoodHappy Mood = iota
	MoodHungry
	MoodSleepy
)

// String returns the lowercase mood name, also used as the sprite key
func (m Mood) String() string {
	switch m {
	case MoodHappy:
		return "happy"
	case MoodHungry:
		return "hungry"
	case MoodSleepy:
		return "sleepy"
	default:
		return "unknown"
	}
}

// Speech returns the bubble text for the mood, empty when no bubble is shown
func (m Mood) Speech() string {
	switch m {
	case MoodHungry:
		return constants.SpeechHungry
	case MoodSleepy:
		return constants.SpeechSleepy
	default:
		return ""
	}
}

// Stat is a need level in hundredths of a point
// Fixed point keeps long runs of per-frame drift exact at threshold boundaries
type Stat int64

// statScale is the number of Stat units per point
const statScale = 100

// StatOf converts points to a Stat, rounding to the nearest hundredth
func StatOf(points float64) Stat {
	return Stat(math.Round(points * statScale))
}

// Float returns the level in points
func (s Stat) Float() float64 {
	return float64(s) / statScale
}

// Int returns the level in whole points, truncated toward zero
func (s Stat) Int() int {
	return int(s / statScale)
}

// Clamp bounds the level to [lo, hi]
func (s Stat) Clamp(lo, hi Stat) Stat {
	if s < lo {
		return lo
	}
	if s > hi {
		return hi
	}
	return s
}

// Stats holds the two decaying needs
// Event adjustments clamp to [StatMin, StatMax]; passive drift does not
type Stats struct {
	Hunger Stat
	Energy Stat
}

// ForcedMood is a one-frame mood override consumed by the next mood recompute
type ForcedMood struct {
	Active bool
	Mood   Mood
}
