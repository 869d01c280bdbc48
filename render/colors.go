package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/otterpet/components"
)

// Palette
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbWater      = tcell.NewRGBColor(30, 40, 62)    // Pond ripple
	RgbText       = tcell.NewRGBColor(255, 255, 255) // White

	RgbOtterBody   = tcell.NewRGBColor(150, 100, 60)  // Warm brown
	RgbOtterHungry = tcell.NewRGBColor(230, 150, 60)  // Orange tint
	RgbOtterSleepy = tcell.NewRGBColor(140, 140, 190) // Dusky lavender
	RgbOtterGiggle = tcell.NewRGBColor(255, 190, 120) // Blush

	RgbApple = tcell.NewRGBColor(220, 50, 50)  // Red
	RgbBall  = tcell.NewRGBColor(80, 160, 255) // Blue

	RgbFoamDim    = tcell.NewRGBColor(170, 200, 220) // Small bubbles
	RgbFoamBright = tcell.NewRGBColor(235, 250, 255) // Large bubbles

	RgbSpeechBg   = tcell.NewRGBColor(240, 240, 240) // Bubble fill
	RgbSpeechText = tcell.NewRGBColor(20, 20, 20)    // Bubble text

	RgbHudHunger = tcell.NewRGBColor(255, 165, 0)  // Orange
	RgbHudEnergy = tcell.NewRGBColor(0, 200, 0)    // Green
	RgbHudLabel  = tcell.NewRGBColor(180, 180, 180) // Gray

	RgbMenuBg     = tcell.NewRGBColor(50, 50, 70)    // Panel
	RgbMenuBorder = tcell.NewRGBColor(180, 180, 220) // Frame
	RgbMenuIcon   = tcell.NewRGBColor(255, 255, 0)   // Yellow
)

// MoodColor returns the sprite tint for a mood
func MoodColor(mood components.Mood) tcell.Color {
	switch mood {
	case components.MoodHungry:
		return RgbOtterHungry
	case components.MoodSleepy:
		return RgbOtterSleepy
	default:
		return RgbOtterBody
	}
}
