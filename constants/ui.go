package constants

// Sprite footprints in world units
const (
	OtterSize = 80
	ItemSize  = 40
)

// Context menu geometry in world units
const (
	MenuIconSize    = 50
	MenuIconSpacing = 10

	// MenuSlotStride is the vertical distance between consecutive icon slots
	MenuSlotStride = MenuIconSize + MenuIconSpacing
)

// Speech bubble placement relative to the otter position, in world units
const (
	SpeechOffsetX = 40
	SpeechOffsetY = -50
	SpeechWidth   = 160
	SpeechHeight  = 40
)

// Speech text
const (
	SpeechHungry = "I'm hungry!"
	SpeechSleepy = "I'm sleepy..."
)

// Default terminal cell size in world units
const (
	DefaultCellWidth  = 10
	DefaultCellHeight = 20
)
