// @focus: #interact { menu }
package components

// MenuAction is the action dispatched by a context menu slot
type MenuAction uint8

const (
	ActionNone MenuAction = iota
	ActionGiveApple
	ActionPlayBall
	ActionGiveBath
	ActionGoSleep
)

// MenuEntry is one icon slot of the context menu
type MenuEntry struct {
	Label  string
	Action MenuAction
	Icon   string
}

// MenuEntryCount is the fixed number of context menu slots
const MenuEntryCount = 4

// DefaultMenuEntries is the fixed, ordered context menu
var DefaultMenuEntries = [MenuEntryCount]MenuEntry{
	{Label: "Give Apple", Action: ActionGiveApple, Icon: "icon_apple"},
	{Label: "Play Ball", Action: ActionPlayBall, Icon: "icon_ball"},
	{Label: "Give Bath", Action: ActionGiveBath, Icon: "icon_bath"},
	{Label: "Go Sleep", Action: ActionGoSleep, Icon: "icon_sleep"},
}

// ContextMenu is the right-click icon stack
// Visible only between a secondary press and the next primary press
type ContextMenu struct {
	Visible bool
	Anchor  Vec2
	Entries [MenuEntryCount]MenuEntry
}
