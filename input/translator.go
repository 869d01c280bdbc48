// @focus: #input { mouse, translate }
package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/otterpet/components"
)

// Mapper converts a terminal cell to world coordinates
type Mapper interface {
	ToWorld(x, y int) components.Vec2
}

// trackedButtons are the tcell buttons the simulation reacts to
const trackedButtons = tcell.Button1 | tcell.Button2

// Translator turns tcell events into pointer events
// tcell reports button state, not edges, so presses and releases are derived
// by diffing the button mask against the previous mouse event
type Translator struct {
	mapper  Mapper
	buttons tcell.ButtonMask

	lastX, lastY int
	hasPos       bool
}

// NewTranslator creates a translator using the given cell mapping
func NewTranslator(m Mapper) *Translator {
	return &Translator{mapper: m}
}

// Translate converts one tcell event into zero or more pointer events
// Motion is emitted before button edges so a press lands at its own position
func (t *Translator) Translate(ev tcell.Event) []Event {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		return t.translateMouse(ev)
	case *tcell.EventKey:
		if isQuitKey(ev) {
			return []Event{NewQuit()}
		}
	}
	return nil
}

// Reset forgets the tracked button state, e.g. after focus loss
func (t *Translator) Reset() {
	t.buttons = tcell.ButtonNone
	t.hasPos = false
}

func (t *Translator) translateMouse(ev *tcell.EventMouse) []Event {
	x, y := ev.Position()
	mask := ev.Buttons() & trackedButtons
	pos := t.mapper.ToWorld(x, y)

	var out []Event
	if !t.hasPos || x != t.lastX || y != t.lastY {
		out = append(out, NewMove(pos))
		t.lastX, t.lastY = x, y
		t.hasPos = true
	}

	released := t.buttons &^ mask
	pressed := mask &^ t.buttons
	t.buttons = mask

	if released&tcell.Button1 != 0 {
		out = append(out, NewButtonUp(ButtonPrimary))
	}
	if released&tcell.Button2 != 0 {
		out = append(out, NewButtonUp(ButtonSecondary))
	}
	if pressed&tcell.Button2 != 0 {
		out = append(out, NewButtonDown(ButtonSecondary, pos))
	}
	if pressed&tcell.Button1 != 0 {
		out = append(out, NewButtonDown(ButtonPrimary, pos))
	}
	return out
}

// isQuitKey matches Escape, Ctrl+C and q
func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		r := ev.Rune()
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			return r == 'c' || r == 'C'
		}
		return r == 'q' || r == 'Q'
	}
	return false
}
