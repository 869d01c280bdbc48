package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/otterpet/components"
)

// gridMapper maps a cell to 10x20 world units
type gridMapper struct{}

func (gridMapper) ToWorld(x, y int) components.Vec2 {
	return components.Vec2{X: float64(x * 10), Y: float64(y * 20)}
}

func TestTranslatePressAndRelease(t *testing.T) {
	tr := NewTranslator(gridMapper{})

	got := tr.Translate(tcell.NewEventMouse(10, 5, tcell.Button1, tcell.ModNone))
	want := []Event{
		NewMove(components.Vec2{X: 100, Y: 100}),
		NewButtonDown(ButtonPrimary, components.Vec2{X: 100, Y: 100}),
	}
	assertEvents(t, "press", got, want)

	got = tr.Translate(tcell.NewEventMouse(10, 5, tcell.ButtonNone, tcell.ModNone))
	assertEvents(t, "release", got, []Event{NewButtonUp(ButtonPrimary)})
}

func TestTranslateSecondaryButton(t *testing.T) {
	tr := NewTranslator(gridMapper{})

	got := tr.Translate(tcell.NewEventMouse(2, 3, tcell.Button2, tcell.ModNone))
	want := []Event{
		NewMove(components.Vec2{X: 20, Y: 60}),
		NewButtonDown(ButtonSecondary, components.Vec2{X: 20, Y: 60}),
	}
	assertEvents(t, "right press", got, want)
}

func TestTranslateDragEmitsMovesOnly(t *testing.T) {
	tr := NewTranslator(gridMapper{})
	tr.Translate(tcell.NewEventMouse(0, 0, tcell.Button1, tcell.ModNone))

	got := tr.Translate(tcell.NewEventMouse(1, 0, tcell.Button1, tcell.ModNone))
	assertEvents(t, "drag", got, []Event{NewMove(components.Vec2{X: 10, Y: 0})})

	// Same cell, same buttons: nothing new to report
	got = tr.Translate(tcell.NewEventMouse(1, 0, tcell.Button1, tcell.ModNone))
	assertEvents(t, "repeat", got, nil)
}

func TestTranslateIgnoresWheelAndMiddle(t *testing.T) {
	tr := NewTranslator(gridMapper{})
	tr.Translate(tcell.NewEventMouse(0, 0, tcell.ButtonNone, tcell.ModNone))

	got := tr.Translate(tcell.NewEventMouse(0, 0, tcell.WheelUp|tcell.Button3, tcell.ModNone))
	assertEvents(t, "wheel", got, nil)
}

func TestTranslateQuitKeys(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		quit bool
	}{
		{"Escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), true},
		{"Ctrl+C", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), true},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), true},
		{"Other rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTranslator(gridMapper{})
			got := tr.Translate(tt.ev)
			if tt.quit {
				assertEvents(t, tt.name, got, []Event{NewQuit()})
			} else {
				assertEvents(t, tt.name, got, nil)
			}
		})
	}
}

func TestResetForgetsButtons(t *testing.T) {
	tr := NewTranslator(gridMapper{})
	tr.Translate(tcell.NewEventMouse(0, 0, tcell.Button1, tcell.ModNone))
	tr.Reset()

	// Held button is reported as a fresh press after reset
	got := tr.Translate(tcell.NewEventMouse(0, 0, tcell.Button1, tcell.ModNone))
	want := []Event{
		NewMove(components.Vec2{}),
		NewButtonDown(ButtonPrimary, components.Vec2{}),
	}
	assertEvents(t, "after reset", got, want)
}

func assertEvents(t *testing.T, label string, got, want []Event) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: expected %d events %+v, got %d %+v", label, len(want), want, len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("%s: event %d expected %+v, got %+v", label, i, want[i], got[i])
		}
	}
}
