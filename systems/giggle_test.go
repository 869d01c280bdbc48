package systems

import (
	"testing"

	"github.com/lixenwraith/otterpet/components"
	"github.com/lixenwraith/otterpet/constants"
	"github.com/lixenwraith/otterpet/engine"
)

func TestGiggleRunsForDuration(t *testing.T) {
	w := engine.NewTestWorld()
	w.Giggle = components.GiggleComponent{Active: true, Timer: constants.GiggleDurationFrames}
	s := NewGiggleSystem()

	for i := 1; i < constants.GiggleDurationFrames; i++ {
		s.Update(w)
		if !w.Giggle.Active {
			t.Fatalf("Giggle ended after %d frames", i)
		}
		if w.Giggle.Frame != i {
			t.Errorf("Expected frame %d, got %d", i, w.Giggle.Frame)
		}
	}

	s.Update(w)
	if w.Giggle.Active {
		t.Errorf("Expected giggle to end after %d frames", constants.GiggleDurationFrames)
	}
}

func TestGiggleInactiveIsUntouched(t *testing.T) {
	w := engine.NewTestWorld()
	w.Giggle = components.GiggleComponent{Frame: 7, Timer: 0}

	NewGiggleSystem().Update(w)

	if w.Giggle.Frame != 7 || w.Giggle.Timer != 0 || w.Giggle.Active {
		t.Errorf("Inactive giggle changed: %+v", w.Giggle)
	}
}

func TestGiggleSpriteCycles(t *testing.T) {
	w := engine.NewTestWorld()
	w.Giggle = components.GiggleComponent{Active: true, Timer: constants.GiggleDurationFrames}
	s := NewGiggleSystem()

	want := []string{"giggle_1", "giggle_1", "giggle_1", "giggle_1", "giggle_2"}
	for i, key := range want {
		if got := engine.NewSnapshot(w).Sprite; got != key {
			t.Errorf("Giggle frame %d: expected %s, got %s", i, key, got)
		}
		s.Update(w)
	}
}
