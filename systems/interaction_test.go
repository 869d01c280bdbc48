package systems

import (
	"testing"

	"github.com/lixenwraith/otterpet/components"
	"github.com/lixenwraith/otterpet/engine"
	"github.com/lixenwraith/otterpet/input"
)

// TestScenarioMenuGivesApple opens the menu and picks the first slot at the same point
func TestScenarioMenuGivesApple(t *testing.T) {
	rig := newTestRig(t)
	w := rig.world

	rig.game.Handle(rightClick(100, 100))
	if !w.Menu.Visible || w.Menu.Anchor != vec(100, 100) {
		t.Fatalf("Expected menu open at (100,100), got visible=%v anchor=%v", w.Menu.Visible, w.Menu.Anchor)
	}
	if w.InteractionState() != engine.StateMenuOpen {
		t.Errorf("Expected menu-open state, got %s", w.InteractionState())
	}

	rig.game.Handle(leftClick(100, 100))
	if w.Menu.Visible {
		t.Error("Expected menu closed")
	}
	if w.Apple == nil || *w.Apple != vec(100, 100) {
		t.Fatalf("Expected apple at (100,100), got %v", w.Apple)
	}
}

func TestMenuSlotAt(t *testing.T) {
	menu := components.ContextMenu{Visible: true, Anchor: vec(100, 100), Entries: components.DefaultMenuEntries}

	tests := []struct {
		name     string
		pos      components.Vec2
		wantSlot int
		wantHit  bool
	}{
		{"Slot 0 origin", vec(100, 100), 0, true},
		{"Slot 0 inner corner", vec(149.9, 149.9), 0, true},
		{"Slot 0 right edge excluded", vec(150, 120), 0, false},
		{"Gap between 0 and 1", vec(120, 155), 0, false},
		{"Slot 1", vec(120, 160), 1, true},
		{"Slot 2", vec(100, 220), 2, true},
		{"Slot 3", vec(149, 329), 3, true},
		{"Below last slot", vec(120, 330), 0, false},
		{"Left of anchor", vec(99, 110), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot, hit := MenuSlotAt(menu, tt.pos)
			if hit != tt.wantHit || (hit && slot != tt.wantSlot) {
				t.Errorf("MenuSlotAt(%v) = (%d, %v), want (%d, %v)", tt.pos, slot, hit, tt.wantSlot, tt.wantHit)
			}
		})
	}
}

func TestMenuMissClosesWithoutAction(t *testing.T) {
	rig := newTestRig(t)
	w := rig.world
	target := w.WanderTarget

	rig.game.Handle(rightClick(100, 100))
	rig.game.Handle(leftClick(500, 500))

	if w.Menu.Visible {
		t.Error("Expected menu closed")
	}
	if w.Apple != nil || w.Ball != nil || w.Dragging {
		t.Error("Expected no action from a miss")
	}
	if w.WanderTarget != target {
		t.Error("A click that closes the menu must not set a move target")
	}
}

func TestRightClickReanchorsOpenMenu(t *testing.T) {
	rig := newTestRig(t)
	rig.game.Handle(rightClick(100, 100))
	rig.game.Handle(rightClick(400, 300))

	if !rig.world.Menu.Visible || rig.world.Menu.Anchor != vec(400, 300) {
		t.Errorf("Expected menu re-anchored at (400,300), got %v", rig.world.Menu.Anchor)
	}
}

func TestLeftClickSetsWanderTarget(t *testing.T) {
	rig := newTestRig(t)
	rig.game.Handle(leftClick(640, 90))

	if rig.world.WanderTarget != vec(640, 90) {
		t.Errorf("Expected wander target (640,90), got %v", rig.world.WanderTarget)
	}
}

func TestMenuPlayBall(t *testing.T) {
	rig := newTestRig(t)
	rig.game.Handle(rightClick(100, 100))
	rig.game.Handle(leftClick(125, 170))

	if rig.world.Ball == nil || *rig.world.Ball != vec(125, 170) {
		t.Fatalf("Expected ball at click point, got %v", rig.world.Ball)
	}
	if rig.world.Apple != nil {
		t.Error("Unexpected apple")
	}
}

func TestMenuGoSleep(t *testing.T) {
	rig := newTestRig(t)
	w := rig.world
	w.WanderTimer = 77

	rig.game.Handle(rightClick(100, 100))
	rig.game.Handle(leftClick(110, 290))

	if w.Stats.Energy != components.StatOf(90) {
		t.Errorf("Expected energy 90, got %v", w.Stats.Energy.Float())
	}
	if w.Mood != components.MoodSleepy {
		t.Errorf("Expected sleepy, got %s", w.Mood)
	}
	if w.WanderTimer != 0 {
		t.Errorf("Expected wander timer reset, got %d", w.WanderTimer)
	}

	// Forced sleepy keeps Settle from priming the timer
	rig.game.Settle()
	if w.WanderTimer != 0 {
		t.Errorf("Expected timer left at 0 while sleepy, got %d", w.WanderTimer)
	}

	// Energy 90 derives happy on the next frame
	rig.game.Advance()
	if w.Mood != components.MoodHappy {
		t.Errorf("Expected override consumed, got %s", w.Mood)
	}
}

func TestBathFlow(t *testing.T) {
	rig := newTestRig(t)
	w := rig.world
	w.Stats.Hunger = components.StatOf(90)
	w.Mood = components.MoodHungry

	rig.game.Handle(rightClick(100, 100))
	rig.game.Handle(leftClick(100, 225))
	if !w.Dragging || w.InteractionState() != engine.StateDragging {
		t.Fatalf("Expected dragging after bath, state %s", w.InteractionState())
	}

	// Outside the otter: foam only
	rig.game.Handle(moveTo(10, 10))
	if len(w.Particles) != 1 {
		t.Fatalf("Expected 1 particle, got %d", len(w.Particles))
	}
	if w.Giggle.Active || w.Mood != components.MoodHungry {
		t.Error("Scrubbing outside the otter must not giggle")
	}

	// Inside the otter: foam, giggle and forced happy
	rig.game.Handle(moveTo(320, 270))
	if len(w.Particles) != 2 {
		t.Fatalf("Expected 2 particles, got %d", len(w.Particles))
	}
	if w.Particles[1].Pos != vec(320, 270) {
		t.Errorf("Expected particle at pointer, got %v", w.Particles[1].Pos)
	}
	if !w.Giggle.Active || w.Giggle.Timer != 20 || w.Giggle.Frame != 0 {
		t.Errorf("Expected fresh giggle, got %+v", w.Giggle)
	}
	if w.Mood != components.MoodHappy || !w.Forced.Active {
		t.Errorf("Expected forced happy, got %s", w.Mood)
	}

	// Secondary release does not end the bath
	rig.game.Handle(input.NewButtonUp(input.ButtonSecondary))
	if !w.Dragging {
		t.Error("Secondary release ended the drag")
	}

	rig.game.Handle(leftRelease())
	if w.Dragging {
		t.Error("Expected primary release to end the drag")
	}

	rig.game.Handle(moveTo(320, 270))
	if len(w.Particles) != 2 {
		t.Errorf("Expected no foam after the bath, got %d particles", len(w.Particles))
	}
}

func TestRescrubRestartsGiggle(t *testing.T) {
	rig := newTestRig(t)
	w := rig.world
	w.Dragging = true
	w.WanderTarget = w.Position
	w.WanderTimer = 1000

	rig.game.Handle(moveTo(310, 260))
	for i := 0; i < 8; i++ {
		rig.game.Advance()
	}
	if w.Giggle.Timer != 12 {
		t.Fatalf("Expected timer 12 after 8 frames, got %d", w.Giggle.Timer)
	}

	rig.game.Handle(moveTo(305, 255))
	if w.Giggle.Timer != 20 || w.Giggle.Frame != 0 {
		t.Errorf("Expected restarted giggle, got %+v", w.Giggle)
	}
}

func TestRightClickWhileDraggingOpensMenu(t *testing.T) {
	rig := newTestRig(t)
	w := rig.world
	w.Dragging = true

	rig.game.Handle(rightClick(200, 200))

	if w.InteractionState() != engine.StateMenuOpen {
		t.Errorf("Expected menu to take precedence, got %s", w.InteractionState())
	}
	if !w.Dragging {
		t.Error("Opening the menu must not end the drag")
	}
}

func TestIdleMoveIgnored(t *testing.T) {
	rig := newTestRig(t)
	rig.game.Handle(moveTo(320, 270))

	if len(rig.world.Particles) != 0 || rig.world.Giggle.Active {
		t.Error("Pointer move outside a bath must be ignored")
	}
}
