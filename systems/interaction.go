// @focus: #interact { menu, bath, pointer }
package systems

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/otterpet/components"
	"github.com/lixenwraith/otterpet/constants"
	"github.com/lixenwraith/otterpet/engine"
	"github.com/lixenwraith/otterpet/input"
)

// InteractionSystem maps pointer events to menu, item, bath and move-to-click transitions
// It has no per-frame work; all state changes happen in HandleEvent
type InteractionSystem struct {
	particles *ParticleSystem
	log       *zap.Logger
}

// NewInteractionSystem creates the interaction state machine
// Bath strokes spawn foam through the given particle system
func NewInteractionSystem(particles *ParticleSystem, log *zap.Logger) *InteractionSystem {
	if log == nil {
		log = zap.NewNop()
	}
	return &InteractionSystem{
		particles: particles,
		log:       log,
	}
}

// Priority returns the system's priority
func (s *InteractionSystem) Priority() int {
	return constants.PriorityInteraction
}

// Update implements System interface (no tick-based logic)
func (s *InteractionSystem) Update(world *engine.World) {}

// HandleEvent applies one pointer event
func (s *InteractionSystem) HandleEvent(world *engine.World, ev input.Event) {
	switch ev.Type {
	case input.EventButtonDown:
		s.handleButtonDown(world, ev)
	case input.EventButtonUp:
		if ev.Button == input.ButtonPrimary && world.Dragging {
			world.Dragging = false
			s.log.Debug("bath ended", zap.Int("particles", len(world.Particles)))
		}
	case input.EventMove:
		if world.Dragging {
			s.scrub(world, ev.Pos)
		}
	}
}

func (s *InteractionSystem) handleButtonDown(world *engine.World, ev input.Event) {
	switch ev.Button {
	case input.ButtonSecondary:
		world.Menu.Visible = true
		world.Menu.Anchor = ev.Pos
	case input.ButtonPrimary:
		if !world.Menu.Visible {
			// Move-to-click: only followed while the otter is happy
			world.WanderTarget = ev.Pos
			return
		}
		world.Menu.Visible = false
		slot, ok := MenuSlotAt(world.Menu, ev.Pos)
		if !ok {
			return
		}
		s.dispatch(world, world.Menu.Entries[slot].Action, ev.Pos)
	}
}

// dispatch runs a menu action chosen at pos
func (s *InteractionSystem) dispatch(world *engine.World, action components.MenuAction, pos components.Vec2) {
	s.log.Debug("menu action", zap.Uint8("action", uint8(action)), zap.Float64("x", pos.X), zap.Float64("y", pos.Y))

	switch action {
	case components.ActionGiveApple:
		p := pos
		world.Apple = &p
	case components.ActionPlayBall:
		p := pos
		world.Ball = &p
	case components.ActionGiveBath:
		world.Dragging = true
	case components.ActionGoSleep:
		Sleep(world)
		world.WanderTimer = 0
	}
}

// scrub spawns foam at pos and starts a giggle when the otter is touched
func (s *InteractionSystem) scrub(world *engine.World, pos components.Vec2) {
	s.particles.Spawn(world, pos)

	if !world.OtterBounds().Contains(pos) {
		return
	}
	world.ForceMood(components.MoodHappy)
	world.Giggle = components.GiggleComponent{
		Active: true,
		Frame:  0,
		Timer:  constants.GiggleDurationFrames,
	}
}

// MenuSlotRect returns the hit rectangle of slot i for a menu anchored at anchor
func MenuSlotRect(anchor components.Vec2, i int) components.Rect {
	return components.Rect{
		X: anchor.X,
		Y: anchor.Y + float64(i*constants.MenuSlotStride),
		W: constants.MenuIconSize,
		H: constants.MenuIconSize,
	}
}

// MenuSlotAt hit-tests pos against the menu's icon stack
// The spacing between icons is not part of any slot
func MenuSlotAt(menu components.ContextMenu, pos components.Vec2) (int, bool) {
	for i := range menu.Entries {
		if MenuSlotRect(menu.Anchor, i).Contains(pos) {
			return i, true
		}
	}
	return 0, false
}
