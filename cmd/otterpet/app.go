package main

import (
	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/otterpet/config"
	"github.com/lixenwraith/otterpet/engine"
	"github.com/lixenwraith/otterpet/input"
	"github.com/lixenwraith/otterpet/render"
	"github.com/lixenwraith/otterpet/render/renderers"
	"github.com/lixenwraith/otterpet/systems"
)

// app wires the simulation, the terminal and the input translator for one session
type app struct {
	screen       tcell.Screen
	game         *engine.Game
	view         render.Viewport
	translator   *input.Translator
	orchestrator *render.RenderOrchestrator
	log          *zap.Logger
}

// newApp builds the game with every system registered; player may be nil
func newApp(screen tcell.Screen, cfg *config.Config, rng engine.Rand, player systems.CuePlayer, log *zap.Logger) *app {
	world := engine.NewWorld(rng)
	game := engine.NewGame(world, log)

	particles := systems.NewParticleSystem()
	game.AddSystem(systems.NewMoodSystem())
	game.AddSystem(systems.NewMotionSystem())
	game.AddSystem(systems.NewGiggleSystem())
	game.AddSystem(particles)
	game.AddSystem(systems.NewCueSystem(player, cfg.Audio.CueOnMoodChange, log))
	game.AddSystem(systems.NewInteractionSystem(particles, log))

	view := render.Viewport{CellWidth: cfg.Display.CellWidth, CellHeight: cfg.Display.CellHeight}

	orchestrator := render.NewRenderOrchestrator(screen)
	renderers.RegisterAll(orchestrator)

	return &app{
		screen:       screen,
		game:         game,
		view:         view,
		translator:   input.NewTranslator(view),
		orchestrator: orchestrator,
		log:          log,
	}
}

// frame runs one full frame: update, draw, then the queued events, then settle
// Returns false when a quit was requested
func (a *app) frame(events []tcell.Event) bool {
	a.game.Advance()
	a.draw()

	for _, ev := range events {
		if rs, ok := ev.(*tcell.EventResize); ok {
			w, h := rs.Size()
			a.orchestrator.Resize(w, h)
			a.log.Debug("resize", zap.Int("width", w), zap.Int("height", h))
			continue
		}
		for _, ie := range a.translator.Translate(ev) {
			if !a.game.Handle(ie) {
				return false
			}
		}
	}

	a.game.Settle()
	return true
}

func (a *app) draw() {
	w, h := a.orchestrator.Size()
	ctx := render.NewRenderContext(a.game.Snapshot(), a.view, w, h)
	a.orchestrator.RenderFrame(ctx)
}
