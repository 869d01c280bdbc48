package renderers

import "github.com/lixenwraith/otterpet/render"

// RegisterAll registers every layer at its priority
func RegisterAll(o *render.RenderOrchestrator) {
	o.Register(NewBackgroundRenderer(), render.PriorityBackground)
	o.Register(NewItemRenderer(), render.PriorityItems)
	o.Register(NewOtterRenderer(), render.PriorityCreature)
	o.Register(NewParticleRenderer(), render.PriorityParticle)
	o.Register(NewSpeechRenderer(), render.PrioritySpeech)
	o.Register(NewHudRenderer(), render.PriorityUI)
	o.Register(NewMenuRenderer(), render.PriorityOverlay)
}
