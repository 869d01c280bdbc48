package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/otterpet/render"
)

// Bubble glyphs by variant
var (
	smallBubbles = [...]rune{'°', 'o', '∘'}
	largeBubbles = [...]rune{'O', '◯', '0'}
)

// ParticleRenderer draws foam bubbles
type ParticleRenderer struct{}

// NewParticleRenderer creates the foam renderer
func NewParticleRenderer() *ParticleRenderer {
	return &ParticleRenderer{}
}

// Render draws every live particle, scale above 1 selects the large glyph set
func (r *ParticleRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	for _, p := range ctx.Snap.Particles {
		x, y, visible := ctx.WorldToScreen(p.Pos.X, p.Pos.Y)
		if !visible {
			continue
		}
		glyph, fg := bubbleGlyph(p.Variant, p.Scale)
		buf.SetFgOnly(x, y, glyph, fg, tcell.AttrNone)
	}
}

func bubbleGlyph(variant int, scale float64) (rune, tcell.Color) {
	i := variant % len(smallBubbles)
	if i < 0 {
		i = 0
	}
	if scale > 1 {
		return largeBubbles[i], render.RgbFoamBright
	}
	return smallBubbles[i], render.RgbFoamDim
}
