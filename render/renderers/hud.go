package renderers

import (
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/otterpet/components"
	"github.com/lixenwraith/otterpet/constants"
	"github.com/lixenwraith/otterpet/render"
)

const hudBarCells = 10

// HudRenderer draws the stat readout in the top-left corner
type HudRenderer struct{}

// NewHudRenderer creates the HUD renderer
func NewHudRenderer() *HudRenderer {
	return &HudRenderer{}
}

// Render writes "Hunger: N", "Energy: N" and "Mood: m" with stats truncated toward zero
// Bars show the stat clamped to the display range
func (r *HudRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	s := ctx.Snap.Stats

	n := buf.SetText(0, 0, "Hunger: "+strconv.Itoa(s.Hunger.Int()), render.RgbHudLabel, tcell.AttrNone)
	drawBar(buf, n+1, 0, s.Hunger, render.RgbHudHunger)

	n = buf.SetText(0, 1, "Energy: "+strconv.Itoa(s.Energy.Int()), render.RgbHudLabel, tcell.AttrNone)
	drawBar(buf, n+1, 1, s.Energy, render.RgbHudEnergy)

	buf.SetText(0, 2, "Mood: "+ctx.Snap.Mood.String(), render.MoodColor(ctx.Snap.Mood), tcell.AttrBold)
}

// drawBar renders a hudBarCells wide gauge of v over the stat range
func drawBar(buf *render.RenderBuffer, x, y int, v components.Stat, fg tcell.Color) {
	lo := components.StatOf(constants.StatMin)
	hi := components.StatOf(constants.StatMax)
	filled := int(v.Clamp(lo, hi) * hudBarCells / (hi - lo))
	for i := 0; i < hudBarCells; i++ {
		ch := '░'
		if i < filled {
			ch = '█'
		}
		buf.SetFgOnly(x+i, y, ch, fg, tcell.AttrNone)
	}
}
