package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/otterpet/constants"
	"github.com/lixenwraith/otterpet/render"
)

// SpeechRenderer draws the mood speech bubble above the otter
type SpeechRenderer struct{}

// NewSpeechRenderer creates the speech bubble renderer
func NewSpeechRenderer() *SpeechRenderer {
	return &SpeechRenderer{}
}

// Render fills the bubble rectangle and writes the line of speech in its first row
func (r *SpeechRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if ctx.Snap.Speech == "" {
		return
	}

	cx, cy := ctx.View.ToCell(ctx.Snap.SpeechAnchor)
	cols, rows := ctx.View.Cells(constants.SpeechWidth, constants.SpeechHeight)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			buf.SetWithBg(cx+x, cy+y, ' ', render.RgbSpeechText, render.RgbSpeechBg)
		}
	}
	buf.SetText(cx+1, cy, ctx.Snap.Speech, render.RgbSpeechText, tcell.AttrItalic)
}
