package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/otterpet/constants"
	"github.com/lixenwraith/otterpet/render"
)

// BackgroundRenderer paints the pond covering the arena
type BackgroundRenderer struct{}

// NewBackgroundRenderer creates the pond renderer
func NewBackgroundRenderer() *BackgroundRenderer {
	return &BackgroundRenderer{}
}

// Render fills the arena cells and scatters static ripples
func (r *BackgroundRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	cols, rows := ctx.View.Cells(constants.ArenaWidth, constants.ArenaHeight)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			buf.SetBgOnly(x, y, render.RgbWater)
			if (x*7+y*13)%29 == 0 {
				buf.SetFgOnly(x, y, '~', render.RgbFoamDim, tcell.AttrDim)
			}
		}
	}
}
