package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/otterpet/components"
	"github.com/lixenwraith/otterpet/render"
)

// Item glyph boxes, one string per cell row
var (
	appleGlyph = []string{" \\, ", "(  )"}
	ballGlyph  = []string{"/''\\", "\\__/"}
)

// ItemRenderer draws the pending apple and ball
type ItemRenderer struct{}

// NewItemRenderer creates the item renderer
func NewItemRenderer() *ItemRenderer {
	return &ItemRenderer{}
}

// Render draws each present item with its top-left at the item position
func (r *ItemRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if ctx.Snap.Apple != nil {
		drawGlyph(ctx, buf, *ctx.Snap.Apple, appleGlyph, render.RgbApple, tcell.AttrBold)
	}
	if ctx.Snap.Ball != nil {
		drawGlyph(ctx, buf, *ctx.Snap.Ball, ballGlyph, render.RgbBall, tcell.AttrBold)
	}
}

// drawGlyph blits rows of text at the cell containing pos, spaces are transparent
func drawGlyph(ctx render.RenderContext, buf *render.RenderBuffer, pos components.Vec2, rows []string, fg tcell.Color, attrs tcell.AttrMask) {
	cx, cy := ctx.View.ToCell(pos)
	for dy, row := range rows {
		dx := 0
		for _, ch := range row {
			if ch != ' ' {
				buf.SetFgOnly(cx+dx, cy+dy, ch, fg, attrs)
			}
			dx++
		}
	}
}
