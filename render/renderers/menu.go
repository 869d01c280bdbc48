package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/otterpet/render"
	"github.com/lixenwraith/otterpet/systems"
)

// iconGlyphs maps menu icon keys to the glyph drawn in the slot
var iconGlyphs = map[string]rune{
	"icon_apple": '@',
	"icon_ball":  'o',
	"icon_bath":  '~',
	"icon_sleep": 'z',
}

// MenuRenderer draws the open context menu as a column of boxed icons
type MenuRenderer struct{}

// NewMenuRenderer creates the context menu renderer
func NewMenuRenderer() *MenuRenderer {
	return &MenuRenderer{}
}

// Render draws each slot over the same rectangle the interaction hit test uses
func (r *MenuRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	menu := ctx.Snap.Menu
	if !menu.Visible {
		return
	}

	for i, entry := range menu.Entries {
		rect := systems.MenuSlotRect(menu.Anchor, i)
		x0, y0 := ctx.View.ToCell(rect.Pos())
		cols, rows := ctx.View.Cells(rect.W, rect.H)
		drawBox(buf, x0, y0, cols, rows)

		glyph, ok := iconGlyphs[entry.Icon]
		if !ok {
			glyph = '?'
		}
		buf.SetFgOnly(x0+cols/2, y0+rows/2, glyph, render.RgbMenuIcon, tcell.AttrBold)
		buf.SetText(x0+cols+1, y0+rows/2, entry.Label, render.RgbText, tcell.AttrNone)
	}
}

// drawBox draws a filled single-line frame of cols x rows cells
func drawBox(buf *render.RenderBuffer, x0, y0, cols, rows int) {
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			ch := ' '
			switch {
			case y == 0 && x == 0:
				ch = '┌'
			case y == 0 && x == cols-1:
				ch = '┐'
			case y == rows-1 && x == 0:
				ch = '└'
			case y == rows-1 && x == cols-1:
				ch = '┘'
			case y == 0 || y == rows-1:
				ch = '─'
			case x == 0 || x == cols-1:
				ch = '│'
			}
			buf.SetWithBg(x0+x, y0+y, ch, render.RgbMenuBorder, render.RgbMenuBg)
		}
	}
}
