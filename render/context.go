package render

import (
	"github.com/lixenwraith/otterpet/components"
	"github.com/lixenwraith/otterpet/engine"
)

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	Snap engine.Snapshot
	View Viewport

	// Screen dimensions (terminal size)
	ScreenWidth  int
	ScreenHeight int
}

// NewRenderContext builds the context for one frame
func NewRenderContext(snap engine.Snapshot, view Viewport, width, height int) RenderContext {
	return RenderContext{
		Snap:         snap,
		View:         view,
		ScreenWidth:  width,
		ScreenHeight: height,
	}
}

// WorldToScreen converts a world point to a cell, visible=false when off screen
func (rc *RenderContext) WorldToScreen(x, y float64) (int, int, bool) {
	sx, sy := rc.View.ToCell(components.Vec2{X: x, Y: y})
	visible := sx >= 0 && sx < rc.ScreenWidth && sy >= 0 && sy < rc.ScreenHeight
	return sx, sy, visible
}
