package render

import (
	"math"

	"github.com/lixenwraith/otterpet/components"
	"github.com/lixenwraith/otterpet/constants"
)

// Viewport maps world units onto terminal cells
// A cell covers CellWidth x CellHeight world units, origin at the top-left
type Viewport struct {
	CellWidth  int
	CellHeight int
}

// DefaultViewport returns the default cell geometry
func DefaultViewport() Viewport {
	return Viewport{CellWidth: constants.DefaultCellWidth, CellHeight: constants.DefaultCellHeight}
}

// ToCell returns the cell containing world point p
func (v Viewport) ToCell(p components.Vec2) (int, int) {
	return int(math.Floor(p.X / float64(v.CellWidth))), int(math.Floor(p.Y / float64(v.CellHeight)))
}

// ToWorld returns the world point at the top-left corner of cell x, y
func (v Viewport) ToWorld(x, y int) components.Vec2 {
	return components.Vec2{X: float64(x * v.CellWidth), Y: float64(y * v.CellHeight)}
}

// Cells returns how many cells a w x h world extent spans, rounded up
func (v Viewport) Cells(w, h float64) (int, int) {
	return int(math.Ceil(w / float64(v.CellWidth))), int(math.Ceil(h / float64(v.CellHeight)))
}
