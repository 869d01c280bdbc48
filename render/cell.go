package render

import "github.com/gdamore/tcell/v2"

// Cell is one composited terminal cell
type Cell struct {
	Rune  rune
	Fg    tcell.Color
	Bg    tcell.Color
	Attrs tcell.AttrMask
}

// Style returns the tcell style for the cell
func (c Cell) Style() tcell.Style {
	return tcell.StyleDefault.Foreground(c.Fg).Background(c.Bg).Attributes(c.Attrs)
}
