package renderers

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/otterpet/render"
)

// otterSprites holds one 8x4 cell frame per sprite key
var otterSprites = map[string][]string{
	"happy": {
		" ^____^ ",
		"( o  o )",
		" ( ww ) ",
		" /_||_\\ ",
	},
	"hungry": {
		" ^____^ ",
		"( -  - )",
		" ( oo ) ",
		" /_||_\\ ",
	},
	"sleepy": {
		" ^____^ ",
		"( u  u )",
		" ( __ ) ",
		" /_||_\\ ",
	},
	"giggle_1": {
		" ^____^ ",
		"( ^  ^ )",
		" ( DD ) ",
		" /_||_\\ ",
	},
	"giggle_2": {
		" ^____^ ",
		"( >  < )",
		" ( DD ) ",
		"\\/_||_\\/",
	},
	"giggle_3": {
		" ^____^ ",
		"( ^  ^ )",
		" ( vv ) ",
		" /_||_\\ ",
	},
}

// OtterRenderer draws the creature sprite
type OtterRenderer struct{}

// NewOtterRenderer creates the sprite renderer
func NewOtterRenderer() *OtterRenderer {
	return &OtterRenderer{}
}

// Render draws the sprite for the snapshot's sprite key at the otter position
func (r *OtterRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	rows, ok := otterSprites[ctx.Snap.Sprite]
	if !ok {
		rows = otterSprites["happy"]
	}

	fg := render.MoodColor(ctx.Snap.Mood)
	if strings.HasPrefix(ctx.Snap.Sprite, "giggle_") {
		fg = render.RgbOtterGiggle
	}
	drawGlyph(ctx, buf, ctx.Snap.Position, rows, fg, tcell.AttrBold)
}
