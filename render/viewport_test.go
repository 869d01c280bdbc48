package render

import (
	"testing"

	"github.com/lixenwraith/otterpet/components"
)

func TestViewportToCell(t *testing.T) {
	v := DefaultViewport()

	tests := []struct {
		name  string
		p     components.Vec2
		wantX int
		wantY int
	}{
		{"Origin", components.Vec2{X: 0, Y: 0}, 0, 0},
		{"Inside first cell", components.Vec2{X: 9.9, Y: 19.9}, 0, 0},
		{"Cell boundary", components.Vec2{X: 10, Y: 20}, 1, 1},
		{"Otter start", components.Vec2{X: 300, Y: 250}, 30, 12},
		{"Negative", components.Vec2{X: -0.5, Y: -1}, -1, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := v.ToCell(tt.p)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("ToCell(%v) = (%d,%d), want (%d,%d)", tt.p, x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestViewportRoundTrip(t *testing.T) {
	v := DefaultViewport()
	for x := 0; x < 80; x += 7 {
		for y := 0; y < 30; y += 3 {
			cx, cy := v.ToCell(v.ToWorld(x, y))
			if cx != x || cy != y {
				t.Fatalf("Round trip (%d,%d) -> (%d,%d)", x, y, cx, cy)
			}
		}
	}
}

func TestViewportCells(t *testing.T) {
	v := DefaultViewport()

	if cols, rows := v.Cells(800, 600); cols != 80 || rows != 30 {
		t.Errorf("Expected arena 80x30, got %dx%d", cols, rows)
	}
	if cols, rows := v.Cells(80, 80); cols != 8 || rows != 4 {
		t.Errorf("Expected otter 8x4, got %dx%d", cols, rows)
	}
	if cols, rows := v.Cells(45, 21); cols != 5 || rows != 2 {
		t.Errorf("Expected rounding up to 5x2, got %dx%d", cols, rows)
	}
}
