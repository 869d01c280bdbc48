package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestBufferSetAndGet(t *testing.T) {
	b := NewRenderBuffer(4, 3)

	b.SetWithBg(1, 1, 'x', RgbApple, RgbBall)
	c := b.Get(1, 1)
	if c.Rune != 'x' || c.Fg != RgbApple || c.Bg != RgbBall {
		t.Errorf("Unexpected cell %+v", c)
	}

	// Out of bounds writes are dropped
	b.SetWithBg(4, 0, 'y', RgbText, RgbText)
	b.SetFgOnly(-1, 0, 'y', RgbText, tcell.AttrNone)
	if b.Get(4, 0) != (Cell{}) {
		t.Error("Expected zero cell out of bounds")
	}
}

func TestBufferFgOnlyKeepsBackground(t *testing.T) {
	b := NewRenderBuffer(2, 1)
	b.SetBgOnly(0, 0, RgbMenuBg)
	b.SetFgOnly(0, 0, 'A', RgbMenuIcon, tcell.AttrBold)

	c := b.Get(0, 0)
	if c.Bg != RgbMenuBg || c.Fg != RgbMenuIcon || c.Rune != 'A' || c.Attrs != tcell.AttrBold {
		t.Errorf("Unexpected cell %+v", c)
	}
}

func TestBufferSetTextClips(t *testing.T) {
	b := NewRenderBuffer(5, 1)
	n := b.SetText(2, 0, "Hunger", RgbText, tcell.AttrNone)

	if n != 6 {
		t.Errorf("Expected 6 runes walked, got %d", n)
	}
	if b.Get(2, 0).Rune != 'H' || b.Get(4, 0).Rune != 'n' {
		t.Error("Unexpected text placement")
	}
}

func TestBufferClearAndResize(t *testing.T) {
	b := NewRenderBuffer(3, 3)
	b.SetWithBg(2, 2, 'z', RgbText, RgbApple)
	b.Clear()
	if b.Get(2, 2).Rune != 0 {
		t.Error("Expected cleared cell")
	}

	b.Resize(10, 2)
	if w, h := b.Bounds(); w != 10 || h != 2 {
		t.Errorf("Expected 10x2, got %dx%d", w, h)
	}
	b.SetWithBg(9, 1, 'q', RgbText, RgbText)
	if b.Get(9, 1).Rune != 'q' {
		t.Error("Expected write inside resized bounds")
	}
}

func TestBufferFlushToScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(4, 2)

	b := NewRenderBuffer(4, 2)
	b.SetFgOnly(0, 0, 'o', RgbOtterBody, tcell.AttrNone)
	b.SetWithBg(3, 1, '#', RgbText, RgbMenuBg)
	b.FlushToScreen(screen)

	r, _, style, _ := screen.GetContent(0, 0)
	if r != 'o' {
		t.Errorf("Expected 'o', got %q", r)
	}
	if _, bg, _ := style.Decompose(); bg != RgbBackground {
		t.Errorf("Expected default background on untouched cell, got %v", bg)
	}

	_, _, style, _ = screen.GetContent(3, 1)
	if _, bg, _ := style.Decompose(); bg != RgbMenuBg {
		t.Errorf("Expected menu background, got %v", bg)
	}

	r, _, _, _ = screen.GetContent(1, 1)
	if r != ' ' {
		t.Errorf("Expected blank cell, got %q", r)
	}
}
