package draw

import (
	"bytes"
	"strings"
	"testing"
)

func TestRenderOnlyEmitsChanges(t *testing.T) {
	c := NewScaledCanvas(10, 5, 10, 10)

	var out bytes.Buffer
	c.SetColor(ColorRed)
	c.SetFloat(2, 2)
	c.Render(&out)
	first := out.String()
	if !strings.Contains(first, string(BlockUpperHalf)) || !strings.Contains(first, ColorRed.Code()) {
		t.Fatalf("first frame missing red half block: %q", first)
	}

	// Same scene again: nothing to emit.
	out.Reset()
	c.Clear()
	c.SetFloat(2, 2)
	c.Render(&out)
	if out.Len() != 0 {
		t.Fatalf("unchanged frame emitted %q", out.String())
	}

	// Pixel removed: the cell is blanked.
	out.Reset()
	c.Clear()
	c.Render(&out)
	if got := out.String(); got != "\033[2;3H " {
		t.Fatalf("erase frame = %q", got)
	}
}

func TestForceRedrawAndDirtyText(t *testing.T) {
	c := NewScaledCanvas(4, 2, 4, 4)
	var out bytes.Buffer
	c.Render(&out)

	out.Reset()
	c.MarkTextDirty(2, 1, 2)
	c.Render(&out)
	if got := out.String(); got != "\033[1;2H  " {
		t.Fatalf("dirty repaint = %q", got)
	}

	out.Reset()
	c.ForceRedraw()
	c.Render(&out)
	if n := strings.Count(out.String(), " "); n != 8 {
		t.Fatalf("forced redraw repainted %d cells, want 8", n)
	}
}

func TestHalfBlockCombination(t *testing.T) {
	c := NewScaledCanvas(1, 1, 1, 2)
	c.SetFloat(0, 0)
	if got := c.cellAt(0, 0).ch; got != BlockUpperHalf {
		t.Fatalf("top only = %q", got)
	}
	c.SetFloat(0, 1)
	if got := c.cellAt(0, 0).ch; got != BlockFull {
		t.Fatalf("both = %q", got)
	}
}

func TestFilledCircleCoversCenter(t *testing.T) {
	c := NewScaledCanvas(40, 20, 40, 40)
	c.SetColor(ColorCyan)
	c.DrawCircle(20, 20, 8, true)
	if got := c.pixels[20*40+20]; got != ColorCyan {
		t.Fatalf("center pixel = %v, want cyan", got)
	}
	if got := c.pixels[0]; got != ColorNone {
		t.Fatalf("corner pixel painted")
	}
}

func TestTerminalRoundTrip(t *testing.T) {
	c := NewScaledCanvas(80, 30, 800, 600)
	col, row := c.LogicalToTerminal(405, 305)
	x, y := c.TerminalToLogical(col, row)
	if x < 390 || x > 420 || y < 290 || y > 320 {
		t.Fatalf("round trip (405,305) -> (%d,%d) -> (%f,%f)", col, row, x, y)
	}
}

func TestBar(t *testing.T) {
	if got := Bar(0.5, 4); got != "██░░" {
		t.Fatalf("Bar(0.5,4) = %q", got)
	}
	if got := Bar(2, 3); got != "███" {
		t.Fatalf("Bar clamps: %q", got)
	}
	if Bar(0.5, 0) != "" {
		t.Fatalf("zero width bar not empty")
	}
}
