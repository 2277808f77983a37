package tui

import (
	"math"

	"github.com/vovakirdan/quadpong/internal/core"
	"github.com/vovakirdan/quadpong/internal/game"
)

// fillRune is the glyph used for filled rectangles.
const fillRune = '█'

// Canvas implements game.Surface on top of a character screen.
// Arena coordinates are scaled to the screen size on every call, so the
// screen may be resized between frames.
type Canvas struct {
	screen *core.Screen
	arena  float64
	style  game.TextStyle
}

// NewCanvas creates a canvas that maps an arena of the given size onto s.
func NewCanvas(s *core.Screen, arenaSize float64) *Canvas {
	return &Canvas{screen: s, arena: arenaSize}
}

// Screen returns the underlying buffer.
func (c *Canvas) Screen() *core.Screen {
	return c.screen
}

// toCells maps an arena coordinate onto a screen axis of n cells.
func (c *Canvas) toCells(v float64, n int) float64 {
	return v * float64(n) / c.arena
}

// Cells converts an arena rectangle to the half-open cell range it covers.
// Any rectangle that intersects the screen covers at least one cell.
func (c *Canvas) Cells(r core.Rect) (x0, y0, x1, y1 int) {
	w, h := c.screen.Width(), c.screen.Height()
	x0 = int(math.Floor(c.toCells(r.X, w)))
	y0 = int(math.Floor(c.toCells(r.Y, h)))
	x1 = int(math.Ceil(c.toCells(r.Right(), w)))
	y1 = int(math.Ceil(c.toCells(r.Bottom(), h)))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return x0, y0, x1, y1
}

// Point converts an arena point to a cell.
func (c *Canvas) Point(x, y float64) (int, int) {
	return int(math.Floor(c.toCells(x, c.screen.Width()))), int(math.Floor(c.toCells(y, c.screen.Height())))
}

func (c *Canvas) SetTextStyle(style game.TextStyle) {
	c.style = style
}

func (c *Canvas) Clear() {
	c.screen.Clear()
}

// FillRect paints the covered cells. Transparent fills leave cells untouched.
func (c *Canvas) FillRect(r core.Rect, color core.Color) {
	x0, y0, x1, y1 := c.Cells(r)
	c.screen.FillRect(x0, y0, x1, y1, fillRune, color)
}

// DrawImage puts the sprite glyph on the cell at the rectangle center.
func (c *Canvas) DrawImage(img game.Sprite, r core.Rect) {
	x, y := c.Point(r.Center())
	c.screen.Set(x, y, img.Glyph, core.ColorWhite)
}

// FillText writes text anchored at the arena point per the text style.
func (c *Canvas) FillText(text string, x, y float64, color core.Color) {
	cx, cy := c.Point(x, y)
	n := len([]rune(text))
	switch c.style.Align {
	case game.AlignCenter:
		cx -= n / 2
	case game.AlignRight:
		cx -= n
	}
	c.screen.DrawText(cx, cy, text, color)
}
