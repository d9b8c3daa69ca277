// =======================
// term/canvas.go
// =======================

package term

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"plot3d/plot"
)

const (
	lightGlyph = '•'
	heavyGlyph = '█'
)

// Canvas maps plot pixels onto terminal cells. A cell is one pixel wide and two
// pixels tall, which keeps the paraboloid round on typical fonts. Cells cannot be
// translucent, so colors are blended against the background before drawing.
type Canvas struct {
	screen tcell.Screen
	bg     colorful.Color
	top    int
	cols   int
	rows   int
}

var _ plot.Surface = (*Canvas)(nil)

// NewCanvas uses the screen below row top.
func NewCanvas(s tcell.Screen, top int, bg colorful.Color) *Canvas {
	w, h := s.Size()
	rows := h - top
	if rows < 0 {
		rows = 0
	}
	return &Canvas{screen: s, bg: bg, top: top, cols: w, rows: rows}
}

// Size is the canvas size in plot pixels.
func (c *Canvas) Size() (float64, float64) {
	return float64(c.cols), float64(c.rows * 2)
}

func (c *Canvas) DrawLine(col plot.Color, start, end plot.Point2D, strokeWidth float64) {
	w, h := c.Size()
	if w == 0 || h == 0 {
		return
	}
	start, end, ok := plot.ClipSegment(start, end, plot.Rect{MaxX: w - 1, MaxY: h - 1})
	if !ok {
		return
	}

	glyph := lightGlyph
	if strokeWidth >= 2 {
		glyph = heavyGlyph
	}
	style := tcell.StyleDefault.
		Foreground(c.blend(col)).
		Background(toTcell(c.bg))

	x0, y0 := int(start.X+0.5), int(start.Y+0.5)
	x1, y1 := int(end.X+0.5), int(end.Y+0.5)
	bresenham(x0, y0, x1, y1, func(x, y int) {
		c.screen.SetContent(x, c.top+y/2, glyph, nil, style)
	})
}

func (c *Canvas) blend(col plot.Color) tcell.Color {
	fg := colorful.Color{R: col.R, G: col.G, B: col.B}
	return toTcell(c.bg.BlendRgb(fg, col.A).Clamped())
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func bresenham(x0, y0, x1, y1 int, plotFn func(x, y int)) {
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		plotFn(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
