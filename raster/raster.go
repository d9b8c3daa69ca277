// =======================
// raster/raster.go
// =======================

// Package raster draws plot scenes into an in-memory RGBA image, for headless
// snapshots and the web viewer.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"

	"plot3d/plot"
)

// Background is the default canvas fill.
var Background = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// Canvas is a plot.Surface backed by an *image.RGBA. Strokes are rasterized as
// anti-aliased quads and composited over what is already there.
type Canvas struct {
	img *image.RGBA
	r   *vector.Rasterizer
}

var _ plot.Surface = (*Canvas)(nil)

// New returns a width x height canvas filled with bg.
func New(width, height int, bg color.Color) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	return &Canvas{img: img, r: vector.NewRasterizer(0, 0)}
}

func (c *Canvas) Image() *image.RGBA { return c.img }

// DrawLine implements plot.Surface.
func (c *Canvas) DrawLine(col plot.Color, start, end plot.Point2D, strokeWidth float64) {
	b := c.img.Bounds()
	if b.Empty() || col.A <= 0 || strokeWidth <= 0 {
		return
	}
	half := strokeWidth / 2
	start, end, ok := plot.ClipSegment(start, end, plot.Rect{
		MinX: float64(b.Min.X) - half, MinY: float64(b.Min.Y) - half,
		MaxX: float64(b.Max.X) + half, MaxY: float64(b.Max.Y) + half,
	})
	if !ok {
		return
	}

	quad := strokeQuad(start, end, half)
	area := bounds(quad).Intersect(b)
	if area.Empty() {
		return
	}

	c.r.Reset(area.Dx(), area.Dy())
	ox, oy := float32(area.Min.X), float32(area.Min.Y)
	c.r.MoveTo(float32(quad[0].X)-ox, float32(quad[0].Y)-oy)
	for _, p := range quad[1:] {
		c.r.LineTo(float32(p.X)-ox, float32(p.Y)-oy)
	}
	c.r.ClosePath()
	c.r.Draw(c.img, area, image.NewUniform(col), image.Point{})
}

// strokeQuad returns the four corners of a line of width 2*half. A zero length
// line becomes a square dot.
func strokeQuad(start, end plot.Point2D, half float64) [4]plot.Point2D {
	dx, dy := end.X-start.X, end.Y-start.Y
	l := math.Hypot(dx, dy)
	if l == 0 {
		return [4]plot.Point2D{
			{X: start.X - half, Y: start.Y - half},
			{X: start.X + half, Y: start.Y - half},
			{X: start.X + half, Y: start.Y + half},
			{X: start.X - half, Y: start.Y + half},
		}
	}
	nx, ny := -dy/l*half, dx/l*half
	return [4]plot.Point2D{
		{X: start.X + nx, Y: start.Y + ny},
		{X: end.X + nx, Y: end.Y + ny},
		{X: end.X - nx, Y: end.Y - ny},
		{X: start.X - nx, Y: start.Y - ny},
	}
}

func bounds(pts [4]plot.Point2D) image.Rectangle {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	return image.Rect(int(math.Floor(minX)), int(math.Floor(minY)), int(math.Ceil(maxX)), int(math.Ceil(maxY)))
}

// EncodePNG writes the canvas as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, c.img); err != nil {
		return fmt.Errorf("png encode failed: %w", err)
	}
	return nil
}

// Snapshot renders one frame of sc into a new canvas. The returned count is the
// number of lines drawn; it is zero for a degenerate size.
func Snapshot(sc plot.Scene, cam plot.CameraState, width, height int) (*Canvas, int) {
	c := New(width, height, Background)
	n := sc.Render(cam, float64(width), float64(height), c)
	return c, n
}
