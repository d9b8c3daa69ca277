// =======================
// plot/project.go
// =======================

package plot

import "math"

// Point2D is a screen-space position in pixels.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// CanvasProperties is derived once per frame from the canvas size and the camera zoom.
type CanvasProperties struct {
	Width, Height float64
	PixelScale    float64
	Center        Point2D
}

// NewCanvasProperties returns ok=false for a degenerate canvas, in which case
// nothing should be drawn this frame.
func NewCanvasProperties(width, height, scaleFactor float64) (CanvasProperties, bool) {
	if !(width > 0 && height > 0) || math.IsInf(width, 0) || math.IsInf(height, 0) {
		return CanvasProperties{}, false
	}
	return CanvasProperties{
		Width:      width,
		Height:     height,
		PixelScale: math.Min(width, height) / 5 * scaleFactor,
		Center:     Point2D{X: width / 2, Y: height / 2},
	}, true
}

// Project rotates p (Y then X) and maps it orthographically onto the canvas.
// The rotated z is returned as depth.
func Project(p Point3D, rotationX, rotationY float64, props CanvasProperties) (Point2D, float64) {
	r := p.Rotate(rotationX, rotationY)
	return Point2D{
		X: props.Center.X + r.X*props.PixelScale,
		Y: props.Center.Y + r.Y*props.PixelScale,
	}, r.Z
}
