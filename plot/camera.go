// =======================
// plot/camera.go
// =======================

package plot

import "math"

const (
	DefaultRotationX   = 30.0
	DefaultRotationY   = -45.0
	DefaultScaleFactor = 1.0

	MinRotationX   = -90.0
	MaxRotationX   = 90.0
	MinScaleFactor = 0.5
	MaxScaleFactor = 3.0

	// panDivisor converts pixels of pan into degrees of rotation.
	panDivisor = 3.0
)

// CameraState is the only mutable input of the pipeline. Hosts own it and pass it
// by value into every frame.
type CameraState struct {
	RotationX   float64 `json:"rotation_x" yaml:"rotation_x"`
	RotationY   float64 `json:"rotation_y" yaml:"rotation_y"`
	ScaleFactor float64 `json:"scale" yaml:"scale"`
}

// Gesture is one incremental pan/zoom update from the input layer.
type Gesture struct {
	PanX float64 `json:"pan_x"`
	PanY float64 `json:"pan_y"`
	Zoom float64 `json:"zoom"`
}

// DefaultCameraState returns the initial view, already normalized
// (a rotationY of -45 is stored as 315).
func DefaultCameraState() CameraState {
	return CameraState{
		RotationX:   DefaultRotationX,
		RotationY:   DefaultRotationY,
		ScaleFactor: DefaultScaleFactor,
	}.Normalized()
}

// Normalized clamps RotationX and ScaleFactor and wraps RotationY into [0, 360).
// Non-finite fields fall back to their defaults.
func (c CameraState) Normalized() CameraState {
	if !finite(c.RotationX) {
		c.RotationX = DefaultRotationX
	}
	if !finite(c.RotationY) {
		c.RotationY = DefaultRotationY
	}
	if !finite(c.ScaleFactor) {
		c.ScaleFactor = DefaultScaleFactor
	}
	c.RotationX = clamp(c.RotationX, MinRotationX, MaxRotationX)
	c.RotationY = wrapDegrees(c.RotationY)
	c.ScaleFactor = clamp(c.ScaleFactor, MinScaleFactor, MaxScaleFactor)
	return c
}

// ApplyGesture returns the camera after one gesture update. Components of g that
// are not finite are ignored. Zoom multiplies the scale, so hosts send 1 for a
// pure pan.
func (c CameraState) ApplyGesture(g Gesture) CameraState {
	c = c.Normalized()
	if finite(g.PanY) {
		c.RotationX = clamp(c.RotationX-g.PanY/panDivisor, MinRotationX, MaxRotationX)
	}
	if finite(g.PanX) {
		c.RotationY = wrapDegrees(c.RotationY + g.PanX/panDivisor)
	}
	if finite(g.Zoom) {
		c.ScaleFactor = clamp(c.ScaleFactor*g.Zoom, MinScaleFactor, MaxScaleFactor)
	}
	return c
}

func wrapDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	// -tiny + 360 rounds to 360
	if deg >= 360 {
		deg = 0
	}
	return deg
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
