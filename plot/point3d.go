// =======================
// plot/point3d.go
// =======================

package plot

import "math"

// Point3D holds a 3D coordinate.
type Point3D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Segment is one line of the scene before projection.
type Segment struct{ Start, End Point3D }

func radians(deg float64) float64 { return deg * math.Pi / 180 }

// RotateAroundX rotates p about the X axis by angleDegrees.
func RotateAroundX(p Point3D, angleDegrees float64) Point3D {
	sin, cos := math.Sincos(radians(angleDegrees))
	return Point3D{
		X: p.X,
		Y: p.Y*cos - p.Z*sin,
		Z: p.Y*sin + p.Z*cos,
	}
}

// RotateAroundY rotates p about the Y axis by angleDegrees.
func RotateAroundY(p Point3D, angleDegrees float64) Point3D {
	sin, cos := math.Sincos(radians(angleDegrees))
	return Point3D{
		X: p.X*cos + p.Z*sin,
		Y: p.Y,
		Z: -p.X*sin + p.Z*cos,
	}
}

// Rotate applies the Y rotation first and then the X rotation.
// The order is part of the view: the two rotations do not commute.
func (p Point3D) Rotate(rotationX, rotationY float64) Point3D {
	return RotateAroundX(RotateAroundY(p, rotationY), rotationX)
}
