// =======================
// plot/axes.go
// =======================

package plot

// AxisSegment is an axis line with its fixed color.
type AxisSegment struct {
	Segment
	Color Color
}

// GenerateAxes returns the x, y and z axes, each of length pixelScale*2,
// colored red, green and blue.
func GenerateAxes(pixelScale float64) [3]AxisSegment {
	l := pixelScale * 2
	var origin Point3D
	return [3]AxisSegment{
		{Segment: Segment{Start: origin, End: Point3D{X: l}}, Color: Red},
		{Segment: Segment{Start: origin, End: Point3D{Y: l}}, Color: Green},
		{Segment: Segment{Start: origin, End: Point3D{Z: l}}, Color: Blue},
	}
}
