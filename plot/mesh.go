// =======================
// plot/mesh.go
// =======================

package plot

const (
	DefaultRangeStart = -2.0
	DefaultRangeEnd   = 2.0
	DefaultSteps      = 40
)

// surfaceZ is the plotted surface, a paraboloid.
func surfaceZ(x, y float64) float64 { return x*x + y*y }

func surfacePoint(x, y float64) Point3D { return Point3D{X: x, Y: y, Z: surfaceZ(x, y)} }

// GenerateGridMesh returns the wireframe of the surface over
// [rangeStart, rangeEnd]² as 2*stepCount*stepCount segments. For every grid cell
// it emits one segment along +y (fixed x) followed by one along +x (fixed y).
// Each endpoint gets its own z; nothing is interpolated.
func GenerateGridMesh(rangeStart, rangeEnd float64, stepCount int) []Segment {
	if stepCount <= 0 {
		return nil
	}
	step := (rangeEnd - rangeStart) / float64(stepCount)
	at := func(i int) float64 { return rangeStart + float64(i)*step }

	segments := make([]Segment, 0, 2*stepCount*stepCount)
	for i := 0; i < stepCount; i++ {
		fixed := at(i)
		for j := 0; j < stepCount; j++ {
			from, to := at(j), at(j+1)
			segments = append(segments,
				Segment{Start: surfacePoint(fixed, from), End: surfacePoint(fixed, to)},
				Segment{Start: surfacePoint(from, fixed), End: surfacePoint(to, fixed)},
			)
		}
	}
	return segments
}
