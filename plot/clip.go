// =======================
// plot/clip.go
// =======================

package plot

// Rect is an axis aligned screen rectangle.
type Rect struct{ MinX, MinY, MaxX, MaxY float64 }

// ClipSegment clips start->end to r (Liang-Barsky). ok is false when the segment
// lies entirely outside r. Hosts use it before rasterizing, since axes can reach
// far past the canvas.
func ClipSegment(start, end Point2D, r Rect) (Point2D, Point2D, bool) {
	dx, dy := end.X-start.X, end.Y-start.Y
	t0, t1 := 0.0, 1.0

	edges := [4][2]float64{
		{-dx, start.X - r.MinX},
		{dx, r.MaxX - start.X},
		{-dy, start.Y - r.MinY},
		{dy, r.MaxY - start.Y},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return start, end, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return start, end, false
			}
			if t > t0 {
				t0 = t
			}
		} else {
			if t < t0 {
				return start, end, false
			}
			if t < t1 {
				t1 = t
			}
		}
	}

	clipped := func(t float64) Point2D { return Point2D{X: start.X + t*dx, Y: start.Y + t*dy} }
	return clipped(t0), clipped(t1), true
}
