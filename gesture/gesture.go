// =======================
// gesture/gesture.go
// =======================

// Package gesture reduces raw pointer samples to the incremental pan/zoom updates
// the camera understands.
package gesture

import (
	"math"
	"sort"

	"plot3d/plot"
)

// DefaultWheelZoom is the zoom factor of one wheel notch.
const DefaultWheelZoom = 1.1

// Pointer is one active touch (or the pressed mouse) in screen pixels.
type Pointer struct {
	ID   int
	X, Y float64
}

// Tracker compares each sample with the previous one. Pan is the movement of the
// pointers' centroid, zoom is the change of their average distance from it.
// Whenever the set of pointers changes the sample only becomes the new baseline.
type Tracker struct {
	WheelZoom float64
	prev      []Pointer
}

func NewTracker() *Tracker { return &Tracker{WheelZoom: DefaultWheelZoom} }

// Update consumes one frame of input. ok is false when nothing moved.
func (t *Tracker) Update(pointers []Pointer, wheel float64) (g plot.Gesture, ok bool) {
	cur := append([]Pointer(nil), pointers...)
	sort.Slice(cur, func(i, j int) bool { return cur[i].ID < cur[j].ID })

	g.Zoom = 1
	if wheel != 0 && t.WheelZoom > 0 {
		g.Zoom *= math.Pow(t.WheelZoom, wheel)
	}

	if len(cur) > 0 && sameIDs(t.prev, cur) {
		c0, c1 := centroid(t.prev), centroid(cur)
		g.PanX, g.PanY = c1.X-c0.X, c1.Y-c0.Y
		if len(cur) >= 2 {
			s0, s1 := spread(t.prev, c0), spread(cur, c1)
			if s0 > 0 && s1 > 0 {
				g.Zoom *= s1 / s0
			}
		}
	}
	t.prev = cur

	return g, g.PanX != 0 || g.PanY != 0 || g.Zoom != 1
}

// Reset forgets the baseline.
func (t *Tracker) Reset() { t.prev = nil }

func sameIDs(a, b []Pointer) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			return false
		}
	}
	return true
}

func centroid(ps []Pointer) plot.Point2D {
	var c plot.Point2D
	for _, p := range ps {
		c.X += p.X
		c.Y += p.Y
	}
	n := float64(len(ps))
	return plot.Point2D{X: c.X / n, Y: c.Y / n}
}

func spread(ps []Pointer, c plot.Point2D) float64 {
	var d float64
	for _, p := range ps {
		d += math.Hypot(p.X-c.X, p.Y-c.Y)
	}
	return d / float64(len(ps))
}
