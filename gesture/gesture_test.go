package gesture

import (
	"math"
	"testing"

	"plot3d/plot"
)

func TestSinglePointerPans(t *testing.T) {
	tr := NewTracker()
	if _, ok := tr.Update([]Pointer{{ID: 1, X: 10, Y: 10}}, 0); ok {
		t.Fatalf("first sample produced a gesture")
	}
	g, ok := tr.Update([]Pointer{{ID: 1, X: 40, Y: 4}}, 0)
	if !ok || g != (plot.Gesture{PanX: 30, PanY: -6, Zoom: 1}) {
		t.Fatalf("gesture = %+v ok=%v", g, ok)
	}
	if _, ok := tr.Update([]Pointer{{ID: 1, X: 40, Y: 4}}, 0); ok {
		t.Fatalf("still pointer produced a gesture")
	}
}

func TestPinchZooms(t *testing.T) {
	tr := NewTracker()
	tr.Update([]Pointer{{ID: 2, X: 90, Y: 50}, {ID: 1, X: 110, Y: 50}}, 0)
	g, ok := tr.Update([]Pointer{{ID: 1, X: 80, Y: 50}, {ID: 2, X: 120, Y: 50}}, 0)
	if !ok {
		t.Fatalf("pinch produced nothing")
	}
	if g.PanX != 0 || g.PanY != 0 || math.Abs(g.Zoom-2) > 1e-12 {
		t.Fatalf("gesture = %+v, want zoom 2 and no pan", g)
	}
}

func TestPointerSetChangeResetsBaseline(t *testing.T) {
	tr := NewTracker()
	tr.Update([]Pointer{{ID: 1, X: 0, Y: 0}}, 0)
	if _, ok := tr.Update([]Pointer{{ID: 1, X: 0, Y: 0}, {ID: 2, X: 500, Y: 500}}, 0); ok {
		t.Fatalf("second finger landing moved the camera")
	}
	if _, ok := tr.Update(nil, 0); ok {
		t.Fatalf("lifting all fingers moved the camera")
	}
	if _, ok := tr.Update([]Pointer{{ID: 3, X: 100, Y: 100}}, 0); ok {
		t.Fatalf("new finger moved the camera")
	}
}

func TestWheelZoom(t *testing.T) {
	tr := NewTracker()
	g, ok := tr.Update(nil, 2)
	if !ok || math.Abs(g.Zoom-1.21) > 1e-12 {
		t.Fatalf("gesture = %+v ok=%v", g, ok)
	}
	g, _ = tr.Update(nil, -1)
	if math.Abs(g.Zoom-1/1.1) > 1e-12 {
		t.Fatalf("zoom out = %v", g.Zoom)
	}
}

func TestGestureFeedsCamera(t *testing.T) {
	tr := NewTracker()
	cam := plot.CameraState{RotationX: 30, RotationY: 350, ScaleFactor: 1}
	tr.Update([]Pointer{{ID: 7, X: 0, Y: 0}}, 0)
	g, _ := tr.Update([]Pointer{{ID: 7, X: 60, Y: 0}}, 0)
	cam = cam.ApplyGesture(g)
	if math.Abs(cam.RotationY-10) > 1e-9 {
		t.Fatalf("rotationY = %v, want 10", cam.RotationY)
	}
}
