package term

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"plot3d/config"
	"plot3d/logging"
	"plot3d/plot"
)

func newTestViewer(t *testing.T, w, h int) (*Viewer, tcell.SimulationScreen) {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	t.Cleanup(s.Fini)
	s.SetSize(w, h)
	cfg := config.Default()
	return NewViewer(s, cfg.Scene(), cfg.Camera, cfg.Terminal, logging.Discard()), s
}

func TestDrawPaintsPlotAndStatus(t *testing.T) {
	v, s := newTestViewer(t, 80, 24)
	v.Draw()

	cells, w, _ := s.GetContents()
	var status strings.Builder
	for x := 0; x < w; x++ {
		status.WriteString(string(cells[x].Runes))
	}
	if !strings.Contains(status.String(), "rx 30.0 ry 315.0 zoom 1.00") {
		t.Fatalf("status line = %q", status.String())
	}

	painted, heavy := 0, 0
	for _, c := range cells[w:] {
		if len(c.Runes) == 0 {
			continue
		}
		switch c.Runes[0] {
		case lightGlyph:
			painted++
		case heavyGlyph:
			heavy++
		}
	}
	if painted == 0 {
		t.Fatalf("no grid cells painted")
	}
	if heavy == 0 {
		t.Fatalf("no axis cells painted")
	}
}

func TestKeysDriveCamera(t *testing.T) {
	v, _ := newTestViewer(t, 40, 20)
	start := v.Camera()

	redraw, quit := v.HandleEvent(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	if !redraw || quit {
		t.Fatalf("right arrow: redraw=%v quit=%v", redraw, quit)
	}
	if got, want := v.Camera().RotationY, start.RotationY+5; got != want {
		t.Fatalf("rotationY = %v, want %v", got, want)
	}

	v.HandleEvent(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	if got, want := v.Camera().RotationX, start.RotationX+5; got != want {
		t.Fatalf("rotationX = %v, want %v", got, want)
	}
	if got := v.Camera().ScaleFactor; got != start.ScaleFactor {
		t.Fatalf("arrow keys changed scale to %v", got)
	}

	v.HandleEvent(tcell.NewEventKey(tcell.KeyRune, '+', tcell.ModNone))
	if got := v.Camera().ScaleFactor; got != 1.1 {
		t.Fatalf("scale = %v, want 1.1", got)
	}

	v.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone))
	if v.Camera() != start {
		t.Fatalf("reset camera = %+v, want %+v", v.Camera(), start)
	}

	if _, quit := v.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)); !quit {
		t.Fatalf("q did not quit")
	}
	if _, quit := v.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)); !quit {
		t.Fatalf("Esc did not quit")
	}
}

func TestZoomSaturatesWithoutRedraw(t *testing.T) {
	v, _ := newTestViewer(t, 40, 20)
	for i := 0; i < 50; i++ {
		v.HandleEvent(tcell.NewEventMouse(5, 5, tcell.WheelUp, tcell.ModNone))
	}
	if got := v.Camera().ScaleFactor; got != plot.MaxScaleFactor {
		t.Fatalf("scale = %v, want max", got)
	}
	if redraw, _ := v.HandleEvent(tcell.NewEventMouse(5, 5, tcell.WheelUp, tcell.ModNone)); redraw {
		t.Fatalf("redraw requested for unchanged camera")
	}
}

func TestMouseDragPans(t *testing.T) {
	v, _ := newTestViewer(t, 40, 20)
	start := v.Camera()

	if redraw, _ := v.HandleEvent(tcell.NewEventMouse(10, 10, tcell.Button1, tcell.ModNone)); redraw {
		t.Fatalf("press alone should not redraw")
	}
	if redraw, _ := v.HandleEvent(tcell.NewEventMouse(13, 10, tcell.Button1, tcell.ModNone)); !redraw {
		t.Fatalf("drag did not redraw")
	}
	// 3 cells * 8 px / 3
	if got, want := v.Camera().RotationY, start.RotationY+8; got != want {
		t.Fatalf("rotationY = %v, want %v", got, want)
	}
	if got := v.Camera().ScaleFactor; got != start.ScaleFactor {
		t.Fatalf("drag changed scale to %v", got)
	}

	v.HandleEvent(tcell.NewEventMouse(13, 10, tcell.ButtonNone, tcell.ModNone))
	before := v.Camera()
	v.HandleEvent(tcell.NewEventMouse(30, 2, tcell.Button1, tcell.ModNone))
	if v.Camera() != before {
		t.Fatalf("new press after release moved the camera")
	}
}

func TestTinyScreenDoesNotPanic(t *testing.T) {
	v, _ := newTestViewer(t, 1, 1)
	v.Draw()
}

func TestCanvasBlendsTranslucency(t *testing.T) {
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	defer s.Fini()
	s.SetSize(10, 5)

	c := NewCanvas(s, 0, background)
	if w, h := c.Size(); w != 10 || h != 10 {
		t.Fatalf("canvas size = %vx%v, want 10x10", w, h)
	}
	c.DrawLine(plot.Color{B: 1, A: 0.5}, plot.Point2D{X: 0, Y: 4}, plot.Point2D{X: 9, Y: 4}, 1)
	s.Show()

	cells, w, _ := s.GetContents()
	cell := cells[2*w+3]
	fg, _, _ := cell.Style.Decompose()
	r, g, b := fg.RGB()
	if r != 0 || g != 0 || b < 120 || b > 135 {
		t.Fatalf("blended color = %d,%d,%d, want half blue on black", r, g, b)
	}
}
