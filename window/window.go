//go:build cgo

// =======================
// window/window.go
// =======================

// Package window is the desktop/touch viewer built on ebiten.
package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"plot3d/config"
	"plot3d/gesture"
	"plot3d/logging"
	"plot3d/plot"
)

var background = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// mouseID is the pointer ID used for the left mouse button; touch IDs from ebiten
// are never negative.
const mouseID = -1

// Run opens a window and blocks until it is closed.
func Run(cfg *config.Config, log logging.Logger) error {
	g := &plotGame{
		scene:   cfg.Scene(),
		initial: cfg.Camera,
		camera:  cfg.Camera,
		tracker: gesture.NewTracker(),
		log:     log,
	}
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Window.TPS)

	log.Infof("window viewer started %dx%d, camera %+v", cfg.Window.Width, cfg.Window.Height, cfg.Camera)
	return ebiten.RunGame(g)
}

// plotGame owns the camera. ebiten calls Update and Draw from one goroutine, so
// gestures and frames never overlap.
type plotGame struct {
	scene   plot.Scene
	initial plot.CameraState
	camera  plot.CameraState
	tracker *gesture.Tracker
	log     logging.Logger

	touchIDs      []ebiten.TouchID
	pointers      []gesture.Pointer
	width, height int
}

func (g *plotGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.camera = g.initial
		g.tracker.Reset()
		g.log.Debugf("camera reset to %+v", g.camera)
		return nil
	}

	g.pointers = g.pointers[:0]
	g.touchIDs = ebiten.AppendTouchIDs(g.touchIDs[:0])
	for _, id := range g.touchIDs {
		x, y := ebiten.TouchPosition(id)
		g.pointers = append(g.pointers, gesture.Pointer{ID: int(id), X: float64(x), Y: float64(y)})
	}
	if len(g.pointers) == 0 && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.pointers = append(g.pointers, gesture.Pointer{ID: mouseID, X: float64(x), Y: float64(y)})
	}
	_, wheel := ebiten.Wheel()

	if gs, ok := g.tracker.Update(g.pointers, wheel); ok {
		g.camera = g.camera.ApplyGesture(gs)
		g.log.Debugf("gesture %+v: camera %+v", gs, g.camera)
	}
	return nil
}

func (g *plotGame) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	b := screen.Bounds()
	g.scene.Render(g.camera, float64(b.Dx()), float64(b.Dy()), imageSurface{dst: screen})
}

// Layout reports the window size as the canvas size, so a resize changes the
// projection on the next frame.
func (g *plotGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.log.Debugf("canvas resized to %dx%d", outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// imageSurface strokes plot lines onto an ebiten image.
type imageSurface struct {
	dst *ebiten.Image
}

func (s imageSurface) DrawLine(c plot.Color, start, end plot.Point2D, strokeWidth float64) {
	b := s.dst.Bounds()
	pad := strokeWidth
	start, end, ok := plot.ClipSegment(start, end, plot.Rect{
		MinX: float64(b.Min.X) - pad, MinY: float64(b.Min.Y) - pad,
		MaxX: float64(b.Max.X) + pad, MaxY: float64(b.Max.Y) + pad,
	})
	if !ok {
		return
	}
	vector.StrokeLine(s.dst,
		float32(start.X), float32(start.Y), float32(end.X), float32(end.Y),
		float32(strokeWidth), c, true)
}
