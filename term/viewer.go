// =======================
// term/viewer.go
// =======================

package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"plot3d/config"
	"plot3d/logging"
	"plot3d/plot"
)

// statusRows is reserved at the top of the screen for the status line.
const statusRows = 1

var background = colorful.Color{R: 0, G: 0, B: 0}

// Viewer owns the camera for a terminal session. Events and redraws happen on the
// goroutine that calls Run, so the camera is never read and written at once.
type Viewer struct {
	screen  tcell.Screen
	scene   plot.Scene
	initial plot.CameraState
	camera  plot.CameraState
	keys    config.TerminalConfig
	log     logging.Logger

	dragging     bool
	lastX, lastY int
	frames       int
}

func NewViewer(s tcell.Screen, sc plot.Scene, cam plot.CameraState, keys config.TerminalConfig, log logging.Logger) *Viewer {
	cam = cam.Normalized()
	return &Viewer{screen: s, scene: sc, initial: cam, camera: cam, keys: keys, log: log}
}

func (v *Viewer) Camera() plot.CameraState { return v.camera }

// Run draws the first frame and then redraws after every gesture or resize until
// the user quits or the screen goes away.
func (v *Viewer) Run() error {
	events := make(chan tcell.Event)
	done := make(chan struct{})
	defer close(done)

	// Input handler
	go func() {
		defer close(events)
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	v.Draw()
	for ev := range events {
		redraw, quit := v.HandleEvent(ev)
		if quit {
			v.log.Infof("terminal viewer closed after %d frames", v.frames)
			return nil
		}
		if redraw {
			v.Draw()
		}
	}
	return nil
}

// HandleEvent applies one tcell event to the camera.
func (v *Viewer) HandleEvent(ev tcell.Event) (redraw, quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false, true
		case tcell.KeyUp:
			return v.apply(plot.Gesture{PanY: -v.keys.PanPerKey, Zoom: 1}), false
		case tcell.KeyDown:
			return v.apply(plot.Gesture{PanY: v.keys.PanPerKey, Zoom: 1}), false
		case tcell.KeyLeft:
			return v.apply(plot.Gesture{PanX: -v.keys.PanPerKey, Zoom: 1}), false
		case tcell.KeyRight:
			return v.apply(plot.Gesture{PanX: v.keys.PanPerKey, Zoom: 1}), false
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return false, true
			case 'r', 'R':
				v.camera = v.initial
				v.log.Debugf("camera reset to %+v", v.camera)
				return true, false
			case '+', '=':
				return v.apply(plot.Gesture{Zoom: v.keys.ZoomStep}), false
			case '-', '_':
				return v.apply(plot.Gesture{Zoom: 1 / v.keys.ZoomStep}), false
			}
		}
	case *tcell.EventMouse:
		return v.mouse(ev), false
	case *tcell.EventResize:
		w, h := ev.Size()
		v.log.Infof("terminal resized to %dx%d", w, h)
		v.screen.Sync()
		return true, false
	}
	return false, false
}

func (v *Viewer) mouse(ev *tcell.EventMouse) bool {
	x, y := ev.Position()
	buttons := ev.Buttons()
	switch {
	case buttons&tcell.WheelUp != 0:
		return v.apply(plot.Gesture{Zoom: v.keys.ZoomStep})
	case buttons&tcell.WheelDown != 0:
		return v.apply(plot.Gesture{Zoom: 1 / v.keys.ZoomStep})
	case buttons&tcell.Button1 != 0:
		if !v.dragging {
			v.dragging, v.lastX, v.lastY = true, x, y
			return false
		}
		dx, dy := x-v.lastX, y-v.lastY
		v.lastX, v.lastY = x, y
		if dx == 0 && dy == 0 {
			return false
		}
		// rows are two plot pixels tall
		return v.apply(plot.Gesture{
			PanX: float64(dx) * v.keys.PanPerCell,
			PanY: float64(dy) * v.keys.PanPerCell * 2,
			Zoom: 1,
		})
	default:
		v.dragging = false
	}
	return false
}

func (v *Viewer) apply(g plot.Gesture) bool {
	before := v.camera
	v.camera = v.camera.ApplyGesture(g)
	v.log.Debugf("gesture %+v: camera %+v", g, v.camera)
	return v.camera != before
}

// Draw clears the screen and paints one full frame.
func (v *Viewer) Draw() {
	v.screen.Clear()
	canvas := NewCanvas(v.screen, statusRows, background)
	w, h := canvas.Size()
	n := v.scene.Render(v.camera, w, h, canvas)
	v.frames++

	sw, _ := v.screen.Size()
	status := fmt.Sprintf("plot3d | rx %.1f ry %.1f zoom %.2f | lines %d | arrows/drag:rotate +/-/wheel:zoom r:reset q:quit",
		v.camera.RotationX, v.camera.RotationY, v.camera.ScaleFactor, n)
	if sw > 2 {
		drawText(v.screen, 1, 0, tcell.StyleDefault.Foreground(tcell.ColorWhite), runewidth.Truncate(status, sw-2, "…"))
	}
	v.screen.Show()
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, str string) {
	for _, r := range str {
		s.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}
