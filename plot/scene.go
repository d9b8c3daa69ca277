// =======================
// plot/scene.go
// =======================

package plot

const (
	GridStrokeWidth = 1.0
	AxisStrokeWidth = 2.0
)

// Surface is the external line-drawing primitive.
type Surface interface {
	DrawLine(c Color, start, end Point2D, strokeWidth float64)
}

// DrawCommand is one emitted line.
type DrawCommand struct {
	Color       Color   `json:"color"`
	Start       Point2D `json:"start"`
	End         Point2D `json:"end"`
	StrokeWidth float64 `json:"stroke_width"`
}

// Recorder is a Surface that keeps every command it receives.
type Recorder struct {
	Commands []DrawCommand
}

func (r *Recorder) DrawLine(c Color, start, end Point2D, strokeWidth float64) {
	r.Commands = append(r.Commands, DrawCommand{Color: c, Start: start, End: end, StrokeWidth: strokeWidth})
}

// Scene holds the tunable parts of the plot.
type Scene struct {
	RangeStart float64
	RangeEnd   float64
	Steps      int
	GridStroke float64
	AxisStroke float64
}

func DefaultScene() Scene {
	return Scene{
		RangeStart: DefaultRangeStart,
		RangeEnd:   DefaultRangeEnd,
		Steps:      DefaultSteps,
		GridStroke: GridStrokeWidth,
		AxisStroke: AxisStrokeWidth,
	}
}

// RenderFrame draws the default scene. See Scene.Render.
func RenderFrame(cam CameraState, width, height float64, s Surface) int {
	return DefaultScene().Render(cam, width, height, s)
}

// Render rebuilds the mesh and axes for the given camera and canvas size and
// draws them on s: every grid segment first, depth shaded, then the three axes so
// they paint over the grid. It returns the number of lines drawn; a degenerate
// canvas draws nothing.
func (sc Scene) Render(cam CameraState, width, height float64, s Surface) int {
	cam = cam.Normalized()
	props, ok := NewCanvasProperties(width, height, cam.ScaleFactor)
	if !ok || s == nil {
		return 0
	}

	n := 0
	for _, seg := range GenerateGridMesh(sc.RangeStart, sc.RangeEnd, sc.Steps) {
		start, z1 := Project(seg.Start, cam.RotationX, cam.RotationY, props)
		end, z2 := Project(seg.End, cam.RotationX, cam.RotationY, props)
		s.DrawLine(ColorForDepth((z1+z2)/2), start, end, sc.GridStroke)
		n++
	}
	for _, axis := range GenerateAxes(props.PixelScale) {
		start, _ := Project(axis.Start, cam.RotationX, cam.RotationY, props)
		end, _ := Project(axis.End, cam.RotationX, cam.RotationY, props)
		s.DrawLine(axis.Color, start, end, sc.AxisStroke)
		n++
	}
	return n
}

// Frame renders the default scene into a Recorder and returns the commands.
func Frame(cam CameraState, width, height float64) []DrawCommand {
	var r Recorder
	RenderFrame(cam, width, height, &r)
	return r.Commands
}
