package plot

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) <= eps*math.Max(1, math.Max(math.Abs(a), math.Abs(b))) }

func nearPoint(a, b Point3D) bool { return near(a.X, b.X) && near(a.Y, b.Y) && near(a.Z, b.Z) }

func (p Point3D) length() float64 { return math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z) }

func TestRotationPreservesLength(t *testing.T) {
	points := []Point3D{{1, 2, 3}, {-0.5, 4, 0}, {0, 0, 8}, {1.25, -1.75, 4.625}}
	for _, p := range points {
		for deg := -720.0; deg <= 720; deg += 17.5 {
			if got := RotateAroundX(p, deg).length(); !near(got, p.length()) {
				t.Fatalf("RotateAroundX(%v, %v) length %v, want %v", p, deg, got, p.length())
			}
			if got := RotateAroundY(p, deg).length(); !near(got, p.length()) {
				t.Fatalf("RotateAroundY(%v, %v) length %v, want %v", p, deg, got, p.length())
			}
		}
	}
}

func TestRotationZeroIsIdentity(t *testing.T) {
	p := Point3D{X: 1.5, Y: -2, Z: 6.25}
	if got := RotateAroundX(p, 0); got != p {
		t.Fatalf("RotateAroundX(p, 0) = %v, want %v", got, p)
	}
	if got := RotateAroundY(p, 0); got != p {
		t.Fatalf("RotateAroundY(p, 0) = %v, want %v", got, p)
	}
}

func TestRotationQuarterTurns(t *testing.T) {
	tests := []struct {
		name string
		got  Point3D
		want Point3D
	}{
		{"x axis keeps x", RotateAroundX(Point3D{X: 1}, 90), Point3D{X: 1}},
		{"x turns y into z", RotateAroundX(Point3D{Y: 1}, 90), Point3D{Z: 1}},
		{"x turns z into -y", RotateAroundX(Point3D{Z: 1}, 90), Point3D{Y: -1}},
		{"y keeps y", RotateAroundY(Point3D{Y: 1}, 90), Point3D{Y: 1}},
		{"y turns z into x", RotateAroundY(Point3D{Z: 1}, 90), Point3D{X: 1}},
		{"y turns x into -z", RotateAroundY(Point3D{X: 1}, 90), Point3D{Z: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !nearPoint(tt.got, tt.want) {
				t.Fatalf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestRotationOrderMatters(t *testing.T) {
	p := Point3D{X: 1, Y: 2, Z: 3}
	yThenX := RotateAroundX(RotateAroundY(p, 45), 45)
	xThenY := RotateAroundY(RotateAroundX(p, 45), 45)
	if nearPoint(yThenX, xThenY) {
		t.Fatalf("rotations commuted: %v", yThenX)
	}
	if got := p.Rotate(45, 45); !nearPoint(got, yThenX) {
		t.Fatalf("Rotate = %v, want Y then X %v", got, yThenX)
	}
}

func TestProjectUsesCenterAndScale(t *testing.T) {
	props, ok := NewCanvasProperties(400, 300, 2)
	if !ok {
		t.Fatalf("canvas rejected")
	}
	if props.PixelScale != 120 || props.Center != (Point2D{200, 150}) {
		t.Fatalf("props = %+v", props)
	}
	got, depth := Project(Point3D{X: 1, Y: -0.5, Z: 3}, 0, 0, props)
	if got != (Point2D{320, 90}) || depth != 3 {
		t.Fatalf("Project = %v depth %v", got, depth)
	}
}

func TestNewCanvasPropertiesRejectsDegenerate(t *testing.T) {
	for _, size := range [][2]float64{{0, 0}, {0, 100}, {100, 0}, {-1, 50}, {math.NaN(), 10}, {math.Inf(1), 10}} {
		if _, ok := NewCanvasProperties(size[0], size[1], 1); ok {
			t.Fatalf("canvas %v accepted", size)
		}
	}
}

func TestColorForDepth(t *testing.T) {
	if a := ColorForDepth(-100).A; a != 0 {
		t.Fatalf("alpha(-100) = %v, want 0", a)
	}
	if a := ColorForDepth(100).A; a != 1 {
		t.Fatalf("alpha(100) = %v, want 1", a)
	}
	if a := ColorForDepth(0).A; !near(a, 0.3) {
		t.Fatalf("alpha(0) = %v, want 0.3", a)
	}
	prev := -1.0
	for z := -2.4; z <= 5.6; z += 0.05 {
		c := ColorForDepth(z)
		if c.R != 0 || c.G != 0 || c.B != 1 {
			t.Fatalf("ColorForDepth(%v) = %+v, want pure blue", z, c)
		}
		if c.A < prev {
			t.Fatalf("alpha decreased at z=%v: %v < %v", z, c.A, prev)
		}
		prev = c.A
	}
}

func TestColorRGBA(t *testing.T) {
	r, g, b, a := Color{B: 1, A: 0.5}.RGBA()
	if r != 0 || g != 0 || a != 0x8000 || b != a {
		t.Fatalf("RGBA = %x %x %x %x", r, g, b, a)
	}
	if _, _, _, a := Red.RGBA(); a != 0xffff {
		t.Fatalf("Red alpha = %x", a)
	}
}
