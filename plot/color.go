// =======================
// plot/color.go
// =======================

package plot

// Color is a non-premultiplied RGBA color with channels in [0, 1].
// It satisfies image/color.Color.
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

var (
	Red   = Color{R: 1, A: 1}
	Green = Color{G: 1, A: 1}
	Blue  = Color{B: 1, A: 1}
)

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	a = channel(c.A)
	r = channel(c.R) * a / 0xffff
	g = channel(c.G) * a / 0xffff
	b = channel(c.B) * a / 0xffff
	return
}

func channel(v float64) uint32 {
	return uint32(clamp(v, 0, 1)*0xffff + 0.5)
}

// ColorForDepth maps a rotated z to a translucent blue.
// Larger depth values are drawn more opaque.
func ColorForDepth(depth float64) Color {
	return Color{B: 1, A: clamp(0.3+depth/8, 0, 1)}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
