package scene

// Color is a linear RGB triple with components in [0,1].
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// RGB is a shorthand constructor for Color.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Hex converts a 0xRRGGBB value to a Color.
func Hex(rgb uint32) Color {
	return Color{
		R: float64((rgb>>16)&0xff) / 255,
		G: float64((rgb>>8)&0xff) / 255,
		B: float64(rgb&0xff) / 255,
	}
}

// Lerp returns the componentwise interpolation between c and d at t in [0,1].
func (c Color) Lerp(d Color, t float64) Color {
	return Color{
		R: c.R + (d.R-c.R)*t,
		G: c.G + (d.G-c.G)*t,
		B: c.B + (d.B-c.B)*t,
	}
}

// Scale returns the color with every component multiplied by s, clamped to [0,1].
func (c Color) Scale(s float64) Color {
	return Color{
		R: clamp01(c.R * s),
		G: clamp01(c.G * s),
		B: clamp01(c.B * s),
	}
}

// Array returns the color as a [r,g,b] triple for JSON export.
func (c Color) Array() [3]float64 {
	return [3]float64{c.R, c.G, c.B}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
