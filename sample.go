package climg

import "math"

// BilinearSample blends the four pixels surrounding (x, y). Alpha is blended
// like any other channel so transparency fades instead of stepping.
// Callers keep 0 <= x <= Width()-1 and 0 <= y <= Height()-1.
func BilinearSample(g Grid, x, y float64) Pixel {
	w, h := g.Width(), g.Height()

	x1 := int(math.Floor(x))
	y1 := int(math.Floor(y))
	x2 := min(x1+1, w-1)
	y2 := min(y1+1, h-1)
	dx := x - float64(x1)
	dy := y - float64(y1)

	p11 := g[y1][x1]
	p12 := g[y1][x2]
	p21 := g[y2][x1]
	p22 := g[y2][x2]

	// Evaluated left to right, channel first, so rounding matches exactly
	blend := func(c11, c12, c21, c22 uint8) uint8 {
		v := float64(c11)*(1-dx)*(1-dy) +
			float64(c12)*dx*(1-dy) +
			float64(c21)*(1-dx)*dy +
			float64(c22)*dx*dy
		return clampChannel(math.Round(v))
	}

	return Pixel{
		R: blend(p11.R, p12.R, p21.R, p22.R),
		G: blend(p11.G, p12.G, p21.G, p22.G),
		B: blend(p11.B, p12.B, p21.B, p22.B),
		A: blend(p11.A, p12.A, p21.A, p22.A),
	}
}

func clampChannel(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v)
	}
}
