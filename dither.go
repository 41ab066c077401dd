package climg

import (
	"image/color"
	"math"

	"github.com/makeworld-the-better-one/dither/v2"
)

// ansi256Palette holds one RGB value per color RGBToANSI256 can produce, so a
// dithered pixel quantizes back to the palette entry it was snapped to
var ansi256Palette = buildANSI256Palette()

func buildANSI256Palette() color.Palette {
	pal := make(color.Palette, 0, 216+22)
	for r := range 6 {
		for g := range 6 {
			for b := range 6 {
				pal = append(pal, color.RGBA{uint8(r * 51), uint8(g * 51), uint8(b * 51), 255})
			}
		}
	}
	// 232 and 255 are unreachable, those grays fold into 16 and 231
	for k := 1; k <= 22; k++ {
		v := uint8(math.Round(float64(k) * 255 / 23))
		pal = append(pal, color.RGBA{v, v, v, 255})
	}
	return pal
}

// ditherGrid spreads the 256-color quantization error over neighboring pixels
// with Floyd-Steinberg. Alpha is copied from g unchanged.
func ditherGrid(g Grid) Grid {
	if g.Empty() {
		return g
	}

	d := dither.NewDitherer(ansi256Palette)
	if d == nil {
		return g
	}
	d.Matrix = dither.FloydSteinberg

	// Unpainted pixels are snapped onto the palette so they diffuse no error
	// into their visible neighbors. Alpha is restored below.
	src := NewGrid(g.Width(), g.Height())
	for y, row := range g {
		for x, p := range row {
			if !p.Opaque() {
				p = snapToPalette(p)
			}
			p.A = 0xff
			src[y][x] = p
		}
	}
	img := ToImage(src)

	var out Grid
	if dithered := d.Dither(img); dithered != nil {
		out = FromImage(dithered)
	} else {
		out = FromImage(img) // dithered in place
	}

	for y, row := range out {
		for x := range row {
			row[x].A = g[y][x].A
		}
	}
	return out
}

// snapToPalette returns the palette color RGBToANSI256 picks for p
func snapToPalette(p Pixel) Pixel {
	idx := RGBToANSI256(p.R, p.G, p.B)
	if idx >= 232 {
		v := uint8(math.Round(float64(idx-232) * 255 / 23))
		return Pixel{v, v, v, p.A}
	}
	idx -= 16
	return Pixel{
		R: uint8(idx / 36 * 51),
		G: uint8(idx / 6 % 6 * 51),
		B: uint8(idx % 6 * 51),
		A: p.A,
	}
}
