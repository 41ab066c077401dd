package climg

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
)

// Pixel is a single non-premultiplied RGBA sample
type Pixel struct {
	R, G, B, A uint8
}

// Transparent is the fully transparent pixel used to pad an unpaired bottom row
var Transparent = Pixel{}

// Opaque reports whether the pixel is treated as painted when compositing
func (p Pixel) Opaque() bool {
	return p.A > OpacityThreshold
}

// OpacityThreshold is the alpha value above which a pixel is considered opaque
const OpacityThreshold = 128

// Grid is a matrix of pixels stored row by row. All rows must have the same
// length; renderers reject grids that do not with ErrJaggedGrid.
type Grid [][]Pixel

// NewGrid allocates a zeroed (fully transparent) grid
func NewGrid(width, height int) Grid {
	if width <= 0 || height <= 0 {
		return Grid{}
	}
	pix := make([]Pixel, width*height)
	g := make(Grid, height)
	for y := range height {
		g[y] = pix[y*width : (y+1)*width : (y+1)*width]
	}
	return g
}

// Width returns the number of columns
func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Height returns the number of rows
func (g Grid) Height() int {
	return len(g)
}

// Empty reports whether the grid has no pixels
func (g Grid) Empty() bool {
	return g.Width() == 0 || g.Height() == 0
}

// Rectangular reports whether every row is as wide as the first one
func (g Grid) Rectangular() bool {
	w := g.Width()
	for _, row := range g {
		if len(row) != w {
			return false
		}
	}
	return true
}

// At returns the pixel at column x, row y
func (g Grid) At(x, y int) Pixel {
	return g[y][x]
}

// FromImage converts any image.Image into a Grid. Images without an alpha
// channel (JPEG) come out with A fixed at 255.
func FromImage(img image.Image) Grid {
	if img == nil {
		return Grid{}
	}
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return Grid{}
	}

	// Normalize to non-premultiplied RGBA so alpha and color stay independent
	nrgba, ok := img.(*image.NRGBA)
	if !ok || bounds.Min != (image.Point{}) {
		nrgba = image.NewNRGBA(image.Rect(0, 0, w, h))
		xdraw.Draw(nrgba, nrgba.Bounds(), img, bounds.Min, xdraw.Src)
	}

	g := NewGrid(w, h)
	for y := range h {
		row := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+w*4]
		for x := range w {
			i := x * 4
			g[y][x] = Pixel{R: row[i], G: row[i+1], B: row[i+2], A: row[i+3]}
		}
	}
	return g
}

// ToImage converts the grid back into an *image.NRGBA
func ToImage(g Grid) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, g.Width(), g.Height()))
	for y, row := range g {
		for x, p := range row {
			img.SetNRGBA(x, y, color.NRGBA{R: p.R, G: p.G, B: p.B, A: p.A})
		}
	}
	return img
}
