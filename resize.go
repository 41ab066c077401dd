package climg

import "math"

// Interpolation selects how ResizeGrid samples the source grid
type Interpolation int

const (
	// NearestNeighbor picks the closest source pixel
	NearestNeighbor Interpolation = iota
	// Bilinear blends the four surrounding source pixels
	Bilinear
)

func (i Interpolation) String() string {
	switch i {
	case NearestNeighbor:
		return "nearest"
	case Bilinear:
		return "bilinear"
	default:
		return "unknown"
	}
}

// FitDimensions returns the largest size with the source aspect ratio that
// fits within maxWidth x maxHeight, never smaller than 1x1, and the scale used.
// Non-positive bounds are treated as 1.
func FitDimensions(width, height, maxWidth, maxHeight int) (newWidth, newHeight int, scale float64) {
	maxWidth = max(maxWidth, 1)
	maxHeight = max(maxHeight, 1)

	scale = math.Min(float64(maxWidth)/float64(width), float64(maxHeight)/float64(height))
	newWidth = max(1, int(math.Floor(float64(width)*scale)))
	newHeight = max(1, int(math.Floor(float64(height)*scale)))
	return newWidth, newHeight, scale
}

// ChooseInterpolation picks bilinear for downscaling and for large (>2x)
// upscaling of grids with more than one row and column; nearest otherwise.
func ChooseInterpolation(width, height int, scale float64, useInterpolation bool) Interpolation {
	if useInterpolation && (scale < 1 || scale > 2) && width > 1 && height > 1 {
		return Bilinear
	}
	return NearestNeighbor
}

// ResizeGrid scales the grid to fit within maxWidth x maxHeight keeping the
// aspect ratio. The result is a new grid of at least 1x1; an empty input
// yields an empty grid. g must be rectangular.
func ResizeGrid(g Grid, maxWidth, maxHeight int, useInterpolation bool) Grid {
	if g.Empty() {
		return Grid{}
	}
	width, height := g.Width(), g.Height()
	newWidth, newHeight, scale := FitDimensions(width, height, maxWidth, maxHeight)

	if ChooseInterpolation(width, height, scale, useInterpolation) == Bilinear {
		return resizeBilinear(g, newWidth, newHeight)
	}
	return resizeNearest(g, newWidth, newHeight)
}

func resizeNearest(g Grid, newWidth, newHeight int) Grid {
	width, height := g.Width(), g.Height()
	dst := NewGrid(newWidth, newHeight)
	for y := range newHeight {
		src := g[y*height/newHeight]
		row := dst[y]
		for x := range newWidth {
			row[x] = src[x*width/newWidth]
		}
	}
	return dst
}

// resizeBilinear aligns the corner pixels of source and destination
func resizeBilinear(g Grid, newWidth, newHeight int) Grid {
	width, height := g.Width(), g.Height()
	xDiv := float64(max(newWidth-1, 1))
	yDiv := float64(max(newHeight-1, 1))

	dst := NewGrid(newWidth, newHeight)
	for y := range newHeight {
		srcY := float64(y) * float64(height-1) / yDiv
		row := dst[y]
		for x := range newWidth {
			srcX := float64(x) * float64(width-1) / xDiv
			row[x] = BilinearSample(g, srcX, srcY)
		}
	}
	return dst
}
