package climg

import (
	"fmt"
	"image"
	"io"
	"strings"

	"github.com/charmbracelet/x/mosaic"
	xdraw "golang.org/x/image/draw"
)

// MosaicRenderer implements the Renderer interface using mosaic. Geometry is
// resolved exactly like HalfblocksRenderer; mosaic always emits true color.
type MosaicRenderer struct{}

// Protocol returns the protocol type
func (r *MosaicRenderer) Protocol() Protocol {
	return Mosaic
}

// Render generates the ANSI text for the grid
func (r *MosaicRenderer) Render(g Grid, opts RenderOptions) (string, error) {
	if g.Empty() {
		return "", ErrEmptyImage
	}
	if !g.Rectangular() {
		return "", ErrJaggedGrid
	}

	layout, err := resolveLayout(opts)
	if err != nil {
		return "", err
	}

	pixW, pixH, _ := FitDimensions(g.Width(), g.Height(), layout.width, layout.height*2)
	cellsH := (pixH + 1) / 2

	m := mosaic.New().
		Width(pixW).
		Height(cellsH).
		Dither(opts.Dither)

	output := strings.TrimRight(m.Render(scaleImage(ToImage(g), pixW, pixH)), "\n")

	if opts.ShowInfo {
		header := infoHeader(layout, pixW, cellsH, pixW, pixH, g)
		return strings.Join(header, "\n") + "\n" + output, nil
	}
	return output, nil
}

// Print outputs the rendered grid to w
func (r *MosaicRenderer) Print(w io.Writer, g Grid, opts RenderOptions) error {
	output, err := r.Render(g, opts)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, output)
	return err
}

// scaleImage resamples img to width x height with Catmull-Rom so mosaic gets a
// source that already matches its cell grid
func scaleImage(img *image.NRGBA, width, height int) *image.NRGBA {
	if img.Bounds().Dx() == width && img.Bounds().Dy() == height {
		return img
	}
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return dst
}
