package climg

import (
	"fmt"
	"io"
	"strings"
)

// HalfblocksRenderer implements the Renderer interface with upper and lower
// half block glyphs, two grid rows per terminal line
type HalfblocksRenderer struct{}

// Protocol returns the protocol type
func (r *HalfblocksRenderer) Protocol() Protocol {
	return Halfblocks
}

// Render generates the ANSI text for the grid
func (r *HalfblocksRenderer) Render(g Grid, opts RenderOptions) (string, error) {
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

	// Each cell holds two vertical pixels
	resized := ResizeGrid(g, layout.width, layout.height*2, true)
	if opts.Dither && !opts.TrueColor {
		resized = ditherGrid(resized)
	}
	rows := (resized.Height() + 1) / 2

	lines := make([]string, 0, rows+5)
	if opts.ShowInfo {
		lines = append(lines, infoHeader(layout, resized.Width(), rows, resized.Width(), resized.Height(), g)...)
	}

	for y := 0; y < resized.Height(); y += 2 {
		top := resized[y]
		var bottom []Pixel
		if y+1 < resized.Height() {
			bottom = resized[y+1]
		}
		lines = append(lines, renderCellRow(top, bottom, opts.TrueColor))
	}

	return strings.Join(lines, "\n"), nil
}

// Print outputs the rendered grid to w
func (r *HalfblocksRenderer) Print(w io.Writer, g Grid, opts RenderOptions) error {
	output, err := r.Render(g, opts)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, output)
	return err
}

// renderCellRow composites one terminal line. A nil bottom row stands for a
// fully transparent row so an odd last row renders as half glyphs.
func renderCellRow(top, bottom []Pixel, trueColor bool) string {
	var sb strings.Builder
	sb.Grow(len(top) * 40)

	for x, upper := range top {
		lower := Transparent
		if bottom != nil {
			lower = bottom[x]
		}
		writeCell(&sb, upper, lower, trueColor)
	}
	sb.WriteString(ResetAll)
	return sb.String()
}

func writeCell(sb *strings.Builder, upper, lower Pixel, trueColor bool) {
	switch upperOpaque, lowerOpaque := upper.Opaque(), lower.Opaque(); {
	case upperOpaque && lowerOpaque:
		writeFG(sb, upper, trueColor)
		writeBG(sb, lower, trueColor)
		sb.WriteString(UpperBlock)
	case upperOpaque:
		writeFG(sb, upper, trueColor)
		sb.WriteString(ResetBG)
		sb.WriteString(UpperBlock)
	case lowerOpaque:
		writeFG(sb, lower, trueColor)
		sb.WriteString(ResetBG)
		sb.WriteString(LowerBlock)
	default:
		sb.WriteString(ResetFGBG)
		sb.WriteByte(' ')
	}
}
