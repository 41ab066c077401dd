package climg

import (
	"fmt"
	"io"
	"os"
)

// Image is a terminal image with a fluent API for configuration
type Image struct {
	grid   Grid
	reader io.Reader
	format Format
	path   string

	// Configuration
	width     SizeSpec
	height    SizeSpec
	trueColor bool
	showInfo  bool
	dither    bool
	protocol  Protocol
	sizer     TerminalSizer

	// Cached renderer
	renderer Renderer
}

// New creates a new Image from an already decoded grid
func New(g Grid) *Image {
	if g == nil {
		return nil
	}
	return &Image{
		grid:      g,
		trueColor: true,
		protocol:  Halfblocks,
	}
}

// Open creates a new Image from a file path. The file is decoded lazily on
// the first Render or Print.
func Open(path string) (*Image, error) {
	if path == "" {
		return nil, fmt.Errorf("path cannot be empty")
	}
	if _, err := FormatFromPath(path); err != nil {
		return nil, err
	}
	return &Image{
		path:      path,
		trueColor: true,
		protocol:  Halfblocks,
	}, nil
}

// From creates a new Image from an encoded stream
func From(r io.Reader, format Format) *Image {
	if r == nil {
		return nil
	}
	return &Image{
		reader:    r,
		format:    format,
		trueColor: true,
		protocol:  Halfblocks,
	}
}

// Width sets the target width, absolute ("40") or relative ("50%")
func (i *Image) Width(w SizeSpec) *Image {
	i.width = w
	return i
}

// Height sets the target height in lines, absolute or relative
func (i *Image) Height(h SizeSpec) *Image {
	i.height = h
	return i
}

// Size sets both width and height
func (i *Image) Size(w, h SizeSpec) *Image {
	i.width = w
	i.height = h
	return i
}

// TrueColor toggles 24-bit color; when off the 256-color palette is used
func (i *Image) TrueColor(enabled bool) *Image {
	i.trueColor = enabled
	return i
}

// Info prepends the diagnostic size header
func (i *Image) Info(enabled bool) *Image {
	i.showInfo = enabled
	return i
}

// Dither enables dithering in 256-color mode and for the mosaic protocol
func (i *Image) Dither(d bool) *Image {
	i.dither = d
	return i
}

// Protocol sets the rendering protocol to use
func (i *Image) Protocol(p Protocol) *Image {
	i.protocol = p
	i.renderer = nil // Clear cached renderer
	return i
}

// Sizer overrides how the terminal size is queried
func (i *Image) Sizer(s TerminalSizer) *Image {
	i.sizer = s
	return i
}

// Bounds returns the source size in pixels, decoding the image if needed
func (i *Image) Bounds() (width, height int, err error) {
	g, err := i.loadGrid()
	if err != nil {
		return 0, 0, err
	}
	return g.Width(), g.Height(), nil
}

// Render generates the ANSI text for the image
func (i *Image) Render() (string, error) {
	g, err := i.loadGrid()
	if err != nil {
		return "", err
	}

	renderer, err := i.getRenderer()
	if err != nil {
		return "", err
	}

	return renderer.Render(g, i.buildRenderOptions())
}

// Print outputs the image to stdout
func (i *Image) Print() error {
	return i.Fprint(os.Stdout)
}

// Fprint outputs the image to w
func (i *Image) Fprint(w io.Writer) error {
	g, err := i.loadGrid()
	if err != nil {
		return err
	}

	renderer, err := i.getRenderer()
	if err != nil {
		return err
	}

	return renderer.Print(w, g, i.buildRenderOptions())
}

// loadGrid decodes the image from the configured source
func (i *Image) loadGrid() (Grid, error) {
	if i.grid != nil {
		return i.grid, nil
	}

	var (
		g   Grid
		err error
	)
	switch {
	case i.path != "":
		g, err = Load(i.path)
	case i.reader != nil:
		g, err = Decode(i.reader, i.format)
	default:
		return nil, fmt.Errorf("no image source configured")
	}
	if err != nil {
		return nil, err
	}

	i.grid = g
	return g, nil
}

// getRenderer returns the renderer for the configured protocol
func (i *Image) getRenderer() (Renderer, error) {
	if i.renderer != nil {
		return i.renderer, nil
	}

	renderer, err := GetRenderer(i.protocol)
	if err != nil {
		return nil, err
	}

	i.renderer = renderer
	return renderer, nil
}

// buildRenderOptions creates RenderOptions from the Image configuration
func (i *Image) buildRenderOptions() RenderOptions {
	return RenderOptions{
		Width:     i.width,
		Height:    i.height,
		TrueColor: i.trueColor,
		ShowInfo:  i.showInfo,
		Dither:    i.dither,
		Sizer:     i.sizer,
	}
}

// Convenience functions for quick rendering

// Render renders a grid with default settings
func Render(g Grid) (string, error) {
	if g == nil {
		return "", fmt.Errorf("grid cannot be nil")
	}
	return New(g).Render()
}

// RenderFile renders an image file with default settings
func RenderFile(path string) (string, error) {
	img, err := Open(path)
	if err != nil {
		return "", err
	}
	return img.Render()
}

// PrintFile prints an image file with default settings
func PrintFile(path string) error {
	img, err := Open(path)
	if err != nil {
		return err
	}
	return img.Print()
}
