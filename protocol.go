package climg

import (
	"fmt"
	"io"
)

// Protocol identifies a rendering backend
type Protocol int

const (
	Unsupported Protocol = iota
	// Halfblocks is the built-in transparency-aware half-block compositor
	Halfblocks
	// Mosaic delegates to charmbracelet/x/mosaic
	Mosaic
)

func (p Protocol) String() string {
	switch p {
	case Halfblocks:
		return "halfblocks"
	case Mosaic:
		return "mosaic"
	default:
		return "unsupported"
	}
}

// ParseProtocol maps a protocol name to its Protocol
func ParseProtocol(name string) (Protocol, error) {
	for _, p := range []Protocol{Halfblocks, Mosaic} {
		if p.String() == name {
			return p, nil
		}
	}
	return Unsupported, fmt.Errorf("%w: %s", ErrUnsupportedProtocol, name)
}

// Renderer is the interface that all rendering backends must satisfy
type Renderer interface {
	// Render generates the ANSI text for the grid
	Render(g Grid, opts RenderOptions) (string, error)

	// Print writes the rendered grid followed by a newline to w
	Print(w io.Writer, g Grid, opts RenderOptions) error

	// Protocol returns the protocol type
	Protocol() Protocol
}

// RenderOptions contains all options for rendering a grid
type RenderOptions struct {
	Width     SizeSpec // defaults to the terminal width
	Height    SizeSpec // defaults to the terminal height
	TrueColor bool
	ShowInfo  bool
	Dither    bool // Floyd-Steinberg in 256-color mode, mosaic's own dithering otherwise

	// Sizer reports the terminal bounds; nil means StdoutSizer
	Sizer TerminalSizer
}

// DefaultRenderOptions returns full-terminal, true-color options
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{TrueColor: true}
}

// GetRenderer returns a renderer for the specified protocol
func GetRenderer(protocol Protocol) (Renderer, error) {
	switch protocol {
	case Halfblocks:
		return &HalfblocksRenderer{}, nil
	case Mosaic:
		return &MosaicRenderer{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedProtocol, protocol)
	}
}

// renderLayout is the resolved geometry of one render call
type renderLayout struct {
	terminal TerminalBounds
	width    int // target width in cells
	height   int // target height in cells
}

// resolveLayout queries the terminal and resolves the requested size against it
func resolveLayout(opts RenderOptions) (renderLayout, error) {
	sizer := opts.Sizer
	if sizer == nil {
		sizer = StdoutSizer{}
	}
	bounds, err := sizer.TerminalSize()
	if err != nil {
		return renderLayout{}, fmt.Errorf("failed to query terminal size: %w", err)
	}

	width, err := ParseSize(opts.Width, bounds.Width)
	if err != nil {
		return renderLayout{}, fmt.Errorf("width: %w", err)
	}
	height, err := ParseSize(opts.Height, bounds.Height)
	if err != nil {
		return renderLayout{}, fmt.Errorf("height: %w", err)
	}

	return renderLayout{
		terminal: bounds,
		width:    min(width, bounds.Width),
		height:   min(height, bounds.Height),
	}, nil
}

// infoHeader describes the render geometry. cellsW x cellsH is the output size
// in characters and pixW x pixH the resized grid.
func infoHeader(l renderLayout, cellsW, cellsH, pixW, pixH int, original Grid) []string {
	return []string{
		fmt.Sprintf("Terminal size: %dx%d characters", l.terminal.Width, l.terminal.Height),
		fmt.Sprintf("Render size: %dx%d characters", cellsW, cellsH),
		fmt.Sprintf("Render size: %dx%d pixels", pixW, pixH),
		fmt.Sprintf("Original size: %dx%d pixels", original.Width(), original.Height()),
		"",
	}
}
