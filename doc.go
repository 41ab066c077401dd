/*
Package climg renders PNG and JPEG images as colored text in a terminal using
Unicode half blocks, so every character cell shows two vertically stacked
pixels.

The pipeline is:

  - decode the file into a Grid of RGBA pixels (Load, Decode, FromImage)
  - resolve the target size against the terminal (ParseSize, TerminalSizer)
  - resize while keeping the aspect ratio, nearest-neighbor for small
    adjustments and bilinear for large ones (ResizeGrid)
  - composite row pairs into ▀ / ▄ glyphs, leaving transparent pixels unpainted
  - emit 24-bit or 256-color ANSI escapes (RGBToANSI256)

Basic Usage:

	// Simple one-liner
	climg.PrintFile("image.png")

	// With configuration
	img, err := climg.Open("image.png")
	if err != nil {
	    log.Fatal(err)
	}

	err = img.Width("50%").Height("20").TrueColor(false).Print()
	if err != nil {
	    log.Fatal(err)
	}

Sizes are either absolute cell counts or percentages of the terminal:

	climg.ParseSize("50%", 200) // 100
	climg.ParseSize("", 200)    // 200, the terminal size
	climg.ParseSize("abc", 200) // ErrInvalidSize

Rendering is a pure function of the grid and the terminal size, so renders of
different grids may run concurrently.
*/
package climg
