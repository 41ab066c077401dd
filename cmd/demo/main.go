package main

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log"
	"os"
	"strings"

	"github.com/blacktop/climg"
)

func main() {
	if len(os.Args) > 1 {
		// If a file is provided, render it
		renderFile(os.Args[1])
	} else {
		// Otherwise, create a test pattern
		renderTestPattern()
	}
}

func renderFile(path string) {
	fmt.Printf("Rendering image: %s\n\n", path)

	// Simple one-liner to render a file
	if err := climg.PrintFile(path); err != nil {
		log.Fatalf("Error rendering file: %v", err)
	}

	fmt.Println("\n\nUsing fluent API with custom settings:")

	img, err := climg.Open(path)
	if err != nil {
		log.Fatalf("Error opening file: %v", err)
	}

	err = img.
		Width("50%").
		Height("50%").
		TrueColor(false).
		Info(true).
		Print()
	if err != nil {
		log.Fatalf("Error rendering with fluent API: %v", err)
	}
}

func renderTestPattern() {
	fmt.Print("Creating test pattern...\n\n")

	grid := climg.FromImage(createTestPattern())

	configs := []struct {
		name      string
		protocol  climg.Protocol
		trueColor bool
	}{
		{"Halfblocks (true color)", climg.Halfblocks, true},
		{"Halfblocks (256 colors)", climg.Halfblocks, false},
		{"Mosaic", climg.Mosaic, true},
	}

	for _, c := range configs {
		fmt.Printf("\n=== %s ===\n", c.name)
		err := climg.New(grid).
			Width("40").
			Height("20").
			TrueColor(c.trueColor).
			Protocol(c.protocol).
			Print()
		if err != nil {
			fmt.Printf("Error with %s: %v\n", c.name, err)
		}
		fmt.Print(strings.Repeat("-", 50) + "\n")
	}
}

// createTestPattern draws a gradient with four opaque squares and a
// transparent band so alpha handling is visible
func createTestPattern() image.Image {
	const size = 200
	img := image.NewNRGBA(image.Rect(0, 0, size, size))

	for y := range size {
		for x := range size {
			r := uint8((x * 255) / size)
			g := uint8((y * 255) / size)
			b := uint8(((x + y) * 255) / (2 * size))
			img.Set(x, y, color.NRGBA{r, g, b, 255})
		}
	}

	squares := []struct {
		rect image.Rectangle
		c    color.NRGBA
	}{
		{image.Rect(20, 20, 60, 60), color.NRGBA{255, 0, 0, 255}},
		{image.Rect(140, 20, 180, 60), color.NRGBA{0, 255, 0, 255}},
		{image.Rect(20, 140, 60, 180), color.NRGBA{0, 0, 255, 255}},
		{image.Rect(140, 140, 180, 180), color.NRGBA{255, 255, 255, 255}},
		{image.Rect(0, 90, size, 110), color.NRGBA{0, 0, 0, 0}},
	}
	for _, s := range squares {
		draw.Draw(img, s.rect, &image.Uniform{s.c}, image.Point{}, draw.Src)
	}

	return img
}
