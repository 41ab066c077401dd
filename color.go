package climg

import (
	"math"
	"strconv"
	"strings"
)

// ANSI escape sequences used by the renderers
const (
	ResetAll   = "\x1b[0m"
	ResetFG    = "\x1b[39m"
	ResetBG    = "\x1b[49m"
	ResetFGBG  = "\x1b[39;49m"
	UpperBlock = "▀"
	LowerBlock = "▄"
)

// RGBToANSI256 maps a color to the xterm 256-color palette.
// Pure grays use the fast path: near-black and near-white snap to the cube
// corners (16 and 231), everything between lands on the 232+ gray ramp.
func RGBToANSI256(r, g, b uint8) int {
	if r == g && g == b {
		switch {
		case r < 8:
			return 16
		case r > 248:
			return 231
		default:
			return 232 + int(math.Round(float64(r)*23/255))
		}
	}
	return 16 +
		cubeIndex(r)*36 +
		cubeIndex(g)*6 +
		cubeIndex(b)
}

func cubeIndex(v uint8) int {
	return int(math.Round(float64(v) / 255 * 5))
}

// writeFG appends the foreground escape for p
func writeFG(sb *strings.Builder, p Pixel, trueColor bool) {
	writeColor(sb, "38", p, trueColor)
}

// writeBG appends the background escape for p
func writeBG(sb *strings.Builder, p Pixel, trueColor bool) {
	writeColor(sb, "48", p, trueColor)
}

func writeColor(sb *strings.Builder, layer string, p Pixel, trueColor bool) {
	sb.WriteString("\x1b[")
	sb.WriteString(layer)
	if trueColor {
		sb.WriteString(";2;")
		sb.WriteString(strconv.Itoa(int(p.R)))
		sb.WriteByte(';')
		sb.WriteString(strconv.Itoa(int(p.G)))
		sb.WriteByte(';')
		sb.WriteString(strconv.Itoa(int(p.B)))
	} else {
		sb.WriteString(";5;")
		sb.WriteString(strconv.Itoa(RGBToANSI256(p.R, p.G, p.B)))
	}
	sb.WriteByte('m')
}
