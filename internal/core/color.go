package core

// Color represents a screen cell color as an xterm 256-color palette index.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for HUD and overlay elements.
const (
	ColorBlack       Color = 0
	ColorRed         Color = 1
	ColorGreen       Color = 2
	ColorYellow      Color = 3
	ColorBlue        Color = 4
	ColorMagenta     Color = 5
	ColorCyan        Color = 6
	ColorWhite       Color = 7
	ColorBrightRed   Color = 9
	ColorBrightWhite Color = 15
	ColorOrange      Color = 208
	ColorGray        Color = 245
)

// cubeLevels are the channel intensities of the 6x6x6 color cube (indices 16-231).
var cubeLevels = [6]uint8{0, 95, 135, 175, 215, 255}

// ColorFromRGB quantizes a 24-bit color to the nearest xterm-256 entry,
// choosing between the color cube and the grayscale ramp (232-255).
func ColorFromRGB(r, g, b uint8) Color {
	ri, gi, bi := cubeIndex(r), cubeIndex(g), cubeIndex(b)
	cube := Color(16 + 36*ri + 6*gi + bi)
	cubeDist := dist(r, g, b, cubeLevels[ri], cubeLevels[gi], cubeLevels[bi])

	avg := (int(r) + int(g) + int(b)) / 3
	grayIdx := (avg - 3) / 10
	if grayIdx < 0 {
		grayIdx = 0
	}
	if grayIdx > 23 {
		grayIdx = 23
	}
	level := uint8(8 + grayIdx*10)
	grayDist := dist(r, g, b, level, level, level)

	if grayDist < cubeDist {
		return Color(232 + grayIdx)
	}
	return cube
}

// cubeIndex returns the nearest color cube level for a channel value.
func cubeIndex(v uint8) int {
	best, bestDist := 0, 1<<30
	for i, l := range cubeLevels {
		d := int(v) - int(l)
		if d < 0 {
			d = -d
		}
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

func dist(r1, g1, b1, r2, g2, b2 uint8) int {
	dr := int(r1) - int(r2)
	dg := int(g1) - int(g2)
	db := int(b1) - int(b2)
	return dr*dr + dg*dg + db*db
}
