package core

import (
	"image/color"
	"sync"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a foreground or background color for a screen cell.
// The zero value is the terminal default; any other value is an ANSI
// 256-color index offset by one.
type Color uint16

// Predefined colors for game elements (ANSI index + 1).
const (
	ColorDefault       Color = 0
	ColorBlack         Color = 1
	ColorRed           Color = 2
	ColorGreen         Color = 3
	ColorYellow        Color = 4
	ColorBlue          Color = 5
	ColorMagenta       Color = 6
	ColorCyan          Color = 7
	ColorWhite         Color = 8
	ColorBrightRed     Color = 10
	ColorBrightGreen   Color = 11
	ColorBrightYellow  Color = 12
	ColorBrightBlue    Color = 13
	ColorBrightMagenta Color = 14
	ColorBrightCyan    Color = 15
	ColorBrightWhite   Color = 16
	ColorOrange        Color = 209
	ColorGray          Color = 246
)

// Indexed returns the Color for an ANSI 256-color index.
func Indexed(i uint8) Color {
	return Color(i) + 1
}

// Index returns the ANSI 256-color index and false for the default color.
func (c Color) Index() (uint8, bool) {
	if c == ColorDefault {
		return 0, false
	}
	return uint8(c - 1), true
}

// palette holds the xterm 256-color table in Lab-comparable form.
var (
	paletteOnce sync.Once
	palette     [256]colorful.Color
	rgbCache    sync.Map // uint32 rgb -> Color
)

func buildPalette() {
	base := [16][3]uint8{
		{0, 0, 0}, {128, 0, 0}, {0, 128, 0}, {128, 128, 0},
		{0, 0, 128}, {128, 0, 128}, {0, 128, 128}, {192, 192, 192},
		{128, 128, 128}, {255, 0, 0}, {0, 255, 0}, {255, 255, 0},
		{0, 0, 255}, {255, 0, 255}, {0, 255, 255}, {255, 255, 255},
	}
	for i, c := range base {
		palette[i] = colorful.Color{R: float64(c[0]) / 255, G: float64(c[1]) / 255, B: float64(c[2]) / 255}
	}

	// 6x6x6 cube
	steps := [6]float64{0, 95, 135, 175, 215, 255}
	for i := 0; i < 216; i++ {
		r, g, b := steps[i/36], steps[(i/6)%6], steps[i%6]
		palette[16+i] = colorful.Color{R: r / 255, G: g / 255, B: b / 255}
	}

	// Grayscale ramp
	for i := 0; i < 24; i++ {
		v := float64(8+10*i) / 255
		palette[232+i] = colorful.Color{R: v, G: v, B: v}
	}
}

// RGB returns the palette color closest to (r, g, b) by CIE Lab distance.
// The 16 system colors are skipped because terminals theme them freely.
func RGB(r, g, b uint8) Color {
	key := uint32(r)<<16 | uint32(g)<<8 | uint32(b)
	if c, ok := rgbCache.Load(key); ok {
		return c.(Color)
	}

	paletteOnce.Do(buildPalette)
	target := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}

	best, bestDist := 16, -1.0
	for i := 16; i < len(palette); i++ {
		d := target.DistanceLab(palette[i])
		if bestDist < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}

	c := Indexed(uint8(best))
	rgbCache.Store(key, c)
	return c
}

// FromColor converts any image color to the nearest palette color.
func FromColor(c color.Color) Color {
	cf, _ := colorful.MakeColor(c)
	r, g, b := cf.Clamped().RGB255()
	return RGB(r, g, b)
}

// Blend mixes two RGB triples in Lab space; t=0 yields a, t=1 yields b.
func Blend(a, b [3]uint8, t float64) Color {
	ca := colorful.Color{R: float64(a[0]) / 255, G: float64(a[1]) / 255, B: float64(a[2]) / 255}
	cb := colorful.Color{R: float64(b[0]) / 255, G: float64(b[1]) / 255, B: float64(b[2]) / 255}
	r, g, bl := ca.BlendLab(cb, ClampF(t, 0, 1)).Clamped().RGB255()
	return RGB(r, g, bl)
}
