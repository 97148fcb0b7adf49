package core

import (
	"image"
	"math"
)

// Backdrop paints a background image stretched over the whole screen.
// Each cell takes the color of the image pixel under its center. Without
// an image it paints a vertical gradient that brightens toward the bottom.
type Backdrop struct {
	img  image.Image
	base [3]uint8

	cols, rows int
	cache      []Color
}

// NewBackdrop creates a backdrop. img may be nil.
func NewBackdrop(img image.Image, base [3]uint8) *Backdrop {
	return &Backdrop{img: img, base: base}
}

// Paint fills every cell of dst with a blank rune on the backdrop color.
func (b *Backdrop) Paint(dst *Screen) {
	if b == nil {
		dst.Clear()
		return
	}
	if dst.Width() != b.cols || dst.Height() != b.rows {
		b.sample(dst.Width(), dst.Height())
	}
	for y := 0; y < b.rows; y++ {
		for x := 0; x < b.cols; x++ {
			dst.SetCell(x, y, Cell{Rune: ' ', Bg: b.cache[y*b.cols+x]})
		}
	}
}

func (b *Backdrop) sample(cols, rows int) {
	b.cols, b.rows = cols, rows
	b.cache = make([]Color, cols*rows)
	if cols == 0 || rows == 0 {
		return
	}

	if b.img == nil {
		for y := 0; y < rows; y++ {
			c := Gradient(b.base, y, rows)
			for x := 0; x < cols; x++ {
				b.cache[y*cols+x] = c
			}
		}
		return
	}

	bounds := b.img.Bounds()
	for y := 0; y < rows; y++ {
		py := bounds.Min.Y + int((float64(y)+0.5)*float64(bounds.Dy())/float64(rows))
		for x := 0; x < cols; x++ {
			px := bounds.Min.X + int((float64(x)+0.5)*float64(bounds.Dx())/float64(cols))
			b.cache[y*cols+x] = FromColor(b.img.At(px, py))
		}
	}
}

// Gradient returns base scaled by 1 + 0.3*row/rows, saturating at 255.
func Gradient(base [3]uint8, row, rows int) Color {
	f := 1.0
	if rows > 0 {
		f += float64(row) / float64(rows) * 0.3
	}
	scale := func(v uint8) uint8 {
		return uint8(math.Min(255, float64(v)*f))
	}
	return RGB(scale(base[0]), scale(base[1]), scale(base[2]))
}
