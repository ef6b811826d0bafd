package bitmap

import (
	"image"
	"image/color"
)

// Channel indexes inside a pixel, in memory order.
const (
	ChanBlue  = 0
	ChanGreen = 1
	ChanRed   = 2

	Channels = 3
)

func New(r image.Rectangle) *BGR24 {
	return &BGR24{
		Pix:    make([]uint8, Channels*r.Dx()*r.Dy()),
		Stride: Channels * r.Dx(),
		Rect:   r,
	}
}

// BGR24 is an 8-bit, three channel image buffer laid out as B,G,R triples.
// It implements the draw.Image interface, At reports the true color so
// encoders write the channels back in their proper places.
type BGR24 struct {
	Pix    []uint8
	Stride int
	Rect   image.Rectangle
}

// Bounds implements the image.Image (and draw.Image) interface.
func (b *BGR24) Bounds() image.Rectangle {
	return b.Rect
}

// ColorModel implements the image.Image (and draw.Image) interface.
func (b *BGR24) ColorModel() color.Model {
	return color.RGBAModel
}

// PixOffset returns the index of the first element of Pix that corresponds
// to the pixel at (x, y).
func (b *BGR24) PixOffset(x, y int) int {
	return (y-b.Rect.Min.Y)*b.Stride + (x-b.Rect.Min.X)*Channels
}

// At implements the image.Image (and draw.Image) interface.
func (b *BGR24) At(x, y int) color.Color {
	return b.BGRAt(x, y)
}

func (b *BGR24) BGRAt(x, y int) color.RGBA {
	if !(image.Point{X: x, Y: y}.In(b.Rect)) {
		return color.RGBA{}
	}
	i := b.PixOffset(x, y)
	s := b.Pix[i : i+Channels : i+Channels]
	return color.RGBA{R: s[ChanRed], G: s[ChanGreen], B: s[ChanBlue], A: 0xFF}
}

// Set implements the draw.Image interface.
func (b *BGR24) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}.In(b.Rect)) {
		return
	}
	// Alpha is dropped, the buffer is always opaque.
	r, g, bl, _ := c.RGBA()
	i := b.PixOffset(x, y)
	s := b.Pix[i : i+Channels : i+Channels]
	s[ChanBlue] = uint8(bl >> 8)
	s[ChanGreen] = uint8(g >> 8)
	s[ChanRed] = uint8(r >> 8)
}

// Opaque reports whether the image is fully opaque, which it always is.
func (b *BGR24) Opaque() bool {
	return true
}

// Fill sets every pixel to c.
func (b *BGR24) Fill(c color.RGBA) {
	for i := 0; i < len(b.Pix); i += Channels {
		b.Pix[i+ChanBlue] = c.B
		b.Pix[i+ChanGreen] = c.G
		b.Pix[i+ChanRed] = c.R
	}
}

// Copy returns a new buffer holding the pixels inside r, rebased so that its
// bounds start at (0, 0). The result never shares memory with b.
func (b *BGR24) Copy(r image.Rectangle) *BGR24 {
	r = r.Intersect(b.Rect)
	d := New(image.Rect(0, 0, r.Dx(), r.Dy()))
	if r.Empty() {
		return d
	}

	row := r.Dx() * Channels
	for y := r.Min.Y; y < r.Max.Y; y++ {
		i := b.PixOffset(r.Min.X, y)
		j := (y - r.Min.Y) * d.Stride
		copy(d.Pix[j:j+row], b.Pix[i:i+row])
	}
	return d
}

// MapChannel replaces every sample of channel c with lut[sample].
func (b *BGR24) MapChannel(c int, lut *[256]uint8) {
	for i := c; i < len(b.Pix); i += Channels {
		b.Pix[i] = lut[b.Pix[i]]
	}
}

// MapAll replaces every sample of every channel with lut[sample].
func (b *BGR24) MapAll(lut *[256]uint8) {
	for i, v := range b.Pix {
		b.Pix[i] = lut[v]
	}
}

// NRGBA returns an opaque *image.NRGBA copy, the layout encoders handle
// fastest.
func (b *BGR24) NRGBA() *image.NRGBA {
	w, h := b.Rect.Dx(), b.Rect.Dy()
	d := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		i := y * b.Stride
		o := y * d.Stride
		for x := 0; x < w; x++ {
			d.Pix[o] = b.Pix[i+ChanRed]
			d.Pix[o+1] = b.Pix[i+ChanGreen]
			d.Pix[o+2] = b.Pix[i+ChanBlue]
			d.Pix[o+3] = 0xFF
			i += Channels
			o += 4
		}
	}
	return d
}
