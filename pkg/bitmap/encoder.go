package bitmap

import (
	"image"
	"image/color"
)

// Encode converts any decoded image into a BGR24 buffer rebased at (0, 0).
// Alpha is discarded.
func Encode(src image.Image) *BGR24 {
	b := src.Bounds()
	d := New(image.Rect(0, 0, b.Dx(), b.Dy()))

	switch s := src.(type) {
	case *BGR24:
		return s.Copy(b)
	case *image.YCbCr:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			o := (y - b.Min.Y) * d.Stride
			for x := b.Min.X; x < b.Max.X; x++ {
				yi, ci := s.YOffset(x, y), s.COffset(x, y)
				r, g, bl := color.YCbCrToRGB(s.Y[yi], s.Cb[ci], s.Cr[ci])
				d.Pix[o+ChanBlue], d.Pix[o+ChanGreen], d.Pix[o+ChanRed] = bl, g, r
				o += Channels
			}
		}
	case *image.NRGBA:
		encode4(d, s.Pix, s.Stride, s.PixOffset(b.Min.X, b.Min.Y))
	case *image.RGBA:
		encode4(d, s.Pix, s.Stride, s.PixOffset(b.Min.X, b.Min.Y))
	default:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				d.Set(x-b.Min.X, y-b.Min.Y, src.At(x, y))
			}
		}
	}

	return d
}

// encode4 copies R,G,B out of a 4 byte per pixel layout starting at off.
func encode4(d *BGR24, pix []uint8, stride, off int) {
	w, h := d.Rect.Dx(), d.Rect.Dy()
	for y := 0; y < h; y++ {
		i := off + y*stride
		o := y * d.Stride
		for x := 0; x < w; x++ {
			d.Pix[o+ChanBlue] = pix[i+2]
			d.Pix[o+ChanGreen] = pix[i+1]
			d.Pix[o+ChanRed] = pix[i]
			i += 4
			o += Channels
		}
	}
}
