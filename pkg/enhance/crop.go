package enhance

import (
	"image"

	"texenhance/pkg/bitmap"
)

// CenterRect returns the region of size×size centered on bounds, clamped to
// bounds. The result may be smaller than requested or non-square.
func CenterRect(bounds image.Rectangle, size int) image.Rectangle {
	w, h := bounds.Dx(), bounds.Dy()
	cx, cy := w/2, h/2
	half := size / 2

	r := image.Rect(
		max(cx-half, 0),
		max(cy-half, 0),
		min(cx+half, w),
		min(cy+half, h),
	)
	return r.Add(bounds.Min)
}

func CenterCrop(size int) Stage {
	return &crop{size: size}
}

type crop struct {
	size int
}

func (e *crop) Name() string {
	return "crop"
}

func (e *crop) Apply(img *bitmap.BGR24) (*bitmap.BGR24, error) {
	return img.Copy(CenterRect(img.Bounds(), e.size)), nil
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
