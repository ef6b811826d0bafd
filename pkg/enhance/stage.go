package enhance

import "texenhance/pkg/bitmap"

// Stage transforms an exclusively owned buffer. The returned buffer
// supersedes the input, which callers must not use afterwards.
type Stage interface {
	Name() string
	Apply(img *bitmap.BGR24) (*bitmap.BGR24, error)
}
