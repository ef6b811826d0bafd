package enhance

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"texenhance/pkg/bitmap"
)

func gray(w, h int, v uint8) *bitmap.BGR24 {
	img := bitmap.New(image.Rect(0, 0, w, h))
	img.Fill(color.RGBA{R: v, G: v, B: v, A: 0xFF})
	return img
}

func gradient(w, h int) *bitmap.BGR24 {
	img := bitmap.New(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = uint8(i * 7)
	}
	return img
}

func TestPipelineGray(t *testing.T) {
	if testing.Short() {
		t.Skip("allocates a 6000x6000 buffer")
	}

	p := New(zaptest.NewLogger(t))
	out, err := p.Process(gray(6000, 6000, 128))
	require.NoError(t, err)

	require.Equal(t, image.Rect(0, 0, 5000, 5000), out.Bounds())
	for _, pt := range []image.Point{{0, 0}, {2500, 2500}, {4999, 4999}} {
		assert.Equal(t, color.RGBA{R: 112, G: 103, B: 90, A: 0xFF}, out.At(pt.X, pt.Y))
	}
}

func TestPipelineSmallImage(t *testing.T) {
	p := New(zaptest.NewLogger(t))
	out, err := p.Process(gray(100, 100, 128))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 100, 100), out.Bounds())
}

func TestPipelineSecondPassDiverges(t *testing.T) {
	p := New(zaptest.NewLogger(t))

	first, err := p.Process(gradient(32, 32))
	require.NoError(t, err)
	snapshot := append([]uint8(nil), first.Pix...)

	second, err := p.Process(first)
	require.NoError(t, err)

	assert.Equal(t, first.Bounds(), second.Bounds())
	assert.NotEqual(t, snapshot, second.Pix)
}

func TestPipelineReport(t *testing.T) {
	var seen []string
	p := New(zaptest.NewLogger(t), WithObserver(func(l *StageLog) {
		seen = append(seen, l.Stage)
	}))

	want := []string{"crop", "gamma", "boost-green", "boost-red"}
	assert.Equal(t, want, p.StageNames())

	_, err := p.Process(gray(20, 10, 200))
	require.NoError(t, err)

	assert.Equal(t, want, seen)
	assert.Len(t, p.Report().Logs(), 4)
	assert.Equal(t, "boost-red", p.Report().Last().Stage)

	l, ok := p.Report().Find("crop")
	require.True(t, ok)
	assert.Equal(t, image.Rect(0, 0, 20, 10), l.Bounds)
	assert.GreaterOrEqual(t, int64(p.Report().Total()), int64(l.Elapsed))

	// A second run starts a fresh report.
	_, err = p.Process(gray(4, 4, 1))
	require.NoError(t, err)
	assert.Len(t, p.Report().Logs(), 4)
}

type failing struct{}

func (failing) Name() string { return "broken" }

func (failing) Apply(*bitmap.BGR24) (*bitmap.BGR24, error) {
	return nil, errors.New("boom")
}

func TestPipelineStageError(t *testing.T) {
	p := New(zaptest.NewLogger(t), WithStages(CenterCrop(2), failing{}, Gamma(2)))

	_, err := p.Process(gray(4, 4, 1))
	require.Error(t, err)
	assert.EqualError(t, err, "stage broken: boom")
	assert.Len(t, p.Report().Logs(), 1)
}

func TestParams(t *testing.T) {
	p := NewParams()
	require.NoError(t, p.Validate())
	assert.Equal(t, 5000, p.CropSize)
	assert.Equal(t, 1.5, p.Gamma)
	assert.Equal(t, 1.15, p.GreenGain)
	assert.Equal(t, 1.25, p.RedGain)

	tests := []struct {
		name string
		edit func(p *Params)
	}{
		{name: "zero crop", edit: func(p *Params) { p.CropSize = 0 }},
		{name: "negative gamma", edit: func(p *Params) { p.Gamma = -1 }},
		{name: "negative green", edit: func(p *Params) { p.GreenGain = -0.1 }},
		{name: "negative red", edit: func(p *Params) { p.RedGain = -2 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewParams()
			tt.edit(p)
			assert.Error(t, p.Validate())
		})
	}
}
