package enhance

import (
	"fmt"
	"math"

	"texenhance/pkg/bitmap"
)

// GammaTable maps v to (v/255)^gamma·255, clamped to [0,255] and truncated.
func GammaTable(gamma float64) *[256]uint8 {
	var lut [256]uint8
	for i := range lut {
		lut[i] = clampTrunc(math.Pow(float64(i)/255.0, gamma) * 255.0)
	}
	return &lut
}

func Gamma(gamma float64) Stage {
	return &gammaStage{gamma: gamma, lut: GammaTable(gamma)}
}

type gammaStage struct {
	gamma float64
	lut   *[256]uint8
}

func (e *gammaStage) Name() string {
	return "gamma"
}

func (e *gammaStage) Apply(img *bitmap.BGR24) (*bitmap.BGR24, error) {
	if e.gamma <= 0 || math.IsNaN(e.gamma) || math.IsInf(e.gamma, 0) {
		return nil, fmt.Errorf("invalid gamma %v", e.gamma)
	}
	img.MapAll(e.lut)
	return img, nil
}

// clampTrunc clamps v into the 8-bit range, then drops the fraction.
func clampTrunc(v float64) uint8 {
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v)
}
