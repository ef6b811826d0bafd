package enhance

import (
	"math"

	"github.com/pkg/errors"

	"texenhance/pkg/bitmap"
)

func NewParams() *Params {
	return &Params{
		CropSize:  5000,
		Gamma:     1.5,
		GreenGain: 1.15,
		RedGain:   1.25,
	}
}

// Params is the tunable surface of the pipeline.
type Params struct {
	CropSize  int
	Gamma     float64
	GreenGain float64
	RedGain   float64
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func (p *Params) Validate() error {
	if p.CropSize <= 0 {
		return errors.Errorf("crop size must be positive, got %d", p.CropSize)
	}
	if p.Gamma <= 0 || !finite(p.Gamma) {
		return errors.Errorf("gamma must be a positive number, got %v", p.Gamma)
	}
	if p.GreenGain < 0 || !finite(p.GreenGain) {
		return errors.Errorf("green gain must be a non-negative number, got %v", p.GreenGain)
	}
	if p.RedGain < 0 || !finite(p.RedGain) {
		return errors.Errorf("red gain must be a non-negative number, got %v", p.RedGain)
	}
	return nil
}

// Stages returns crop, gamma, green boost and red boost, in that order.
func (p *Params) Stages() []Stage {
	return []Stage{
		CenterCrop(p.CropSize),
		Gamma(p.Gamma),
		Boost(bitmap.ChanGreen, p.GreenGain),
		Boost(bitmap.ChanRed, p.RedGain),
	}
}
