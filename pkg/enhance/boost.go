package enhance

import (
	"fmt"
	"math"

	"texenhance/pkg/bitmap"
)

var channelNames = map[int]string{
	bitmap.ChanBlue:  "blue",
	bitmap.ChanGreen: "green",
	bitmap.ChanRed:   "red",
}

// BoostTable maps v to clamp(v·gain, 0, 255), truncated.
func BoostTable(gain float64) *[256]uint8 {
	var lut [256]uint8
	for i := range lut {
		lut[i] = clampTrunc(float64(i) * gain)
	}
	return &lut
}

// Boost multiplies one channel by gain, leaving the other two untouched.
func Boost(channel int, gain float64) Stage {
	return &boost{channel: channel, gain: gain, lut: BoostTable(gain)}
}

type boost struct {
	channel int
	gain    float64
	lut     *[256]uint8
}

func (e *boost) Name() string {
	return "boost-" + channelNames[e.channel]
}

func (e *boost) Apply(img *bitmap.BGR24) (*bitmap.BGR24, error) {
	if _, ok := channelNames[e.channel]; !ok {
		return nil, fmt.Errorf("unknown channel %d", e.channel)
	}
	if e.gain < 0 || math.IsNaN(e.gain) || math.IsInf(e.gain, 0) {
		return nil, fmt.Errorf("invalid gain %v", e.gain)
	}
	img.MapChannel(e.channel, e.lut)
	return img, nil
}
