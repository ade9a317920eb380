// SPDX-License-Identifier: EPL-2.0

package reader

import (
	"math"

	"github.com/ik5/pcmaudio/wave"
)

// WaveReader plays a wave.Asset into the stereo output, converting its rate
// linearly and applying a fade envelope.
type WaveReader struct {
	asset    *wave.Asset
	channels int
	frames   int

	delay     int
	paused    bool
	completed bool

	// skip suppresses advances for assets with fewer channels than the
	// output, so a mono asset moves one frame per stereo output frame.
	skip    int
	channel int

	targetRate float64
	ratio      float64
	position   float64

	gain      float64
	increment float64
}

var _ Reader = (*WaveReader)(nil)

// NewWaveReader returns a reader over asset that stays silent for delay
// ticks before it starts. The reader does not copy the asset. A nil or
// empty asset yields a reader that is already completed.
func NewWaveReader(asset *wave.Asset, delay int) *WaveReader {
	r := &WaveReader{
		asset: asset,
		delay: max(delay, 0),
		ratio: 1,
		gain:  1,
	}

	if asset == nil || asset.Channels() == 0 || asset.Frames() == 0 {
		r.completed = true
		return r
	}

	r.channels = asset.Channels()
	r.frames = asset.Frames()
	r.targetRate = float64(asset.SamplesPerSec())

	return r
}

func (r *WaveReader) SetTargetSamplesPerSec(rate int) {
	if rate <= 0 || r.asset == nil {
		return
	}

	r.targetRate = float64(rate)
	r.ratio = float64(r.asset.SamplesPerSec()) / r.targetRate
}

func (r *WaveReader) FadeIn() {
	if r.targetRate <= 0 {
		return
	}

	r.increment = FadeStep / r.targetRate
	r.paused = false
}

func (r *WaveReader) FadeOut() {
	if r.targetRate <= 0 {
		return
	}

	r.increment = -FadeStep / r.targetRate
}

func (r *WaveReader) IsCompleted() bool { return r.completed }

func (r *WaveReader) Next() {
	if r.delay > 0 {
		r.delay--
		return
	}
	if r.paused || r.completed {
		return
	}

	r.skip++
	if r.skip <= TargetChannels-r.channels {
		return
	}
	r.skip = 0

	r.gain += r.increment
	r.channel = (r.channel + 1) % r.channels
	if r.channel == 0 {
		r.position += r.ratio
	}

	if r.gain <= 0 {
		r.gain = 0
		r.increment = 0
		r.paused = true
	}
	if r.gain >= 1 {
		r.gain = 1
		r.increment = 0
	}
	if r.position > float64(r.frames-1) {
		r.completed = true
	}
}

func (r *WaveReader) Read() float64 {
	if r.delay > 0 || r.paused || r.completed {
		return 0
	}

	whole := math.Floor(r.position)
	frac := r.position - whole

	i1 := r.channel + int(whole)*r.channels
	v1, ok := r.asset.SampleAt(i1)
	if !ok {
		return 0
	}
	// Past the last frame the upper neighbour holds the lower sample.
	v2, ok := r.asset.SampleAt(i1 + r.channels)
	if !ok {
		v2 = v1
	}

	lo, hi := float64(v1), float64(v2)

	return r.gain * (lo + (hi-lo)*frac)
}

// State reports where the reader is in its life cycle.
func (r *WaveReader) State() State {
	switch {
	case r.completed:
		return Completed
	case r.delay > 0:
		return Delaying
	case r.paused:
		return Paused
	}

	return Active
}

// Gain is the current fade gain in [0,1].
func (r *WaveReader) Gain() float64 { return r.gain }

// Position is the fractional play position in source frames.
func (r *WaveReader) Position() float64 { return r.position }

// Ratio is the source frames advanced per output frame.
func (r *WaveReader) Ratio() float64 { return r.ratio }
