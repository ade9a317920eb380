// SPDX-License-Identifier: EPL-2.0

package reader

// TargetChannels is the channel count of the output stream.
const TargetChannels = 2

// FadeStep is the gain change per second of output; a full ramp between
// silence and unity takes targetRate/FadeStep active ticks.
const FadeStep = 1024.0

// Reader is a playback cursor pulled by an engine.
type Reader interface {
	// SetTargetSamplesPerSec sets the output rate. Non-positive rates are ignored.
	SetTargetSamplesPerSec(rate int)
	FadeIn()
	FadeOut()
	IsCompleted() bool
	// Next advances one output tick.
	Next()
	// Read returns the sample for the current tick.
	Read() float64
}

// State is the position of a WaveReader in its life cycle.
type State int

const (
	Delaying State = iota
	Active
	Paused
	Completed
)

func (s State) String() string {
	switch s {
	case Delaying:
		return "delaying"
	case Active:
		return "active"
	case Paused:
		return "paused"
	case Completed:
		return "completed"
	}

	return "unknown"
}
