// SPDX-License-Identifier: EPL-2.0

package reader

// SilentReader outputs zeros for a fixed duration, then completes.
type SilentReader struct {
	durationMs float64
	length     float64
	ticks      float64
	completed  bool
}

var _ Reader = (*SilentReader)(nil)

// NewSilentReader returns a reader that stays silent for durationMs at
// sampleRate. A negative duration never completes.
func NewSilentReader(sampleRate int, durationMs float64) *SilentReader {
	s := &SilentReader{durationMs: durationMs}
	s.SetTargetSamplesPerSec(sampleRate)

	return s
}

func (s *SilentReader) SetTargetSamplesPerSec(rate int) {
	if rate <= 0 {
		return
	}

	s.length = TargetChannels * float64(rate) * s.durationMs / 1000
}

func (s *SilentReader) FadeIn()  {}
func (s *SilentReader) FadeOut() {}

func (s *SilentReader) IsCompleted() bool { return s.completed }

func (s *SilentReader) Next() {
	if s.durationMs < 0 {
		return
	}

	s.ticks++
	if s.ticks > s.length-1 {
		s.completed = true
	}
}

func (s *SilentReader) Read() float64 { return 0 }
