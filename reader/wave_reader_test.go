// SPDX-License-Identifier: EPL-2.0

package reader

import (
	"math"
	"testing"

	"github.com/ik5/pcmaudio/internal/wavetest"
	"github.com/ik5/pcmaudio/wave"
)

func constantAsset(t *testing.T, rate, channels, frames, value int) *wave.Asset {
	t.Helper()

	return wavetest.Asset(t, rate, 16, channels, frames, func(int, int) int { return value })
}

func TestWaveReader_CompletionBoundary(t *testing.T) {
	t.Parallel()

	// K frames at a 1:1 ratio take 2K ticks: one stereo output frame each.
	tests := []struct {
		name     string
		channels int
		delay    int
		frames   int
		wantTick int
	}{
		{"mono", 1, 0, 4, 8},
		{"stereo", 2, 0, 4, 8},
		{"stereo delayed", 2, 1, 4, 9},
		{"single frame", 1, 0, 1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := NewWaveReader(constantAsset(t, 8000, tt.channels, tt.frames, 1), tt.delay)
			r.SetTargetSamplesPerSec(8000)

			for tick := 1; tick <= tt.wantTick; tick++ {
				r.Next()
				want := tick == tt.wantTick
				if r.IsCompleted() != want {
					t.Fatalf("tick %d: IsCompleted() = %v, want %v", tick, r.IsCompleted(), want)
				}
			}
			if r.State() != Completed {
				t.Errorf("State() = %v, want completed", r.State())
			}
		})
	}
}

func TestWaveReader_StereoChannelOrder(t *testing.T) {
	t.Parallel()

	a := wavetest.Asset(t, 8000, 16, 2, 2, func(f, c int) int { return (f+1)*100 + c })
	r := NewWaveReader(a, 0)
	r.SetTargetSamplesPerSec(8000)

	want := []int32{100, 101, 200, 201}
	for tick, w := range want {
		if got := r.Read(); got != float64(w<<16) {
			t.Errorf("tick %d: Read() = %v, want %v", tick, got, float64(w<<16))
		}
		r.Next()
	}
}

func TestWaveReader_MonoFeedsBothChannels(t *testing.T) {
	t.Parallel()

	a := wavetest.Asset(t, 8000, 16, 1, 2, func(f, _ int) int { return (f + 1) * 10 })
	r := NewWaveReader(a, 0)
	r.SetTargetSamplesPerSec(8000)

	want := []int32{10, 10, 20, 20}
	for tick, w := range want {
		if got := r.Read(); got != float64(w<<16) {
			t.Errorf("tick %d: Read() = %v, want %v", tick, got, float64(w<<16))
		}
		r.Next()
	}
}

func TestWaveReader_LinearInterpolation(t *testing.T) {
	t.Parallel()

	a := wavetest.Asset(t, 8000, 16, 1, 3, func(f, _ int) int { return f * 0x1000 })
	r := NewWaveReader(a, 0)
	r.SetTargetSamplesPerSec(16000)

	if r.Ratio() != 0.5 {
		t.Fatalf("Ratio() = %v, want 0.5", r.Ratio())
	}

	// Position advances by 0.5 per stereo frame.
	want := []float64{0, 0, 0x08000000, 0x08000000, 0x10000000, 0x10000000, 0x18000000}
	for tick, w := range want {
		if got := r.Read(); got != w {
			t.Errorf("tick %d: Read() = %#x, want %#x", tick, int64(got), int64(w))
		}
		r.Next()
	}
}

func TestWaveReader_DownsampleSkipsFrames(t *testing.T) {
	t.Parallel()

	a := wavetest.Asset(t, 16000, 16, 1, 8, func(f, _ int) int { return f })
	r := NewWaveReader(a, 0)
	r.SetTargetSamplesPerSec(8000)

	for frame := range 3 {
		if got := r.Read(); got != float64(int32(2*frame)<<16) {
			t.Errorf("frame %d: Read() = %v, want %v", frame, got, float64(int32(2*frame)<<16))
		}
		r.Next()
		r.Next()
	}
}

func TestWaveReader_SampleWidths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		bits  int
		value int
		want  float64
	}{
		{"16-bit", 16, 0x1234, 0x12340000},
		{"24-bit", 24, 0x123456, 0x12345600},
		{"32-bit", 32, 0x12345678, 0x12345678},
		{"16-bit negative", 16, -1, -0x10000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a := wavetest.Asset(t, 8000, tt.bits, 1, 2, func(int, int) int { return tt.value })
			r := NewWaveReader(a, 0)

			if got := r.Read(); got != tt.want {
				t.Errorf("Read() = %#x, want %#x", int64(got), int64(tt.want))
			}
		})
	}
}

func TestWaveReader_LastFrameHoldsNeighbour(t *testing.T) {
	t.Parallel()

	a := wavetest.Asset(t, 8000, 16, 1, 2, func(f, _ int) int { return (f + 1) * 100 })
	r := NewWaveReader(a, 0)
	r.SetTargetSamplesPerSec(16000)

	// Step to position 1.0, the last frame, which has no upper neighbour.
	for range 4 {
		r.Next()
	}
	if r.Position() != 1 {
		t.Fatalf("Position() = %v, want 1", r.Position())
	}
	if got := r.Read(); got != float64(int32(200)<<16) {
		t.Errorf("Read() = %v, want %v", got, float64(int32(200)<<16))
	}
}

func TestWaveReader_SilenceRoundTrip(t *testing.T) {
	t.Parallel()

	r := NewWaveReader(constantAsset(t, 22050, 1, 100, 0), 0)
	r.SetTargetSamplesPerSec(44100)

	ticks := 0
	for !r.IsCompleted() {
		if got := r.Read(); got != 0 {
			t.Fatalf("tick %d: Read() = %v, want 0", ticks, got)
		}
		r.Next()
		ticks++
		if ticks > 10000 {
			t.Fatal("reader never completed")
		}
	}
}

func TestWaveReader_Delay(t *testing.T) {
	t.Parallel()

	r := NewWaveReader(constantAsset(t, 8000, 2, 4, 7), 2)

	for tick := range 2 {
		if r.State() != Delaying {
			t.Errorf("tick %d: State() = %v, want delaying", tick, r.State())
		}
		if got := r.Read(); got != 0 {
			t.Errorf("tick %d: Read() = %v, want 0 while delaying", tick, got)
		}
		r.Next()
	}

	if r.State() != Active {
		t.Errorf("State() = %v, want active", r.State())
	}
	if r.Position() != 0 {
		t.Errorf("Position() = %v, want 0 after delay", r.Position())
	}
	if got := r.Read(); got != float64(int32(7)<<16) {
		t.Errorf("Read() = %v, want %v", got, float64(int32(7)<<16))
	}
}

func TestWaveReader_FadeMonotonic(t *testing.T) {
	t.Parallel()

	const rate = 44100
	r := NewWaveReader(constantAsset(t, rate, 2, rate, 1000), 0)
	r.SetTargetSamplesPerSec(rate)
	r.FadeOut()

	prev := math.Abs(r.Read())
	for tick := 0; r.State() != Paused; tick++ {
		if tick > rate {
			t.Fatal("fade-out never paused the reader")
		}
		r.Next()
		cur := math.Abs(r.Read())
		if cur > prev {
			t.Fatalf("tick %d: |Read()| rose from %v to %v during fade-out", tick, prev, cur)
		}
		prev = cur
	}

	if r.Gain() != 0 {
		t.Errorf("Gain() = %v, want 0 once paused", r.Gain())
	}
	paused := r.Position()
	r.Next()
	if r.Position() != paused || r.Read() != 0 {
		t.Errorf("paused reader moved: position %v -> %v, Read() = %v", paused, r.Position(), r.Read())
	}

	r.FadeIn()
	if r.State() != Active {
		t.Fatalf("State() = %v after FadeIn, want active", r.State())
	}

	prev = math.Abs(r.Read())
	for tick := 0; r.Gain() < 1; tick++ {
		if tick > rate {
			t.Fatal("fade-in never reached unity")
		}
		r.Next()
		cur := math.Abs(r.Read())
		if cur < prev {
			t.Fatalf("tick %d: |Read()| fell from %v to %v during fade-in", tick, prev, cur)
		}
		prev = cur
	}

	if want := float64(int32(1000) << 16); prev != want {
		t.Errorf("Read() at unity = %v, want %v", prev, want)
	}
}

func TestWaveReader_FadeDuration(t *testing.T) {
	t.Parallel()

	const rate = 44100
	r := NewWaveReader(constantAsset(t, rate, 2, rate, 1000), 0)
	r.SetTargetSamplesPerSec(rate)
	r.FadeOut()

	ticks := 0
	for r.State() != Paused {
		r.Next()
		ticks++
	}

	// 1/(1024/44100) = 43.07 steps, so the 44th step crosses zero.
	if ticks != 44 {
		t.Errorf("fade-out took %d ticks, want 44", ticks)
	}
}

func TestWaveReader_CompletedIsTerminal(t *testing.T) {
	t.Parallel()

	r := NewWaveReader(constantAsset(t, 8000, 1, 1, 5), 0)
	r.Next()
	r.Next()
	if !r.IsCompleted() {
		t.Fatal("IsCompleted() = false, want true")
	}

	r.FadeIn()
	r.Next()
	if r.State() != Completed || r.Read() != 0 {
		t.Errorf("State() = %v, Read() = %v, want completed and 0", r.State(), r.Read())
	}
}

func TestWaveReader_SetTargetSamplesPerSec(t *testing.T) {
	t.Parallel()

	r := NewWaveReader(constantAsset(t, 22050, 1, 10, 1), 0)
	if r.Ratio() != 1 {
		t.Errorf("initial Ratio() = %v, want 1", r.Ratio())
	}

	r.SetTargetSamplesPerSec(44100)
	first := r.Ratio()
	r.SetTargetSamplesPerSec(44100)
	if r.Ratio() != first || first != 0.5 {
		t.Errorf("Ratio() = %v then %v, want 0.5 both times", first, r.Ratio())
	}

	r.SetTargetSamplesPerSec(0)
	r.SetTargetSamplesPerSec(-8000)
	if r.Ratio() != 0.5 {
		t.Errorf("Ratio() = %v after invalid rates, want 0.5", r.Ratio())
	}
}

func TestWaveReader_NilAsset(t *testing.T) {
	t.Parallel()

	r := NewWaveReader(nil, 0)
	r.SetTargetSamplesPerSec(44100)
	r.FadeIn()
	r.Next()

	if !r.IsCompleted() || r.Read() != 0 {
		t.Errorf("nil asset reader: IsCompleted() = %v, Read() = %v", r.IsCompleted(), r.Read())
	}
}

func TestState_String(t *testing.T) {
	t.Parallel()

	for s, want := range map[State]string{
		Delaying:  "delaying",
		Active:    "active",
		Paused:    "paused",
		Completed: "completed",
		State(42): "unknown",
	} {
		if s.String() != want {
			t.Errorf("State(%d).String() = %q, want %q", int(s), s.String(), want)
		}
	}
}

func TestWaveReader_ZeroAllocs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping allocation test in short mode")
	}

	r := NewWaveReader(constantAsset(t, 44100, 2, 44100, 1000), 0)
	r.SetTargetSamplesPerSec(48000)

	allocs := testing.AllocsPerRun(1000, func() {
		r.Next()
		_ = r.Read()
	})

	if allocs > 0 {
		t.Errorf("Next/Read allocated %v times, want 0", allocs)
	}
}

func BenchmarkWaveReader(b *testing.B) {
	a := wavetest.Asset(b, 44100, 16, 2, 44100, func(f, _ int) int { return f % 1000 })

	b.ReportAllocs()
	b.ResetTimer()

	r := NewWaveReader(a, 0)
	r.SetTargetSamplesPerSec(48000)
	var sink float64
	for range b.N {
		if r.IsCompleted() {
			r = NewWaveReader(a, 0)
			r.SetTargetSamplesPerSec(48000)
		}
		r.Next()
		sink += r.Read()
	}
	_ = sink
}
