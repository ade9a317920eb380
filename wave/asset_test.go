// SPDX-License-Identifier: EPL-2.0

package wave

import (
	"math"
	"slices"
	"testing"
	"time"
)

func TestSampleAt_LeftJustifies(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		bits uint16
		data []byte
		want int32
	}{
		{"16-bit", 16, []byte{0x34, 0x12}, 0x12340000},
		{"16-bit negative", 16, []byte{0x00, 0x80}, math.MinInt32},
		{"16-bit minus one", 16, []byte{0xff, 0xff}, -0x10000},
		{"24-bit", 24, []byte{0x56, 0x34, 0x12}, 0x12345600},
		{"24-bit negative", 24, []byte{0x00, 0x00, 0xff}, -0x1000000},
		{"32-bit", 32, []byte{0x78, 0x56, 0x34, 0x12}, 0x12345678},
		{"32-bit negative", 32, []byte{0xfe, 0xff, 0xff, 0xff}, -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a, err := ParseBytes(container(fmtChunk(FormatPCM, 1, 8000, tt.bits, 0), chunk{"data", tt.data}))
			if err != nil {
				t.Fatalf("ParseBytes() error = %v", err)
			}

			got, ok := a.SampleAt(0)
			if !ok {
				t.Fatal("SampleAt(0) ok = false, want true")
			}
			if got != tt.want {
				t.Errorf("SampleAt(0) = %#x, want %#x", got, tt.want)
			}
		})
	}
}

func TestSampleAt_OutOfRange(t *testing.T) {
	t.Parallel()

	a, err := ParseBytes(container(fmtChunk(FormatPCM, 2, 8000, 16, 0), chunk{"data", make([]byte, 8)}))
	if err != nil {
		t.Fatalf("ParseBytes() error = %v", err)
	}

	for _, i := range []int{-1, 4, 100} {
		if v, ok := a.SampleAt(i); ok || v != 0 {
			t.Errorf("SampleAt(%d) = (%d, %v), want (0, false)", i, v, ok)
		}
	}
	if _, ok := a.SampleAt(3); !ok {
		t.Error("SampleAt(3) ok = false, want true")
	}
}

func TestAsset_FramesIgnoresPartialFrame(t *testing.T) {
	t.Parallel()

	// 3 stereo 16-bit frames plus 2 stray bytes.
	a, err := ParseBytes(container(fmtChunk(FormatPCM, 2, 8000, 16, 0), chunk{"data", make([]byte, 14)}))
	if err != nil {
		t.Fatalf("ParseBytes() error = %v", err)
	}

	if a.Frames() != 3 {
		t.Errorf("Frames() = %d, want 3", a.Frames())
	}
}

func TestAsset_Duration(t *testing.T) {
	t.Parallel()

	a, err := FromInts(44100, 16, 1, make([]int, 4410))
	if err != nil {
		t.Fatalf("FromInts() error = %v", err)
	}

	if a.Duration() != 100*time.Millisecond {
		t.Errorf("Duration() = %v, want 100ms", a.Duration())
	}
}

func TestFromInts_PreservesSamples(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bits     int
		channels int
		samples  []int
	}{
		{"16-bit stereo", 16, 2, []int{0, -1, 32767, -32768, 0x1234, -0x1234}},
		{"24-bit mono", 24, 1, []int{0x123456, -0x123456, 8388607, -8388608}},
		{"32-bit mono", 32, 1, []int{0x12345678, -2, math.MaxInt32, math.MinInt32}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a, err := FromInts(16000, tt.bits, tt.channels, tt.samples)
			if err != nil {
				t.Fatalf("FromInts() error = %v", err)
			}

			if a.BitsPerSample() != tt.bits || a.Channels() != tt.channels || a.SamplesPerSec() != 16000 {
				t.Errorf("format = %d bits/%d ch/%d Hz, want %d/%d/16000",
					a.BitsPerSample(), a.Channels(), a.SamplesPerSec(), tt.bits, tt.channels)
			}
			if got := a.Ints(); !slices.Equal(got, tt.samples) {
				t.Errorf("Ints() = %v, want %v", got, tt.samples)
			}
		})
	}
}

func TestFromInts_RejectsPartialFrames(t *testing.T) {
	t.Parallel()

	if _, err := FromInts(8000, 16, 2, []int{1, 2, 3}); err == nil {
		t.Error("FromInts() error = nil, want error for 3 samples in stereo")
	}
}

func BenchmarkSampleAt(b *testing.B) {
	a, err := FromInts(44100, 16, 2, make([]int, 8192))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	var sink int32
	for i := range b.N {
		v, _ := a.SampleAt(i & 8191)
		sink += v
	}
	_ = sink
}
