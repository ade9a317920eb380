// SPDX-License-Identifier: EPL-2.0

package wave

import (
	"fmt"
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/ik5/pcmaudio/internal/memio"
)

// Ints returns every sample right-justified to the asset's native width,
// which is the layout github.com/go-audio/audio buffers use.
func (a *Asset) Ints() []int {
	width := a.BytesPerSample()
	if width == 0 {
		return nil
	}

	shift := 32 - a.BitsPerSample()
	out := make([]int, len(a.data)/width)
	for i := range out {
		v, _ := a.SampleAt(i)
		out[i] = int(v >> shift)
	}

	return out
}

// IntBuffer wraps the asset samples in a go-audio buffer.
func (a *Asset) IntBuffer() *audio.IntBuffer {
	return &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: a.Channels(),
			SampleRate:  a.SamplesPerSec(),
		},
		Data:           a.Ints(),
		SourceBitDepth: a.BitsPerSample(),
	}
}

// Encode writes a as a canonical PCM WAVE container.
func Encode(w io.WriteSeeker, a *Asset) error {
	if w == nil || a == nil {
		return fmt.Errorf("%w: nil writer or asset", ErrInvalidArgument)
	}

	return encode(w, a.SamplesPerSec(), a.BitsPerSample(), a.Channels(), a.Ints())
}

// FromInts builds an asset from right-justified interleaved samples by
// encoding them into a WAVE container and parsing it back, so the result
// is exactly what a reader of that container would see.
func FromInts(sampleRate, bitDepth, channels int, samples []int) (*Asset, error) {
	if sampleRate <= 0 || channels <= 0 {
		return nil, fmt.Errorf("%w: rate %d, channels %d", ErrInvalidArgument, sampleRate, channels)
	}
	if len(samples)%channels != 0 {
		return nil, fmt.Errorf("%w: %d samples do not fill %d channel frames", ErrInvalidArgument, len(samples), channels)
	}

	ws := memio.NewWriteSeeker(44 + len(samples)*bitDepth/8)
	if err := encode(ws, sampleRate, bitDepth, channels, samples); err != nil {
		return nil, err
	}

	return ParseBytes(ws.Bytes())
}

func encode(w io.WriteSeeker, sampleRate, bitDepth, channels int, samples []int) error {
	enc := wav.NewEncoder(w, sampleRate, bitDepth, channels, FormatPCM)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: channels,
			SampleRate:  sampleRate,
		},
		Data:           samples,
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("encoding samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing WAVE header: %w", err)
	}

	return nil
}
