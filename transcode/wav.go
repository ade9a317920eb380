// SPDX-License-Identifier: EPL-2.0

package transcode

import (
	"fmt"
	"io"
	"math"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/ik5/pcmaudio/wave"
)

// WAV decodes RIFF/WAVE files, including the 8-bit and IEEE float layouts
// wave.Parse rejects.
type WAV struct{}

func (WAV) Decode(r io.ReadSeeker) (*audio.IntBuffer, error) {
	// go-audio/wav reports the EXTENSIBLE tag but not its sub-format.
	hdr, err := wave.ParseHeader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotWAV, err)
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewinding wav: %w", err)
	}
	isFloat := hdr.Coding() == wave.FormatIEEEFloat

	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, ErrNotWAV
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("reading wav data: %w", err)
	}
	if buf == nil || buf.Format == nil {
		return nil, ErrNoAudio
	}
	buf.SourceBitDepth = int(dec.BitDepth)

	switch {
	case isFloat && dec.BitDepth == 32:
		floats := make([]float32, len(buf.Data))
		for i, v := range buf.Data {
			floats[i] = math.Float32frombits(uint32(int32(v)))
		}
		return floatsToBuffer(floats, buf.Format.SampleRate, buf.Format.NumChannels), nil
	case isFloat:
		return nil, fmt.Errorf("%w: %d-bit float", ErrUnsupportedDepth, dec.BitDepth)
	case dec.BitDepth == 8:
		// 8-bit WAVE samples are unsigned.
		for i, v := range buf.Data {
			buf.Data[i] = v - 128
		}
	}

	return buf, nil
}
