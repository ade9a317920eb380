// SPDX-License-Identifier: EPL-2.0

package transcode

import (
	"encoding/binary"
	"fmt"

	"github.com/go-audio/audio"

	"github.com/ik5/pcmaudio/wave"
)

// ToAsset converts a decoded buffer into a playable asset. 8-bit samples
// are widened to 16 bits; 16, 24 and 32-bit samples keep their width. A
// trailing partial frame is dropped.
func ToAsset(buf *audio.IntBuffer) (*wave.Asset, error) {
	if buf == nil || buf.Format == nil {
		return nil, ErrNoAudio
	}

	channels := buf.Format.NumChannels
	rate := buf.Format.SampleRate
	if channels <= 0 || rate <= 0 {
		return nil, fmt.Errorf("%w: %d channels at %d Hz", ErrNoAudio, channels, rate)
	}

	data := buf.Data[:len(buf.Data)-len(buf.Data)%channels]
	if len(data) == 0 {
		return nil, ErrNoAudio
	}

	depth := buf.SourceBitDepth
	switch depth {
	case 8:
		widened := make([]int, len(data))
		for i, v := range data {
			widened[i] = v << 8
		}
		data, depth = widened, 16
	case 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedDepth, depth)
	}

	return wave.FromInts(rate, depth, channels, data)
}

// float32ToInt16 clamps x to [-1,1] and scales it to 16 bits.
func float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// 32767 keeps +1.0 from overflowing
	return int16(x * 32767.0)
}

func floatsToBuffer(samples []float32, rate, channels int) *audio.IntBuffer {
	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(float32ToInt16(s))
	}

	return &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: rate},
		Data:           data,
		SourceBitDepth: 16,
	}
}

// s16leToInts reads little-endian 16-bit samples; a trailing odd byte is
// ignored.
func s16leToInts(b []byte) []int {
	out := make([]int, len(b)/2)
	for i := range out {
		out[i] = int(int16(binary.LittleEndian.Uint16(b[2*i:])))
	}

	return out
}
