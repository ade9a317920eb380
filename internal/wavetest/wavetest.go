// SPDX-License-Identifier: EPL-2.0

// Package wavetest builds WAVE fixtures for tests.
package wavetest

import (
	"encoding/binary"
	"math"
	"testing"
	"time"

	"github.com/ik5/pcmaudio/internal/memio"
	"github.com/ik5/pcmaudio/wave"
)

// Samples generates frames*channels interleaved samples from fn.
func Samples(frames, channels int, fn func(frame, channel int) int) []int {
	out := make([]int, frames*channels)
	for f := range frames {
		for c := range channels {
			out[f*channels+c] = fn(f, c)
		}
	}

	return out
}

// Asset builds an asset from generated samples, failing the test on error.
func Asset(tb testing.TB, rate, bits, channels, frames int, fn func(frame, channel int) int) *wave.Asset {
	tb.Helper()

	a, err := wave.FromInts(rate, bits, channels, Samples(frames, channels, fn))
	if err != nil {
		tb.Fatalf("wavetest: building asset: %v", err)
	}

	return a
}

// Bytes encodes a into a WAVE container.
func Bytes(tb testing.TB, a *wave.Asset) []byte {
	tb.Helper()

	var ws memio.WriteSeeker
	if err := wave.Encode(&ws, a); err != nil {
		tb.Fatalf("wavetest: encoding asset: %v", err)
	}

	return ws.Bytes()
}

// Constant returns WAVE bytes where every sample equals value.
func Constant(tb testing.TB, rate, bits, channels, frames, value int) []byte {
	tb.Helper()

	return Bytes(tb, Asset(tb, rate, bits, channels, frames, func(int, int) int { return value }))
}

// Silence returns WAVE bytes of all-zero samples.
func Silence(tb testing.TB, rate, bits, channels, frames int) []byte {
	tb.Helper()

	return Constant(tb, rate, bits, channels, frames, 0)
}

// Tone returns 16-bit WAVE bytes holding a sine at freq Hz with the given
// peak amplitude in [0,1], identical on every channel.
func Tone(tb testing.TB, rate, channels int, freq float64, d time.Duration, amplitude float64) []byte {
	tb.Helper()

	frames := int(int64(rate) * int64(d) / int64(time.Second))
	peak := amplitude * math.MaxInt16

	return Bytes(tb, Asset(tb, rate, 16, channels, frames, func(f, _ int) int {
		return int(math.Round(peak * math.Sin(2*math.Pi*freq*float64(f)/float64(rate))))
	}))
}

// ksDataFormatTail is the part of the KSDATAFORMAT sub-format GUIDs that
// follows the two-byte coding.
var ksDataFormatTail = []byte{0x00, 0x00, 0x00, 0x00, 0x10, 0x00, 0x80, 0x00, 0x00, 0xaa, 0x00, 0x38, 0x9b, 0x71}

// Extensible returns a WAVE_FORMAT_EXTENSIBLE container whose sub-format
// is coding, wrapped around raw little-endian sample bytes.
func Extensible(rate, channels, bits int, coding uint16, data []byte) []byte {
	blockAlign := channels * bits / 8

	b := make([]byte, 0, 68+len(data))
	b = append(b, "RIFF"...)
	b = binary.LittleEndian.AppendUint32(b, uint32(60+len(data)))
	b = append(b, "WAVEfmt "...)
	b = binary.LittleEndian.AppendUint32(b, 40)
	b = binary.LittleEndian.AppendUint16(b, wave.FormatExtensible)
	b = binary.LittleEndian.AppendUint16(b, uint16(channels))
	b = binary.LittleEndian.AppendUint32(b, uint32(rate))
	b = binary.LittleEndian.AppendUint32(b, uint32(rate*blockAlign))
	b = binary.LittleEndian.AppendUint16(b, uint16(blockAlign))
	b = binary.LittleEndian.AppendUint16(b, uint16(bits))
	b = binary.LittleEndian.AppendUint16(b, 22)
	b = binary.LittleEndian.AppendUint16(b, uint16(bits))
	b = binary.LittleEndian.AppendUint32(b, 0)
	b = binary.LittleEndian.AppendUint16(b, coding)
	b = append(b, ksDataFormatTail...)
	b = append(b, "data"...)
	b = binary.LittleEndian.AppendUint32(b, uint32(len(data)))

	return append(b, data...)
}
