// SPDX-License-Identifier: EPL-2.0

package wave

import (
	"encoding/binary"
	"time"
)

const (
	// FormatPCM is the WAVE_FORMAT_PCM tag.
	FormatPCM = 0x0001
	// FormatExtensible is the WAVE_FORMAT_EXTENSIBLE tag. The sample coding
	// is then the sub-format carried in the fmt extension.
	FormatExtensible = 0xFFFE
	// FormatIEEEFloat is the WAVE_FORMAT_IEEE_FLOAT tag.
	FormatIEEEFloat = 0x0003
)

// Asset is an immutable decoded PCM buffer plus its format record.
type Asset struct {
	formatTag      uint16
	channels       uint16
	samplesPerSec  uint32
	avgBytesPerSec uint32
	blockAlign     uint16
	bitsPerSample  uint16
	subFormat      uint16

	data []byte
}

func (a *Asset) FormatTag() int      { return int(a.formatTag) }
func (a *Asset) Channels() int       { return int(a.channels) }
func (a *Asset) SamplesPerSec() int  { return int(a.samplesPerSec) }
func (a *Asset) AvgBytesPerSec() int { return int(a.avgBytesPerSec) }
func (a *Asset) BlockAlign() int     { return int(a.blockAlign) }
func (a *Asset) BitsPerSample() int  { return int(a.bitsPerSample) }

// SubFormat is the leading code of the EXTENSIBLE sub-format GUID, or 0
// when the fmt chunk carries none.
func (a *Asset) SubFormat() int { return int(a.subFormat) }

// Coding is the effective sample coding: the sub-format for EXTENSIBLE
// records and the format tag otherwise.
func (a *Asset) Coding() int {
	if a.formatTag == FormatExtensible {
		return int(a.subFormat)
	}
	return int(a.formatTag)
}

// DataLength is the size of the "data" chunk in bytes.
func (a *Asset) DataLength() int { return len(a.data) }

// Data returns the raw little-endian sample bytes. Callers must not modify it.
func (a *Asset) Data() []byte { return a.data }

// BytesPerSample is the width of one sample of one channel.
func (a *Asset) BytesPerSample() int { return int(a.bitsPerSample) / 8 }

// Frames is the number of complete multi-channel frames in the data chunk.
// A trailing partial frame is ignored.
func (a *Asset) Frames() int {
	frameBytes := a.BytesPerSample() * a.Channels()
	if frameBytes == 0 {
		return 0
	}
	return len(a.data) / frameBytes
}

// Duration is the playback length at the asset's native rate.
func (a *Asset) Duration() time.Duration {
	if a.samplesPerSec == 0 {
		return 0
	}
	return time.Duration(a.Frames()) * time.Second / time.Duration(a.samplesPerSec)
}

// SampleAt returns the sample at interleaved index i, left-justified into a
// signed 32-bit word. ok is false when i lies outside the data chunk.
func (a *Asset) SampleAt(i int) (v int32, ok bool) {
	width := a.BytesPerSample()
	off := i * width
	if i < 0 || off+width > len(a.data) {
		return 0, false
	}

	b := a.data[off : off+width]
	switch width {
	case 2:
		return int32(uint32(b[0])<<16 | uint32(b[1])<<24), true
	case 3:
		return int32(uint32(b[0])<<8 | uint32(b[1])<<16 | uint32(b[2])<<24), true
	case 4:
		return int32(binary.LittleEndian.Uint32(b)), true
	}

	return 0, false
}
