// SPDX-License-Identifier: EPL-2.0

package render

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"
)

// Format is the packed layout of one output sample.
type Format int

const (
	S16LE Format = iota
	S32LE
	S32BE
	F32LE
)

var formatNames = [...]string{
	S16LE: "s16le",
	S32LE: "s32le",
	S32BE: "s32be",
	F32LE: "f32le",
}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("Format(%d)", int(f))
	}

	return formatNames[f]
}

// ParseFormat maps a case-insensitive name such as "s16le" to a Format.
func ParseFormat(name string) (Format, error) {
	for i, n := range formatNames {
		if strings.EqualFold(name, n) {
			return Format(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Width is the number of bytes one sample occupies.
func (f Format) Width() int {
	if f == S16LE {
		return 2
	}

	return 4
}

// BitDepth is the number of bits one sample occupies.
func (f Format) BitDepth() int { return f.Width() * 8 }

// put packs v into dst, which must hold Width bytes, and reports whether v
// had to be clamped.
func (f Format) put(dst []byte, v float64) bool {
	switch f {
	case S16LE:
		s, clipped := Int32(v)
		binary.LittleEndian.PutUint16(dst, uint16(s>>16))
		return clipped
	case S32LE:
		s, clipped := Int32(v)
		binary.LittleEndian.PutUint32(dst, uint32(s))
		return clipped
	case S32BE:
		s, clipped := Int32(v)
		binary.BigEndian.PutUint32(dst, uint32(s))
		return clipped
	case F32LE:
		s, clipped := Float32(v)
		binary.LittleEndian.PutUint32(dst, math.Float32bits(s))
		return clipped
	}

	return false
}

// Int32 clamps a mixed sample to the signed 32-bit range and truncates it.
func Int32(v float64) (int32, bool) {
	switch {
	case math.IsNaN(v):
		return 0, true
	case v > math.MaxInt32:
		return math.MaxInt32, true
	case v < math.MinInt32:
		return math.MinInt32, true
	}

	return int32(v), false
}

// Float32 scales a mixed sample to [-1,1].
func Float32(v float64) (float32, bool) {
	x := v / -math.MinInt32
	switch {
	case math.IsNaN(x):
		return 0, true
	case x > 1:
		return 1, true
	case x < -1:
		return -1, true
	}

	return float32(x), false
}
