// SPDX-License-Identifier: EPL-2.0

package render

import (
	"io"
	"sync/atomic"
)

// Puller is the render side of an engine: Read returns the sample for the
// current tick and Next advances one tick.
type Puller interface {
	Next()
	Read() float64
}

// Stream is an endless io.Reader over a Puller. Each sample written is one
// Read followed by one Next. Stream is not safe for concurrent Reads, but
// Ticks and Clipped may be called from any goroutine.
type Stream struct {
	src    Puller
	format Format

	ticks   atomic.Int64
	clipped atomic.Int64
}

var _ io.Reader = (*Stream)(nil)

// NewStream returns a stream that packs src into format.
func NewStream(src Puller, format Format) (*Stream, error) {
	if src == nil {
		return nil, ErrNilPuller
	}
	if format < S16LE || format > F32LE {
		return nil, ErrUnknownFormat
	}

	return &Stream{src: src, format: format}, nil
}

// Read fills p with whole samples only. A p shorter than one sample yields
// io.ErrShortBuffer.
func (s *Stream) Read(p []byte) (int, error) {
	width := s.format.Width()
	samples := len(p) / width
	if samples == 0 {
		if len(p) == 0 {
			return 0, nil
		}
		return 0, io.ErrShortBuffer
	}

	var clipped int64
	for i := range samples {
		if s.format.put(p[i*width:], s.src.Read()) {
			clipped++
		}
		s.src.Next()
	}

	s.ticks.Add(int64(samples))
	if clipped > 0 {
		s.clipped.Add(clipped)
	}

	return samples * width, nil
}

// Format is the packed sample layout.
func (s *Stream) Format() Format { return s.format }

// Ticks is the number of samples pulled so far.
func (s *Stream) Ticks() int64 { return s.ticks.Load() }

// Clipped is the number of samples that had to be clamped.
func (s *Stream) Clipped() int64 { return s.clipped.Load() }
