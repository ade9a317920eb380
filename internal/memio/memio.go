// SPDX-License-Identifier: EPL-2.0

// Package memio provides an in-memory io.WriteSeeker.
//
// The go-audio WAV encoder patches chunk sizes by seeking back once all
// samples are written, so it needs a seekable sink even when the result only
// ever lives in memory.
package memio

import (
	"errors"
	"fmt"
	"io"
)

var ErrNegativePosition = errors.New("negative position")

// WriteSeeker is a growable byte buffer with a write cursor.
// The zero value is ready to use.
type WriteSeeker struct {
	buf []byte
	pos int
}

// NewWriteSeeker returns a WriteSeeker with room for size bytes.
func NewWriteSeeker(size int) *WriteSeeker {
	return &WriteSeeker{buf: make([]byte, 0, max(size, 0))}
}

func (w *WriteSeeker) Write(p []byte) (int, error) {
	end := w.pos + len(p)
	if end > len(w.buf) {
		if end > cap(w.buf) {
			grown := make([]byte, len(w.buf), max(end, 2*cap(w.buf)))
			copy(grown, w.buf)
			w.buf = grown
		}
		// Bytes skipped by a seek past the end read back as zero.
		clear(w.buf[len(w.buf):end])
		w.buf = w.buf[:end]
	}
	copy(w.buf[w.pos:], p)
	w.pos = end

	return len(p), nil
}

func (w *WriteSeeker) Seek(offset int64, whence int) (int64, error) {
	var next int64
	switch whence {
	case io.SeekStart:
		next = offset
	case io.SeekCurrent:
		next = int64(w.pos) + offset
	case io.SeekEnd:
		next = int64(len(w.buf)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}

	if next < 0 {
		return 0, ErrNegativePosition
	}

	w.pos = int(next)
	return next, nil
}

// Bytes returns everything written so far. The slice aliases the buffer.
func (w *WriteSeeker) Bytes() []byte { return w.buf }

// Len reports the number of bytes written.
func (w *WriteSeeker) Len() int { return len(w.buf) }
