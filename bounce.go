// SPDX-License-Identifier: EPL-2.0

package pcmaudio

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/ik5/pcmaudio/reader"
	"github.com/ik5/pcmaudio/render"
)

// chunkTicks is how many ticks are rendered between context checks.
const chunkTicks = 4096

var (
	ErrInvalidTicks = errors.New("pcmaudio: tick count must be even and non-negative")
	ErrInvalidRate  = errors.New("pcmaudio: sample rate must be positive")
)

// Source is an engine as seen by the render side.
type Source interface {
	render.Puller
	IsCompleted() bool
}

// Retrigger is called before a tick whenever the source reports completion.
type Retrigger func() error

// Loop is a Puller that calls its Retrigger before any Read at which the
// source reports completion, the way a playback loop feeds the next sound.
// After the first Retrigger error it stops retriggering and Err reports it.
type Loop struct {
	src Source
	fn  Retrigger
	err error
}

// NewLoop wraps src. A nil fn never retriggers.
func NewLoop(src Source, fn Retrigger) *Loop {
	return &Loop{src: src, fn: fn}
}

func (l *Loop) Next() { l.src.Next() }

func (l *Loop) Read() float64 {
	if l.fn != nil && l.err == nil && l.src.IsCompleted() {
		l.err = l.fn()
	}

	return l.src.Read()
}

// Err is the first error returned by the Retrigger.
func (l *Loop) Err() error { return l.err }

// Bounce renders ticks samples of src into w in the given format. ticks
// must be even so the output holds whole stereo frames. It returns the
// number of bytes written.
func Bounce(ctx context.Context, w io.Writer, src Source, format render.Format, ticks int, onComplete Retrigger) (int64, error) {
	if ticks < 0 || ticks%reader.TargetChannels != 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidTicks, ticks)
	}

	rt := NewLoop(src, onComplete)
	stream, err := render.NewStream(rt, format)
	if err != nil {
		return 0, err
	}

	width := format.Width()
	buf := make([]byte, min(ticks, chunkTicks)*width)
	var written int64

	for remaining := ticks; remaining > 0; {
		if err := ctx.Err(); err != nil {
			return written, err
		}

		n := min(remaining, chunkTicks)
		if _, err := stream.Read(buf[:n*width]); err != nil {
			return written, err
		}
		if rt.Err() != nil {
			return written, fmt.Errorf("retrigger: %w", rt.Err())
		}

		m, err := w.Write(buf[:n*width])
		written += int64(m)
		if err != nil {
			return written, fmt.Errorf("writing samples: %w", err)
		}
		remaining -= n
	}

	return written, nil
}

// BounceWAV renders ticks samples of src as a 16-bit stereo WAVE file at
// rate. It returns the number of stereo frames written.
func BounceWAV(ctx context.Context, ws io.WriteSeeker, src Source, rate, ticks int, onComplete Retrigger) (int, error) {
	if ticks < 0 || ticks%reader.TargetChannels != 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidTicks, ticks)
	}
	if rate <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidRate, rate)
	}

	enc := wav.NewEncoder(ws, rate, 16, reader.TargetChannels, 1)
	rt := NewLoop(src, onComplete)

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: reader.TargetChannels, SampleRate: rate},
		Data:           make([]int, min(ticks, chunkTicks)),
		SourceBitDepth: 16,
	}

	frames := 0
	for remaining := ticks; remaining > 0; {
		if err := ctx.Err(); err != nil {
			return frames, err
		}

		n := min(remaining, chunkTicks)
		buf.Data = buf.Data[:n]
		for i := range n {
			s, _ := render.Int32(rt.Read())
			buf.Data[i] = int(s >> 16)
			rt.Next()
		}
		if rt.Err() != nil {
			return frames, fmt.Errorf("retrigger: %w", rt.Err())
		}

		if err := enc.Write(buf); err != nil {
			return frames, fmt.Errorf("encoding samples: %w", err)
		}
		frames += n / reader.TargetChannels
		remaining -= n
	}

	if err := enc.Close(); err != nil {
		return frames, fmt.Errorf("finalizing WAVE header: %w", err)
	}

	return frames, nil
}
