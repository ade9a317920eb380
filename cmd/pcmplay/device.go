// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/ik5/pcmaudio/reader"
	"github.com/ik5/pcmaudio/render"
)

func otoFormat(f render.Format) (oto.Format, error) {
	switch f {
	case render.S16LE:
		return oto.FormatSignedInt16LE, nil
	case render.F32LE:
		return oto.FormatFloat32LE, nil
	}

	return 0, fmt.Errorf("the audio device cannot play %s; use s16le or f32le", f)
}

// playDevice plays src on the default audio device until d elapses or ctx
// is done.
func playDevice(ctx context.Context, src io.Reader, rate int, format render.Format, buffer, d time.Duration) error {
	f, err := otoFormat(format)
	if err != nil {
		return err
	}

	otoCtx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   rate,
		ChannelCount: reader.TargetChannels,
		Format:       f,
		BufferSize:   buffer,
	})
	if err != nil {
		return fmt.Errorf("opening audio device: %w", err)
	}
	<-ready

	player := otoCtx.NewPlayer(src)
	defer player.Close()
	player.Play()

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
	case <-timer.C:
	}
	player.Pause()

	return player.Err()
}
