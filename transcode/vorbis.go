// SPDX-License-Identifier: EPL-2.0

package transcode

import (
	"fmt"
	"io"

	"github.com/go-audio/audio"
	"github.com/jfreymuth/oggvorbis"
)

// Vorbis decodes Ogg Vorbis files to 16-bit samples.
type Vorbis struct{}

func (Vorbis) Decode(r io.ReadSeeker) (*audio.IntBuffer, error) {
	samples, format, err := oggvorbis.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading ogg vorbis: %w", err)
	}
	if format == nil {
		return nil, ErrNoAudio
	}

	return floatsToBuffer(samples, format.SampleRate, format.Channels), nil
}
