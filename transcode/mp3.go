// SPDX-License-Identifier: EPL-2.0

package transcode

import (
	"fmt"
	"io"

	"github.com/go-audio/audio"
	gomp3 "github.com/hajimehoshi/go-mp3"
)

// mp3Reader is the part of gomp3.Decoder used here, so tests can stub it.
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

// MP3 decodes MPEG-1/2 Layer III files. go-mp3 always produces 16-bit
// stereo.
type MP3 struct{}

func (MP3) Decode(r io.ReadSeeker) (*audio.IntBuffer, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("opening mp3 stream: %w", err)
	}

	return readMP3(dec)
}

func readMP3(dec mp3Reader) (*audio.IntBuffer, error) {
	pcm, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("reading mp3 frames: %w", err)
	}

	return &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 2, SampleRate: dec.SampleRate()},
		Data:           s16leToInts(pcm),
		SourceBitDepth: 16,
	}, nil
}
