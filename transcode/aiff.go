// SPDX-License-Identifier: EPL-2.0

package transcode

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	"github.com/go-audio/audio"
)

// aiffReader is the part of aiff.Decoder used here, so tests can stub it.
type aiffReader interface {
	Format() *audio.Format
	PCMBuffer(buf *audio.IntBuffer) (int, error)
}

const aiffChunkSamples = 4096

// AIFF decodes Audio Interchange File Format files.
type AIFF struct{}

func (AIFF) Decode(r io.ReadSeeker) (*audio.IntBuffer, error) {
	dec := aiff.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, ErrNotAIFF
	}
	dec.ReadInfo()

	return readAIFF(dec, int(dec.BitDepth))
}

func readAIFF(dec aiffReader, bitDepth int) (*audio.IntBuffer, error) {
	format := dec.Format()
	if format == nil {
		return nil, ErrNoAudio
	}

	out := &audio.IntBuffer{Format: format, SourceBitDepth: bitDepth}
	chunk := &audio.IntBuffer{Format: format, Data: make([]int, aiffChunkSamples)}

	for {
		n, err := dec.PCMBuffer(chunk)
		out.Data = append(out.Data, chunk.Data[:n]...)

		if errors.Is(err, io.EOF) || (err == nil && n == 0) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading aiff data: %w", err)
		}
	}

	return out, nil
}
