// SPDX-License-Identifier: EPL-2.0

package transcode

import (
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/go-audio/audio"

	"github.com/ik5/pcmaudio/wave"
)

// Decoder turns an encoded file into PCM samples.
type Decoder interface {
	Decode(r io.ReadSeeker) (*audio.IntBuffer, error)
}

// Registry maps file extensions ("wav", "ogg") to decoders.
type Registry struct {
	codecs map[string]Decoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.Mutex{},
	}
}

// NewDefaultRegistry returns a registry holding every decoder of this
// package.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("wav", WAV{})
	r.Register("wave", WAV{})
	r.Register("aif", AIFF{})
	r.Register("aiff", AIFF{})
	r.Register("mp3", MP3{})
	r.Register("ogg", Vorbis{})
	r.Register("oga", Vorbis{})

	return r
}

// Register binds ext, with or without its leading dot, to d.
func (r *Registry) Register(ext string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[normalizeExt(ext)] = d
}

func (r *Registry) Get(ext string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[normalizeExt(ext)]
	return d, ok
}

// Lookup finds the decoder for a file name by its extension.
func (r *Registry) Lookup(name string) (Decoder, error) {
	ext := filepath.Ext(name)
	d, ok := r.Get(ext)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownExtension, ext)
	}

	return d, nil
}

// Extensions lists the registered extensions in sorted order.
func (r *Registry) Extensions() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	exts := make([]string, 0, len(r.codecs))
	for ext := range r.codecs {
		exts = append(exts, ext)
	}
	slices.Sort(exts)

	return exts
}

// Asset decodes rs with the decoder registered for name's extension and
// converts the result with ToAsset.
func (r *Registry) Asset(name string, rs io.ReadSeeker) (*wave.Asset, error) {
	d, err := r.Lookup(name)
	if err != nil {
		return nil, err
	}

	buf, err := d.Decode(rs)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", name, err)
	}

	return ToAsset(buf)
}

func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
