// SPDX-License-Identifier: EPL-2.0

package wave

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

const (
	fmtRecordSize = 16

	// An EXTENSIBLE fmt chunk is 40 bytes: the PCM record, cbSize,
	// valid bits, channel mask and the 16-byte sub-format GUID whose first
	// two bytes hold the coding.
	extensibleRecordSize = 40
	extensionPrefixSize  = 10
)

var (
	riffID = [4]byte{'R', 'I', 'F', 'F'}
	waveID = [4]byte{'W', 'A', 'V', 'E'}
	fmtID  = [4]byte{'f', 'm', 't', ' '}
	dataID = [4]byte{'d', 'a', 't', 'a'}
)

// ParseBytes parses an in-memory WAVE container. The returned asset owns a
// copy of the sample bytes, so buf may be reused afterwards.
func ParseBytes(buf []byte) (*Asset, error) {
	if buf == nil {
		return nil, fmt.Errorf("%w: nil buffer", ErrInvalidArgument)
	}

	return Parse(bytes.NewReader(buf))
}

// Parse reads a RIFF/WAVE container from r. On error no partially
// populated asset is returned.
func Parse(r io.Reader) (*Asset, error) {
	return parse(r, false)
}

// ParseHeader reads r up to and including the fmt chunk and returns an
// asset without sample data. The format is not checked for playability,
// so callers can inspect layouts Parse rejects.
func ParseHeader(r io.Reader) (*Asset, error) {
	return parse(r, true)
}

func parse(r io.Reader, headerOnly bool) (*Asset, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: nil reader", ErrInvalidArgument)
	}

	p := &parser{r: r}

	id, err := p.tag("RIFF tag")
	if err != nil {
		return nil, err
	}
	if id != riffID {
		return nil, fmt.Errorf("%w: missing RIFF tag", ErrFormat)
	}

	size, err := p.u32("RIFF size")
	if err != nil {
		return nil, err
	}
	if size == 0 {
		return nil, fmt.Errorf("%w: empty RIFF chunk", ErrFormat)
	}
	total := int64(size) + 8

	if id, err = p.tag("WAVE tag"); err != nil {
		return nil, err
	}
	if id != waveID {
		return nil, fmt.Errorf("%w: missing WAVE tag", ErrFormat)
	}

	a := &Asset{}
	var haveFmt, haveData bool

	for p.pos != total {
		remaining := total - p.pos
		if remaining < 8 {
			// Too short for a chunk header: trailing pad bytes.
			if err := p.skip(remaining, "RIFF padding"); err != nil {
				return nil, err
			}
			break
		}

		id, err := p.tag("chunk tag")
		if err != nil {
			return nil, err
		}
		chunkSize, err := p.u32("chunk size")
		if err != nil {
			return nil, err
		}
		if int64(chunkSize) > total-p.pos {
			return nil, fmt.Errorf("%w: chunk %q of %d bytes exceeds RIFF size", ErrTruncated, id[:], chunkSize)
		}

		switch id {
		case fmtID:
			if err := p.format(a, int64(chunkSize)); err != nil {
				return nil, err
			}
			if headerOnly {
				return a, nil
			}
			haveFmt = true
		case dataID:
			data, err := p.data(int64(chunkSize))
			if err != nil {
				return nil, err
			}
			a.data = data
			haveData = true
		default:
			if err := p.skip(int64(chunkSize), string(id[:])); err != nil {
				return nil, err
			}
		}
	}

	if !haveFmt {
		return nil, fmt.Errorf("%w: missing fmt chunk", ErrFormat)
	}
	if !haveData {
		return nil, fmt.Errorf("%w: missing data chunk", ErrFormat)
	}
	if err := validate(a); err != nil {
		return nil, err
	}

	return a, nil
}

func validate(a *Asset) error {
	switch {
	case a.formatTag == FormatExtensible && a.subFormat != FormatPCM:
		return fmt.Errorf("%w: extensible sub-format 0x%04x", ErrUnsupportedFormat, a.subFormat)
	case a.formatTag != FormatPCM && a.formatTag != FormatExtensible:
		return fmt.Errorf("%w: format tag 0x%04x", ErrUnsupportedFormat, a.formatTag)
	}

	switch a.bitsPerSample {
	case 16, 24, 32:
	default:
		return fmt.Errorf("%w: %d bits per sample", ErrUnsupportedFormat, a.bitsPerSample)
	}

	if a.channels == 0 {
		return fmt.Errorf("%w: zero channels", ErrUnsupportedFormat)
	}
	if a.samplesPerSec == 0 {
		return fmt.Errorf("%w: zero sample rate", ErrUnsupportedFormat)
	}

	return nil
}

// parser tracks the absolute read position so the chunk walk can stop
// exactly at the size declared by the RIFF header.
type parser struct {
	r   io.Reader
	pos int64
	buf [fmtRecordSize]byte
}

func (p *parser) read(dst []byte, what string) error {
	n, err := io.ReadFull(p.r, dst)
	p.pos += int64(n)

	return classify(err, what)
}

func (p *parser) tag(what string) ([4]byte, error) {
	var id [4]byte
	err := p.read(id[:], what)

	return id, err
}

func (p *parser) u32(what string) (uint32, error) {
	if err := p.read(p.buf[:4], what); err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint32(p.buf[:4]), nil
}

func (p *parser) skip(n int64, what string) error {
	m, err := io.CopyN(io.Discard, p.r, n)
	p.pos += m

	return classify(err, what)
}

func (p *parser) format(a *Asset, size int64) error {
	if size < fmtRecordSize {
		return fmt.Errorf("%w: fmt chunk of %d bytes", ErrFormat, size)
	}

	rec := p.buf[:fmtRecordSize]
	if err := p.read(rec, "fmt chunk"); err != nil {
		return err
	}

	a.formatTag = binary.LittleEndian.Uint16(rec[0:2])
	a.channels = binary.LittleEndian.Uint16(rec[2:4])
	a.samplesPerSec = binary.LittleEndian.Uint32(rec[4:8])
	a.avgBytesPerSec = binary.LittleEndian.Uint32(rec[8:12])
	a.blockAlign = binary.LittleEndian.Uint16(rec[12:14])
	a.bitsPerSample = binary.LittleEndian.Uint16(rec[14:16])

	rest := size - fmtRecordSize
	// A short EXTENSIBLE record keeps sub-format 0, which validate rejects.
	if a.formatTag == FormatExtensible && size >= extensibleRecordSize {
		ext := p.buf[:extensionPrefixSize]
		if err := p.read(ext, "fmt extension"); err != nil {
			return err
		}
		a.subFormat = binary.LittleEndian.Uint16(ext[8:10])
		rest -= extensionPrefixSize
	}

	return p.skip(rest, "fmt extension")
}

func (p *parser) data(size int64) ([]byte, error) {
	if l, ok := p.r.(interface{ Len() int }); ok && int64(l.Len()) < size {
		return nil, fmt.Errorf("%w: data chunk declares %d bytes, %d available", ErrTruncated, size, l.Len())
	}

	// Grow with the input instead of trusting the declared size up front.
	var buf bytes.Buffer
	n, err := io.CopyN(&buf, p.r, size)
	p.pos += n
	if err := classify(err, "data chunk"); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func classify(err error, what string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return fmt.Errorf("%w: %s", ErrTruncated, what)
	default:
		return fmt.Errorf("%w: %s: %w", ErrIO, what, err)
	}
}
