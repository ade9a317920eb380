// SPDX-License-Identifier: EPL-2.0

// Package wave decodes RIFF/WAVE containers into immutable PCM assets.
//
// An Asset holds the "fmt " record and a private copy of the "data" chunk of
// a canonical little-endian PCM WAVE stream. Assets are what the playback
// readers consume; they are never mutated after Parse returns.
//
// # Parsing
//
//	asset, err := wave.ParseBytes(buf)
//	if errors.Is(err, wave.ErrTruncated) {
//	    // the container declares more bytes than it carries
//	}
//
// Parse walks sub-chunks by tag and little-endian size until the read
// position reaches the size declared by the RIFF header. Only "fmt " and
// "data" are interpreted; every other chunk is skipped.
//
// # Sample Format
//
// Supported sample widths are 16, 24 and 32 bits. Samples are exposed in a
// left-justified signed 32-bit domain so every width shares one scale:
//
//	16-bit 0x1234     -> 0x12340000
//	24-bit 0x123456   -> 0x12345600
//	32-bit 0x12345678 -> 0x12345678
//
// # Errors
//
// The package defines these sentinel errors:
//   - ErrFormat: RIFF/WAVE tags or mandatory chunks are missing
//   - ErrTruncated: a declared size runs past the available input
//   - ErrIO: the byte source failed
//   - ErrUnsupportedFormat: a valid container this package cannot play
//   - ErrInvalidArgument: nil input
//
// # Encoding
//
// Encode and FromInts build containers through github.com/go-audio/wav,
// which is handy for fixtures and for turning decoded buffers back into
// assets.
package wave
