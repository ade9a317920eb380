// SPDX-License-Identifier: EPL-2.0

package wave

import "errors"

var (
	// ErrFormat indicates a missing or malformed RIFF/WAVE structure.
	ErrFormat = errors.New("malformed WAVE container")

	// ErrTruncated indicates a declared size larger than the available input.
	ErrTruncated = errors.New("truncated WAVE container")

	// ErrIO indicates the byte source failed while reading.
	ErrIO = errors.New("WAVE read failure")

	// ErrUnsupportedFormat indicates a well formed container with a sample
	// layout that cannot be played (non PCM, 8-bit, no channels).
	ErrUnsupportedFormat = errors.New("unsupported WAVE format")

	ErrInvalidArgument = errors.New("invalid argument")
)
