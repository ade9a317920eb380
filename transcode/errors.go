// SPDX-License-Identifier: EPL-2.0

package transcode

import "errors"

var (
	// ErrUnknownExtension indicates no decoder is registered for a file name.
	ErrUnknownExtension = errors.New("transcode: no decoder for extension")

	// ErrNotWAV indicates the input is not a RIFF/WAVE file.
	ErrNotWAV = errors.New("transcode: not a WAV file")

	// ErrNotAIFF indicates the input is not an AIFF file.
	ErrNotAIFF = errors.New("transcode: not an AIFF file")

	// ErrUnsupportedDepth indicates a sample width ToAsset cannot represent.
	ErrUnsupportedDepth = errors.New("transcode: unsupported bit depth")

	// ErrNoAudio indicates a decoder produced no samples or no format.
	ErrNoAudio = errors.New("transcode: no audio decoded")
)
