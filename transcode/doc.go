// SPDX-License-Identifier: EPL-2.0

// Package transcode decodes sound files that wave.Parse does not accept
// and turns them into wave.Asset values an engine can play.
//
// Decoders return a go-audio IntBuffer holding signed, right-justified
// samples at the buffer's SourceBitDepth. ToAsset widens 8-bit buffers to
// 16 bits and re-encodes the samples as a canonical PCM WAVE.
//
// Supported formats:
//   - WAV through github.com/go-audio/wav, including 8-bit unsigned and
//     32-bit IEEE float data
//   - AIFF through github.com/go-audio/aiff
//   - MP3 through github.com/hajimehoshi/go-mp3
//   - Ogg Vorbis through github.com/jfreymuth/oggvorbis
//
// Example usage:
//
//	reg := transcode.NewDefaultRegistry()
//	asset, err := reg.Asset("001.ogg", bytes.NewReader(data))
//	if err != nil {
//	    return err
//	}
//	launcher.RegisterAsset(0, asset)
package transcode
