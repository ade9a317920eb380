// SPDX-License-Identifier: EPL-2.0

// Package pcmaudio is a small real-time mixing engine for PCM WAVE sounds.
//
// It plays pre-decoded sounds into an interleaved stereo stream at a chosen
// output rate. Each sound is converted to that rate by linear interpolation
// and faded in or out by a per-voice gain envelope. It is built for programs
// that react to events with short sound effects or speech, such as screen
// readers and game front ends.
//
// # Packages
//
//   - wave parses RIFF/WAVE containers into immutable assets.
//   - reader holds the per-voice playback cursors (WaveReader, SilentReader).
//   - engine mixes voices: LauncherEngine for indexed one-shot sounds,
//     RingEngine for a stream delivered in chunks.
//   - render packs the mixed samples into bytes for a device or a file.
//   - transcode decodes WAV variants, AIFF, MP3 and Ogg Vorbis into assets.
//   - soundbank registers a directory of numbered sound files.
//
// # Pull Contract
//
// Engines have no goroutines of their own. A render loop pulls the output
// one tick at a time, where a tick is one channel of one stereo frame:
//
//	for {
//	    sample := e.Read() // unclipped sum in the left-justified int32 domain
//	    e.Next()
//	    ...
//	}
//
// Control code calls Register, Feed, FadeIn and FadeOut from any goroutine.
// Both sides serialize on one mutex per engine, and nothing done under that
// mutex parses, decodes or performs I/O.
//
// # Quick Start
//
//	e := engine.NewLauncherEngine(engine.WithTargetSamplesPerSec(44100))
//	if err := e.Register(0, clickWAV); err != nil {
//	    return err
//	}
//	_ = e.Feed(0)
//
//	out, _ := os.Create("click.wav")
//	defer out.Close()
//	_, err := pcmaudio.BounceWAV(ctx, out, e, 44100, 44100*2, nil)
//
// For live output, wrap an engine in a render.Stream and hand it to an audio
// device; cmd/pcmplay does this with github.com/ebitengine/oto/v3.
package pcmaudio
