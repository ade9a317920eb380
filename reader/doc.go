// SPDX-License-Identifier: EPL-2.0

// Package reader provides playback cursors that turn a decoded asset into a
// stream of samples for a fixed stereo output.
//
// A Reader is driven one output sample at a time: Next advances the cursor
// by one tick and Read returns the sample for the current tick. The output
// is interleaved stereo, so a full output frame is two ticks.
//
// WaveReader plays a wave.Asset with linear-rate conversion and a short fade
// envelope. Its life cycle is
//
//	Delaying -> Active <-> Paused
//	            Active  -> Completed
//
// Delaying lasts for the startup delay given to NewWaveReader. A completed
// fade-out latches Paused; FadeIn resumes. Completed is terminal and is
// reached once the play position passes the last frame.
//
// SilentReader produces zeros for a fixed duration and then completes, which
// lets a pool express an explicit wait.
//
// Readers are not safe for concurrent use; the engine that owns them
// serializes access.
package reader
