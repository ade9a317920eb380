// SPDX-License-Identifier: EPL-2.0

// Package engine mixes a fixed pool of readers into one stereo sample stream.
//
// Two engines share the same pull contract:
//
//   - LauncherEngine fires pre-registered one-shot sounds by index. Each new
//     trigger fades every sounding voice out and installs a fresh reader in
//     the next slot of a rotating pool, so earlier voices decay instead of
//     being cut.
//   - RingEngine plays one continuous stream delivered in WAVE chunks. Each
//     chunk owns a ring slot until the ring wraps around to it again.
//
// A render loop calls Read to obtain the current sample and Next to advance
// one tick; a tick is one interleaved channel of the stereo output. A control
// goroutine calls Register, Feed and the fade methods at any time. Every
// engine serializes both sides on a single mutex, and nothing done under that
// mutex performs I/O or WAVE parsing.
//
// IsCompleted reports that at least one reader finished since the last Feed.
// It is a "ready for the next trigger" signal, not "all voices are silent".
package engine
