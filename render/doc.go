// SPDX-License-Identifier: EPL-2.0

// Package render turns the pull contract of an engine into bytes for an
// audio device or a file.
//
// Engines return unclipped sums in the left-justified signed 32-bit domain.
// A Stream pulls one sample per channel slot, clamps it, and packs it into
// one of the supported sample Formats.
package render
