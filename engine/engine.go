// SPDX-License-Identifier: EPL-2.0

package engine

// Engine is the pull and fade surface shared by LauncherEngine and
// RingEngine. Methods are safe for concurrent use.
type Engine interface {
	// SetTargetSamplesPerSec sets the output rate of every installed reader
	// and of readers installed later.
	SetTargetSamplesPerSec(rate int)
	FadeIn()
	FadeOut()
	// Next advances every installed reader one tick.
	Next()
	// Read returns the unclipped sum of every installed reader.
	Read() float64
	IsCompleted() bool
	// Reset drops every reader and clears the completion flag. Assets stay
	// registered.
	Reset()
}

var (
	_ Engine = (*LauncherEngine)(nil)
	_ Engine = (*RingEngine)(nil)
)
