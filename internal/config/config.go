// SPDX-License-Identifier: EPL-2.0

// Package config loads the pcmplay settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/ik5/pcmaudio/engine"
	"github.com/ik5/pcmaudio/render"
)

var ErrInvalid = errors.New("config: invalid value")

// Config holds all runtime configuration, loaded from environment variables.
type Config struct {
	Rate   int    // output samples per second
	Voices int    // reader slots per engine
	Format string // render.Format name

	BankDir string

	// Output is "" for the audio device, "-" for raw samples on stdout, a
	// path ending in .wav for a WAVE file, or any other path for raw samples.
	Output string

	Duration time.Duration // how long to render
	Interval time.Duration // silence between sounds
	Buffer   time.Duration // device buffer, 0 lets the driver choose
}

// Load reads configuration from environment variables with defaults.
func Load() Config {
	return Config{
		Rate:     envInt("PCMAUDIO_RATE", engine.DefaultTargetSamplesPerSec),
		Voices:   envInt("PCMAUDIO_VOICES", engine.DefaultMaxReaders),
		Format:   envStr("PCMAUDIO_FORMAT", render.S16LE.String()),
		BankDir:  envStr("PCMAUDIO_BANK_DIR", "waves"),
		Output:   envStr("PCMAUDIO_OUTPUT", ""),
		Duration: envMillis("PCMAUDIO_DURATION_MS", 10*time.Second),
		Interval: envMillis("PCMAUDIO_INTERVAL_MS", 250*time.Millisecond),
		Buffer:   envMillis("PCMAUDIO_BUFFER_MS", 0),
	}
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	switch {
	case c.Rate <= 0:
		return fmt.Errorf("%w: rate %d", ErrInvalid, c.Rate)
	case c.Voices <= 0:
		return fmt.Errorf("%w: voices %d", ErrInvalid, c.Voices)
	case c.BankDir == "":
		return fmt.Errorf("%w: empty bank directory", ErrInvalid)
	case c.Duration <= 0:
		return fmt.Errorf("%w: duration %s", ErrInvalid, c.Duration)
	case c.Interval < 0:
		return fmt.Errorf("%w: interval %s", ErrInvalid, c.Interval)
	case c.Buffer < 0:
		return fmt.Errorf("%w: buffer %s", ErrInvalid, c.Buffer)
	}

	if _, err := render.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}

// Ticks is the number of samples Duration covers, rounded down to whole
// stereo frames.
func (c Config) Ticks() int {
	frames := int(int64(c.Rate) * int64(c.Duration) / int64(time.Second))
	return frames * 2
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envMillis(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if ms, err := strconv.ParseFloat(v, 64); err == nil {
			return time.Duration(ms * float64(time.Millisecond))
		}
	}
	return fallback
}
