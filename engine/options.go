// SPDX-License-Identifier: EPL-2.0

package engine

import "go.uber.org/zap"

const (
	DefaultMaxAssets           = 256
	DefaultMaxReaders          = 16
	DefaultTargetSamplesPerSec = 44100
)

type options struct {
	maxAssets  int
	maxReaders int
	targetRate int
	logger     *zap.Logger
}

// Option configures an engine at construction.
type Option func(*options)

func defaultOptions() options {
	return options{
		maxAssets:  DefaultMaxAssets,
		maxReaders: DefaultMaxReaders,
		targetRate: DefaultTargetSamplesPerSec,
		logger:     zap.NewNop(),
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithMaxAssets sets how many assets a LauncherEngine can hold. RingEngine
// ignores it. Values below 1 are ignored.
func WithMaxAssets(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxAssets = n
		}
	}
}

// WithMaxReaders sets the number of reader slots. Values below 1 are ignored.
func WithMaxReaders(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxReaders = n
		}
	}
}

// WithTargetSamplesPerSec sets the initial output rate.
func WithTargetSamplesPerSec(rate int) Option {
	return func(o *options) {
		if rate > 0 {
			o.targetRate = rate
		}
	}
}

// WithLogger sets the logger used on the control path. The pull path never
// logs.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
