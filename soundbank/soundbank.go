// SPDX-License-Identifier: EPL-2.0

// Package soundbank registers a directory of numbered sound files with a
// LauncherEngine.
//
// Files are named by their 1-based number and an extension, for example
// "001.wav" or "12.ogg". File N is registered at engine index N-1. WAVE
// files are parsed directly; other formats, and WAVE layouts the engine
// parser does not accept, go through a transcode.Registry.
package soundbank

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/ik5/pcmaudio/engine"
	"github.com/ik5/pcmaudio/transcode"
	"github.com/ik5/pcmaudio/wave"
)

var (
	ErrNilEngine      = errors.New("soundbank: nil engine")
	ErrDuplicateIndex = errors.New("soundbank: index already loaded from another file")
)

// Report lists what a Load registered and what it had to skip.
type Report struct {
	// Registered holds the engine indexes filled, in ascending order.
	Registered []int
	// Failed maps a file name to the reason it was not registered.
	Failed map[string]error
}

type options struct {
	logger   *zap.Logger
	registry *transcode.Registry
}

type Option func(*options)

// WithLogger sets the logger for per-file progress and failures.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithRegistry replaces the default transcode registry.
func WithRegistry(r *transcode.Registry) Option {
	return func(o *options) {
		if r != nil {
			o.registry = r
		}
	}
}

// Load reads every numbered file in dir of fsys and registers it with e.
// A file that fails is recorded in the report and loading continues.
// Cancelling ctx stops the load between files and returns ctx.Err along
// with what was registered so far.
func Load(ctx context.Context, fsys fs.FS, dir string, e *engine.LauncherEngine, opts ...Option) (Report, error) {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.registry == nil {
		o.registry = transcode.NewDefaultRegistry()
	}

	report := Report{Failed: make(map[string]error)}
	if e == nil {
		return report, ErrNilEngine
	}

	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return report, fmt.Errorf("reading sound bank %s: %w", dir, err)
	}

	log := o.logger.Named("soundbank").With(zap.String("dir", dir))
	loaded := make(map[int]string)

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			log.Warn("load cancelled", zap.Int("registered", len(report.Registered)))
			slices.Sort(report.Registered)
			return report, err
		}
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		index, ok := IndexOf(name)
		if !ok {
			log.Debug("skipping unnumbered file", zap.String("file", name))
			continue
		}

		if prev, dup := loaded[index]; dup {
			report.Failed[name] = fmt.Errorf("%w: %s", ErrDuplicateIndex, prev)
			log.Warn("duplicate sound number", zap.String("file", name), zap.String("loaded", prev))
			continue
		}

		if err := loadFile(fsys, path.Join(dir, name), index, e, o.registry); err != nil {
			report.Failed[name] = err
			log.Warn("sound not registered", zap.String("file", name), zap.Int("index", index), zap.Error(err))
			continue
		}

		loaded[index] = name
		report.Registered = append(report.Registered, index)
		log.Debug("sound registered", zap.String("file", name), zap.Int("index", index))
	}

	slices.Sort(report.Registered)
	log.Info("sound bank loaded",
		zap.Int("registered", len(report.Registered)),
		zap.Int("failed", len(report.Failed)),
	)

	return report, nil
}

func loadFile(fsys fs.FS, name string, index int, e *engine.LauncherEngine, reg *transcode.Registry) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return err
	}

	a, err := decode(name, data, reg)
	if err != nil {
		return err
	}

	return e.RegisterAsset(index, a)
}

func decode(name string, data []byte, reg *transcode.Registry) (*wave.Asset, error) {
	switch strings.ToLower(path.Ext(name)) {
	case ".wav", ".wave":
		a, err := wave.ParseBytes(data)
		if !errors.Is(err, wave.ErrUnsupportedFormat) {
			return a, err
		}
	}

	return reg.Asset(name, bytes.NewReader(data))
}

// IndexOf maps a file name such as "007.wav" to its engine index, 6. Names
// whose stem is not a positive decimal number report false.
func IndexOf(name string) (int, bool) {
	stem := strings.TrimSuffix(name, path.Ext(name))
	if stem == "" || strings.TrimLeft(stem, "0123456789") != "" {
		return 0, false
	}

	n, err := strconv.Atoi(stem)
	if err != nil || n < 1 {
		return 0, false
	}

	return n - 1, true
}
