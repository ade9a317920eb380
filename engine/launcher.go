// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"fmt"
	"math"
	"sync"

	"go.uber.org/zap"

	"github.com/ik5/pcmaudio/reader"
	"github.com/ik5/pcmaudio/wave"
)

// LauncherEngine triggers pre-registered one-shot sounds.
type LauncherEngine struct {
	mtx sync.Mutex

	assets []*wave.Asset
	pool   pool

	// delay alternates 0 and 1 across feeds and becomes the startup delay,
	// in ticks, of the next wave reader.
	delay int

	logger *zap.Logger
}

// NewLauncherEngine returns an engine with no registered assets.
func NewLauncherEngine(opts ...Option) *LauncherEngine {
	o := buildOptions(opts)

	return &LauncherEngine{
		assets: make([]*wave.Asset, o.maxAssets),
		pool:   newPool(o.maxReaders, o.targetRate),
		logger: o.logger.Named("launcher"),
	}
}

// Register parses data as a WAVE container and stores it at index,
// replacing any previous asset. On error nothing changes.
func (e *LauncherEngine) Register(index int, data []byte) error {
	if data == nil {
		e.logger.Warn("register ignored: nil buffer", zap.Int("index", index))
		return fmt.Errorf("%w: nil buffer for index %d", ErrInvalidArgument, index)
	}
	if !e.validIndex(index) {
		e.logger.Warn("register ignored: index out of range", zap.Int("index", index), zap.Int("max", len(e.assets)))
		return fmt.Errorf("%w: index %d outside [0,%d)", ErrInvalidArgument, index, len(e.assets))
	}

	a, err := wave.ParseBytes(data)
	if err != nil {
		e.logger.Warn("register failed", zap.Int("index", index), zap.Error(err))
		return fmt.Errorf("registering index %d: %w", index, err)
	}

	return e.RegisterAsset(index, a)
}

// RegisterAsset stores an already decoded asset at index.
func (e *LauncherEngine) RegisterAsset(index int, a *wave.Asset) error {
	if a == nil || !e.validIndex(index) {
		e.logger.Warn("register ignored", zap.Int("index", index), zap.Bool("nil_asset", a == nil))
		return fmt.Errorf("%w: asset for index %d", ErrInvalidArgument, index)
	}

	e.mtx.Lock()
	e.assets[index] = a
	e.mtx.Unlock()

	e.logger.Debug("registered",
		zap.Int("index", index),
		zap.Int("channels", a.Channels()),
		zap.Int("rate", a.SamplesPerSec()),
		zap.Int("bits", a.BitsPerSample()),
		zap.Duration("duration", a.Duration()),
	)

	return nil
}

// Feed starts the asset at index in the next reader slot. Readers already
// sounding fade out and keep decaying in their slots.
func (e *LauncherEngine) Feed(index int) error {
	if !e.validIndex(index) {
		e.logger.Warn("feed ignored: index out of range", zap.Int("index", index))
		return fmt.Errorf("%w: index %d outside [0,%d)", ErrInvalidArgument, index, len(e.assets))
	}

	e.mtx.Lock()
	a := e.assets[index]
	if a == nil {
		e.mtx.Unlock()
		e.logger.Warn("feed ignored: empty slot", zap.Int("index", index))
		return fmt.Errorf("%w: %d", ErrEmptySlot, index)
	}

	slot := e.pool.install(reader.NewWaveReader(a, e.delay))
	delay := e.delay
	e.delay ^= 1
	e.mtx.Unlock()

	e.logger.Debug("feed", zap.Int("index", index), zap.Int("slot", slot), zap.Int("delay", delay))

	return nil
}

// Sleep installs a silent reader that completes after durationMs, so
// IsCompleted rises once the wait is over. A negative duration never
// completes.
func (e *LauncherEngine) Sleep(durationMs float64) error {
	if math.IsNaN(durationMs) {
		return fmt.Errorf("%w: NaN sleep duration", ErrInvalidArgument)
	}

	e.mtx.Lock()
	slot := e.pool.install(reader.NewSilentReader(e.pool.targetRate, durationMs))
	e.mtx.Unlock()

	e.logger.Debug("sleep", zap.Float64("ms", durationMs), zap.Int("slot", slot))

	return nil
}

func (e *LauncherEngine) SetTargetSamplesPerSec(rate int) {
	e.mtx.Lock()
	defer e.mtx.Unlock()

	e.pool.setTargetSamplesPerSec(rate)
}

func (e *LauncherEngine) FadeIn() {
	e.mtx.Lock()
	defer e.mtx.Unlock()

	e.pool.fadeIn()
}

func (e *LauncherEngine) FadeOut() {
	e.mtx.Lock()
	defer e.mtx.Unlock()

	e.pool.fadeOut()
}

func (e *LauncherEngine) Next() {
	e.mtx.Lock()
	defer e.mtx.Unlock()

	e.pool.next()
}

func (e *LauncherEngine) Read() float64 {
	e.mtx.Lock()
	defer e.mtx.Unlock()

	return e.pool.read()
}

func (e *LauncherEngine) IsCompleted() bool {
	e.mtx.Lock()
	defer e.mtx.Unlock()

	return e.pool.completed
}

func (e *LauncherEngine) Reset() {
	e.mtx.Lock()
	e.pool.reset()
	e.mtx.Unlock()

	e.logger.Debug("reset")
}

// Slots reports how many reader slots hold a reader.
func (e *LauncherEngine) Slots() int {
	e.mtx.Lock()
	defer e.mtx.Unlock()

	return e.pool.occupied()
}

// Cursor is the slot the next Feed or Sleep will fill.
func (e *LauncherEngine) Cursor() int {
	e.mtx.Lock()
	defer e.mtx.Unlock()

	return e.pool.cursor
}

// Registered reports whether index holds an asset.
func (e *LauncherEngine) Registered(index int) bool {
	if !e.validIndex(index) {
		return false
	}

	e.mtx.Lock()
	defer e.mtx.Unlock()

	return e.assets[index] != nil
}

// MaxAssets is the number of asset indexes.
func (e *LauncherEngine) MaxAssets() int { return len(e.assets) }

func (e *LauncherEngine) validIndex(index int) bool {
	return index >= 0 && index < len(e.assets)
}
