// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/ik5/pcmaudio/reader"
	"github.com/ik5/pcmaudio/wave"
)

// RingEngine plays a continuous stream fed as a sequence of WAVE chunks.
// Slot i of the ring owns both the chunk and its reader, so a chunk lives
// until the ring comes back to it.
type RingEngine struct {
	mtx sync.Mutex

	assets []*wave.Asset
	pool   pool
	delay  int

	logger *zap.Logger
}

// NewRingEngine returns an empty ring. WithMaxAssets does not apply; the
// ring holds one chunk per reader slot.
func NewRingEngine(opts ...Option) *RingEngine {
	o := buildOptions(opts)

	return &RingEngine{
		assets: make([]*wave.Asset, o.maxReaders),
		pool:   newPool(o.maxReaders, o.targetRate),
		logger: o.logger.Named("ring"),
	}
}

// Feed parses data and plays it in the next ring slot, replacing the chunk
// stored there. Readers already sounding fade out. On error nothing changes.
func (e *RingEngine) Feed(data []byte) error {
	if data == nil {
		e.logger.Warn("feed ignored: nil buffer")
		return fmt.Errorf("%w: nil buffer", ErrInvalidArgument)
	}

	a, err := wave.ParseBytes(data)
	if err != nil {
		e.logger.Warn("feed failed", zap.Int("bytes", len(data)), zap.Error(err))
		return fmt.Errorf("feeding ring: %w", err)
	}

	return e.FeedAsset(a)
}

// FeedAsset plays an already decoded chunk in the next ring slot.
func (e *RingEngine) FeedAsset(a *wave.Asset) error {
	if a == nil {
		return fmt.Errorf("%w: nil asset", ErrInvalidArgument)
	}

	e.mtx.Lock()
	e.assets[e.pool.cursor] = a
	slot := e.pool.install(reader.NewWaveReader(a, e.delay))
	delay := e.delay
	e.delay ^= 1
	e.mtx.Unlock()

	e.logger.Debug("feed",
		zap.Int("slot", slot),
		zap.Int("delay", delay),
		zap.Duration("duration", a.Duration()),
	)

	return nil
}

func (e *RingEngine) SetTargetSamplesPerSec(rate int) {
	e.mtx.Lock()
	defer e.mtx.Unlock()

	e.pool.setTargetSamplesPerSec(rate)
}

// FadeIn resumes only the most recently fed chunk; older chunks keep
// decaying.
func (e *RingEngine) FadeIn() {
	e.mtx.Lock()
	defer e.mtx.Unlock()

	if r := e.pool.slots[e.pool.newest()]; r != nil {
		r.FadeIn()
	}
}

func (e *RingEngine) FadeOut() {
	e.mtx.Lock()
	defer e.mtx.Unlock()

	e.pool.fadeOut()
}

func (e *RingEngine) Next() {
	e.mtx.Lock()
	defer e.mtx.Unlock()

	e.pool.next()
}

func (e *RingEngine) Read() float64 {
	e.mtx.Lock()
	defer e.mtx.Unlock()

	return e.pool.read()
}

func (e *RingEngine) IsCompleted() bool {
	e.mtx.Lock()
	defer e.mtx.Unlock()

	return e.pool.completed
}

// Reset drops every reader. Chunks stay in their slots until overwritten.
func (e *RingEngine) Reset() {
	e.mtx.Lock()
	e.pool.reset()
	e.mtx.Unlock()

	e.logger.Debug("reset")
}

// Slots reports how many ring slots hold a reader.
func (e *RingEngine) Slots() int {
	e.mtx.Lock()
	defer e.mtx.Unlock()

	return e.pool.occupied()
}

// Cursor is the slot the next Feed will fill.
func (e *RingEngine) Cursor() int {
	e.mtx.Lock()
	defer e.mtx.Unlock()

	return e.pool.cursor
}

// Chunk returns the chunk stored in slot, or nil when the slot was never
// fed or lies outside the ring. It survives Reset.
func (e *RingEngine) Chunk(slot int) *wave.Asset {
	e.mtx.Lock()
	defer e.mtx.Unlock()

	if slot < 0 || slot >= len(e.assets) {
		return nil
	}
	return e.assets[slot]
}
