// SPDX-License-Identifier: EPL-2.0

package main

import (
	"errors"

	"go.uber.org/zap"

	"github.com/ik5/pcmaudio/engine"
)

var errEmptyPlaylist = errors.New("nothing to play")

// playlist feeds registered sounds in order, forever, with an optional
// pause between them. It is the Retrigger of the render loop.
type playlist struct {
	e       *engine.LauncherEngine
	order   []int
	pos     int
	pauseMs float64
	resting bool
	logger  *zap.Logger
}

func newPlaylist(e *engine.LauncherEngine, order []int, pauseMs float64, logger *zap.Logger) (*playlist, error) {
	if len(order) == 0 {
		return nil, errEmptyPlaylist
	}

	return &playlist{e: e, order: order, pauseMs: pauseMs, logger: logger}, nil
}

// advance starts the next step. A finished reader keeps raising completion
// until its slot is reused, so the engine is cleared first; by then every
// older voice has long faded out.
func (p *playlist) advance() error {
	p.e.Reset()

	if p.pauseMs > 0 && p.pos > 0 && !p.resting {
		p.resting = true
		return p.e.Sleep(p.pauseMs)
	}
	p.resting = false

	index := p.order[p.pos%len(p.order)]
	p.pos++
	p.logger.Debug("playing", zap.Int("sound", index+1), zap.Int("step", p.pos))

	return p.e.Feed(index)
}
