// SPDX-License-Identifier: EPL-2.0

package engine

import "github.com/ik5/pcmaudio/reader"

// pool is a fixed ring of reader slots with a rotating install cursor.
// Callers hold the engine mutex.
type pool struct {
	slots      []reader.Reader
	cursor     int
	completed  bool
	targetRate int
}

func newPool(size, targetRate int) pool {
	return pool{
		slots:      make([]reader.Reader, size),
		targetRate: targetRate,
	}
}

// install fades out every sounding reader, then replaces the reader at the
// cursor with r and advances the cursor. It returns the slot used.
func (p *pool) install(r reader.Reader) int {
	p.fadeOut()

	slot := p.cursor
	r.SetTargetSamplesPerSec(p.targetRate)
	p.slots[slot] = r

	p.cursor = (p.cursor + 1) % len(p.slots)
	p.completed = false

	return slot
}

// newest is the slot filled by the latest install.
func (p *pool) newest() int {
	return (p.cursor - 1 + len(p.slots)) % len(p.slots)
}

func (p *pool) setTargetSamplesPerSec(rate int) {
	if rate <= 0 {
		return
	}

	p.targetRate = rate
	for _, r := range p.slots {
		if r != nil {
			r.SetTargetSamplesPerSec(rate)
		}
	}
}

func (p *pool) fadeIn() {
	for _, r := range p.slots {
		if r != nil {
			r.FadeIn()
		}
	}
}

func (p *pool) fadeOut() {
	for _, r := range p.slots {
		if r != nil {
			r.FadeOut()
		}
	}
}

func (p *pool) next() {
	for _, r := range p.slots {
		if r != nil {
			r.Next()
			p.completed = p.completed || r.IsCompleted()
		}
	}
}

func (p *pool) read() float64 {
	var sum float64
	for _, r := range p.slots {
		if r != nil {
			sum += r.Read()
		}
	}

	return sum
}

func (p *pool) reset() {
	clear(p.slots)
	p.completed = false
}

func (p *pool) occupied() int {
	n := 0
	for _, r := range p.slots {
		if r != nil {
			n++
		}
	}

	return n
}
