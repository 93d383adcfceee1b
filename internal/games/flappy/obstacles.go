package flappy

import (
	"math/rand"

	"github.com/vovakirdan/folio-arcade/internal/config"
	"github.com/vovakirdan/folio-arcade/internal/core"
)

// Pipe is a pair of columns with a gap. Height is the bottom of the top
// column, so the gap spans [Height, Height+gap].
type Pipe struct {
	X      float64 `json:"x"`
	Height float64 `json:"height"`
}

// Span returns the pipe's horizontal extent.
func (p Pipe) Span(width float64) core.Span {
	return core.Span{Lo: p.X, Hi: p.X + width}
}

// Gap returns the pipe's passable vertical band.
func (p Pipe) Gap(gap float64) core.Span {
	return core.Span{Lo: p.Height, Hi: p.Height + gap}
}

// PipeQueue holds the pipes ordered left to right. Its length never changes:
// a pipe leaving on the left is replaced by one entering on the right.
type PipeQueue struct {
	pipes  []Pipe
	rng    *rand.Rand
	cfg    config.FlappyPipes
	fieldW float64
}

// NewPipeQueue creates a queue holding the configured initial pipes.
func NewPipeQueue(rng *rand.Rand, cfg config.FlappyPipes, fieldW float64) *PipeQueue {
	pq := &PipeQueue{
		pipes:  make([]Pipe, 0, len(cfg.Initial)),
		rng:    rng,
		cfg:    cfg,
		fieldW: fieldW,
	}
	pq.Reset()
	return pq
}

// Reset restores the initial pipe sequence.
func (pq *PipeQueue) Reset() {
	pq.pipes = pq.pipes[:0]
	for _, p := range pq.cfg.Initial {
		pq.pipes = append(pq.pipes, Pipe{X: p.X, Height: p.Height})
	}
}

// Scroll moves every pipe left by speed. If the leading pipe's trailing
// edge has left the field it is recycled to the right edge with a new
// random height. Returns the number of pipes recycled.
func (pq *PipeQueue) Scroll(speed float64) int {
	for i := range pq.pipes {
		pq.pipes[i].X -= speed
	}

	if len(pq.pipes) == 0 || pq.pipes[0].X+pq.cfg.Width >= 0 {
		return 0
	}

	copy(pq.pipes, pq.pipes[1:])
	pq.pipes[len(pq.pipes)-1] = Pipe{X: pq.fieldW, Height: pq.randomHeight()}
	return 1
}

// randomHeight returns a uniform integer height in [MinHeight, MaxHeight).
func (pq *PipeQueue) randomHeight() float64 {
	span := pq.cfg.MaxHeight - pq.cfg.MinHeight
	if span <= 0 {
		return float64(pq.cfg.MinHeight)
	}
	return float64(pq.cfg.MinHeight + pq.rng.Intn(span))
}

// Collides reports whether a bird occupying band horizontally at height y
// hits any pipe.
func (pq *PipeQueue) Collides(band core.Span, y float64) bool {
	for _, p := range pq.pipes {
		if !band.Overlaps(p.Span(pq.cfg.Width)) {
			continue
		}
		if !p.Gap(pq.cfg.Gap).Contains(y) {
			return true
		}
	}
	return false
}

// Pipes returns a copy of the current pipes.
func (pq *PipeQueue) Pipes() []Pipe {
	out := make([]Pipe, len(pq.pipes))
	copy(out, pq.pipes)
	return out
}
