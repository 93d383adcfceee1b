package snake

import (
	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/folio-arcade/internal/core"
)

// body is the snake's segment list, head first, with an occupancy index
// keyed by cell number so collision and free-cell checks stay O(1).
type body struct {
	width    int
	segments []core.Point
	occupied *intmap.Map[int, struct{}]
}

func newBody(width, height int) *body {
	return &body{
		width:    width,
		segments: make([]core.Point, 0, 16),
		occupied: intmap.New[int, struct{}](width * height),
	}
}

func (b *body) key(p core.Point) int {
	return p.Y*b.width + p.X
}

// reset replaces the body with a single segment.
func (b *body) reset(head core.Point) {
	b.occupied.Clear()
	b.segments = b.segments[:0]
	b.pushHead(head)
}

func (b *body) head() core.Point {
	return b.segments[0]
}

func (b *body) len() int {
	return len(b.segments)
}

// contains reports whether any segment, tail included, sits on p.
func (b *body) contains(p core.Point) bool {
	_, ok := b.occupied.Get(b.key(p))
	return ok
}

func (b *body) pushHead(p core.Point) {
	b.segments = append(b.segments, core.Point{})
	copy(b.segments[1:], b.segments)
	b.segments[0] = p
	b.occupied.Put(b.key(p), struct{}{})
}

func (b *body) popTail() {
	last := len(b.segments) - 1
	b.occupied.Del(b.key(b.segments[last]))
	b.segments = b.segments[:last]
}

// snapshot returns a copy of the segments.
func (b *body) snapshot() []core.Point {
	out := make([]core.Point, len(b.segments))
	copy(out, b.segments)
	return out
}
