package ui

import (
	"sync"
	"time"

	"rubberband/internal/geom"
)

// listSurface adapts the demo list's scroll offset to the controller's
// scroll surface. Units are terminal rows. It is mutated both from the
// bubbletea loop and from the auto-scroll tick goroutine, hence the
// mutex.
type listSurface struct {
	mu       sync.Mutex
	pos      float32
	viewport float32
	content  float32
}

func newListSurface(rows int) *listSurface {
	return &listSurface{content: float32(rows)}
}

func (s *listSurface) setViewport(h int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.viewport = float32(h)
	s.pos = geom.Clamp(s.pos, 0, s.maxLocked())
}

func (s *listSurface) maxLocked() float32 {
	m := s.content - s.viewport
	if m < 0 {
		return 0
	}
	return m
}

// offset returns the index of the first visible row.
func (s *listSurface) offset() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return int(s.pos)
}

func (s *listSurface) scrollBy(delta float32) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pos = geom.Clamp(s.pos+delta, 0, s.maxLocked())
}

func (s *listSurface) Position() float32 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.pos
}

func (s *listSurface) MinExtent() float32 { return 0 }

func (s *listSurface) MaxExtent() float32 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.maxLocked()
}

func (s *listSurface) ViewportExtent() float32 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.viewport
}

func (s *listSurface) HasContent() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.content > s.viewport
}

func (s *listSurface) JumpTo(pos float32) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pos = geom.Clamp(pos, 0, s.maxLocked())
}

// AnimateTo degrades to a jump: a terminal cell grid has no sub-row
// positions worth easing through.
func (s *listSurface) AnimateTo(pos float32, _ time.Duration) {
	s.JumpTo(pos)
}
