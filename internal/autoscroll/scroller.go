// Package autoscroll drives a time-based scroll of the host surface
// while a marquee drag holds the pointer near a viewport edge. The tick
// loop is created lazily when the pointer enters an edge zone, goes
// idle when it leaves, and is invalidated by a generation counter so a
// stale tick can never scroll after Stop.
package autoscroll

import (
	"sync"
	"time"

	"rubberband/internal/geom"
)

// Scroller owns the auto-scroll tick loop for a single drag session.
type Scroller struct {
	mu       sync.Mutex
	cfg      Config
	surface  Surface
	onScroll func(position float32)

	// gen invalidates in-flight tick loops; bumped on Stop and on
	// every loop start.
	gen      uint64
	active   bool
	pointerY float32
	lastTick time.Time
}

// NewScroller creates a scroller with the given config. Zero config
// fields take their defaults.
func NewScroller(cfg Config) *Scroller {
	return &Scroller{cfg: cfg.withDefaults()}
}

// AttachSurface sets the scroll surface. A nil surface makes all
// scrolling a silent no-op.
func (s *Scroller) AttachSurface(surf Surface) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.surface = surf
}

// SetOnScroll installs the callback invoked after each tick that moves
// the surface. It runs outside the scroller's lock.
func (s *Scroller) SetOnScroll(fn func(position float32)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.onScroll = fn
}

// Active reports whether a tick loop is currently running.
func (s *Scroller) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.active
}

// UpdatePointer records the pointer's y position relative to the
// viewport. If the pointer sits in an edge zone and no loop is
// running, a loop is started.
func (s *Scroller) UpdatePointer(y float32) {
	s.mu.Lock()
	s.pointerY = y
	if s.active || s.surface == nil || !s.surface.HasContent() {
		s.mu.Unlock()
		return
	}
	dir, _ := zoneFor(y, s.surface.ViewportExtent(), s.cfg.EdgeZoneFraction)
	if dir == 0 {
		s.mu.Unlock()
		return
	}
	s.active = true
	s.gen++
	s.lastTick = time.Time{}
	gen := s.gen
	s.mu.Unlock()

	go s.loop(gen)
}

// Stop cancels any running loop synchronously and idempotently. A tick
// already scheduled observes the generation bump and does nothing.
func (s *Scroller) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.active = false
	s.gen++
	s.lastTick = time.Time{}
}

func (s *Scroller) loop(gen uint64) {
	ticker := time.NewTicker(s.cfg.TickInterval)
	defer ticker.Stop()

	for now := range ticker.C {
		if !s.tick(gen, now) {
			return
		}
	}
}

// Tick runs one scroll step against the current loop generation. It is
// what the internal loop calls each interval; tests call it directly
// with controlled timestamps. Returns false once the loop should stop.
func (s *Scroller) Tick(now time.Time) bool {
	s.mu.Lock()
	gen := s.gen
	s.mu.Unlock()
	return s.tick(gen, now)
}

func (s *Scroller) tick(gen uint64, now time.Time) bool {
	s.mu.Lock()
	if gen != s.gen || !s.active {
		s.mu.Unlock()
		return false
	}
	surf := s.surface
	if surf == nil || !surf.HasContent() {
		s.active = false
		s.mu.Unlock()
		return false
	}
	dir, prox := zoneFor(s.pointerY, surf.ViewportExtent(), s.cfg.EdgeZoneFraction)
	if dir == 0 {
		// Pointer left both zones: loop goes idle and is re-armed by
		// the next UpdatePointer inside a zone.
		s.active = false
		s.lastTick = time.Time{}
		s.mu.Unlock()
		return false
	}
	if s.lastTick.IsZero() {
		s.lastTick = now
		s.mu.Unlock()
		return true
	}
	dt := float32(now.Sub(s.lastTick).Seconds())
	s.lastTick = now
	if dt <= 0 {
		s.mu.Unlock()
		return true
	}

	speed := s.cfg.Speed * SpeedFactor(prox, s.cfg.MinFactor)
	pos := surf.Position()
	var target float32
	switch s.cfg.Mode {
	case ModeAnimate:
		span := speed * float32(s.cfg.AnimationDuration.Seconds()) * float32(dir)
		target = geom.Clamp(pos+span, surf.MinExtent(), surf.MaxExtent())
	default:
		target = geom.Clamp(pos+speed*dt*float32(dir), surf.MinExtent(), surf.MaxExtent())
	}

	if target == pos {
		s.mu.Unlock()
		return true
	}

	// The move is applied under the same lock hold as the generation
	// check above, so once Stop returns no in-flight tick can still
	// scroll the surface. Only the callback runs unlocked.
	if s.cfg.Mode == ModeAnimate {
		surf.AnimateTo(target, s.cfg.AnimationDuration)
	} else {
		surf.JumpTo(target)
	}
	position := surf.Position()
	onScroll := s.onScroll
	s.mu.Unlock()

	if onScroll != nil {
		onScroll(position)
	}
	return true
}

// SpeedFactor maps zone proximity in [0,1] to a speed factor in
// [minFactor, 1].
func SpeedFactor(proximity, minFactor float32) float32 {
	f := minFactor + (1-minFactor)*geom.Clamp(proximity, 0, 1)
	return geom.Clamp(f, 0, 1)
}

// zoneFor evaluates the pointer's y position against the viewport:
// dir is -1 in the top zone, +1 in the bottom zone, 0 between them.
// proximity runs from 0 at a zone's outer boundary to 1 at the
// viewport edge, clamped for pointers dragged past the edge.
func zoneFor(y, viewportH, fraction float32) (dir int, proximity float32) {
	zoneH := viewportH * fraction
	if zoneH <= 0 {
		return 0, 0
	}
	if y <= zoneH {
		return -1, geom.Clamp((zoneH-y)/zoneH, 0, 1)
	}
	if y >= viewportH-zoneH {
		return 1, geom.Clamp((y-(viewportH-zoneH))/zoneH, 0, 1)
	}
	return 0, 0
}
