// Package rubberband implements rectangular marquee multi-selection
// for scrollable collections: pointer and keyboard driven selection
// semantics (click, ctrl-click, shift-click range select), a drag state
// machine with replace/additive/invert reconciliation against live item
// rectangles, and edge-proximity auto-scroll with content-anchored
// rectangle correction.
//
// The Controller is the single type a host holds. Items register a
// rectangle accessor; pointer events are forwarded as PointerDown,
// PointerMove and PointerUp; selection changes are observable through
// Subscribe and through the optional event bus.
package rubberband

import (
	"sync"

	"rubberband/internal/autoscroll"
	"rubberband/internal/config"
	"rubberband/internal/domain"
	"rubberband/internal/eventbus"
	"rubberband/internal/geom"
	"rubberband/internal/ranges"
	"rubberband/internal/reconcile"
	"rubberband/internal/selection"
	"rubberband/internal/spatial"
)

// Aliases so hosts never import internal packages.
type (
	Point     = geom.Point
	Rect      = geom.Rect
	RectFunc  = spatial.RectFunc
	Snapshot  = selection.Snapshot
	Listener  = selection.Listener
	Modifiers = domain.Modifiers
	DragType  = domain.DragType
	Source    = domain.PointerSource
	Surface   = autoscroll.Surface
	Options   = config.Options
)

const (
	DragReplace  = domain.DragReplace
	DragAdditive = domain.DragAdditive
	DragInvert   = domain.DragInvert

	SourceMouse = domain.SourceMouse
	SourceTouch = domain.SourceTouch
)

// Pt is shorthand for Point{x, y}.
func Pt(x, y float32) Point { return geom.Pt(x, y) }

// DefaultOptions returns the default configuration.
func DefaultOptions() Options { return config.DefaultOptions() }

// dragState is the controller's gesture state.
type dragState int

const (
	stateIdle dragState = iota
	// statePending: pointer is down but movement has not crossed the
	// drag threshold yet.
	statePending
	stateDragging
)

// dragSession holds the transient state of one pointer-down-to-up
// cycle. It never outlives the gesture.
type dragSession struct {
	dragType     domain.DragType
	base         selection.Snapshot
	source       domain.PointerSource
	startPointer geom.Point
	startScroll  float32
	lastPointer  geom.Point
	marquee      geom.Rect
	hasMarquee   bool
}

// Controller owns the selection set and the marquee drag state machine
// for one scrollable collection.
type Controller struct {
	mu   sync.Mutex
	opts config.Options
	bus  eventbus.EventBus

	reg      *spatial.Registry
	sel      *selection.Set
	resolver *ranges.Resolver
	engine   *reconcile.Engine
	scroller *autoscroll.Scroller
	surface  autoscroll.Surface

	state   dragState
	session *dragSession
	closed  bool
}

// New creates a controller with the given options. bus may be nil; it
// is only used to fan domain events out to the host application.
func New(opts config.Options, bus eventbus.EventBus) *Controller {
	opts = opts.Normalized()

	c := &Controller{
		opts: opts,
		bus:  bus,
		reg:  spatial.NewRegistry(),
		sel:  selection.New(),
	}
	c.resolver = ranges.NewResolver(c.reg)
	c.engine = reconcile.NewEngine(c.reg, c.sel)

	mode := autoscroll.ModeJump
	if opts.AutoScrollMode == "animate" {
		mode = autoscroll.ModeAnimate
	}
	c.scroller = autoscroll.NewScroller(autoscroll.Config{
		Speed:             opts.AutoScrollSpeed,
		EdgeZoneFraction:  opts.EdgeZoneFraction,
		MinFactor:         opts.MinAutoScrollFactor,
		Mode:              mode,
		AnimationDuration: opts.AnimationDuration(),
	})
	c.scroller.SetOnScroll(c.handleAutoScroll)

	c.sel.SetRegisteredProvider(c.reg.IDs)
	if bus != nil {
		c.sel.Subscribe(func(snap selection.Snapshot) {
			bus.Publish(domain.SelectionChangedEvent{Selected: snap})
		})
	}
	return c
}

// Register adds an item to the spatial registry. Re-registering an id
// replaces its accessor.
func (c *Controller) Register(id string, fn RectFunc) {
	c.reg.Register(id, fn)
}

// Unregister removes an item from the spatial registry. Its selection
// state, if any, is left alone.
func (c *Controller) Unregister(id string) {
	c.reg.Unregister(id)
}

// AttachSurface connects the host's scroll surface, enabling scroll
// anchoring and edge auto-scroll.
func (c *Controller) AttachSurface(s Surface) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.surface = s
	c.scroller.AttachSurface(s)
}

// DetachSurface disconnects the scroll surface; scrolling becomes a
// silent no-op.
func (c *Controller) DetachSurface() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.scroller.Stop()
	c.surface = nil
	c.scroller.AttachSurface(nil)
}

// SetAllIDsProvider installs the candidate source consulted by
// SelectAll before falling back to the registered ids.
func (c *Controller) SetAllIDsProvider(fn func() []string) {
	c.sel.SetAllProvider(fn)
}

// Subscribe registers a selection listener; the returned function
// unsubscribes it.
func (c *Controller) Subscribe(fn Listener) func() {
	return c.sel.Subscribe(fn)
}

// Selection returns the current selection snapshot.
func (c *Controller) Selection() Snapshot {
	return c.sel.Snapshot()
}

// IsSelected reports whether the id is selected.
func (c *Controller) IsSelected(id string) bool {
	return c.sel.IsSelected(id)
}

// Anchor returns the range-selection anchor, if one is set.
func (c *Controller) Anchor() (string, bool) {
	return c.sel.Anchor()
}

// SelectAll selects the provider candidates, or all registered ids.
func (c *Controller) SelectAll() {
	c.sel.SelectAll(nil)
}

// Clear empties the selection. An active drag keeps running; its next
// reconciliation pass repopulates from the marquee.
func (c *Controller) Clear() {
	c.sel.Clear()
}

// ItemClicked applies list-box click semantics for a tap on an item:
// shift extends from the anchor, ctrl toggles, a plain click replaces.
func (c *Controller) ItemClicked(id string, mods Modifiers) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()

	if mods.Shift {
		if anchor, ok := c.sel.Anchor(); ok && c.reg.Contains(anchor) {
			span, ok := c.resolver.Resolve(anchor, id)
			if !ok {
				// Anchor has no geometry right now: select only the
				// target, leave the anchor alone.
				c.sel.SetSelectedKeepingAnchor([]string{id})
				return
			}
			if mods.Ctrl {
				c.sel.SelectMany(span)
			} else {
				c.sel.SetSelected(span)
			}
			return
		}
	}
	if mods.Ctrl {
		c.sel.Toggle(id)
		return
	}
	c.sel.Replace(id)
}

// IsSelecting reports whether a marquee drag is in progress.
func (c *Controller) IsSelecting() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state == stateDragging
}

// MarqueeRect returns the live marquee rectangle while dragging.
func (c *Controller) MarqueeRect() (Rect, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != stateDragging || c.session == nil || !c.session.hasMarquee {
		return geom.Rect{}, false
	}
	return c.session.marquee, true
}

// PointerDown begins a gesture at the given viewport position. A press
// while another gesture is active is ignored. A replace press clears
// the selection immediately, before any drag threshold is reached.
func (c *Controller) PointerDown(p Point, mods Modifiers, src Source) {
	c.mu.Lock()
	if c.closed || c.state != stateIdle {
		c.mu.Unlock()
		return
	}
	dragType := domain.DragTypeFor(mods)
	c.session = &dragSession{
		dragType:     dragType,
		source:       src,
		startPointer: p,
		lastPointer:  p,
		startScroll:  c.scrollOffsetLocked(),
	}
	c.state = statePending
	c.mu.Unlock()

	if dragType == domain.DragReplace {
		c.sel.Clear()
	}

	c.mu.Lock()
	if c.session != nil {
		c.session.base = c.sel.Snapshot()
	}
	c.mu.Unlock()
}

// PointerMove advances the gesture. Without an active gesture it is a
// no-op, tolerating out-of-order event delivery.
func (c *Controller) PointerMove(p Point, mods Modifiers) {
	c.mu.Lock()
	if c.closed || c.session == nil {
		c.mu.Unlock()
		return
	}
	sess := c.session
	sess.lastPointer = p

	switch c.state {
	case statePending:
		if sess.startPointer.Dist(p) < c.opts.MinDragDistance {
			c.mu.Unlock()
			return
		}
		if sess.source == domain.SourceTouch && c.opts.DisableTouchDrag {
			c.mu.Unlock()
			return
		}
		// Crossing the threshold re-derives the drag type and the base
		// selection from the state at this moment, not at press time.
		sess.dragType = domain.DragTypeFor(mods)
		sess.base = c.sel.Snapshot()
		c.state = stateDragging
		c.updateMarqueeLocked(p)
		c.feedScrollerLocked(p)
		marquee, dragType, base := sess.marquee, sess.dragType, sess.base
		c.mu.Unlock()

		if c.bus != nil {
			c.bus.Publish(domain.DragStartedEvent{DragType: dragType})
		}
		c.engine.Apply(marquee, dragType, base)

	case stateDragging:
		c.updateMarqueeLocked(p)
		c.feedScrollerLocked(p)
		marquee, dragType, base := sess.marquee, sess.dragType, sess.base
		c.mu.Unlock()

		c.engine.Apply(marquee, dragType, base)

	default:
		c.mu.Unlock()
	}
}

// PointerUp ends the gesture: the marquee is torn down, auto-scroll is
// stopped synchronously and the controller returns to idle. A release
// with no active gesture is a no-op.
func (c *Controller) PointerUp(p Point) {
	c.mu.Lock()
	if c.session == nil {
		c.mu.Unlock()
		return
	}
	wasDragging := c.state == stateDragging
	dragType := c.session.dragType
	c.session = nil
	c.state = stateIdle
	c.mu.Unlock()

	c.scroller.Stop()

	if wasDragging && c.bus != nil {
		c.bus.Publish(domain.DragEndedEvent{
			DragType: dragType,
			Selected: c.sel.Len(),
		})
	}
}

// Close tears the controller down: any drag is abandoned and the
// auto-scroll loop is cancelled. Further calls are no-ops.
func (c *Controller) Close() {
	c.mu.Lock()
	c.closed = true
	c.session = nil
	c.state = stateIdle
	c.mu.Unlock()

	c.scroller.Stop()
}

// handleAutoScroll runs after each auto-scroll tick that moved the
// surface: the marquee is rebuilt against the new scroll offset and
// reconciled, since content has shifted under a stationary pointer.
func (c *Controller) handleAutoScroll(position float32) {
	c.mu.Lock()
	if c.closed || c.state != stateDragging || c.session == nil {
		c.mu.Unlock()
		return
	}
	c.updateMarqueeLocked(c.session.lastPointer)
	marquee, dragType, base := c.session.marquee, c.session.dragType, c.session.base
	c.mu.Unlock()

	c.engine.Apply(marquee, dragType, base)

	if c.bus != nil {
		c.bus.Publish(domain.AutoScrolledEvent{Position: position})
	}
}

// updateMarqueeLocked recomputes the marquee rectangle with scroll
// anchoring: the start corner is shifted by the scroll delta since
// press so it stays fixed relative to content, not the viewport.
func (c *Controller) updateMarqueeLocked(p geom.Point) {
	sess := c.session
	scrollDelta := c.scrollOffsetLocked() - sess.startScroll
	anchor := geom.Pt(sess.startPointer.X, sess.startPointer.Y-scrollDelta)
	sess.marquee = geom.RectFromPoints(anchor, p)
	sess.hasMarquee = true
}

func (c *Controller) feedScrollerLocked(p geom.Point) {
	if c.opts.DisableEdgeAutoScroll || c.surface == nil {
		return
	}
	c.scroller.UpdatePointer(p.Y)
}

func (c *Controller) scrollOffsetLocked() float32 {
	if c.surface == nil || !c.surface.HasContent() {
		return 0
	}
	return c.surface.Position()
}
