package autoscroll

import "time"

// Surface is the scroll position of the host's scrollable view. All
// extents are in the same units as pointer coordinates.
type Surface interface {
	Position() float32
	MinExtent() float32
	MaxExtent() float32
	ViewportExtent() float32
	HasContent() bool
	JumpTo(pos float32)
	AnimateTo(pos float32, d time.Duration)
}

// Mode selects how scroll adjustments are applied.
type Mode int

const (
	// ModeJump advances the scroll position immediately each tick.
	ModeJump Mode = iota
	// ModeAnimate re-issues an eased transition toward a moving target
	// each tick, behaving as a continuously updated glide.
	ModeAnimate
)

func (m Mode) String() string {
	switch m {
	case ModeJump:
		return "jump"
	case ModeAnimate:
		return "animate"
	default:
		return "unknown"
	}
}

// Config controls edge auto-scroll behavior. Zero values fall back to
// the defaults below.
type Config struct {
	// Speed is the maximum scroll speed in units per second, reached
	// when the pointer sits exactly at the viewport edge.
	Speed float32
	// EdgeZoneFraction is the height of each trigger zone as a
	// fraction of the viewport height.
	EdgeZoneFraction float32
	// MinFactor is the speed factor at the outer boundary of a zone.
	MinFactor float32
	// Mode selects jump or animate application.
	Mode Mode
	// AnimationDuration is the time base for ModeAnimate transitions.
	AnimationDuration time.Duration
	// TickInterval is the loop rate while scrolling.
	TickInterval time.Duration
}

const (
	DefaultSpeed             float32 = 80
	DefaultEdgeZoneFraction  float32 = 0.12
	DefaultMinFactor         float32 = 0.25
	DefaultAnimationDuration         = 120 * time.Millisecond
	DefaultTickInterval              = 16 * time.Millisecond
)

func (c Config) withDefaults() Config {
	if c.Speed <= 0 {
		c.Speed = DefaultSpeed
	}
	if c.EdgeZoneFraction <= 0 {
		c.EdgeZoneFraction = DefaultEdgeZoneFraction
	}
	if c.MinFactor <= 0 {
		c.MinFactor = DefaultMinFactor
	}
	if c.AnimationDuration <= 0 {
		c.AnimationDuration = DefaultAnimationDuration
	}
	if c.TickInterval <= 0 {
		c.TickInterval = DefaultTickInterval
	}
	return c
}
