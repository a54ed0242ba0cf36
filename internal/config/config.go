package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"rubberband/internal/eventbus"
)

// Options is the selection engine configuration. All fields are
// optional in the file; absent keys keep their defaults. The boolean
// fields are phrased as disable flags so that the zero value of Options
// means "everything at its default": touch drags and edge auto-scroll
// are on unless explicitly switched off.
type Options struct {
	MinDragDistance       float32 `toml:"min_drag_distance"`
	DisableTouchDrag      bool    `toml:"disable_touch_drag"`
	DisableEdgeAutoScroll bool    `toml:"disable_edge_auto_scroll"`
	AutoScrollSpeed       float32 `toml:"auto_scroll_speed"`
	EdgeZoneFraction      float32 `toml:"edge_zone_fraction"`
	MinAutoScrollFactor   float32 `toml:"min_auto_scroll_factor"`
	AutoScrollMode        string  `toml:"auto_scroll_mode"` // "jump" or "animate"
	AutoScrollAnimationMs int     `toml:"auto_scroll_animation_ms"`
}

// DefaultOptions returns the default configuration.
func DefaultOptions() Options {
	return Options{
		MinDragDistance:       6,
		AutoScrollSpeed:       80,
		EdgeZoneFraction:      0.12,
		MinAutoScrollFactor:   0.25,
		AutoScrollMode:        "jump",
		AutoScrollAnimationMs: 120,
	}
}

// Normalized fills zero numeric fields with their defaults and maps an
// unknown scroll mode back to "jump". The disable flags need no repair;
// false already means the default.
func (o Options) Normalized() Options {
	def := DefaultOptions()
	if o.MinDragDistance <= 0 {
		o.MinDragDistance = def.MinDragDistance
	}
	if o.AutoScrollSpeed <= 0 {
		o.AutoScrollSpeed = def.AutoScrollSpeed
	}
	if o.EdgeZoneFraction <= 0 {
		o.EdgeZoneFraction = def.EdgeZoneFraction
	}
	if o.MinAutoScrollFactor <= 0 {
		o.MinAutoScrollFactor = def.MinAutoScrollFactor
	}
	if o.AutoScrollMode != "jump" && o.AutoScrollMode != "animate" {
		o.AutoScrollMode = def.AutoScrollMode
	}
	if o.AutoScrollAnimationMs <= 0 {
		o.AutoScrollAnimationMs = def.AutoScrollAnimationMs
	}
	return o
}

// AnimationDuration returns the animate-mode time base.
func (o Options) AnimationDuration() time.Duration {
	return time.Duration(o.AutoScrollAnimationMs) * time.Millisecond
}

// Service handles configuration management
type Service interface {
	Load() (Options, error)
	LoadFromPath(path string) (Options, error)
	SaveToPath(opts Options, path string) error
}

// service is the concrete implementation
type service struct {
	bus      eventbus.EventBus
	filePath string
}

// NewService creates a config service reading from the user config dir.
func NewService() Service {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	dir := filepath.Join(configDir, "rubberband")
	os.MkdirAll(dir, 0755)

	return &service{
		filePath: filepath.Join(dir, "rubberband.toml"),
	}
}

// NewServiceWithBus creates a config service with event bus support
func NewServiceWithBus(bus eventbus.EventBus) Service {
	cs := NewService().(*service)
	cs.bus = bus
	return cs
}

// Load loads the configuration from the default path, falling back to
// defaults when no file exists.
func (cs *service) Load() (Options, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		opts := DefaultOptions()
		if cs.bus != nil {
			cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: ""})
		}
		return opts, nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// LoadFromPath loads configuration from a specific path. Keys absent
// from the file keep their default values.
func (cs *service) LoadFromPath(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("failed to read config file: %w", err)
	}

	opts := DefaultOptions()
	if err := toml.Unmarshal(data, &opts); err != nil {
		return Options{}, fmt.Errorf("failed to parse config: %w", err)
	}
	opts = opts.Normalized()

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: path})
	}

	return opts, nil
}

// SaveToPath saves configuration to a specific path
func (cs *service) SaveToPath(opts Options, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(opts)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{})
	}

	return nil
}
