package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSelectionChanged EventType = "SelectionChanged"
	EventDragStarted      EventType = "DragStarted"
	EventDragEnded        EventType = "DragEnded"
	EventAutoScrolled     EventType = "AutoScrolled"
	EventConfigLoaded     EventType = "ConfigLoaded"
	EventConfigSaved      EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SelectionChangedEvent is emitted after every logical change to the
// selection set, carrying the full snapshot after the change.
type SelectionChangedEvent struct {
	Selected []string
}

func (e SelectionChangedEvent) Type() EventType { return EventSelectionChanged }

// DragStartedEvent is emitted when a pointer gesture crosses the drag
// threshold and becomes a marquee drag.
type DragStartedEvent struct {
	DragType DragType
}

func (e DragStartedEvent) Type() EventType { return EventDragStarted }

// DragEndedEvent is emitted when a marquee drag finishes.
type DragEndedEvent struct {
	DragType DragType
	Selected int
}

func (e DragEndedEvent) Type() EventType { return EventDragEnded }

// AutoScrolledEvent is emitted each time edge auto-scroll moves the
// scroll surface during a drag.
type AutoScrolledEvent struct {
	Position float32
}

func (e AutoScrolledEvent) Type() EventType { return EventAutoScrolled }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct{}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
