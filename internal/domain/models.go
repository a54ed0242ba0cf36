package domain

// DragType is the reconciliation rule applied between the marquee
// rectangle and each item while a drag is active.
type DragType int

const (
	// DragReplace selects exactly the items the marquee covers.
	DragReplace DragType = iota
	// DragAdditive adds covered items to the selection held at drag start.
	DragAdditive
	// DragInvert flips the drag-start state of every covered item.
	DragInvert
)

func (d DragType) String() string {
	switch d {
	case DragReplace:
		return "replace"
	case DragAdditive:
		return "additive"
	case DragInvert:
		return "invert"
	default:
		return "unknown"
	}
}

// Modifiers carries the keyboard modifier state at the time of a
// pointer or click event. Ctrl also covers cmd on platforms that use it.
type Modifiers struct {
	Ctrl  bool
	Shift bool
}

// DragTypeFor maps held modifiers to a drag type: ctrl wins over shift,
// no modifiers means replace.
func DragTypeFor(mods Modifiers) DragType {
	switch {
	case mods.Ctrl:
		return DragInvert
	case mods.Shift:
		return DragAdditive
	default:
		return DragReplace
	}
}

// PointerSource distinguishes precision pointers from touch input;
// touch drags only start a marquee when the configuration allows it.
type PointerSource int

const (
	SourceMouse PointerSource = iota
	SourceTouch
)
