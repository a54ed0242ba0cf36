// Package reconcile recomputes each item's selection membership
// against the live marquee rectangle on every change during a drag.
package reconcile

import (
	"rubberband/internal/domain"
	"rubberband/internal/geom"
	"rubberband/internal/selection"
	"rubberband/internal/spatial"
)

// Engine applies the per-drag-type membership rule. It reads item
// rectangles from the registry and writes the resulting delta to the
// selection set as a single batched change.
type Engine struct {
	reg *spatial.Registry
	set *selection.Set
}

// NewEngine creates an engine over the given registry and selection set.
func NewEngine(reg *spatial.Registry, set *selection.Set) *Engine {
	return &Engine{reg: reg, set: set}
}

// Apply reconciles every registered item with a resolvable rectangle
// against the marquee. Items without geometry this frame keep their
// current membership. base is the selection captured when the drag
// crossed the distance threshold; it is only consulted for additive and
// invert drags.
func (e *Engine) Apply(marquee geom.Rect, dragType domain.DragType, base selection.Snapshot) {
	var add, remove []string
	for _, id := range e.reg.IDs() {
		rect, ok := e.reg.Resolve(id)
		if !ok {
			continue
		}
		overlap := marquee.Intersects(rect)
		wasBase := base.Contains(id)

		var want bool
		switch dragType {
		case domain.DragAdditive:
			want = overlap || wasBase
		case domain.DragInvert:
			want = overlap != wasBase
		default: // replace
			want = overlap
		}

		// Only emit a change when membership actually differs, so a
		// reconciliation pass that settles on the same set is silent.
		if want == e.set.IsSelected(id) {
			continue
		}
		if want {
			add = append(add, id)
		} else {
			remove = append(remove, id)
		}
	}
	e.set.Apply(add, remove)
}
