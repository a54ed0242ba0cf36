// Package ranges resolves shift-click range selection: it orders the
// registered items by their on-screen position and expands an
// anchor→target pair into the inclusive span between them.
package ranges

import (
	"sort"

	"github.com/chewxy/math32"

	"rubberband/internal/geom"
	"rubberband/internal/spatial"
)

// topTolerance absorbs sub-pixel jitter between items that sit on the
// same visual row: tops within this distance compare as equal and fall
// through to the left coordinate.
const topTolerance = 0.5

// Resolver computes visual orderings over a registry.
type Resolver struct {
	reg *spatial.Registry
}

// NewResolver creates a resolver over the given registry.
func NewResolver(reg *spatial.Registry) *Resolver {
	return &Resolver{reg: reg}
}

type entry struct {
	id   string
	rect geom.Rect
}

// VisualOrder returns the ids of all items with resolvable rectangles,
// sorted top-to-bottom and left-to-right within a row. This
// approximates reading order for lists and row-major grids.
func (r *Resolver) VisualOrder() []string {
	entries := r.orderedEntries()
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.id
	}
	return ids
}

func (r *Resolver) orderedEntries() []entry {
	ids := r.reg.IDs()
	entries := make([]entry, 0, len(ids))
	for _, id := range ids {
		rect, ok := r.reg.Resolve(id)
		if !ok {
			// Not participating in geometry this frame.
			continue
		}
		entries = append(entries, entry{id: id, rect: rect})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i].rect, entries[j].rect
		if math32.Abs(a.Top-b.Top) <= topTolerance {
			return a.Left < b.Left
		}
		return a.Top < b.Top
	})
	return entries
}

// Resolve expands the anchor→target pair into the inclusive id span
// between their positions in visual order. The second return is false
// when either endpoint has no resolvable rectangle; the caller is
// expected to fall back to selecting only the target and leave the
// anchor alone.
func (r *Resolver) Resolve(anchorID, targetID string) ([]string, bool) {
	entries := r.orderedEntries()
	ai, ti := -1, -1
	for i, e := range entries {
		if e.id == anchorID {
			ai = i
		}
		if e.id == targetID {
			ti = i
		}
	}
	if ai < 0 || ti < 0 {
		return nil, false
	}
	if ai > ti {
		ai, ti = ti, ai
	}
	span := make([]string, 0, ti-ai+1)
	for _, e := range entries[ai : ti+1] {
		span = append(span, e.id)
	}
	return span, true
}
