package reconcile

import (
	"testing"

	"github.com/stretchr/testify/require"

	"rubberband/internal/domain"
	"rubberband/internal/geom"
	"rubberband/internal/selection"
	"rubberband/internal/spatial"
)

// fixture lays out four 10x10 items in a vertical column at x 0..10,
// tops 0, 20, 40, 60.
func fixture() (*spatial.Registry, *selection.Set, *Engine) {
	reg := spatial.NewRegistry()
	for i, id := range []string{"a", "b", "c", "d"} {
		top := float32(i * 20)
		rect := geom.Rect{Left: 0, Top: top, Right: 10, Bottom: top + 10}
		reg.Register(id, func() (geom.Rect, bool) { return rect, true })
	}
	set := selection.New()
	return reg, set, NewEngine(reg, set)
}

// marqueeOver spans the given vertical extent across all columns.
func marqueeOver(top, bottom float32) geom.Rect {
	return geom.Rect{Left: -5, Top: top, Right: 15, Bottom: bottom}
}

func TestReplaceSelectsExactlyOverlapped(t *testing.T) {
	t.Parallel()

	_, set, eng := fixture()
	set.SelectMany([]string{"d"}) // stale state from before the drag

	eng.Apply(marqueeOver(0, 25), domain.DragReplace, selection.Snapshot{})

	require.Equal(t, selection.Snapshot{"a", "b"}, set.Snapshot())
}

func TestReplaceIgnoresZeroAreaTouch(t *testing.T) {
	t.Parallel()

	_, set, eng := fixture()

	// Marquee bottom exactly at item b's top edge: touching, not overlap.
	eng.Apply(marqueeOver(5, 20), domain.DragReplace, selection.Snapshot{})

	require.Equal(t, selection.Snapshot{"a"}, set.Snapshot())
}

func TestAdditiveKeepsBaseSelection(t *testing.T) {
	t.Parallel()

	_, set, eng := fixture()
	set.SelectMany([]string{"d"})
	base := set.Snapshot()

	eng.Apply(marqueeOver(0, 25), domain.DragAdditive, base)

	require.Equal(t, selection.Snapshot{"a", "b", "d"}, set.Snapshot())
}

func TestAdditiveNeverSelectsOutsideMarqueeOrBase(t *testing.T) {
	t.Parallel()

	_, set, eng := fixture()
	base := set.Snapshot() // empty

	eng.Apply(marqueeOver(0, 5), domain.DragAdditive, base)

	require.Equal(t, selection.Snapshot{"a"}, set.Snapshot())
}

func TestInvertFlipsOverlappedItems(t *testing.T) {
	t.Parallel()

	_, set, eng := fixture()
	set.SelectMany([]string{"a", "d"})
	base := set.Snapshot()

	// Covers a and b: a flips off, b flips on, d stays from base.
	eng.Apply(marqueeOver(0, 25), domain.DragInvert, base)

	require.Equal(t, selection.Snapshot{"b", "d"}, set.Snapshot())
}

func TestInvertRevertsWhenMarqueeRetreats(t *testing.T) {
	t.Parallel()

	_, set, eng := fixture()
	set.SelectMany([]string{"a"})
	base := set.Snapshot()

	// Marquee sweeps over everything, then shrinks back to nothing.
	eng.Apply(marqueeOver(0, 70), domain.DragInvert, base)
	eng.Apply(marqueeOver(0, 0.5), domain.DragInvert, base)

	require.Equal(t, selection.Snapshot{"a"}, set.Snapshot(),
		"items no longer overlapped should return to their base state")
}

func TestUnresolvableItemsKeepMembership(t *testing.T) {
	t.Parallel()

	reg := spatial.NewRegistry()
	rect := geom.Rect{Left: 0, Top: 0, Right: 10, Bottom: 10}
	reg.Register("visible", func() (geom.Rect, bool) { return rect, true })
	reg.Register("unmounted", func() (geom.Rect, bool) { return geom.Rect{}, false })

	set := selection.New()
	set.SelectMany([]string{"unmounted"})
	eng := NewEngine(reg, set)

	eng.Apply(marqueeOver(0, 50), domain.DragReplace, selection.Snapshot{})

	require.True(t, set.IsSelected("unmounted"),
		"items without geometry this frame must not be touched")
	require.True(t, set.IsSelected("visible"))
}

func TestSettledPassEmitsNothing(t *testing.T) {
	t.Parallel()

	_, set, eng := fixture()
	eng.Apply(marqueeOver(0, 25), domain.DragReplace, selection.Snapshot{})

	calls := 0
	set.Subscribe(func(selection.Snapshot) { calls++ })

	// Same marquee again: membership identical, no notification.
	eng.Apply(marqueeOver(0, 25), domain.DragReplace, selection.Snapshot{})

	require.Zero(t, calls)
}
