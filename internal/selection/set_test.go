package selection

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// counter records every notification a listener receives.
type counter struct {
	calls int
	last  Snapshot
}

func (c *counter) listen(s Snapshot) {
	c.calls++
	c.last = s
}

func TestSelectNotifiesOnce(t *testing.T) {
	t.Parallel()

	set := New()
	var c counter
	set.Subscribe(c.listen)

	set.Select("a")
	set.Select("a")

	require.Equal(t, 1, c.calls, "selecting twice should notify once")
	require.Equal(t, Snapshot{"a"}, c.last)
}

func TestSelectMovesAnchorEvenWhenAlreadySelected(t *testing.T) {
	t.Parallel()

	set := New()
	set.Select("a")
	set.Select("b")
	set.Select("a") // no state change, but "a" was touched last

	anchor, ok := set.Anchor()
	require.True(t, ok)
	require.Equal(t, "a", anchor, "anchor should follow the last selected id")
}

func TestDeselectNonMemberIsSilent(t *testing.T) {
	t.Parallel()

	set := New()
	var c counter
	set.Subscribe(c.listen)

	set.Deselect("ghost")
	require.Zero(t, c.calls, "deselecting a non-member should not notify")
}

func TestDeselectAnchorClearsAnchor(t *testing.T) {
	t.Parallel()

	set := New()
	set.Select("a")
	set.Deselect("a")

	_, ok := set.Anchor()
	require.False(t, ok, "anchor should be cleared when its id is deselected")
}

func TestToggle(t *testing.T) {
	t.Parallel()

	set := New()
	var c counter
	set.Subscribe(c.listen)

	set.Toggle("a")
	require.True(t, set.IsSelected("a"))
	anchor, _ := set.Anchor()
	require.Equal(t, "a", anchor)

	set.Toggle("a")
	require.False(t, set.IsSelected("a"))
	_, ok := set.Anchor()
	require.False(t, ok)
	require.Equal(t, 2, c.calls)
}

func TestReplaceIsOneNotification(t *testing.T) {
	t.Parallel()

	set := New()
	set.SelectMany([]string{"a", "b", "c"})

	var c counter
	set.Subscribe(c.listen)
	set.Replace("d")

	require.Equal(t, 1, c.calls, "replace should collapse clear+select into one change")
	require.Equal(t, Snapshot{"d"}, c.last)
	anchor, _ := set.Anchor()
	require.Equal(t, "d", anchor)
}

func TestReplaceWithSoleMemberIsSilent(t *testing.T) {
	t.Parallel()

	set := New()
	set.Replace("a")

	var c counter
	set.Subscribe(c.listen)
	set.Replace("a")

	require.Zero(t, c.calls, "replacing with the current sole member should not notify")
}

func TestSetSelectedKeepsSurvivingAnchor(t *testing.T) {
	t.Parallel()

	set := New()
	set.Select("a")

	set.SetSelected([]string{"a", "b"})
	anchor, ok := set.Anchor()
	require.True(t, ok)
	require.Equal(t, "a", anchor)

	set.SetSelected([]string{"b", "c"})
	_, ok = set.Anchor()
	require.False(t, ok, "anchor dropped from the set should be cleared")
}

func TestSetSelectedKeepingAnchorPreservesAbsentAnchor(t *testing.T) {
	t.Parallel()

	set := New()
	set.Select("a")
	var c counter
	set.Subscribe(c.listen)

	set.SetSelectedKeepingAnchor([]string{"c"})
	require.Equal(t, Snapshot{"c"}, set.Snapshot())
	require.Equal(t, 1, c.calls, "replacement is one logical change")

	anchor, ok := set.Anchor()
	require.True(t, ok, "anchor must survive even outside the new set")
	require.Equal(t, "a", anchor)
}

func TestApplyBatchesToOneNotification(t *testing.T) {
	t.Parallel()

	set := New()
	set.SelectMany([]string{"a", "b"})

	var c counter
	set.Subscribe(c.listen)
	set.Apply([]string{"c", "d"}, []string{"a"})

	require.Equal(t, 1, c.calls)
	require.Equal(t, Snapshot{"b", "c", "d"}, c.last)
}

func TestApplyNoChangeIsSilent(t *testing.T) {
	t.Parallel()

	set := New()
	set.Select("a")

	var c counter
	set.Subscribe(c.listen)
	set.Apply([]string{"a"}, []string{"ghost"})

	require.Zero(t, c.calls)
}

func TestClear(t *testing.T) {
	t.Parallel()

	set := New()
	set.SelectMany([]string{"a", "b"})

	var c counter
	set.Subscribe(c.listen)
	set.Clear()
	set.Clear()

	require.Equal(t, 1, c.calls, "clearing an empty set should not notify")
	require.Empty(t, c.last)
	_, ok := set.Anchor()
	require.False(t, ok)
}

func TestSelectAllPrefersExplicitThenProviderThenRegistered(t *testing.T) {
	t.Parallel()

	set := New()
	set.SetRegisteredProvider(func() []string { return []string{"r1", "r2"} })

	set.SelectAll(nil)
	require.Equal(t, Snapshot{"r1", "r2"}, set.Snapshot(), "no provider: registered ids win")

	set.Clear()
	set.SetAllProvider(func() []string { return []string{"p1"} })
	set.SelectAll(nil)
	require.Equal(t, Snapshot{"p1"}, set.Snapshot(), "all-ids provider beats registered ids")

	set.Clear()
	set.SelectAll([]string{"x"})
	require.Equal(t, Snapshot{"x"}, set.Snapshot(), "explicit candidates beat both")
}

func TestUnsubscribeStopsNotifications(t *testing.T) {
	t.Parallel()

	set := New()
	var c counter
	unsub := set.Subscribe(c.listen)

	set.Select("a")
	unsub()
	set.Select("b")

	require.Equal(t, 1, c.calls)
}

func TestSnapshotIsDetached(t *testing.T) {
	t.Parallel()

	set := New()
	set.Select("a")

	snap := set.Snapshot()
	set.Select("b")

	require.Equal(t, Snapshot{"a"}, snap, "earlier snapshot should not observe later changes")
	require.True(t, snap.Contains("a"))
	require.False(t, snap.Contains("b"))
}
