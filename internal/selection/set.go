// Package selection owns the authoritative set of selected item ids,
// the anchor used by range selection, and change notification. All
// mutations funnel through a single commit path that produces a fresh
// snapshot and fires exactly one notification per logical change;
// batched mutations collapse to one notification.
package selection

import (
	"sort"
	"sync"
)

type listenerEntry struct {
	id int
	fn Listener
}

// Set is the selection state. The zero value is not usable; call New.
type Set struct {
	mu        sync.Mutex
	ids       map[string]struct{}
	anchor    string // empty means no anchor
	listeners []listenerEntry
	nextID    int

	// SelectAll candidate sources, in order of preference.
	allProvider        Provider
	registeredProvider Provider
}

// New creates an empty selection set.
func New() *Set {
	return &Set{
		ids: make(map[string]struct{}),
	}
}

// SetAllProvider installs the external "all ids" source consulted by
// SelectAll when no explicit candidates are passed.
func (s *Set) SetAllProvider(fn Provider) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.allProvider = fn
}

// SetRegisteredProvider installs the fallback candidate source, the
// set of currently registered ids.
func (s *Set) SetRegisteredProvider(fn Provider) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.registeredProvider = fn
}

// Subscribe registers a listener and returns an unsubscribe function.
// Listeners are called synchronously, outside the set's lock, in
// subscription order.
func (s *Set) Subscribe(fn Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners = append(s.listeners, listenerEntry{id: id, fn: fn})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		for i, e := range s.listeners {
			if e.id == id {
				s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
				break
			}
		}
	}
}

// Snapshot returns the current selection as a sorted snapshot.
func (s *Set) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshotLocked()
}

func (s *Set) snapshotLocked() Snapshot {
	snap := make(Snapshot, 0, len(s.ids))
	for id := range s.ids {
		snap = append(snap, id)
	}
	sort.Strings(snap)
	return snap
}

// IsSelected reports whether the id is selected.
func (s *Set) IsSelected(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.ids[id]
	return ok
}

// Len returns the number of selected ids.
func (s *Set) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.ids)
}

// Anchor returns the range-selection anchor, if one is set.
func (s *Set) Anchor() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.anchor, s.anchor != ""
}

// Select adds the id to the selection. The anchor always moves to the
// id, matching "last touched" semantics, but a notification only fires
// if the id was not already selected.
func (s *Set) Select(id string) {
	s.mu.Lock()
	_, present := s.ids[id]
	s.ids[id] = struct{}{}
	s.anchor = id
	s.commit(!present)
}

// Deselect removes the id. Removing an id that is not selected emits
// nothing. Deselecting the anchor clears the anchor.
func (s *Set) Deselect(id string) {
	s.mu.Lock()
	_, present := s.ids[id]
	if present {
		delete(s.ids, id)
		if s.anchor == id {
			s.anchor = ""
		}
	}
	s.commit(present)
}

// Toggle flips the id's membership.
func (s *Set) Toggle(id string) {
	s.mu.Lock()
	if _, present := s.ids[id]; present {
		delete(s.ids, id)
		if s.anchor == id {
			s.anchor = ""
		}
	} else {
		s.ids[id] = struct{}{}
		s.anchor = id
	}
	s.commit(true)
}

// Replace makes the id the only selected item in one logical change.
func (s *Set) Replace(id string) {
	s.mu.Lock()
	_, present := s.ids[id]
	changed := !present || len(s.ids) != 1
	s.ids = map[string]struct{}{id: {}}
	s.anchor = id
	s.commit(changed)
}

// SetSelected replaces the entire selection with the given ids as one
// logical change. The anchor is kept if it survives the replacement and
// cleared otherwise.
func (s *Set) SetSelected(ids []string) {
	s.mu.Lock()
	changed := s.replaceAllLocked(ids)
	if _, ok := s.ids[s.anchor]; !ok {
		s.anchor = ""
	}
	s.commit(changed)
}

// SetSelectedKeepingAnchor replaces the entire selection like
// SetSelected but leaves the anchor untouched even when it is not in
// the new set. Range selection falls back through here when the anchor
// has no geometry, so a later shift-click can still extend from the
// same origin once the anchor resolves again.
func (s *Set) SetSelectedKeepingAnchor(ids []string) {
	s.mu.Lock()
	s.commit(s.replaceAllLocked(ids))
}

func (s *Set) replaceAllLocked(ids []string) bool {
	next := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		next[id] = struct{}{}
	}
	changed := len(next) != len(s.ids)
	if !changed {
		for id := range next {
			if _, ok := s.ids[id]; !ok {
				changed = true
				break
			}
		}
	}
	s.ids = next
	return changed
}

// SelectMany unions the ids into the selection as one logical change.
// The anchor is left where it is.
func (s *Set) SelectMany(ids []string) {
	s.mu.Lock()
	changed := false
	for _, id := range ids {
		if _, ok := s.ids[id]; !ok {
			s.ids[id] = struct{}{}
			changed = true
		}
	}
	s.commit(changed)
}

// Apply adds and removes ids in one logical change, emitting at most
// one notification. Used by drag reconciliation, which computes a full
// membership delta per pass.
func (s *Set) Apply(add, remove []string) {
	s.mu.Lock()
	changed := false
	for _, id := range add {
		if _, ok := s.ids[id]; !ok {
			s.ids[id] = struct{}{}
			changed = true
		}
	}
	for _, id := range remove {
		if _, ok := s.ids[id]; ok {
			delete(s.ids, id)
			if s.anchor == id {
				s.anchor = ""
			}
			changed = true
		}
	}
	s.commit(changed)
}

// Clear empties the selection and drops the anchor.
func (s *Set) Clear() {
	s.mu.Lock()
	changed := len(s.ids) > 0
	s.ids = make(map[string]struct{})
	s.anchor = ""
	s.commit(changed)
}

// SelectAll selects the given candidates. With no explicit candidates
// it falls back to the external all-ids provider, then to the currently
// registered ids. The anchor is left unchanged.
func (s *Set) SelectAll(candidates []string) {
	s.mu.Lock()
	if candidates == nil {
		switch {
		case s.allProvider != nil:
			candidates = s.allProvider()
		case s.registeredProvider != nil:
			candidates = s.registeredProvider()
		}
	}
	changed := false
	for _, id := range candidates {
		if _, ok := s.ids[id]; !ok {
			s.ids[id] = struct{}{}
			changed = true
		}
	}
	s.commit(changed)
}

// commit finishes a mutation started with s.mu held: it releases the
// lock and, if the state changed, notifies listeners with a fresh
// snapshot.
func (s *Set) commit(changed bool) {
	if !changed {
		s.mu.Unlock()
		return
	}
	snap := s.snapshotLocked()
	listeners := make([]listenerEntry, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, e := range listeners {
		e.fn(snap)
	}
}
