package selection

import "sort"

// Snapshot is an immutable view of the selection at one point in time,
// sorted by id. Listeners receive a fresh snapshot per notification and
// must not retain references into it for mutation.
type Snapshot []string

// Contains reports whether the id is in the snapshot.
func (s Snapshot) Contains(id string) bool {
	i := sort.SearchStrings(s, id)
	return i < len(s) && s[i] == id
}

// Listener receives the selection snapshot after each logical change.
type Listener func(Snapshot)

// Provider supplies a set of candidate ids, used by SelectAll when no
// explicit candidates are given.
type Provider func() []string
