package internal

import (
	"cmp"

	"github.com/AnatoleLucet/reactor/arena"
)

// SignalID names a signal by the scope node that owns it and its slot
// index within that scope. Ids are reused when a scope is discarded, so a
// SignalID must not be retained past its scope's lifetime. The runtime a
// signal belongs to is carried by the public handles, not by the id;
// mixing ids across runtimes is the caller's mistake and is not detected.
type SignalID struct {
	Sx arena.NodeID
	ID U15Bool
}

// Index returns the slot index inside the owning scope.
func (s SignalID) Index() int {
	return int(s.ID.U15())
}

// Reactive reports whether reads of this signal participate in dependency
// tracking.
func (s SignalID) Reactive() bool {
	return !s.ID.Bool()
}

// CompareSignalIDs orders ids lexicographically by (scope, slot).
func CompareSignalIDs(a, b SignalID) int {
	if c := cmp.Compare(a.Sx, b.Sx); c != 0 {
		return c
	}
	return cmp.Compare(a.ID.U15(), b.ID.U15())
}
