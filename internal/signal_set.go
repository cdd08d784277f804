package internal

import (
	"slices"
)

// signalSet is an ordered set of SignalIDs kept sorted by (scope, slot).
// The sorted-vector representation lets a scope discard purge every stale
// listener with a single linear scan.
type signalSet struct {
	ids []SignalID
}

func (s *signalSet) insert(id SignalID) {
	i, found := slices.BinarySearchFunc(s.ids, id, CompareSignalIDs)
	if found {
		return
	}
	s.ids = slices.Insert(s.ids, i, id)
}

func (s *signalSet) retain(keep func(SignalID) bool) {
	s.ids = slices.DeleteFunc(s.ids, func(id SignalID) bool { return !keep(id) })
}

func (s *signalSet) contains(id SignalID) bool {
	_, found := slices.BinarySearchFunc(s.ids, id, CompareSignalIDs)
	return found
}

func (s *signalSet) len() int {
	return len(s.ids)
}

// snapshot copies the set so notification can walk it while listeners
// mutate the original.
func (s *signalSet) snapshot() []SignalID {
	return slices.Clone(s.ids)
}

func (s *signalSet) clear() {
	s.ids = nil
}
