package internal

import (
	"github.com/AnatoleLucet/reactor/arena"
)

// ScopeInner is the payload of one scope tree node: the dense, append-only
// store of the signals the scope owns.
type ScopeInner struct {
	signals []SignalInner
}

// NextSignalID reserves the next slot index of the scope stored at sx.
//
// The id is not valid until the matching insertSignal call has run; the
// two-phase shape lets a record embed its own id before it is stored.
func (s *ScopeInner) NextSignalID(sx arena.NodeID) SignalID {
	idx := len(s.signals)
	if idx >= MaxSignals {
		panic("reactor: too many signals in scope")
	}
	return SignalID{Sx: sx, ID: NewU15Bool(uint16(idx), false)}
}

func (s *ScopeInner) insertSignal(sig SignalInner) {
	s.signals = append(s.signals, sig)
}

func (s *ScopeInner) signal(id SignalID) *SignalInner {
	return &s.signals[id.Index()]
}

// SignalCount returns the number of signals the scope holds.
func (s *ScopeInner) SignalCount() int {
	return len(s.signals)
}

// RemoveScopes drops every listener whose scope is marked in discarded.
// One linear pass over each sorted listener set.
func (s *ScopeInner) RemoveScopes(discarded *arena.BitVec) {
	for i := range s.signals {
		s.signals[i].listeners.retain(func(id SignalID) bool {
			return !discarded.Get(id.Sx)
		})
	}
}

// Reuse drops the boxed payloads and empties the store.
func (s *ScopeInner) Reuse() {
	for i := range s.signals {
		s.signals[i].reuse()
	}
	s.signals = nil
}
