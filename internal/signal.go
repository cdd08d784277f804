package internal

type signalKind uint8

const (
	kindData signalKind = iota
	kindEqData
	kindFunc
	kindEqFunc
	kindInert
)

// SignalInner is one record in a scope's signal store: either a boxed data
// value or a boxed thunk with its memoized last result, plus the sorted
// set of downstream listeners.
//
// Inert records stand in for side-gated funcs created on the wrong side of
// a runtime. They never evaluate and never notify.
type SignalInner struct {
	kind signalKind

	value any // data records

	fn        func() any // func records
	memo      any
	dirty     bool
	evaluated bool

	listeners signalSet
}

func (s *SignalInner) reuse() {
	*s = SignalInner{}
}

// isEqual compares boxed values. Only records created through the Eq
// constructors consult it, and those require comparable payloads.
func isEqual(a, b any) bool {
	return a == b
}
