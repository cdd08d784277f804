package reactor

import (
	"github.com/AnatoleLucet/reactor/internal"
)

// Observable is any signal handle another signal can subscribe to.
type Observable interface {
	signalID() internal.SignalID
}

// Data is a handle to a mutable data signal. Handles are copyable and
// cheap; all copies name the same record.
type Data[T any] struct {
	id internal.SignalID
	rt *internal.Runtime
}

// Func is a handle to a computed signal.
type Func[T any] struct {
	id internal.SignalID
	rt *internal.Runtime
}

func as[T any](v any) T {
	if v == nil {
		var zero T
		return zero
	}
	return v.(T)
}

// NewDataSignal creates a data signal in sc holding initial. Every Set
// propagates, regardless of the new value.
func NewDataSignal[T any](sc Scope, initial T) Data[T] {
	return newData[T](sc, initial, false)
}

// NewEqDataSignal creates a data signal that suppresses propagation when
// the new value equals the old one.
func NewEqDataSignal[T comparable](sc Scope, initial T) Data[T] {
	return newData[T](sc, initial, true)
}

func newData[T any](sc Scope, initial T, eq bool) Data[T] {
	var id internal.SignalID
	sc.rt.WithMut(func(rt *internal.RuntimeInner) {
		id = rt.NewDataSignal(sc.sx, initial, eq)
	})
	return Data[T]{id: id, rt: sc.rt}
}

// NewFuncSignal creates a computed signal in sc whose value is produced
// by fn. Signals read while fn evaluates become its dependencies. The
// first evaluation happens on the first read or notification.
func NewFuncSignal[T any](sc Scope, fn func() T) Func[T] {
	return newFunc(sc, fn, false)
}

// NewEqFuncSignal creates a computed signal that short-circuits
// propagation when a recomputation yields an unchanged value.
func NewEqFuncSignal[T comparable](sc Scope, fn func() T) Func[T] {
	return newFunc(sc, fn, true)
}

func newFunc[T any](sc Scope, fn func() T, eq bool) Func[T] {
	var id internal.SignalID
	sc.rt.WithMut(func(rt *internal.RuntimeInner) {
		id = rt.NewFuncSignal(sc.sx, func() any { return fn() }, eq)
	})
	return Func[T]{id: id, rt: sc.rt}
}

// NewClientFuncSignal creates a computed signal that only runs on
// client-side runtimes. On a server-side runtime it is an inert sink: it
// never evaluates, never notifies, and reads yield the zero value.
func NewClientFuncSignal[T any](sc Scope, fn func() T) Func[T] {
	return newSideFunc(sc, fn, true)
}

// NewServerFuncSignal is the server-side counterpart of
// NewClientFuncSignal.
func NewServerFuncSignal[T any](sc Scope, fn func() T) Func[T] {
	return newSideFunc(sc, fn, false)
}

func newSideFunc[T any](sc Scope, fn func() T, client bool) Func[T] {
	var id internal.SignalID
	sc.rt.WithMut(func(rt *internal.RuntimeInner) {
		if rt.ClientSide() == client {
			id = rt.NewFuncSignal(sc.sx, func() any { return fn() }, false)
		} else {
			id = rt.NewInertSignal(sc.sx)
		}
	})
	return Func[T]{id: id, rt: sc.rt}
}

// Get returns the current value, tracking the read when a computation is
// evaluating.
func (s Data[T]) Get() T {
	var v any
	s.rt.WithRef(func(rt *internal.RuntimeInner) {
		v = rt.Get(s.id)
	})
	return as[T](v)
}

// Set overwrites the value and notifies every listener. On a signal
// created with NewEqDataSignal, writing a value equal to the current one
// does nothing.
func (s Data[T]) Set(v T) {
	s.rt.WithRef(func(rt *internal.RuntimeInner) {
		rt.Set(s.id, v)
	})
}

// Update modifies the value in place and propagates like Set.
func (s Data[T]) Update(fn func(*T)) {
	s.rt.WithRef(func(rt *internal.RuntimeInner) {
		rt.Update(s.id, func(old any) any {
			v := as[T](old)
			fn(&v)
			return v
		})
	})
}

// With calls fn with the current value, tracking the read.
func (s Data[T]) With(fn func(T)) {
	fn(s.Get())
}

// Subscribe registers s as a listener of source, guaranteeing the
// dependency even when no read occurred during an evaluation.
func (s Data[T]) Subscribe(source Observable) {
	s.rt.WithRef(func(rt *internal.RuntimeInner) {
		rt.Subscribe(s.id, source.signalID())
	})
}

func (s Data[T]) signalID() internal.SignalID {
	return s.id
}

// Get returns the computed value, evaluating the thunk if the signal is
// dirty and tracking the read when a computation is evaluating.
func (f Func[T]) Get() T {
	var v any
	f.rt.WithRef(func(rt *internal.RuntimeInner) {
		v = rt.Get(f.id)
	})
	return as[T](v)
}

// With calls fn with the current value, tracking the read.
func (f Func[T]) With(fn func(T)) {
	fn(f.Get())
}

// Subscribe registers f as a listener of source. Computed signals that
// read a source conditionally use it to pin the dependency.
func (f Func[T]) Subscribe(source Observable) {
	f.rt.WithRef(func(rt *internal.RuntimeInner) {
		rt.Subscribe(f.id, source.signalID())
	})
}

func (f Func[T]) signalID() internal.SignalID {
	return f.id
}

// Compare orders two handles of the same runtime by (scope, slot), the
// order listener sets are kept in. It returns -1, 0 or 1.
func Compare(a, b Observable) int {
	return internal.CompareSignalIDs(a.signalID(), b.signalID())
}
