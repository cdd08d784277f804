package internal

import (
	"github.com/AnatoleLucet/reactor/arena"
)

// The dependency engine. Reads performed while a computation is running
// charge the top of the running stack as a listener of the signal read.
// Setting a data signal pushes the change through the listener DAG
// synchronously: each notified func recomputes immediately and notifies
// its own listeners in turn, except an eq func whose memo came out
// unchanged, which stops the push there.

// NewDataSignal inserts a data record into sx and returns its id. With eq
// set, writes of an equal value are suppressed.
func (rt *RuntimeInner) NewDataSignal(sx arena.NodeID, value any, eq bool) SignalID {
	sc := rt.scope(sx)
	id := sc.NextSignalID(sx)
	kind := kindData
	if eq {
		kind = kindEqData
	}
	sc.insertSignal(SignalInner{kind: kind, value: value})
	return id
}

// NewWireSignal inserts a data record whose id carries the bypass bit:
// reads of it never register a listener. Used for internal wiring.
func (rt *RuntimeInner) NewWireSignal(sx arena.NodeID, value any) SignalID {
	sc := rt.scope(sx)
	id := sc.NextSignalID(sx)
	id.ID = NewU15Bool(id.ID.U15(), true)
	sc.insertSignal(SignalInner{kind: kindData, value: value})
	return id
}

// NewFuncSignal inserts a computed record into sx. The thunk does not run
// until the signal is first read or notified. With eq set, recomputations
// yielding an unchanged memo do not propagate.
func (rt *RuntimeInner) NewFuncSignal(sx arena.NodeID, fn func() any, eq bool) SignalID {
	sc := rt.scope(sx)
	id := sc.NextSignalID(sx)
	kind := kindFunc
	if eq {
		kind = kindEqFunc
	}
	sc.insertSignal(SignalInner{kind: kind, fn: fn, dirty: true})
	return id
}

// NewInertSignal inserts an inert sink. It never evaluates and never
// notifies; reads yield nil.
func (rt *RuntimeInner) NewInertSignal(sx arena.NodeID) SignalID {
	sc := rt.scope(sx)
	id := sc.NextSignalID(sx)
	sc.insertSignal(SignalInner{kind: kindInert})
	return id
}

// Get returns the signal's current value. The read is charged to the
// running computation, and a dirty func evaluates before answering.
func (rt *RuntimeInner) Get(id SignalID) any {
	rt.trackRead(id)
	sig := rt.signal(id)
	switch sig.kind {
	case kindFunc, kindEqFunc:
		if sig.dirty {
			rt.evaluate(id)
		}
		return rt.signal(id).memo
	case kindInert:
		return nil
	default:
		return sig.value
	}
}

// Set overwrites a data signal's value and notifies its listeners. Eq
// records suppress the whole push when the new value equals the old one.
func (rt *RuntimeInner) Set(id SignalID, v any) {
	sig := rt.signal(id)
	switch sig.kind {
	case kindEqData:
		if isEqual(sig.value, v) {
			return
		}
		sig.value = v
	case kindData:
		sig.value = v
	default:
		panic("reactor: cannot set a computed signal")
	}
	rt.notifyListeners(id)
}

// Update applies fn to a data signal's boxed value and propagates like
// Set.
func (rt *RuntimeInner) Update(id SignalID, fn func(any) any) {
	rt.Set(id, fn(rt.signal(id).value))
}

// Subscribe registers listener on source, exactly as if listener had read
// source while it was running. It guarantees the dependency even when the
// read is conditional.
func (rt *RuntimeInner) Subscribe(listener, source SignalID) {
	rt.signal(source).listeners.insert(listener)
}

// Listeners returns a snapshot of a signal's listener set, in sorted
// order.
func (rt *RuntimeInner) Listeners(id SignalID) []SignalID {
	return rt.signal(id).listeners.snapshot()
}

// trackRead records the running computation as a listener of id and
// rejects reads that would close a cycle.
func (rt *RuntimeInner) trackRead(id SignalID) {
	if len(rt.running) == 0 {
		return
	}
	rt.checkCycle(id)
	if !id.Reactive() {
		return
	}
	top := rt.running[len(rt.running)-1]
	rt.signal(id).listeners.insert(top)
}

// checkCycle panics when id is currently being evaluated. Linear in the
// depth of the running stack.
func (rt *RuntimeInner) checkCycle(id SignalID) {
	for _, r := range rt.running {
		if r == id {
			panic("reactor: cycle detected in signal graph")
		}
	}
}

// evaluate runs a func signal's thunk with the signal on the running
// stack and stores the result. It reports whether the change propagates:
// always for a plain func or a first evaluation, and for an eq func only
// when the memo differs from the previous one.
func (rt *RuntimeInner) evaluate(id SignalID) bool {
	fn := rt.signal(id).fn
	rt.running = append(rt.running, id)
	v := fn()
	rt.running = rt.running[:len(rt.running)-1]

	// reacquire: the thunk may have grown the scope's signal store
	sig := rt.signal(id)
	old := sig.memo
	first := !sig.evaluated
	sig.memo = v
	sig.dirty = false
	sig.evaluated = true
	if sig.kind == kindEqFunc && !first && isEqual(old, v) {
		return false
	}
	return true
}

// notifyListeners pushes a change through id's listener set, walking a
// snapshot from the highest (scope, slot) entry down to the lowest.
func (rt *RuntimeInner) notifyListeners(id SignalID) {
	ls := rt.signal(id).listeners.snapshot()
	for i := len(ls) - 1; i >= 0; i-- {
		rt.notifyOne(ls[i])
	}
}

// notifyOne recomputes a func listener and recurses into its own
// listeners when evaluate reports that the change propagates. Data
// listeners relay the notification;
// inert sinks swallow it.
func (rt *RuntimeInner) notifyOne(id SignalID) {
	sig := rt.signal(id)
	switch sig.kind {
	case kindFunc, kindEqFunc:
		sig.dirty = true
		if rt.evaluate(id) {
			rt.notifyListeners(id)
		}
	case kindInert:
		// swallowed
	default:
		rt.notifyListeners(id)
	}
}
