package internal

import (
	"go.uber.org/atomic"

	"github.com/AnatoleLucet/reactor/arena"
)

// Runtime owns a scope tree and brokers all access to it through the
// WithRef/WithMut gate. A runtime belongs to the goroutine that created it
// for its whole lifetime.
type Runtime struct {
	inner    RuntimeInner
	gate     gate
	released atomic.Bool
}

// RuntimeInner is the mutable interior: the scope tree, the side flag and
// the running-computation stack of the dependency engine.
type RuntimeInner struct {
	scopeTree  *arena.Tree[ScopeInner]
	clientSide bool
	running    []SignalID
}

// NewRuntime creates a runtime with its root scope in place.
func NewRuntime(clientSide bool) *Runtime {
	rt := &Runtime{gate: newGate()}
	rt.inner.scopeTree = arena.NewWithRoot(ScopeInner{})
	rt.inner.clientSide = clientSide
	return rt
}

// WithRef runs f with shared access to the interior. Nested WithRef calls
// are permitted; calling WithMut from inside is not.
func (rt *Runtime) WithRef(f func(*RuntimeInner)) {
	if rt.released.Load() {
		panic("reactor: runtime already released")
	}
	rt.gate.enterRef()
	defer rt.gate.exitRef()
	f(&rt.inner)
}

// WithMut runs f with exclusive access to the interior. Re-entrant calls
// panic in the checked build.
func (rt *Runtime) WithMut(f func(*RuntimeInner)) {
	if rt.released.Load() {
		panic("reactor: runtime already released")
	}
	rt.gate.enterMut()
	defer rt.gate.exitMut()
	f(&rt.inner)
}

// Release discards every scope and drops the runtime's storage. Further
// gated access panics. Releasing twice is a no-op.
func (rt *Runtime) Release() {
	if rt.released.Swap(true) {
		return
	}
	rt.gate.enterMut()
	defer rt.gate.exitMut()
	rt.inner.discardAll()
}

// ClientSide reports which side the runtime was constructed for.
func (rt *RuntimeInner) ClientSide() bool {
	return rt.clientSide
}

// RootScope returns the id of the root scope node.
func (rt *RuntimeInner) RootScope() arena.NodeID {
	return rt.scopeTree.Root()
}

// NewChildScope inserts an empty scope under sx.
func (rt *RuntimeInner) NewChildScope(sx arena.NodeID) arena.NodeID {
	return rt.scopeTree.AddChild(sx, ScopeInner{})
}

// DiscardScope discards sx with its subtree and purges every surviving
// listener set of ids belonging to the freed scopes. sx must not be the
// root.
func (rt *RuntimeInner) DiscardScope(sx arena.NodeID) {
	discarded := rt.scopeTree.Discard(sx, func(s *ScopeInner) { s.Reuse() })
	for id := range rt.scopeTree.Walk(rt.scopeTree.Root()) {
		rt.scopeTree.At(id).RemoveScopes(discarded)
	}
}

func (rt *RuntimeInner) discardAll() {
	tracer().Debugf("runtime teardown")
	rt.scopeTree.DiscardAll(func(s *ScopeInner) { s.Reuse() })
	rt.running = nil
}

func (rt *RuntimeInner) scope(sx arena.NodeID) *ScopeInner {
	return rt.scopeTree.At(sx)
}

func (rt *RuntimeInner) signal(id SignalID) *SignalInner {
	return rt.scope(id.Sx).signal(id)
}

// Sprint renders the scope tree below sx for debugging, one line per
// scope with its signal count.
func (rt *RuntimeInner) Sprint(sx arena.NodeID) string {
	return rt.scopeTree.Sprint(sx, func(id arena.NodeID, s *ScopeInner) string {
		return scopeLabel(id, s)
	})
}
