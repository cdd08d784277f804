package reactor

import (
	"github.com/AnatoleLucet/reactor/arena"
	"github.com/AnatoleLucet/reactor/internal"
)

// Scope is a copyable handle to one node of a runtime's scope tree.
// Cloning a Scope yields another handle to the same node; scopes compare
// by node.
type Scope struct {
	sx arena.NodeID
	rt *internal.Runtime
}

// RootScopeGuard uniquely owns a runtime. Releasing it discards every
// scope, drops all signal payloads and frees the runtime's storage.
type RootScopeGuard struct {
	rt *internal.Runtime
}

// Release tears the runtime down. It is idempotent; any use of the
// runtime's scopes or signals afterwards panics.
func (g *RootScopeGuard) Release() {
	g.rt.Release()
}

// NewClientSideRootScope constructs a fresh client-side runtime and
// returns its guard together with the root scope.
func NewClientSideRootScope() (*RootScopeGuard, Scope) {
	return newRootScope(true)
}

// NewServerSideRootScope constructs a fresh server-side runtime. Computed
// signals tagged client-only become inert sinks on it, and vice versa.
func NewServerSideRootScope() (*RootScopeGuard, Scope) {
	return newRootScope(false)
}

func newRootScope(clientSide bool) (*RootScopeGuard, Scope) {
	rt := internal.NewRuntime(clientSide)
	var sx arena.NodeID
	rt.WithRef(func(inner *internal.RuntimeInner) {
		sx = inner.RootScope()
	})
	return &RootScopeGuard{rt: rt}, Scope{sx: sx, rt: rt}
}

// NewChild creates a scope nested in sc. The child's lifetime is bounded
// by its parent's.
func (sc Scope) NewChild() Scope {
	var sx arena.NodeID
	sc.rt.WithMut(func(rt *internal.RuntimeInner) {
		sx = rt.NewChildScope(sc.sx)
	})
	return Scope{sx: sx, rt: sc.rt}
}

// Discard discards sc with its whole subtree and purges the listener sets
// of every surviving signal. Discarding the root scope tears down the
// entire runtime, the same as releasing the guard.
func (sc Scope) Discard() {
	if sc.sx == arena.Root {
		sc.rt.Release()
		return
	}
	sc.rt.WithMut(func(rt *internal.RuntimeInner) {
		rt.DiscardScope(sc.sx)
	})
}

// Equal reports whether two scopes name the same tree node.
func (sc Scope) Equal(other Scope) bool {
	return sc.sx == other.sx
}

// Sprint renders the scope tree below sc for debugging.
func (sc Scope) Sprint() string {
	var out string
	sc.rt.WithRef(func(rt *internal.RuntimeInner) {
		out = rt.Sprint(sc.sx)
	})
	return out
}
