package reactor

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnatoleLucet/reactor/internal"
)

// stringStore records pushes in order, for asserting propagation.
type stringStore struct {
	values []string
}

func (s *stringStore) push(v string) {
	s.values = append(s.values, v)
}

func (s *stringStore) String() string {
	return strings.Join(s.values, ", ")
}

func listenerIDs[T any](s Data[T]) []internal.SignalID {
	var ids []internal.SignalID
	s.rt.WithRef(func(rt *internal.RuntimeInner) {
		ids = rt.Listeners(s.id)
	})
	return ids
}

func TestSignalDep(t *testing.T) {
	guard, sc := NewClientSideRootScope()
	defer guard.Release()

	a := NewDataSignal(sc, 5)
	b := NewFuncSignal(sc, func() string {
		return fmt.Sprintf("a%d", a.Get())
	})
	b.Subscribe(a)

	require.Equal(t, "a5", b.Get())

	a.Set(4)
	assert.Equal(t, "a4", b.Get())
}

func TestDiamondPropagation(t *testing.T) {
	guard, sc := NewClientSideRootScope()
	defer guard.Release()

	output := &stringStore{}

	n := NewDataSignal(sc, 5)
	a := NewFuncSignal(sc, func() string {
		return fmt.Sprintf("a%d", n.Get())
	})
	b := NewFuncSignal(sc, func() string {
		return fmt.Sprintf("b%d", n.Get())
	})
	a.Subscribe(n)
	b.Subscribe(n)

	out := NewFuncSignal(sc, func() string {
		v := fmt.Sprintf("%s-%s", a.Get(), b.Get())
		output.push(v)
		return v
	})
	out.Subscribe(a)
	out.Subscribe(b)

	out.Get()
	n.Set(4)

	assert.Equal(t, "a5-b5, a5-b4, a4-b4", output.String())
}

func TestDiscardPurgesListeners(t *testing.T) {
	guard, sc := NewClientSideRootScope()
	defer guard.Release()

	a := NewDataSignal(sc, 0)
	c := sc.NewChild()

	b := NewFuncSignal(c, func() int {
		return a.Get()
	})
	b.Subscribe(a)

	require.Len(t, listenerIDs(a), 1)
	require.Equal(t, b.id, listenerIDs(a)[0])

	c.Discard()

	assert.Empty(t, listenerIDs(a))
	assert.NotPanics(t, func() {
		a.Set(1)
	})
}

func TestEqDataShortCircuit(t *testing.T) {
	guard, sc := NewClientSideRootScope()
	defer guard.Release()

	evals := 0
	a := NewEqDataSignal(sc, 7)
	b := NewFuncSignal(sc, func() int {
		evals++
		return a.Get()
	})

	b.Get()
	require.Equal(t, 1, evals)

	a.Set(7) // no-op write must not propagate
	assert.Equal(t, 1, evals)

	a.Set(8)
	assert.Equal(t, 2, evals)
	assert.Equal(t, 8, b.Get())
}

func TestEqFuncShortCircuit(t *testing.T) {
	guard, sc := NewClientSideRootScope()
	defer guard.Release()

	downstream := 0
	n := NewDataSignal(sc, 1)
	a := NewEqFuncSignal(sc, func() int {
		return n.Get() * 0 // never changes
	})
	b := NewFuncSignal(sc, func() int {
		downstream++
		return a.Get() + 1
	})

	require.Equal(t, 1, b.Get())
	require.Equal(t, 1, downstream)

	n.Set(10) // a recomputes to the same memo, b must not
	assert.Equal(t, 1, downstream)

	assert.Equal(t, 1, b.Get())
}

func TestUpdate(t *testing.T) {
	guard, sc := NewClientSideRootScope()
	defer guard.Release()

	count := NewDataSignal(sc, 1)
	doubled := NewFuncSignal(sc, func() int {
		return count.Get() * 2
	})
	doubled.Subscribe(count)

	count.Update(func(v *int) { *v += 9 })

	assert.Equal(t, 10, count.Get())
	assert.Equal(t, 20, doubled.Get())
}

func TestWith(t *testing.T) {
	guard, sc := NewClientSideRootScope()
	defer guard.Release()

	greeting := NewDataSignal(sc, "hi")
	var seen string
	greeting.With(func(v string) { seen = v })
	assert.Equal(t, "hi", seen)
}

func TestDataRelay(t *testing.T) {
	guard, sc := NewClientSideRootScope()
	defer guard.Release()

	evals := 0
	d1 := NewDataSignal(sc, 1)
	d2 := NewDataSignal(sc, 2)
	d2.Subscribe(d1)

	f := NewFuncSignal(sc, func() int {
		evals++
		return d2.Get()
	})
	f.Subscribe(d2)

	f.Get()
	require.Equal(t, 1, evals)

	// a hand-subscribed data signal relays notifications downstream
	d1.Set(3)
	assert.Equal(t, 2, evals)
}

func TestScopeEquality(t *testing.T) {
	guard, sc := NewClientSideRootScope()
	defer guard.Release()

	c1 := sc.NewChild()
	c2 := sc.NewChild()
	copied := c1

	assert.True(t, c1.Equal(copied))
	assert.False(t, c1.Equal(c2))
	assert.False(t, sc.Equal(c1))
}

func TestSignalOrdering(t *testing.T) {
	guard, sc := NewClientSideRootScope()
	defer guard.Release()

	a := NewDataSignal(sc, 0)
	b := NewDataSignal(sc, 0)
	child := sc.NewChild()
	c := NewDataSignal(child, 0)

	assert.Negative(t, Compare(a, b))
	assert.Negative(t, Compare(b, c)) // root scope orders before its children
	assert.Zero(t, Compare(a, a))
	assert.Positive(t, Compare(c, a))
}

func TestDiscardRootTearsDownRuntime(t *testing.T) {
	guard, sc := NewClientSideRootScope()

	a := NewDataSignal(sc, 1)
	sc.Discard()

	assert.PanicsWithValue(t, "reactor: runtime already released", func() {
		a.Get()
	})

	// the guard is already spent; releasing again is a no-op
	assert.NotPanics(t, guard.Release)
}

func TestGuardReleaseIsIdempotent(t *testing.T) {
	guard, sc := NewClientSideRootScope()

	a := NewDataSignal(sc, 1)
	guard.Release()
	guard.Release()

	assert.PanicsWithValue(t, "reactor: runtime already released", func() {
		a.Set(2)
	})
}

func TestSideGatedFuncs(t *testing.T) {
	t.Run("server func is inert on a client runtime", func(t *testing.T) {
		guard, sc := NewClientSideRootScope()
		defer guard.Release()

		evals := 0
		n := NewDataSignal(sc, 1)
		f := NewServerFuncSignal(sc, func() int {
			evals++
			return n.Get()
		})
		f.Subscribe(n)

		assert.Zero(t, f.Get())
		n.Set(2)
		assert.Zero(t, evals)
	})

	t.Run("server func runs on a server runtime", func(t *testing.T) {
		guard, sc := NewServerSideRootScope()
		defer guard.Release()

		n := NewDataSignal(sc, 1)
		f := NewServerFuncSignal(sc, func() int {
			return n.Get() + 1
		})

		assert.Equal(t, 2, f.Get())
	})

	t.Run("client func is inert on a server runtime", func(t *testing.T) {
		guard, sc := NewServerSideRootScope()
		defer guard.Release()

		evals := 0
		f := NewClientFuncSignal(sc, func() int {
			evals++
			return 1
		})

		assert.Zero(t, f.Get())
		assert.Zero(t, evals)
	})
}

func TestCyclePanics(t *testing.T) {
	guard, sc := NewClientSideRootScope()
	defer guard.Release()

	var a Func[int]
	a = NewFuncSignal(sc, func() int {
		return a.Get()
	})

	assert.PanicsWithValue(t, "reactor: cycle detected in signal graph", func() {
		a.Get()
	})
}

func TestSprint(t *testing.T) {
	guard, sc := NewClientSideRootScope()
	defer guard.Release()

	NewDataSignal(sc, 1)
	child := sc.NewChild()
	NewDataSignal(child, 2)
	NewDataSignal(child, 3)

	dump := sc.Sprint()
	assert.Contains(t, dump, "scope 0 (1 signals)")
	assert.Contains(t, dump, "scope 1 (2 signals)")
}
