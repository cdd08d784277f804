//go:build unsafecell

package internal

// gate, unchecked. Re-entrant mutation and cross-goroutine access are
// undefined behavior under this build; the contract is that no function
// passed into WithRef or WithMut itself calls WithMut.
type gate struct{}

func newGate() gate {
	return gate{}
}

func (gate) enterRef() {}
func (gate) exitRef()  {}
func (gate) enterMut() {}
func (gate) exitMut()  {}
