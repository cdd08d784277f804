//go:build extratraits

package internal

import "fmt"

// Debug formatting for the opaque types, compiled only under the
// extratraits build tag.

func (s SignalID) String() string {
	return fmt.Sprintf("sig(scope=%d slot=%d)", s.Sx, s.ID.U15())
}

func (k signalKind) String() string {
	switch k {
	case kindData:
		return "data"
	case kindEqData:
		return "eq-data"
	case kindFunc:
		return "func"
	case kindEqFunc:
		return "eq-func"
	case kindInert:
		return "inert"
	}
	return "unknown"
}
