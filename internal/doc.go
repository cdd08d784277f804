// Package internal holds the runtime interior: the scope store, the signal
// records, the dependency engine and the gated access cell. The public
// package wraps these type-erased pieces with typed generic handles.
package internal

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'reactor.runtime'.
func tracer() tracing.Trace {
	return tracing.Select("reactor.runtime")
}
