// Package arena implements a flat, index-addressed tree with slot reuse.
//
// Nodes are stored in a single slice and addressed by 16-bit NodeID.
// Children of a node form a singly linked list running from the newest
// child backwards through prevSibling, so insertion is O(1) and traversal
// visits the newest child first. Discarding a subtree detaches it from its
// parent and pushes every freed slot onto an availability stack; later
// insertions pop slots from that stack before growing the slice, which
// keeps allocation deterministic.
//
// The tree holds at most 65 535 nodes. Node 0 is the root and can never
// be discarded on its own.
package arena

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'reactor.arena'.
func tracer() tracing.Trace {
	return tracing.Select("reactor.arena")
}
