// Package reactor is a fine-grained reactive runtime: data signals,
// computed signals, and a tree of scopes that own them.
//
// A runtime is created with NewClientSideRootScope or
// NewServerSideRootScope, which return the root scope together with a
// guard that owns the runtime's lifetime. Signals are created in scopes;
// discarding a scope discards its subtree and every signal they own, and
// purges all dangling listener registrations.
//
// Setting a data signal recomputes every computed signal that transitively
// observes it, synchronously, on the calling goroutine; signals created
// with the Eq constructors stop the push when their value is unchanged.
// A runtime is bound
// to the goroutine that created it and must never be shared.
package reactor
