//go:build wasm

package internal

// wasm runs a single goroutine; there is no foreign goroutine to guard
// against.
func getGID() int64 {
	return 0
}
