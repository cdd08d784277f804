//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/sh"
)

// Default target to run when none is specified
// Usage: mage
var Default = Test

// Build compiles and vets the module.
func Build() error {
	fmt.Println("Building...")
	if err := sh.RunV("go", "build", "./..."); err != nil {
		return err
	}
	return sh.RunV("go", "vet", "./...")
}

// Test runs all unit tests.
func Test() error {
	fmt.Println("Running tests...")
	return sh.RunV("go", "test", "./...")
}

// TestUnsafe runs the tests against the unchecked cell build.
func TestUnsafe() error {
	fmt.Println("Running tests (unsafecell)...")
	return sh.RunV("go", "test", "-tags", "unsafecell", "./...")
}

// Bench runs the benchmarks.
func Bench() error {
	return sh.RunV("go", "test", "-bench", ".", "-benchmem", "-run", "^$", "./...")
}

// Fmt runs go fmt on the module.
func Fmt() error {
	return sh.RunV("go", "fmt", "./...")
}

// Tidy runs go mod tidy.
func Tidy() error {
	return sh.RunV("go", "mod", "tidy")
}

// All runs formatting, build, and tests (good for local pre-push).
func All() error {
	steps := []func() error{Fmt, Build, Test, TestUnsafe}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}
