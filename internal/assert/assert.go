// Package assert gates the debug-only element validation performed by the
// containers before every insertion. Validation is off unless the build
// carries the hybriddebug tag; tests may toggle Enabled directly.
package assert

import "fmt"

// Enabled controls whether insertion validators run. Off in regular
// builds, mirroring NDEBUG-style assertion stripping.
var Enabled = false

// Validate panics when assertions are enabled and validate rejects value.
// A rejected value is caller misuse, not a recoverable condition.
func Validate[T any](validate func(T) bool, value T) {
	if !Enabled || validate == nil {
		return
	}
	if !validate(value) {
		panic(fmt.Sprintf("hybrid: validator rejected value %v", value))
	}
}
