//go:build !cder_debug

package cder

// trace is a no-op unless built with -tags cder_debug, so production
// builds pay nothing for the debug trace facility (see trace_on.go).
func trace(op string, k Kind, msg string) {}
