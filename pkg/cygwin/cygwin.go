// Package cygwin wraps the Cygwin compatibility layer's path conversion
// and process identifier translation for Go programs.
//
// The heavy lifting lives entirely inside the layer's runtime DLL
// (cygwin1.dll); this package only resolves the requested conversion into
// the operation code the runtime understands, marshals arguments across
// the boundary and surfaces the runtime's errno values as Go errors.
//
// All operations are single synchronous calls with no shared state, so a
// Layer may be used concurrently from multiple goroutines.
package cygwin

// conv is the seam between the public API and the compatibility layer.
// The Windows implementation calls into the runtime DLL; tests install an
// in-memory fake.
type conv interface {
	convPath(op convFlag, path string) (string, error)
	convPathBytes(op convFlag, path []byte) ([]byte, error)
	winpidToPid(winpid uint32) (int, error)
	pidToWinpid(pid int) (uint32, error)
}

// Layer is a handle to the compatibility layer. The zero value is not
// usable; obtain one from New.
type Layer struct {
	c conv
}

// New returns a Layer backed by the native compatibility layer runtime.
// The runtime DLL is loaded lazily on first use, so New is cheap and never
// fails; a missing or broken runtime surfaces as an error from the first
// operation instead.
func New() *Layer {
	return &Layer{c: newNativeConv()}
}

// std backs the package-level convenience functions.
var std = New()
