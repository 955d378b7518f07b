//go:build !windows

package glpaint

// call is unreachable off Windows: New fails before any entry point is
// invoked because no GL symbol resolves.
func call(addr uintptr, args ...uintptr) {}
