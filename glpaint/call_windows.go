//go:build windows

package glpaint

import "syscall"

// call invokes a resolved GL entry point. All entry points used by this
// package take integer or pointer arguments only, so the generic syscall
// bridge is sufficient.
func call(addr uintptr, args ...uintptr) {
	syscall.SyscallN(addr, args...)
}
