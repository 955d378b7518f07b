//go:build !windows

package win32

import (
	"errors"
	"time"
)

// Non-windows builds get inert bindings: zero results for queries, errors
// for context operations, and a process-relative clock. They exist so the
// collector and host state machines compile and test off-platform; nothing
// here talks to a display server.

var errUnsupported = errors.New("win32: not supported on this platform")

var processStart = time.Now()

func ClientSize(HWND) (int32, int32) { return 0, 0 }

func WindowFromDC(HDC) HWND { return 0 }

func AsyncKeyDown(int) bool { return false }

func CreateContext(HDC) (HGLRC, error) { return 0, errUnsupported }

func DeleteContext(HGLRC) error { return errUnsupported }

func CurrentContext() HGLRC { return 0 }

func MakeCurrent(HDC, HGLRC) error { return errUnsupported }

func ProcAddress(string) uintptr { return 0 }

func ModuleHandle(string) uintptr { return 0 }

func SystemTimeSeconds() float64 { return time.Since(processStart).Seconds() }

func AllocConsole() {}

func FreeConsole() {}
