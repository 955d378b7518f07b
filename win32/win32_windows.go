//go:build windows

package win32

import (
	"fmt"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32               = windows.NewLazySystemDLL("user32.dll")
	procGetClientRect    = user32.NewProc("GetClientRect")
	procWindowFromDC     = user32.NewProc("WindowFromDC")
	procGetAsyncKeyState = user32.NewProc("GetAsyncKeyState")

	opengl32              = windows.NewLazySystemDLL("opengl32.dll")
	procWglCreateContext  = opengl32.NewProc("wglCreateContext")
	procWglDeleteContext  = opengl32.NewProc("wglDeleteContext")
	procWglGetCurrent     = opengl32.NewProc("wglGetCurrentContext")
	procWglMakeCurrent    = opengl32.NewProc("wglMakeCurrent")
	procWglGetProcAddress = opengl32.NewProc("wglGetProcAddress")

	kernel32             = windows.NewLazySystemDLL("kernel32.dll")
	procGetModuleHandleW = kernel32.NewProc("GetModuleHandleW")
	procAllocConsole     = kernel32.NewProc("AllocConsole")
	procFreeConsole      = kernel32.NewProc("FreeConsole")

	ntdll                 = windows.NewLazySystemDLL("ntdll.dll")
	procNtQuerySystemTime = ntdll.NewProc("NtQuerySystemTime")
)

// ClientSize returns the width and height of the window's client area in
// pixels. A zero result means the query failed or the window is gone.
func ClientSize(w HWND) (int32, int32) {
	var r Rect
	ret, _, _ := procGetClientRect.Call(uintptr(w), uintptr(unsafe.Pointer(&r)))
	if ret == 0 {
		return 0, 0
	}
	return r.Right - r.Left, r.Bottom - r.Top
}

// WindowFromDC resolves the window a device context belongs to.
func WindowFromDC(dc HDC) HWND {
	ret, _, _ := procWindowFromDC.Call(uintptr(dc))
	return HWND(ret)
}

// AsyncKeyDown reports whether a virtual key is currently down according to
// GetAsyncKeyState.
func AsyncKeyDown(vk int) bool {
	ret, _, _ := procGetAsyncKeyState.Call(uintptr(vk))
	return uint16(ret) != 0
}

// CreateContext creates a new GL rendering context for the device context.
func CreateContext(dc HDC) (HGLRC, error) {
	ret, _, err := procWglCreateContext.Call(uintptr(dc))
	if ret == 0 {
		return 0, fmt.Errorf("wglCreateContext: %w", err)
	}
	return HGLRC(ret), nil
}

// DeleteContext destroys a rendering context created by CreateContext.
func DeleteContext(rc HGLRC) error {
	ret, _, err := procWglDeleteContext.Call(uintptr(rc))
	if ret == 0 {
		return fmt.Errorf("wglDeleteContext: %w", err)
	}
	return nil
}

// CurrentContext returns the rendering context current on the calling
// thread, or zero when no context is current. Zero is a legal value to feed
// back into MakeCurrent.
func CurrentContext() HGLRC {
	ret, _, _ := procWglGetCurrent.Call()
	return HGLRC(ret)
}

// MakeCurrent makes rc current on the calling thread. rc may be zero, which
// releases the current context.
func MakeCurrent(dc HDC, rc HGLRC) error {
	ret, _, err := procWglMakeCurrent.Call(uintptr(dc), uintptr(rc))
	if ret == 0 {
		return fmt.Errorf("wglMakeCurrent: %w", err)
	}
	return nil
}

// ProcAddress resolves a GL entry point, first from the opengl32 export
// table and then through wglGetProcAddress for extension functions. Returns
// zero when the name cannot be resolved; the caller decides whether that is
// fatal.
func ProcAddress(name string) uintptr {
	b, err := syscall.BytePtrFromString(name)
	if err != nil {
		return 0
	}
	if addr, err := syscall.GetProcAddress(syscall.Handle(opengl32.Handle()), name); err == nil && addr != 0 {
		return addr
	}
	ret, _, _ := procWglGetProcAddress.Call(uintptr(unsafe.Pointer(b)))
	return ret
}

// ModuleHandle returns the base address of a loaded module, or zero. An
// empty name resolves the calling executable.
func ModuleHandle(name string) uintptr {
	if name == "" {
		ret, _, _ := procGetModuleHandleW.Call(0)
		return ret
	}
	p, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return 0
	}
	ret, _, _ := procGetModuleHandleW.Call(uintptr(unsafe.Pointer(p)))
	return ret
}

// SystemTimeSeconds returns seconds since the NT epoch from the system's
// high resolution clock. The clock is load bearing for every frame's input
// snapshot, so a failing query is unrecoverable.
func SystemTimeSeconds() float64 {
	var t int64
	status, _, _ := procNtQuerySystemTime.Call(uintptr(unsafe.Pointer(&t)))
	if status != 0 {
		panic(fmt.Sprintf("win32: NtQuerySystemTime failed with status 0x%X", status))
	}
	// 100ns intervals since 1601-01-01.
	return float64(t) / 10_000_000
}

// AllocConsole attaches a new console to the process. Best effort.
func AllocConsole() {
	procAllocConsole.Call()
}

// FreeConsole detaches the process console. Best effort.
func FreeConsole() {
	procFreeConsole.Call()
}
