// Package win32 holds the small slice of the Win32 and WGL surface the
// overlay depends on: handle types, the window messages the input collector
// recognizes, virtual-key codes, and bindings for the few OS calls on the
// render and message paths. Everything that touches the OS lives behind
// functions implemented in win32_windows.go, with inert counterparts in
// win32_stub.go so the state machines above this package compile and test
// on any platform.
package win32

// Window, device-context and GL-context handles. Kept as distinct integer
// types so the two device handles cannot be swapped silently.
type (
	HWND  uintptr
	HDC   uintptr
	HGLRC uintptr
)

// Point mirrors the Win32 POINT layout.
type Point struct {
	X, Y int32
}

// Rect mirrors the Win32 RECT layout.
type Rect struct {
	Left, Top, Right, Bottom int32
}

// Window messages recognized by the input collector.
const (
	WM_SIZE = 0x0005

	WM_KEYDOWN    = 0x0100
	WM_KEYUP      = 0x0101
	WM_CHAR       = 0x0102
	WM_SYSKEYDOWN = 0x0104
	WM_SYSKEYUP   = 0x0105
	WM_UNICHAR    = 0x0109

	WM_MOUSEMOVE     = 0x0200
	WM_LBUTTONDOWN   = 0x0201
	WM_LBUTTONUP     = 0x0202
	WM_LBUTTONDBLCLK = 0x0203
	WM_RBUTTONDOWN   = 0x0204
	WM_RBUTTONUP     = 0x0205
	WM_RBUTTONDBLCLK = 0x0206
	WM_MBUTTONDOWN   = 0x0207
	WM_MBUTTONUP     = 0x0208
	WM_MBUTTONDBLCLK = 0x0209
	WM_MOUSEWHEEL    = 0x020A
	WM_XBUTTONDOWN   = 0x020B
	WM_XBUTTONUP     = 0x020C
	WM_XBUTTONDBLCLK = 0x020D
	WM_MOUSEHWHEEL   = 0x020E
)

// UNICODE_NOCHAR is the WM_UNICHAR/WM_CHAR sentinel meaning "no character".
const UNICODE_NOCHAR = 0xFFFF

// Mouse wparam state bits and extra-button identifiers.
const (
	MK_SHIFT   = 0x0004
	MK_CONTROL = 0x0008

	XBUTTON1 = 0x0001
	XBUTTON2 = 0x0002
)

// WHEEL_DELTA is the wheel quantum: one detent of a standard wheel.
const WHEEL_DELTA = 120

// KF_REPEAT is the repeat bit the collector reads from key lparams.
const KF_REPEAT = 0x4000

// Virtual-key codes used by the key table and modifier queries.
const (
	VK_BACK    = 0x08
	VK_TAB     = 0x09
	VK_RETURN  = 0x0D
	VK_CONTROL = 0x11
	VK_ESCAPE  = 0x1B
	VK_SPACE   = 0x20
	VK_PRIOR   = 0x21
	VK_NEXT    = 0x22
	VK_END     = 0x23
	VK_HOME    = 0x24
	VK_LEFT    = 0x25
	VK_UP      = 0x26
	VK_RIGHT   = 0x27
	VK_DOWN    = 0x28
	VK_INSERT  = 0x2D
	VK_DELETE  = 0x2E
	VK_LSHIFT  = 0xA0

	// Contiguous ranges the key table maps arithmetically.
	VK_0  = 0x30
	VK_9  = 0x39
	VK_A  = 0x41
	VK_Z  = 0x5A
	VK_F1 = 0x70
	VK_F20 = 0x83
)
