//go:build windows

// overlaydemo opens its own GL window and drives the overlay the same way
// an injected hook would: Render runs right before every buffer swap and
// the window procedure routes raw messages through Message. It doubles as
// a manual test bench for the whole stack.
package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sync/atomic"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/luadebug/egui-opengl-internal/hotkey"
	"github.com/luadebug/egui-opengl-internal/input"
	"github.com/luadebug/egui-opengl-internal/internal/diag"
	"github.com/luadebug/egui-opengl-internal/overlay"
	"github.com/luadebug/egui-opengl-internal/ui"
	"github.com/luadebug/egui-opengl-internal/win32"
)

var (
	user32               = windows.NewLazySystemDLL("user32.dll")
	procRegisterClassExW = user32.NewProc("RegisterClassExW")
	procCreateWindowExW  = user32.NewProc("CreateWindowExW")
	procDefWindowProcW   = user32.NewProc("DefWindowProcW")
	procDestroyWindow    = user32.NewProc("DestroyWindow")
	procGetDC            = user32.NewProc("GetDC")
	procReleaseDC        = user32.NewProc("ReleaseDC")
	procLoadCursorW      = user32.NewProc("LoadCursorW")
	procPeekMessageW     = user32.NewProc("PeekMessageW")
	procTranslateMessage = user32.NewProc("TranslateMessage")
	procDispatchMessageW = user32.NewProc("DispatchMessageW")
	procPostQuitMessage  = user32.NewProc("PostQuitMessage")

	gdi32                 = windows.NewLazySystemDLL("gdi32.dll")
	procChoosePixelFormat = gdi32.NewProc("ChoosePixelFormat")
	procSetPixelFormat    = gdi32.NewProc("SetPixelFormat")
	procSwapBuffers       = gdi32.NewProc("SwapBuffers")
)

const (
	wsOverlappedWindow = 0x00CF0000
	wsVisible          = 0x10000000
	cwUseDefault       = 0x80000000

	wmDestroy = 0x0002
	wmQuit    = 0x0012
	pmRemove  = 0x0001

	idcArrow = 32512

	pfdTypeRGBA      = 0
	pfdDrawToWindow  = 0x00000004
	pfdSupportOpenGL = 0x00000020
	pfdDoubleBuffer  = 0x00000001
)

type wndClassEx struct {
	Size       uint32
	Style      uint32
	WndProc    uintptr
	ClsExtra   int32
	WndExtra   int32
	Instance   uintptr
	Icon       uintptr
	Cursor     uintptr
	Background uintptr
	MenuName   *uint16
	ClassName  *uint16
	IconSm     uintptr
}

type winMsg struct {
	HWND    uintptr
	Message uint32
	WParam  uintptr
	LParam  uintptr
	Time    uint32
	Pt      win32.Point
}

type pixelFormatDescriptor struct {
	Size           uint16
	Version        uint16
	Flags          uint32
	PixelType      byte
	ColorBits      byte
	RedBits        byte
	RedShift       byte
	GreenBits      byte
	GreenShift     byte
	BlueBits       byte
	BlueShift      byte
	AlphaBits      byte
	AlphaShift     byte
	AccumBits      byte
	AccumRedBits   byte
	AccumGreenBits byte
	AccumBlueBits  byte
	AccumAlphaBits byte
	DepthBits      byte
	StencilBits    byte
	AuxBuffers     byte
	LayerType      byte
	Reserved       byte
	LayerMask      uint32
	VisibleMask    uint32
	DamageMask     uint32
}

type demoState struct {
	hint   string
	name   string
	clicks int
	check  bool
}

var (
	app     overlay.App[demoState]
	hk      = hotkey.NewManager()
	visible atomic.Bool
)

func buildFrame(ctx *ui.Context, s *demoState) {
	if !visible.Load() {
		return
	}
	ctx.Window("overlay demo", func(p *ui.Panel) {
		p.Label(s.hint)
		p.Separator()
		if p.Button("click me") {
			s.clicks++
		}
		p.Label(fmt.Sprintf("clicks: %d", s.clicks))
		p.Checkbox("checkbox", &s.check)
		p.TextEdit("name", &s.name)
	})
}

func main() {
	cfgPath := flag.String("config", "", "path to JSON config file")
	flag.Parse()

	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// No-op when a console already exists; attaches one when built as a
	// GUI binary so log output stays visible.
	win32.AllocConsole()
	defer win32.FreeConsole()

	// The GL context and the message loop both belong to this thread.
	runtime.LockOSThread()

	hwnd, dc := createHostWindow(cfg)
	defer procReleaseDC.Call(uintptr(hwnd), uintptr(dc))

	hostCtx, err := win32.CreateContext(dc)
	if err != nil {
		log.Fatalf("host GL context: %v", err)
	}
	defer win32.DeleteContext(hostCtx)
	if err := win32.MakeCurrent(dc, hostCtx); err != nil {
		log.Fatalf("activate host GL context: %v", err)
	}

	visible.Store(true)
	app.Init(dc, hwnd, buildFrame, demoState{
		hint: fmt.Sprintf("press %s to toggle", cfg.ToggleHotkey),
	})

	if _, err := hk.Register(cfg.ToggleHotkey, func() {
		now := !visible.Load()
		visible.Store(now)
		log.Printf("overlay visible: %v", now)
	}); err != nil {
		log.Printf("Warning: failed to register toggle hotkey: %v", err)
	}

	if cfg.DiagEnabled {
		srv := diag.NewServer(app.Stats, cfg.DiagToken)
		go func() {
			if err := srv.Start(cfg.DiagPort); err != nil {
				log.Printf("diag server error: %v", err)
			}
		}()
	}

	log.Printf("%s running, toggle with %s", cfg.Title, cfg.ToggleHotkey)
	runLoop(dc)

	win32.MakeCurrent(dc, 0)
}

// runLoop pumps pending messages and renders a frame per iteration until
// WM_QUIT arrives.
func runLoop(dc win32.HDC) {
	var m winMsg
	for {
		for {
			ret, _, _ := procPeekMessageW.Call(uintptr(unsafe.Pointer(&m)), 0, 0, 0, pmRemove)
			if ret == 0 {
				break
			}
			if m.Message == wmQuit {
				return
			}
			procTranslateMessage.Call(uintptr(unsafe.Pointer(&m)))
			procDispatchMessageW.Call(uintptr(unsafe.Pointer(&m)))
		}

		app.Render(dc)
		procSwapBuffers.Call(uintptr(dc))
	}
}

func wndProc(hwnd uintptr, msg uint32, wparam, lparam uintptr) uintptr {
	if msg == wmDestroy {
		procPostQuitMessage.Call(0)
		return 0
	}

	if app.Ready() {
		feedHotkeys(msg, wparam)
		if visible.Load() && app.Message(msg, wparam, lparam) {
			return 0
		}
	}

	ret, _, _ := procDefWindowProcW.Call(hwnd, uintptr(msg), wparam, lparam)
	return ret
}

// feedHotkeys forwards key transitions to the chord manager so the toggle
// works whether or not the overlay is swallowing input.
func feedHotkeys(msg uint32, wparam uintptr) {
	var pressed bool
	switch msg {
	case win32.WM_KEYDOWN, win32.WM_SYSKEYDOWN:
		pressed = true
	case win32.WM_KEYUP, win32.WM_SYSKEYUP:
		pressed = false
	default:
		return
	}

	k, ok := input.FromVirtualKey(wparam)
	if !ok {
		return
	}
	mods := input.Modifiers{
		Ctrl:  win32.AsyncKeyDown(win32.VK_CONTROL),
		Shift: win32.AsyncKeyDown(win32.VK_LSHIFT),
		Alt:   msg == win32.WM_SYSKEYDOWN || msg == win32.WM_SYSKEYUP,
	}
	mods.Command = mods.Ctrl
	hk.ProcessKey(k, mods, pressed)
}

func createHostWindow(cfg demoConfig) (win32.HWND, win32.HDC) {
	className, _ := windows.UTF16PtrFromString("overlaydemo")
	title, _ := windows.UTF16PtrFromString(cfg.Title)

	cursor, _, _ := procLoadCursorW.Call(0, idcArrow)
	wc := wndClassEx{
		Size:      uint32(unsafe.Sizeof(wndClassEx{})),
		WndProc:   syscall.NewCallback(wndProc),
		Instance:  win32.ModuleHandle(""),
		Cursor:    cursor,
		ClassName: className,
	}
	if ret, _, err := procRegisterClassExW.Call(uintptr(unsafe.Pointer(&wc))); ret == 0 {
		log.Fatalf("RegisterClassEx: %v", err)
	}

	hwnd, _, err := procCreateWindowExW.Call(
		0,
		uintptr(unsafe.Pointer(className)),
		uintptr(unsafe.Pointer(title)),
		wsOverlappedWindow|wsVisible,
		cwUseDefault, cwUseDefault,
		uintptr(cfg.Width), uintptr(cfg.Height),
		0, 0, wc.Instance, 0,
	)
	if hwnd == 0 {
		log.Fatalf("CreateWindowEx: %v", err)
	}

	dc, _, err := procGetDC.Call(hwnd)
	if dc == 0 {
		procDestroyWindow.Call(hwnd)
		log.Fatalf("GetDC: %v", err)
	}

	pfd := pixelFormatDescriptor{
		Size:      uint16(unsafe.Sizeof(pixelFormatDescriptor{})),
		Version:   1,
		Flags:     pfdDrawToWindow | pfdSupportOpenGL | pfdDoubleBuffer,
		PixelType: pfdTypeRGBA,
		ColorBits: 32,
		DepthBits: 24,
	}
	format, _, err := procChoosePixelFormat.Call(dc, uintptr(unsafe.Pointer(&pfd)))
	if format == 0 {
		log.Fatalf("ChoosePixelFormat: %v", err)
	}
	if ret, _, err := procSetPixelFormat.Call(dc, format, uintptr(unsafe.Pointer(&pfd))); ret == 0 {
		log.Fatalf("SetPixelFormat: %v", err)
	}

	return win32.HWND(hwnd), win32.HDC(dc)
}
