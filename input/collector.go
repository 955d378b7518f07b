package input

import (
	"unicode"
	"unicode/utf8"

	"github.com/atotto/clipboard"

	"github.com/luadebug/egui-opengl-internal/win32"
)

// OS touchpoints, swappable in tests. The defaults bind to the live Win32
// surface (or its inert off-platform counterparts).
var (
	keyDown       = win32.AsyncKeyDown
	clientSize    = win32.ClientSize
	systemNow     = win32.SystemTimeSeconds
	clipboardRead = readClipboard
)

func readClipboard() (string, bool) {
	s, err := clipboard.ReadAll()
	if err != nil || s == "" {
		return "", false
	}
	return s, true
}

// Result classifies what Process recognized in a message.
type Result uint8

const (
	ResultUnknown Result = iota
	ResultMouseMove
	ResultMouseLeft
	ResultMouseRight
	ResultMouseMiddle
	ResultMouseExtra
	ResultCharacter
	ResultScroll
	ResultZoom
	ResultKey
)

// Collector accumulates semantic events between frames. It is not safe for
// concurrent use on its own; the overlay host serializes Process (message
// thread) and Collect (render thread) under one lock.
type Collector struct {
	hwnd   win32.HWND
	events []Event

	// modifiers is nil until the first keyboard event establishes a
	// baseline. Mouse messages refine an existing snapshot but never
	// originate one, because button-state bits cannot carry alt.
	modifiers *Modifiers
}

// NewCollector returns a collector for the window whose coordinate space
// raw positions are expressed in.
func NewCollector(hwnd win32.HWND) *Collector {
	return &Collector{hwnd: hwnd}
}

// Window returns the window the collector was created for.
func (c *Collector) Window() win32.HWND { return c.hwnd }

// Pending returns the number of events queued since the last drain.
func (c *Collector) Pending() int { return len(c.events) }

// Process dispatches one raw window message, appending zero or more
// semantic events and possibly updating the modifier baseline. Unrecognized
// messages change nothing.
func (c *Collector) Process(msg uint32, wparam, lparam uintptr) Result {
	switch msg {
	case win32.WM_MOUSEMOVE:
		c.refineModifiers(mouseModifiers(wparam))
		c.events = append(c.events, PointerMoved{Pos: decodePos(lparam)})
		return ResultMouseMove

	case win32.WM_LBUTTONDOWN, win32.WM_LBUTTONDBLCLK:
		c.pointerButton(wparam, lparam, PointerPrimary, true)
		return ResultMouseLeft
	case win32.WM_LBUTTONUP:
		c.pointerButton(wparam, lparam, PointerPrimary, false)
		return ResultMouseLeft

	case win32.WM_RBUTTONDOWN, win32.WM_RBUTTONDBLCLK:
		c.pointerButton(wparam, lparam, PointerSecondary, true)
		return ResultMouseRight
	case win32.WM_RBUTTONUP:
		c.pointerButton(wparam, lparam, PointerSecondary, false)
		return ResultMouseRight

	case win32.WM_MBUTTONDOWN, win32.WM_MBUTTONDBLCLK:
		c.pointerButton(wparam, lparam, PointerMiddle, true)
		return ResultMouseMiddle
	case win32.WM_MBUTTONUP:
		c.pointerButton(wparam, lparam, PointerMiddle, false)
		return ResultMouseMiddle

	case win32.WM_XBUTTONDOWN, win32.WM_XBUTTONDBLCLK:
		c.pointerButton(wparam, lparam, extraButton(wparam), true)
		return ResultMouseExtra
	case win32.WM_XBUTTONUP:
		c.pointerButton(wparam, lparam, extraButton(wparam), false)
		return ResultMouseExtra

	case win32.WM_CHAR, win32.WM_UNICHAR:
		if cp := uint32(wparam); cp != win32.UNICODE_NOCHAR {
			if r := rune(cp); utf8.ValidRune(r) && !unicode.IsControl(r) {
				c.events = append(c.events, TextInput{Text: string(r)})
			}
		}
		return ResultCharacter

	case win32.WM_MOUSEWHEEL, win32.WM_MOUSEHWHEEL:
		c.refineModifiers(mouseModifiers(wparam))

		delta := float32(int16(wparam>>16)) * 10 / win32.WHEEL_DELTA
		if wparam&win32.MK_CONTROL != 0 {
			factor := float32(0.5)
			if delta > 0 {
				factor = 1.5
			}
			c.events = append(c.events, Zoom{Factor: factor})
			return ResultZoom
		}
		c.events = append(c.events, MouseWheel{Delta: Vec2{Y: delta}})
		return ResultScroll

	case win32.WM_KEYDOWN, win32.WM_SYSKEYDOWN:
		mods := keyModifiers(msg)
		c.modifiers = &mods

		if key, ok := FromVirtualKey(wparam); ok {
			if key == KeyV && mods.Ctrl {
				if text, ok := clipboardRead(); ok {
					c.events = append(c.events, TextInput{Text: text})
				}
			}
			if key == KeyC && mods.Ctrl {
				c.events = append(c.events, CopyEvent{})
			}
			if key == KeyX && mods.Ctrl {
				c.events = append(c.events, CutEvent{})
			}

			c.events = append(c.events, KeyEvent{
				Key:       key,
				Pressed:   true,
				Repeat:    lparam&win32.KF_REPEAT != 0,
				Modifiers: mods,
			})
		}
		return ResultKey

	case win32.WM_KEYUP, win32.WM_SYSKEYUP:
		mods := keyModifiers(msg)
		c.modifiers = &mods

		if key, ok := FromVirtualKey(wparam); ok {
			c.events = append(c.events, KeyEvent{
				Key:       key,
				Pressed:   false,
				Repeat:    lparam&win32.KF_REPEAT != 0,
				Modifiers: mods,
			})
		}
		return ResultKey
	}

	return ResultUnknown
}

func (c *Collector) pointerButton(wparam, lparam uintptr, b PointerButton, pressed bool) {
	mods := mouseModifiers(wparam)
	c.refineModifiers(mods)
	c.events = append(c.events, PointerButtonEvent{
		Pos:       decodePos(lparam),
		Button:    b,
		Pressed:   pressed,
		Modifiers: mods,
	})
}

func (c *Collector) refineModifiers(m Modifiers) {
	if c.modifiers != nil {
		*c.modifiers = m
	}
}

// RawInput is one frame's input snapshot, consumed exactly once by one UI
// engine pass.
type RawInput struct {
	Modifiers    Modifiers
	Events       []Event
	ScreenRect   Rect
	Time         float64
	PredictedDT  float32
	HoveredFiles []string
	DroppedFiles []string
	Focused      bool
}

// Collect drains the pending events into a snapshot. The queue is emptied;
// calling Collect again without an intervening Process yields no events.
func (c *Collector) Collect() RawInput {
	events := c.events
	c.events = nil

	var mods Modifiers
	if c.modifiers != nil {
		mods = *c.modifiers
	}

	w, h := clientSize(c.hwnd)
	return RawInput{
		Modifiers:   mods,
		Events:      events,
		ScreenRect:  Rect{Max: Pos{X: float32(w), Y: float32(h)}},
		Time:        systemNow(),
		PredictedDT: 1.0 / 60.0,
		Focused:     true,
	}
}

// decodePos splits a position lparam into signed 16-bit halves. Positions
// can be negative with multi-monitor captures, hence the reinterpret rather
// than a mask-and-truncate.
func decodePos(lparam uintptr) Pos {
	x := int16(lparam & 0xFFFF)
	y := int16((lparam >> 16) & 0xFFFF)
	return Pos{X: float32(x), Y: float32(y)}
}

// extraButton picks which extra button an XBUTTON message refers to. The
// system sets exactly one of the two bits; anything else lands on Extra1.
func extraButton(wparam uintptr) PointerButton {
	if (wparam>>16)&win32.XBUTTON2 != 0 {
		return PointerExtra2
	}
	return PointerExtra1
}

// mouseModifiers derives ctrl and shift from a mouse message's button-state
// bits. Alt is not derivable from mouse messages and stays false.
func mouseModifiers(wparam uintptr) Modifiers {
	ctrl := wparam&win32.MK_CONTROL != 0
	return Modifiers{
		Ctrl:    ctrl,
		Shift:   wparam&win32.MK_SHIFT != 0,
		Command: ctrl,
	}
}

// keyModifiers derives the modifier baseline for a key message: ctrl and
// shift from live key state, alt from the message being the extended
// (system key down) variant.
func keyModifiers(msg uint32) Modifiers {
	ctrl := keyDown(win32.VK_CONTROL)
	shift := keyDown(win32.VK_LSHIFT)
	return Modifiers{
		Alt:     msg == win32.WM_SYSKEYDOWN,
		Ctrl:    ctrl,
		Shift:   shift,
		Command: ctrl,
	}
}
