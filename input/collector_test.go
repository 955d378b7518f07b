package input

import (
	"testing"

	"github.com/luadebug/egui-opengl-internal/win32"
)

// posParam packs a client position the way pointer messages carry it: low
// word x, high word y, both signed 16-bit.
func posParam(x, y int16) uintptr {
	return uintptr(uint16(y))<<16 | uintptr(uint16(x))
}

// wheelParam packs a wheel delta and button-state bits into a wparam.
func wheelParam(delta int16, keys uintptr) uintptr {
	return uintptr(uint16(delta))<<16 | keys
}

func fakeKeyState(t *testing.T, ctrl, shift bool) {
	t.Helper()
	old := keyDown
	keyDown = func(vk int) bool {
		switch vk {
		case win32.VK_CONTROL:
			return ctrl
		case win32.VK_LSHIFT:
			return shift
		}
		return false
	}
	t.Cleanup(func() { keyDown = old })
}

func fakeClipboard(t *testing.T, text string, ok bool) {
	t.Helper()
	old := clipboardRead
	clipboardRead = func() (string, bool) { return text, ok }
	t.Cleanup(func() { clipboardRead = old })
}

func TestPointerPositionDecoding(t *testing.T) {
	moves := []struct {
		name string
		msg  uint32
		x, y int16
	}{
		{"move", win32.WM_MOUSEMOVE, 10, 20},
		{"move negative", win32.WM_MOUSEMOVE, -5, -7},
		{"left down", win32.WM_LBUTTONDOWN, 100, 200},
		{"left dblclk", win32.WM_LBUTTONDBLCLK, 100, 200},
		{"right up", win32.WM_RBUTTONUP, 0, 32000},
		{"middle down", win32.WM_MBUTTONDOWN, -32000, 1},
		{"extra down", win32.WM_XBUTTONDOWN, 3, 4},
	}

	for _, tc := range moves {
		t.Run(tc.name, func(t *testing.T) {
			c := NewCollector(1)
			c.Process(tc.msg, 0, posParam(tc.x, tc.y))

			if c.Pending() != 1 {
				t.Fatalf("expected 1 event, got %d", c.Pending())
			}
			var pos Pos
			switch ev := c.events[0].(type) {
			case PointerMoved:
				pos = ev.Pos
			case PointerButtonEvent:
				pos = ev.Pos
			default:
				t.Fatalf("unexpected event %T", ev)
			}
			if pos.X != float32(tc.x) || pos.Y != float32(tc.y) {
				t.Errorf("decoded (%v, %v), want (%d, %d)", pos.X, pos.Y, tc.x, tc.y)
			}
		})
	}
}

func TestPointerButtons(t *testing.T) {
	cases := []struct {
		msg     uint32
		wparam  uintptr
		button  PointerButton
		pressed bool
	}{
		{win32.WM_LBUTTONDOWN, 0, PointerPrimary, true},
		{win32.WM_LBUTTONUP, 0, PointerPrimary, false},
		{win32.WM_RBUTTONDOWN, 0, PointerSecondary, true},
		{win32.WM_MBUTTONUP, 0, PointerMiddle, false},
		{win32.WM_XBUTTONDOWN, uintptr(win32.XBUTTON1) << 16, PointerExtra1, true},
		{win32.WM_XBUTTONUP, uintptr(win32.XBUTTON2) << 16, PointerExtra2, false},
	}

	for _, tc := range cases {
		c := NewCollector(1)
		c.Process(tc.msg, tc.wparam, posParam(1, 2))
		ev, okType := c.events[0].(PointerButtonEvent)
		if !okType {
			t.Fatalf("msg 0x%X: unexpected event %T", tc.msg, c.events[0])
		}
		if ev.Button != tc.button || ev.Pressed != tc.pressed {
			t.Errorf("msg 0x%X: got button %d pressed %v, want %d %v",
				tc.msg, ev.Button, ev.Pressed, tc.button, tc.pressed)
		}
	}
}

func TestCollectDrainsExactlyOnce(t *testing.T) {
	c := NewCollector(1)
	c.Process(win32.WM_MOUSEMOVE, 0, posParam(1, 1))
	c.Process(win32.WM_LBUTTONDOWN, 0, posParam(1, 1))

	first := c.Collect()
	if len(first.Events) != 2 {
		t.Fatalf("first drain: got %d events, want 2", len(first.Events))
	}
	if _, ok := first.Events[0].(PointerMoved); !ok {
		t.Errorf("arrival order not preserved: first event is %T", first.Events[0])
	}

	second := c.Collect()
	if len(second.Events) != 0 {
		t.Errorf("second drain: got %d events, want 0", len(second.Events))
	}
}

func TestWheelScrollAndZoom(t *testing.T) {
	for _, msg := range []uint32{win32.WM_MOUSEWHEEL, win32.WM_MOUSEHWHEEL} {
		c := NewCollector(1)
		if got := c.Process(msg, wheelParam(win32.WHEEL_DELTA, 0), 0); got != ResultScroll {
			t.Fatalf("msg 0x%X: result %d, want scroll", msg, got)
		}
		wheel := c.events[0].(MouseWheel)
		if wheel.Delta.Y != 10.0 || wheel.Delta.X != 0 {
			t.Errorf("msg 0x%X: one click scrolled %v, want (0, 10)", msg, wheel.Delta)
		}
		if wheel.Modifiers != (Modifiers{}) {
			t.Errorf("scroll events should carry no modifiers, got %+v", wheel.Modifiers)
		}
	}

	c := NewCollector(1)
	if got := c.Process(win32.WM_MOUSEWHEEL, wheelParam(win32.WHEEL_DELTA, win32.MK_CONTROL), 0); got != ResultZoom {
		t.Fatalf("ctrl+wheel result %d, want zoom", got)
	}
	if z := c.events[0].(Zoom); z.Factor != 1.5 {
		t.Errorf("positive ctrl+wheel factor %v, want 1.5", z.Factor)
	}

	c = NewCollector(1)
	c.Process(win32.WM_MOUSEWHEEL, wheelParam(-win32.WHEEL_DELTA, win32.MK_CONTROL), 0)
	if z := c.events[0].(Zoom); z.Factor != 0.5 {
		t.Errorf("negative ctrl+wheel factor %v, want 0.5", z.Factor)
	}
}

func TestKeyTable(t *testing.T) {
	cases := []struct {
		vk   uintptr
		key  Key
	}{
		{0x30, KeyNum0},
		{0x39, KeyNum9},
		{0x41, KeyA},
		{0x5A, KeyZ},
		{0x70, KeyF1},
		{0x83, KeyF20},
		{win32.VK_DOWN, KeyArrowDown},
		{win32.VK_ESCAPE, KeyEscape},
		{win32.VK_RETURN, KeyEnter},
		{win32.VK_NEXT, KeyPageDown},
	}
	for _, tc := range cases {
		key, ok := FromVirtualKey(tc.vk)
		if !ok || key != tc.key {
			t.Errorf("vk 0x%X resolved to (%v, %v), want %v", tc.vk, key, ok, tc.key)
		}
	}

	if _, ok := FromVirtualKey(0xA4); ok {
		t.Error("VK_LMENU should not resolve to a semantic key")
	}
}

func TestUnmappedKeyProducesNoEvent(t *testing.T) {
	fakeKeyState(t, false, false)

	c := NewCollector(1)
	if got := c.Process(win32.WM_KEYDOWN, 0xA4, 0); got != ResultKey {
		t.Fatalf("result %d, want key", got)
	}
	if c.Pending() != 0 {
		t.Errorf("unmapped key queued %d events, want 0", c.Pending())
	}
}

func TestKeyDownEvent(t *testing.T) {
	fakeKeyState(t, false, true)

	c := NewCollector(1)
	c.Process(win32.WM_KEYDOWN, 0x41, win32.KF_REPEAT)

	ev := c.events[0].(KeyEvent)
	if ev.Key != KeyA || !ev.Pressed || !ev.Repeat {
		t.Errorf("got %+v, want pressed repeating A", ev)
	}
	if !ev.Modifiers.Shift || ev.Modifiers.Ctrl || ev.Modifiers.Alt {
		t.Errorf("modifiers %+v, want shift only", ev.Modifiers)
	}
}

func TestSysKeyCarriesAlt(t *testing.T) {
	fakeKeyState(t, false, false)

	c := NewCollector(1)
	c.Process(win32.WM_SYSKEYDOWN, 0x46, 0)
	if ev := c.events[0].(KeyEvent); !ev.Modifiers.Alt {
		t.Errorf("system key down should set alt, got %+v", ev.Modifiers)
	}

	c = NewCollector(1)
	c.Process(win32.WM_SYSKEYUP, 0x46, 0)
	if ev := c.events[0].(KeyEvent); ev.Modifiers.Alt {
		t.Errorf("system key up should not set alt, got %+v", ev.Modifiers)
	}
}

func TestCtrlPaste(t *testing.T) {
	fakeKeyState(t, true, false)

	t.Run("with clipboard text", func(t *testing.T) {
		fakeClipboard(t, "hello", true)

		c := NewCollector(1)
		c.Process(win32.WM_KEYDOWN, 0x56, 0) // V

		if c.Pending() != 2 {
			t.Fatalf("got %d events, want text + key", c.Pending())
		}
		if text := c.events[0].(TextInput); text.Text != "hello" {
			t.Errorf("pasted %q, want %q", text.Text, "hello")
		}
		if key := c.events[1].(KeyEvent); key.Key != KeyV || !key.Pressed {
			t.Errorf("got %+v, want pressed V", key)
		}
	})

	t.Run("with empty clipboard", func(t *testing.T) {
		fakeClipboard(t, "", false)

		c := NewCollector(1)
		c.Process(win32.WM_KEYDOWN, 0x56, 0)

		if c.Pending() != 1 {
			t.Fatalf("got %d events, want key only", c.Pending())
		}
		if _, ok := c.events[0].(KeyEvent); !ok {
			t.Errorf("got %T, want KeyEvent", c.events[0])
		}
	})
}

func TestCtrlCopyAndCut(t *testing.T) {
	fakeKeyState(t, true, false)

	c := NewCollector(1)
	c.Process(win32.WM_KEYDOWN, 0x43, 0) // C
	if _, ok := c.events[0].(CopyEvent); !ok || c.Pending() != 2 {
		t.Errorf("ctrl+C queued %v, want copy + key", c.events)
	}

	c = NewCollector(1)
	c.Process(win32.WM_KEYDOWN, 0x58, 0) // X
	if _, ok := c.events[0].(CutEvent); !ok || c.Pending() != 2 {
		t.Errorf("ctrl+X queued %v, want cut + key", c.events)
	}
}

func TestMouseNeverOriginatesModifiers(t *testing.T) {
	c := NewCollector(1)
	c.Process(win32.WM_MOUSEMOVE, win32.MK_CONTROL|win32.MK_SHIFT, posParam(1, 1))

	if got := c.Collect().Modifiers; got != (Modifiers{}) {
		t.Errorf("mouse message established modifiers %+v before any key", got)
	}
}

func TestMouseRefinesModifierBaseline(t *testing.T) {
	fakeKeyState(t, true, false)

	c := NewCollector(1)
	c.Process(win32.WM_KEYDOWN, 0x41, 0)                       // baseline: ctrl held
	c.Process(win32.WM_MOUSEMOVE, win32.MK_SHIFT, posParam(1, 1)) // ctrl released, shift held

	got := c.Collect().Modifiers
	if got.Ctrl || !got.Shift {
		t.Errorf("refined modifiers %+v, want shift without ctrl", got)
	}
}

func TestCharacterInput(t *testing.T) {
	for _, msg := range []uint32{win32.WM_CHAR, win32.WM_UNICHAR} {
		c := NewCollector(1)
		c.Process(msg, 'g', 0)
		if text := c.events[0].(TextInput); text.Text != "g" {
			t.Errorf("msg 0x%X: got %q, want %q", msg, text.Text, "g")
		}
	}

	c := NewCollector(1)
	c.Process(win32.WM_CHAR, 0x08, 0) // backspace control char
	c.Process(win32.WM_CHAR, win32.UNICODE_NOCHAR, 0)
	if c.Pending() != 0 {
		t.Errorf("control/sentinel characters queued %d events, want 0", c.Pending())
	}
}

func TestCollectSnapshotShape(t *testing.T) {
	oldSize, oldNow := clientSize, systemNow
	clientSize = func(win32.HWND) (int32, int32) { return 800, 600 }
	systemNow = func() float64 { return 42.5 }
	t.Cleanup(func() { clientSize, systemNow = oldSize, oldNow })

	c := NewCollector(1)
	in := c.Collect()

	if in.ScreenRect.Min != (Pos{}) || in.ScreenRect.Max != (Pos{X: 800, Y: 600}) {
		t.Errorf("screen rect %+v, want zero origin 800x600", in.ScreenRect)
	}
	if in.Time != 42.5 {
		t.Errorf("time %v, want 42.5", in.Time)
	}
	if in.PredictedDT != 1.0/60.0 {
		t.Errorf("predicted dt %v, want 1/60", in.PredictedDT)
	}
	if len(in.HoveredFiles) != 0 || len(in.DroppedFiles) != 0 {
		t.Error("hovered/dropped files should be empty")
	}
	if !in.Focused {
		t.Error("snapshot should report focus")
	}
}

func TestUnknownMessageIsIgnored(t *testing.T) {
	c := NewCollector(1)
	if got := c.Process(0x0084, 1, 2); got != ResultUnknown { // WM_NCHITTEST
		t.Fatalf("result %d, want unknown", got)
	}
	if c.Pending() != 0 {
		t.Errorf("unknown message queued %d events", c.Pending())
	}
}

func TestKeyNames(t *testing.T) {
	cases := map[Key]string{
		KeyA: "A", KeyZ: "Z", KeyNum0: "0", KeyF1: "F1", KeyF20: "F20",
		KeyInsert: "INSERT", KeyEscape: "ESC",
	}
	for key, want := range cases {
		if got := key.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", key, got, want)
		}
	}
}
