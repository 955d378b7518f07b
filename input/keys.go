package input

import (
	"strconv"

	"github.com/luadebug/egui-opengl-internal/win32"
)

// Key is the closed set of semantic keys the collector can resolve. The
// declaration order of the three contiguous blocks (digits, letters,
// function keys) is what FromVirtualKey's range mapping relies on, and the
// key table test pins it down.
type Key uint8

const (
	KeyArrowDown Key = iota
	KeyArrowLeft
	KeyArrowRight
	KeyArrowUp
	KeyEscape
	KeyTab
	KeyBackspace
	KeyEnter
	KeySpace
	KeyInsert
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	KeyNum0
	KeyNum1
	KeyNum2
	KeyNum3
	KeyNum4
	KeyNum5
	KeyNum6
	KeyNum7
	KeyNum8
	KeyNum9

	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyF13
	KeyF14
	KeyF15
	KeyF16
	KeyF17
	KeyF18
	KeyF19
	KeyF20
)

var keyNames = map[Key]string{
	KeyArrowDown: "DOWN",
	KeyArrowLeft: "LEFT",
	KeyArrowRight: "RIGHT",
	KeyArrowUp:   "UP",
	KeyEscape:    "ESC",
	KeyTab:       "TAB",
	KeyBackspace: "BACKSPACE",
	KeyEnter:     "ENTER",
	KeySpace:     "SPACE",
	KeyInsert:    "INSERT",
	KeyDelete:    "DELETE",
	KeyHome:      "HOME",
	KeyEnd:       "END",
	KeyPageUp:    "PAGEUP",
	KeyPageDown:  "PAGEDOWN",
}

// String returns an upper-case name for the key, e.g. "A", "F5", "INSERT".
func (k Key) String() string {
	switch {
	case k >= KeyNum0 && k <= KeyNum9:
		return string('0' + rune(k-KeyNum0))
	case k >= KeyA && k <= KeyZ:
		return string('A' + rune(k-KeyA))
	case k >= KeyF1 && k <= KeyF20:
		return "F" + strconv.Itoa(int(k-KeyF1)+1)
	}
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "UNKNOWN"
}

// FromVirtualKey resolves a Windows virtual-key code to a semantic key.
// Digits, letters and function keys come from their contiguous native
// ranges; the named keys go through an explicit table. Codes outside the
// set resolve to false and are dropped by the collector.
func FromVirtualKey(vk uintptr) (Key, bool) {
	switch {
	case vk >= win32.VK_0 && vk <= win32.VK_9:
		return KeyNum0 + Key(vk-win32.VK_0), true
	case vk >= win32.VK_A && vk <= win32.VK_Z:
		return KeyA + Key(vk-win32.VK_A), true
	case vk >= win32.VK_F1 && vk <= win32.VK_F20:
		return KeyF1 + Key(vk-win32.VK_F1), true
	}

	switch vk {
	case win32.VK_DOWN:
		return KeyArrowDown, true
	case win32.VK_LEFT:
		return KeyArrowLeft, true
	case win32.VK_RIGHT:
		return KeyArrowRight, true
	case win32.VK_UP:
		return KeyArrowUp, true
	case win32.VK_ESCAPE:
		return KeyEscape, true
	case win32.VK_TAB:
		return KeyTab, true
	case win32.VK_BACK:
		return KeyBackspace, true
	case win32.VK_RETURN:
		return KeyEnter, true
	case win32.VK_SPACE:
		return KeySpace, true
	case win32.VK_INSERT:
		return KeyInsert, true
	case win32.VK_DELETE:
		return KeyDelete, true
	case win32.VK_HOME:
		return KeyHome, true
	case win32.VK_END:
		return KeyEnd, true
	case win32.VK_PRIOR:
		return KeyPageUp, true
	case win32.VK_NEXT:
		return KeyPageDown, true
	}
	return 0, false
}
