package hotkey

import (
	"testing"
	"time"

	"github.com/luadebug/egui-opengl-internal/input"
)

func expectFire(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("chord did not fire")
	}
}

func expectQuiet(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
		t.Fatal("chord fired unexpectedly")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestSingleKeyChord(t *testing.T) {
	m := NewManager()
	fired := make(chan struct{}, 8)
	if _, err := m.Register("Insert", func() { fired <- struct{}{} }); err != nil {
		t.Fatal(err)
	}

	m.ProcessKey(input.KeyInsert, input.Modifiers{}, true)
	expectFire(t, fired)

	m.ProcessKey(input.KeyInsert, input.Modifiers{}, false)
	m.ProcessKey(input.KeyInsert, input.Modifiers{}, true)
	expectFire(t, fired)
}

func TestModifierChord(t *testing.T) {
	m := NewManager()
	fired := make(chan struct{}, 8)
	m.Register("Ctrl+Alt+H", func() { fired <- struct{}{} })

	m.ProcessKey(input.KeyH, input.Modifiers{Ctrl: true}, true)
	expectQuiet(t, fired)
	m.ProcessKey(input.KeyH, input.Modifiers{Ctrl: true}, false)

	m.ProcessKey(input.KeyH, input.Modifiers{Ctrl: true, Alt: true}, true)
	expectFire(t, fired)
}

func TestChordParsingIsCaseInsensitive(t *testing.T) {
	m := NewManager()
	fired := make(chan struct{}, 8)
	m.Register(" ctrl + insert ", func() { fired <- struct{}{} })

	m.ProcessKey(input.KeyInsert, input.Modifiers{Ctrl: true}, true)
	expectFire(t, fired)
}

func TestAutoRepeatDoesNotRetrigger(t *testing.T) {
	m := NewManager()
	fired := make(chan struct{}, 8)
	m.Register("F5", func() { fired <- struct{}{} })

	m.ProcessKey(input.KeyF5, input.Modifiers{}, true)
	expectFire(t, fired)

	// Held keys generate repeated down transitions.
	m.ProcessKey(input.KeyF5, input.Modifiers{}, true)
	m.ProcessKey(input.KeyF5, input.Modifiers{}, true)
	expectQuiet(t, fired)

	m.ProcessKey(input.KeyF5, input.Modifiers{}, false)
	m.ProcessKey(input.KeyF5, input.Modifiers{}, true)
	expectFire(t, fired)
}

func TestMultiKeyChord(t *testing.T) {
	m := NewManager()
	fired := make(chan struct{}, 8)
	m.Register("A+B", func() { fired <- struct{}{} })

	m.ProcessKey(input.KeyA, input.Modifiers{}, true)
	expectQuiet(t, fired)
	m.ProcessKey(input.KeyB, input.Modifiers{}, true)
	expectFire(t, fired)
}

func TestClear(t *testing.T) {
	m := NewManager()
	fired := make(chan struct{}, 8)
	m.Register("Insert", func() { fired <- struct{}{} })
	m.Clear()

	m.ProcessKey(input.KeyInsert, input.Modifiers{}, true)
	expectQuiet(t, fired)
}

func TestEmptyChordRegistersNothing(t *testing.T) {
	m := NewManager()
	fired := make(chan struct{}, 8)
	if id, err := m.Register("", func() { fired <- struct{}{} }); id != 0 || err != nil {
		t.Fatalf("empty chord registration returned (%d, %v)", id, err)
	}

	m.ProcessKey(input.KeyInsert, input.Modifiers{}, true)
	expectQuiet(t, fired)
}
