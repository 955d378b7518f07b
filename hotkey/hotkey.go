// Package hotkey matches chord strings like "Ctrl+Alt+H" against the
// semantic key stream the input collector produces. It carries no global
// hooks; the host feeds it the keys it already receives.
package hotkey

import (
	"strings"
	"sync"

	"github.com/luadebug/egui-opengl-internal/input"
)

// Modifier tokens recognized in chord strings. Any other part is matched
// against the pressed key's name.
const (
	tokenCtrl  = "CTRL"
	tokenAlt   = "ALT"
	tokenShift = "SHIFT"
)

// Manager holds registered chords and the current key-down state.
type Manager struct {
	mu     sync.RWMutex
	chords []*registeredChord
	down   map[string]bool
}

type registeredChord struct {
	parts    []string
	original string
	callback func()
}

// NewManager creates an empty manager.
func NewManager() *Manager {
	return &Manager{down: make(map[string]bool)}
}

// Register adds a chord string (e.g. "Ctrl+Alt+1", "Insert") and a callback
// to run when it is pressed. An empty chord registers nothing. The returned
// id is the chord's position in registration order.
func (m *Manager) Register(chord string, callback func()) (int, error) {
	if chord == "" {
		return 0, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	parts := strings.Split(strings.ToUpper(chord), "+")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}

	m.chords = append(m.chords, &registeredChord{
		parts:    parts,
		original: chord,
		callback: callback,
	})
	return len(m.chords) - 1, nil
}

// Clear removes all registered chords.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.chords = nil
}

// ProcessKey updates the key state from one key transition and fires every
// chord satisfied by it. Auto-repeat transitions do not retrigger; a chord
// fires once per physical press. Callbacks run on their own goroutine so a
// slow handler cannot stall the message loop feeding the manager.
func (m *Manager) ProcessKey(k input.Key, mods input.Modifiers, pressed bool) {
	token := k.String()

	m.mu.Lock()
	repeat := pressed && m.down[token]
	if pressed {
		m.down[token] = true
	} else {
		delete(m.down, token)
	}
	m.mu.Unlock()

	if pressed && !repeat {
		m.checkMatches(mods)
	}
}

func (m *Manager) checkMatches(mods input.Modifiers) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, c := range m.chords {
		match := true
		for _, part := range c.parts {
			switch part {
			case tokenCtrl:
				match = mods.Ctrl
			case tokenAlt:
				match = mods.Alt
			case tokenShift:
				match = mods.Shift
			default:
				match = m.down[part]
			}
			if !match {
				break
			}
		}
		if match {
			go c.callback()
		}
	}
}
