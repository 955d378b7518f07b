// Package input translates a foreign window's raw message stream into a
// clean, time-stamped, per-frame snapshot of semantic input events. A
// Collector is fed from the window-procedure side with Process and drained
// from the render side with Collect, under the caller's lock.
package input

// Pos is a position in the target window's client coordinate space, in
// pixels from the top-left corner.
type Pos struct {
	X, Y float32
}

// Vec2 is a two dimensional offset or delta.
type Vec2 struct {
	X, Y float32
}

// Rect is an axis-aligned rectangle spanning Min to Max.
type Rect struct {
	Min, Max Pos
}

// Contains reports whether p lies inside the rectangle.
func (r Rect) Contains(p Pos) bool {
	return p.X >= r.Min.X && p.X < r.Max.X && p.Y >= r.Min.Y && p.Y < r.Max.Y
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float32 { return r.Max.X - r.Min.X }

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float32 { return r.Max.Y - r.Min.Y }

// Translate returns the rectangle shifted by d.
func (r Rect) Translate(d Vec2) Rect {
	return Rect{
		Min: Pos{r.Min.X + d.X, r.Min.Y + d.Y},
		Max: Pos{r.Max.X + d.X, r.Max.Y + d.Y},
	}
}

// Modifiers is the keyboard modifier snapshot attached to events. Command
// tracks Ctrl on Windows; MacCmd is always false here and exists so the
// snapshot shape matches what immediate-mode engines expect.
type Modifiers struct {
	Alt     bool
	Ctrl    bool
	Shift   bool
	MacCmd  bool
	Command bool
}

// PointerButton identifies a mouse button.
type PointerButton uint8

const (
	PointerPrimary PointerButton = iota
	PointerSecondary
	PointerMiddle
	PointerExtra1
	PointerExtra2
)

// Event is a semantic input occurrence, decoupled from the native message
// encoding. The concrete types below form a closed set.
type Event interface {
	event()
}

// PointerMoved reports a new pointer position.
type PointerMoved struct {
	Pos Pos
}

// PointerButtonEvent reports a button transition at a position.
type PointerButtonEvent struct {
	Pos       Pos
	Button    PointerButton
	Pressed   bool
	Modifiers Modifiers
}

// TextInput carries text to insert, from character messages or a paste.
type TextInput struct {
	Text string
}

// MouseWheel is a scroll in points.
type MouseWheel struct {
	Delta     Vec2
	Modifiers Modifiers
}

// Zoom is a ctrl-wheel zoom factor (1.5 in, 0.5 out).
type Zoom struct {
	Factor float32
}

// KeyEvent reports a semantic key transition.
type KeyEvent struct {
	Key       Key
	Pressed   bool
	Repeat    bool
	Modifiers Modifiers
}

// CopyEvent asks the focused widget to copy its selection.
type CopyEvent struct{}

// CutEvent asks the focused widget to cut its selection.
type CutEvent struct{}

func (PointerMoved) event()       {}
func (PointerButtonEvent) event() {}
func (TextInput) event()          {}
func (MouseWheel) event()         {}
func (Zoom) event()               {}
func (KeyEvent) event()           {}
func (CopyEvent) event()          {}
func (CutEvent) event()           {}
