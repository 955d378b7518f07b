package ui

import (
	"golang.org/x/image/font/gofont/goregular"

	"github.com/luadebug/egui-opengl-internal/input"
)

// Options configures a Context.
type Options struct {
	// FontTTF is a TrueType/OpenType font for the atlas. Defaults to the
	// bundled Go Regular face.
	FontTTF []byte
	// FontSize is the face size in pixels. Defaults to 15.
	FontSize float64
}

// Context is the retained engine state: widget memory, the font atlas, and
// pointer/focus tracking that survives across frames. It is driven once per
// frame through Run and is not safe for concurrent use; the overlay host
// serializes access.
type Context struct {
	atlas     *Atlas
	atlasSent bool

	panels  map[string]*panelState
	active  string
	focus   string
	dragOff input.Vec2

	wantsPointer  bool
	wantsKeyboard bool

	// Pointer state persists across frames; events only carry transitions.
	pointer input.Pos
	down    bool

	fr frameState
}

// frameState is scratch for the pass currently being built.
type frameState struct {
	pressed  bool
	released bool
	clickPos input.Pos
	scroll   float32
	text     []string
	keys     []input.KeyEvent
	copyReq  bool
	cutReq   bool
	mods     input.Modifiers
	time     float64

	shapes   []Shape
	platform PlatformOutput
}

type panelState struct {
	pos  input.Pos
	size input.Vec2 // content size measured on the previous pass
	rect input.Rect // full rect from the previous pass
}

// NewContext returns a context with the bundled font.
func NewContext() *Context {
	c, err := NewContextOptions(Options{})
	if err != nil {
		// The bundled face is known good; failing to build its atlas
		// means the engine cannot draw anything at all.
		panic("ui: builtin font atlas: " + err.Error())
	}
	return c
}

// NewContextOptions returns a context using the given options.
func NewContextOptions(opts Options) (*Context, error) {
	ttf := opts.FontTTF
	if ttf == nil {
		ttf = goregular.TTF
	}
	size := opts.FontSize
	if size == 0 {
		size = 15
	}
	atlas, err := NewAtlas(ttf, size)
	if err != nil {
		return nil, err
	}
	return &Context{
		atlas:  atlas,
		panels: make(map[string]*panelState),
	}, nil
}

// Run executes one frame pass: digests the input snapshot, invokes the
// frame function to build widgets, and returns the produced shapes,
// texture deltas and platform output.
func (c *Context) Run(in input.RawInput, frame func(*Context)) Output {
	c.begin(in)
	if frame != nil {
		frame(c)
	}
	return c.end()
}

// WantsPointerInput reports whether the UI claimed the pointer as of the
// last pass (pointer over a panel, or a drag in progress).
func (c *Context) WantsPointerInput() bool { return c.wantsPointer }

// WantsKeyboardInput reports whether a text widget holds focus.
func (c *Context) WantsKeyboardInput() bool { return c.wantsKeyboard }

// CopyText requests that s be written to the OS clipboard after this pass.
func (c *Context) CopyText(s string) { c.fr.platform.CopiedText = s }

// Time returns the timestamp of the snapshot driving the current pass.
func (c *Context) Time() float64 { return c.fr.time }

// Modifiers returns the modifier snapshot of the current pass.
func (c *Context) Modifiers() input.Modifiers { return c.fr.mods }

// KeyPressed reports whether the key went down during the current pass.
func (c *Context) KeyPressed(k input.Key) bool {
	for _, ev := range c.fr.keys {
		if ev.Key == k {
			return true
		}
	}
	return false
}

func (c *Context) begin(in input.RawInput) {
	c.fr = frameState{mods: in.Modifiers, time: in.Time}

	for _, ev := range in.Events {
		switch e := ev.(type) {
		case input.PointerMoved:
			c.pointer = e.Pos
		case input.PointerButtonEvent:
			c.pointer = e.Pos
			if e.Button == input.PointerPrimary {
				if e.Pressed && !c.down {
					c.fr.pressed = true
					c.fr.clickPos = e.Pos
				}
				if !e.Pressed && c.down {
					c.fr.released = true
				}
				c.down = e.Pressed
			}
		case input.TextInput:
			c.fr.text = append(c.fr.text, e.Text)
		case input.MouseWheel:
			c.fr.scroll += e.Delta.Y
		case input.KeyEvent:
			if e.Pressed {
				c.fr.keys = append(c.fr.keys, e)
			}
		case input.CopyEvent:
			c.fr.copyReq = true
		case input.CutEvent:
			c.fr.cutReq = true
		}
	}

}

func (c *Context) end() Output {
	if c.fr.released {
		c.active = ""
	}

	// Focus queries answer from the pass that just finished, so a click
	// that took focus reports it before the next frame.
	c.wantsPointer = c.active != ""
	if !c.wantsPointer {
		for _, p := range c.panels {
			if p.rect.Contains(c.pointer) {
				c.wantsPointer = true
				break
			}
		}
	}
	c.wantsKeyboard = c.focus != ""

	out := Output{Shapes: c.fr.shapes, Platform: c.fr.platform}

	// The atlas rides along with the first pass that actually draws;
	// empty passes are skipped by the host entirely.
	if len(out.Shapes) > 0 && !c.atlasSent {
		out.TexturesDelta = TexturesDelta{
			Set: map[TextureID]ImageDelta{FontTexture: {Image: c.atlas.Image()}},
		}
		c.atlasSent = true
	}

	c.fr = frameState{}
	return out
}

// buttonBehavior is the shared press/hold/click logic for clickable rects.
func (c *Context) buttonBehavior(id string, r input.Rect) (hovered, held, clicked bool) {
	hovered = r.Contains(c.pointer)
	if c.fr.pressed && r.Contains(c.fr.clickPos) && c.active == "" {
		c.active = id
	}
	held = c.active == id
	clicked = c.fr.released && held && hovered
	return hovered, held, clicked
}

func (c *Context) pushShape(s Shape) {
	c.fr.shapes = append(c.fr.shapes, s)
}
