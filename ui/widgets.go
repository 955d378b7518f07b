package ui

import (
	"github.com/luadebug/egui-opengl-internal/input"
)

// Default style. Dark panels over whatever the host renders.
var (
	colPanelBg   = Color{30, 30, 34, 235}
	colTitleBg   = Color{55, 58, 80, 255}
	colWidgetBg  = Color{48, 48, 54, 255}
	colWidgetHot = Color{70, 70, 80, 255}
	colAccent    = Color{96, 140, 230, 255}
	colText      = Color{222, 222, 226, 255}
	colTextDim   = Color{150, 150, 156, 255}
)

const (
	panelPad      = 8
	widgetSpacing = 4
	minPanelWidth = 170
)

// Panel lays widgets out top to bottom inside a window.
type Panel struct {
	ctx    *Context
	id     string
	cursor input.Pos
	startY float32
	maxW   float32
}

// Window builds a draggable panel window. Widget state is retained under
// the title, so titles must be unique within a frame.
func (c *Context) Window(title string, build func(*Panel)) {
	id := "window:" + title
	st, ok := c.panels[id]
	if !ok {
		st = &panelState{pos: input.Pos{X: 60, Y: 60}}
		c.panels[id] = st
	}

	titleH := c.atlas.LineHeight() + 8
	width := st.size.X + 2*panelPad
	if width < minPanelWidth {
		width = minPanelWidth
	}

	titleRect := input.Rect{
		Min: st.pos,
		Max: input.Pos{X: st.pos.X + width, Y: st.pos.Y + titleH},
	}
	if c.fr.pressed && titleRect.Contains(c.fr.clickPos) && c.active == "" {
		c.active = id
		c.dragOff = input.Vec2{X: c.fr.clickPos.X - st.pos.X, Y: c.fr.clickPos.Y - st.pos.Y}
	}
	if c.active == id {
		st.pos = input.Pos{X: c.pointer.X - c.dragOff.X, Y: c.pointer.Y - c.dragOff.Y}
		titleRect = input.Rect{
			Min: st.pos,
			Max: input.Pos{X: st.pos.X + width, Y: st.pos.Y + titleH},
		}
	}

	// Background uses the previous pass's content size; immediate mode
	// pays one frame of lag on resize.
	full := input.Rect{
		Min: st.pos,
		Max: input.Pos{X: st.pos.X + width, Y: st.pos.Y + titleH + st.size.Y + 2*panelPad},
	}
	c.pushShape(RectShape{Rect: full, Fill: colPanelBg})
	c.pushShape(RectShape{Rect: titleRect, Fill: colTitleBg})
	c.pushShape(TextShape{
		Pos:   input.Pos{X: st.pos.X + panelPad, Y: st.pos.Y + 4},
		Text:  title,
		Color: colText,
	})

	p := &Panel{
		ctx:    c,
		id:     id,
		cursor: input.Pos{X: st.pos.X + panelPad, Y: st.pos.Y + titleH + panelPad},
	}
	p.startY = p.cursor.Y
	build(p)

	st.size = input.Vec2{X: p.maxW, Y: p.cursor.Y - p.startY}
	st.rect = full
}

// advance reserves a widget rect at the cursor and moves the cursor past it.
func (p *Panel) advance(w, h float32) input.Rect {
	r := input.Rect{
		Min: p.cursor,
		Max: input.Pos{X: p.cursor.X + w, Y: p.cursor.Y + h},
	}
	p.cursor.Y += h + widgetSpacing
	if w > p.maxW {
		p.maxW = w
	}
	return r
}

// Label draws a line of text.
func (p *Panel) Label(text string) {
	size := p.ctx.atlas.Measure(text)
	r := p.advance(size.X, size.Y)
	p.ctx.pushShape(TextShape{Pos: r.Min, Text: text, Color: colText})
}

// Separator draws a thin horizontal rule across the panel's content width.
func (p *Panel) Separator() {
	w := p.maxW
	if w < minPanelWidth-2*panelPad {
		w = minPanelWidth - 2*panelPad
	}
	r := p.advance(w, 5)
	line := input.Rect{
		Min: input.Pos{X: r.Min.X, Y: r.Min.Y + 2},
		Max: input.Pos{X: r.Max.X, Y: r.Min.Y + 3},
	}
	p.ctx.pushShape(RectShape{Rect: line, Fill: colTextDim})
}

// Button draws a clickable button and reports whether it was clicked this
// frame.
func (p *Panel) Button(label string) bool {
	size := p.ctx.atlas.Measure(label)
	r := p.advance(size.X+16, size.Y+8)

	id := p.id + "/button:" + label
	hovered, held, clicked := p.ctx.buttonBehavior(id, r)

	fill := colWidgetBg
	if held {
		fill = colAccent
	} else if hovered {
		fill = colWidgetHot
	}
	p.ctx.pushShape(RectShape{Rect: r, Fill: fill})
	p.ctx.pushShape(TextShape{
		Pos:   input.Pos{X: r.Min.X + 8, Y: r.Min.Y + 4},
		Text:  label,
		Color: colText,
	})
	return clicked
}

// Checkbox draws a toggle and reports whether the value changed this frame.
func (p *Panel) Checkbox(label string, v *bool) bool {
	size := p.ctx.atlas.Measure(label)
	box := size.Y
	r := p.advance(box+6+size.X, size.Y)

	id := p.id + "/checkbox:" + label
	hovered, _, clicked := p.ctx.buttonBehavior(id, r)
	if clicked {
		*v = !*v
	}

	boxRect := input.Rect{
		Min: r.Min,
		Max: input.Pos{X: r.Min.X + box, Y: r.Min.Y + box},
	}
	fill := colWidgetBg
	if hovered {
		fill = colWidgetHot
	}
	p.ctx.pushShape(RectShape{Rect: boxRect, Fill: fill})
	if *v {
		inner := input.Rect{
			Min: input.Pos{X: boxRect.Min.X + 3, Y: boxRect.Min.Y + 3},
			Max: input.Pos{X: boxRect.Max.X - 3, Y: boxRect.Max.Y - 3},
		}
		p.ctx.pushShape(RectShape{Rect: inner, Fill: colAccent})
	}
	p.ctx.pushShape(TextShape{
		Pos:   input.Pos{X: boxRect.Max.X + 6, Y: r.Min.Y},
		Text:  label,
		Color: colText,
	})
	return clicked
}

// TextEdit draws a focusable single-line text field. Click to focus; typed
// characters and pastes are appended, backspace removes the last rune, and
// the copy/cut chords move the content to the platform output.
func (p *Panel) TextEdit(id string, text *string) {
	c := p.ctx
	fid := p.id + "/edit:" + id

	lineH := c.atlas.LineHeight()
	w := p.maxW
	if w < minPanelWidth-2*panelPad {
		w = minPanelWidth - 2*panelPad
	}
	r := p.advance(w, lineH+8)

	if c.fr.pressed {
		if r.Contains(c.fr.clickPos) {
			c.focus = fid
		} else if c.focus == fid {
			c.focus = ""
		}
	}
	focused := c.focus == fid

	if focused {
		for _, s := range c.fr.text {
			*text += s
		}
		for _, k := range c.fr.keys {
			switch k.Key {
			case input.KeyBackspace:
				*text = trimLastRune(*text)
			case input.KeyEnter, input.KeyEscape:
				c.focus = ""
			}
		}
		if c.fr.copyReq {
			c.fr.platform.CopiedText = *text
		}
		if c.fr.cutReq {
			c.fr.platform.CopiedText = *text
			*text = ""
		}
	}

	fill := colWidgetBg
	if focused {
		fill = colWidgetHot
	}
	p.ctx.pushShape(RectShape{Rect: r, Fill: fill})

	shown := *text
	if focused {
		shown += "_"
	}
	p.ctx.pushShape(TextShape{
		Pos:   input.Pos{X: r.Min.X + 4, Y: r.Min.Y + 4},
		Text:  shown,
		Color: colText,
	})
}

func trimLastRune(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	return string(runes[:len(runes)-1])
}
