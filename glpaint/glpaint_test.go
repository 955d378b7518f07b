package glpaint

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/luadebug/egui-opengl-internal/input"
	"github.com/luadebug/egui-opengl-internal/ui"
)

func TestPackVertices(t *testing.T) {
	vs := []ui.Vertex{
		{Pos: input.Pos{X: 1.5, Y: -2}, UV: input.Pos{X: 0.25, Y: 0.75}, Color: ui.Color{R: 10, G: 20, B: 30, A: 40}},
		{Pos: input.Pos{X: 3, Y: 4}, UV: input.Pos{X: 1, Y: 0}, Color: ui.Color{R: 255, G: 255, B: 255, A: 255}},
	}

	buf := packVertices(vs)
	if len(buf) != 2*vertexStride {
		t.Fatalf("packed %d bytes, want %d", len(buf), 2*vertexStride)
	}

	f32 := func(off int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(buf[off:]))
	}
	if f32(0) != 1.5 || f32(4) != -2 {
		t.Errorf("vertex 0 position packed as (%v, %v)", f32(0), f32(4))
	}
	if f32(8) != 0.25 || f32(12) != 0.75 {
		t.Errorf("vertex 0 uv packed as (%v, %v)", f32(8), f32(12))
	}
	if buf[16] != 10 || buf[17] != 20 || buf[18] != 30 || buf[19] != 40 {
		t.Errorf("vertex 0 color packed as %v", buf[16:20])
	}
	if f32(vertexStride) != 3 || f32(vertexStride+4) != 4 {
		t.Errorf("vertex 1 position packed as (%v, %v)", f32(vertexStride), f32(vertexStride+4))
	}
}

func TestOrthoMatrix(t *testing.T) {
	m := orthoMatrix(800, 600)

	// Column-major multiply of (x, y, 0, 1).
	project := func(x, y float32) (float32, float32) {
		return m[0]*x + m[12], m[5]*y + m[13]
	}

	if cx, cy := project(0, 0); cx != -1 || cy != 1 {
		t.Errorf("top-left mapped to (%v, %v), want (-1, 1)", cx, cy)
	}
	if cx, cy := project(800, 600); cx != 1 || cy != -1 {
		t.Errorf("bottom-right mapped to (%v, %v), want (1, -1)", cx, cy)
	}
	if cx, cy := project(400, 300); cx != 0 || cy != 0 {
		t.Errorf("center mapped to (%v, %v), want (0, 0)", cx, cy)
	}
}

func TestOrthoMatrixDegenerate(t *testing.T) {
	m := orthoMatrix(0, 0)
	if m[0] != 1 || m[5] != 1 || m[15] != 1 {
		t.Errorf("degenerate viewport should produce identity-ish matrix, got %v", m)
	}
}

func TestClipScissorFlipsOrigin(t *testing.T) {
	clip := input.Rect{
		Min: input.Pos{X: 10, Y: 20},
		Max: input.Pos{X: 110, Y: 70},
	}
	x, y, w, h := clipScissor(clip, 1.0, 800, 600)
	if x != 10 || w != 100 || h != 50 {
		t.Errorf("scissor box (%d, w=%d, h=%d)", x, w, h)
	}
	if y != 600-70 {
		t.Errorf("scissor y %d, want %d (bottom-left origin)", y, 600-70)
	}
}

func TestClipScissorClampsAndScales(t *testing.T) {
	huge := input.Rect{
		Min: input.Pos{X: -50, Y: -50},
		Max: input.Pos{X: math.MaxFloat32, Y: math.MaxFloat32},
	}
	x, y, w, h := clipScissor(huge, 1.0, 800, 600)
	if x != 0 || y != 0 || w != 800 || h != 600 {
		t.Errorf("unbounded clip should cover the viewport, got (%d, %d, %d, %d)", x, y, w, h)
	}

	clip := input.Rect{Max: input.Pos{X: 100, Y: 100}}
	_, _, w, h = clipScissor(clip, 2.0, 800, 600)
	if w != 200 || h != 200 {
		t.Errorf("scaled clip (w=%d, h=%d), want 200x200", w, h)
	}
}
