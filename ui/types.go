// Package ui is a small immediate-mode UI engine. It is driven once per
// frame with an input snapshot, runs a caller-supplied frame function that
// builds widgets, and produces draw shapes plus platform output. Shapes are
// tessellated into textured triangle meshes for a painter to upload.
package ui

import (
	"image"

	"github.com/luadebug/egui-opengl-internal/input"
)

// Color is an 8-bit sRGBA color with straight alpha.
type Color struct {
	R, G, B, A uint8
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color { return Color{r, g, b, 0xFF} }

// Shape is an abstract draw command produced by a frame pass.
type Shape interface {
	shape()
}

// RectShape fills an axis-aligned rectangle.
type RectShape struct {
	Rect input.Rect
	Fill Color
}

// TextShape draws a run of text with its top-left corner at Pos, using the
// engine's font atlas.
type TextShape struct {
	Pos   input.Pos
	Text  string
	Color Color
}

func (RectShape) shape() {}
func (TextShape) shape() {}

// TextureID names a texture owned by the painter. The engine's font atlas
// is always FontTexture.
type TextureID uint64

// FontTexture is the id of the engine-managed font atlas.
const FontTexture TextureID = 0

// Vertex is one tessellated vertex: position in points, normalized texture
// coordinates, and color.
type Vertex struct {
	Pos   input.Pos
	UV    input.Pos
	Color Color
}

// Mesh is an indexed triangle list sharing one texture and one clip rect.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
	Texture  TextureID
	Clip     input.Rect
}

// ImageDelta is a full or partial texture upload. A nil Pos replaces the
// whole texture; otherwise Image patches the sub-rect at Pos.
type ImageDelta struct {
	Pos   *[2]int
	Image *image.RGBA
}

// TexturesDelta lists texture changes the painter must apply before
// drawing this frame's meshes, and textures it may release afterwards.
type TexturesDelta struct {
	Set  map[TextureID]ImageDelta
	Free []TextureID
}

// Empty reports whether the delta carries no work.
func (d TexturesDelta) Empty() bool { return len(d.Set) == 0 && len(d.Free) == 0 }

// PlatformOutput is the engine's requested side effects on the embedding
// environment.
type PlatformOutput struct {
	// CopiedText is non-empty when the UI wants it written to the OS
	// clipboard.
	CopiedText string
}

// Output is the result of one frame pass.
type Output struct {
	Shapes        []Shape
	TexturesDelta TexturesDelta
	Platform      PlatformOutput
}
