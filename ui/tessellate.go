package ui

import (
	"math"

	"github.com/luadebug/egui-opengl-internal/input"
)

// Tessellate converts abstract shapes into GPU-ready triangle meshes at the
// given points-per-pixel scale. All shapes share the font atlas texture, so
// a frame tessellates into a single batched mesh; untextured fills sample
// the atlas's white block.
func (c *Context) Tessellate(shapes []Shape, pointsPerPixel float32) []Mesh {
	if len(shapes) == 0 {
		return nil
	}

	mesh := Mesh{
		Texture: FontTexture,
		Clip: input.Rect{
			Max: input.Pos{X: math.MaxFloat32, Y: math.MaxFloat32},
		},
	}

	for _, s := range shapes {
		switch sh := s.(type) {
		case RectShape:
			c.quad(&mesh, scaleRect(sh.Rect, pointsPerPixel),
				input.Rect{Min: c.atlas.whiteUV, Max: c.atlas.whiteUV}, sh.Fill)
		case TextShape:
			c.text(&mesh, sh, pointsPerPixel)
		}
	}

	if len(mesh.Indices) == 0 {
		return nil
	}
	return []Mesh{mesh}
}

func (c *Context) text(mesh *Mesh, sh TextShape, scale float32) {
	pen := sh.Pos
	for _, r := range sh.Text {
		g, ok := c.atlas.glyphs[r]
		if !ok {
			g, ok = c.atlas.glyphs['?']
			if !ok {
				continue
			}
		}
		if g.width > 0 && g.height > 0 {
			quad := input.Rect{
				Min: input.Pos{X: pen.X + g.offX, Y: pen.Y + g.offY},
				Max: input.Pos{X: pen.X + g.offX + g.width, Y: pen.Y + g.offY + g.height},
			}
			c.quad(mesh, scaleRect(quad, scale), g.uv, sh.Color)
		}
		pen.X += g.advance
	}
}

func (c *Context) quad(mesh *Mesh, r input.Rect, uv input.Rect, col Color) {
	base := uint32(len(mesh.Vertices))
	mesh.Vertices = append(mesh.Vertices,
		Vertex{Pos: r.Min, UV: uv.Min, Color: col},
		Vertex{Pos: input.Pos{X: r.Max.X, Y: r.Min.Y}, UV: input.Pos{X: uv.Max.X, Y: uv.Min.Y}, Color: col},
		Vertex{Pos: r.Max, UV: uv.Max, Color: col},
		Vertex{Pos: input.Pos{X: r.Min.X, Y: r.Max.Y}, UV: input.Pos{X: uv.Min.X, Y: uv.Max.Y}, Color: col},
	)
	mesh.Indices = append(mesh.Indices,
		base, base+1, base+2,
		base, base+2, base+3,
	)
}

func scaleRect(r input.Rect, s float32) input.Rect {
	if s == 1 {
		return r
	}
	return input.Rect{
		Min: input.Pos{X: r.Min.X * s, Y: r.Min.Y * s},
		Max: input.Pos{X: r.Max.X * s, Y: r.Max.Y * s},
	}
}
