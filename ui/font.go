package ui

import (
	"fmt"
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/luadebug/egui-opengl-internal/input"
)

const (
	atlasWidth  = 256
	atlasHeight = 256
)

// glyph is one rasterized character in the atlas. Offsets are relative to
// the top-left corner of the pen cell so text layout is a simple advance.
type glyph struct {
	uv      input.Rect // normalized atlas coordinates
	width   float32
	height  float32
	offX    float32
	offY    float32
	advance float32
}

// Atlas is a font texture holding the printable ASCII range of one face
// plus a solid white block used to draw untextured shapes.
type Atlas struct {
	img        *image.RGBA
	glyphs     map[rune]glyph
	lineHeight float32
	whiteUV    input.Pos
}

// NewAtlas rasterizes a TrueType/OpenType face at the given pixel size into
// a texture atlas.
func NewAtlas(ttf []byte, size float64) (*Atlas, error) {
	parsed, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("ui: parse font: %w", err)
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("ui: create face: %w", err)
	}
	defer face.Close()

	m := face.Metrics()
	ascent := m.Ascent.Ceil()
	lineH := m.Height.Ceil()

	a := &Atlas{
		img:        image.NewRGBA(image.Rect(0, 0, atlasWidth, atlasHeight)),
		glyphs:     make(map[rune]glyph, 95),
		lineHeight: float32(lineH),
	}

	// Solid white block in the top-left corner; shapes with no texture
	// sample its center.
	draw.Draw(a.img, image.Rect(0, 0, 4, 4), image.White, image.Point{}, draw.Src)
	a.whiteUV = input.Pos{X: 2.0 / atlasWidth, Y: 2.0 / atlasHeight}

	x, y := 6, 0
	for r := rune(' '); r <= '~'; r++ {
		bounds, adv, ok := face.GlyphBounds(r)
		if !ok {
			continue
		}
		cellW := (bounds.Max.X - bounds.Min.X).Ceil() + 2
		if x+cellW >= atlasWidth {
			x = 0
			y += lineH + 2
			if y+lineH+2 >= atlasHeight {
				return nil, fmt.Errorf("ui: font atlas overflow at %q (size %v)", r, size)
			}
		}

		dot := fixed.P(x-bounds.Min.X.Floor(), y+ascent)
		dr, mask, maskp, _, ok := face.Glyph(dot, r)
		if ok && !dr.Empty() {
			draw.DrawMask(a.img, dr, image.White, image.Point{}, mask, maskp, draw.Over)
		}

		a.glyphs[r] = glyph{
			uv: input.Rect{
				Min: input.Pos{X: float32(dr.Min.X) / atlasWidth, Y: float32(dr.Min.Y) / atlasHeight},
				Max: input.Pos{X: float32(dr.Max.X) / atlasWidth, Y: float32(dr.Max.Y) / atlasHeight},
			},
			width:   float32(dr.Dx()),
			height:  float32(dr.Dy()),
			offX:    float32(dr.Min.X - x),
			offY:    float32(dr.Min.Y - y),
			advance: float32(adv) / 64,
		}
		x += cellW
	}

	return a, nil
}

// Image returns the atlas pixels for upload.
func (a *Atlas) Image() *image.RGBA { return a.img }

// LineHeight returns the vertical extent of one text line in points.
func (a *Atlas) LineHeight() float32 { return a.lineHeight }

// Measure returns the size of a single-line string in points.
func (a *Atlas) Measure(s string) input.Vec2 {
	var w float32
	for _, r := range s {
		g, ok := a.glyphs[r]
		if !ok {
			g, ok = a.glyphs['?']
			if !ok {
				continue
			}
		}
		w += g.advance
	}
	return input.Vec2{X: w, Y: a.lineHeight}
}
