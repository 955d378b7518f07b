// Package glpaint renders tessellated UI meshes with the fixed-function
// OpenGL 1.1 pipeline. It resolves its entry points at construction time
// from whatever GL implementation the host process already loaded, so it
// links against nothing at build time and works inside a foreign process.
//
// Only entry points with integer and pointer parameters are used; the
// projection is loaded as a matrix instead of through glOrtho, which keeps
// every call expressible as a plain syscall on Win64.
package glpaint

import (
	"encoding/binary"
	"fmt"
	"math"
	"runtime"
	"strings"
	"unsafe"

	"github.com/luadebug/egui-opengl-internal/input"
	"github.com/luadebug/egui-opengl-internal/ui"
	"github.com/luadebug/egui-opengl-internal/win32"
)

const (
	glTriangles        = 0x0004
	glTexture2D        = 0x0DE1
	glScissorTest      = 0x0C11
	glBlend            = 0x0BE2
	glDepthTest        = 0x0B71
	glCullFace         = 0x0B44
	glLighting         = 0x0B50
	glSrcAlpha         = 0x0302
	glOneMinusSrcAlpha = 0x0303
	glModelview        = 0x1700
	glProjection       = 0x1701
	glVertexArray      = 0x8074
	glColorArray       = 0x8076
	glTexCoordArray    = 0x8078
	glFloat            = 0x1406
	glUnsignedByte     = 0x1401
	glUnsignedInt      = 0x1405
	glRGBA             = 0x1908
	glLinear           = 0x2601
	glTexMinFilter     = 0x2801
	glTexMagFilter     = 0x2800
	glUnpackAlignment  = 0x0CF5
	glUnpackRowLength  = 0x0CF2
)

// vertexStride is the byte size of one packed vertex: x, y, u, v as
// float32 followed by four color bytes.
const vertexStride = 20

// Painter draws ui meshes into whatever GL context is current when Paint
// runs. It owns the texture objects it creates.
type Painter struct {
	viewport           uintptr
	scissor            uintptr
	enable             uintptr
	disable            uintptr
	blendFunc          uintptr
	matrixMode         uintptr
	loadIdentity       uintptr
	loadMatrixf        uintptr
	enableClientState  uintptr
	disableClientState uintptr
	vertexPointer      uintptr
	texCoordPointer    uintptr
	colorPointer       uintptr
	drawElements       uintptr
	genTextures        uintptr
	deleteTextures     uintptr
	bindTexture        uintptr
	texParameteri      uintptr
	pixelStorei        uintptr
	texImage2D         uintptr
	texSubImage2D      uintptr

	textures map[ui.TextureID]uint32
}

// New resolves the GL 1.1 entry points the painter needs. It returns an
// error naming every symbol that could not be resolved; that usually means
// no GL implementation is loaded in the process.
func New() (*Painter, error) {
	p := &Painter{textures: make(map[ui.TextureID]uint32)}

	symbols := []struct {
		name string
		dst  *uintptr
	}{
		{"glViewport", &p.viewport},
		{"glScissor", &p.scissor},
		{"glEnable", &p.enable},
		{"glDisable", &p.disable},
		{"glBlendFunc", &p.blendFunc},
		{"glMatrixMode", &p.matrixMode},
		{"glLoadIdentity", &p.loadIdentity},
		{"glLoadMatrixf", &p.loadMatrixf},
		{"glEnableClientState", &p.enableClientState},
		{"glDisableClientState", &p.disableClientState},
		{"glVertexPointer", &p.vertexPointer},
		{"glTexCoordPointer", &p.texCoordPointer},
		{"glColorPointer", &p.colorPointer},
		{"glDrawElements", &p.drawElements},
		{"glGenTextures", &p.genTextures},
		{"glDeleteTextures", &p.deleteTextures},
		{"glBindTexture", &p.bindTexture},
		{"glTexParameteri", &p.texParameteri},
		{"glPixelStorei", &p.pixelStorei},
		{"glTexImage2D", &p.texImage2D},
		{"glTexSubImage2D", &p.texSubImage2D},
	}

	var missing []string
	for _, s := range symbols {
		addr := win32.ProcAddress(s.name)
		if addr == 0 {
			missing = append(missing, s.name)
			continue
		}
		*s.dst = addr
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("glpaint: unresolved GL symbols: %s", strings.Join(missing, ", "))
	}
	return p, nil
}

// Paint applies texture deltas, draws the meshes, then frees retired
// textures. The target GL context must be current.
func (p *Painter) Paint(pointsPerPixel float32, meshes []ui.Mesh, delta ui.TexturesDelta, width, height uint32) {
	for id, d := range delta.Set {
		p.applyDelta(id, d)
	}

	p.setup(width, height)
	for i := range meshes {
		p.paintMesh(&meshes[i], pointsPerPixel, width, height)
	}
	p.teardown()

	for _, id := range delta.Free {
		if tex, ok := p.textures[id]; ok {
			call(p.deleteTextures, 1, uintptr(unsafe.Pointer(&tex)))
			delete(p.textures, id)
		}
	}
}

func (p *Painter) setup(width, height uint32) {
	call(p.viewport, 0, 0, uintptr(width), uintptr(height))

	call(p.disable, glDepthTest)
	call(p.disable, glCullFace)
	call(p.disable, glLighting)
	call(p.enable, glScissorTest)
	call(p.enable, glBlend)
	call(p.enable, glTexture2D)
	call(p.blendFunc, glSrcAlpha, glOneMinusSrcAlpha)

	m := orthoMatrix(width, height)
	call(p.matrixMode, glProjection)
	call(p.loadMatrixf, uintptr(unsafe.Pointer(&m[0])))
	call(p.matrixMode, glModelview)
	call(p.loadIdentity)
	runtime.KeepAlive(&m)

	call(p.enableClientState, glVertexArray)
	call(p.enableClientState, glTexCoordArray)
	call(p.enableClientState, glColorArray)
}

func (p *Painter) teardown() {
	call(p.disableClientState, glColorArray)
	call(p.disableClientState, glTexCoordArray)
	call(p.disableClientState, glVertexArray)
	call(p.disable, glScissorTest)
}

func (p *Painter) paintMesh(m *ui.Mesh, pointsPerPixel float32, width, height uint32) {
	if len(m.Vertices) == 0 || len(m.Indices) == 0 {
		return
	}

	verts := packVertices(m.Vertices)
	base := uintptr(unsafe.Pointer(&verts[0]))
	call(p.vertexPointer, 2, glFloat, vertexStride, base)
	call(p.texCoordPointer, 2, glFloat, vertexStride, base+8)
	call(p.colorPointer, 4, glUnsignedByte, vertexStride, base+16)

	x, y, w, h := clipScissor(m.Clip, pointsPerPixel, width, height)
	call(p.scissor, uintptr(x), uintptr(y), uintptr(w), uintptr(h))

	call(p.bindTexture, glTexture2D, uintptr(p.textures[m.Texture]))
	call(p.drawElements, glTriangles, uintptr(len(m.Indices)), glUnsignedInt,
		uintptr(unsafe.Pointer(&m.Indices[0])))

	runtime.KeepAlive(verts)
	runtime.KeepAlive(m.Indices)
}

// applyDelta uploads a full texture image or patches a sub-rectangle.
func (p *Painter) applyDelta(id ui.TextureID, d ui.ImageDelta) {
	if d.Image == nil {
		return
	}
	bounds := d.Image.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pix := d.Image.Pix
	if len(pix) == 0 {
		return
	}

	tex, ok := p.textures[id]
	if !ok {
		call(p.genTextures, 1, uintptr(unsafe.Pointer(&tex)))
		p.textures[id] = tex
	}
	call(p.bindTexture, glTexture2D, uintptr(tex))
	call(p.texParameteri, glTexture2D, glTexMinFilter, glLinear)
	call(p.texParameteri, glTexture2D, glTexMagFilter, glLinear)
	call(p.pixelStorei, glUnpackAlignment, 4)
	call(p.pixelStorei, glUnpackRowLength, uintptr(d.Image.Stride/4))

	if d.Pos == nil {
		call(p.texImage2D, glTexture2D, 0, glRGBA, uintptr(w), uintptr(h), 0,
			glRGBA, glUnsignedByte, uintptr(unsafe.Pointer(&pix[0])))
	} else {
		call(p.texSubImage2D, glTexture2D, 0, uintptr(d.Pos[0]), uintptr(d.Pos[1]),
			uintptr(w), uintptr(h), glRGBA, glUnsignedByte, uintptr(unsafe.Pointer(&pix[0])))
	}
	call(p.pixelStorei, glUnpackRowLength, 0)
	runtime.KeepAlive(pix)
}

// packVertices interleaves the mesh vertices into the byte layout the
// client-state pointers describe.
func packVertices(vs []ui.Vertex) []byte {
	buf := make([]byte, len(vs)*vertexStride)
	for i, v := range vs {
		o := i * vertexStride
		binary.LittleEndian.PutUint32(buf[o:], math.Float32bits(v.Pos.X))
		binary.LittleEndian.PutUint32(buf[o+4:], math.Float32bits(v.Pos.Y))
		binary.LittleEndian.PutUint32(buf[o+8:], math.Float32bits(v.UV.X))
		binary.LittleEndian.PutUint32(buf[o+12:], math.Float32bits(v.UV.Y))
		buf[o+16] = v.Color.R
		buf[o+17] = v.Color.G
		buf[o+18] = v.Color.B
		buf[o+19] = v.Color.A
	}
	return buf
}

// orthoMatrix builds a column-major projection mapping (0,0)..(w,h) with a
// top-left origin onto clip space.
func orthoMatrix(width, height uint32) [16]float32 {
	var m [16]float32
	if width == 0 || height == 0 {
		m[0], m[5], m[10], m[15] = 1, 1, 1, 1
		return m
	}
	m[0] = 2 / float32(width)
	m[5] = -2 / float32(height)
	m[10] = -1
	m[12] = -1
	m[13] = 1
	m[15] = 1
	return m
}

// clipScissor converts a clip rect in points into a GL scissor box, which
// has a bottom-left origin, clamped to the target size.
func clipScissor(clip input.Rect, pointsPerPixel float32, width, height uint32) (x, y, w, h int32) {
	minX := clampI32(clip.Min.X*pointsPerPixel, 0, float32(width))
	minY := clampI32(clip.Min.Y*pointsPerPixel, 0, float32(height))
	maxX := clampI32(clip.Max.X*pointsPerPixel, float32(minX), float32(width))
	maxY := clampI32(clip.Max.Y*pointsPerPixel, float32(minY), float32(height))
	return minX, int32(height) - maxY, maxX - minX, maxY - minY
}

func clampI32(v, lo, hi float32) int32 {
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return int32(v)
}
