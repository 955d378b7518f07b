package overlay

import (
	"github.com/atotto/clipboard"

	"github.com/luadebug/egui-opengl-internal/glpaint"
	"github.com/luadebug/egui-opengl-internal/ui"
	"github.com/luadebug/egui-opengl-internal/win32"
)

// Painter uploads texture deltas and draws tessellated meshes into the
// current GL context. The default implementation is glpaint.
type Painter interface {
	Paint(pointsPerPixel float32, meshes []ui.Mesh, delta ui.TexturesDelta, width, height uint32)
}

// Platform bindings the host reaches through. Tests swap these for fakes
// so the context discipline can be verified off the real platform.
var (
	windowFromDC   = win32.WindowFromDC
	currentContext = win32.CurrentContext
	createContext  = win32.CreateContext
	makeCurrent    = win32.MakeCurrent
	clientSize     = win32.ClientSize
	writeClipboard = defaultWriteClipboard
	newPainter     = defaultPainter
)

// Clipboard writes are best effort; a broken clipboard must not take the
// host frame down.
func defaultWriteClipboard(s string) {
	if err := clipboard.WriteAll(s); err != nil {
		logger().Debug("clipboard write failed", "err", err)
	}
}

func defaultPainter() (Painter, error) {
	return glpaint.New()
}
