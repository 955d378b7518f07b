// Package overlay hosts a rendering/input overlay inside a process that
// owns an OpenGL surface and a native message loop. App's two entry points
// are meant to be called from hook trampolines: Render from a SwapBuffers
// hook and Message from the subclassed window procedure. The host owns a
// private GL context, the UI engine, the input collector and a
// caller-supplied application state; everything is guarded by one lock so
// the render and message threads never observe a torn state.
package overlay

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/luadebug/egui-opengl-internal/input"
	"github.com/luadebug/egui-opengl-internal/ui"
	"github.com/luadebug/egui-opengl-internal/win32"
)

// FrameFunc builds one frame of UI. It runs once per host presentation
// call with the engine context and the application state.
type FrameFunc[T any] func(ctx *ui.Context, state *T)

// App is the overlay host. The zero value is ready for Init; declare one
// per process:
//
//	var app overlay.App[MyState]
//
// Init must complete before the hooks start calling Render and Message.
type App[T any] struct {
	initOnce atomic.Bool
	ready    atomic.Bool

	mu   sync.Mutex
	data *appData[T]
}

type appData[T any] struct {
	frame     FrameFunc[T]
	glrc      win32.HGLRC
	window    win32.HWND
	painter   Painter
	collector *input.Collector
	ctx       *ui.Context
	state     T

	clientW, clientH int32
	sizeKnown        bool

	frames    uint64
	lastFrame time.Duration
}

// Ready reports whether Init has completed and the hook entry points may
// be called.
func (a *App[T]) Ready() bool { return a.ready.Load() }

// Init initializes the host with a default UI engine. It must be called
// exactly once; calling it twice, or with an invalid window handle, is an
// unrecoverable programmer error and panics. Failure to create or activate
// the private GL context panics as well: without it the overlay cannot
// honor its context discipline.
func (a *App[T]) Init(dc win32.HDC, window win32.HWND, frame FrameFunc[T], state T) {
	a.InitContext(dc, window, frame, state, ui.NewContext())
}

// InitContext is Init with a caller-configured UI engine.
func (a *App[T]) InitContext(dc win32.HDC, window win32.HWND, frame FrameFunc[T], state T, ctx *ui.Context) {
	if !a.initOnce.CompareAndSwap(false, true) {
		panic("overlay: Init must be called only once")
	}
	if window == 0 || window == ^win32.HWND(0) {
		panic("overlay: invalid target window handle")
	}
	if frame == nil {
		frame = func(*ui.Context, *T) {}
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	// Build the private context and the painter's GPU resources with the
	// private context current, then put back whatever was current before
	// (possibly nothing).
	prev := currentContext()
	glrc, err := createContext(dc)
	if err != nil {
		panic("overlay: create private GL context: " + err.Error())
	}
	if err := makeCurrent(dc, glrc); err != nil {
		panic("overlay: activate private GL context: " + err.Error())
	}
	painter, err := newPainter()
	if err != nil {
		panic("overlay: painter: " + err.Error())
	}
	if err := makeCurrent(dc, prev); err != nil {
		panic("overlay: restore GL context after init: " + err.Error())
	}

	a.data = &appData[T]{
		frame:     frame,
		glrc:      glrc,
		window:    window,
		painter:   painter,
		collector: input.NewCollector(window),
		ctx:       ctx,
		state:     state,
	}
	a.ready.Store(true)

	logger().Info("overlay initialized", "window", uintptr(window))
}

// Render runs one overlay frame. Call it once per host presentation call,
// from the presenting thread, before chaining to the original function.
// Whatever GL context was current when Render was entered is current again
// when it returns, on every exit path.
func (a *App[T]) Render(dc win32.HDC) {
	a.mu.Lock()
	defer a.mu.Unlock()

	d := a.data
	if d == nil {
		panic("overlay: Render called before Init")
	}

	start := time.Now()
	defer func() {
		d.frames++
		d.lastFrame = time.Since(start)
	}()

	// The host may have moved its swapchain to another window; follow it
	// and start collecting input in the new coordinate space.
	if w := windowFromDC(dc); w != d.window {
		logger().Debug("target window changed", "from", uintptr(d.window), "to", uintptr(w))
		d.window = w
		d.collector = input.NewCollector(w)
		d.sizeKnown = false
	}

	prev := currentContext()
	if err := makeCurrent(dc, d.glrc); err != nil {
		panic("overlay: activate private GL context: " + err.Error())
	}
	defer func() {
		// The host must never observe a context change, no matter how
		// this frame ends. prev may be zero; that restores "nothing
		// current".
		if err := makeCurrent(dc, prev); err != nil {
			panic("overlay: restore host GL context: " + err.Error())
		}
	}()

	out := d.ctx.Run(d.collector.Collect(), func(ctx *ui.Context) {
		d.frame(ctx, &d.state)
	})

	if t := out.Platform.CopiedText; t != "" {
		writeClipboard(t)
	}

	if len(out.Shapes) == 0 {
		return
	}

	// Resize notifications refresh the cached size out of band; the lazy
	// branch only runs on the first paint and after a window change.
	if !d.sizeKnown {
		d.clientW, d.clientH = clientSize(d.window)
		d.sizeKnown = true
	}

	meshes := d.ctx.Tessellate(out.Shapes, 1.0)
	d.painter.Paint(1.0, meshes, out.TexturesDelta, uint32(d.clientW), uint32(d.clientH))
}

// Message feeds one raw window message to the input collector and reports
// whether the UI currently wants keyboard or pointer input. When it
// returns true the caller should swallow the message instead of forwarding
// it to the original window procedure.
func (a *App[T]) Message(msg uint32, wparam, lparam uintptr) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	d := a.data
	if d == nil {
		panic("overlay: Message called before Init")
	}

	d.collector.Process(msg, wparam, lparam)

	if msg == win32.WM_SIZE {
		d.clientW, d.clientH = clientSize(d.window)
		d.sizeKnown = true
	}

	return d.ctx.WantsKeyboardInput() || d.ctx.WantsPointerInput()
}

// Window returns the window currently being overlaid. Serialized with
// Render, which may reassign it.
func (a *App[T]) Window() win32.HWND {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.data == nil {
		panic("overlay: Window called before Init")
	}
	return a.data.window
}

// Stats is a diagnostic snapshot of the host.
type Stats struct {
	Frames          uint64 `json:"frames"`
	LastFrameMicros int64  `json:"last_frame_micros"`
	Window          uint64 `json:"window"`
	ClientWidth     int32  `json:"client_width"`
	ClientHeight    int32  `json:"client_height"`
	PendingEvents   int    `json:"pending_events"`
}

// Stats returns counters maintained by the render path, for diagnostics.
func (a *App[T]) Stats() Stats {
	a.mu.Lock()
	defer a.mu.Unlock()

	d := a.data
	if d == nil {
		return Stats{}
	}
	return Stats{
		Frames:          d.frames,
		LastFrameMicros: d.lastFrame.Microseconds(),
		Window:          uint64(d.window),
		ClientWidth:     d.clientW,
		ClientHeight:    d.clientH,
		PendingEvents:   d.collector.Pending(),
	}
}
