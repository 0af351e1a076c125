// Package platform binds core's window collaborators to GLFW and OpenGL.
//
// Everything here must run on the main OS thread; callers lock it with
// runtime.LockOSThread from an init function.
package platform

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"zan/internal/core"
)

// Init initializes GLFW. Pair it with Terminate.
func Init() (*Library, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}
	return &Library{}, nil
}

// Terminate destroys any remaining windows and releases GLFW.
func Terminate() {
	glfw.Terminate()
}

var (
	_ core.Library = (*Library)(nil)
	_ core.Handle  = (*Window)(nil)
	_ core.Monitor = Monitor{}
)

// Library implements core.Library on top of GLFW.
type Library struct{}

var hints = map[core.Hint]glfw.Hint{
	core.HintVisible:                 glfw.Visible,
	core.HintResizable:               glfw.Resizable,
	core.HintDecorated:               glfw.Decorated,
	core.HintFocused:                 glfw.Focused,
	core.HintAutoIconify:             glfw.AutoIconify,
	core.HintFloating:                glfw.Floating,
	core.HintMaximized:               glfw.Maximized,
	core.HintSamples:                 glfw.Samples,
	core.HintContextVersionMajor:     glfw.ContextVersionMajor,
	core.HintContextVersionMinor:     glfw.ContextVersionMinor,
	core.HintOpenGLCoreProfile:       glfw.OpenGLProfile,
	core.HintOpenGLForwardCompatible: glfw.OpenGLForwardCompatible,
}

func (*Library) DefaultWindowHints() {
	glfw.DefaultWindowHints()
}

func (*Library) WindowHint(hint core.Hint, value int) {
	target, ok := hints[hint]
	if !ok {
		return
	}
	switch hint {
	case core.HintOpenGLCoreProfile:
		if value != 0 {
			glfw.WindowHint(target, glfw.OpenGLCoreProfile)
		} else {
			glfw.WindowHint(target, glfw.OpenGLAnyProfile)
		}
	case core.HintSamples, core.HintContextVersionMajor, core.HintContextVersionMinor:
		glfw.WindowHint(target, value)
	default:
		if value != 0 {
			glfw.WindowHint(target, glfw.True)
		} else {
			glfw.WindowHint(target, glfw.False)
		}
	}
}

func (*Library) PrimaryMonitor() core.Monitor {
	return wrapMonitor(glfw.GetPrimaryMonitor())
}

func (*Library) CreateWindow(width, height int, title string, monitor core.Monitor) (core.Handle, error) {
	win, err := glfw.CreateWindow(width, height, title, unwrapMonitor(monitor), nil)
	if err != nil {
		return nil, err
	}
	if win == nil {
		return nil, nil
	}
	return &Window{win: win}, nil
}

func (*Library) SwapInterval(interval int) {
	glfw.SwapInterval(interval)
}

func (*Library) PollEvents() {
	glfw.PollEvents()
}

func (*Library) LoadGL() error {
	return gl.Init()
}

// Monitor wraps a GLFW monitor. GLFW hands out a new wrapper per lookup, so
// identity goes through Same rather than ==.
type Monitor struct {
	m *glfw.Monitor
}

func wrapMonitor(m *glfw.Monitor) core.Monitor {
	if m == nil {
		return nil
	}
	return Monitor{m: m}
}

func unwrapMonitor(m core.Monitor) *glfw.Monitor {
	if gm, ok := m.(Monitor); ok {
		return gm.m
	}
	return nil
}

// Same compares the underlying GLFW monitor handles.
func (m Monitor) Same(other core.Monitor) bool {
	o := unwrapMonitor(other)
	if m.m == nil || o == nil {
		return false
	}
	return *m.m == *o
}

func (m Monitor) VideoMode() core.VideoMode {
	vm := m.m.GetVideoMode()
	if vm == nil {
		return core.VideoMode{}
	}
	return core.VideoMode{Width: vm.Width, Height: vm.Height, RefreshRate: vm.RefreshRate}
}

// Window implements core.Handle.
type Window struct {
	win *glfw.Window
}

// Native returns the GLFW window behind h, or nil if h is not a GLFW handle.
func Native(h core.Handle) *glfw.Window {
	if w, ok := h.(*Window); ok {
		return w.win
	}
	return nil
}

func (w *Window) SetTitle(title string) { w.win.SetTitle(title) }

// SetIcon installs img. GLFW copies the pixels before returning.
func (w *Window) SetIcon(img *core.Image) {
	w.win.SetIcon([]image.Image{&image.NRGBA{
		Pix:    img.Pix,
		Stride: img.Width * 4,
		Rect:   image.Rect(0, 0, img.Width, img.Height),
	}})
}

func (w *Window) SetPos(x, y int) { w.win.SetPos(x, y) }
func (w *Window) SetSize(width, height int) { w.win.SetSize(width, height) }

func (w *Window) FramebufferSize() (int, int) { return w.win.GetFramebufferSize() }

func (w *Window) SetPosCallback(fn func(x, y int)) {
	w.win.SetPosCallback(func(_ *glfw.Window, x, y int) { fn(x, y) })
}

func (w *Window) SetSizeCallback(fn func(width, height int)) {
	w.win.SetSizeCallback(func(_ *glfw.Window, width, height int) { fn(width, height) })
}

func (w *Window) SetFramebufferSizeCallback(fn func(width, height int)) {
	w.win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) { fn(width, height) })
}

// FreeCallbacks unregisters every callback, including ones installed
// directly on the native window, so the closures can be collected.
func (w *Window) FreeCallbacks() {
	w.win.SetPosCallback(nil)
	w.win.SetSizeCallback(nil)
	w.win.SetFramebufferSizeCallback(nil)
	w.win.SetCloseCallback(nil)
	w.win.SetRefreshCallback(nil)
	w.win.SetFocusCallback(nil)
	w.win.SetIconifyCallback(nil)
	w.win.SetMaximizeCallback(nil)
	w.win.SetContentScaleCallback(nil)
	w.win.SetKeyCallback(nil)
	w.win.SetCharCallback(nil)
	w.win.SetMouseButtonCallback(nil)
	w.win.SetCursorPosCallback(nil)
	w.win.SetCursorEnterCallback(nil)
	w.win.SetScrollCallback(nil)
	w.win.SetDropCallback(nil)
}

func (w *Window) MakeContextCurrent() { w.win.MakeContextCurrent() }
func (w *Window) SwapBuffers() { w.win.SwapBuffers() }
func (w *Window) Iconify() { w.win.Iconify() }
func (w *Window) Show() { w.win.Show() }
func (w *Window) Destroy() { w.win.Destroy() }

func (w *Window) Monitor() core.Monitor {
	return wrapMonitor(w.win.GetMonitor())
}

func (w *Window) SetMonitor(m core.Monitor, x, y, width, height, refreshRate int) {
	w.win.SetMonitor(unwrapMonitor(m), x, y, width, height, refreshRate)
}

func (w *Window) SetShouldClose(value bool) { w.win.SetShouldClose(value) }
func (w *Window) ShouldClose() bool { return w.win.ShouldClose() }
