package core

import (
	"errors"
	"fmt"
	"log"

	"zan/internal/profiling"
)

var (
	// ErrCreateWindow means the window system gave back no usable window.
	// There is nothing to fall back to, so startup should stop.
	ErrCreateWindow = errors.New("failed to create window")
	// ErrLoadGL means the graphics function table could not be bound.
	ErrLoadGL = errors.New("failed to load OpenGL functions")
	// ErrIcon wraps icon decode failures. The window stays usable.
	ErrIcon = errors.New("failed to set window icon")
	// ErrAlreadyInitialized is returned by a second call to Init.
	ErrAlreadyInitialized = errors.New("window already initialized")
	// ErrNoMonitor means the window system reports no primary display.
	ErrNoMonitor = errors.New("no primary monitor")
	// ErrNoVideoMode means the primary display reports no usable mode.
	ErrNoVideoMode = errors.New("primary monitor has no video mode")
)

type state int

const (
	stateNew state = iota
	stateActive
	stateTerminated
)

// Window owns one native window and its graphics context.
//
// A Window is not safe for concurrent use. Every method, including the
// callbacks it registers, runs on the thread that called Init.
type Window struct {
	lib     Library
	decoder ImageDecoder
	attr    Attributes

	handle Handle
	state  state

	// Live framebuffer size in pixels. Differs from attr.Width/Height
	// under display scaling and while fullscreen.
	width  int
	height int
}

// NewWindow returns an uninitialized window configured by attr. The window
// keeps its own copy of attr.
func NewWindow(lib Library, decoder ImageDecoder, attr Attributes) *Window {
	return &Window{lib: lib, decoder: decoder, attr: attr}
}

// Init creates the window and its context and makes the context current on
// the calling thread. It must be called exactly once.
//
// Window or context failures are returned wrapping ErrCreateWindow or
// ErrLoadGL and leave nothing behind. An icon failure is returned wrapping
// ErrIcon only after the window is fully set up.
func (w *Window) Init() error {
	if w.state != stateNew {
		return ErrAlreadyInitialized
	}

	w.initHints()
	if err := w.initWindow(); err != nil {
		return err
	}
	iconErr := w.SetIcon(w.attr.Icon)
	w.initCallbacks()
	if err := w.initContext(); err != nil {
		w.Exit()
		return err
	}
	w.initFinish()

	if iconErr != nil {
		log.Printf("Window icon: %v", iconErr)
	}
	return iconErr
}

func (w *Window) initHints() {
	w.lib.DefaultWindowHints()
	// Shown in initFinish once position and icon are in place.
	w.lib.WindowHint(HintVisible, 0)
	w.lib.WindowHint(HintResizable, boolHint(w.attr.Resizable))
	w.lib.WindowHint(HintDecorated, boolHint(w.attr.Decorated))
	w.lib.WindowHint(HintFocused, boolHint(w.attr.Focused))
	w.lib.WindowHint(HintAutoIconify, boolHint(w.attr.AutoIconify))
	w.lib.WindowHint(HintFloating, boolHint(w.attr.Floating))
	w.lib.WindowHint(HintMaximized, boolHint(w.attr.Maximized))
	w.lib.WindowHint(HintSamples, w.attr.Samples)
	w.lib.WindowHint(HintContextVersionMajor, w.attr.Context.Major)
	w.lib.WindowHint(HintContextVersionMinor, w.attr.Context.Minor)
	w.lib.WindowHint(HintOpenGLCoreProfile, boolHint(w.attr.CoreProfile))
	w.lib.WindowHint(HintOpenGLForwardCompatible, boolHint(w.attr.ForwardCompatible))
}

// primary returns the primary monitor and its current mode.
func (w *Window) primary() (Monitor, VideoMode, error) {
	monitor := w.lib.PrimaryMonitor()
	if monitor == nil {
		return nil, VideoMode{}, ErrNoMonitor
	}
	mode := monitor.VideoMode()
	if mode.Width <= 0 || mode.Height <= 0 {
		return nil, VideoMode{}, ErrNoVideoMode
	}
	return monitor, mode, nil
}

func (w *Window) initWindow() error {
	monitor, mode, err := w.primary()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCreateWindow, err)
	}

	var handle Handle
	if w.attr.Fullscreen {
		handle, err = w.lib.CreateWindow(mode.Width, mode.Height, w.attr.Title, monitor)
	} else {
		handle, err = w.lib.CreateWindow(w.attr.Width, w.attr.Height, w.attr.Title, nil)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCreateWindow, err)
	}
	if handle == nil {
		return ErrCreateWindow
	}
	w.handle = handle
	w.state = stateActive
	w.width, w.height = handle.FramebufferSize()

	if !w.attr.Position.Specified {
		w.attr.Position = centered(mode, w.attr.Width, w.attr.Height)
	}
	handle.SetPos(w.attr.Position.X, w.attr.Position.Y)

	log.Printf("Created window %q: %dx%d at (%d,%d), fullscreen=%t",
		w.attr.Title, w.attr.Width, w.attr.Height, w.attr.Position.X, w.attr.Position.Y, w.attr.Fullscreen)
	return nil
}

func (w *Window) initCallbacks() {
	w.handle.SetPosCallback(w.onPos)
	w.handle.SetSizeCallback(w.onSize)
	w.handle.SetFramebufferSizeCallback(w.onFramebufferSize)
}

func (w *Window) onPos(x, y int) {
	if !w.attr.Fullscreen {
		w.attr.Position = At(x, y)
	}
}

func (w *Window) onSize(width, height int) {
	if !w.attr.Fullscreen {
		w.attr.Width = width
		w.attr.Height = height
	}
}

func (w *Window) onFramebufferSize(width, height int) {
	w.width = width
	w.height = height
}

func (w *Window) initContext() error {
	w.handle.MakeContextCurrent()
	w.applySwapInterval()
	if err := w.lib.LoadGL(); err != nil {
		return fmt.Errorf("%w: %w", ErrLoadGL, err)
	}
	return nil
}

func (w *Window) initFinish() {
	if w.attr.Minimized {
		w.handle.Iconify()
	}
	if w.attr.Visible {
		w.handle.Show()
	}
}

func (w *Window) applySwapInterval() {
	if w.attr.VSync {
		w.lib.SwapInterval(1)
	} else {
		w.lib.SwapInterval(0)
	}
}

// Refresh presents the back buffer and dispatches pending window events,
// which runs any registered callbacks before it returns. Call once per frame.
func (w *Window) Refresh() {
	func() { defer profiling.Track("window.SwapBuffers")(); w.handle.SwapBuffers() }()
	func() { defer profiling.Track("window.PollEvents")(); w.lib.PollEvents() }()
}

// Exit releases the callbacks and destroys the window and its context.
// Calls after the first are ignored.
func (w *Window) Exit() {
	if w.state != stateActive {
		return
	}
	w.handle.FreeCallbacks()
	w.handle.Destroy()
	w.handle = nil
	w.state = stateTerminated
	log.Printf("Destroyed window %q", w.attr.Title)
}

// Attributes returns a snapshot of the window's current attributes.
func (w *Window) Attributes() Attributes {
	return w.attr
}

func (w *Window) SetTitle(title string) {
	w.attr.Title = title
	w.handle.SetTitle(title)
}

func (w *Window) Title() string {
	return w.attr.Title
}

// SetIcon records path as the icon and, when it is non-empty, decodes the
// image and installs it. An empty path keeps whatever icon is already set.
func (w *Window) SetIcon(path string) error {
	w.attr.Icon = path
	if path == "" {
		return nil
	}
	if w.decoder == nil {
		return fmt.Errorf("%w: %s: no image decoder", ErrIcon, path)
	}
	img, err := w.decoder.Decode(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrIcon, path, err)
	}
	defer w.decoder.Release(img)
	w.handle.SetIcon(img)
	return nil
}

func (w *Window) Icon() string {
	return w.attr.Icon
}

// SetPos moves the window. While windowed the new position is recorded
// right away; the position callback confirms it on the next Refresh.
func (w *Window) SetPos(x, y int) {
	w.handle.SetPos(x, y)
	if !w.attr.Fullscreen {
		w.attr.Position = At(x, y)
	}
}

// X is the last known windowed x position.
func (w *Window) X() int {
	return w.attr.Position.X
}

// Y is the last known windowed y position.
func (w *Window) Y() int {
	return w.attr.Position.Y
}

// SetSize resizes the window's logical size. See SetPos for bookkeeping.
func (w *Window) SetSize(width, height int) {
	w.handle.SetSize(width, height)
	if !w.attr.Fullscreen {
		w.attr.Width = width
		w.attr.Height = height
	}
}

// Width is the framebuffer width in pixels.
func (w *Window) Width() int {
	return w.width
}

// Height is the framebuffer height in pixels.
func (w *Window) Height() int {
	return w.height
}

// SetFullScreen moves the window onto the primary monitor at its native
// mode, or back to the last windowed geometry. The resulting state is read
// back from the window system, so a refused switch leaves IsFullScreen
// unchanged.
func (w *Window) SetFullScreen(fullscreen bool) {
	// Set first so the callbacks fired by the switch keep the windowed geometry.
	w.attr.Fullscreen = fullscreen

	monitor, mode, err := w.primary()
	if err != nil {
		log.Printf("SetFullScreen(%t): %v", fullscreen, err)
		w.attr.Fullscreen = w.handle.Monitor() != nil
		return
	}
	if fullscreen {
		w.handle.SetMonitor(monitor, 0, 0, mode.Width, mode.Height, mode.RefreshRate)
	} else {
		w.handle.SetMonitor(nil, w.attr.Position.X, w.attr.Position.Y, w.attr.Width, w.attr.Height, mode.RefreshRate)
	}
	// Some platforms drop the swap interval on a monitor change.
	w.applySwapInterval()

	current := w.handle.Monitor()
	w.attr.Fullscreen = current != nil && current.Same(monitor)
}

func (w *Window) IsFullScreen() bool {
	return w.attr.Fullscreen
}

func (w *Window) SetVSync(vsync bool) {
	w.attr.VSync = vsync
	w.applySwapInterval()
}

func (w *Window) IsVSync() bool {
	return w.attr.VSync
}

// Close asks the render loop to stop; see ShouldClose.
func (w *Window) Close() {
	w.handle.SetShouldClose(true)
}

func (w *Window) ShouldClose() bool {
	return w.handle.ShouldClose()
}

// Handle exposes the native window for collaborators that must bind it
// directly, such as a renderer. It is nil before Init and after Exit.
func (w *Window) Handle() Handle {
	return w.handle
}
