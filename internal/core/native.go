package core

// Hint selects a window-creation hint. Values are translated to the native
// library's own constants by the Library implementation.
type Hint int

const (
	HintVisible Hint = iota
	HintResizable
	HintDecorated
	HintFocused
	HintAutoIconify
	HintFloating
	HintMaximized
	HintSamples
	HintContextVersionMajor
	HintContextVersionMinor
	HintOpenGLCoreProfile
	HintOpenGLForwardCompatible
)

func boolHint(b bool) int {
	if b {
		return 1
	}
	return 0
}

// VideoMode is a display's current resolution and refresh rate.
type VideoMode struct {
	Width       int
	Height      int
	RefreshRate int
}

// Monitor is a display known to the window system. Two lookups of the same
// display may return distinct values; Same reports whether they refer to the
// same display and is the only identity check the window relies on.
type Monitor interface {
	VideoMode() VideoMode
	Same(other Monitor) bool
}

// Image is decoded, non-premultiplied RGBA8 pixel data.
type Image struct {
	Width  int
	Height int
	Pix    []byte
}

// ImageDecoder turns an image file into RGBA8 pixels. Every Image returned
// by Decode must be handed back to Release once the pixels are consumed.
type ImageDecoder interface {
	Decode(path string) (*Image, error)
	Release(img *Image)
}

// Library is the process-wide part of the windowing and GL binding.
type Library interface {
	DefaultWindowHints()
	WindowHint(hint Hint, value int)
	PrimaryMonitor() Monitor
	// CreateWindow creates a window, fullscreen on monitor when it is non-nil.
	CreateWindow(width, height int, title string, monitor Monitor) (Handle, error)
	// SwapInterval applies to the context current on the calling thread.
	SwapInterval(interval int)
	PollEvents()
	// LoadGL binds the graphics API function table for the current context.
	LoadGL() error
}

// Handle is one native window and its context.
type Handle interface {
	SetTitle(title string)
	SetIcon(img *Image)
	SetPos(x, y int)
	SetSize(width, height int)
	FramebufferSize() (width, height int)

	SetPosCallback(fn func(x, y int))
	SetSizeCallback(fn func(width, height int))
	SetFramebufferSizeCallback(fn func(width, height int))
	FreeCallbacks()

	MakeContextCurrent()
	SwapBuffers()

	Iconify()
	Show()

	// Monitor returns nil while the window is not fullscreen.
	Monitor() Monitor
	// SetMonitor switches to fullscreen on m, or back to windowed when m is nil.
	SetMonitor(m Monitor, x, y, width, height, refreshRate int)

	SetShouldClose(value bool)
	ShouldClose() bool

	Destroy()
}
