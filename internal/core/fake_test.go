package core

import (
	"errors"
	"fmt"
)

// recorder is the shared, ordered call log of the fakes below.
type recorder struct {
	calls []string
}

func (r *recorder) record(format string, args ...any) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

// count returns how often call appears verbatim in the log.
func (r *recorder) count(call string) int {
	n := 0
	for _, c := range r.calls {
		if c == call {
			n++
		}
	}
	return n
}

// index returns the position of the first occurrence of call, or -1.
func (r *recorder) index(call string) int {
	for i, c := range r.calls {
		if c == call {
			return i
		}
	}
	return -1
}

type fakeMonitor struct {
	name string
	mode VideoMode
}

func (m *fakeMonitor) VideoMode() VideoMode { return m.mode }

func (m *fakeMonitor) Same(other Monitor) bool {
	o, ok := other.(*fakeMonitor)
	return ok && o != nil && o.name == m.name
}

// lookup returns a new value for the same display on every call, like GLFW.
func (m *fakeMonitor) lookup() *fakeMonitor {
	c := *m
	return &c
}

type fakeLibrary struct {
	rec     *recorder
	primary *fakeMonitor

	hints    map[Hint]int
	interval int

	createErr    error
	createNil    bool
	loadErr      error
	createWidth  int
	createHeight int
	createOn     Monitor

	handle *fakeHandle
}

func newFakeLibrary() *fakeLibrary {
	return &fakeLibrary{
		rec:      &recorder{},
		primary:  &fakeMonitor{name: "primary", mode: VideoMode{Width: 1920, Height: 1080, RefreshRate: 60}},
		hints:    make(map[Hint]int),
		interval: -1,
	}
}

func (l *fakeLibrary) DefaultWindowHints() {
	l.rec.record("DefaultWindowHints")
	clear(l.hints)
}

func (l *fakeLibrary) WindowHint(hint Hint, value int) {
	l.hints[hint] = value
}

func (l *fakeLibrary) PrimaryMonitor() Monitor {
	if l.primary == nil {
		return nil
	}
	return l.primary.lookup()
}

func (l *fakeLibrary) CreateWindow(width, height int, title string, monitor Monitor) (Handle, error) {
	l.rec.record("CreateWindow")
	l.createWidth, l.createHeight, l.createOn = width, height, monitor
	if l.createErr != nil {
		return nil, l.createErr
	}
	if l.createNil {
		return nil, nil
	}
	l.handle = &fakeHandle{
		rec:      l.rec,
		title:    title,
		fbWidth:  width,
		fbHeight: height,
		monitor:  monitor,
	}
	return l.handle, nil
}

func (l *fakeLibrary) SwapInterval(interval int) {
	l.rec.record("SwapInterval(%d)", interval)
	l.interval = interval
}

func (l *fakeLibrary) PollEvents() { l.rec.record("PollEvents") }

func (l *fakeLibrary) LoadGL() error {
	l.rec.record("LoadGL")
	return l.loadErr
}

type fakeHandle struct {
	rec *recorder

	title    string
	x, y     int
	icons    []*Image
	fbWidth  int
	fbHeight int

	posCb  func(x, y int)
	sizeCb func(width, height int)
	fbCb   func(width, height int)

	monitor Monitor
	// lastWindowed holds x, y, width, height, refresh of the last SetMonitor
	// call back to windowed mode.
	lastWindowed [5]int
	// rejectMonitor makes SetMonitor a no-op, like a window system that
	// refuses the switch.
	rejectMonitor bool
	// landOn, when set, is where a fullscreen switch actually ends up.
	landOn *fakeMonitor

	shouldClose bool
}

func (h *fakeHandle) SetTitle(title string) {
	h.rec.record("SetTitle(%s)", title)
	h.title = title
}

func (h *fakeHandle) SetIcon(img *Image) {
	h.rec.record("SetIcon")
	h.icons = append(h.icons, img)
}

func (h *fakeHandle) SetPos(x, y int) {
	h.rec.record("SetPos(%d,%d)", x, y)
	h.x, h.y = x, y
}

func (h *fakeHandle) SetSize(width, height int) {
	h.rec.record("SetSize(%d,%d)", width, height)
}

func (h *fakeHandle) FramebufferSize() (int, int) { return h.fbWidth, h.fbHeight }

func (h *fakeHandle) SetPosCallback(fn func(x, y int)) { h.posCb = fn }
func (h *fakeHandle) SetSizeCallback(fn func(width, height int)) { h.sizeCb = fn }
func (h *fakeHandle) SetFramebufferSizeCallback(fn func(width, height int)) { h.fbCb = fn }

func (h *fakeHandle) FreeCallbacks() {
	h.rec.record("FreeCallbacks")
	h.posCb, h.sizeCb, h.fbCb = nil, nil, nil
}

func (h *fakeHandle) MakeContextCurrent() { h.rec.record("MakeContextCurrent") }
func (h *fakeHandle) SwapBuffers() { h.rec.record("SwapBuffers") }
func (h *fakeHandle) Iconify() { h.rec.record("Iconify") }
func (h *fakeHandle) Show() { h.rec.record("Show") }
func (h *fakeHandle) Destroy() { h.rec.record("Destroy") }

func (h *fakeHandle) Monitor() Monitor {
	if m, ok := h.monitor.(*fakeMonitor); ok && m != nil {
		return m.lookup()
	}
	return h.monitor
}

// SetMonitor fires the callbacks a real window system would send for the
// new geometry.
func (h *fakeHandle) SetMonitor(m Monitor, x, y, width, height, refreshRate int) {
	h.rec.record("SetMonitor")
	if m == nil {
		h.lastWindowed = [5]int{x, y, width, height, refreshRate}
	}
	if h.rejectMonitor {
		return
	}
	h.monitor = m
	if m != nil && h.landOn != nil {
		h.monitor = h.landOn
	}
	h.fire(x, y, width, height)
}

// fire simulates the window system reporting a move and resize.
func (h *fakeHandle) fire(x, y, width, height int) {
	if h.posCb != nil {
		h.posCb(x, y)
	}
	if h.sizeCb != nil {
		h.sizeCb(width, height)
	}
	if h.fbCb != nil {
		h.fbCb(width, height)
	}
}

func (h *fakeHandle) SetShouldClose(value bool) { h.shouldClose = value }
func (h *fakeHandle) ShouldClose() bool { return h.shouldClose }

var errBadImage = errors.New("unsupported image format")

type fakeDecoder struct {
	rec      *recorder
	fail     bool
	released []*Image
}

func (d *fakeDecoder) Decode(path string) (*Image, error) {
	d.rec.record("Decode(%s)", path)
	if d.fail {
		return nil, errBadImage
	}
	return &Image{Width: 2, Height: 2, Pix: make([]byte, 2*2*4)}, nil
}

func (d *fakeDecoder) Release(img *Image) {
	d.rec.record("Release")
	d.released = append(d.released, img)
}
