package core

import (
	"errors"
	"fmt"
)

// ErrInvalidAttributes is returned by Attributes.Validate.
var ErrInvalidAttributes = errors.New("invalid window attributes")

// Position is a window position that may be left to the window system.
type Position struct {
	X, Y      int
	Specified bool
}

// Unspecified lets the window system (or Init's centering) pick the position.
func Unspecified() Position { return Position{} }

// At is an explicit screen position.
func At(x, y int) Position { return Position{X: x, Y: y, Specified: true} }

// ContextVersion is the requested OpenGL context version.
type ContextVersion struct {
	Major int
	Minor int
}

// Attributes configures a Window. Once handed to NewWindow the window keeps
// its own copy; read it back through Window.Attributes.
type Attributes struct {
	Title string
	Icon  string

	Position Position

	// Logical window size, kept at its windowed value while fullscreen.
	Width  int
	Height int

	Fullscreen  bool
	VSync       bool
	Resizable   bool
	Decorated   bool
	Focused     bool
	AutoIconify bool
	Floating    bool
	Maximized   bool
	Minimized   bool
	Visible     bool

	// Multisample count, 0 disables MSAA.
	Samples int

	Context           ContextVersion
	CoreProfile       bool
	ForwardCompatible bool
}

// DefaultAttributes returns the attributes of a visible, decorated,
// resizable, vsynced window of the given size, centered on the primary
// monitor, with a 4.1 core context.
func DefaultAttributes(width, height int) Attributes {
	return Attributes{
		Position:          Unspecified(),
		Width:             width,
		Height:            height,
		VSync:             true,
		Resizable:         true,
		Decorated:         true,
		Focused:           true,
		AutoIconify:       true,
		Visible:           true,
		Context:           ContextVersion{Major: 4, Minor: 1},
		CoreProfile:       true,
		ForwardCompatible: true,
	}
}

// Validate reports attribute combinations that can never produce a window.
func (a Attributes) Validate() error {
	if a.Width <= 0 || a.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidAttributes, a.Width, a.Height)
	}
	if a.Samples < 0 {
		return fmt.Errorf("%w: samples %d", ErrInvalidAttributes, a.Samples)
	}
	if a.Context.Major < 1 || a.Context.Minor < 0 {
		return fmt.Errorf("%w: context version %d.%d", ErrInvalidAttributes, a.Context.Major, a.Context.Minor)
	}
	// Core profiles only exist from 3.2 on.
	if a.CoreProfile && (a.Context.Major < 3 || (a.Context.Major == 3 && a.Context.Minor < 2)) {
		return fmt.Errorf("%w: core profile needs 3.2+, got %d.%d", ErrInvalidAttributes, a.Context.Major, a.Context.Minor)
	}
	return nil
}

func centered(mode VideoMode, width, height int) Position {
	return At((mode.Width-width)/2, (mode.Height-height)/2)
}
