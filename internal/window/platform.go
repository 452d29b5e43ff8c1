package window

import "unsafe"

// DisplayMode selects how a window is placed on screen at creation.
type DisplayMode int

const (
	// Windowed opens a regular decorated window.
	Windowed DisplayMode = iota
	// Borderless opens a fullscreen window on the primary monitor using the
	// monitor's current video mode.
	Borderless
	// Fullscreen opens an exclusive fullscreen window on the primary monitor.
	Fullscreen
)

func (m DisplayMode) String() string {
	switch m {
	case Windowed:
		return "windowed"
	case Borderless:
		return "borderless"
	case Fullscreen:
		return "fullscreen"
	default:
		return "unknown"
	}
}

// ContextParams configures the rendering context created with a window.
type ContextParams struct {
	VersionMajor  int
	VersionMinor  int
	Samples       int
	Debug         bool
	CoreProfile   bool
	ForwardCompat bool
	Floating      bool
	Resizable     bool
}

// DefaultContextParams returns a 4x multisampled, forward-compatible OpenGL
// 3.3 core debug context in an always-on-top, fixed-size window.
func DefaultContextParams() ContextParams {
	return ContextParams{
		VersionMajor:  3,
		VersionMinor:  3,
		Samples:       4,
		Debug:         true,
		CoreProfile:   true,
		ForwardCompat: true,
		Floating:      true,
		Resizable:     false,
	}
}

// OpenConfig is everything a Platform needs to construct a native window.
type OpenConfig struct {
	Title  string
	Width  int
	Height int
	Mode   DisplayMode
	Params ContextParams
}

// Trampolines receive raw native events. Actions, buttons and modifiers
// arrive in the native numbering.
type Trampolines struct {
	MouseButton     func(button, action, mods int)
	CursorPos       func(x, y float64)
	CursorEnter     func(entered bool)
	Scroll          func(xoff, yoff float64)
	Key             func(key, scancode, action, mods int)
	Char            func(codepoint rune)
	CharMods        func(codepoint rune, mods int)
	FramebufferSize func(width, height int)
}

// Platform is the process-wide windowing library.
type Platform interface {
	Init() error
	Terminate()
	Open(cfg OpenConfig, t Trampolines) (Native, error)
}

// Native is a single window owned by a Platform. All methods must be called
// from the thread that initialized the Platform.
type Native interface {
	PollEvents()
	CursorPos() (x, y float64)
	SwapBuffers()
	SetSwapInterval(interval int)
	// Key and MouseButton return the native action value.
	Key(key int) int
	MouseButton(button int) int
	SetCursorDisabled(disabled bool)
	CursorDisabled() bool
	SetTitle(title string)
	ShouldClose() bool
	SetShouldClose(value bool)
	FramebufferSize() (width, height int)
	ProcAddress(name string) unsafe.Pointer
	Destroy()
}
