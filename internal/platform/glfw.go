// Package platform implements window.Platform on top of GLFW.
package platform

import (
	"errors"
	"runtime"
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/tinyrange/gfxwnd/internal/window"
)

var errNoMonitor = errors.New("no primary monitor")

type glfwPlatform struct{}

// New returns the GLFW platform. GLFW must only be used from the main
// thread, so the calling goroutine is locked to its OS thread between Init
// and Terminate.
func New() window.Platform {
	return glfwPlatform{}
}

func (glfwPlatform) Init() error {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		runtime.UnlockOSThread()
		return err
	}
	return nil
}

func (glfwPlatform) Terminate() {
	glfw.Terminate()
	runtime.UnlockOSThread()
}

func (glfwPlatform) Open(cfg window.OpenConfig, t window.Trampolines) (window.Native, error) {
	glfw.DefaultWindowHints()
	applyHints(cfg.Params)

	var mon *glfw.Monitor
	switch cfg.Mode {
	case window.Borderless:
		mon = glfw.GetPrimaryMonitor()
		if mon == nil {
			return nil, errNoMonitor
		}
		mode := mon.GetVideoMode()
		glfw.WindowHint(glfw.RedBits, mode.RedBits)
		glfw.WindowHint(glfw.GreenBits, mode.GreenBits)
		glfw.WindowHint(glfw.BlueBits, mode.BlueBits)
		glfw.WindowHint(glfw.RefreshRate, mode.RefreshRate)
		cfg.Width, cfg.Height = mode.Width, mode.Height
	case window.Fullscreen:
		mon = glfw.GetPrimaryMonitor()
		if mon == nil {
			return nil, errNoMonitor
		}
	}

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, mon, nil)
	if err != nil {
		return nil, err
	}
	win.MakeContextCurrent()

	installTrampolines(win, t)
	return &glfwWindow{win: win}, nil
}

func applyHints(p window.ContextParams) {
	glfw.WindowHint(glfw.Samples, p.Samples)
	glfw.WindowHint(glfw.ContextVersionMajor, p.VersionMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, p.VersionMinor)
	glfw.WindowHint(glfw.OpenGLDebugContext, boolHint(p.Debug))
	if p.CoreProfile {
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	} else {
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLAnyProfile)
	}
	glfw.WindowHint(glfw.OpenGLForwardCompatible, boolHint(p.ForwardCompat))
	glfw.WindowHint(glfw.Floating, boolHint(p.Floating))
	glfw.WindowHint(glfw.Resizable, boolHint(p.Resizable))
}

func boolHint(v bool) int {
	if v {
		return glfw.True
	}
	return glfw.False
}

// installTrampolines forwards GLFW callbacks to t in GLFW's raw numbering.
func installTrampolines(win *glfw.Window, t window.Trampolines) {
	win.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		t.MouseButton(int(button), int(action), int(mods))
	})
	win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		t.CursorPos(x, y)
	})
	win.SetCursorEnterCallback(func(_ *glfw.Window, entered bool) {
		t.CursorEnter(entered)
	})
	win.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		t.Scroll(xoff, yoff)
	})
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		t.Key(int(key), scancode, int(action), int(mods))
	})
	win.SetCharCallback(func(_ *glfw.Window, char rune) {
		t.Char(char)
	})
	win.SetCharModsCallback(func(_ *glfw.Window, char rune, mods glfw.ModifierKey) {
		t.CharMods(char, int(mods))
	})
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		t.FramebufferSize(width, height)
	})
}

type glfwWindow struct {
	win *glfw.Window
}

func (w *glfwWindow) PollEvents() {
	glfw.PollEvents()
}

func (w *glfwWindow) CursorPos() (float64, float64) {
	return w.win.GetCursorPos()
}

func (w *glfwWindow) SwapBuffers() {
	w.win.SwapBuffers()
}

// SetSwapInterval applies to the current context, which Open made this
// window's.
func (w *glfwWindow) SetSwapInterval(interval int) {
	glfw.SwapInterval(interval)
}

func (w *glfwWindow) Key(key int) int {
	return int(w.win.GetKey(glfw.Key(key)))
}

func (w *glfwWindow) MouseButton(button int) int {
	return int(w.win.GetMouseButton(glfw.MouseButton(button)))
}

func (w *glfwWindow) SetCursorDisabled(disabled bool) {
	mode := glfw.CursorNormal
	if disabled {
		mode = glfw.CursorDisabled
	}
	w.win.SetInputMode(glfw.CursorMode, mode)
}

func (w *glfwWindow) CursorDisabled() bool {
	return w.win.GetInputMode(glfw.CursorMode) == glfw.CursorDisabled
}

func (w *glfwWindow) SetTitle(title string) {
	w.win.SetTitle(title)
}

func (w *glfwWindow) ShouldClose() bool {
	return w.win.ShouldClose()
}

func (w *glfwWindow) SetShouldClose(value bool) {
	w.win.SetShouldClose(value)
}

func (w *glfwWindow) FramebufferSize() (int, int) {
	return w.win.GetFramebufferSize()
}

func (w *glfwWindow) ProcAddress(name string) unsafe.Pointer {
	return glfw.GetProcAddress(name)
}

func (w *glfwWindow) Destroy() {
	w.win.Destroy()
}
