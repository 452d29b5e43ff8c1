package window

import "unsafe"

// Window is a native window with its rendering context, event callbacks and
// cached input state. Windows are created with Context.Create and must be
// released with Destroy.
type Window struct {
	ctx       *Context
	native    Native
	callbacks Callbacks
	userdata  any

	title  string
	suffix string
	vsync  bool

	cursorPos     [2]float32
	cursorPrevPos [2]float32
}

// Destroy closes the native window. The window must not be used afterwards.
func (w *Window) Destroy() {
	w.native.Destroy()
	w.native = nil
	w.title = ""
	w.suffix = ""
	w.callbacks = Callbacks{}
	w.userdata = nil
	w.ctx.logger.Debug("window destroyed")
	w.ctx.release()
}

// SetCallbacks replaces the whole callback table.
func (w *Window) SetCallbacks(cb Callbacks) {
	w.callbacks = cb
}

// Update polls pending events, dispatching callbacks on the calling
// goroutine, and refreshes the cached cursor position. Call it once per
// frame to keep CursorDiff meaningful.
func (w *Window) Update() {
	w.native.PollEvents()

	w.cursorPrevPos = w.cursorPos
	x, y := w.native.CursorPos()
	w.cursorPos = [2]float32{float32(x), float32(y)}
}

// SwapBuffers presents the back buffer. It may block for a frame when vsync
// is enabled.
func (w *Window) SwapBuffers() {
	w.native.SwapBuffers()
}

// VSyncEnabled reports whether buffer swaps wait for the vertical blank.
func (w *Window) VSyncEnabled() bool {
	return w.vsync
}

// SetVSync enables or disables waiting for the vertical blank on swap.
func (w *Window) SetVSync(enabled bool) {
	interval := 0
	if enabled {
		interval = 1
	}
	w.native.SetSwapInterval(interval)
	w.vsync = enabled
}

func (w *Window) SetUserData(data any) {
	w.userdata = data
}

func (w *Window) UserData() any {
	return w.userdata
}

// KeyState returns the current state of k. Unmapped native states report
// ActionRelease.
func (w *Window) KeyState(k Key) Action {
	switch w.native.Key(int(k)) {
	case nativePress:
		return ActionPress
	case nativeRepeat:
		return ActionRepeat
	default:
		return ActionRelease
	}
}

// MouseButtonState returns the current state of mb. Mouse buttons never
// report ActionRepeat.
func (w *Window) MouseButtonState(mb MouseButton) Action {
	if w.native.MouseButton(int(mb)) == nativePress {
		return ActionPress
	}
	return ActionRelease
}

// CursorDiff returns the cursor movement between the last two Update calls.
func (w *Window) CursorDiff() (dx, dy float32) {
	return w.cursorPos[0] - w.cursorPrevPos[0], w.cursorPos[1] - w.cursorPrevPos[1]
}

// CursorPos returns the cursor position cached by the last Update.
func (w *Window) CursorPos() (x, y float32) {
	return w.cursorPos[0], w.cursorPos[1]
}

// GrabCursor hides the cursor and switches to unbounded relative motion when
// grab is true, and restores the normal cursor otherwise.
func (w *Window) GrabCursor(grab bool) {
	w.native.SetCursorDisabled(grab)
}

func (w *Window) CursorGrabbed() bool {
	return w.native.CursorDisabled()
}

// SetTitle replaces the primary title. An empty title clears it.
func (w *Window) SetTitle(title string) {
	w.title = title
	w.native.SetTitle(w.FullTitle())
}

func (w *Window) Title() string {
	return w.title
}

// SetTitleSuffix replaces the text shown after the title, typically live
// information such as frame rate. An empty suffix clears it.
func (w *Window) SetTitleSuffix(suffix string) {
	w.suffix = suffix
	w.native.SetTitle(w.FullTitle())
}

func (w *Window) TitleSuffix() string {
	return w.suffix
}

// FullTitle returns the title as displayed: the title and suffix joined by a
// single space when both are set.
func (w *Window) FullTitle() string {
	return joinTitle(w.title, w.suffix)
}

func joinTitle(title, suffix string) string {
	switch {
	case title == "":
		return suffix
	case suffix == "":
		return title
	default:
		return title + " " + suffix
	}
}

func (w *Window) ShouldClose() bool {
	return w.native.ShouldClose()
}

func (w *Window) SetShouldClose(value bool) {
	w.native.SetShouldClose(value)
}

// FramebufferSize returns the size of the drawable area in pixels.
func (w *Window) FramebufferSize() (width, height int) {
	return w.native.FramebufferSize()
}

// ProcAddress resolves a rendering API entry point for the window's context.
// The context must be current on the calling thread.
func (w *Window) ProcAddress(name string) unsafe.Pointer {
	return w.native.ProcAddress(name)
}
