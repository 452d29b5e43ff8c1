package window

// Callbacks is the set of event handlers of a Window. Nil handlers are
// ignored. Handlers run synchronously inside Window.Update.
type Callbacks struct {
	MouseButton     func(w *Window, button MouseButton, action Action, mods ModifierKey)
	CursorPos       func(w *Window, x, y float64)
	CursorEnter     func(w *Window, entered bool)
	Scroll          func(w *Window, xoff, yoff float64)
	Key             func(w *Window, key Key, scancode int, action Action, mods ModifierKey)
	Char            func(w *Window, codepoint rune)
	CharMods        func(w *Window, codepoint rune, mods ModifierKey)
	FramebufferSize func(w *Window, width, height int)
}

// trampolines returns the native event hooks of w. Each hook looks up the
// handler at dispatch time, so SetCallbacks takes effect immediately.
func (w *Window) trampolines() Trampolines {
	return Trampolines{
		MouseButton:     w.onMouseButton,
		CursorPos:       w.onCursorPos,
		CursorEnter:     w.onCursorEnter,
		Scroll:          w.onScroll,
		Key:             w.onKey,
		Char:            w.onChar,
		CharMods:        w.onCharMods,
		FramebufferSize: w.onFramebufferSize,
	}
}

func (w *Window) onMouseButton(button, action, mods int) {
	if cb := w.callbacks.MouseButton; cb != nil {
		cb(w, MouseButton(button), translateAction(action), ModifierKey(mods))
	}
}

func (w *Window) onCursorPos(x, y float64) {
	if cb := w.callbacks.CursorPos; cb != nil {
		cb(w, x, y)
	}
}

func (w *Window) onCursorEnter(entered bool) {
	if cb := w.callbacks.CursorEnter; cb != nil {
		cb(w, entered)
	}
}

func (w *Window) onScroll(xoff, yoff float64) {
	if cb := w.callbacks.Scroll; cb != nil {
		cb(w, xoff, yoff)
	}
}

func (w *Window) onKey(key, scancode, action, mods int) {
	if cb := w.callbacks.Key; cb != nil {
		cb(w, Key(key), scancode, translateAction(action), ModifierKey(mods))
	}
}

func (w *Window) onChar(codepoint rune) {
	if cb := w.callbacks.Char; cb != nil {
		cb(w, codepoint)
	}
}

func (w *Window) onCharMods(codepoint rune, mods int) {
	if cb := w.callbacks.CharMods; cb != nil {
		cb(w, codepoint, ModifierKey(mods))
	}
}

func (w *Window) onFramebufferSize(width, height int) {
	if cb := w.callbacks.FramebufferSize; cb != nil {
		cb(w, width, height)
	}
}
