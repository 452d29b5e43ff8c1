// Package graphics drives a per-frame loop over a window and its OpenGL
// context.
package graphics

import (
	"time"

	"github.com/tinyrange/gfxwnd/internal/window"
)

type Color [4]float32

var (
	ColorBlack = Color{0, 0, 0, 1}
	ColorWhite = Color{1, 1, 1, 1}
)

// Frame is the view of the window handed to the step function each frame.
type Frame interface {
	Window() *window.Window

	// Index counts frames from zero.
	Index() uint64
	// Delta is the time elapsed since the previous frame started.
	Delta() time.Duration

	FramebufferSize() (width, height int)
	CursorDelta() (dx, dy float32)

	KeyState(key window.Key) window.Action
	MouseButtonState(button window.MouseButton) window.Action
}
