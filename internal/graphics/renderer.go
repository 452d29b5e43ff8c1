package graphics

import (
	"time"

	glpkg "github.com/tinyrange/gfxwnd/internal/gl"
	"github.com/tinyrange/gfxwnd/internal/window"
)

// Renderer runs the frame loop of a single window.
type Renderer struct {
	win *window.Window
	gl  glpkg.OpenGL

	clearEnabled bool
	clearColor   Color
	frameLimit   time.Duration

	now   func() time.Time
	sleep func(time.Duration)
}

type frame struct {
	r     *Renderer
	index uint64
	delta time.Duration
}

// New returns a Renderer for w. The window's context must be current and gl
// loaded from it.
func New(w *window.Window, gl glpkg.OpenGL) *Renderer {
	gl.Enable(glpkg.Multisample)
	gl.Enable(glpkg.Blend)
	gl.BlendFunc(glpkg.SrcAlpha, glpkg.OneMinusSrcAlpha)

	return &Renderer{
		win:          w,
		gl:           gl,
		clearEnabled: true,
		clearColor:   ColorBlack,
		now:          time.Now,
		sleep:        time.Sleep,
	}
}

func (r *Renderer) SetClear(enabled bool) {
	r.clearEnabled = enabled
}

func (r *Renderer) SetClearColor(c Color) {
	r.clearColor = c
}

// SetFrameLimit caps the frame rate when fps is positive. Zero removes the
// cap, leaving pacing to vsync.
func (r *Renderer) SetFrameLimit(fps int) {
	if fps <= 0 {
		r.frameLimit = 0
		return
	}
	r.frameLimit = time.Second / time.Duration(fps)
}

// Loop calls step once per frame until the window is asked to close or step
// returns an error, which Loop returns.
func (r *Renderer) Loop(step func(f Frame) error) error {
	var (
		index uint64
		last  = r.now()
	)
	for !r.win.ShouldClose() {
		start := r.now()
		r.win.Update()
		r.prepareFrame()

		if err := step(&frame{r: r, index: index, delta: start.Sub(last)}); err != nil {
			return err
		}

		r.win.SwapBuffers()
		index++
		last = start

		if r.frameLimit > 0 {
			if spent := r.now().Sub(start); spent < r.frameLimit {
				r.sleep(r.frameLimit - spent)
			}
		}
	}
	return nil
}

func (r *Renderer) prepareFrame() {
	bw, bh := r.win.FramebufferSize()
	r.gl.Viewport(0, 0, int32(bw), int32(bh))

	if r.clearEnabled {
		c := r.clearColor
		r.gl.ClearColor(c[0], c[1], c[2], c[3])
		r.gl.Clear(glpkg.ColorBufferBit)
	}
}

func (f *frame) Window() *window.Window {
	return f.r.win
}

func (f *frame) Index() uint64 {
	return f.index
}

func (f *frame) Delta() time.Duration {
	return f.delta
}

func (f *frame) FramebufferSize() (int, int) {
	return f.r.win.FramebufferSize()
}

func (f *frame) CursorDelta() (float32, float32) {
	return f.r.win.CursorDiff()
}

func (f *frame) KeyState(key window.Key) window.Action {
	return f.r.win.KeyState(key)
}

func (f *frame) MouseButtonState(button window.MouseButton) window.Action {
	return f.r.win.MouseButtonState(button)
}
