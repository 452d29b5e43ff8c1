// Package windowtest provides an in-memory window.Platform for tests.
package windowtest

import (
	"unsafe"

	"github.com/tinyrange/gfxwnd/internal/window"
)

// Native action values.
const (
	Release = 0
	Press   = 1
	Repeat  = 2
)

// Platform records lifecycle calls and hands out Native fakes.
type Platform struct {
	InitErr error
	OpenErr error

	Inits      int
	Terminates int
	Opened     []*Native
}

func (p *Platform) Init() error {
	if p.InitErr != nil {
		return p.InitErr
	}
	p.Inits++
	return nil
}

func (p *Platform) Terminate() {
	p.Terminates++
}

func (p *Platform) Open(cfg window.OpenConfig, t window.Trampolines) (window.Native, error) {
	if p.OpenErr != nil {
		return nil, p.OpenErr
	}
	n := &Native{
		Config:       cfg,
		Trampolines:  t,
		Title:        cfg.Title,
		Keys:         map[int]int{},
		Buttons:      map[int]int{},
		Width:        cfg.Width,
		Height:       cfg.Height,
		SwapInterval: -1,
		Procs:        map[string]unsafe.Pointer{},
	}
	p.Opened = append(p.Opened, n)
	return n, nil
}

// Last returns the most recently opened Native.
func (p *Platform) Last() *Native {
	if len(p.Opened) == 0 {
		return nil
	}
	return p.Opened[len(p.Opened)-1]
}

// Native is a scripted window. Events queued with the Queue methods are
// delivered on the next PollEvents.
type Native struct {
	Config      window.OpenConfig
	Trampolines window.Trampolines

	Title         string
	TitleHistory  []string
	Keys          map[int]int
	Buttons       map[int]int
	Cursor        [2]float64
	Disabled      bool
	Close         bool
	Width, Height int
	SwapInterval  int
	Swaps         int
	Polls         int
	Destroyed     bool
	Procs         map[string]unsafe.Pointer
	pending       []func()
}

// Queue schedules fn to run during the next PollEvents.
func (n *Native) Queue(fn func()) {
	n.pending = append(n.pending, fn)
}

// QueueKey schedules a raw key event.
func (n *Native) QueueKey(key, scancode, action, mods int) {
	n.Queue(func() {
		if n.Trampolines.Key != nil {
			n.Trampolines.Key(key, scancode, action, mods)
		}
	})
}

// QueueCursor moves the cursor during the next PollEvents and fires the
// cursor position hook.
func (n *Native) QueueCursor(x, y float64) {
	n.Queue(func() {
		n.Cursor = [2]float64{x, y}
		if n.Trampolines.CursorPos != nil {
			n.Trampolines.CursorPos(x, y)
		}
	})
}

func (n *Native) PollEvents() {
	n.Polls++
	pending := n.pending
	n.pending = nil
	for _, fn := range pending {
		fn()
	}
}

func (n *Native) CursorPos() (float64, float64) {
	return n.Cursor[0], n.Cursor[1]
}

func (n *Native) SwapBuffers() {
	n.Swaps++
}

func (n *Native) SetSwapInterval(interval int) {
	n.SwapInterval = interval
}

func (n *Native) Key(key int) int {
	return n.Keys[key]
}

func (n *Native) MouseButton(button int) int {
	return n.Buttons[button]
}

func (n *Native) SetCursorDisabled(disabled bool) {
	n.Disabled = disabled
}

func (n *Native) CursorDisabled() bool {
	return n.Disabled
}

func (n *Native) SetTitle(title string) {
	n.Title = title
	n.TitleHistory = append(n.TitleHistory, title)
}

func (n *Native) ShouldClose() bool {
	return n.Close
}

func (n *Native) SetShouldClose(value bool) {
	n.Close = value
}

func (n *Native) FramebufferSize() (int, int) {
	return n.Width, n.Height
}

func (n *Native) ProcAddress(name string) unsafe.Pointer {
	return n.Procs[name]
}

func (n *Native) Destroy() {
	n.Destroyed = true
}
