package window_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinyrange/gfxwnd/internal/window"
	"github.com/tinyrange/gfxwnd/internal/window/windowtest"
)

func newWindow(t *testing.T, title string) (*window.Window, *windowtest.Native, *windowtest.Platform) {
	t.Helper()
	p := &windowtest.Platform{}
	ctx := window.NewContext(p)
	w, err := ctx.Create(title, 800, 600, window.Windowed, window.DefaultContextParams())
	require.NoError(t, err)
	require.NotNil(t, w)
	return w, p.Last(), p
}

func TestCreate(t *testing.T) {
	w, n, p := newWindow(t, "demo")

	assert.Equal(t, "demo", w.Title())
	assert.Equal(t, "demo", w.FullTitle())
	assert.Equal(t, 1, p.Inits)
	assert.Equal(t, window.OpenConfig{
		Title:  "demo",
		Width:  800,
		Height: 600,
		Mode:   window.Windowed,
		Params: window.DefaultContextParams(),
	}, n.Config)

	assert.False(t, w.VSyncEnabled())
	assert.Equal(t, 0, n.SwapInterval)
}

func TestCreateInvalidSize(t *testing.T) {
	p := &windowtest.Platform{}
	ctx := window.NewContext(p)

	for _, size := range [][2]int{{0, 600}, {800, 0}, {-1, -1}} {
		w, err := ctx.Create("demo", size[0], size[1], window.Windowed, window.DefaultContextParams())
		assert.Nil(t, w)
		assert.ErrorIs(t, err, window.ErrInvalidSize)
	}
	assert.Equal(t, 0, p.Inits)
}

func TestCreateNativeFailure(t *testing.T) {
	p := &windowtest.Platform{OpenErr: errors.New("no display")}
	ctx := window.NewContext(p)

	w, err := ctx.Create("demo", 800, 600, window.Fullscreen, window.DefaultContextParams())
	assert.Nil(t, w)
	assert.ErrorIs(t, err, window.ErrCreateWindow)
	assert.ErrorContains(t, err, "no display")
	assert.Equal(t, 0, ctx.Windows())
	assert.Equal(t, 1, p.Terminates)
}

func TestCreateInitFailure(t *testing.T) {
	p := &windowtest.Platform{InitErr: errors.New("no driver")}
	ctx := window.NewContext(p)

	w, err := ctx.Create("demo", 800, 600, window.Windowed, window.DefaultContextParams())
	assert.Nil(t, w)
	require.Error(t, err)
	assert.ErrorContains(t, err, "no driver")
	assert.Empty(t, p.Opened)
}

func TestTitleSuffix(t *testing.T) {
	w, n, _ := newWindow(t, "demo")

	w.SetTitle("A")
	assert.Equal(t, "A", n.Title)

	w.SetTitleSuffix("B")
	assert.Equal(t, "A B", n.Title)
	assert.Equal(t, "A B", w.FullTitle())
	assert.Equal(t, "B", w.TitleSuffix())

	w.SetTitleSuffix("")
	assert.Equal(t, "A", n.Title)

	w.SetTitle("")
	w.SetTitleSuffix("fps: 60")
	assert.Equal(t, "fps: 60", n.Title)

	assert.Equal(t, []string{"A", "A B", "A", "", "fps: 60"}, n.TitleHistory)
}

func TestCursorDiff(t *testing.T) {
	w, n, _ := newWindow(t, "demo")

	n.QueueCursor(10, 10)
	w.Update()
	n.QueueCursor(13, 14)
	w.Update()

	dx, dy := w.CursorDiff()
	assert.Equal(t, float32(3), dx)
	assert.Equal(t, float32(4), dy)

	// No movement: the previous position is still overwritten.
	w.Update()
	dx, dy = w.CursorDiff()
	assert.Zero(t, dx)
	assert.Zero(t, dy)

	x, y := w.CursorPos()
	assert.Equal(t, float32(13), x)
	assert.Equal(t, float32(14), y)
}

func TestKeyCallbackTranslation(t *testing.T) {
	tests := []struct {
		name   string
		native int
		want   window.Action
	}{
		{"press", windowtest.Press, window.ActionPress},
		{"release", windowtest.Release, window.ActionRelease},
		{"repeat", windowtest.Repeat, window.ActionRepeat},
		{"unknown", 7, window.ActionUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, n, _ := newWindow(t, "demo")

			var (
				calls  int
				got    window.Action
				gotKey window.Key
				gotWin *window.Window
				mods   window.ModifierKey
			)
			w.SetCallbacks(window.Callbacks{
				Key: func(cw *window.Window, key window.Key, scancode int, action window.Action, m window.ModifierKey) {
					calls++
					gotWin, gotKey, got, mods = cw, key, action, m
				},
			})

			n.QueueKey(int(window.KeyA), 38, tt.native, int(window.ModShift))
			assert.Equal(t, 0, calls, "callbacks only fire during Update")
			w.Update()

			require.Equal(t, 1, calls)
			assert.Same(t, w, gotWin)
			assert.Equal(t, window.KeyA, gotKey)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, window.ModShift, mods)
		})
	}
}

func TestActionUnknownSentinel(t *testing.T) {
	assert.Equal(t, window.Action(-1), window.ActionUnknown)
}

func TestCallbackDispatch(t *testing.T) {
	w, n, _ := newWindow(t, "demo")

	var events []string
	w.SetCallbacks(window.Callbacks{
		MouseButton: func(_ *window.Window, b window.MouseButton, a window.Action, _ window.ModifierKey) {
			assert.Equal(t, window.MouseButtonRight, b)
			assert.Equal(t, window.ActionPress, a)
			events = append(events, "button")
		},
		CursorEnter: func(_ *window.Window, entered bool) {
			assert.True(t, entered)
			events = append(events, "enter")
		},
		Scroll: func(_ *window.Window, xoff, yoff float64) {
			assert.Equal(t, 0.5, xoff)
			assert.Equal(t, -1.0, yoff)
			events = append(events, "scroll")
		},
		Char: func(_ *window.Window, r rune) {
			assert.Equal(t, 'é', r)
			events = append(events, "char")
		},
		CharMods: func(_ *window.Window, r rune, mods window.ModifierKey) {
			assert.Equal(t, 'x', r)
			assert.Equal(t, window.ModControl|window.ModAlt, mods)
			events = append(events, "charmods")
		},
		FramebufferSize: func(_ *window.Window, width, height int) {
			assert.Equal(t, 1024, width)
			assert.Equal(t, 768, height)
			events = append(events, "fbsize")
		},
	})

	tr := n.Trampolines
	n.Queue(func() { tr.MouseButton(int(window.MouseButtonRight), windowtest.Press, 0) })
	n.Queue(func() { tr.CursorEnter(true) })
	n.Queue(func() { tr.Scroll(0.5, -1) })
	n.Queue(func() { tr.Char('é') })
	n.Queue(func() { tr.CharMods('x', int(window.ModControl|window.ModAlt)) })
	n.Queue(func() { tr.FramebufferSize(1024, 768) })
	// No handler registered: ignored.
	n.QueueKey(int(window.KeyEscape), 9, windowtest.Press, 0)
	n.QueueCursor(1, 2)

	w.Update()
	assert.Equal(t, []string{"button", "enter", "scroll", "char", "charmods", "fbsize"}, events)
}

func TestSetCallbacksReplacesTable(t *testing.T) {
	w, n, _ := newWindow(t, "demo")

	var first, second int
	w.SetCallbacks(window.Callbacks{
		Char:   func(*window.Window, rune) { first++ },
		Scroll: func(*window.Window, float64, float64) { first++ },
	})
	w.SetCallbacks(window.Callbacks{
		Char: func(*window.Window, rune) { second++ },
	})

	n.Queue(func() { n.Trampolines.Char('a') })
	n.Queue(func() { n.Trampolines.Scroll(1, 1) })
	w.Update()

	assert.Equal(t, 0, first)
	assert.Equal(t, 1, second)
}

func TestKeyState(t *testing.T) {
	w, n, _ := newWindow(t, "demo")

	n.Keys[int(window.KeyW)] = windowtest.Press
	n.Keys[int(window.KeyS)] = windowtest.Repeat
	n.Keys[int(window.KeyD)] = 42

	assert.Equal(t, window.ActionPress, w.KeyState(window.KeyW))
	assert.Equal(t, window.ActionRepeat, w.KeyState(window.KeyS))
	assert.Equal(t, window.ActionRelease, w.KeyState(window.KeyA))
	assert.Equal(t, window.ActionRelease, w.KeyState(window.KeyD))
}

func TestMouseButtonState(t *testing.T) {
	w, n, _ := newWindow(t, "demo")

	n.Buttons[int(window.MouseButtonLeft)] = windowtest.Press
	n.Buttons[int(window.MouseButtonMiddle)] = windowtest.Repeat

	assert.Equal(t, window.ActionPress, w.MouseButtonState(window.MouseButtonLeft))
	assert.Equal(t, window.ActionRelease, w.MouseButtonState(window.MouseButtonRight))
	assert.Equal(t, window.ActionRelease, w.MouseButtonState(window.MouseButtonMiddle))
}

func TestGrabCursor(t *testing.T) {
	w, n, _ := newWindow(t, "demo")

	assert.False(t, w.CursorGrabbed())
	w.GrabCursor(true)
	assert.True(t, n.Disabled)
	assert.True(t, w.CursorGrabbed())
	w.GrabCursor(false)
	assert.False(t, w.CursorGrabbed())
}

func TestVSync(t *testing.T) {
	w, n, _ := newWindow(t, "demo")

	w.SetVSync(true)
	assert.True(t, w.VSyncEnabled())
	assert.Equal(t, 1, n.SwapInterval)

	w.SetVSync(false)
	assert.False(t, w.VSyncEnabled())
	assert.Equal(t, 0, n.SwapInterval)
}

func TestUserData(t *testing.T) {
	w, _, _ := newWindow(t, "demo")

	assert.Nil(t, w.UserData())
	type state struct{ frames int }
	s := &state{}
	w.SetUserData(s)
	assert.Same(t, s, w.UserData())
}

func TestPassThrough(t *testing.T) {
	w, n, _ := newWindow(t, "demo")

	w.SwapBuffers()
	w.SwapBuffers()
	assert.Equal(t, 2, n.Swaps)

	assert.False(t, w.ShouldClose())
	w.SetShouldClose(true)
	assert.True(t, w.ShouldClose())

	width, height := w.FramebufferSize()
	assert.Equal(t, 800, width)
	assert.Equal(t, 600, height)

	assert.Nil(t, w.ProcAddress("glClear"))
}

func TestDestroy(t *testing.T) {
	p := &windowtest.Platform{}
	ctx := window.NewContext(p)

	a, err := ctx.Create("a", 100, 100, window.Windowed, window.DefaultContextParams())
	require.NoError(t, err)
	b, err := ctx.Create("b", 100, 100, window.Borderless, window.DefaultContextParams())
	require.NoError(t, err)

	assert.Equal(t, 1, p.Inits, "library initialized once")
	assert.Equal(t, 2, ctx.Windows())

	a.SetTitleSuffix("suffix")
	a.Destroy()
	assert.True(t, p.Opened[0].Destroyed)
	assert.Empty(t, a.Title())
	assert.Empty(t, a.TitleSuffix())
	assert.Equal(t, 0, p.Terminates)

	b.Destroy()
	assert.Equal(t, 1, p.Terminates)
	assert.Equal(t, 0, ctx.Windows())

	// A new window after teardown initializes the library again.
	c, err := ctx.Create("c", 100, 100, window.Windowed, window.DefaultContextParams())
	require.NoError(t, err)
	assert.Equal(t, 2, p.Inits)
	c.Destroy()
	assert.Equal(t, 2, p.Terminates)
}

func TestStrings(t *testing.T) {
	assert.Equal(t, "press", window.ActionPress.String())
	assert.Equal(t, "unknown", window.ActionUnknown.String())
	assert.True(t, window.ActionRepeat.IsDown())
	assert.False(t, window.ActionRelease.IsDown())
	assert.Equal(t, "borderless", window.Borderless.String())
	assert.Equal(t, "unknown", window.DisplayMode(9).String())
}
