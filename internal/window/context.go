package window

import (
	"errors"
	"fmt"
	"log/slog"
)

var (
	// ErrCreateWindow is returned when the native window could not be built.
	ErrCreateWindow = errors.New("create window failed")
	// ErrInvalidSize is returned for non-positive window dimensions.
	ErrInvalidSize = errors.New("invalid window size")
)

// Context owns the lifetime of the windowing library. The library is
// initialized when the first window is created and terminated when the last
// one is destroyed.
//
// A Context and every Window it creates must only be used from one thread.
type Context struct {
	platform Platform
	logger   *slog.Logger
	windows  int
}

// NewContext returns a Context driving the given platform.
func NewContext(p Platform) *Context {
	return &Context{platform: p, logger: slog.Default()}
}

// SetLogger replaces the logger used for lifecycle events.
func (c *Context) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.Default()
	}
	c.logger = l
}

// Windows returns the number of live windows created by c.
func (c *Context) Windows() int {
	return c.windows
}

// Create opens a window. The window gets a current rendering context
// configured from params and starts with vsync disabled.
func (c *Context) Create(title string, width, height int, mode DisplayMode, params ContextParams) (*Window, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if err := c.acquire(); err != nil {
		return nil, err
	}

	w := &Window{ctx: c, title: title}
	native, err := c.platform.Open(OpenConfig{
		Title:  title,
		Width:  width,
		Height: height,
		Mode:   mode,
		Params: params,
	}, w.trampolines())
	if err != nil || native == nil {
		c.release()
		if err == nil {
			return nil, ErrCreateWindow
		}
		return nil, fmt.Errorf("%w: %w", ErrCreateWindow, err)
	}
	w.native = native
	w.SetVSync(false)

	c.logger.Debug("window created",
		"title", title,
		"width", width,
		"height", height,
		"mode", mode,
	)
	return w, nil
}

func (c *Context) acquire() error {
	if c.windows == 0 {
		if err := c.platform.Init(); err != nil {
			return fmt.Errorf("init windowing library: %w", err)
		}
		c.logger.Debug("windowing library initialized")
	}
	c.windows++
	return nil
}

func (c *Context) release() {
	if c.windows == 0 {
		return
	}
	c.windows--
	if c.windows == 0 {
		c.platform.Terminate()
		c.logger.Debug("windowing library terminated")
	}
}
