package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/tinyrange/gfxwnd/internal/config"
	"github.com/tinyrange/gfxwnd/internal/gl"
	"github.com/tinyrange/gfxwnd/internal/graphics"
	"github.com/tinyrange/gfxwnd/internal/platform"
	"github.com/tinyrange/gfxwnd/internal/window"
)

func main() {
	cfg, err := loadConfig(os.Args[0], os.Args[1:])
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	level, _ := cfg.Level()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	// Native library errors surface as panics and are not recoverable.
	defer func() {
		if r := recover(); r != nil {
			slog.Error("fatal windowing error", "err", r)
			os.Exit(1)
		}
	}()

	if err := run(cfg); err != nil {
		log.Fatalf("run: %v", err)
	}
}

// loadConfig parses flags, then, when -config names a file, loads it and
// applies the flags again on top of it.
func loadConfig(name string, args []string) (config.Config, error) {
	cfg := config.Default()
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	path := fs.String("config", "", "TOML config file")
	cfg.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return config.Config{}, err
	}

	if *path != "" {
		fileCfg, err := config.LoadFile(*path)
		if err != nil {
			return config.Config{}, err
		}
		fs = flag.NewFlagSet(name, flag.ExitOnError)
		fs.String("config", "", "TOML config file")
		fileCfg.RegisterFlags(fs)
		if err := fs.Parse(args); err != nil {
			return config.Config{}, err
		}
		cfg = fileCfg
	}

	return cfg, cfg.Validate()
}

func run(cfg config.Config) error {
	mode, err := cfg.DisplayMode()
	if err != nil {
		return err
	}

	ctx := window.NewContext(platform.New())
	wnd, err := ctx.Create(cfg.Title, cfg.Width, cfg.Height, mode, cfg.ContextParams())
	if err != nil {
		return err
	}
	defer wnd.Destroy()

	wnd.SetVSync(cfg.VSync)
	wnd.SetCallbacks(window.Callbacks{
		Key:             onKey,
		MouseButton:     onMouseButton,
		Scroll:          onScroll,
		CursorEnter:     onCursorEnter,
		FramebufferSize: onFramebufferSize,
	})

	glc, err := gl.Load(wnd.ProcAddress)
	if err != nil {
		return fmt.Errorf("load OpenGL: %w", err)
	}
	slog.Info("OpenGL",
		"vendor", glc.GetString(gl.Vendor),
		"renderer", glc.GetString(gl.Renderer),
		"version", glc.GetString(gl.Version),
	)

	gfx := graphics.New(wnd, glc)
	gfx.SetClearColor(graphics.Color{0.1, 0.12, 0.16, 1.0})
	gfx.SetFrameLimit(cfg.FrameLimit)

	var fps graphics.FrameCounter
	return gfx.Loop(func(f graphics.Frame) error {
		if fps.Tick(time.Now()) {
			f.Window().SetTitleSuffix(fps.String())
		}

		if f.Window().CursorGrabbed() {
			if dx, dy := f.CursorDelta(); dx != 0 || dy != 0 {
				slog.Debug("look", "dx", dx, "dy", dy)
			}
		}

		if code := glc.GetError(); code != gl.NoError {
			return fmt.Errorf("OpenGL error %#x", code)
		}
		return nil
	})
}

func onKey(w *window.Window, key window.Key, scancode int, action window.Action, mods window.ModifierKey) {
	slog.Debug("key", "key", key, "scancode", scancode, "action", action, "mods", mods)
	if action != window.ActionPress {
		return
	}

	switch key {
	case window.KeyEscape:
		w.SetShouldClose(true)
	case window.KeyG:
		w.GrabCursor(!w.CursorGrabbed())
		slog.Info("cursor grab", "enabled", w.CursorGrabbed())
	case window.KeyV:
		w.SetVSync(!w.VSyncEnabled())
		slog.Info("vsync", "enabled", w.VSyncEnabled())
	}
}

func onMouseButton(_ *window.Window, button window.MouseButton, action window.Action, mods window.ModifierKey) {
	slog.Debug("mouse button", "button", button, "action", action, "mods", mods)
}

func onScroll(_ *window.Window, xoff, yoff float64) {
	slog.Debug("scroll", "x", xoff, "y", yoff)
}

func onCursorEnter(_ *window.Window, entered bool) {
	slog.Debug("cursor enter", "entered", entered)
}

func onFramebufferSize(_ *window.Window, width, height int) {
	slog.Debug("framebuffer resized", "width", width, "height", height)
}
