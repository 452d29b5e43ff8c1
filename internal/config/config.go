// Package config loads the settings of the demo program from a TOML file
// and command-line flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/tinyrange/gfxwnd/internal/window"
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	Title      string  `toml:"title"`
	Width      int     `toml:"width"`
	Height     int     `toml:"height"`
	Mode       string  `toml:"mode"`
	VSync      bool    `toml:"vsync"`
	FrameLimit int     `toml:"frame_limit"`
	LogLevel   string  `toml:"log_level"`
	Context    Context `toml:"context"`
}

// Context mirrors window.ContextParams.
type Context struct {
	Major     int  `toml:"major"`
	Minor     int  `toml:"minor"`
	Samples   int  `toml:"samples"`
	Debug     bool `toml:"debug"`
	Resizable bool `toml:"resizable"`
	Floating  bool `toml:"floating"`
}

func Default() Config {
	p := window.DefaultContextParams()
	return Config{
		Title:      "gfxwnd",
		Width:      800,
		Height:     600,
		Mode:       window.Windowed.String(),
		FrameLimit: 120,
		LogLevel:   "info",
		Context: Context{
			Major:     p.VersionMajor,
			Minor:     p.VersionMinor,
			Samples:   p.Samples,
			Debug:     p.Debug,
			Resizable: p.Resizable,
			Floating:  p.Floating,
		},
	}
}

// Decode reads TOML from r on top of the defaults. Unknown keys are
// rejected.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: unknown keys %s", ErrInvalid, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// LoadFile decodes the config file at path.
func LoadFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// RegisterFlags binds flags that override the fields of c.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.Title, "title", c.Title, "window title")
	fs.IntVar(&c.Width, "width", c.Width, "window width")
	fs.IntVar(&c.Height, "height", c.Height, "window height")
	fs.StringVar(&c.Mode, "mode", c.Mode, "display mode: windowed, borderless or fullscreen")
	fs.BoolVar(&c.VSync, "vsync", c.VSync, "wait for vertical blank on swap")
	fs.IntVar(&c.FrameLimit, "fps", c.FrameLimit, "frame rate cap, 0 for none")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn or error")
}

func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalid, c.Width, c.Height)
	}
	if c.FrameLimit < 0 {
		return fmt.Errorf("%w: negative frame limit %d", ErrInvalid, c.FrameLimit)
	}
	if _, err := c.DisplayMode(); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// DisplayMode parses Mode. Besides the mode names, the numeric forms 0, 1
// and 2 are accepted.
func (c Config) DisplayMode() (window.DisplayMode, error) {
	switch strings.ToLower(strings.TrimSpace(c.Mode)) {
	case "", "0", "windowed":
		return window.Windowed, nil
	case "1", "borderless":
		return window.Borderless, nil
	case "2", "fullscreen":
		return window.Fullscreen, nil
	}
	return 0, fmt.Errorf("%w: unknown mode %q", ErrInvalid, c.Mode)
}

func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return level, nil
}

func (c Config) ContextParams() window.ContextParams {
	p := window.DefaultContextParams()
	p.VersionMajor = c.Context.Major
	p.VersionMinor = c.Context.Minor
	p.Samples = c.Context.Samples
	p.Debug = c.Context.Debug
	p.Resizable = c.Context.Resizable
	p.Floating = c.Context.Floating
	return p
}
