// Package config holds startup settings for the viewer and snapshot
// commands. Settings come from defaults, then an optional TOML file, then
// command line flags.
package config

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/willbeason/mandelbrot-viewer/pkg/escape"
	"github.com/willbeason/mandelbrot-viewer/pkg/geometry"
	"github.com/willbeason/mandelbrot-viewer/pkg/view"
)

type Config struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`

	Scale         float64 `toml:"scale"`
	OffsetX       float64 `toml:"offset_x"`
	OffsetY       float64 `toml:"offset_y"`
	MaxIterations int     `toml:"max_iterations"`
	ZoomRate      float64 `toml:"zoom_rate"`

	// Fractal is "mandelbrot" or "julia".
	Fractal string  `toml:"fractal"`
	JuliaRe float64 `toml:"julia_re"`
	JuliaIm float64 `toml:"julia_im"`
	Power   int     `toml:"power"`

	// Workers is the number of concurrent row renderers; 0 means one per CPU.
	Workers int `toml:"workers"`

	HUD bool `toml:"hud"`

	// OutDir is where snapshots are written.
	OutDir string `toml:"out_dir"`

	LogLevel string `toml:"log_level"`
}

func Default() Config {
	s := view.Default()
	return Config{
		Title:         "Mandelbrot Set",
		Width:         view.DefaultWidth,
		Height:        view.DefaultHeight,
		Scale:         s.Scale,
		OffsetX:       s.Offset.X,
		OffsetY:       s.Offset.Y,
		MaxIterations: s.MaxIterations,
		ZoomRate:      s.ZoomRate,
		Fractal:       escape.Mandelbrot.String(),
		JuliaRe:       -0.8,
		JuliaIm:       0.156,
		Power:         2,
		OutDir:        "out",
		LogLevel:      "info",
	}
}

// Load decodes the TOML file at path over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.Wrapf(err, "parsing %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.Errorf("parsing %s: unknown key %q", path, undecoded[0].String())
	}
	return cfg, nil
}

// Validate reports settings the viewer cannot run with. A non-positive
// MaxIterations is allowed: it is clamped to 1 at run time.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("viewport must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.Scale < view.MinScale || c.Scale > view.MaxScale {
		return errors.Errorf("scale must be within [%g, %g], got %g",
			view.MinScale, view.MaxScale, c.Scale)
	}
	if c.ZoomRate < view.MinZoomRate || c.ZoomRate > view.MaxZoomRate {
		return errors.Errorf("zoom rate must be within [%g, %g], got %g",
			view.MinZoomRate, view.MaxZoomRate, c.ZoomRate)
	}
	if c.Power < 2 {
		return errors.Errorf("power must be at least 2, got %d", c.Power)
	}
	if c.Workers < 0 {
		return errors.Errorf("workers must not be negative, got %d", c.Workers)
	}
	if _, err := c.Kind(); err != nil {
		return err
	}
	return nil
}

func (c Config) Kind() (escape.Kind, error) {
	switch c.Fractal {
	case escape.Mandelbrot.String():
		return escape.Mandelbrot, nil
	case escape.Julia.String():
		return escape.Julia, nil
	}
	return 0, errors.Errorf("unknown fractal %q", c.Fractal)
}

func (c Config) Viewport() view.Viewport {
	return view.Viewport{Width: c.Width, Height: c.Height}
}

// State returns the initial view, with MaxIterations clamped.
func (c Config) State() view.State {
	s := view.State{
		Scale:         c.Scale,
		Offset:        geometry.XY{X: c.OffsetX, Y: c.OffsetY},
		MaxIterations: c.MaxIterations,
		ZoomRate:      c.ZoomRate,
	}
	s.Clamp()
	return s
}

// Evaluator returns the configured escape-time evaluator.
func (c Config) Evaluator() (escape.Evaluator, error) {
	kind, err := c.Kind()
	if err != nil {
		return escape.Evaluator{}, err
	}
	return escape.Evaluator{
		Kind:  kind,
		K:     complex(c.JuliaRe, c.JuliaIm),
		Power: c.Power,
	}, nil
}

// Bind registers a flag for every setting, writing into c.
func Bind(fs *pflag.FlagSet, c *Config) {
	fs.StringVar(&c.Title, "title", c.Title, "window title")
	fs.IntVar(&c.Width, "width", c.Width, "viewport width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "viewport height in pixels")
	fs.Float64Var(&c.Scale, "scale", c.Scale, "pixels per world unit")
	fs.Float64Var(&c.OffsetX, "offset-x", c.OffsetX, "world offset added before scaling, real axis")
	fs.Float64Var(&c.OffsetY, "offset-y", c.OffsetY, "world offset added before scaling, imaginary axis")
	fs.IntVarP(&c.MaxIterations, "iterations", "i", c.MaxIterations, "maximum iterations per point")
	fs.Float64Var(&c.ZoomRate, "zoom-rate", c.ZoomRate, "fractional scale change per zoom step")
	fs.StringVar(&c.Fractal, "fractal", c.Fractal, "fractal family: mandelbrot or julia")
	fs.Float64Var(&c.JuliaRe, "julia-re", c.JuliaRe, "real part of the Julia constant")
	fs.Float64Var(&c.JuliaIm, "julia-im", c.JuliaIm, "imaginary part of the Julia constant")
	fs.IntVar(&c.Power, "power", c.Power, "exponent of the iterated polynomial")
	fs.IntVarP(&c.Workers, "workers", "w", c.Workers, "concurrent row renderers, 0 for one per CPU")
	fs.BoolVar(&c.HUD, "hud", c.HUD, "show the status overlay")
	fs.StringVar(&c.OutDir, "out-dir", c.OutDir, "directory for snapshots")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn or error")
}

// Overlay copies every flag explicitly set on parsed into dst, so values
// given on the command line win over a loaded file.
func Overlay(parsed *pflag.FlagSet, dst *Config) error {
	target := pflag.NewFlagSet("overlay", pflag.ContinueOnError)
	Bind(target, dst)

	var err error
	parsed.Visit(func(f *pflag.Flag) {
		if err != nil || target.Lookup(f.Name) == nil {
			return
		}
		if setErr := target.Set(f.Name, f.Value.String()); setErr != nil {
			err = errors.Wrapf(setErr, "flag --%s", f.Name)
		}
	})
	return err
}

// Resolve returns the effective configuration: flags as parsed into fs
// when path is empty, otherwise the file at path with explicitly set flags
// applied over it. The result is validated.
func Resolve(fs *pflag.FlagSet, flags Config, path string) (Config, error) {
	cfg := flags
	if path != "" {
		loaded, err := Load(path)
		if err != nil {
			return Config{}, err
		}
		if err := Overlay(fs, &loaded); err != nil {
			return Config{}, err
		}
		cfg = loaded
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}
