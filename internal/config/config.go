// Package config loads command-line settings for the orrery and shipview
// tools. Values come from defaults, an optional config file, ORRERY_*
// environment variables and flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/taigrr/orrery/pkg/math3d"
)

// Presenters.
const (
	PresenterWindow   = "window"
	PresenterTerminal = "terminal"
)

// ErrNoModel is returned by LoadBatch when no model path is given.
var ErrNoModel = errors.New("no model file given")

// Viewer holds settings for the live flythrough.
type Viewer struct {
	Width     int     `mapstructure:"width"`
	Height    int     `mapstructure:"height"`
	FPS       int     `mapstructure:"fps"`
	FOV       float64 `mapstructure:"fov"` // Vertical, degrees
	Stars     int     `mapstructure:"stars"`
	Seed      uint32  `mapstructure:"seed"`
	Orbits    bool    `mapstructure:"orbits"`
	HUD       bool    `mapstructure:"hud"`
	Presenter string  `mapstructure:"presenter"`
	LogLevel  string  `mapstructure:"logLevel"`
}

// Batch holds settings for rendering a model file to a still image.
type Batch struct {
	Model    string  `mapstructure:"-"`
	Width    int     `mapstructure:"width"`
	Height   int     `mapstructure:"height"`
	Output   string  `mapstructure:"output"`
	PNG      bool    `mapstructure:"png"`
	Fill     float64 `mapstructure:"fill"`
	Color    string  `mapstructure:"color"`
	Material bool    `mapstructure:"material"`
	LogLevel string  `mapstructure:"logLevel"`
}

// SetViewerDefaults registers the flythrough defaults on v.
func SetViewerDefaults(v *viper.Viper) {
	v.SetDefault("width", 1280)
	v.SetDefault("height", 720)
	v.SetDefault("fps", 60)
	v.SetDefault("fov", 60.0)
	v.SetDefault("stars", 400)
	v.SetDefault("seed", 42)
	v.SetDefault("orbits", true)
	v.SetDefault("hud", true)
	v.SetDefault("presenter", PresenterWindow)
	v.SetDefault("logLevel", "info")
}

// SetBatchDefaults registers the still-image defaults on v.
func SetBatchDefaults(v *viper.Viper) {
	v.SetDefault("width", 800)
	v.SetDefault("height", 600)
	v.SetDefault("output", "spaceship_render.ppm")
	v.SetDefault("png", false)
	v.SetDefault("fill", 0.6)
	v.SetDefault("color", "255,255,0")
	v.SetDefault("material", false)
	v.SetDefault("logLevel", "info")
}

func viewerFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("orrery", pflag.ContinueOnError)
	fs.String("config", "", "Path to a config file (json, yaml or toml)")
	fs.Int("width", 1280, "Framebuffer width in pixels")
	fs.Int("height", 720, "Framebuffer height in pixels")
	fs.Int("fps", 60, "Target frames per second")
	fs.Float64("fov", 60, "Vertical field of view in degrees")
	fs.Int("stars", 400, "Number of background stars")
	fs.Uint32("seed", 42, "Starfield seed")
	fs.Bool("orbits", true, "Draw orbit rings")
	fs.Bool("hud", true, "Show the heads-up display")
	fs.String("presenter", PresenterWindow, "Where to show frames: window or terminal")
	fs.String("log-level", "info", "Log level: trace, debug, info, warn, error")
	return fs
}

func batchFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("shipview", pflag.ContinueOnError)
	fs.String("config", "", "Path to a config file (json, yaml or toml)")
	fs.Int("width", 800, "Image width in pixels")
	fs.Int("height", 600, "Image height in pixels")
	fs.StringP("output", "o", "spaceship_render.ppm", "Output image path")
	fs.Bool("png", false, "Write PNG instead of PPM")
	fs.Float64("fill", 0.6, "Fraction of the smaller image side the model spans")
	fs.String("color", "255,255,0", "Edge color as R,G,B")
	fs.Bool("material", false, "Use the model's first material color when it has one")
	fs.String("log-level", "info", "Log level: trace, debug, info, warn, error")
	return fs
}

// LoadViewer parses args into a Viewer. pflag.ErrHelp is returned unwrapped
// when -h is given.
func LoadViewer(args []string) (Viewer, error) {
	var cfg Viewer

	v := viper.New()
	SetViewerDefaults(v)
	fs := viewerFlags()
	if err := load(v, fs, args); err != nil {
		return cfg, err
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decode config: %w", err)
	}
	cfg.Presenter = strings.ToLower(cfg.Presenter)
	return cfg, cfg.Validate()
}

// LoadBatch parses args into a Batch. The first positional argument is the
// model path.
func LoadBatch(args []string) (Batch, error) {
	var cfg Batch

	v := viper.New()
	SetBatchDefaults(v)
	fs := batchFlags()
	if err := load(v, fs, args); err != nil {
		return cfg, err
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decode config: %w", err)
	}
	if fs.NArg() < 1 {
		return cfg, ErrNoModel
	}
	cfg.Model = fs.Arg(0)

	// Follow the format switch unless the output was named explicitly.
	if cfg.PNG && !fs.Changed("output") && !v.InConfig("output") {
		cfg.Output = strings.TrimSuffix(cfg.Output, ".ppm") + ".png"
	}
	return cfg, cfg.Validate()
}

func load(v *viper.Viper, fs *pflag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := v.BindPFlags(fs); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}
	if err := v.BindPFlag("logLevel", fs.Lookup("log-level")); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}

	v.SetEnvPrefix("orrery")
	v.AutomaticEnv()

	if path, _ := fs.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}
	return nil
}

// Validate checks ranges that would otherwise produce an empty or broken
// frame.
func (c Viewer) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid size %dx%d", c.Width, c.Height)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("invalid fps %d", c.FPS)
	}
	if c.FOV <= 0 || c.FOV >= 180 {
		return fmt.Errorf("fov %.1f out of range (0, 180)", c.FOV)
	}
	if c.Stars < 0 {
		return fmt.Errorf("invalid star count %d", c.Stars)
	}
	switch c.Presenter {
	case PresenterWindow, PresenterTerminal:
	default:
		return fmt.Errorf("unknown presenter %q (use %s or %s)", c.Presenter, PresenterWindow, PresenterTerminal)
	}
	return nil
}

// Validate checks the image size, fill fraction and color.
func (c Batch) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid size %dx%d", c.Width, c.Height)
	}
	if c.Fill <= 0 || c.Fill > 1 {
		return fmt.Errorf("fill %.2f out of range (0, 1]", c.Fill)
	}
	if _, err := ParseColor(c.Color); err != nil {
		return err
	}
	if c.Output == "" {
		return errors.New("empty output path")
	}
	return nil
}

// ParseColor reads an "R,G,B" triple of 0-255 integers.
func ParseColor(s string) (math3d.Color, error) {
	var r, g, b int
	if n, err := fmt.Sscanf(strings.ReplaceAll(s, " ", ""), "%d,%d,%d", &r, &g, &b); err != nil || n != 3 {
		return math3d.Color{}, fmt.Errorf("invalid color %q: want R,G,B", s)
	}
	for _, c := range []int{r, g, b} {
		if c < 0 || c > 255 {
			return math3d.Color{}, fmt.Errorf("invalid color %q: channel %d out of range", s, c)
		}
	}
	return math3d.RGB(uint8(r), uint8(g), uint8(b)), nil
}
