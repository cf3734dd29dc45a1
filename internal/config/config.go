// Package config loads the user configuration of the editor.
//
// Values are layered: built-in defaults, then the YAML file in the user config
// directory, then GOGEO_* environment variables. Command line flags are applied by cmd.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	applog "github.com/philipparndt/gogeo/internal/log"
	"github.com/philipparndt/gogeo/pkg/viewer"
	"gopkg.in/yaml.v3"
)

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// CameraConfig is the initial visible world extent
type CameraConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// StyleConfig holds colors as "#rrggbb" or "#rrggbbaa"
type StyleConfig struct {
	PointColor string  `yaml:"point_color"`
	LineColor  string  `yaml:"line_color"`
	Background string  `yaml:"background"`
	PointSize  float64 `yaml:"point_size"`
	LineWidth  float64 `yaml:"line_width"`
	LineMargin float64 `yaml:"line_margin"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Source bool   `yaml:"source"`
	File   string `yaml:"file"`
}

type Config struct {
	ConfigVersion int           `yaml:"config_version"`
	UI            string        `yaml:"ui"` // "raylib" | "fyne"
	Window        WindowConfig  `yaml:"window"`
	Camera        CameraConfig  `yaml:"camera"`
	Style         StyleConfig   `yaml:"style"`
	Logging       LoggingConfig `yaml:"logging"`
}

const (
	UIRaylib = "raylib"
	UIFyne   = "fyne"
)

// Env var names used as overrides.
const (
	EnvWindowWidth  = "GOGEO_WINDOW_WIDTH"
	EnvWindowHeight = "GOGEO_WINDOW_HEIGHT"
	EnvUI           = "GOGEO_UI"
)

// Defaults returns the built-in configuration
func Defaults() Config {
	return Config{
		ConfigVersion: 1,
		UI:            UIRaylib,
		Window:        WindowConfig{Width: 600, Height: 600, Title: "gogeo"},
		Camera:        CameraConfig{Width: 2, Height: 2},
		Style: StyleConfig{
			PointColor: "#ff0000",
			LineColor:  "#00ffff",
			Background: "#000000",
			PointSize:  10,
			LineWidth:  3,
			LineMargin: 2,
		},
		Logging: LoggingConfig{Level: "info", Format: "console"},
	}
}

// Path returns the per-user config file path
func Path() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot resolve config directory: %w", err)
	}
	return filepath.Join(base, "gogeo", "config.yaml"), nil
}

// Load reads the config file at path (the user config file when empty), layers it over
// the defaults and applies environment overrides. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Defaults()
	if path == "" {
		p, err := Path()
		if err != nil {
			return cfg, err
		}
		path = p
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	default:
		var fileCfg Config
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		mergeInto(&cfg, &fileCfg)
	}

	applyEnvOverrides(&cfg)
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg as YAML, creating the directory if needed
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// WriteDefaults writes the built-in configuration to path (the user config file when
// empty) and returns the path written. An existing file is kept unless overwrite is set.
func WriteDefaults(path string, overwrite bool) (string, error) {
	if path == "" {
		p, err := Path()
		if err != nil {
			return "", err
		}
		path = p
	}
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return path, fmt.Errorf("config %s already exists", path)
		}
	}
	if err := Save(path, Defaults()); err != nil {
		return path, fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return path, nil
}

func mergeInto(dst *Config, src *Config) {
	if src.ConfigVersion != 0 {
		dst.ConfigVersion = src.ConfigVersion
	}
	if v := strings.TrimSpace(src.UI); v != "" {
		dst.UI = strings.ToLower(v)
	}

	if src.Window.Width > 0 {
		dst.Window.Width = src.Window.Width
	}
	if src.Window.Height > 0 {
		dst.Window.Height = src.Window.Height
	}
	if src.Window.Title != "" {
		dst.Window.Title = src.Window.Title
	}

	if src.Camera.Width > 0 {
		dst.Camera.Width = src.Camera.Width
	}
	if src.Camera.Height > 0 {
		dst.Camera.Height = src.Camera.Height
	}

	if src.Style.PointColor != "" {
		dst.Style.PointColor = src.Style.PointColor
	}
	if src.Style.LineColor != "" {
		dst.Style.LineColor = src.Style.LineColor
	}
	if src.Style.Background != "" {
		dst.Style.Background = src.Style.Background
	}
	if src.Style.PointSize > 0 {
		dst.Style.PointSize = src.Style.PointSize
	}
	if src.Style.LineWidth > 0 {
		dst.Style.LineWidth = src.Style.LineWidth
	}
	if src.Style.LineMargin > 0 {
		dst.Style.LineMargin = src.Style.LineMargin
	}

	if v := strings.TrimSpace(src.Logging.Level); v != "" {
		dst.Logging.Level = strings.ToLower(v)
	}
	if v := strings.TrimSpace(src.Logging.Format); v != "" {
		dst.Logging.Format = strings.ToLower(v)
	}
	dst.Logging.Source = src.Logging.Source
	if v := strings.TrimSpace(src.Logging.File); v != "" {
		dst.Logging.File = v
	}
}

func applyEnvOverrides(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv(EnvWindowWidth)); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Window.Width = n
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvWindowHeight)); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Window.Height = n
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvUI)); v != "" {
		cfg.UI = strings.ToLower(v)
	}

	if v := strings.TrimSpace(os.Getenv(applog.EnvLevel)); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(applog.EnvFormat)); v != "" {
		cfg.Logging.Format = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(applog.EnvSource)); v != "" {
		lv := strings.ToLower(v)
		cfg.Logging.Source = lv == "1" || lv == "true" || lv == "on" || lv == "yes"
	}
	if v := strings.TrimSpace(os.Getenv(applog.EnvFile)); v != "" {
		cfg.Logging.File = v
	}
}

// Validate checks values the layers cannot repair on their own
func (c Config) Validate() error {
	if c.UI != UIRaylib && c.UI != UIFyne {
		return fmt.Errorf("unknown ui %q (want %s or %s)", c.UI, UIRaylib, UIFyne)
	}
	if _, err := c.ViewerStyle(); err != nil {
		return err
	}
	return nil
}

// ViewerStyle converts the style section into renderer parameters
func (c Config) ViewerStyle() (viewer.Style, error) {
	s := viewer.DefaultStyle()
	var err error
	if s.PointColor, err = ParseColor(c.Style.PointColor); err != nil {
		return s, fmt.Errorf("style.point_color: %w", err)
	}
	if s.LineColor, err = ParseColor(c.Style.LineColor); err != nil {
		return s, fmt.Errorf("style.line_color: %w", err)
	}
	if s.Background, err = ParseColor(c.Style.Background); err != nil {
		return s, fmt.Errorf("style.background: %w", err)
	}
	s.PointSize = c.Style.PointSize
	s.LineWidth = c.Style.LineWidth
	s.LineMargin = c.Style.LineMargin
	return s, nil
}

// LogOptions returns the logger settings of the logging section
func (c Config) LogOptions() applog.Options {
	return applog.Options{
		Level:     c.Logging.Level,
		Format:    c.Logging.Format,
		AddSource: c.Logging.Source,
		File:      c.Logging.File,
	}
}

// Viewport returns the initial window size in pixels
func (c Config) Viewport() viewer.Viewport {
	return viewer.Viewport{Width: c.Window.Width, Height: c.Window.Height}
}

// NewCamera returns a camera showing the configured world extent
func (c Config) NewCamera() *viewer.Camera {
	cam := viewer.NewCamera()
	cam.SetWindow(c.Camera.Width, c.Camera.Height)
	return cam
}

// ParseColor parses "#rgb", "#rrggbb" or "#rrggbbaa"
func ParseColor(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) == 6 {
		h += "ff"
	}
	if len(h) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
