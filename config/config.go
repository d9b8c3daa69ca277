// =======================
// config/config.go
// =======================

package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"plot3d/plot"
)

// MaxGridSteps bounds grid.steps; a frame draws 2*steps*steps segments.
const MaxGridSteps = 1000

// Config is the plot3d configuration file.
type Config struct {
	Camera   plot.CameraState `yaml:"camera"`
	Grid     GridConfig       `yaml:"grid"`
	Terminal TerminalConfig   `yaml:"terminal"`
	Window   WindowConfig     `yaml:"window"`
	Server   ServerConfig     `yaml:"server"`
	Log      LogConfig        `yaml:"log"`
}

// GridConfig tunes the plotted mesh.
type GridConfig struct {
	RangeStart float64 `yaml:"range_start"`
	RangeEnd   float64 `yaml:"range_end"`
	Steps      int     `yaml:"steps"`
}

// TerminalConfig controls the tcell viewer.
type TerminalConfig struct {
	// PanPerKey is the pan delta, in pixels, of one arrow key press.
	PanPerKey float64 `yaml:"pan_per_key"`
	// PanPerCell converts mouse drag cells into pixels.
	PanPerCell float64 `yaml:"pan_per_cell"`
	ZoomStep   float64 `yaml:"zoom_step"`
}

// WindowConfig controls the ebiten viewer.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	TPS    int    `yaml:"tps"`
}

// ServerConfig controls the web viewer.
type ServerConfig struct {
	Port         int `yaml:"port"`
	MaxFrameSize int `yaml:"max_frame_size"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	Dir   string `yaml:"dir"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Camera: plot.DefaultCameraState(),
		Grid: GridConfig{
			RangeStart: plot.DefaultRangeStart,
			RangeEnd:   plot.DefaultRangeEnd,
			Steps:      plot.DefaultSteps,
		},
		Terminal: TerminalConfig{PanPerKey: 15, PanPerCell: 8, ZoomStep: 1.1},
		Window:   WindowConfig{Title: "plot3d", Width: 800, Height: 800, TPS: 60},
		Server:   ServerConfig{Port: 8080, MaxFrameSize: 4096},
		Log:      LogConfig{Level: "info"},
	}
}

// Load reads path on top of Default. Keys missing from the file keep their
// default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML on top of Default and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}
	cfg.Camera = cfg.Camera.Normalized()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Grid.Steps <= 0 || c.Grid.Steps > MaxGridSteps {
		return fmt.Errorf("grid.steps must be in [1, %d], got %d", MaxGridSteps, c.Grid.Steps)
	}
	if !finite(c.Grid.RangeStart) || !finite(c.Grid.RangeEnd) {
		return fmt.Errorf("grid range must be finite, got [%v, %v]", c.Grid.RangeStart, c.Grid.RangeEnd)
	}
	if !(c.Grid.RangeStart < c.Grid.RangeEnd) {
		return fmt.Errorf("grid.range_start (%v) must be below grid.range_end (%v)", c.Grid.RangeStart, c.Grid.RangeEnd)
	}
	if c.Terminal.ZoomStep <= 1 {
		return fmt.Errorf("terminal.zoom_step must be greater than 1, got %v", c.Terminal.ZoomStep)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.TPS <= 0 {
		return fmt.Errorf("window.tps must be positive, got %d", c.Window.TPS)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	if c.Server.MaxFrameSize <= 0 {
		return fmt.Errorf("server.max_frame_size must be positive, got %d", c.Server.MaxFrameSize)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Scene builds the plot scene described by the grid settings.
func (c *Config) Scene() plot.Scene {
	sc := plot.DefaultScene()
	sc.RangeStart = c.Grid.RangeStart
	sc.RangeEnd = c.Grid.RangeEnd
	sc.Steps = c.Grid.Steps
	return sc
}
