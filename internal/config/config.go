package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFile is read when no config file is named on the command line.
const DefaultFile = "config.yaml"

// Config holds all application configuration values
type Config struct {
	Display DisplayConfig `yaml:"display"`
	UI      UIConfig      `yaml:"ui"`
	Input   InputConfig   `yaml:"input"`
	Console ConsoleConfig `yaml:"console"`
	Logging LoggingConfig `yaml:"logging"`
}

type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screen_width"`
	ScreenHeight int    `yaml:"screen_height"`
	WindowTitle  string `yaml:"window_title"`
	Resizable    bool   `yaml:"resizable"`
	TPS          int    `yaml:"tps"` // update ticks per second
}

type UIConfig struct {
	Margin     int          `yaml:"margin"`
	LineHeight int          `yaml:"line_height"`
	LabelWidth int          `yaml:"label_width"` // pixels reserved for row labels
	ShowStats  bool         `yaml:"show_stats"`
	Colors     ColorsConfig `yaml:"colors"`
}

type ColorsConfig struct {
	Background [3]int `yaml:"background"`
	Heading    [3]int `yaml:"heading"`
	Label      [3]int `yaml:"label"`
	Value      [3]int `yaml:"value"`
	Muted      [3]int `yaml:"muted"`
}

type InputConfig struct {
	Backend string `yaml:"backend"` // "ebiten" or "evdev"
	Device  string `yaml:"device"`  // evdev device path, empty for auto-detect
}

type ConsoleConfig struct {
	RefreshMs int  `yaml:"refresh_ms"`
	NoColor   bool `yaml:"no_color"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			ScreenWidth:  640,
			ScreenHeight: 260,
			WindowTitle:  "KeyWatch",
			Resizable:    true,
			TPS:          60,
		},
		UI: UIConfig{
			Margin:     16,
			LineHeight: 20,
			LabelWidth: 168,
			ShowStats:  false,
			Colors: ColorsConfig{
				Background: [3]int{27, 27, 27},
				Heading:    [3]int{240, 240, 240},
				Label:      [3]int{170, 170, 170},
				Value:      [3]int{140, 210, 255},
				Muted:      [3]int{110, 110, 110},
			},
		},
		Input: InputConfig{
			Backend: "ebiten",
		},
		Console: ConsoleConfig{
			RefreshMs: 50,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadConfig loads the configuration from filename on top of the defaults
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filename, err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", filename, err)
	}
	return config, nil
}

// LoadOrDefault loads filename, falling back to the defaults when the file does
// not exist. Any other error is returned.
func LoadOrDefault(filename string) (*Config, bool, error) {
	config, err := LoadConfig(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return config, true, nil
}

// Validate checks the values the application cannot run without.
func (c *Config) Validate() error {
	if c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0 {
		return fmt.Errorf("screen size %dx%d must be positive", c.Display.ScreenWidth, c.Display.ScreenHeight)
	}
	if c.Display.TPS <= 0 {
		return fmt.Errorf("tps %d must be positive", c.Display.TPS)
	}
	if c.Console.RefreshMs <= 0 {
		return fmt.Errorf("console refresh_ms %d must be positive", c.Console.RefreshMs)
	}
	switch c.Input.Backend {
	case "ebiten", "evdev":
	default:
		return fmt.Errorf("unknown input backend %q", c.Input.Backend)
	}
	return nil
}

// Helper functions for easy access to commonly used values
func (c *Config) GetScreenWidth() int {
	return c.Display.ScreenWidth
}

func (c *Config) GetScreenHeight() int {
	return c.Display.ScreenHeight
}

func (c *Config) GetLineHeight() int {
	if c.UI.LineHeight <= 0 {
		return 20
	}
	return c.UI.LineHeight
}
