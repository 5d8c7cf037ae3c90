// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/user/sparkstudio/pkg/ports"
	"github.com/user/sparkstudio/pkg/stages/contactsheet"
)

// Config represents the full configuration for a render run. Values come
// from Defaults, then an optional YAML file, then the environment, then
// command-line flags.
type Config struct {
	// Locations
	TemplatesDir string `yaml:"templates_dir"`
	OutputDir    string `yaml:"output_dir"`

	// Browser
	Engine         string `yaml:"engine"`
	ChromePath     string `yaml:"chrome_path"`
	Headless       bool   `yaml:"headless"`
	InstallBrowser bool   `yaml:"install_browser"`
	SettleMs       int    `yaml:"settle_ms"`
	NetworkIdleMs  int    `yaml:"network_idle_ms"`
	TimeoutMs      int    `yaml:"timeout_ms"`

	// Output
	LogLevel      string             `yaml:"log_level"`
	SummaryFormat string             `yaml:"summary_format"`
	ContactSheet  ContactSheetConfig `yaml:"contact_sheet"`

	// Debug
	Debug    bool   `yaml:"debug"`
	DebugDir string `yaml:"debug_dir"`
}

// ContactSheetConfig controls the preview grid.
type ContactSheetConfig struct {
	Enabled   bool        `yaml:"enabled"`
	Columns   int         `yaml:"columns"`
	CellWidth int         `yaml:"cell_width"`
	Theme     ThemeConfig `yaml:"theme"`
}

// ThemeConfig holds hex colors; empty values keep the built-in theme.
type ThemeConfig struct {
	BackgroundColor string `yaml:"background_color"`
	CellColor       string `yaml:"cell_color"`
	BorderColor     string `yaml:"border_color"`
	TextColor       string `yaml:"text_color"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		OutputDir: "output",

		Engine:        string(ports.EngineChromedp),
		Headless:      true,
		SettleMs:      250,
		NetworkIdleMs: 10000,
		TimeoutMs:     60000,

		LogLevel:      "info",
		SummaryFormat: "text",
		ContactSheet: ContactSheetConfig{
			Columns:   4,
			CellWidth: 320,
		},

		DebugDir: "./debug",
	}
}

// LoadFromFile loads configuration from a YAML file on top of Defaults.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// ApplyEnv overrides file values with the environment (CHROME_PATH).
func (c *Config) ApplyEnv() {
	if path := os.Getenv("CHROME_PATH"); path != "" {
		c.ChromePath = path
	}
}

// Validate checks enumerated and numeric fields.
func (c Config) Validate() error {
	if _, err := ports.ParseEngine(c.Engine); err != nil {
		return err
	}
	switch c.SummaryFormat {
	case "", "text", "markdown", "md":
	default:
		return fmt.Errorf("unknown summary format %q (use text or markdown)", c.SummaryFormat)
	}
	if c.SettleMs < 0 || c.NetworkIdleMs < 0 || c.TimeoutMs < 0 {
		return fmt.Errorf("settle_ms, network_idle_ms and timeout_ms must not be negative")
	}
	for name, hex := range map[string]string{
		"background_color": c.ContactSheet.Theme.BackgroundColor,
		"cell_color":       c.ContactSheet.Theme.CellColor,
		"border_color":     c.ContactSheet.Theme.BorderColor,
		"text_color":       c.ContactSheet.Theme.TextColor,
	} {
		if hex == "" {
			continue
		}
		if _, err := ParseColor(hex); err != nil {
			return fmt.Errorf("contact_sheet.theme.%s: %w", name, err)
		}
	}
	return nil
}

// BrowserOptions converts the browser fields to ports.BrowserOptions.
func (c Config) BrowserOptions() ports.BrowserOptions {
	opts := ports.DefaultBrowserOptions()
	opts.Headless = c.Headless
	opts.ChromePath = c.ChromePath
	opts.InstallBrowser = c.InstallBrowser
	opts.SettleDelay = time.Duration(c.SettleMs) * time.Millisecond
	opts.IdleTimeout = time.Duration(c.NetworkIdleMs) * time.Millisecond
	opts.Timeout = time.Duration(c.TimeoutMs) * time.Millisecond
	return opts
}

// Theme returns the contact sheet theme with configured colors applied.
// Call Validate first; unparsable colors are ignored here.
func (c Config) Theme() contactsheet.Theme {
	theme := contactsheet.DefaultTheme()
	set := func(hex string, dst *color.Color) {
		if hex == "" {
			return
		}
		if rgba, err := ParseColor(hex); err == nil {
			*dst = rgba
		}
	}
	set(c.ContactSheet.Theme.BackgroundColor, &theme.Background)
	set(c.ContactSheet.Theme.CellColor, &theme.Cell)
	set(c.ContactSheet.Theme.BorderColor, &theme.Border)
	set(c.ContactSheet.Theme.TextColor, &theme.Text)
	return theme
}

// ParseColor parses "#rrggbb" (the '#' is optional) into an opaque color.
func ParseColor(hex string) (color.RGBA, error) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color %q: want #rrggbb", hex)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}
