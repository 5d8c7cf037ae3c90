// Package studio provides a high-level API for rendering ad creatives.
package studio

import (
	"github.com/user/sparkstudio/pkg/config"
)

// ConfigBuilder provides a fluent interface for building a config.Config.
type ConfigBuilder struct {
	config config.Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{config: config.Defaults()}
}

// FromConfig starts a builder from an existing configuration, typically one
// loaded from a YAML file.
func FromConfig(cfg config.Config) *ConfigBuilder {
	return &ConfigBuilder{config: cfg}
}

// Build returns the final Config, applying constraints.
func (b *ConfigBuilder) Build() config.Config {
	cfg := b.config

	if cfg.SettleMs < 0 {
		cfg.SettleMs = 0
	}
	if cfg.NetworkIdleMs < 0 {
		cfg.NetworkIdleMs = 0
	}
	if cfg.TimeoutMs <= 0 {
		cfg.TimeoutMs = config.Defaults().TimeoutMs
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = config.Defaults().OutputDir
	}
	if cfg.Debug && cfg.DebugDir == "" {
		cfg.DebugDir = config.Defaults().DebugDir
	}
	if cfg.ContactSheet.Columns < 1 {
		cfg.ContactSheet.Columns = 1
	}

	return cfg
}

// WithTemplatesDir renders from a template directory on disk instead of the
// built-in set.
func (b *ConfigBuilder) WithTemplatesDir(dir string) *ConfigBuilder {
	b.config.TemplatesDir = dir
	return b
}

// WithOutputDir sets the base directory for renders without an explicit path.
func (b *ConfigBuilder) WithOutputDir(dir string) *ConfigBuilder {
	b.config.OutputDir = dir
	return b
}

// WithEngine selects the headless browser backend.
func (b *ConfigBuilder) WithEngine(engine string) *ConfigBuilder {
	b.config.Engine = engine
	return b
}

// WithChromePath sets the browser executable.
func (b *ConfigBuilder) WithChromePath(path string) *ConfigBuilder {
	b.config.ChromePath = path
	return b
}

// WithHeadless toggles headless mode.
func (b *ConfigBuilder) WithHeadless(headless bool) *ConfigBuilder {
	b.config.Headless = headless
	return b
}

// WithInstallBrowser lets the playwright engine download its own Chromium.
func (b *ConfigBuilder) WithInstallBrowser(install bool) *ConfigBuilder {
	b.config.InstallBrowser = install
	return b
}

// WithSettleMs sets the delay between fonts ready and the screenshot.
// Negative values will be forced to 0.
func (b *ConfigBuilder) WithSettleMs(ms int) *ConfigBuilder {
	b.config.SettleMs = ms
	return b
}

// WithNetworkIdleMs bounds the wait for network idle.
func (b *ConfigBuilder) WithNetworkIdleMs(ms int) *ConfigBuilder {
	b.config.NetworkIdleMs = ms
	return b
}

// WithTimeoutMs bounds one whole capture, browser launch included.
func (b *ConfigBuilder) WithTimeoutMs(ms int) *ConfigBuilder {
	b.config.TimeoutMs = ms
	return b
}

// WithLogLevel sets the log level name.
func (b *ConfigBuilder) WithLogLevel(level string) *ConfigBuilder {
	b.config.LogLevel = level
	return b
}

// WithDebug saves the resolved HTML and vars of every render under dir.
func (b *ConfigBuilder) WithDebug(enabled bool, dir string) *ConfigBuilder {
	b.config.Debug = enabled
	if dir != "" {
		b.config.DebugDir = dir
	}
	return b
}

// WithSummaryFormat selects the summary formatter (text or markdown).
func (b *ConfigBuilder) WithSummaryFormat(format string) *ConfigBuilder {
	b.config.SummaryFormat = format
	return b
}

// WithContactSheet enables the contact sheet for brief batches.
func (b *ConfigBuilder) WithContactSheet(enabled bool) *ConfigBuilder {
	b.config.ContactSheet.Enabled = enabled
	return b
}

// WithContactSheetColumns sets the number of thumbnails per row.
// Values below 1 will be forced to 1.
func (b *ConfigBuilder) WithContactSheetColumns(columns int) *ConfigBuilder {
	b.config.ContactSheet.Columns = columns
	return b
}
