// Package ports defines interfaces for external dependencies.
package ports

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrBrowserNotFound is returned when no Chrome/Chromium executable can be located.
	ErrBrowserNotFound = errors.New("chrome not found: install Chrome/Chromium, set CHROME_PATH, or pass --chrome-path")

	// ErrBrowserLaunch is returned when the browser process fails to start.
	ErrBrowserLaunch = errors.New("failed to launch browser")
)

// Engine names a headless browser backend.
type Engine string

const (
	EngineChromedp   Engine = "chromedp"
	EngineRod        Engine = "rod"
	EnginePlaywright Engine = "playwright"
)

// Engines returns all supported engines in preference order.
func Engines() []Engine {
	return []Engine{EngineChromedp, EngineRod, EnginePlaywright}
}

// ParseEngine parses an engine name. An empty name selects chromedp.
func ParseEngine(s string) (Engine, error) {
	if s == "" {
		return EngineChromedp, nil
	}
	for _, e := range Engines() {
		if string(e) == s {
			return e, nil
		}
	}
	return "", fmt.Errorf("unknown engine %q (use chromedp, rod or playwright)", s)
}

// BrowserOptions configures browser launch and page capture.
type BrowserOptions struct {
	Headless    bool
	ChromePath  string        // Explicit executable; falls back to CHROME_PATH, then system defaults
	SettleDelay time.Duration // Fixed delay after fonts are ready, before the screenshot
	IdleTimeout time.Duration // Upper bound for waiting on network idle
	Timeout     time.Duration // Upper bound for one whole capture, launch included

	// InstallBrowser lets engines that can manage their own browser download it when missing.
	InstallBrowser bool
}

// DefaultBrowserOptions returns the options used by the CLI when nothing is overridden.
func DefaultBrowserOptions() BrowserOptions {
	return BrowserOptions{
		Headless:    true,
		SettleDelay: 250 * time.Millisecond,
		IdleTimeout: 10 * time.Second,
		Timeout:     60 * time.Second,
	}
}
