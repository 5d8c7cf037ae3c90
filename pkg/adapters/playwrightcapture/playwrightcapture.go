// Package playwrightcapture renders an HTML document to PNG with
// playwright-go's Chromium.
package playwrightcapture

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"github.com/playwright-community/playwright-go"

	"github.com/user/sparkstudio/pkg/adapters/chromebrowser"
	"github.com/user/sparkstudio/pkg/ports"
)

var (
	installOnce sync.Once
	installErr  error

	installChromium = func() error {
		return playwright.Install(&playwright.RunOptions{Browsers: []string{"chromium"}})
	}
)

// Capturer starts a playwright driver and browser per capture.
//
// With InstallBrowser set, the driver and its bundled Chromium are downloaded
// on first use and the system Chrome is ignored.
type Capturer struct {
	opts   ports.BrowserOptions
	logger ports.Logger
}

// New creates a new playwright capturer.
func New(opts ports.BrowserOptions, logger ports.Logger) *Capturer {
	return &Capturer{
		opts:   opts,
		logger: logger.WithComponent("playwright"),
	}
}

// Ensure Capturer implements ports.HTMLCapturer
var _ ports.HTMLCapturer = (*Capturer)(nil)

// install downloads the driver and Chromium once per process. A failure is
// remembered and returned to every later caller.
func (c *Capturer) install() error {
	installOnce.Do(func() {
		c.logger.Info("Installing Playwright Chromium (first run only)")
		installErr = installChromium()
	})
	return installErr
}

func (c *Capturer) launchOptions() (playwright.BrowserTypeLaunchOptions, error) {
	opts := playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(c.opts.Headless),
		Args:     chromebrowser.Args(chromebrowser.LaunchFlags()),
	}
	if c.opts.Timeout > 0 {
		opts.Timeout = playwright.Float(float64(c.opts.Timeout.Milliseconds()))
	}
	if c.opts.InstallBrowser {
		return opts, nil
	}

	execPath, err := chromebrowser.Locate(c.opts.ChromePath)
	if err != nil {
		return opts, err
	}
	opts.ExecutablePath = playwright.String(execPath)
	return opts, nil
}

// CapturePNG implements ports.HTMLCapturer.
func (c *Capturer) CapturePNG(ctx context.Context, html string, width, height int) ([]byte, error) {
	launchOpts, err := c.launchOptions()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ports.ErrBrowserLaunch, err)
	}
	if c.opts.InstallBrowser {
		if err := c.install(); err != nil {
			return nil, fmt.Errorf("%w: install playwright: %w", ports.ErrBrowserLaunch, err)
		}
	}

	tmpFile := filepath.Join(os.TempDir(), "creative-"+uuid.NewString()+".html")
	if err := os.WriteFile(tmpFile, []byte(html), 0644); err != nil {
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	defer os.Remove(tmpFile)

	if c.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.opts.Timeout)
		defer cancel()
	}

	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("%w: start playwright: %w", ports.ErrBrowserLaunch, err)
	}
	defer pw.Stop()

	c.logger.Debug("Launching browser")
	browser, err := pw.Chromium.Launch(launchOpts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ports.ErrBrowserLaunch, err)
	}
	defer func() {
		_ = browser.Close()
		c.logger.Debug("Browser closed")
	}()

	// playwright-go has no context support; closing the browser aborts any
	// pending call.
	stop := context.AfterFunc(ctx, func() { _ = browser.Close() })
	defer stop()

	page, err := browser.NewPage(playwright.BrowserNewPageOptions{
		Viewport:          &playwright.Size{Width: width, Height: height},
		DeviceScaleFactor: playwright.Float(1),
	})
	if err != nil {
		return nil, c.abort(ctx, fmt.Errorf("create page: %w", err))
	}

	if _, err := page.Goto("file://"+filepath.ToSlash(tmpFile), playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateLoad,
	}); err != nil {
		return nil, c.abort(ctx, fmt.Errorf("load document: %w", err))
	}

	idleOpts := playwright.PageWaitForLoadStateOptions{State: playwright.LoadStateNetworkidle}
	if c.opts.IdleTimeout > 0 {
		idleOpts.Timeout = playwright.Float(float64(c.opts.IdleTimeout.Milliseconds()))
	}
	if err := page.WaitForLoadState(idleOpts); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		c.logger.Warn("Network idle not reached after %s, capturing anyway", c.opts.IdleTimeout)
	}

	if _, err := page.Evaluate(`() => document.fonts.ready.then(() => true)`); err != nil {
		return nil, c.abort(ctx, fmt.Errorf("wait for fonts: %w", err))
	}
	page.WaitForTimeout(float64(c.opts.SettleDelay.Milliseconds()))

	buf, err := page.Screenshot(playwright.PageScreenshotOptions{
		Type: playwright.ScreenshotTypePng,
		Clip: &playwright.Rect{
			X:      0,
			Y:      0,
			Width:  float64(width),
			Height: float64(height),
		},
	})
	if err != nil {
		return nil, c.abort(ctx, fmt.Errorf("capture screenshot: %w", err))
	}

	c.logger.Debug("Captured %dx%d screenshot (%d bytes)", width, height, len(buf))
	return buf, nil
}

// abort prefers the context error when cancellation closed the browser.
func (c *Capturer) abort(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	return err
}
