// Package capturehtml renders an HTML document to PNG in headless Chrome
// through chromedp.
package capturehtml

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/cdproto/page"
	cdpruntime "github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"
	"github.com/google/uuid"

	"github.com/user/sparkstudio/pkg/adapters/chromebrowser"
	"github.com/user/sparkstudio/pkg/ports"
)

// Capturer launches a fresh browser for every capture and always closes it
// before returning.
type Capturer struct {
	opts   ports.BrowserOptions
	logger ports.Logger
}

// New creates a new chromedp capturer.
func New(opts ports.BrowserOptions, logger ports.Logger) *Capturer {
	return &Capturer{
		opts:   opts,
		logger: logger.WithComponent("chromedp"),
	}
}

// Ensure Capturer implements ports.HTMLCapturer
var _ ports.HTMLCapturer = (*Capturer)(nil)

// CapturePNG loads html into a width x height viewport at scale 1, waits for
// network idle and web fonts, lets layout settle, and returns a PNG clipped to
// the viewport.
func (c *Capturer) CapturePNG(ctx context.Context, html string, width, height int) ([]byte, error) {
	execPath, err := chromebrowser.Locate(c.opts.ChromePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ports.ErrBrowserLaunch, err)
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

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, chromebrowser.AllocatorOptions(execPath, c.opts.Headless)...)
	defer allocCancel()

	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	defer func() {
		browserCancel()
		c.logger.Debug("Browser closed")
	}()

	c.logger.Debug("Launching browser (%s)", execPath)
	if err := chromedp.Run(browserCtx); err != nil {
		return nil, fmt.Errorf("%w: %w", ports.ErrBrowserLaunch, err)
	}

	watcher := newIdleWatcher()
	chromedp.ListenTarget(browserCtx, watcher.handle)

	if err := chromedp.Run(browserCtx,
		emulation.SetDeviceMetricsOverride(int64(width), int64(height), 1, false),
		page.SetLifecycleEventsEnabled(true),
		chromedp.Navigate("file://"+filepath.ToSlash(tmpFile)),
	); err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}

	if !watcher.wait(browserCtx, c.opts.IdleTimeout) {
		if err := browserCtx.Err(); err != nil {
			return nil, err
		}
		c.logger.Warn("Network idle not reached after %s, capturing anyway", c.opts.IdleTimeout)
	}

	var fontsReady bool
	var buf []byte
	if err := chromedp.Run(browserCtx,
		chromedp.Evaluate(`document.fonts.ready.then(() => true)`, &fontsReady, func(p *cdpruntime.EvaluateParams) *cdpruntime.EvaluateParams {
			return p.WithAwaitPromise(true)
		}),
		chromedp.Sleep(c.opts.SettleDelay),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			buf, err = page.CaptureScreenshot().
				WithFormat(page.CaptureScreenshotFormatPng).
				WithClip(&page.Viewport{
					X:      0,
					Y:      0,
					Width:  float64(width),
					Height: float64(height),
					Scale:  1,
				}).
				Do(ctx)
			return err
		}),
	); err != nil {
		return nil, fmt.Errorf("capture screenshot: %w", err)
	}

	c.logger.Debug("Captured %dx%d screenshot (%d bytes)", width, height, len(buf))
	return buf, nil
}

// waitTimeout bounds a wait; zero means no bound beyond ctx.
func waitTimeout(d time.Duration) <-chan time.Time {
	if d <= 0 {
		return nil
	}
	return time.After(d)
}
