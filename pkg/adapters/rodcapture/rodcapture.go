// Package rodcapture renders an HTML document to PNG in headless Chrome
// through go-rod.
package rodcapture

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/launcher/flags"
	"github.com/go-rod/rod/lib/proto"
	"github.com/google/uuid"

	"github.com/user/sparkstudio/pkg/adapters/chromebrowser"
	"github.com/user/sparkstudio/pkg/ports"
)

// requestIdle is how long the page must go without network requests to be
// considered idle.
const requestIdle = 500 * time.Millisecond

// Capturer launches a browser per capture with rod's launcher.
type Capturer struct {
	opts   ports.BrowserOptions
	logger ports.Logger
}

// New creates a new rod capturer.
func New(opts ports.BrowserOptions, logger ports.Logger) *Capturer {
	return &Capturer{
		opts:   opts,
		logger: logger.WithComponent("rod"),
	}
}

// Ensure Capturer implements ports.HTMLCapturer
var _ ports.HTMLCapturer = (*Capturer)(nil)

// CapturePNG implements ports.HTMLCapturer.
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

	l := launcher.New().Context(ctx).Bin(execPath).Headless(c.opts.Headless)
	for _, f := range chromebrowser.LaunchFlags() {
		if f.Value == "" {
			l = l.Set(flags.Flag(f.Name))
		} else {
			l = l.Set(flags.Flag(f.Name), f.Value)
		}
	}

	c.logger.Debug("Launching browser (%s)", execPath)
	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ports.ErrBrowserLaunch, err)
	}
	// Cleanup waits for the process to exit, so Kill must run first.
	defer l.Cleanup()
	defer l.Kill()

	browser := rod.New().ControlURL(controlURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("%w: %w", ports.ErrBrowserLaunch, err)
	}
	defer func() {
		_ = browser.Close()
		c.logger.Debug("Browser closed")
	}()

	page, err := browser.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		return nil, fmt.Errorf("create page: %w", err)
	}

	if err := (proto.EmulationSetDeviceMetricsOverride{
		Width:             width,
		Height:            height,
		DeviceScaleFactor: 1,
		Mobile:            false,
	}).Call(page); err != nil {
		return nil, fmt.Errorf("set viewport: %w", err)
	}

	idleCtx, stopIdle := context.WithCancel(ctx)
	defer stopIdle()
	waitIdle := page.Context(idleCtx).WaitRequestIdle(requestIdle, nil, nil, nil)
	if err := page.Navigate("file://" + filepath.ToSlash(tmpFile)); err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}
	if !c.waitIdle(ctx, waitIdle, stopIdle) {
		c.logger.Warn("Network idle not reached after %s, capturing anyway", c.opts.IdleTimeout)
	}

	if _, err := page.Evaluate(&rod.EvalOptions{
		JS:           `() => document.fonts.ready.then(() => true)`,
		AwaitPromise: true,
	}); err != nil {
		return nil, fmt.Errorf("wait for fonts: %w", err)
	}

	select {
	case <-time.After(c.opts.SettleDelay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	buf, err := page.Screenshot(false, &proto.PageCaptureScreenshot{
		Format: proto.PageCaptureScreenshotFormatPng,
		Clip: &proto.PageViewport{
			X:      0,
			Y:      0,
			Width:  float64(width),
			Height: float64(height),
			Scale:  1,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("capture screenshot: %w", err)
	}

	c.logger.Debug("Captured %dx%d screenshot (%d bytes)", width, height, len(buf))
	return buf, nil
}

// waitIdle runs rod's request-idle wait bounded by the idle timeout. When the
// bound is hit, stop is called and the wait goroutine is drained before
// returning.
func (c *Capturer) waitIdle(ctx context.Context, wait, stop func()) bool {
	done := make(chan struct{})
	go func() {
		defer close(done)
		wait()
	}()

	var deadline <-chan time.Time
	if c.opts.IdleTimeout > 0 {
		deadline = time.After(c.opts.IdleTimeout)
	}
	select {
	case <-done:
		return true
	case <-deadline:
	case <-ctx.Done():
	}
	stop()
	<-done
	return false
}
