package rodcapture

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/sparkstudio/pkg/adapters/chromebrowser"
	"github.com/user/sparkstudio/pkg/adapters/logger"
	"github.com/user/sparkstudio/pkg/ports"
)

func TestCapturer_MissingBrowser(t *testing.T) {
	opts := ports.DefaultBrowserOptions()
	opts.ChromePath = filepath.Join(t.TempDir(), "no-chrome")

	_, err := New(opts, logger.NewNoop()).CapturePNG(context.Background(), "<html></html>", 100, 100)
	assert.True(t, errors.Is(err, ports.ErrBrowserLaunch), "got %v", err)
}

func TestCapturer_WaitIdleTimeout(t *testing.T) {
	opts := ports.DefaultBrowserOptions()
	opts.IdleTimeout = 10 * time.Millisecond
	c := New(opts, logger.NewNoop())

	block := make(chan struct{})
	var returned atomic.Bool
	wait := func() {
		<-block
		returned.Store(true)
	}
	assert.False(t, c.waitIdle(context.Background(), wait, func() { close(block) }))
	assert.True(t, returned.Load(), "wait goroutine should finish before waitIdle returns")

	assert.True(t, c.waitIdle(context.Background(), func() {}, func() {
		t.Error("stop must not be called when idle is reached")
	}))
}

func TestCapturer_WaitIdleCancelled(t *testing.T) {
	opts := ports.DefaultBrowserOptions()
	opts.IdleTimeout = time.Hour
	c := New(opts, logger.NewNoop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	block := make(chan struct{})
	assert.False(t, c.waitIdle(ctx, func() { <-block }, func() { close(block) }))
}

func TestCapturer_CapturePNG(t *testing.T) {
	if _, err := chromebrowser.Locate(""); err != nil {
		t.Skip("Chrome not available")
	}

	opts := ports.DefaultBrowserOptions()
	opts.SettleDelay = 50 * time.Millisecond

	data, err := New(opts, logger.NewNoop()).CapturePNG(context.Background(),
		`<html><body style="margin:0;background:#0b0d17"></body></html>`, 240, 120)
	require.NoError(t, err)

	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 240, cfg.Width)
	assert.Equal(t, 120, cfg.Height)
}
