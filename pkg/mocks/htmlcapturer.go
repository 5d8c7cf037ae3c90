package mocks

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"sync"
)

// CaptureCall records one CapturePNG invocation.
type CaptureCall struct {
	HTML   string
	Width  int
	Height int
}

// HTMLCapturer is a mock implementation of ports.HTMLCapturer.
// By default it returns a blank PNG of exactly the requested viewport.
type HTMLCapturer struct {
	CapturePNGFunc func(ctx context.Context, html string, width, height int) ([]byte, error)

	mu    sync.Mutex
	Calls []CaptureCall
}

// NewHTMLCapturer creates a new mock HTMLCapturer with default behavior.
func NewHTMLCapturer() *HTMLCapturer {
	return &HTMLCapturer{}
}

func (m *HTMLCapturer) CapturePNG(ctx context.Context, html string, width, height int) ([]byte, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, CaptureCall{HTML: html, Width: width, Height: height})
	m.mu.Unlock()

	if m.CapturePNGFunc != nil {
		return m.CapturePNGFunc(ctx, html, width, height)
	}
	return BlankPNG(width, height), nil
}

// CallCount returns how many captures were requested.
func (m *HTMLCapturer) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// BlankPNG encodes a transparent width x height PNG.
func BlankPNG(width, height int) []byte {
	var buf bytes.Buffer
	_ = png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, width, height)))
	return buf.Bytes()
}
