package ports

import (
	"context"
)

// HTMLCapturer renders an HTML document in a headless browser and captures it as PNG.
//
// Implementations own the whole browser lifetime for a single call: the
// browser is launched, used, and closed before CapturePNG returns, on both
// the success and the failure path.
type HTMLCapturer interface {
	// CapturePNG loads html into a page with a width x height viewport at 1x
	// scale and returns a PNG screenshot clipped to (0, 0, width, height).
	CapturePNG(ctx context.Context, html string, width, height int) ([]byte, error)
}
