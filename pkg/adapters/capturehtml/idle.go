package capturehtml

import (
	"context"
	"sync"
	"time"

	"github.com/chromedp/cdproto/page"
)

// idleWatcher tracks the networkIdle lifecycle event of the current document.
// An "init" event starts a new document and clears the flag, so idle events
// replayed for about:blank never count.
type idleWatcher struct {
	mu     sync.Mutex
	idle   bool
	notify chan struct{}
}

func newIdleWatcher() *idleWatcher {
	return &idleWatcher{notify: make(chan struct{}, 1)}
}

func (w *idleWatcher) handle(ev any) {
	e, ok := ev.(*page.EventLifecycleEvent)
	if !ok {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	switch e.Name {
	case "init":
		w.idle = false
	case "networkIdle":
		w.idle = true
		select {
		case w.notify <- struct{}{}:
		default:
		}
	}
}

func (w *idleWatcher) isIdle() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.idle
}

// wait blocks until the document is network idle, the timeout elapses or ctx
// ends. It reports whether idle was reached.
func (w *idleWatcher) wait(ctx context.Context, timeout time.Duration) bool {
	deadline := waitTimeout(timeout)
	for {
		if w.isIdle() {
			return true
		}
		select {
		case <-w.notify:
		case <-deadline:
			return false
		case <-ctx.Done():
			return false
		}
	}
}
