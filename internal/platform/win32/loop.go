//go:build windows

package win32

import (
	"context"
	"errors"

	"github.com/lxn/win"
	"golang.org/x/sys/windows"

	"github.com/mj1618/blanqr/internal/platform"
)

// EventLoop pumps the thread message queue.
type EventLoop struct {
	l *listener
}

// newEventLoop returns a loop delivering the listener's events.
func newEventLoop(l *listener) *EventLoop {
	return &EventLoop{l: l}
}

func (lp *EventLoop) Run(ctx context.Context, fn func(platform.Event)) error {
	lp.l.onEvent = fn
	defer func() { lp.l.onEvent = nil }()

	threadID := windows.GetCurrentThreadId()
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			postThreadQuit(threadID)
		case <-done:
		}
	}()

	var msg win.MSG
	for {
		switch win.GetMessage(&msg, 0, 0, 0) {
		case 0:
			return ctx.Err()
		case -1:
			return errors.New("GetMessage failed")
		}
		win.TranslateMessage(&msg)
		win.DispatchMessage(&msg)
	}
}

// Quit posts WM_QUIT; Run returns once the messages queued before it are
// handled.
func (lp *EventLoop) Quit() {
	win.PostQuitMessage(0)
}
