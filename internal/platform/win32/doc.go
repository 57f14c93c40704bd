// Package win32 provides Windows platform support using the Win32 API via
// github.com/lxn/win, plus lazily loaded user32/gdi32 procedures lxn/win
// does not wrap. On other platforms the package is empty and the tray app
// reports platform.ErrUnsupported.
//
// Every window created here belongs to the main OS thread: init locks the
// main goroutine to it, and the event loop, the tray menu, the color picker
// and the hotkey dialog all run there.
package win32
