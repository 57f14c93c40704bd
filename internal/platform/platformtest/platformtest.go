// Package platformtest provides in-memory platform backends for tests.
package platformtest

import (
	"context"
	"errors"
	"sync"

	"github.com/mj1618/blanqr/internal/model"
	"github.com/mj1618/blanqr/internal/platform"
)

// Monitors is a MonitorEnumerator returning a fixed, replaceable layout.
type Monitors struct {
	mu    sync.Mutex
	list  []model.Monitor
	err   error
	Calls int
}

// NewMonitors returns an enumerator reporting ms.
func NewMonitors(ms ...model.Monitor) *Monitors {
	return &Monitors{list: ms}
}

// Set replaces the reported layout.
func (m *Monitors) Set(ms ...model.Monitor) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.list = ms
}

// Fail makes the next enumerations return err.
func (m *Monitors) Fail(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

func (m *Monitors) Monitors() ([]model.Monitor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls++
	if m.err != nil {
		return nil, m.err
	}
	return append([]model.Monitor(nil), m.list...), nil
}

// Monitor builds a descriptor for a w×h display at (x, y).
func Monitor(name string, x, y, w, h int32, primary bool) model.Monitor {
	return model.Monitor{
		Bounds:     model.Rect{Left: x, Top: y, Right: x + w, Bottom: y + h},
		Primary:    primary,
		DeviceName: name,
	}
}

// ErrCreate is returned by Host.CreateOverlay for monitors marked to fail.
var ErrCreate = errors.New("platformtest: overlay creation failed")

// Host is an OverlayHost that records every window it creates and keeps a
// cursor reference count the way the native host does.
type Host struct {
	mu        sync.Mutex
	dismiss   func()
	created   []*Window
	failNames map[string]bool
	cursorRef int

	// OnShow, when set, runs at the end of every Window.Show outside any lock.
	OnShow func(w *Window)
}

// NewHost returns an empty host.
func NewHost() *Host {
	return &Host{failNames: map[string]bool{}}
}

// FailFor makes CreateOverlay fail for the monitor with that device name.
func (h *Host) FailFor(deviceName string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.failNames[deviceName] = true
}

func (h *Host) SetDismissHandler(fn func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.dismiss = fn
}

func (h *Host) CreateOverlay(m model.Monitor, c model.Color) (platform.OverlayWindow, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.failNames[m.DeviceName] {
		return nil, ErrCreate
	}
	w := &Window{host: h, monitor: m, color: c}
	h.created = append(h.created, w)
	return w, nil
}

// Dismiss simulates a click or Escape on one of the host's windows.
func (h *Host) Dismiss() {
	h.mu.Lock()
	fn := h.dismiss
	h.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// Created returns every window ever created, destroyed ones included.
func (h *Host) Created() []*Window {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]*Window(nil), h.created...)
}

// Live returns the windows not yet destroyed.
func (h *Host) Live() []*Window {
	h.mu.Lock()
	defer h.mu.Unlock()
	var out []*Window
	for _, w := range h.created {
		if !w.destroyed {
			out = append(out, w)
		}
	}
	return out
}

// CursorHidden reports whether any window holds a cursor reference.
func (h *Host) CursorHidden() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.cursorRef > 0
}

// CursorRefs returns the raw cursor reference count.
func (h *Host) CursorRefs() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.cursorRef
}

// Window is an in-memory OverlayWindow. All state lives under the host lock.
type Window struct {
	host      *Host
	monitor   model.Monitor
	color     model.Color
	visible   bool
	topmost   bool
	destroyed bool
	shows     int
	hides     int
	destroys  int
}

func (w *Window) Show() {
	h := w.host
	h.mu.Lock()
	if w.destroyed {
		h.mu.Unlock()
		return
	}
	if !w.visible {
		w.visible = true
		h.cursorRef++
	}
	w.topmost = true
	w.shows++
	hook := h.OnShow
	h.mu.Unlock()
	if hook != nil {
		hook(w)
	}
}

func (w *Window) Hide() {
	h := w.host
	h.mu.Lock()
	defer h.mu.Unlock()
	if w.destroyed {
		return
	}
	if w.visible {
		w.visible = false
		h.cursorRef--
	}
	w.hides++
}

func (w *Window) SetColor(c model.Color) {
	w.host.mu.Lock()
	defer w.host.mu.Unlock()
	w.color = c
}

func (w *Window) Color() model.Color {
	w.host.mu.Lock()
	defer w.host.mu.Unlock()
	return w.color
}

func (w *Window) Bounds() model.Rect { return w.monitor.Bounds }

func (w *Window) Visible() bool {
	w.host.mu.Lock()
	defer w.host.mu.Unlock()
	return w.visible
}

func (w *Window) Destroy() {
	h := w.host
	h.mu.Lock()
	defer h.mu.Unlock()
	w.destroys++
	if w.destroyed {
		return
	}
	if w.visible {
		w.visible = false
		h.cursorRef--
	}
	w.destroyed = true
}

// Monitor returns the descriptor the window was created for.
func (w *Window) Monitor() model.Monitor { return w.monitor }

// Topmost reports whether Show pinned the window above other windows.
func (w *Window) Topmost() bool {
	w.host.mu.Lock()
	defer w.host.mu.Unlock()
	return w.topmost
}

// Destroyed reports whether Destroy has run.
func (w *Window) Destroyed() bool {
	w.host.mu.Lock()
	defer w.host.mu.Unlock()
	return w.destroyed
}

// Counts returns how often Show, Hide and Destroy were called.
func (w *Window) Counts() (shows, hides, destroys int) {
	w.host.mu.Lock()
	defer w.host.mu.Unlock()
	return w.shows, w.hides, w.destroys
}

// Hotkeys is a HotkeyRegistrar that refuses bindings listed in InUse.
type Hotkeys struct {
	Current    model.Hotkey
	Registered bool
	InUse      map[model.Hotkey]bool
	History    []model.Hotkey
}

func (r *Hotkeys) Register(hk model.Hotkey) error {
	if r.InUse[hk] {
		return platform.ErrHotkeyInUse
	}
	r.Current = hk
	r.Registered = true
	r.History = append(r.History, hk)
	return nil
}

func (r *Hotkeys) Unregister() error {
	r.Registered = false
	return nil
}

// Tray records the options it was started with and every label update.
type Tray struct {
	Options  platform.TrayOptions
	Started  bool
	Closed   bool
	Labels   []string
	StartErr error
}

func (t *Tray) Start(opts platform.TrayOptions) error {
	if t.StartErr != nil {
		return t.StartErr
	}
	t.Options = opts
	t.Started = true
	return nil
}

func (t *Tray) SetHotkeyLabel(label string) { t.Labels = append(t.Labels, label) }

func (t *Tray) Close() error {
	t.Closed = true
	return nil
}

// Fire delivers e to the handler passed to Start.
func (t *Tray) Fire(e platform.TrayEvent) {
	if t.Options.OnEvent != nil {
		t.Options.OnEvent(e)
	}
}

// Picker answers PickColor with Result and OK.
type Picker struct {
	Result model.Color
	OK     bool
	Asked  []model.Color
}

func (p *Picker) PickColor(current model.Color) (model.Color, bool) {
	p.Asked = append(p.Asked, current)
	return p.Result, p.OK
}

// Capture answers CaptureHotkey with Result and OK.
type Capture struct {
	Result model.Hotkey
	OK     bool
	Asked  []model.Hotkey
}

func (c *Capture) CaptureHotkey(current model.Hotkey) (model.Hotkey, bool) {
	c.Asked = append(c.Asked, current)
	return c.Result, c.OK
}

// Autostart is an in-memory run-at-login flag.
type Autostart struct {
	Enabled bool
	Err     error
}

func (a *Autostart) IsEnabled() bool { return a.Enabled }

func (a *Autostart) Enable() error {
	if a.Err != nil {
		return a.Err
	}
	a.Enabled = true
	return nil
}

func (a *Autostart) Disable() error {
	if a.Err != nil {
		return a.Err
	}
	a.Enabled = false
	return nil
}

// Loop is an EventLoop that replays Events, then runs Script, then returns.
type Loop struct {
	Events []platform.Event
	// Script runs after Events with the loop still "running".
	Script func()
	quit   bool
}

func (l *Loop) Run(ctx context.Context, fn func(platform.Event)) error {
	l.quit = false
	for _, e := range l.Events {
		if l.quit {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		fn(e)
	}
	if l.Script != nil && !l.quit {
		l.Script()
	}
	return nil
}

func (l *Loop) Quit() { l.quit = true }

// QuitCalled reports whether Quit ran during the last Run.
func (l *Loop) QuitCalled() bool { return l.quit }

// Provider returns a complete provider backed by fresh fakes.
func Provider(ms ...model.Monitor) *platform.Provider {
	return &platform.Provider{
		Monitors:      NewMonitors(ms...),
		Overlays:      NewHost(),
		Hotkeys:       &Hotkeys{InUse: map[model.Hotkey]bool{}},
		Tray:          &Tray{},
		ColorPicker:   &Picker{},
		HotkeyCapture: &Capture{},
		Autostart:     &Autostart{},
		Loop:          &Loop{},
	}
}
