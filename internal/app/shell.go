// Package app wires the platform event sources to the overlay controller.
package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/mj1618/blanqr/internal/config"
	"github.com/mj1618/blanqr/internal/model"
	"github.com/mj1618/blanqr/internal/overlay"
	"github.com/mj1618/blanqr/internal/platform"
)

// Tooltip is shown when hovering the tray icon.
const Tooltip = "Blanqr"

// Options configures a Shell.
type Options struct {
	Provider *platform.Provider
	// Config is the loaded configuration. Nil means defaults.
	Config *config.Config
	// FirstRun is true when no config file existed yet.
	FirstRun bool
	Logger   *zap.Logger
	// Save persists the configuration. Defaults to (*config.Config).Save.
	Save func(*config.Config) error
}

// Shell owns the controller, the configuration and the event loop.
type Shell struct {
	p        *platform.Provider
	ctrl     *overlay.Controller
	cfg      *config.Config
	firstRun bool
	save     func(*config.Config) error
	log      *zap.Logger
}

// New validates the provider and builds the overlay controller.
func New(opts Options) (*Shell, error) {
	if opts.Provider == nil {
		return nil, errors.New("app: no platform provider")
	}
	if err := opts.Provider.Validate(); err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	save := opts.Save
	if save == nil {
		save = (*config.Config).Save
	}
	return &Shell{
		p:        opts.Provider,
		ctrl:     overlay.New(opts.Provider.Monitors, opts.Provider.Overlays, overlay.WithLogger(log.Named("overlay"))),
		cfg:      cfg,
		firstRun: opts.FirstRun,
		save:     save,
		log:      log.Named("shell"),
	}, nil
}

// Controller returns the overlay controller driven by the shell.
func (s *Shell) Controller() *overlay.Controller { return s.ctrl }

// Config returns the live configuration.
func (s *Shell) Config() *config.Config { return s.cfg }

// Run registers the hotkey, starts the tray icon and pumps events until the
// tray Exit item is chosen or ctx is done. Everything it created is torn
// down before it returns.
func (s *Shell) Run(ctx context.Context) error {
	if s.firstRun {
		s.firstRunSetup()
	}

	if err := s.p.Hotkeys.Register(s.cfg.Hotkey); err != nil {
		s.log.Warn("hotkey registration failed", zap.Stringer("hotkey", s.cfg.Hotkey), zap.Error(err))
	} else {
		s.log.Info("hotkey registered", zap.Stringer("hotkey", s.cfg.Hotkey))
	}

	err := s.p.Tray.Start(platform.TrayOptions{
		Tooltip:        Tooltip,
		HotkeyLabel:    s.cfg.Hotkey.String(),
		StartupEnabled: s.p.Autostart.IsEnabled,
		OnEvent:        s.handleTray,
	})
	if err != nil {
		_ = s.p.Hotkeys.Unregister()
		return fmt.Errorf("app: failed to start tray icon: %w", err)
	}

	defer func() {
		s.ctrl.Close()
		if err := s.p.Tray.Close(); err != nil {
			s.log.Warn("tray close failed", zap.Error(err))
		}
		if err := s.p.Hotkeys.Unregister(); err != nil {
			s.log.Debug("hotkey unregister failed", zap.Error(err))
		}
		s.log.Info("shell stopped")
	}()

	s.log.Info("shell started")
	if err := s.p.Loop.Run(ctx, s.handleEvent); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("app: event loop: %w", err)
	}
	return nil
}

// firstRunSetup enables autostart once and writes the config so the user's
// later opt-out is not undone.
func (s *Shell) firstRunSetup() {
	if !s.p.Autostart.IsEnabled() {
		if err := s.p.Autostart.Enable(); err != nil {
			s.log.Warn("failed to enable autostart", zap.Error(err))
		}
	}
	if err := s.save(s.cfg); err != nil {
		s.log.Warn("failed to write initial config", zap.Error(err))
	}
	s.firstRun = false
}

func (s *Shell) handleEvent(e platform.Event) {
	s.log.Debug("event", zap.Stringer("event", e))
	switch e {
	case platform.EventHotkey:
		s.ctrl.Toggle()
	case platform.EventDisplayChange:
		s.ctrl.Resync()
	}
}

func (s *Shell) handleTray(e platform.TrayEvent) {
	s.log.Debug("tray event", zap.Stringer("event", e))
	switch e {
	case platform.TrayDoubleClick:
		s.ctrl.Toggle()
	case platform.TraySelectColor:
		s.selectColor()
	case platform.TrayConfigureHotkey:
		s.configureHotkey()
	case platform.TrayToggleStartup:
		s.toggleStartup()
	case platform.TrayExit:
		if err := s.p.Hotkeys.Unregister(); err != nil {
			s.log.Debug("hotkey unregister failed", zap.Error(err))
		}
		s.p.Loop.Quit()
	}
}

func (s *Shell) selectColor() {
	c, ok := s.p.ColorPicker.PickColor(s.ctrl.Color())
	if !ok {
		return
	}
	s.ctrl.SetColor(c)
	s.log.Info("color selected", zap.Stringer("color", c))
}

func (s *Shell) configureHotkey() {
	old := s.cfg.Hotkey
	hk, ok := s.p.HotkeyCapture.CaptureHotkey(old)
	if !ok || hk == old {
		return
	}
	if err := s.p.Hotkeys.Register(hk); err != nil {
		s.log.Warn("new hotkey rejected", zap.Stringer("hotkey", hk), zap.Error(err))
		s.restoreHotkey(old)
		return
	}
	s.cfg.Hotkey = hk
	if err := s.save(s.cfg); err != nil {
		s.log.Warn("failed to save config", zap.Error(err))
	}
	s.p.Tray.SetHotkeyLabel(hk.String())
	s.log.Info("hotkey changed", zap.Stringer("from", old), zap.Stringer("to", hk))
}

func (s *Shell) restoreHotkey(hk model.Hotkey) {
	if err := s.p.Hotkeys.Register(hk); err != nil {
		s.log.Warn("failed to restore previous hotkey", zap.Stringer("hotkey", hk), zap.Error(err))
	}
}

func (s *Shell) toggleStartup() {
	var err error
	enable := !s.p.Autostart.IsEnabled()
	if enable {
		err = s.p.Autostart.Enable()
	} else {
		err = s.p.Autostart.Disable()
	}
	if err != nil {
		s.log.Warn("failed to change autostart", zap.Bool("enable", enable), zap.Error(err))
		return
	}
	s.log.Info("autostart changed", zap.Bool("enabled", enable))
}
