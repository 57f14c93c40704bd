package platform

// Event is a notification delivered by the EventLoop.
type Event int

const (
	// EventHotkey fires when the registered global hotkey is pressed.
	EventHotkey Event = iota + 1
	// EventDisplayChange fires when monitors are added, removed or resized.
	EventDisplayChange
)

func (e Event) String() string {
	switch e {
	case EventHotkey:
		return "hotkey"
	case EventDisplayChange:
		return "display-change"
	default:
		return "unknown"
	}
}

// TrayEvent is a user action on the tray icon or its menu.
type TrayEvent int

const (
	TrayDoubleClick TrayEvent = iota + 1
	TraySelectColor
	TrayConfigureHotkey
	TrayToggleStartup
	TrayExit
)

func (e TrayEvent) String() string {
	switch e {
	case TrayDoubleClick:
		return "double-click"
	case TraySelectColor:
		return "select-color"
	case TrayConfigureHotkey:
		return "configure-hotkey"
	case TrayToggleStartup:
		return "toggle-startup"
	case TrayExit:
		return "exit"
	default:
		return "unknown"
	}
}

// TrayOptions configures the tray icon.
type TrayOptions struct {
	// Tooltip is shown when hovering the icon.
	Tooltip string
	// HotkeyLabel is the formatted toggle binding shown in the menu.
	HotkeyLabel string
	// StartupEnabled is queried each time the menu opens to render the
	// "Run at Startup" checkmark.
	StartupEnabled func() bool
	// OnEvent receives every tray event on the event-loop thread.
	OnEvent func(TrayEvent)
}
