package tray

import (
	"image"
	"image/color"
)

// Window is a top-level window of the host application.
//
// Destroyed must be safe to call at any time; every other method may only be
// called while Destroyed reports false. This mirrors the lifetime rules of
// the underlying toolkit, where a window object can be torn down while the
// coordinator still holds a reference to it.
type Window interface {
	Show()
	Hide()
	// ShowNormal restores a minimized window to its normal state.
	ShowNormal()
	// Raise moves the window above other windows without focusing it.
	Raise()
	// Activate gives the window input focus.
	Activate()
	Minimized() bool
	Hidden() bool
	// HasChildren reports whether the window contains any child widgets.
	// Child-less top-level windows are toolkit-internal artifacts and are
	// never hidden or restored.
	HasChildren() bool
	Destroyed() bool
}

// MainWindow is the host application's main window. Closing it ends the
// process through the host's normal shutdown path.
type MainWindow interface {
	Window
	Close()
}

// WindowSystem enumerates the host's top-level windows.
type WindowSystem interface {
	TopLevelWindows() []Window
}

// DeckDue carries the scheduled counts of one top-level deck.
type DeckDue struct {
	New      int
	Learning int
	Review   int
}

// Scheduler exposes the host's precomputed due counts. The coordinator never
// schedules anything itself; it only aggregates what the host reports.
type Scheduler interface {
	DueTree() []DeckDue
}

// Hooks is the host's typed event-subscription surface. The coordinator
// subscribes once at construction; the host invokes the callbacks from its
// event-dispatch context.
type Hooks interface {
	FocusChanged(fn func(old, now Window))
	ThemeChanged(fn func())
	StateChanged(fn func())
	OperationDone(fn func())
}

// TrayIcon is the rendered side of the system tray entry.
type TrayIcon interface {
	SetIcon(png []byte)
	SetTooltip(text string)
}

// Theme provides the badge colors and the base application icon.
type Theme interface {
	BadgeText() color.RGBA
	BadgeFill() color.RGBA
	// AppIcon returns the base application icon, or nil to use the
	// built-in one.
	AppIcon() image.Image
}

// ActivationReason describes how the tray icon was activated.
type ActivationReason int

const (
	// ActivationTrigger is the primary (usually left) click.
	ActivationTrigger ActivationReason = iota + 1
	// ActivationContext is the context-menu (usually right) click.
	ActivationContext
	// ActivationDoubleClick is a double primary click.
	ActivationDoubleClick
	// ActivationMiddleClick is a middle-button click.
	ActivationMiddleClick
)
