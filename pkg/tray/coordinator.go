// Package tray coordinates a desktop flashcard application with its system
// tray entry: it intercepts the main window close button, hides and restores
// the application's top-level windows, and keeps a due-count badge painted on
// the tray icon.
//
// The coordinator is pure glue. It owns no windows and computes no schedules;
// everything it touches is reached through the small host interfaces in this
// package, which makes the whole policy testable without a toolkit.
package tray

import (
	"fmt"
	"log/slog"
	"runtime"
	"sync"

	"github.com/recalldeck/minitray/pkg/badge"
)

// Config is the coordinator's display configuration, normally loaded from the
// host's addon settings.
type Config struct {
	// OnDueChanged, when set, is invoked after the painted due count
	// changes. Hosts use it to drive notifications.
	OnDueChanged func(prev, now int)
	// DueFontSize is the badge text height in pixels.
	DueFontSize int
	// ShowDue controls whether the due-count badge is rendered at all.
	ShowDue bool
	// HideOnStartup hides all windows immediately after construction.
	HideOnStartup bool
}

// DefaultConfig returns the configuration used when the host supplies none.
func DefaultConfig() Config {
	return Config{
		ShowDue:     true,
		DueFontSize: badge.DefaultFontSize,
	}
}

// Deps are the host collaborators the coordinator drives. All fields are
// required.
type Deps struct {
	MainWindow MainWindow
	Windows    WindowSystem
	Scheduler  Scheduler
	Hooks      Hooks
	Icon       TrayIcon
	Theme      Theme
}

func (d Deps) validate() error {
	switch {
	case d.MainWindow == nil:
		return fmt.Errorf("tray: missing main window")
	case d.Windows == nil:
		return fmt.Errorf("tray: missing window system")
	case d.Scheduler == nil:
		return fmt.Errorf("tray: missing scheduler")
	case d.Hooks == nil:
		return fmt.Errorf("tray: missing hooks")
	case d.Icon == nil:
		return fmt.Errorf("tray: missing tray icon")
	case d.Theme == nil:
		return fmt.Errorf("tray: missing theme")
	}
	return nil
}

// Coordinator mediates between the host window system and the tray icon.
//
// It tracks two independent pieces of state: whether the application holds
// input focus, and whether its windows are currently hidden to the tray.
// Both reset at process start; nothing here is persisted.
type Coordinator struct {
	cfg  Config
	deps Deps

	// hideOnClick is false on Windows, where focus loss cannot be told
	// apart from the tray click itself, so a click never hides windows
	// there. Overridable in tests.
	hideOnClick bool

	cache *badge.Cache

	mu            sync.Mutex
	focused       bool
	hiddenToTray  bool
	exitRequested bool
	lastFocused   Window
	hiddenWindows []Window
	shownDue      int
}

// New builds the coordinator, subscribes it to the host hooks, paints the
// initial tray icon, and optionally hides all windows. The host must call it
// at most once per process, after the main window has finished initializing.
func New(cfg Config, deps Deps) (*Coordinator, error) {
	if err := deps.validate(); err != nil {
		return nil, err
	}
	if cfg.DueFontSize <= 0 {
		cfg.DueFontSize = badge.DefaultFontSize
	}

	c := &Coordinator{
		cfg:         cfg,
		deps:        deps,
		hideOnClick: runtime.GOOS != "windows",
		cache:       badge.NewCache(),
		focused:     true,
		lastFocused: deps.MainWindow,
	}

	deps.Hooks.FocusChanged(c.OnFocusChanged)
	deps.Hooks.ThemeChanged(func() { c.RefreshIcon(true) })
	deps.Hooks.StateChanged(func() { c.RefreshIcon(false) })
	deps.Hooks.OperationDone(func() { c.RefreshIcon(false) })

	c.RefreshIcon(true)

	if cfg.HideOnStartup {
		c.HideAll()
	}

	slog.Info("[TRAY] Coordinator attached",
		"show_due", cfg.ShowDue,
		"due_font_size", cfg.DueFontSize,
		"hide_on_startup", cfg.HideOnStartup,
		"hide_on_click", c.hideOnClick)
	return c, nil
}

// OnTrayActivated handles a tray icon activation. Only the primary click
// acts: windows are shown when the application is unfocused, any visible
// window is minimized, or the windows are hidden to the tray; otherwise they
// are hidden, except where hideOnClick is off.
//
// Focus is already lost by the time the click arrives, so the focused flag
// alone cannot distinguish "clicked while focused" from "clicked from another
// application"; the minimized check papers over part of that gap.
func (c *Coordinator) OnTrayActivated(reason ActivationReason) {
	if reason != ActivationTrigger {
		return
	}

	c.mu.Lock()
	show := !c.focused || c.hiddenToTray
	c.mu.Unlock()

	if !show && c.anyWindowMinimized() {
		show = true
	}

	switch {
	case show:
		c.ShowAll()
	case c.hideOnClick:
		c.HideAll()
	default:
		slog.Debug("[TRAY] Ignoring tray click, hide-on-click disabled on this platform")
	}
}

// OnFocusChanged tracks application focus and records the focused window so
// ShowAll can restore focus to it later.
func (c *Coordinator) OnFocusChanged(_, now Window) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.focused = now != nil
	if c.focused {
		c.lastFocused = now
	}
}

// OnExitRequested runs the explicit exit action: it marks the close as
// exit-originated so InterceptClose lets it through, then closes the main
// window via the normal close path.
func (c *Coordinator) OnExitRequested() {
	c.mu.Lock()
	c.exitRequested = true
	c.mu.Unlock()

	slog.Info("[TRAY] Exit requested")
	c.deps.MainWindow.Close()
}

// InterceptClose implements the main window close policy. The host calls it
// from its close path; a true return means the close is suppressed and the
// windows were hidden to the tray instead.
func (c *Coordinator) InterceptClose() bool {
	c.mu.Lock()
	exit := c.exitRequested
	c.mu.Unlock()

	if exit {
		slog.Debug("[TRAY] Allowing close from exit action")
		return false
	}

	slog.Debug("[TRAY] Close button pressed, hiding to tray")
	c.HideAll()
	return true
}

// ShowAll restores the application windows. When hidden to the tray it
// restores exactly the set HideAll captured; otherwise it restores every
// currently visible window, un-minimizing as needed.
func (c *Coordinator) ShowAll() {
	c.mu.Lock()
	wasHidden := c.hiddenToTray
	targets := c.hiddenWindows
	last := c.lastFocused
	c.mu.Unlock()

	if !wasHidden {
		targets = c.visibleWindows()
	}

	for _, w := range targets {
		if w.Destroyed() {
			continue
		}
		if w.Minimized() {
			// Windows that were maximized are not restored maximized.
			w.ShowNormal()
		} else {
			// Hide-then-show works around a toolkit quirk where an
			// already-visible window cannot be raised above foreign
			// windows after focus changed hands twice. Causes a
			// minor flicker when the window is already visible.
			w.Hide()
			w.Show()
		}
		w.Raise()
	}

	if last != nil && !last.Destroyed() {
		last.Raise()
		last.Activate()
	}

	c.mu.Lock()
	c.hiddenToTray = false
	c.mu.Unlock()
	slog.Debug("[TRAY] Windows restored", "count", len(targets), "from_snapshot", wasHidden)
}

// HideAll snapshots the currently visible windows, hides them, and marks the
// application hidden to the tray. ShowAll reverses exactly this snapshot,
// never a recomputation, so windows that were already hidden independently
// stay hidden.
func (c *Coordinator) HideAll() {
	targets := c.visibleWindows()
	for _, w := range targets {
		w.Hide()
	}

	c.mu.Lock()
	c.hiddenWindows = targets
	c.hiddenToTray = true
	c.mu.Unlock()
	slog.Debug("[TRAY] Windows hidden to tray", "count", len(targets))
}

// HiddenToTray reports whether all windows are currently hidden to the tray.
func (c *Coordinator) HiddenToTray() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hiddenToTray
}

// RefreshIcon repaints the tray icon from the current due count. Without
// force it is a no-op unless the badge is enabled and the count changed since
// the last paint.
func (c *Coordinator) RefreshIcon(force bool) {
	n := c.dueCount()

	c.mu.Lock()
	changed := n != c.shownDue
	if !force && !(c.cfg.ShowDue && changed) {
		c.mu.Unlock()
		return
	}
	prev := c.shownDue
	c.shownDue = n
	c.mu.Unlock()

	c.paintIcon(n)

	if changed && c.cfg.OnDueChanged != nil {
		c.cfg.OnDueChanged(prev, n)
	}
}

// dueCount sums new, learning, and review counts across the top-level decks.
// It short-circuits to zero when the badge is disabled so the scheduler is
// never queried needlessly.
func (c *Coordinator) dueCount() int {
	if !c.cfg.ShowDue {
		return 0
	}
	total := 0
	for _, d := range c.deps.Scheduler.DueTree() {
		total += d.New + d.Learning + d.Review
	}
	return total
}

// paintIcon renders the base icon, with a badge only when the count is
// positive and the badge is enabled, and hands it to the tray.
func (c *Coordinator) paintIcon(n int) {
	text := ""
	if n > 0 && c.cfg.ShowDue {
		text = badge.Format(n)
	}

	opts := badge.Options{
		FontSize: c.cfg.DueFontSize,
		Text:     c.deps.Theme.BadgeText(),
		Fill:     c.deps.Theme.BadgeFill(),
	}

	key := badge.Key(text, opts)
	data, ok := c.cache.Lookup(key)
	if !ok {
		var err error
		data, err = badge.Render(c.deps.Theme.AppIcon(), text, opts)
		if err != nil {
			slog.Warn("[TRAY] Badge render failed", "due", n, "error", err)
			return
		}
		c.cache.Put(key, data)
	}

	c.deps.Icon.SetIcon(data)
	if c.cfg.ShowDue {
		c.deps.Icon.SetTooltip(dueTooltip(n))
	}
	slog.Debug("[TRAY] Icon painted", "due", n, "badge", text != "")
}

func dueTooltip(n int) string {
	switch n {
	case 0:
		return "No cards due"
	case 1:
		return "1 card due"
	default:
		return fmt.Sprintf("%d cards due", n)
	}
}

// visibleWindows returns the application windows that are actually visible.
// The host has some hidden windows and child-less toolkit artifacts that must
// be ignored.
func (c *Coordinator) visibleWindows() []Window {
	var windows []Window
	for _, w := range c.deps.Windows.TopLevelWindows() {
		if w.Destroyed() || w.Hidden() || !w.HasChildren() {
			continue
		}
		windows = append(windows, w)
	}
	return windows
}

func (c *Coordinator) anyWindowMinimized() bool {
	for _, w := range c.visibleWindows() {
		if w.Minimized() {
			return true
		}
	}
	return false
}
