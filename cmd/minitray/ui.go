// Package main - ui.go assembles the harness and its tray menu.
package main

import (
	"log/slog"

	"github.com/recalldeck/minitray/pkg/appsettings"
	"github.com/recalldeck/minitray/pkg/tray"
)

// harness owns the simulated host and the pieces the coordinator plugs into.
type harness struct {
	systray     SystrayInterface
	main        *simMainWindow
	windows     *simWindowSystem
	sched       *simScheduler
	hooks       *simHooks
	theme       *simTheme
	notif       *notifier
	coordinator *tray.Coordinator
	settings    appsettings.Settings
}

// newHarness builds the simulated host: the main window, a secondary
// "browser" window, and one hidden utility window that the restore snapshot
// must leave alone.
func newHarness(settings appsettings.Settings, st SystrayInterface, deck tray.DeckDue) *harness {
	h := &harness{
		systray:  st,
		main:     &simMainWindow{simWindow: simWindow{name: "main"}},
		windows:  &simWindowSystem{},
		sched:    &simScheduler{decks: []tray.DeckDue{deck}},
		hooks:    &simHooks{},
		theme:    &simTheme{},
		notif:    newNotifier(settings),
		settings: settings,
	}
	h.windows.windows = []tray.Window{
		h.main,
		&simWindow{name: "card browser"},
		&simWindow{name: "add cards", hidden: true},
	}
	return h
}

// attach constructs the coordinator against the simulated host and builds
// the tray menu.
func (h *harness) attach() error {
	cfg := tray.Config{
		ShowDue:       h.settings.ShowDue,
		DueFontSize:   h.settings.DueFontSize,
		HideOnStartup: h.settings.HideOnStartup,
		OnDueChanged:  h.notif.dueChanged,
	}

	c, err := tray.New(cfg, tray.Deps{
		MainWindow: h.main,
		Windows:    h.windows,
		Scheduler:  h.sched,
		Hooks:      h.hooks,
		Icon:       h.systray,
		Theme:      h.theme,
	})
	if err != nil {
		return err
	}
	h.coordinator = c

	// Host close path: the X button consults the interceptor; only an
	// unintercepted close ends the process.
	h.main.interceptor = c.InterceptClose
	h.main.quit = h.systray.Quit

	h.buildMenu()
	return nil
}

// buildMenu creates the tray context menu.
func (h *harness) buildMenu() {
	h.systray.ResetMenu()

	show := h.systray.AddMenuItem("Show all windows", "Restore every window hidden to the tray")
	show.Click(func() { h.coordinator.ShowAll() })

	study := h.systray.AddMenuItem("Study a card", "Simulate reviewing one due card")
	study.Click(h.studyCard)

	theme := h.systray.AddMenuItem("Toggle theme", "Switch the badge between light and dark colors")
	theme.Click(h.toggleTheme)

	h.systray.AddSeparator()

	quit := h.systray.AddMenuItem("Exit", "Quit through the main window close path")
	quit.Click(func() { h.coordinator.OnExitRequested() })
}

// studyCard reviews one simulated card and fires the operation hook, the
// same signal the host emits after a real review.
func (h *harness) studyCard() {
	if !h.sched.completeReview() {
		slog.Info("[SIM] No cards left to study")
		return
	}
	h.hooks.fireOperationDone()
}

// toggleTheme flips the palette and fires the theme hook, which forces an
// icon repaint.
func (h *harness) toggleTheme() {
	h.theme.toggle()
	h.hooks.fireThemeChanged()
}
