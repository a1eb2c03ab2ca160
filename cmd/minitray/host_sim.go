// Package main - host_sim.go simulates the flashcard host application.
//
// The demo binary has no real toolkit windows to manage, so it stands up the
// host side of the coordinator's interfaces in-memory: windows whose
// visibility is only logged, a scheduler fed from flags and mutated by menu
// actions, a hook bus, and a two-palette theme.
package main

import (
	"image"
	"image/color"
	"log/slog"
	"slices"
	"sync"

	"github.com/recalldeck/minitray/pkg/tray"
)

// simWindow is an in-memory stand-in for a host top-level window.
type simWindow struct {
	mu        sync.Mutex
	name      string
	hidden    bool
	minimized bool
	childless bool
}

func (w *simWindow) Show() {
	w.mu.Lock()
	w.hidden = false
	w.mu.Unlock()
	slog.Info("[SIM] Window shown", "window", w.name)
}

func (w *simWindow) Hide() {
	w.mu.Lock()
	w.hidden = true
	w.mu.Unlock()
	slog.Info("[SIM] Window hidden", "window", w.name)
}

func (w *simWindow) ShowNormal() {
	w.mu.Lock()
	w.hidden = false
	w.minimized = false
	w.mu.Unlock()
	slog.Info("[SIM] Window restored from minimized", "window", w.name)
}

func (w *simWindow) Raise() {
	slog.Debug("[SIM] Window raised", "window", w.name)
}

func (w *simWindow) Activate() {
	slog.Debug("[SIM] Window activated", "window", w.name)
}

func (w *simWindow) Minimized() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.minimized
}

func (w *simWindow) Hidden() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.hidden
}

func (w *simWindow) HasChildren() bool { return !w.childless }
func (w *simWindow) Destroyed() bool   { return false }

// simMainWindow routes Close through the coordinator's interceptor the way
// the host's close path would.
type simMainWindow struct {
	simWindow
	interceptor func() bool
	quit        func()
}

func (w *simMainWindow) Close() {
	if w.interceptor != nil && w.interceptor() {
		slog.Info("[SIM] Close intercepted, staying in tray")
		return
	}
	slog.Info("[SIM] Main window closed, quitting")
	if w.quit != nil {
		w.quit()
	}
}

type simWindowSystem struct {
	windows []tray.Window
}

func (s *simWindowSystem) TopLevelWindows() []tray.Window {
	return slices.Clone(s.windows)
}

// simScheduler serves due counts seeded from flags. Reviewing a card moves
// it out of the due pool, which is enough to watch the badge count down.
type simScheduler struct {
	mu    sync.Mutex
	decks []tray.DeckDue
}

func (s *simScheduler) DueTree() []tray.DeckDue {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.decks)
}

// completeReview removes one due card, preferring learning, then new, then
// review, and reports whether anything was left to study.
func (s *simScheduler) completeReview() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.decks {
		d := &s.decks[i]
		switch {
		case d.Learning > 0:
			d.Learning--
		case d.New > 0:
			d.New--
		case d.Review > 0:
			d.Review--
		default:
			continue
		}
		return true
	}
	return false
}

// simHooks is the demo's event bus, implementing tray.Hooks.
type simHooks struct {
	mu    sync.Mutex
	focus []func(old, now tray.Window)
	theme []func()
	state []func()
	op    []func()
}

func (h *simHooks) FocusChanged(fn func(old, now tray.Window)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.focus = append(h.focus, fn)
}

func (h *simHooks) ThemeChanged(fn func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.theme = append(h.theme, fn)
}

func (h *simHooks) StateChanged(fn func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.state = append(h.state, fn)
}

func (h *simHooks) OperationDone(fn func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.op = append(h.op, fn)
}

func (h *simHooks) fireThemeChanged() {
	h.mu.Lock()
	fns := slices.Clone(h.theme)
	h.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

func (h *simHooks) fireOperationDone() {
	h.mu.Lock()
	fns := slices.Clone(h.op)
	h.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// simTheme provides light and dark badge palettes.
type simTheme struct {
	mu   sync.Mutex
	dark bool
}

func (t *simTheme) toggle() {
	t.mu.Lock()
	t.dark = !t.dark
	t.mu.Unlock()
}

func (t *simTheme) BadgeText() color.RGBA {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.dark {
		return color.RGBA{138, 180, 248, 255}
	}
	return color.RGBA{66, 133, 244, 255}
}

func (t *simTheme) BadgeFill() color.RGBA {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.dark {
		return color.RGBA{48, 49, 52, 255}
	}
	return color.RGBA{245, 245, 245, 255}
}

// AppIcon returns nil so the badge package uses its built-in icon.
func (t *simTheme) AppIcon() image.Image { return nil }
