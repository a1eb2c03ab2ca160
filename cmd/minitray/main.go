// Package main implements a desktop harness for the minimize-to-tray
// coordinator. It attaches the coordinator to a simulated flashcard host —
// in-memory windows, a flag-seeded scheduler, a toggleable theme — while the
// tray icon, menu, and notifications are real, so badge rendering and the
// show/hide policy can be exercised on an actual desktop.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/energye/systray"

	"github.com/recalldeck/minitray/cmd/minitray/x11tray"
	"github.com/recalldeck/minitray/pkg/appsettings"
	"github.com/recalldeck/minitray/pkg/logging"
	"github.com/recalldeck/minitray/pkg/tray"
)

const appName = "minitray"

// Version information - set during build with -ldflags.
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	var verbose bool
	var newCards, learnCards, reviewCards int
	flag.BoolVar(&verbose, "verbose", false, "Log debug output to stderr")
	flag.IntVar(&newCards, "new", 5, "Simulated new card count")
	flag.IntVar(&learnCards, "learn", 2, "Simulated learning card count")
	flag.IntVar(&reviewCards, "review", 13, "Simulated review card count")
	flag.Parse()

	cleanup, err := logging.Setup(appName, verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging setup failed: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	slog.Info("[MAIN] Starting minitray harness", "version", version, "commit", commit)

	settings, err := appsettings.NewManager(appName).Load()
	if err != nil {
		slog.Warn("[MAIN] Using default settings", "error", err)
	}
	slog.Info("[MAIN] Settings loaded",
		"show_due", settings.ShowDue,
		"due_font_size", settings.DueFontSize,
		"hide_on_startup", settings.HideOnStartup,
		"notifications", settings.EnableNotifications)

	// Make sure a tray implementation exists before committing to one.
	proxy, err := x11tray.EnsureTray(context.Background())
	if err != nil {
		slog.Warn("[MAIN] System tray may be unavailable", "error", err)
	}

	h := newHarness(settings, &RealSystray{}, tray.DeckDue{
		New:      newCards,
		Learning: learnCards,
		Review:   reviewCards,
	})

	systray.Run(h.onReady, func() {
		slog.Info("[MAIN] Shutting down")
		if proxy != nil {
			if err := proxy.Stop(); err != nil {
				slog.Debug("[MAIN] Failed to stop tray proxy", "error", err)
			}
		}
	})
}

// onReady wires the coordinator once the tray is up.
func (h *harness) onReady() {
	slog.Info("[MAIN] System tray ready")

	if err := h.attach(); err != nil {
		slog.Error("[MAIN] Failed to attach coordinator", "error", err)
		systray.Quit()
		return
	}

	systray.SetOnClick(func(_ systray.IMenu) {
		h.coordinator.OnTrayActivated(tray.ActivationTrigger)
	})
	systray.SetOnRClick(func(menu systray.IMenu) {
		if menu != nil {
			if err := menu.ShowMenu(); err != nil {
				slog.Warn("[MAIN] Failed to show menu", "error", err)
			}
			return
		}
		// Linux StatusNotifierItem passes no menu handle here.
		x11tray.ShowContextMenu()
	})
}
