package main

import (
	"testing"

	"github.com/recalldeck/minitray/pkg/appsettings"
	"github.com/recalldeck/minitray/pkg/tray"
)

func newTestHarness(t *testing.T, deck tray.DeckDue) (*harness, *MockSystray) {
	t.Helper()
	mock := &MockSystray{}
	h := newHarness(appsettings.Defaults(), mock, deck)
	if err := h.attach(); err != nil {
		t.Fatalf("attach() error = %v", err)
	}
	return h, mock
}

func TestBuildMenu(t *testing.T) {
	_, mock := newTestHarness(t, tray.DeckDue{Review: 3})

	for _, title := range []string{"Show all windows", "Study a card", "Toggle theme", "Exit"} {
		if mock.item(title) == nil {
			t.Errorf("menu item %q missing", title)
		}
	}
}

func TestAttachPaintsBadge(t *testing.T) {
	_, mock := newTestHarness(t, tray.DeckDue{New: 1, Learning: 2, Review: 4})

	if len(mock.icons) != 1 {
		t.Fatalf("icon paints = %d, want 1", len(mock.icons))
	}
	if mock.tooltip != "7 cards due" {
		t.Errorf("tooltip = %q, want %q", mock.tooltip, "7 cards due")
	}
}

func TestCloseButtonHidesToTray(t *testing.T) {
	h, mock := newTestHarness(t, tray.DeckDue{})

	// The X button goes through the host close path.
	h.main.Close()

	if mock.quit {
		t.Fatal("close button quit the app instead of hiding to tray")
	}
	if !h.coordinator.HiddenToTray() {
		t.Error("close button did not hide windows to tray")
	}
	if !h.main.Hidden() {
		t.Error("main window still visible after close")
	}
}

func TestExitMenuItemQuits(t *testing.T) {
	h, mock := newTestHarness(t, tray.DeckDue{})

	mock.item("Exit").click()

	if !mock.quit {
		t.Fatal("exit menu item did not quit")
	}
	if h.coordinator.HiddenToTray() {
		t.Error("exit path hid windows instead of closing")
	}
}

func TestShowAllMenuItemRestoresSnapshot(t *testing.T) {
	h, mock := newTestHarness(t, tray.DeckDue{})

	h.main.Close() // hide to tray
	mock.item("Show all windows").click()

	if h.coordinator.HiddenToTray() {
		t.Fatal("show-all did not clear hidden-to-tray")
	}
	if h.main.Hidden() {
		t.Error("main window not restored")
	}
	// The utility window that was hidden before is not part of the
	// snapshot and must stay hidden.
	for _, w := range h.windows.windows {
		sw, ok := w.(*simWindow)
		if ok && sw.name == "add cards" && !sw.Hidden() {
			t.Error("independently hidden window was restored")
		}
	}
}

func TestStudyCardUpdatesBadge(t *testing.T) {
	_, mock := newTestHarness(t, tray.DeckDue{Review: 2})

	mock.item("Study a card").click()

	if mock.tooltip != "1 card due" {
		t.Errorf("tooltip after review = %q, want %q", mock.tooltip, "1 card due")
	}
	if len(mock.icons) != 2 {
		t.Errorf("icon paints = %d, want 2", len(mock.icons))
	}

	// Studying past zero leaves the badge alone.
	mock.item("Study a card").click()
	mock.item("Study a card").click()
	if mock.tooltip != "No cards due" {
		t.Errorf("tooltip after last review = %q, want %q", mock.tooltip, "No cards due")
	}
}

func TestToggleThemeRepaints(t *testing.T) {
	_, mock := newTestHarness(t, tray.DeckDue{Review: 5})

	paints := len(mock.icons)
	mock.item("Toggle theme").click()

	if len(mock.icons) != paints+1 {
		t.Errorf("icon paints after theme toggle = %d, want %d", len(mock.icons), paints+1)
	}
}
