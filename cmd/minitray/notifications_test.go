package main

import (
	"testing"

	"github.com/recalldeck/minitray/pkg/appsettings"
)

type sentNotification struct {
	title   string
	message string
}

func newTestNotifier(enabled, audio bool) (*notifier, *[]sentNotification, *int) {
	settings := appsettings.Defaults()
	settings.EnableNotifications = enabled
	settings.EnableAudioCues = audio

	n := newNotifier(settings)
	var sent []sentNotification
	beeps := 0
	n.send = func(title, message string) error {
		sent = append(sent, sentNotification{title, message})
		return nil
	}
	n.beep = func() error {
		beeps++
		return nil
	}
	return n, &sent, &beeps
}

func TestDueChangedNotifiesOnTransition(t *testing.T) {
	n, sent, _ := newTestNotifier(true, false)

	n.dueChanged(0, 5)

	if len(*sent) != 1 {
		t.Fatalf("notifications sent = %d, want 1", len(*sent))
	}
	if (*sent)[0].message != "5 cards are ready for review" {
		t.Errorf("message = %q", (*sent)[0].message)
	}
}

func TestDueChangedSingularMessage(t *testing.T) {
	n, sent, _ := newTestNotifier(true, false)

	n.dueChanged(0, 1)

	if len(*sent) != 1 {
		t.Fatalf("notifications sent = %d, want 1", len(*sent))
	}
	if (*sent)[0].message != "1 card is ready for review" {
		t.Errorf("message = %q", (*sent)[0].message)
	}
}

func TestDueChangedIgnoresDrift(t *testing.T) {
	n, sent, _ := newTestNotifier(true, false)

	// Counts moving while cards are already due stay quiet, as does the
	// drop back to zero.
	n.dueChanged(5, 8)
	n.dueChanged(8, 0)

	if len(*sent) != 0 {
		t.Errorf("notifications sent = %d, want 0", len(*sent))
	}
}

func TestDueChangedDeduplicates(t *testing.T) {
	n, sent, _ := newTestNotifier(true, false)

	n.dueChanged(0, 5)
	n.dueChanged(5, 0)
	n.dueChanged(0, 3)

	if len(*sent) != 1 {
		t.Errorf("notifications sent = %d, want 1 (dedup window)", len(*sent))
	}
}

func TestDueChangedDisabled(t *testing.T) {
	n, sent, _ := newTestNotifier(false, false)

	n.dueChanged(0, 5)

	if len(*sent) != 0 {
		t.Errorf("notifications sent = %d, want 0 when disabled", len(*sent))
	}
}

func TestDueChangedAudioCue(t *testing.T) {
	n, _, beeps := newTestNotifier(true, true)

	n.dueChanged(0, 5)

	if *beeps != 1 {
		t.Errorf("beeps = %d, want 1", *beeps)
	}
}
