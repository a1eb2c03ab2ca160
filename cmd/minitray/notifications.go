// Package main - notifications.go sends a desktop notification when cards
// become due.
package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gen2brain/beeep"

	"github.com/recalldeck/minitray/pkg/appsettings"
	"github.com/recalldeck/minitray/pkg/dedup"
)

// notifyWindow suppresses repeat notifications: one "cards due" alert per
// hour is plenty.
const notifyWindow = time.Hour

// notifier alerts the user when the due count rises from zero.
type notifier struct {
	dedup   *dedup.Manager
	send    func(title, message string) error
	beep    func() error
	enabled bool
	audio   bool
}

func newNotifier(settings appsettings.Settings) *notifier {
	return &notifier{
		dedup:   dedup.New(notifyWindow, 50),
		send:    func(title, message string) error { return beeep.Notify(title, message, "") },
		beep:    func() error { return beeep.Beep(beeep.DefaultFreq, beeep.DefaultDuration) },
		enabled: settings.EnableNotifications,
		audio:   settings.EnableAudioCues,
	}
}

// dueChanged is wired as the coordinator's OnDueChanged callback. It only
// fires on the zero-to-due transition; counts drifting up or down while
// cards are already due stay quiet.
func (n *notifier) dueChanged(prev, now int) {
	if !n.enabled || prev != 0 || now == 0 {
		return
	}
	if !n.dedup.ShouldProcess("cards-due", time.Now()) {
		slog.Debug("[NOTIFY] Suppressing duplicate due notification", "due", now)
		return
	}

	message := fmt.Sprintf("%d cards are ready for review", now)
	if now == 1 {
		message = "1 card is ready for review"
	}
	slog.Info("[NOTIFY] Cards due", "count", now)
	if err := n.send("Cards due", message); err != nil {
		slog.Warn("[NOTIFY] Failed to send notification", "error", err)
	}

	if n.audio {
		if err := n.beep(); err != nil {
			slog.Debug("[NOTIFY] Audio cue failed", "error", err)
		}
	}
}
