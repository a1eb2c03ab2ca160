// Package dedup provides time-window event deduplication, used to keep the
// "cards due" notification from firing on every scheduler refresh.
package dedup

import (
	"sync"
	"time"
)

// Manager suppresses repeats of an event within a time window.
type Manager struct {
	last    map[string]time.Time
	window  time.Duration
	maxSize int
	mu      sync.Mutex
}

// New creates a deduplication manager.
func New(window time.Duration, maxSize int) *Manager {
	return &Manager{
		last:    make(map[string]time.Time),
		window:  window,
		maxSize: maxSize,
	}
}

// ShouldProcess returns true if the event should be processed, false if it is
// a duplicate within the window. Safe for concurrent use.
func (d *Manager) ShouldProcess(key string, t time.Time) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if last, ok := d.last[key]; ok && t.Sub(last) < d.window {
		return false
	}

	d.last[key] = t

	// Drop stale entries when the map grows too large.
	if len(d.last) > d.maxSize {
		cutoff := t.Add(-d.window)
		for k, ts := range d.last {
			if ts.Before(cutoff) {
				delete(d.last, k)
			}
		}
	}

	return true
}
