package dedup

import (
	"fmt"
	"testing"
	"time"
)

func TestShouldProcess(t *testing.T) {
	m := New(time.Minute, 100)
	now := time.Now()

	if !m.ShouldProcess("due", now) {
		t.Error("first event should be processed")
	}
	if m.ShouldProcess("due", now.Add(30*time.Second)) {
		t.Error("event inside window should be suppressed")
	}
	if !m.ShouldProcess("due", now.Add(2*time.Minute)) {
		t.Error("event past window should be processed")
	}
}

func TestDistinctKeys(t *testing.T) {
	m := New(time.Minute, 100)
	now := time.Now()

	if !m.ShouldProcess("due", now) {
		t.Error("first key should be processed")
	}
	if !m.ShouldProcess("theme", now) {
		t.Error("different key should not be suppressed")
	}
}

func TestCleanup(t *testing.T) {
	m := New(time.Minute, 10)
	base := time.Now()

	for i := 0; i < 20; i++ {
		m.ShouldProcess(fmt.Sprintf("key-%d", i), base.Add(time.Duration(i)*5*time.Minute))
	}

	m.mu.Lock()
	size := len(m.last)
	m.mu.Unlock()
	if size > 11 {
		t.Errorf("stale entries not cleaned up, size = %d", size)
	}
}
