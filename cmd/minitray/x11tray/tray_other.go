//go:build !linux && !freebsd && !openbsd && !netbsd && !dragonfly && !solaris && !illumos && !aix

package x11tray

import (
	"context"
)

// HealthCheck always returns nil on non-Unix platforms where the OS provides
// the tray.
func HealthCheck() error {
	return nil
}

// ProxyProcess is unused on non-Unix platforms.
type ProxyProcess struct{}

// Stop is a no-op on non-Unix platforms.
func (p *ProxyProcess) Stop() error {
	return nil
}

// TryProxy is not needed on non-Unix platforms.
func TryProxy(_ context.Context) (*ProxyProcess, error) {
	return nil, nil //nolint:nilnil // no proxy to start
}

// EnsureTray always succeeds on non-Unix platforms.
func EnsureTray(_ context.Context) (*ProxyProcess, error) {
	return nil, nil //nolint:nilnil // no proxy to start
}

// ShowContextMenu is a no-op; the systray library shows the menu natively on
// macOS and Windows.
func ShowContextMenu() {
}
