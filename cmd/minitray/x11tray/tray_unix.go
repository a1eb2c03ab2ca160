//go:build linux || freebsd || openbsd || netbsd || dragonfly || solaris || illumos || aix

// Package x11tray verifies that a system tray implementation is reachable on
// Unix desktops. Modern trays speak the StatusNotifierItem protocol over
// D-Bus; legacy X11 trays need the snixembed proxy to bridge it.
package x11tray

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/godbus/dbus/v5"
)

const statusNotifierWatcher = "org.kde.StatusNotifierWatcher"

// HealthCheck returns nil when a StatusNotifierWatcher service is registered
// on the session bus, or an error describing what is missing.
func HealthCheck() error {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return fmt.Errorf("connect to D-Bus session bus: %w", err)
	}
	defer func() {
		if err := conn.Close(); err != nil {
			slog.Debug("[X11TRAY] Failed to close DBus connection", "error", err)
		}
	}()

	var names []string
	if err := conn.BusObject().Call("org.freedesktop.DBus.ListNames", 0).Store(&names); err != nil {
		return fmt.Errorf("query D-Bus services: %w", err)
	}

	for _, name := range names {
		if name == statusNotifierWatcher {
			return nil
		}
	}
	return fmt.Errorf("no system tray found: %s service not available", statusNotifierWatcher)
}

// ProxyProcess is a running snixembed background process.
type ProxyProcess struct {
	cmd    *exec.Cmd
	cancel context.CancelFunc
}

// Stop terminates the proxy process.
func (p *ProxyProcess) Stop() error {
	if p.cancel != nil {
		p.cancel()
	}
	if p.cmd != nil && p.cmd.Process != nil {
		return p.cmd.Process.Kill()
	}
	return nil
}

// TryProxy starts snixembed to bridge a legacy X11 tray to StatusNotifier.
// The caller must Stop the returned process on exit.
func TryProxy(ctx context.Context) (*ProxyProcess, error) {
	path, err := exec.LookPath("snixembed")
	if err != nil {
		return nil, errors.New("snixembed not found in PATH: install it with your package manager")
	}

	slog.Info("[X11TRAY] Starting snixembed proxy", "path", path)
	proxyCtx, cancel := context.WithCancel(ctx)
	cmd := exec.CommandContext(proxyCtx, path)
	if err := cmd.Start(); err != nil {
		cancel()
		return nil, fmt.Errorf("start snixembed: %w", err)
	}
	proxy := &ProxyProcess{cmd: cmd, cancel: cancel}

	// snixembed takes a moment to register with D-Bus.
	time.Sleep(500 * time.Millisecond)

	if err := HealthCheck(); err != nil {
		if stopErr := proxy.Stop(); stopErr != nil {
			slog.Debug("[X11TRAY] Failed to stop proxy after failed health check", "error", stopErr)
		}
		return nil, fmt.Errorf("snixembed started but system tray still unavailable: %w", err)
	}

	slog.Info("[X11TRAY] snixembed proxy started")
	return proxy, nil
}

// EnsureTray checks tray availability and starts the proxy if needed. A nil
// proxy with nil error means the native tray works as-is.
func EnsureTray(ctx context.Context) (*ProxyProcess, error) {
	if err := HealthCheck(); err == nil {
		slog.Debug("[X11TRAY] Native system tray available")
		return nil, nil //nolint:nilnil // nil proxy is valid when native tray exists
	}

	slog.Warn("[X11TRAY] No native system tray found, attempting to start proxy")
	proxy, err := TryProxy(ctx)
	if err != nil {
		return nil, fmt.Errorf("system tray unavailable and proxy failed: %w", err)
	}
	return proxy, nil
}

// ShowContextMenu asks our StatusNotifierItem to display its context menu
// via D-Bus. On Linux the menu argument of the systray click callbacks is
// nil, so the menu has to be triggered manually.
func ShowContextMenu() {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		slog.Warn("[X11TRAY] Failed to connect to session bus", "error", err)
		return
	}
	defer func() {
		if err := conn.Close(); err != nil {
			slog.Debug("[X11TRAY] Failed to close DBus connection", "error", err)
		}
	}()

	var names []string
	if err := conn.BusObject().Call("org.freedesktop.DBus.ListNames", 0).Store(&names); err != nil {
		slog.Warn("[X11TRAY] Failed to list DBus names", "error", err)
		return
	}

	// Find the StatusNotifierItem service registered by this process.
	var serviceName string
	prefix := fmt.Sprintf("org.kde.StatusNotifierItem-%d-", os.Getpid())
	for _, name := range names {
		if strings.HasPrefix(name, prefix) {
			serviceName = name
			break
		}
	}
	if serviceName == "" {
		slog.Warn("[X11TRAY] StatusNotifierItem service not found", "prefix", prefix)
		return
	}

	obj := conn.Object(serviceName, "/StatusNotifierItem")
	if call := obj.Call("org.kde.StatusNotifierItem.ContextMenu", 0, int32(0), int32(0)); call.Err != nil {
		// Fall back to the right-click equivalent.
		if call := obj.Call("org.kde.StatusNotifierItem.SecondaryActivate", 0, int32(0), int32(0)); call.Err != nil {
			slog.Warn("[X11TRAY] Failed to trigger context menu", "error", call.Err)
		}
	}
}
